package diagnosis

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a malformed, empty, or oversized image. Rejected
// before any external call and surfaced directly to the caller.
var ErrInvalidInput = errors.New("invalid input")

// ErrAnalysisUnavailable indicates every analyzer stage failed. The only
// fatal pipeline error besides input validation.
var ErrAnalysisUnavailable = errors.New("analysis temporarily unavailable")

// AnalyzerError wraps a single stage's transport/timeout/parse failure.
// It is caught by the orchestrator to trigger fallback and never reaches
// the caller raw.
type AnalyzerError struct {
	Engine SourceEngine
	Err    error
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("analyzer %s: %v", e.Engine, e.Err)
}

func (e *AnalyzerError) Unwrap() error { return e.Err }

// NewAnalyzerError helper.
func NewAnalyzerError(engine SourceEngine, err error) *AnalyzerError {
	return &AnalyzerError{Engine: engine, Err: err}
}
