package diagnosis

import "context"

// Analyzer port: any fallback stage that can turn an image into an
// AnalysisResult. Implementations must return an error (not a zero result)
// when they cannot produce a diagnosis, so the orchestrator moves on.
type Analyzer interface {
	Name() SourceEngine
	Infer(ctx context.Context, image []byte, mediaType string) (AnalysisResult, error)
}

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, rec *ScanRecord) error
	Get(ctx context.Context, id ScanID) (*ScanRecord, error)
	Latest(ctx context.Context, limit int) ([]*ScanRecord, error)
	ByRequester(ctx context.Context, requester string, limit int) ([]*ScanRecord, error)
	Summary(ctx context.Context, sinceDays int) (*SummaryStats, error)
}

// MediaStore port (interface untuk penyimpanan gambar & audio)
type MediaStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Translator port.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// Synthesizer port (text-to-speech).
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}
