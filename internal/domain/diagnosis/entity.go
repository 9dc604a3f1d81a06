package diagnosis

import (
	"time"

	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
)

// ID tipe untuk ScanRecord
type ScanID string

// Severity enum
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// NormalizeSeverity maps arbitrary input to one of the four allowed values.
// Unknown values become moderate; the caller decides whether to log.
func NormalizeSeverity(s string) (Severity, bool) {
	switch Severity(s) {
	case SeverityNone, SeverityMild, SeverityModerate, SeveritySevere:
		return Severity(s), true
	}
	return SeverityModerate, false
}

// SourceEngine enum — which fallback stage produced the result.
type SourceEngine string

const (
	EnginePrimaryVision   SourceEngine = "primary_vision"
	EngineSecondaryLabels SourceEngine = "secondary_labels"
	EngineDemoFallback    SourceEngine = "demo_fallback"
)

// DiseaseKeyUnknown is the sentinel for an analyzer that could not name a
// catalog disease.
const DiseaseKeyUnknown = "unknown_disease"

// AnalysisResult is the analyzer output before catalog enrichment.
// Confidence is always in [0,1] after boundary normalization.
type AnalysisResult struct {
	Crop             string       `json:"crop"`
	DiseaseKey       string       `json:"disease_key"`
	DiseaseName      string       `json:"disease_name,omitempty"`
	IsHealthy        bool         `json:"is_healthy"`
	Confidence       float64      `json:"confidence"`
	Severity         Severity     `json:"severity"`
	ObservedSymptoms []string     `json:"symptoms_observed,omitempty"`
	Notes            string       `json:"notes,omitempty"`
	SourceEngine     SourceEngine `json:"source_engine"`
}

// Diagnosis adalah hasil merge AnalysisResult + catalog record, siap tampil.
type Diagnosis struct {
	Crop                string              `json:"crop"`
	CropHindi           string              `json:"crop_hindi,omitempty"`
	DiseaseKey          string              `json:"disease_key"`
	DiseaseName         string              `json:"disease_name"`
	HindiName           string              `json:"hindi_name,omitempty"`
	ScientificName      string              `json:"scientific_name,omitempty"`
	Category            string              `json:"category,omitempty"`
	IsHealthy           bool                `json:"is_healthy"`
	Confidence          float64             `json:"confidence"`
	Severity            Severity            `json:"severity"`
	Description         string              `json:"description,omitempty"`
	DescriptionLocal    string              `json:"description_translated,omitempty"`
	ObservedSymptoms    []string            `json:"symptoms_observed,omitempty"`
	AllSymptoms         []string            `json:"all_symptoms,omitempty"`
	Treatments          []catalog.Treatment `json:"treatments,omitempty"`
	OrganicTreatments   []string            `json:"organic_treatments,omitempty"`
	Prevention          []string            `json:"prevention,omitempty"`
	FavorableConditions string              `json:"favorable_conditions,omitempty"`
	CatalogMissNote     string              `json:"catalog_miss_note,omitempty"`
	Notes               string              `json:"notes,omitempty"`
	SourceEngine        SourceEngine        `json:"source_engine"`
}

// Aggregate Root: ScanRecord. Created once per analysis attempt, never
// mutated afterwards.
type ScanRecord struct {
	ID                  ScanID    `json:"scan_id"`
	RequesterID         string    `json:"requester_id"`
	CreatedAt           time.Time `json:"created_at"`
	Language            string    `json:"language"`
	Diagnosis           Diagnosis `json:"diagnosis"`
	ImageURL            string    `json:"image_url,omitempty"`
	AudioURL            string    `json:"audio_url,omitempty"`
	TranslationDegraded bool      `json:"translation_degraded,omitempty"`
	VoiceDegraded       bool      `json:"voice_degraded,omitempty"`
	StoreDegraded       bool      `json:"store_degraded,omitempty"`
	PipelineLatencyMS   int64     `json:"pipeline_latency_ms"`
}

// SummaryStats rekap untuk dashboard.
type SummaryStats struct {
	TotalScans int            `json:"total_scans"`
	Healthy    int            `json:"healthy"`
	Diseased   int            `json:"diseased"`
	ByCrop     map[string]int `json:"by_crop"`
	ByDisease  map[string]int `json:"by_disease"`
	ByEngine   map[string]int `json:"by_engine"`
}
