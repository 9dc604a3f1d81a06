package diagnosis

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/bryanwahyu/fasal-drishti/internal/application"
	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
	domain "github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

// Options tune the orchestrator. Zero values get sensible defaults from
// NewService.
type Options struct {
	MaxImageBytes      int64
	MinConfidence      float64 // acceptance floor for the primary vision stage
	DefaultLanguage    string
	SupportedLanguages []string
	StageTimeout       time.Duration // per-analyzer call budget
}

// Service implements use-cases untuk analisis penyakit tanaman.
// Service is designed to be used concurrently and is thread-safe: all fields
// are set at construction and never mutated.
type Service struct {
	Analyzers  []domain.Analyzer // ordered fallback chain, first success wins
	Catalog    *catalog.Catalog
	Repo       domain.Repository
	Media      domain.MediaStore
	Translator domain.Translator
	Speech     domain.Synthesizer
	Clock      application.Clock
	Opts       Options
}

// NewService fills option defaults.
func NewService(s Service) *Service {
	if s.Clock == nil {
		s.Clock = application.SystemClock{}
	}
	if s.Opts.MaxImageBytes <= 0 {
		s.Opts.MaxImageBytes = 10 << 20
	}
	if s.Opts.MinConfidence <= 0 {
		s.Opts.MinConfidence = 0.5
	}
	if s.Opts.DefaultLanguage == "" {
		s.Opts.DefaultLanguage = "en"
	}
	if s.Opts.StageTimeout <= 0 {
		s.Opts.StageTimeout = 10 * time.Second
	}
	return &s
}

// Command untuk satu permintaan analisis
type AnalyzeCommand struct {
	Image       []byte
	MediaType   string
	Language    string
	RequesterID string
	Voice       bool
}

// Analyze runs the full pipeline: fallback chain → catalog merge →
// translation → voice → archive → persist. Only ErrInvalidInput and
// ErrAnalysisUnavailable surface as failures; everything else degrades the
// record instead of aborting it.
func (s *Service) Analyze(ctx context.Context, cmd AnalyzeCommand) (*domain.ScanRecord, error) {
	start := s.Clock.Now()

	if len(cmd.Image) == 0 {
		return nil, fmt.Errorf("%w: empty image", domain.ErrInvalidInput)
	}
	if int64(len(cmd.Image)) > s.Opts.MaxImageBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", domain.ErrInvalidInput, s.Opts.MaxImageBytes)
	}
	lang := s.resolveLanguage(cmd.Language)

	mediaType := cmd.MediaType
	if mediaType == "" {
		mediaType = "image/jpeg"
	}

	// ── fallback chain: first success wins, no retries within a stage ──
	result, err := s.runChain(ctx, cmd.Image, mediaType)
	if err != nil {
		return nil, err
	}

	diag := s.merge(result)

	rec := &domain.ScanRecord{
		ID:          domain.ScanID(uuid.New().String()),
		RequesterID: orDefault(cmd.RequesterID, "web"),
		CreatedAt:   start,
		Language:    lang,
		Diagnosis:   diag,
	}

	// translation is non-fatal: text falls back to source language
	if lang != s.Opts.DefaultLanguage {
		s.translate(ctx, rec, lang)
	}

	// image archival is non-fatal
	if s.Media != nil {
		key := fmt.Sprintf("scans/%s/%s/%s.jpg", start.UTC().Format("2006/01/02"), rec.RequesterID, rec.ID)
		url, aerr := s.Media.Put(ctx, key, cmd.Image, mediaType)
		if aerr != nil {
			log.Printf("image archive failed scan=%s: %v", rec.ID, aerr)
		} else {
			rec.ImageURL = url
		}
	}

	// voice advisory is non-fatal: failure just omits the audio reference
	if cmd.Voice && s.Speech != nil {
		s.voice(ctx, rec, lang)
	}

	rec.PipelineLatencyMS = s.Clock.Now().Sub(start).Milliseconds()

	// persistence failure must not lose the diagnosis
	if err := s.Repo.Save(ctx, rec); err != nil {
		log.Printf("scan save failed scan=%s: %v", rec.ID, err)
		rec.StoreDegraded = true
	}

	log.Printf("pipeline complete scan=%s engine=%s crop=%s disease=%s confidence=%.2f latency=%dms",
		rec.ID, diag.SourceEngine, diag.Crop, diag.DiseaseKey, diag.Confidence, rec.PipelineLatencyMS)
	return rec, nil
}

// runChain invokes analyzers in order with a per-stage timeout. A primary
// result below the confidence floor counts as a stage failure.
func (s *Service) runChain(ctx context.Context, image []byte, mediaType string) (domain.AnalysisResult, error) {
	for _, a := range s.Analyzers {
		stageCtx, cancel := context.WithTimeout(ctx, s.Opts.StageTimeout)
		res, err := a.Infer(stageCtx, image, mediaType)
		cancel()
		if err != nil {
			log.Printf("analyzer %s failed, falling back: %v", a.Name(), err)
			continue
		}
		if a.Name() == domain.EnginePrimaryVision && res.Confidence < s.Opts.MinConfidence {
			log.Printf("analyzer %s below confidence floor (%.2f < %.2f), falling back",
				a.Name(), res.Confidence, s.Opts.MinConfidence)
			continue
		}
		res.SourceEngine = a.Name()
		return res, nil
	}
	return domain.AnalysisResult{}, domain.ErrAnalysisUnavailable
}

// merge resolves the analyzer result against the catalog. A catalog miss
// never aborts the pipeline; the record carries a note instead.
func (s *Service) merge(res domain.AnalysisResult) domain.Diagnosis {
	key := res.DiseaseKey
	if res.IsHealthy {
		key = catalog.KeyHealthy
	}

	rec, ok := s.Catalog.Lookup(key)
	if !ok {
		// closest match: first known disease for the identified crop
		if crops := s.Catalog.ByCrop(res.Crop); len(crops) > 0 {
			rec = crops[0]
			key = rec.Key
			log.Printf("mapped unknown disease %q to closest match %s", res.DiseaseKey, key)
			ok = true
		}
	}

	d := domain.Diagnosis{
		Crop:             res.Crop,
		DiseaseKey:       key,
		DiseaseName:      res.DiseaseName,
		IsHealthy:        res.IsHealthy,
		Confidence:       res.Confidence,
		Severity:         res.Severity,
		ObservedSymptoms: res.ObservedSymptoms,
		Notes:            res.Notes,
		SourceEngine:     res.SourceEngine,
	}
	if !ok {
		d.CatalogMissNote = "disease not in catalog; treatment guidance unavailable"
		if d.DiseaseName == "" {
			d.DiseaseName = "Unknown Disease"
		}
		return d
	}

	if d.Crop == "" || d.Crop == "unknown" {
		d.Crop = rec.Crop
	}
	d.CropHindi = rec.CropHindi
	d.DiseaseName = rec.DiseaseName
	d.HindiName = rec.HindiName
	d.ScientificName = rec.ScientificName
	d.Category = rec.Category
	d.Description = rec.Description
	d.AllSymptoms = rec.Symptoms
	d.Treatments = rec.Treatments
	d.OrganicTreatments = rec.OrganicTreatments
	d.Prevention = rec.Prevention
	d.FavorableConditions = rec.FavorableConditions
	if len(d.ObservedSymptoms) == 0 && len(rec.Symptoms) > 0 {
		n := len(rec.Symptoms)
		if n > 3 {
			n = 3
		}
		d.ObservedSymptoms = rec.Symptoms[:n]
	}
	if key == catalog.KeyHealthy {
		d.IsHealthy = true
		d.Severity = domain.SeverityNone
	}
	return d
}

// translate fills DescriptionLocal and the per-treatment MethodTranslated.
// Hindi description text is pre-stored in the catalog; everything else goes
// through the Translator collaborator. Each field fails independently: a
// failed call sets TranslationDegraded and the source text stands.
func (s *Service) translate(ctx context.Context, rec *domain.ScanRecord, lang string) {
	d := &rec.Diagnosis
	if lang == "hi" {
		if cat, ok := s.Catalog.Lookup(d.DiseaseKey); ok && cat.DescriptionHindi != "" {
			d.DescriptionLocal = cat.DescriptionHindi
			return
		}
	}
	if s.Translator == nil {
		rec.TranslationDegraded = true
		return
	}
	if d.Description != "" {
		out, err := s.Translator.Translate(ctx, d.Description, lang)
		if err != nil {
			log.Printf("translation failed scan=%s lang=%s field=description: %v", rec.ID, lang, err)
			rec.TranslationDegraded = true
		} else {
			d.DescriptionLocal = out
		}
	}
	if len(d.Treatments) == 0 {
		return
	}
	// the treatments slice is shared with the catalog record, copy before annotating
	ts := make([]catalog.Treatment, len(d.Treatments))
	copy(ts, d.Treatments)
	for i := range ts {
		if ts[i].Method == "" {
			continue
		}
		out, err := s.Translator.Translate(ctx, ts[i].Method, lang)
		if err != nil {
			log.Printf("translation failed scan=%s lang=%s field=treatment_method: %v", rec.ID, lang, err)
			rec.TranslationDegraded = true
			break
		}
		ts[i].MethodTranslated = out
	}
	d.Treatments = ts
}

// voice synthesizes the advisory and uploads the mp3.
func (s *Service) voice(ctx context.Context, rec *domain.ScanRecord, lang string) {
	text := SpeechText(rec.Diagnosis, lang)
	audio, err := s.Speech.Synthesize(ctx, text, lang)
	if err != nil {
		log.Printf("voice synthesis failed scan=%s: %v", rec.ID, err)
		rec.VoiceDegraded = true
		return
	}
	if s.Media == nil {
		rec.VoiceDegraded = true
		return
	}
	key := fmt.Sprintf("voice/%s/%s.mp3", rec.CreatedAt.UTC().Format("2006/01/02"), rec.ID)
	url, err := s.Media.Put(ctx, key, audio, "audio/mpeg")
	if err != nil {
		log.Printf("voice upload failed scan=%s: %v", rec.ID, err)
		rec.VoiceDegraded = true
		return
	}
	rec.AudioURL = url
}

func (s *Service) resolveLanguage(lang string) string {
	for _, l := range s.Opts.SupportedLanguages {
		if l == lang {
			return lang
		}
	}
	// unsupported codes fall back to the default rather than failing
	return s.Opts.DefaultLanguage
}

//
// ==== QUERY SIDE ====
//

// Get ambil 1 scan by id
func (s *Service) Get(ctx context.Context, id domain.ScanID) (*domain.ScanRecord, error) {
	return s.Repo.Get(ctx, id)
}

// Latest ambil N scan terakhir
func (s *Service) Latest(ctx context.Context, limit int) ([]*domain.ScanRecord, error) {
	return s.Repo.Latest(ctx, limit)
}

// ByRequester riwayat scan per pengguna
func (s *Service) ByRequester(ctx context.Context, requester string, limit int) ([]*domain.ScanRecord, error) {
	return s.Repo.ByRequester(ctx, requester, limit)
}

// Summary rekap hasil scan N hari terakhir
func (s *Service) Summary(ctx context.Context, sinceDays int) (*domain.SummaryStats, error) {
	return s.Repo.Summary(ctx, sinceDays)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
