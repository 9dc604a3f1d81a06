package demo

import (
	"context"
	"math/rand"

	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
	"github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

// Analyzer is the tertiary stage: it never inspects the image and returns a
// plausible but non-authoritative result drawn from the catalog. Downstream
// code must treat source_engine=demo_fallback as "not a real diagnosis".
type Analyzer struct {
	Catalog       *catalog.Catalog
	MinConfidence float64
	MaxConfidence float64
	Rand          *rand.Rand // injectable so tests can force determinism
}

func New(cat *catalog.Catalog, minConf, maxConf float64, rng *rand.Rand) *Analyzer {
	if minConf <= 0 {
		minConf = 0.60
	}
	if maxConf <= 0 || maxConf < minConf {
		maxConf = 0.90
	}
	return &Analyzer{Catalog: cat, MinConfidence: minConf, MaxConfidence: maxConf, Rand: rng}
}

func (a *Analyzer) Name() diagnosis.SourceEngine { return diagnosis.EngineDemoFallback }

func (a *Analyzer) Infer(_ context.Context, _ []byte, _ string) (diagnosis.AnalysisResult, error) {
	keys := a.Catalog.DiseaseKeys() // healthy excluded: a blind fallback must not clear a crop
	key := keys[a.intn(len(keys))]
	rec, _ := a.Catalog.Lookup(key)

	sev, _ := diagnosis.NormalizeSeverity(rec.TypicalSeverity)
	symptoms := rec.Symptoms
	if len(symptoms) > 3 {
		symptoms = symptoms[:3]
	}

	return diagnosis.AnalysisResult{
		Crop:             rec.Crop,
		DiseaseKey:       key,
		DiseaseName:      rec.DiseaseName,
		Confidence:       a.MinConfidence + a.float64()*(a.MaxConfidence-a.MinConfidence),
		Severity:         sev,
		ObservedSymptoms: symptoms,
		Notes:            "Demo mode - analysis services not connected. Disease shown is for demonstration purposes.",
		SourceEngine:     a.Name(),
	}, nil
}

func (a *Analyzer) intn(n int) int {
	if a.Rand != nil {
		return a.Rand.Intn(n)
	}
	return rand.Intn(n)
}

func (a *Analyzer) float64() float64 {
	if a.Rand != nil {
		return a.Rand.Float64()
	}
	return rand.Float64()
}
