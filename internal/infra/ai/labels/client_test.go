package labels

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
	"github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

func mustCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)
	return cat
}

func labelServer(t *testing.T, labels []Label) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/labels", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Image         string  `json:"image"`
			MaxLabels     int     `json:"max_labels"`
			MinConfidence float64 `json:"min_confidence"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotEmpty(t, body.Image)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"labels": labels})
	}))
}

func TestInferDiseasedTomato(t *testing.T) {
	srv := labelServer(t, []Label{
		{Name: "Leaf", Confidence: 0.95},
		{Name: "Tomato", Confidence: 0.9},
		{Name: "Blight", Confidence: 0.8},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", 25, 0.5, 0, mustCatalog(t))
	res, err := c.Infer(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "tomato", res.Crop)
	assert.Equal(t, "tomato_early_blight", res.DiseaseKey)
	assert.Equal(t, diagnosis.EngineSecondaryLabels, res.SourceEngine)
	assert.Equal(t, diagnosis.SeverityModerate, res.Severity)
	assert.Contains(t, res.Notes, "label detection")
}

func TestInferHealthyPlant(t *testing.T) {
	srv := labelServer(t, []Label{
		{Name: "Plant", Confidence: 0.97},
		{Name: "Rice", Confidence: 0.88},
		{Name: "Green", Confidence: 0.85},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "", 25, 0.5, 0, mustCatalog(t))
	res, err := c.Infer(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	assert.True(t, res.IsHealthy)
	assert.Equal(t, catalog.KeyHealthy, res.DiseaseKey)
	assert.Equal(t, diagnosis.SeverityNone, res.Severity)
}

func TestInferNoPlantLabels(t *testing.T) {
	srv := labelServer(t, []Label{
		{Name: "Car", Confidence: 0.99},
		{Name: "Road", Confidence: 0.92},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "", 25, 0.5, 0, mustCatalog(t))
	_, err := c.Infer(context.Background(), []byte("img"), "image/jpeg")
	require.Error(t, err)

	var aerr *diagnosis.AnalyzerError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, diagnosis.EngineSecondaryLabels, aerr.Engine)
}

func TestInferServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 25, 0.5, 0, mustCatalog(t))
	_, err := c.Infer(context.Background(), []byte("img"), "image/jpeg")
	require.Error(t, err)
}

func TestDetectNormalizesPercentConfidence(t *testing.T) {
	srv := labelServer(t, []Label{
		{Name: "Wheat", Confidence: 91},
		{Name: "Rust", Confidence: 74},
	})
	defer srv.Close()

	c := NewClient(srv.URL, "", 25, 0.5, 0, mustCatalog(t))
	res, err := c.Infer(context.Background(), []byte("img"), "image/jpeg")
	require.NoError(t, err)

	assert.Equal(t, "wheat", res.Crop)
	assert.LessOrEqual(t, res.Confidence, 1.0)
}

func TestMatchConfidenceNeverExceedsSource(t *testing.T) {
	cat := mustCatalog(t)
	labels := []Label{
		{Name: "tomato", Confidence: 0.9},
		{Name: "blight", Confidence: 0.7},
	}

	res, ok := Match(cat, labels)
	require.True(t, ok)

	strongest := 0.0
	for _, l := range labels {
		if l.Confidence > strongest {
			strongest = l.Confidence
		}
	}
	assert.LessOrEqual(t, res.Confidence, strongest)
	assert.LessOrEqual(t, res.Confidence, confidenceCap)
}

func TestMatchDiscountAndCap(t *testing.T) {
	assert.InDelta(t, 0.4, discount(0.5), 1e-9)
	assert.InDelta(t, confidenceCap, discount(0.99), 1e-9, "high confidences hit the cap")
}

func TestMatchGenericPlantUnknownCrop(t *testing.T) {
	cat := mustCatalog(t)
	res, ok := Match(cat, []Label{
		{Name: "plant", Confidence: 0.9},
		{Name: "spot", Confidence: 0.6},
	})
	require.True(t, ok)
	assert.Equal(t, "unknown", res.Crop)
	assert.Equal(t, diagnosis.DiseaseKeyUnknown, res.DiseaseKey)
}

func TestMatchCropSynonyms(t *testing.T) {
	cat := mustCatalog(t)
	res, ok := Match(cat, []Label{
		{Name: "paddy", Confidence: 0.85},
		{Name: "lesion", Confidence: 0.6},
	})
	require.True(t, ok)
	assert.Equal(t, "rice", res.Crop)
}
