package httpserver

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdiag "github.com/bryanwahyu/fasal-drishti/internal/application/diagnosis"
	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
	domain "github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
)

type stubAnalyzer struct {
	result domain.AnalysisResult
	err    error
}

func (s *stubAnalyzer) Name() domain.SourceEngine { return domain.EnginePrimaryVision }

func (s *stubAnalyzer) Infer(_ context.Context, _ []byte, _ string) (domain.AnalysisResult, error) {
	if s.err != nil {
		return domain.AnalysisResult{}, s.err
	}
	return s.result, nil
}

type memRepo struct {
	records map[domain.ScanID]*domain.ScanRecord
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[domain.ScanID]*domain.ScanRecord{}}
}

func (m *memRepo) Save(_ context.Context, rec *domain.ScanRecord) error {
	m.records[rec.ID] = rec
	return nil
}
func (m *memRepo) Get(_ context.Context, id domain.ScanID) (*domain.ScanRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return rec, nil
}
func (m *memRepo) Latest(_ context.Context, limit int) ([]*domain.ScanRecord, error) {
	out := make([]*domain.ScanRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	return out, nil
}
func (m *memRepo) ByRequester(_ context.Context, requester string, limit int) ([]*domain.ScanRecord, error) {
	var out []*domain.ScanRecord
	for _, r := range m.records {
		if r.RequesterID == requester {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *memRepo) Summary(_ context.Context, sinceDays int) (*domain.SummaryStats, error) {
	return &domain.SummaryStats{
		TotalScans: len(m.records),
		ByCrop:     map[string]int{},
		ByDisease:  map[string]int{},
		ByEngine:   map[string]int{},
	}, nil
}

func newTestRouter(t *testing.T, analyzer domain.Analyzer, repo domain.Repository) http.Handler {
	t.Helper()
	cat, err := catalog.New()
	require.NoError(t, err)

	svc := appdiag.NewService(appdiag.Service{
		Analyzers: []domain.Analyzer{analyzer},
		Catalog:   cat,
		Repo:      repo,
	})
	return NewRouter(svc, cat, nil)
}

func analyzeBody(t *testing.T, extra map[string]any) *bytes.Buffer {
	t.Helper()
	body := map[string]any{
		"image_base64": base64.StdEncoding.EncodeToString([]byte("fake-jpeg")),
	}
	for k, v := range extra {
		body[k] = v
	}
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(body))
	return buf
}

func TestAnalyzeEndpoint(t *testing.T) {
	analyzer := &stubAnalyzer{result: domain.AnalysisResult{
		Crop:       "tomato",
		DiseaseKey: "tomato_early_blight",
		Confidence: 0.87,
		Severity:   domain.SeverityModerate,
	}}
	repo := newMemRepo()
	mux := newTestRouter(t, analyzer, repo)

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", analyzeBody(t, map[string]any{
		"requester_id": "farmer-1",
	}))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rec domain.ScanRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "tomato_early_blight", rec.Diagnosis.DiseaseKey)
	assert.Equal(t, "Early Blight", rec.Diagnosis.DiseaseName)
	assert.Equal(t, "farmer-1", rec.RequesterID)
	assert.NotEmpty(t, rec.ID)
	assert.Len(t, repo.records, 1)
}

func TestAnalyzeEndpointBadRequests(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{result: domain.AnalysisResult{Crop: "tomato", DiseaseKey: "tomato_early_blight", Confidence: 0.9}}, newMemRepo())

	cases := []struct {
		name string
		body *bytes.Buffer
	}{
		{"empty image", func() *bytes.Buffer {
			buf := &bytes.Buffer{}
			buf.WriteString(`{"image_base64": ""}`)
			return buf
		}()},
		{"bad base64", func() *bytes.Buffer {
			buf := &bytes.Buffer{}
			buf.WriteString(`{"image_base64": "!!not-base64!!"}`)
			return buf
		}()},
		{"bad language", analyzeBody(t, map[string]any{"language": "english"})},
		{"bad media type", analyzeBody(t, map[string]any{"media_type": "video/mp4"})},
		{"bad requester", analyzeBody(t, map[string]any{"requester_id": "has space"})},
		{"not json", func() *bytes.Buffer {
			buf := &bytes.Buffer{}
			buf.WriteString("plain text")
			return buf
		}()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/analyze", tc.body)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAnalyzeEndpointUnavailable(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{err: errors.New("vision down")}, newMemRepo())

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", analyzeBody(t, nil))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetScanEndpoint(t *testing.T) {
	analyzer := &stubAnalyzer{result: domain.AnalysisResult{Crop: "rice", DiseaseKey: "rice_blast", Confidence: 0.8}}
	repo := newMemRepo()
	mux := newTestRouter(t, analyzer, repo)

	// seed via analyze
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", analyzeBody(t, nil))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var created domain.ScanRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	req = httptest.NewRequest(http.MethodGet, "/v1/scans/"+string(created.ID), nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got domain.ScanRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "rice_blast", got.Diagnosis.DiseaseKey)
}

func TestGetScanNotFound(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{}, newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/v1/scans/a1b2c3d4-e5f6-7890-abcd-ef0123456789", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetScanBadID(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{}, newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/v1/scans/not-a-uuid", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLatestEndpoint(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{result: domain.AnalysisResult{Crop: "wheat", DiseaseKey: "wheat_leaf_rust", Confidence: 0.8}}, newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/v1/scans/latest", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var list []*domain.ScanRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list, "empty array, not null")
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestSummaryEndpoint(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{}, newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/v1/summary?days=30", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.SummaryStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalScans)
}

func TestDiseasesEndpoints(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{}, newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/v1/diseases", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var all []*catalog.DiseaseRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 12)

	req = httptest.NewRequest(http.MethodGet, "/v1/diseases/rice_blast", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var one catalog.DiseaseRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	assert.Equal(t, "Rice Blast", one.DiseaseName)

	req = httptest.NewRequest(http.MethodGet, "/v1/diseases/nope", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCropsEndpoint(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{}, newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/v1/crops", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Crops []string `json:"crops"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Crops, "tomato")
	assert.Contains(t, body.Crops, "rice")
}

func TestHealthAndMetrics(t *testing.T) {
	mux := newTestRouter(t, &stubAnalyzer{}, newMemRepo())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/ready", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Contains(t, m, "requests_total")
	assert.Contains(t, m, "diagnoses_total")
}
