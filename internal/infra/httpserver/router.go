package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	appdiag "github.com/bryanwahyu/fasal-drishti/internal/application/diagnosis"
	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
	domain "github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
	"github.com/bryanwahyu/fasal-drishti/internal/middleware"
)

type Router struct {
	svc *appdiag.Service
	cat *catalog.Catalog
}

// NewRouter mounts the API. checkers feed /health; pass nil for a bare probe.
func NewRouter(svc *appdiag.Service, cat *catalog.Catalog, checkers map[string]middleware.HealthChecker) http.Handler {
	r := &Router{svc: svc, cat: cat}
	mux := chi.NewRouter()

	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requester-ID"},
		MaxAge:         300,
	}))
	mux.Use(middleware.LoggingMiddleware)
	mux.Use(middleware.MetricsMiddleware)
	mux.Use(middleware.RateLimitMiddleware(30, 2))

	if checkers != nil {
		mux.Get("/health", middleware.HealthHandler(checkers))
	} else {
		mux.Get("/health", middleware.LivenessHandler)
	}
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/analyze", r.wrap(r.handleAnalyze))
		rt.Get("/scans/latest", r.wrap(r.handleLatest))
		rt.Get("/scans/{id}", r.wrap(r.handleGet))
		rt.Get("/summary", r.wrap(r.handleSummary))
		rt.Get("/diseases", r.wrap(r.handleDiseases))
		rt.Get("/diseases/{key}", r.wrap(r.handleDisease))
		rt.Get("/crops", r.wrap(r.handleCrops))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			if errors.Is(err, domain.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if errors.Is(err, domain.ErrAnalysisUnavailable) {
				http.Error(w, "analysis services unavailable, please retry", http.StatusServiceUnavailable)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /v1/analyze
// Body: {"image_base64": "...", "media_type": "image/jpeg", "language": "hi",
//        "requester_id": "farmer-42", "voice": true}
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		ImageBase64 string `json:"image_base64"`
		MediaType   string `json:"media_type"`
		Language    string `json:"language"`
		RequesterID string `json:"requester_id"`
		Voice       bool   `json:"voice"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return errInvalid("invalid request body: " + err.Error())
	}

	if err := middleware.ValidateLanguage(body.Language); err != nil {
		return errInvalid(err.Error())
	}
	if err := middleware.ValidateMediaType(body.MediaType); err != nil {
		return errInvalid(err.Error())
	}
	if err := middleware.ValidateRequesterID(body.RequesterID); err != nil {
		return errInvalid(err.Error())
	}
	image, err := middleware.ValidateImageBase64(body.ImageBase64, r.svc.Opts.MaxImageBytes)
	if err != nil {
		return errInvalid(err.Error())
	}

	rec, err := r.svc.Analyze(req.Context(), appdiag.AnalyzeCommand{
		Image:       image,
		MediaType:   body.MediaType,
		Language:    body.Language,
		RequesterID: body.RequesterID,
		Voice:       body.Voice,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAnalysisUnavailable) {
			middleware.IncrementDiagnosesFailed()
		}
		return err
	}

	middleware.IncrementDiagnoses()
	if rec.Diagnosis.SourceEngine == domain.EngineDemoFallback {
		middleware.IncrementDiagnosesDemo()
	}
	if rec.AudioURL != "" {
		middleware.IncrementVoiceGenerated()
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(rec)
}

// GET /v1/scans/latest?limit=20&requester=farmer-42
func (r *Router) handleLatest(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))
	limit = middleware.ValidateLimit(limit)

	requester := req.URL.Query().Get("requester")

	var (
		list []*domain.ScanRecord
		err  error
	)
	if requester != "" {
		if verr := middleware.ValidateRequesterID(requester); verr != nil {
			return errInvalid(verr.Error())
		}
		list, err = r.svc.ByRequester(req.Context(), requester, limit)
	} else {
		list, err = r.svc.Latest(req.Context(), limit)
	}
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.ScanRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/scans/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateScanID(id); err != nil {
		return errInvalid(err.Error())
	}

	rec, err := r.svc.Get(req.Context(), domain.ScanID(id))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(rec)
}

// GET /v1/summary?days=7
func (r *Router) handleSummary(w http.ResponseWriter, req *http.Request) error {
	days, _ := strconv.Atoi(req.URL.Query().Get("days"))
	days = middleware.ValidateDays(days)

	summary, err := r.svc.Summary(req.Context(), days)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(summary)
}

// GET /v1/diseases
func (r *Router) handleDiseases(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(r.cat.All())
}

// GET /v1/diseases/{key}
func (r *Router) handleDisease(w http.ResponseWriter, req *http.Request) error {
	key := chi.URLParam(req, "key")
	rec, ok := r.cat.Lookup(key)
	if !ok {
		return sql.ErrNoRows
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(rec)
}

// GET /v1/crops
func (r *Router) handleCrops(w http.ResponseWriter, req *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(map[string]any{
		"crops": r.cat.Crops(),
	})
}

func errInvalid(msg string) error {
	return &invalidErr{msg: msg}
}

type invalidErr struct{ msg string }

func (e *invalidErr) Error() string { return e.msg }
func (e *invalidErr) Unwrap() error { return domain.ErrInvalidInput }
