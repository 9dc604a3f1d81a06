package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bryanwahyu/fasal-drishti/internal/application"
	appdiag "github.com/bryanwahyu/fasal-drishti/internal/application/diagnosis"
	"github.com/bryanwahyu/fasal-drishti/internal/config"
	"github.com/bryanwahyu/fasal-drishti/internal/domain/catalog"
	domain "github.com/bryanwahyu/fasal-drishti/internal/domain/diagnosis"
	"github.com/bryanwahyu/fasal-drishti/internal/infra/ai/demo"
	"github.com/bryanwahyu/fasal-drishti/internal/infra/ai/labels"
	visionai "github.com/bryanwahyu/fasal-drishti/internal/infra/ai/openai"
	mysqlp "github.com/bryanwahyu/fasal-drishti/internal/infra/db/mysql"
	postgresp "github.com/bryanwahyu/fasal-drishti/internal/infra/db/postgres"
	"github.com/bryanwahyu/fasal-drishti/internal/infra/httpserver"
	"github.com/bryanwahyu/fasal-drishti/internal/infra/speech"
	minioStore "github.com/bryanwahyu/fasal-drishti/internal/infra/storage"
	"github.com/bryanwahyu/fasal-drishti/internal/infra/translate"
	"github.com/bryanwahyu/fasal-drishti/internal/middleware"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// disease catalog (static, validated at startup)
	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("catalog init error: %v", err)
	}
	log.Printf("disease catalog loaded records=%d crops=%d", cat.Len(), len(cat.Crops()))

	// connect DB (mysql default, postgres optional)
	var repo domain.Repository
	checkers := map[string]middleware.HealthChecker{}
	switch cfg.Database.Driver {
	case "postgres":
		db, err := postgresp.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("postgres connect error: %v", err)
		}
		defer db.Close()
		repo = postgresp.NewScanRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	default:
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			log.Fatalf("mysql connect error: %v", err)
		}
		defer db.Close()
		repo = mysqlp.NewScanRepository(db)
		checkers["database"] = &middleware.DatabaseHealthChecker{DB: db}
	}

	// init minio
	store, err := minioStore.New(ctx,
		cfg.Minio.Endpoint,
		cfg.Minio.Region,
		cfg.Minio.BucketName,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		log.Fatalf("minio init error: %v", err)
	}
	checkers["storage"] = &middleware.StorageHealthChecker{Store: store}

	// analyzer chain: vision → labels → demo, first success wins
	var analyzers []domain.Analyzer
	if cfg.Vision.Enabled && cfg.Vision.APIKey != "" {
		analyzers = append(analyzers, visionai.NewClient(cfg.Vision.APIKey, cfg.Vision.Model))
	}
	if cfg.Labels.Enabled && cfg.Labels.Endpoint != "" {
		analyzers = append(analyzers, labels.NewClient(
			cfg.Labels.Endpoint,
			cfg.Labels.APIKey,
			cfg.Labels.MaxLabels,
			cfg.Labels.MinConfidence,
			cfg.LabelsTimeout(),
			cat,
		))
	}
	// demo selalu jadi jaring pengaman terakhir
	analyzers = append(analyzers, demo.New(cat, cfg.Pipeline.DemoMinConfidence, cfg.Pipeline.DemoMaxConfidence, nil))
	log.Printf("analyzer chain ready stages=%d vision=%t labels=%t", len(analyzers), cfg.Vision.Enabled, cfg.Labels.Enabled)

	var translator domain.Translator
	if cfg.Translate.Enabled && cfg.Vision.APIKey != "" {
		translator = translate.NewClient(cfg.Vision.APIKey, cfg.Translate.Model)
	}

	var synthesizer domain.Synthesizer
	if cfg.Speech.Enabled && cfg.Vision.APIKey != "" {
		synthesizer = speech.NewClient(cfg.Vision.APIKey, cfg.Speech.Model, cfg.Speech.Voice)
	}

	// init service
	svc := appdiag.NewService(appdiag.Service{
		Analyzers:  analyzers,
		Catalog:    cat,
		Repo:       repo,
		Media:      store,
		Translator: translator,
		Speech:     synthesizer,
		Clock:      application.SystemClock{},
		Opts: appdiag.Options{
			MaxImageBytes:      cfg.Pipeline.MaxImageBytes,
			MinConfidence:      cfg.Vision.MinConfidence,
			DefaultLanguage:    cfg.Pipeline.DefaultLanguage,
			SupportedLanguages: cfg.Pipeline.SupportedLanguages,
			StageTimeout:       cfg.VisionTimeout(),
		},
	})

	// init router
	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(svc, cat, checkers))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx2); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
