package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/lab"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/readmission"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/auth"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/config"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/database"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/metrics"
	secmiddleware "github.com/kumkum-thakur/recovery-pilot-sub011/internal/shared/middleware"
	"github.com/kumkum-thakur/recovery-pilot-sub011/internal/wound"
)

// App holds all application dependencies
type App struct {
	Config *config.Config
	DB     *database.DB
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	app := &App{Config: cfg}

	// Initialize database (optional - fall back to in-memory stores)
	db, err := database.New(ctx, cfg.Database)
	if err != nil {
		fmt.Printf("Warning: Database not available: %v\n", err)
		fmt.Println("Running with in-memory state; baselines, corrections and outcomes will not survive restarts")
	} else {
		app.DB = db
		defer db.Close()

		if err := database.Migrate(ctx, db.Pool); err != nil {
			fmt.Printf("Warning: Migration failed: %v\n", err)
		}
	}

	// Repositories: Postgres when available, in-memory otherwise
	var baselineRepo lab.BaselineRepository
	var correctionRepo wound.CorrectionRepository
	var outcomeRepo readmission.OutcomeRepository
	var weightsRepo readmission.WeightsRepository
	if app.DB != nil {
		baselineRepo = lab.NewPostgresBaselineRepository(app.DB.Pool)
		correctionRepo = wound.NewPostgresCorrectionRepository(app.DB.Pool)
		outcomeRepo = readmission.NewPostgresOutcomeRepository(app.DB.Pool)
		weightsRepo = readmission.NewPostgresWeightsRepository(app.DB.Pool)
	} else {
		baselineRepo = lab.NewMemoryBaselineRepository()
		correctionRepo = wound.NewMemoryCorrectionRepository()
		outcomeRepo = readmission.NewMemoryOutcomeRepository()
		weightsRepo = readmission.NewMemoryWeightsRepository()
	}

	interpreter := lab.NewInterpreter(baselineRepo)
	classifier := wound.NewClassifier(correctionRepo)
	predictor, err := readmission.NewPredictor(ctx, cfg.Engine, outcomeRepo, weightsRepo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize predictor: %v\n", err)
		os.Exit(1)
	}

	rateLimiter := secmiddleware.NewIPRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(secmiddleware.SecurityHeaders)
	r.Use(secmiddleware.InputSanitizer)
	r.Use(metrics.Middleware)
	r.Use(secmiddleware.CORS(secmiddleware.DefaultCORSConfig()))

	// Health checks (unauthenticated)
	r.Get("/health", healthHandler(app))
	r.Get("/ready", readyHandler(app))
	r.Handle("/metrics", metrics.Handler())

	// API info
	r.Get("/", infoHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(rateLimiter.Middleware)
		if cfg.Server.Env == "production" {
			r.Use(auth.Middleware(cfg.Auth))
		}

		r.Mount("/labs", lab.NewHandler(interpreter).Routes())
		r.Mount("/wounds", wound.NewHandler(classifier).Routes())
		r.Mount("/readmission", readmission.NewHandler(predictor).Routes())
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		fmt.Println("\nShutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
		close(done)
	}()

	fmt.Println("============================================")
	fmt.Println("Recovery Pilot Clinical Decision Support")
	fmt.Println("============================================")
	fmt.Printf("Environment:  %s\n", cfg.Server.Env)
	fmt.Printf("Server:       http://localhost:%d\n", cfg.Server.Port)
	fmt.Printf("API:          http://localhost:%d/api/v1\n", cfg.Server.Port)
	fmt.Printf("Health:       http://localhost:%d/health\n", cfg.Server.Port)
	fmt.Printf("Database:     %v\n", app.DB != nil)
	fmt.Println("============================================")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}

	<-done
	fmt.Println("Server stopped")
}

func infoHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"name":    "Recovery Pilot Clinical Decision Support",
		"version": "0.1.0",
		"docs":    "/api/v1",
	})
}

func healthHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
		})
	}
}

func readyHandler(app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{
			"server": "ready",
		}

		if app.DB != nil {
			if err := app.DB.Health(r.Context()); err != nil {
				checks["database"] = "not ready: " + err.Error()
			} else {
				checks["database"] = "ready"
			}
		} else {
			checks["database"] = "not configured"
		}

		allReady := true
		for _, status := range checks {
			if status != "ready" && status != "not configured" {
				allReady = false
				break
			}
		}

		status := http.StatusOK
		if !allReady {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"status": map[bool]string{true: "ready", false: "not ready"}[allReady],
			"checks": checks,
		})
	}
}
