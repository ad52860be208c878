// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mentorai/backend/internal/config"
	"github.com/mentorai/backend/internal/gateway"
	"github.com/mentorai/backend/internal/handler"
	"github.com/mentorai/backend/internal/llm"
	"github.com/mentorai/backend/internal/middleware"
	"github.com/mentorai/backend/internal/store"
	"github.com/mentorai/backend/pkg/logger"
	"github.com/mentorai/backend/pkg/tracing"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting API server")

	// The model credential is required at startup.
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize tracing if enabled
	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "mentorai-backend", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", "error", err)
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Initialize model client
	llmClient, err := llm.NewClient(llm.Provider(cfg.ModelProvider), cfg.APIKey())
	if err != nil {
		log.Error("failed to create model client", "error", err)
		os.Exit(1)
	}
	log.Info("model client ready", "provider", llmClient.Name(), "model", cfg.ModelID)

	// Initialize conversation store and gateway
	conversations := store.New()
	gw := gateway.New(conversations, llmClient, log,
		gateway.WithModel(cfg.ModelID),
		gateway.WithMaxRetries(cfg.MaxRetries),
		gateway.WithRetryBaseWait(cfg.RetryBaseWait),
	)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler()
	educationHandler := handler.NewEducationHandler(gw, log)

	// Create router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health and root endpoints
	r.Get("/health", healthHandler.Health)
	r.Get("/", healthHandler.Root)

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	// Education routes
	r.Route("/education", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))
		r.Post("/ask", educationHandler.Ask)
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
