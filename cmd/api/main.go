package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver

	"air-cargo-assistant/config"
	_ "air-cargo-assistant/docs" // Swagger docs
	auditRepoMemory "air-cargo-assistant/internal/audit/repository/memory"
	auditRepoPostgre "air-cargo-assistant/internal/audit/repository/postgre"
	auditUC "air-cargo-assistant/internal/audit/usecase"
	"air-cargo-assistant/internal/booking"
	bookingRepo "air-cargo-assistant/internal/booking/repository"
	bookingRepoCached "air-cargo-assistant/internal/booking/repository/cached"
	bookingRepoMemory "air-cargo-assistant/internal/booking/repository/memory"
	bookingRepoPostgre "air-cargo-assistant/internal/booking/repository/postgre"
	bookingUC "air-cargo-assistant/internal/booking/usecase"
	conversationUC "air-cargo-assistant/internal/conversation/usecase"
	"air-cargo-assistant/internal/extractor"
	"air-cargo-assistant/internal/httpserver"
	"air-cargo-assistant/pkg/llmprovider"
	"air-cargo-assistant/pkg/log"
)

// @title       Air Cargo Assistant API
// @description Conversational air cargo booking: quotes, bookings, tracking, and cancellation with an LLM front-end over a deterministic engine.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Air Cargo Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	var (
		db       *sql.DB
		repo     bookingRepo.Repository
		auditRec = auditRepoMemory.New()
	)
	srv := httpserver.Config{}
	if cfg.Postgres.URL != "" {
		db, err = sql.Open("pgx", cfg.Postgres.URL)
		if err != nil {
			logger.Error(ctx, "Failed to open Postgres: ", err)
			return
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
		if lifetime, dErr := time.ParseDuration(cfg.Postgres.ConnMaxLifetime); dErr == nil {
			db.SetConnMaxLifetime(lifetime)
		}

		if err = db.PingContext(ctx); err != nil {
			logger.Error(ctx, "Failed to ping Postgres: ", err)
			return
		}

		repo = bookingRepoPostgre.New(db, logger)
		srv.AuditUC = auditUC.New(auditRepoPostgre.New(db, logger), logger)
		logger.Info(ctx, "Postgres storage initialized")
	} else {
		repo = bookingRepoMemory.NewWithRoutes(booking.DefaultRoutes())
		srv.AuditUC = auditUC.New(auditRec, logger)
		logger.Warn(ctx, "POSTGRES_URL not set, using in-memory storage (data is lost on restart)")
	}

	// Route lookups are hot and read-only, serve them from an LRU cache.
	repo, err = bookingRepoCached.New(repo, 0, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize route cache: ", err)
		return
	}

	// 4. LLM provider chain
	specs := make([]llmprovider.ProviderSpec, 0, len(cfg.LLM.Providers))
	for _, p := range cfg.LLM.Providers {
		specs = append(specs, llmprovider.ProviderSpec{
			Name:     p.Name,
			Model:    p.Model,
			APIKey:   p.APIKey,
			BaseURL:  p.BaseURL,
			Enabled:  p.Enabled,
			Priority: p.Priority,
		})
	}
	providers, err := llmprovider.InitializeProviders(specs)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	retryDelay, err := time.ParseDuration(cfg.LLM.RetryDelay)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.retry_delay %q, using 1s: %v", cfg.LLM.RetryDelay, err)
		retryDelay = time.Second
	}
	maxTotalTimeout, err := time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	if err != nil {
		logger.Warnf(ctx, "Invalid llm.max_total_timeout %q, using 60s: %v", cfg.LLM.MaxTotalTimeout, err)
		maxTotalTimeout = 60 * time.Second
	}

	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotalTimeout,
	}, logger)

	// 5. Domains
	bkUC := bookingUC.New(repo, logger)
	ext := extractor.New(llmManager, logger)
	convUC := conversationUC.New(ext, bkUC, logger)

	// 6. HTTP Server
	srv.Logger = logger
	srv.Port = cfg.HTTPServer.Port
	srv.Mode = cfg.HTTPServer.Mode
	srv.Environment = cfg.Environment.Name
	srv.BookingUC = bkUC
	srv.ConversationUC = convUC
	srv.RateLimitEnabled = cfg.RateLimit.Enabled
	srv.RequestsPerMinute = cfg.RateLimit.RequestsPerMinute
	srv.RateLimitBurst = cfg.RateLimit.Burst

	httpServer, err := httpserver.New(logger, srv)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
