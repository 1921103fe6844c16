package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/patrimonio/wealth-backend/internal/api"
	"github.com/patrimonio/wealth-backend/internal/config"
	"github.com/patrimonio/wealth-backend/internal/database"
	"github.com/patrimonio/wealth-backend/internal/logger"
	"github.com/patrimonio/wealth-backend/internal/repository"
	"github.com/patrimonio/wealth-backend/internal/scheduler"
	"github.com/patrimonio/wealth-backend/internal/service"
	"github.com/patrimonio/wealth-backend/internal/yahoo"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("LOG_PRETTY") == "true",
	})

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	log.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	// Create repositories
	assetRepo := repository.NewAssetRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	securityRepo := repository.NewSecurityRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	planRepo := repository.NewPlanSnapshotRepository(db)
	snapshotRepo := repository.NewPortfolioSnapshotRepository(db)

	settingsRepo, err := repository.NewSettingsRepository(db, cfg.Secrets.FernetKey)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize settings repository")
	}

	// Create services
	loader := service.NewDataLoaderService(assetRepo, holdingRepo, securityRepo, transactionRepo)
	portfolioService := service.NewPortfolioService(loader, cfg.Portfolio.DisplayCurrency)
	forecastService := service.NewForecastService(loader, cfg.Portfolio.DisplayCurrency)
	snapshotService := service.NewSnapshotService(portfolioService, snapshotRepo)
	quoteService := service.NewQuoteService(securityRepo, yahoo.NewFinanceClient(), log)

	services := api.Services{
		System:      service.NewSystemService(db),
		Assets:      service.NewAssetService(assetRepo),
		Holdings:    service.NewHoldingService(holdingRepo, assetRepo),
		Securities:  service.NewSecurityService(securityRepo),
		Quotes:      quoteService,
		Transaction: service.NewTransactionService(transactionRepo, assetRepo),
		Portfolio:   portfolioService,
		Forecast:    forecastService,
		Snapshots:   snapshotService,
		Plans:       service.NewPlanService(planRepo, forecastService),
		Settings:    service.NewSettingsService(settingsRepo),
	}

	// Background jobs
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs = scheduler.New(log)
		if err := jobs.AddJob(cfg.Scheduler.SnapshotSpec, scheduler.SnapshotJob{Snapshots: snapshotService}); err != nil {
			log.Fatal().Err(err).Msg("failed to register snapshot job")
		}
		if err := jobs.AddJob(cfg.Scheduler.QuoteRefreshSpec, scheduler.QuoteRefreshJob{Quotes: quoteService}); err != nil {
			log.Fatal().Err(err).Msg("failed to register quote refresh job")
		}
		jobs.Start()
	}

	// Create HTTP server
	router := api.NewRouter(services, cfg, log)
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	if jobs != nil {
		jobs.Stop()
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
