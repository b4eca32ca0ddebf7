package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Dosada05/chess-registry/config"
	"github.com/Dosada05/chess-registry/db"
	"github.com/Dosada05/chess-registry/handlers"
	"github.com/Dosada05/chess-registry/live"
	"github.com/Dosada05/chess-registry/routes"
	"github.com/Dosada05/chess-registry/services"
	"github.com/Dosada05/chess-registry/storage"
)

// @title Chess Registry API
// @version 1.0
// @description Federations, players, tournaments and tournament results.
// @BasePath /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		bootstrap, _ := zap.NewProduction()
		bootstrap.Fatal("failed to load configuration", zap.Error(err))
	}

	baseLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = baseLogger.Sync() }()
	logger := baseLogger.Sugar()

	if err := run(cfg, baseLogger); err != nil {
		logger.Errorw("application stopped with error", "error", err)
		_ = baseLogger.Sync()
		os.Exit(1)
	}
	logger.Info("application exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}

func run(cfg *config.Config, baseLogger *zap.Logger) error {
	logger := baseLogger.Sugar()
	logger.Infow("configuration loaded", "port", cfg.ServerPort, "driver", cfg.StorageDriver, "env", cfg.Env)

	openCtx, cancelOpen := context.WithTimeout(context.Background(), cfg.DBConnectTimeout+30*time.Second)
	store, err := db.Open(openCtx, cfg, baseLogger)
	cancelOpen()
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StorageDriver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Errorw("failed to close store", "error", err)
		} else {
			logger.Info("store closed")
		}
	}()
	logger.Infow("store ready", "driver", store.Driver)

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := live.NewHub(logger.Named("live"))
	go hub.Run(hubCtx)

	var uploader storage.FileUploader
	if cfg.ExportsEnabled() {
		uploader, err = storage.NewR2Uploader(context.Background(), storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize R2 uploader: %w", err)
		}
		logger.Infow("standings exports enabled", "bucket", cfg.R2BucketName)
	} else {
		logger.Info("standings exports disabled: R2 settings incomplete")
	}

	federationService := services.NewFederationService(store.Federations, cfg.ResultLimit)
	playerService := services.NewPlayerService(store.Players, cfg.ResultLimit)
	tournamentService := services.NewTournamentService(store.Tournaments, cfg.ResultLimit)
	resultService := services.NewResultService(store.Results, hub, cfg.ResultLimit)
	searchService := services.NewSearchService(store.Players, store.Tournaments, store.Federations, cfg.SearchLimit)
	exportService := services.NewExportService(store.Tournaments, store.Results, uploader, cfg.ResultLimit)

	handlerLogger := logger.Named("http")
	router := chi.NewRouter()
	routes.SetupRoutes(router, routes.Handlers{
		Federations: handlers.NewFederationHandler(federationService, handlerLogger),
		Players:     handlers.NewPlayerHandler(playerService, handlerLogger),
		Tournaments: handlers.NewTournamentHandler(tournamentService, handlerLogger),
		Results:     handlers.NewResultHandler(resultService, exportService, handlerLogger),
		Search:      handlers.NewSearchHandler(searchService, handlerLogger),
		System:      handlers.NewSystemHandler(store, store.Driver, handlerLogger),
		Live:        handlers.NewWebSocketHandler(hub, cfg.AllowedOrigins, handlerLogger),
	}, cfg.AllowedOrigins, handlerLogger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     zap.NewStdLog(baseLogger.Named("http-server")),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Infow("starting server", "address", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		logger.Info("server stopped")
	case sig := <-quit:
		logger.Infow("shutdown signal received", "signal", sig.String())

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancelShutdown()

		logger.Infow("shutting down server", "timeout", cfg.ShutdownTimeout)
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				logger.Errorw("failed to force close server", "error", closeErr)
			}
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server shutdown complete")
	}

	stopHub()
	return nil
}
