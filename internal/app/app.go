package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"event-handler/internal/batchers"
	internalhttp "event-handler/internal/http"
	"event-handler/internal/ingestors"
	"event-handler/internal/models"
	"event-handler/internal/shared/configs"
	"event-handler/internal/shared/loggers"
	"event-handler/internal/shared/objectstorages"
	"event-handler/internal/stores"
)

const (
	storageBackendS3   = "s3"
	storageBackendFile = "file"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	flushEngine batchers.FlushEngine
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "event-handler").
		Logger()

	// Initialize object storage
	objectStorage, err := newObjectStorage(config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	batchStore := stores.NewEventBatchStore(objectStorage, config.Batching.KeyPrefix, config.Batching.ObjectName)

	// Initialize flush engine
	flushLogger := appLogger.With().Str(loggers.FieldComponent, "flush").Logger()
	flushEngine := batchers.NewFlushEngine(
		batchers.NewBatchBuffer(config.Batching.BatchSize),
		batchStore,
		batchers.Config{
			BatchSize:  config.Batching.BatchSize,
			PutTimeout: time.Duration(config.Storage.PutTimeout) * time.Second,
		},
		flushLogger,
	)

	// Initialize ingestionService
	excluded := make([]models.EventType, len(config.Batching.ExcludedEventTypes))
	for i, eventType := range config.Batching.ExcludedEventTypes {
		excluded[i] = models.EventType(eventType)
	}
	ingestionService := ingestors.NewIngestionService(
		ingestors.NewEventValidator(),
		ingestors.NewEventFilter(excluded),
		flushEngine,
		config.Batching.MaxBodyBytes,
	)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestionService, flushEngine, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:      config,
		appLogger:   appLogger,
		server:      server,
		flushEngine: flushEngine,
	}, nil
}

func newObjectStorage(cfg configs.StorageConfig) (objectstorages.ObjectStorage, error) {
	switch cfg.Backend {
	case storageBackendS3:
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.PutTimeout)*time.Second)
		defer cancel()
		return objectstorages.NewS3Storage(ctx, objectstorages.S3Options{
			Endpoint:        cfg.S3.Endpoint,
			Region:          cfg.S3.Region,
			Bucket:          cfg.S3.Bucket,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			ForcePathStyle:  cfg.S3.ForcePathStyle,
		})
	case storageBackendFile:
		return objectstorages.NewFileStorage(cfg.File.RootDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// Handler exposes the HTTP handler, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting event-handler service on port %d (log_level=%s, storage_backend=%s, batch_size=%d)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Storage.Backend,
			app.config.Batching.BatchSize)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Stop accepting webhooks
	app.appLogger.Info().Msg("Shutting down server...")
	serverErr := app.server.Shutdown(ctx)
	if serverErr != nil {
		serverErr = fmt.Errorf("server shutdown failed: %w", serverErr)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Flush what is still buffered and wait for in-flight flushes
	remaining := app.flushEngine.BufferSize()
	flushErr := app.flushEngine.Stop(ctx)
	if flushErr != nil {
		flushErr = fmt.Errorf("flush engine stop failed: %w", flushErr)
	} else {
		app.appLogger.Info().Msgf("Flush engine stopped (%d buffered events flushed)", remaining)
	}

	return errors.Join(serverErr, flushErr)
}
