// Package app wires configuration, storage, and the typed database into the
// cdclient services.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	httpapi "github.com/Xiphoseer/paradox-typed-db/internal/api/http"
	"github.com/Xiphoseer/paradox-typed-db/internal/config"
	"github.com/Xiphoseer/paradox-typed-db/internal/export"
	"github.com/Xiphoseer/paradox-typed-db/internal/server"
	"github.com/Xiphoseer/paradox-typed-db/internal/storage"
	"github.com/Xiphoseer/paradox-typed-db/pkg/fdb"
	"github.com/Xiphoseer/paradox-typed-db/pkg/typed"
)

// App manages the cdclient service lifecycle.
type App struct {
	cfg *config.Config

	// Shared resources
	storage  storage.ObjectStorage
	store    *fdb.Store
	db       *typed.Database
	shutdown *server.ShutdownManager

	httpServer *http.Server

	// Lifecycle
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a new App with the given configuration.
func New(cfg *config.Config) (*App, error) {
	cfg.Resolve()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	return &App{
		cfg:      cfg,
		shutdown: server.NewShutdownManager(0),
	}, nil
}

// Load initializes storage, fetches the database file if it lives in object
// storage, and constructs the typed database. It must run before Serve or
// Export.
func (a *App) Load(ctx context.Context) error {
	if err := a.initStorage(ctx); err != nil {
		return err
	}

	if a.cfg.Database.Object != "" {
		log.Printf("Downloading database object %s to %s", a.cfg.Database.Object, a.cfg.Database.Path)
		if err := a.storage.Download(ctx, a.cfg.Database.Object, a.cfg.Database.Path); err != nil {
			return fmt.Errorf("failed to download database: %w", err)
		}
	}

	store, err := fdb.Open(a.cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to read database file: %w", err)
	}

	db, err := typed.New(store)
	if err != nil {
		return fmt.Errorf("failed to bind database schema: %w", err)
	}

	a.store = store
	a.db = db

	tables := store.Tables()
	rows := 0
	for _, t := range tables {
		rows += t.RowCount()
	}
	log.Printf("Database loaded: %d tables, %d rows", len(tables), rows)
	return nil
}

// initStorage constructs the object storage backend.
func (a *App) initStorage(ctx context.Context) error {
	var err error
	switch a.cfg.Storage.Type {
	case "local":
		a.storage, err = storage.NewLocalStorage(a.cfg.Storage.Path)
	case "s3":
		s3Cfg := storage.DefaultS3Config()
		if a.cfg.Storage.S3.Region != "" {
			s3Cfg.Region = a.cfg.Storage.S3.Region
		}
		if a.cfg.Storage.S3.Endpoint != "" {
			s3Cfg.Endpoint = a.cfg.Storage.S3.Endpoint
		}
		s3Cfg.UsePathStyle = a.cfg.Storage.S3.UsePathStyle
		a.storage, err = storage.NewS3Storage(ctx, a.cfg.Storage.S3.Bucket, s3Cfg)
	default:
		return fmt.Errorf("unsupported storage type: %s", a.cfg.Storage.Type)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Printf("Storage initialized: type=%s", a.cfg.Storage.Type)
	return nil
}

// Serve starts the HTTP query API and blocks until shutdown.
func (a *App) Serve(ctx context.Context) error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return fmt.Errorf("app is already running")
	}
	if a.db == nil {
		a.mu.Unlock()
		return fmt.Errorf("database not loaded")
	}
	a.running = true
	a.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	defer cancel()

	handler := httpapi.NewHandler(a.db)

	mux := http.NewServeMux()
	middleware := httpapi.ChainMiddleware(
		server.ShutdownMiddleware(a.shutdown),
		httpapi.RecoveryMiddleware,
		httpapi.RequestIDMiddleware,
		httpapi.LoggingMiddleware,
		httpapi.ContentTypeMiddleware,
	)
	mux.Handle("/v0/", middleware(handler.Routes()))
	mux.HandleFunc("/health", a.healthHandler())

	a.httpServer = &http.Server{
		Addr:         a.cfg.HTTP.Addr,
		Handler:      mux,
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
		IdleTimeout:  a.cfg.HTTP.IdleTimeout,
	}
	a.shutdown.RegisterCloser(&server.HTTPServerCloser{Server: a.httpServer})

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		log.Printf("Query API listening on %s", a.cfg.HTTP.Addr)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	err := a.shutdown.ListenForSignals(ctx)
	a.wg.Wait()
	log.Printf("cdclient stopped")
	return err
}

// Export runs a one-shot export of the loaded database.
func (a *App) Export(ctx context.Context) (*export.Stats, error) {
	a.mu.Lock()
	db := a.db
	a.mu.Unlock()
	if db == nil {
		return nil, fmt.Errorf("database not loaded")
	}

	opts := export.Options{
		OutDir:       a.cfg.Export.OutDir,
		SQLitePath:   a.cfg.Export.SQLitePath,
		CompressJSON: a.cfg.Export.CompressJSON,
		Tables:       a.cfg.Export.Tables,
	}

	start := time.Now()
	stats, err := export.New(a.store, opts).Run(ctx)
	if err != nil {
		return nil, err
	}

	log.Printf("Export finished: %d tables in %s", len(stats.Tables), time.Since(start))
	return stats, nil
}

// Stop initiates graceful shutdown of a running Serve.
func (a *App) Stop(ctx context.Context) error {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return nil
	}
	a.running = false
	a.mu.Unlock()

	log.Printf("Initiating graceful shutdown...")
	if a.cancel != nil {
		a.cancel()
	}
	return a.shutdown.Shutdown(ctx)
}

// Database returns the loaded typed database, or nil before Load.
func (a *App) Database() *typed.Database {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db
}

// healthHandler returns the health check handler.
func (a *App) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","service":"cdclient","mode":"%s"}`, a.cfg.Mode)
	}
}
