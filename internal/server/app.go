// Package server initializes and runs the image processing service. It
// wires the storage backend, the metadata repository and the HTTP API, and
// handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"testly/internal/logging"
	"testly/internal/server/config"
	"testly/internal/server/httpapi"
	"testly/internal/server/images"
	"testly/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, staticRoot, err := newStore(ctx, c)
	if err != nil {
		return nil, err
	}

	db, repo, err := images.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	api := httpapi.New(logger, store, repo, c.MaxUploadBytes, staticRoot)

	return &App{config: c, logger: logger, db: db, api: api}, nil
}

// newStore picks the storage backend. The local backend also exposes its
// root so the HTTP layer can serve the files directly.
func newStore(ctx context.Context, c *config.Config) (storage.Store, string, error) {
	switch c.StorageBackend {
	case "local":
		s, err := storage.NewLocalStore(c.StorageDir, c.PublicBaseURL)
		if err != nil {
			return nil, "", err
		}
		return s, s.Root(), nil
	case "s3":
		s, err := storage.NewS3Store(ctx, storage.S3Options{
			AccessKey:    c.S3AccessKey,
			SecretKey:    c.S3SecretKey,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
		if err != nil {
			return nil, "", err
		}
		return s, "", nil
	default:
		return nil, "", fmt.Errorf("unknown storage backend: %s", c.StorageBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:         app.config.Addr,
		Handler:      app.api.Router(app.config.CORSOrigins),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			app.logger.Error(ctx, err.Error())
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, err.Error())
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	app.logger.Info(ctx, "Server stopped")
}
