// Package timeconvd runs the time conversion HTTP service.
package timeconvd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/Jyhwenchai/Tools-sub004/internal/api"
	"github.com/Jyhwenchai/Tools-sub004/internal/config"
	"github.com/Jyhwenchai/Tools-sub004/internal/histstore"
	"github.com/Jyhwenchai/Tools-sub004/internal/logger"
	"github.com/Jyhwenchai/Tools-sub004/timeconv"
	"github.com/Jyhwenchai/Tools-sub004/timeconv/history"
)

// Run starts the HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("timeconvd")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("source_zone", cfg.SourceZone).
		Str("target_zone", cfg.TargetZone).
		Bool("history_enabled", cfg.HistoryEnabled).
		Msg("Time conversion service starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// History: an in-memory ring backs /api/history; SQLite persistence
	// joins in when configured.
	ring := history.NewRing(cfg.HistorySize)
	recorder := history.Recorder(ring)
	var store *histstore.Store
	if cfg.HistoryEnabled {
		store, err = histstore.Open(cfg.HistoryPath)
		if err != nil {
			log.Error().Stack().Err(err).Msg("Failed to open history store")
			return err
		}
		defer func() { _ = store.Close() }()
		recorder = history.Fanout(ring, store)
	}

	engine := newEngine(cfg, recorder, log)
	defer func() { _ = engine.Close() }()

	router := api.NewRouter(engine, ring)
	api.BindServiceHealth(func() bool { return true })

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

func newEngine(cfg *config.Config, recorder history.Recorder, log zerolog.Logger) *timeconv.Engine {
	opts := []timeconv.Option{
		timeconv.WithLogger(log),
		timeconv.WithRecorder(recorder),
		timeconv.WithSequentialThreshold(cfg.BatchSequentialThreshold),
		timeconv.WithTickPeriod(time.Duration(cfg.LiveTickMillis) * time.Millisecond),
	}
	if cfg.BatchParallelism > 0 {
		opts = append(opts, timeconv.WithParallelism(cfg.BatchParallelism))
	}
	return timeconv.New(opts...)
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}
