package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookfaker/internal/book"
	"bookfaker/internal/config"
	"bookfaker/internal/cover"
	"bookfaker/internal/httpx"
	"bookfaker/internal/logging"
	"bookfaker/internal/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: os.Stderr})

	recorder := metrics.Generation{}

	coverService, err := cover.NewService(cfg.Cover.CacheEntries, recorder)
	if err != nil {
		logging.Fatal().Err(err).Msg("cannot create cover service")
	}
	defer coverService.Close()

	bookService := book.NewService(nil, recorder)

	limiter := httpx.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	defer limiter.Close()

	router := newRouter(routerDeps{
		server:  cfg.Server,
		books:   book.NewHTTPHandler(bookService),
		covers:  cover.NewHTTPHandler(coverService),
		limiter: limiter,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logging.Fatal().Err(err).Msg("server error")
		}
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
