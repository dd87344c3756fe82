package main

import (
	"net/http"

	"bookfaker/internal/book"
	"bookfaker/internal/config"
	"bookfaker/internal/cover"
	"bookfaker/internal/httpx"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type routerDeps struct {
	server  config.ServerConfig
	books   *book.HTTPHandler
	covers  *cover.HTTPHandler
	limiter *httpx.RateLimitMiddleware
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.MetricsMiddleware)
	r.Use(httpx.SecurityHeadersMiddleware(d.server.EnableHSTS))
	r.Use(httpx.CORSMiddleware(d.server.CORSOrigins))

	r.NotFound(httpx.NotFound)
	r.MethodNotAllowed(httpx.MethodNotAllowed)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		if d.limiter != nil {
			r.Use(d.limiter.Middleware)
		}
		r.Get("/books", d.books.List)
		r.Get("/seed", d.books.RandomSeed)
		r.Get("/book-cover", d.covers.Get)
	})

	return r
}
