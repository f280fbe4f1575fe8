// Package server builds the HTTP and gRPC servers of the service.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/gocatalog/internal/platform/config"
	"github.com/abgdnv/gocatalog/internal/platform/web"
	"github.com/go-chi/chi/v5"
)

// NewHTTPServer creates and configures a new HTTP server instance.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Timeout.Read,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// NewChiRouter creates a new Chi router with a set of middleware for request ID injection,
// structured logging and recovery, plus any extra middleware passed in.
// Unknown routes and methods are answered in the error schema.
func NewChiRouter(logger *slog.Logger, extra ...func(http.Handler) http.Handler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(web.RequestIDInjector)
	mux.Use(web.StructuredLogger(logger))
	mux.Use(web.Recoverer(logger))
	mux.Use(extra...)
	mux.NotFound(web.NotFoundHandler(logger))
	mux.MethodNotAllowed(web.MethodNotAllowedHandler(logger))
	return mux
}
