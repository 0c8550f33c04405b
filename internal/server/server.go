// Package server implements the catalog HTTP service.
package server

import (
	"context"
	"net/http"

	"github.com/and161185/catalog-loadtest/internal/config"
	"github.com/and161185/catalog-loadtest/internal/metrics"
	"github.com/and161185/catalog-loadtest/internal/server/middleware"
	"github.com/and161185/catalog-loadtest/model"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
)

// Storage is the store contract the handlers require.
type Storage interface {
	Create(ctx context.Context, name string, price float64, isOffer *bool) (int64, error)
	Get(ctx context.Context, id int64) (model.Item, error)
	List(ctx context.Context, pred func(model.Item) bool) ([]model.Item, error)
}

type Server struct {
	storage  Storage
	registry *metrics.Registry
	config   *config.ServerConfig
}

func NewServer(storage Storage, registry *metrics.Registry, config *config.ServerConfig) *Server {
	return &Server{
		storage:  storage,
		registry: registry,
		config:   config,
	}
}

// Router assembles the route table. Handlers stay free of routing concerns;
// every dispatch passes the metrics middleware exactly once.
func (srv *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(chiMiddleware.StripSlashes)
	router.Use(middleware.RecoverMiddleware(srv.config.Logger))
	router.Use(middleware.LogMiddleware(srv.config.Logger))
	router.Use(middleware.CompressMiddleware)
	router.Use(middleware.MetricsMiddleware(srv.registry))
	router.Use(middleware.TraceMiddleware)

	router.Get("/", srv.RootHandler)
	router.Get("/status", srv.StatusHandler)
	router.Method(http.MethodGet, "/metrics", srv.registry.Handler())
	router.Get("/items/{id}", srv.GetItemHandler)
	router.Post("/items", srv.CreateItemHandler)
	router.Get("/search", srv.SearchHandler)
	router.Get("/error-500", srv.Error500Handler)
	router.Get("/error-400", srv.Error400Handler)

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    srv.config.Addr,
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
