package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/catalog-loadtest/internal/buildinfo"
	"github.com/and161185/catalog-loadtest/internal/config"
	"github.com/and161185/catalog-loadtest/internal/metrics"
	"github.com/and161185/catalog-loadtest/internal/server"
	"github.com/and161185/catalog-loadtest/internal/tracing"
	"github.com/and161185/catalog-loadtest/storage/inmemory"
)

func main() {
	buildinfo.PrintBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.NewServerConfig()

	shutdownTracing, err := tracing.Setup(ctx, cfg.OtelEndpoint, "catalog-server")
	if err != nil {
		cfg.Logger.Fatal(err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			cfg.Logger.Errorf("failed to shut down tracing: %v", err)
		}
	}()

	cfg.Logger.Infof("Server config: Addr=%s, OtelEndpoint set=%t", cfg.Addr, cfg.OtelEndpoint != "")

	store := inmemory.NewItemStore(ctx)
	registry := metrics.NewRegistry()

	srv := server.NewServer(store, registry, cfg)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cfg.Logger.Fatal(err)
	}
}
