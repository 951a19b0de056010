package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weather-mcp/internal/adapter/fetch"
	httpadapter "github.com/couchcryptid/weather-mcp/internal/adapter/http"
	"github.com/couchcryptid/weather-mcp/internal/adapter/mcpserver"
	"github.com/couchcryptid/weather-mcp/internal/adapter/nws"
	"github.com/couchcryptid/weather-mcp/internal/adapter/zippopotam"
	"github.com/couchcryptid/weather-mcp/internal/config"
	"github.com/couchcryptid/weather-mcp/internal/domain"
	"github.com/couchcryptid/weather-mcp/internal/observability"
	"github.com/couchcryptid/weather-mcp/internal/tools"
	"github.com/jonboulle/clockwork"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	fetcher := fetch.NewClient(fetch.DefaultTimeout, metrics, logger)
	weather := nws.NewClient(fetcher)

	// ZIP lookup cache (feature-flagged via LOCATION_CACHE_SIZE).
	var locations domain.LocationGateway = zippopotam.NewClient(fetcher)
	if cfg.LocationCacheSize > 0 {
		locations = zippopotam.NewCachedLocations(locations, cfg.LocationCacheSize, cfg.LocationCacheTTL, clockwork.NewRealClock(), metrics)
		logger.Info("location cache enabled", "cache_size", cfg.LocationCacheSize, "ttl", cfg.LocationCacheTTL)
	}

	svc := tools.NewService(weather, locations, metrics, logger)
	mcpSrv := mcpserver.NewServer(svc, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var srv *httpadapter.Server
	if cfg.OpsEnabled {
		var mcpHandler http.Handler
		if cfg.MCPTransport == config.TransportHTTP {
			mcpHandler = mcpSrv.HTTPHandler()
		}
		srv = httpadapter.NewServer(cfg.HTTPAddr, mcpSrv, mcpHandler, logger)

		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
				// Over stdio the tools keep working without the ops endpoints.
				if cfg.MCPTransport == config.TransportHTTP {
					stop()
				}
			}
		}()
	}

	if cfg.MCPTransport == config.TransportStdio {
		// The stdio session ends when the client closes stdin; exit with it.
		go func() {
			if err := mcpSrv.Run(ctx); err != nil {
				logger.Error("mcp server error", "error", err)
			}
			stop()
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
