// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/gocatalog/internal/config"
	"github.com/abgdnv/gocatalog/internal/platform/metrics"
	"github.com/abgdnv/gocatalog/internal/platform/server"
	"github.com/abgdnv/gocatalog/internal/platform/telemetry"
	"github.com/abgdnv/gocatalog/internal/product/service"
	"github.com/abgdnv/gocatalog/internal/product/store"
	"github.com/abgdnv/gocatalog/internal/product/transport/rest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

type Dependencies struct {
	ProductService service.ProductService
	Metrics        *metrics.Metrics
	Logger         *slog.Logger
}

// SetupDependencies builds the service on top of an in-memory store seeded with the catalog.
func SetupDependencies(logger *slog.Logger) *Dependencies {
	pService := service.NewService(store.NewInMemoryStore(store.SeedProducts()...))

	return &Dependencies{
		ProductService: pService,
		Metrics:        metrics.New(),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the routes and middleware of the catalog service.
// Used by E2E tests to run the real handler inside an httptest.Server.
func SetupHttpHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	var extra []func(http.Handler) http.Handler
	if cfg.Telemetry.Enabled {
		extra = append(extra, telemetry.Middleware(config.ServiceName))
	}
	if cfg.Metrics.Enabled && deps.Metrics != nil {
		extra = append(extra, deps.Metrics.Middleware(config.ServiceName))
	}

	mux := server.NewChiRouter(deps.Logger, extra...)
	rest.NewHandler(deps.ProductService, deps.Logger).RegisterRoutes(mux)
	if cfg.Metrics.Enabled && deps.Metrics != nil {
		mux.Method(http.MethodGet, cfg.Metrics.Path, deps.Metrics.Handler())
	}
	return mux
}

// SetupHttpServer creates and configures an HTTP server for the catalog service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return server.NewHTTPServer(cfg.HTTPServer, SetupHttpHandler(deps, cfg))
}

// SetupGrpcServer initializes the gRPC server with the standard health service.
// The returned health server starts in SERVING state.
func SetupGrpcServer(deps *Dependencies, cfg *config.Config) (*grpc.Server, *health.Server) {
	healthServer := health.NewServer()
	grpcServer := server.NewGRPCServer(deps.Logger, cfg.GRPC.ReflectionEnabled, func(s *grpc.Server) {
		grpc_health_v1.RegisterHealthServer(s, healthServer)
	})
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(config.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
	return grpcServer, healthServer
}
