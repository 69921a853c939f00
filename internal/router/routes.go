package router

import (
	"net/http"

	"github.com/docsmith/go-docgen-api/internal/handlers"
	"github.com/docsmith/go-docgen-api/internal/middleware"
	"github.com/docsmith/go-docgen-api/internal/monitoring"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/docsmith/go-docgen-api/docs" // swagger docs registration
)

// SetupRoutes configures all routes for the application
func SetupRoutes(apiHandlers *handlers.APIHandlers) http.Handler {
	mux := http.NewServeMux()

	// Register API handlers
	mux.HandleFunc("/", apiHandlers.HomeHandler)
	mux.HandleFunc("/generate-docs", apiHandlers.GenerateDocsHandler)
	mux.HandleFunc("/health", apiHandlers.HealthHandler)

	// Add metrics endpoint
	mux.HandleFunc("/metrics", monitoring.MetricsHandler)

	// Add pprof endpoints for performance profiling
	monitoring.SetupPprofRoutes(mux)

	// Serve Swagger UI
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	// Wrap with correlation tracking and metrics collection
	return middleware.RequestCorrelationMiddleware(monitoring.MetricsMiddleware(mux))
}
