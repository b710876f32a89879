package http

import (
	"net/http"

	"event-handler/internal/batchers"
	"event-handler/internal/ingestors"
	"event-handler/internal/shared/loggers"
	"event-handler/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, flushEngine batchers.FlushEngine, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Webhook senders post from browsers as well as servers.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	// Initialize handlers
	ingestEventsHandler := NewIngestEventsHandler(ingestionService)
	healthHandler := NewHealthHandler(flushEngine)

	// Routes
	router.Post("/webhook/events", errorHandlingAdapter(ingestEventsHandler))
	router.Get("/health", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
