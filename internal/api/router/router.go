package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"sredemo/internal/api/handlers"
	"sredemo/internal/api/middleware"
	"sredemo/internal/metrics"
)

// RouterConfig defines the dependencies required to build the routing tree.
type RouterConfig struct {
	InfoHandler   *handlers.InfoHandler
	TodoHandler   *handlers.TodoHandler
	HealthHandler *handlers.HealthHandler
	Logger        *slog.Logger
}

// NewRouter constructs the chi multiplexer, attaches the middleware pipeline,
// and wires all endpoints. Paths are flat (no /api/v1 prefix): supervisor
// probes and remediation scripts address /health, /trigger-failure etc.
// literally, so the wire contract keeps those exact paths.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(cfg.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", cfg.InfoHandler.Info)
	r.Get("/health", cfg.HealthHandler.Check)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", cfg.TodoHandler.List)
		r.Post("/", cfg.TodoHandler.Create)
		r.Get("/{id}", cfg.TodoHandler.Get)
		r.Put("/{id}", cfg.TodoHandler.Update)
		r.Delete("/{id}", cfg.TodoHandler.Delete)
	})

	// Fault-injection surface. Throttled, never rejected: these operations
	// are unconditional, a delayed trigger or crash still has to land.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Throttle(rate.NewLimiter(rate.Limit(50), 20)))
		r.Post("/trigger-failure", cfg.HealthHandler.TriggerFailure)
		r.Post("/remediate", cfg.HealthHandler.Remediate)
		r.Post("/crash", cfg.HealthHandler.Crash)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "not found"}`, http.StatusNotFound)
	})

	return r
}
