// Package httpapi assembles the chi router shared by every rule table.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	platformmetrics "benefitd/internal/platform/metrics"
	"benefitd/pkg/platform/httputil"
	"benefitd/pkg/platform/middleware/metadata"
	"benefitd/pkg/platform/middleware/requesttime"
)

// healthTimeout bounds each dependency probe on /health.
const healthTimeout = 2 * time.Second

// RouteRegistrar is implemented by each module handler.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// HealthCheck probes one backing dependency.
type HealthCheck func(ctx context.Context) error

// Deps carries everything NewRouter mounts.
type Deps struct {
	Logger   *slog.Logger
	Metrics  *platformmetrics.Metrics
	Gatherer prometheus.Gatherer
	Health   map[string]HealthCheck
	Modules  []RouteRegistrar
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// NewRouter mounts the module handlers behind the request metadata, request
// time and HTTP metrics middleware.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(metadata.RequestMetadata)
	r.Use(requesttime.Middleware)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	r.Get("/health", healthHandler(deps.Logger, deps.Health))
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}
	for _, m := range deps.Modules {
		m.Register(r)
	}
	return r
}

func healthHandler(logger *slog.Logger, checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for name, check := range checks {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			err := check(ctx)
			cancel()
			if err != nil {
				if logger != nil {
					logger.WarnContext(r.Context(), "health check failed", "dependency", name, "error", err)
				}
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
