// Package httptransport assembles the HTTP surface: middleware, health and
// metrics endpoints, and the feature routers. Business logic stays in the
// feature services; this package only wires them together.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adcheck/pkg/platform/httputil"
	authmw "adcheck/pkg/platform/middleware/auth"
	"adcheck/pkg/platform/middleware/requestid"
	"adcheck/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by every feature handler.
type Registrar interface {
	Register(r chi.Router)
}

// Config collects the router's dependencies. A nil Auth validator leaves
// the API open, which is only acceptable in development. Public registrars
// mount outside the bearer-protected group.
type Config struct {
	Logger   *slog.Logger
	Auth     authmw.JWTValidator
	Health   func(ctx context.Context) error
	Public   []Registrar
	Features []Registrar
}

// NewRouter builds the service router.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)

	r.Get("/healthz", handleHealth(cfg.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, public := range cfg.Public {
		public.Register(r)
	}

	r.Group(func(api chi.Router) {
		if cfg.Auth != nil {
			api.Use(authmw.RequireAuth(cfg.Auth, cfg.Logger))
		}
		for _, feature := range cfg.Features {
			feature.Register(api)
		}
	})

	return r
}

func handleHealth(check func(ctx context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			if err := check(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unavailable",
				})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
