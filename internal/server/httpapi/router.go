package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okunev/musicbox/internal/common"
)

// Routes assembles the full route tree.
//
// CORS runs first so OPTIONS preflight short-circuits with 200 on every
// endpoint before any token checks. The query route only requires the
// token header to be present; the profile and subscription routes perform
// a full session validation.
func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", common.SessionTokenHeaderName},
		MaxAge:         300,
	}))
	r.Use(metricsMiddleware)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(h.requireToken)
		r.Post("/query", h.Query)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.authenticate)
		r.Get("/me", h.Me)
		r.Route("/subscriptions", func(r chi.Router) {
			r.Get("/", h.ListSubscriptions)
			r.Post("/", h.AddSubscription)
			r.Delete("/", h.RemoveSubscription)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
