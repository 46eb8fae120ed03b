package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/forum/backend/internal/setup"
)

// New creates the chi router with all the routes.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(deps.Metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	r.Post("/users", h.PostUser)
	r.Post("/authentications", h.PostAuthentication)
	r.Get("/threads/{threadId}", h.GetThread)

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.NeedAuth())
		r.Post("/threads", h.PostThread)
		r.Post("/threads/{threadId}/comments", h.PostComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	})

	return r
}
