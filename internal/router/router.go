package router

import (
	"github.com/go-chi/chi/v5"
	chi_mw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goboards-dev/goboards/internal/handler"
	mw "github.com/goboards-dev/goboards/internal/middleware"
	"github.com/goboards-dev/goboards/internal/middleware/metrics"
)

// New wires all routes. Reads are anonymous, writes require an
// identity, board creation requires the admin claim.
func New(h *handler.Handler, auth *mw.Auth) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chi_mw.RequestID)
	r.Use(chi_mw.RealIP)
	r.Use(chi_mw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/boards", h.GetBoards)

		r.Route("/boards/{board}", func(r chi.Router) {
			r.Get("/", h.ListTopics)

			r.Route("/topics", func(r chi.Router) {
				r.With(auth.NeedAuth()).Post("/", h.CreateTopic)

				r.Route("/{topic}", func(r chi.Router) {
					r.Get("/", h.GetThread)
					r.With(auth.NeedAuth()).Post("/posts", h.CreatePost)
					r.With(auth.NeedAuth()).Put("/posts/{post}", h.EditPost)
				})
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AdminOnly())
			r.Post("/boards", h.CreateBoard)
		})
	})

	return r
}
