package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/user/logout", h.logout)
		r.Get("/api/user/me", h.currentUser)

		r.Get("/api/jobs", h.listJobs)
		r.Post("/api/jobs", h.createJob)
		r.Post("/api/jobs/save", h.saveJob)
		r.Get("/api/jobs/search", h.search)
		r.Get("/api/jobs/{id}", h.getJob)
		r.Put("/api/jobs/{id}", h.updateJob)
		r.Delete("/api/jobs/{id}", h.deleteJob)
		r.Put("/api/jobs/{id}/note", h.updateNote)
		r.Post("/api/jobs/{id}/triage", h.triageJob)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
