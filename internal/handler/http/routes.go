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
	router.Use(h.withGzip)
	router.Use(h.checkAppKey)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/sync/{class}/base", h.baseData)
		r.Get("/api/sync/check", h.checkResync)
	})

	// routes behind JWT authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/client/register", h.registerClient)
		r.Post("/api/sync/{class}/up", h.syncUp)
		r.Post("/api/sync/{class}/down", h.syncDown)
	})

	return router
}
