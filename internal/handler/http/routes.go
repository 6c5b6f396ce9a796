package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Route("/api/sync", func(r chi.Router) {
		r.Post("/", h.syncAll)
		r.Post("/schedule", h.scheduleSync)
		r.Get("/status", h.syncStatus)
		r.Post("/{entityType}", h.syncOne)
	})

	router.Get("/api/health", h.health)
	router.Post("/api/auth/token", h.updateToken)

	router.Post("/api/entries/", h.createTimeEntry)
	router.Post("/api/entries/{id}/stop", h.stopTimeEntry)
	router.Post("/api/activities/", h.recordActivity)
	router.Post("/api/screenshots/", h.recordScreenshot)
	router.Post("/api/clients/", h.createClient)
	router.Post("/api/projects/", h.createProject)
	router.Post("/api/tasks/", h.createTask)

	router.Get("/api/records/{entityType}", h.listEntities)
	router.Get("/api/organization/members", h.organizationMembers)
	router.Get("/api/organization/me", h.currentMember)

	return router
}
