package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	router.Post("/api/categories", h.createCategory)
	router.Put("/api/categories/{id}", h.updateCategory)
	router.Delete("/api/categories/{id}", h.deactivateCategory)
	router.Post("/api/categories/{id}/sync", h.syncCategory)
	router.Get("/api/categories/{id}/sync", h.getCategorySyncState)

	router.Post("/api/posts", h.createPost)
	router.Put("/api/posts/{id}", h.updatePost)
	router.Post("/api/posts/{id}/sync", h.syncPost)
	router.Get("/api/posts/{id}/sync", h.getPostSyncState)

	router.Post("/api/workflows/run", h.runWorkflow)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
