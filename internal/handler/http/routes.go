package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Post("/auth", h.login)
	router.Put("/auth", h.register)

	router.Post("/blood", h.saveReading)
	router.Get("/blood", h.listReadings)
	router.Get("/blood/export", h.exportReadings)

	router.Post("/ocr", h.recognize)

	return router
}
