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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/courses", h.listCourses)
		r.Get("/api/courses/{courseID}", h.getCourse)
		r.Post("/api/users", h.createUser)
	})

	// routes that re-authenticate Basic credentials on every request
	router.Group(func(r chi.Router) {
		r.Use(h.basicAuth)

		r.Get("/api/users", h.getCurrentUser)
		r.Post("/api/courses", h.createCourse)
		r.Put("/api/courses/{courseID}", h.updateCourse)
		r.Delete("/api/courses/{courseID}", h.deleteCourse)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
