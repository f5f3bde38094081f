package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site surface, the trusted admin surface, and
// static serving of stored uploads.
func setupRoutes(r chi.Router, handlers *routeHandlers, uploadRoot string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public site endpoints
		r.Get("/", handlers.publicHandler.home())
		r.Get("/project/{projectID}", handlers.publicHandler.projectDetail())
		r.Post("/contact", handlers.publicHandler.submitContact())

		// Admin panel endpoints (trusted network, no auth)
		r.Route("/admin", func(r chi.Router) {
			r.Get("/overview", handlers.aboutHandler.overview())
			r.Put("/about", handlers.aboutHandler.updateStartYear())

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Get("/skills/categories", handlers.skillHandler.listCategories())
			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Put("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())
		})
	})

	// Stored image files are served straight off the upload root
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadRoot))))
}
