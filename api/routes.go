package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public surface and the credential-gated admin
// surface. Everything that mutates the aggregate requires a valid bearer
// token except the public contact submission.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, uploadsDir string) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public endpoints
		r.Get("/api/health", handlers.healthHandler.health())
		r.Get("/api/portfolio", handlers.portfolioHandler.getPortfolio())
		r.Post("/api/portfolio/contact", handlers.messageHandler.submitContact())

		r.Post("/api/auth/register", handlers.authHandler.register())
		r.Post("/api/auth/login", handlers.authHandler.login())
		r.Post("/api/auth/logout", handlers.authHandler.logout())

		// Authenticated endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Get("/api/auth/verify", handlers.authHandler.verify())

			r.Put("/api/portfolio/personal-info", handlers.portfolioHandler.updatePersonalInfo())

			r.Post("/api/portfolio/skills", handlers.skillHandler.createSkill())
			r.Put("/api/portfolio/skills/{id}", handlers.skillHandler.updateSkill())
			r.Delete("/api/portfolio/skills/{id}", handlers.skillHandler.deleteSkill())

			r.Post("/api/portfolio/projects", handlers.projectHandler.createProject())
			r.Put("/api/portfolio/projects/{id}", handlers.projectHandler.updateProject())
			r.Delete("/api/portfolio/projects/{id}", handlers.projectHandler.deleteProject())

			r.Post("/api/portfolio/experience", handlers.experienceHandler.createExperience())
			r.Put("/api/portfolio/experience/{id}", handlers.experienceHandler.updateExperience())
			r.Delete("/api/portfolio/experience/{id}", handlers.experienceHandler.deleteExperience())

			r.Post("/api/portfolio/education", handlers.educationHandler.createEducation())
			r.Put("/api/portfolio/education/{id}", handlers.educationHandler.updateEducation())
			r.Delete("/api/portfolio/education/{id}", handlers.educationHandler.deleteEducation())

			r.Post("/api/portfolio/certificates", handlers.certificateHandler.createCertificate())
			r.Put("/api/portfolio/certificates/{id}", handlers.certificateHandler.updateCertificate())
			r.Delete("/api/portfolio/certificates/{id}", handlers.certificateHandler.deleteCertificate())

			r.Post("/api/portfolio/languages", handlers.languageHandler.createLanguage())
			r.Put("/api/portfolio/languages/{id}", handlers.languageHandler.updateLanguage())
			r.Delete("/api/portfolio/languages/{id}", handlers.languageHandler.deleteLanguage())

			r.Get("/api/portfolio/messages", handlers.messageHandler.getMessages())
			r.Put("/api/portfolio/messages/{id}/read", handlers.messageHandler.markMessageRead())
			r.Delete("/api/portfolio/messages/{id}", handlers.messageHandler.deleteMessage())
		})
	})

	// Uploaded images are served as static content
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})
}
