package api

import (
	"time"

	"github.com/avasquez/portfolio-backend/config"
	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/services"
	"github.com/avasquez/portfolio-backend/storage"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler        authHandler
	portfolioHandler   portfolioHandler
	skillHandler       skillHandler
	projectHandler     projectHandler
	experienceHandler  experienceHandler
	educationHandler   educationHandler
	certificateHandler certificateHandler
	languageHandler    languageHandler
	messageHandler     messageHandler
	healthHandler      healthHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, tokens *services.TokenManager, images *storage.ImageStorage, cfg map[string]string, startupTime time.Time) *routeHandlers {
	registrationEnabled := config.GetBool(cfg, "REGISTRATION_ENABLED", true)
	notifyEmail := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")
	portfolioRepo := db.PortfolioRepo()

	return &routeHandlers{
		authHandler:        newAuthHandler(db.UserRepo(), tokens, registrationEnabled),
		portfolioHandler:   newPortfolioHandler(portfolioRepo, images),
		skillHandler:       newSkillHandler(portfolioRepo),
		projectHandler:     newProjectHandler(portfolioRepo, images),
		experienceHandler:  newExperienceHandler(portfolioRepo),
		educationHandler:   newEducationHandler(portfolioRepo),
		certificateHandler: newCertificateHandler(portfolioRepo, images),
		languageHandler:    newLanguageHandler(portfolioRepo),
		messageHandler:     newMessageHandler(portfolioRepo, notifyEmail),
		healthHandler:      newHealthHandler(db, startupTime),
	}
}
