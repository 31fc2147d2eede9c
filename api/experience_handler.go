package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/models"
)

type experienceHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
}

func newExperienceHandler(portfolioRepo *database.PortfolioRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var experience models.Experience
		if err := decodeBody(r, &experience); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := experience.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entries, err := h.portfolioRepo.AppendExperience(experience)
		if err != nil {
			h.responder.WriteError(w, repoError("create", "experience", err))
			return
		}

		h.responder.WriteData(w, entries)
	}
}

func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.ExperiencePatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entries, err := h.portfolioRepo.UpdateExperience(id, patch)
		if err != nil {
			h.responder.WriteError(w, repoError("update", "experience", err))
			return
		}

		h.responder.WriteData(w, entries)
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entries, err := h.portfolioRepo.RemoveExperience(id)
		if err != nil {
			h.responder.WriteError(w, repoError("delete", "experience", err))
			return
		}

		h.responder.WriteData(w, entries)
	}
}
