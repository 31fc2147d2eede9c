package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/models"
)

type educationHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
}

func newEducationHandler(portfolioRepo *database.PortfolioRepo) educationHandler {
	logger := log.With().Str("handlerName", "educationHandler").Logger()

	return educationHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
	}
}

func (h educationHandler) createEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var education models.Education
		if err := decodeBody(r, &education); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := education.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entries, err := h.portfolioRepo.AppendEducation(education)
		if err != nil {
			h.responder.WriteError(w, repoError("create", "education", err))
			return
		}

		h.responder.WriteData(w, entries)
	}
}

func (h educationHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.EducationPatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entries, err := h.portfolioRepo.UpdateEducation(id, patch)
		if err != nil {
			h.responder.WriteError(w, repoError("update", "education", err))
			return
		}

		h.responder.WriteData(w, entries)
	}
}

func (h educationHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		entries, err := h.portfolioRepo.RemoveEducation(id)
		if err != nil {
			h.responder.WriteError(w, repoError("delete", "education", err))
			return
		}

		h.responder.WriteData(w, entries)
	}
}
