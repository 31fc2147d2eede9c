package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/models"
)

type skillHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
}

func newSkillHandler(portfolioRepo *database.PortfolioRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
	}
}

func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var skill models.Skill
		if err := decodeBody(r, &skill); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := skill.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skills, err := h.portfolioRepo.AppendSkill(skill)
		if err != nil {
			h.responder.WriteError(w, repoError("create", "skill", err))
			return
		}

		h.responder.WriteData(w, skills)
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.SkillPatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skills, err := h.portfolioRepo.UpdateSkill(id, patch)
		if err != nil {
			h.responder.WriteError(w, repoError("update", "skill", err))
			return
		}

		h.responder.WriteData(w, skills)
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skills, err := h.portfolioRepo.RemoveSkill(id)
		if err != nil {
			h.responder.WriteError(w, repoError("delete", "skill", err))
			return
		}

		h.responder.WriteData(w, skills)
	}
}
