package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/models"
)

type languageHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
}

func newLanguageHandler(portfolioRepo *database.PortfolioRepo) languageHandler {
	logger := log.With().Str("handlerName", "languageHandler").Logger()

	return languageHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
	}
}

func (h languageHandler) createLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var language models.Language
		if err := decodeBody(r, &language); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := language.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		languages, err := h.portfolioRepo.AppendLanguage(language)
		if err != nil {
			h.responder.WriteError(w, repoError("create", "language", err))
			return
		}

		h.responder.WriteData(w, languages)
	}
}

func (h languageHandler) updateLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.LanguagePatch
		if err := decodeBody(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := patch.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		languages, err := h.portfolioRepo.UpdateLanguage(id, patch)
		if err != nil {
			h.responder.WriteError(w, repoError("update", "language", err))
			return
		}

		h.responder.WriteData(w, languages)
	}
}

func (h languageHandler) deleteLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		languages, err := h.portfolioRepo.RemoveLanguage(id)
		if err != nil {
			h.responder.WriteError(w, repoError("delete", "language", err))
			return
		}

		h.responder.WriteData(w, languages)
	}
}
