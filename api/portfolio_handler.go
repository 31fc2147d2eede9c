package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/models"
	"github.com/avasquez/portfolio-backend/storage"
)

type portfolioHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
	images        *storage.ImageStorage
}

func newPortfolioHandler(portfolioRepo *database.PortfolioRepo, images *storage.ImageStorage) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
		images:        images,
	}
}

// getPortfolio returns the whole aggregate, creating an empty one on first
// read. Public, no envelope: the raw record is the response.
func (h portfolioHandler) getPortfolio() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		portfolio, err := h.portfolioRepo.GetOrCreate()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("load", "portfolio", err))
			return
		}

		h.responder.WriteJSON(w, portfolio)
	}
}

// updatePersonalInfo shallow-merges the submitted fields into the stored
// personal info. Accepts plain JSON or multipart with a profileImage file.
func (h portfolioHandler) updatePersonalInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.PersonalInfoPatch
		file, err := decodePayload(r, "personalInfo", "profileImage", &patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if file != nil {
			src, err := file.Open()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("read", "profile image upload", err))
				return
			}
			defer src.Close()

			ref, err := h.images.Save(r.Context(), "profile", file.Filename, src)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			patch.ProfileImage = &ref
		}

		info, err := h.portfolioRepo.MergePersonalInfo(patch)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "personal info", err))
			return
		}

		h.responder.WriteData(w, info)
	}
}
