package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/models"
	"github.com/avasquez/portfolio-backend/storage"
)

type certificateHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
	images        *storage.ImageStorage
}

func newCertificateHandler(portfolioRepo *database.PortfolioRepo, images *storage.ImageStorage) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
		images:        images,
	}
}

// createCertificate accepts plain JSON or multipart with a certificateData
// JSON field plus an optional image file.
func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var certificate models.Certificate
		file, err := decodePayload(r, "certificateData", "image", &certificate)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := certificate.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if file != nil {
			src, err := file.Open()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("read", "certificate image upload", err))
				return
			}
			defer src.Close()

			ref, err := h.images.Save(r.Context(), "certificates", file.Filename, src)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			certificate.Image = ref
		}

		certificates, err := h.portfolioRepo.AppendCertificate(certificate)
		if err != nil {
			h.responder.WriteError(w, repoError("create", "certificate", err))
			return
		}

		h.responder.WriteData(w, certificates)
	}
}

func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.CertificatePatch
		file, err := decodePayload(r, "certificateData", "image", &patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if file != nil {
			src, err := file.Open()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("read", "certificate image upload", err))
				return
			}
			defer src.Close()

			ref, err := h.images.Save(r.Context(), "certificates", file.Filename, src)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			patch.Image = &ref
		}

		certificates, err := h.portfolioRepo.UpdateCertificate(id, patch)
		if err != nil {
			h.responder.WriteError(w, repoError("update", "certificate", err))
			return
		}

		h.responder.WriteData(w, certificates)
	}
}

func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certificates, err := h.portfolioRepo.RemoveCertificate(id)
		if err != nil {
			h.responder.WriteError(w, repoError("delete", "certificate", err))
			return
		}

		h.responder.WriteData(w, certificates)
	}
}
