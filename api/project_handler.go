package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/models"
	"github.com/avasquez/portfolio-backend/storage"
)

type projectHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
	images        *storage.ImageStorage
}

func newProjectHandler(portfolioRepo *database.PortfolioRepo, images *storage.ImageStorage) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
		images:        images,
	}
}

// createProject accepts plain JSON or multipart with a projectData JSON field
// plus an optional image file.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		file, err := decodePayload(r, "projectData", "image", &project)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := project.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if file != nil {
			src, err := file.Open()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("read", "project image upload", err))
				return
			}
			defer src.Close()

			ref, err := h.images.Save(r.Context(), "projects", file.Filename, src)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			project.Image = ref
		}

		projects, err := h.portfolioRepo.AppendProject(project)
		if err != nil {
			h.responder.WriteError(w, repoError("create", "project", err))
			return
		}

		h.responder.WriteData(w, projects)
	}
}

func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var patch models.ProjectPatch
		file, err := decodePayload(r, "projectData", "image", &patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := patch.Validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if file != nil {
			src, err := file.Open()
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("read", "project image upload", err))
				return
			}
			defer src.Close()

			ref, err := h.images.Save(r.Context(), "projects", file.Filename, src)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			patch.Image = &ref
		}

		projects, err := h.portfolioRepo.UpdateProject(id, patch)
		if err != nil {
			h.responder.WriteError(w, repoError("update", "project", err))
			return
		}

		h.responder.WriteData(w, projects)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		projects, err := h.portfolioRepo.RemoveProject(id)
		if err != nil {
			h.responder.WriteError(w, repoError("delete", "project", err))
			return
		}

		h.responder.WriteData(w, projects)
	}
}
