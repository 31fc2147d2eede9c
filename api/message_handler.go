package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/models"
	"github.com/avasquez/portfolio-backend/services"
)

type messageHandler struct {
	responder     Responder
	logger        zerolog.Logger
	portfolioRepo *database.PortfolioRepo
	notifyEmail   string
}

func newMessageHandler(portfolioRepo *database.PortfolioRepo, notifyEmail string) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		portfolioRepo: portfolioRepo,
		notifyEmail:   notifyEmail,
	}
}

// submitContact is the only public mutation: it appends a message to the
// inbox and acknowledges without echoing the stored message or its id.
func (h messageHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var message models.Message
		if err := decodeBody(r, &message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.portfolioRepo.AppendMessage(message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "message", err))
			return
		}

		// Owner notification is best-effort; the submitter never sees a failure.
		if h.notifyEmail != "" {
			go func(msg models.Message) {
				if err := services.NotifyContactMessage(h.notifyEmail, msg); err != nil {
					h.logger.Error().Err(err).Msg("Failed to send contact notification email")
				}
			}(message)
		}

		h.responder.WriteMessage(w, "Message sent successfully")
	}
}

func (h messageHandler) getMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.portfolioRepo.Messages()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "messages", err))
			return
		}

		h.responder.WriteData(w, messages)
	}
}

func (h messageHandler) markMessageRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		messages, err := h.portfolioRepo.MarkMessageRead(id)
		if err != nil {
			h.responder.WriteError(w, repoError("update", "message", err))
			return
		}

		h.responder.WriteData(w, messages)
	}
}

func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := itemIDParam(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		messages, err := h.portfolioRepo.RemoveMessage(id)
		if err != nil {
			h.responder.WriteError(w, repoError("delete", "message", err))
			return
		}

		h.responder.WriteData(w, messages)
	}
}
