package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/avasquez/portfolio-backend/database"
	"github.com/avasquez/portfolio-backend/errs"
	"github.com/avasquez/portfolio-backend/models"
	"github.com/avasquez/portfolio-backend/services"
)

type authHandler struct {
	responder           Responder
	logger              zerolog.Logger
	userRepo            *database.UserRepo
	tokens              *services.TokenManager
	registrationEnabled bool
}

func newAuthHandler(userRepo *database.UserRepo, tokens *services.TokenManager, registrationEnabled bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:           NewResponder(logger),
		logger:              logger,
		userRepo:            userRepo,
		tokens:              tokens,
		registrationEnabled: registrationEnabled,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool       `json:"success"`
	Token   string     `json:"token"`
	User    publicUser `json:"user"`
}

type publicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// register creates the administrator account. It is meant for initial setup
// only and can be switched off with REGISTRATION_ENABLED=false once the admin
// exists.
func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.registrationEnabled {
			h.responder.WriteError(w, errs.NewForbiddenError("registration is disabled"))
			return
		}

		var req credentialsRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if req.Username == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("username"))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		existing, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("user already exists"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		user := &models.User{
			Username:     req.Username,
			PasswordHash: string(hash),
		}
		if err := h.userRepo.Add(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		token, _, err := h.tokens.Generate(user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, authResponse{
			Success: true,
			Token:   token,
			User:    publicUser{ID: user.ID.String(), Username: user.Username},
		})
	}
}

// login verifies the stored credential and issues a fresh bearer token. The
// failure is undifferentiated on purpose.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByUsername(req.Username)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, _, err := h.tokens.Generate(user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue token"))
			return
		}

		h.responder.WriteJSON(w, authResponse{
			Success: true,
			Token:   token,
			User:    publicUser{ID: user.ID.String(), Username: user.Username},
		})
	}
}

// verify resolves the identity encoded in the presented token. Auth middleware
// has already validated it.
func (h authHandler) verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, username, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("unknown identity"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success": true,
			"user":    publicUser{ID: userID.String(), Username: username},
		})
	}
}

// logout is a stateless acknowledgment: no server-side session exists and the
// token stays valid until natural expiry.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteMessage(w, "Logged out successfully")
	}
}
