package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/avasquez/portfolio-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal the data first so encoding failures never produce a half-written body
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteData writes the mutating-endpoint envelope with a data payload.
func (r Responder) WriteData(w http.ResponseWriter, data any) {
	r.WriteJSON(w, map[string]any{
		"success": true,
		"data":    data,
	})
}

// WriteMessage writes the mutating-endpoint envelope with a message only.
func (r Responder) WriteMessage(w http.ResponseWriter, message string) {
	r.WriteJSON(w, map[string]any{
		"success": true,
		"message": message,
	})
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log the full chain and return a generic message
	// that exposes no internal diagnostic detail.
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]any{
			"success": false,
			"message": "An unexpected error occurred",
		})
		return
	}

	if apiErr.Cause != nil {
		r.logger.Error().Msg(apiErr.GetFullError())
	}

	response := map[string]any{
		"success": false,
		"message": apiErr.Error(),
	}

	// Field information helps admin forms highlight the offending input
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	// Server-side faults stay generic towards the caller
	if apiErr.StatusCode >= http.StatusInternalServerError {
		response["message"] = "An unexpected error occurred"
		delete(response, "field")
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}

// repoError maps a repository failure onto the API taxonomy: a missing
// sub-item surfaces as 404, anything else as a storage fault.
func repoError(operation, entity string, err error) error {
	if errs.IsNotFound(err) {
		return errs.NewNotFoundError(entity + " not found")
	}
	return wrapDatabaseError(operation, entity, err)
}
