package api

import (
	"encoding/json"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avasquez/portfolio-backend/errs"
)

const maxMultipartMemory = 16 << 20 // 16MB before spilling to disk

// decodeBody decodes a plain JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewBadRequestError("malformed request body")
	}
	return nil
}

// decodePayload handles the two body shapes the admin forms send: a plain
// JSON body, or a multipart form carrying the structured payload as a
// JSON-encoded string field plus an optional file part. The returned file
// header is nil when no file was attached.
func decodePayload(r *http.Request, jsonField, fileField string, dst any) (*multipart.FileHeader, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return nil, decodeBody(r, dst)
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, errs.NewBadRequestError("malformed multipart body")
	}

	raw := r.FormValue(jsonField)
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return nil, errs.NewBadRequestError("malformed " + jsonField + " payload")
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File[fileField]) == 0 {
		return nil, nil
	}
	return r.MultipartForm.File[fileField][0], nil
}

// itemIDParam parses the {id} route parameter.
func itemIDParam(r *http.Request) (uuid.UUID, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing id")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid id")
	}
	return id, nil
}
