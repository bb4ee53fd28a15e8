package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"go-news-app/internal/logger"
	"go-news-app/internal/middleware"
	"go-news-app/internal/render"
	"go-news-app/internal/service"
)

// maxUploadBytes caps a single image upload at 10 MiB.
const maxUploadBytes = 10 << 20

// MediaStorer stores and removes uploaded images.
type MediaStorer interface {
	Store(ctx context.Context, filename, contentType string, body []byte) (*service.Upload, error)
	Remove(ctx context.Context, key string) error
}

// MediaHandler accepts image uploads from the admin editor and forwards them
// to object storage.
type MediaHandler struct {
	media MediaStorer
	log   logger.Logger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(ms MediaStorer, log logger.Logger) *MediaHandler {
	return &MediaHandler{media: ms, log: log}
}

// uploadHandler stores the multipart "file" field and returns its key and
// public URL.
func (h *MediaHandler) uploadHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return &middleware.AppError{Error: err, Message: "Upload too large or malformed", Code: http.StatusBadRequest}
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Missing file field", Code: http.StatusBadRequest}
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to read upload", Code: http.StatusBadRequest}
	}

	upload, err := h.media.Store(r.Context(), header.Filename, header.Header.Get("Content-Type"), body)
	if err != nil {
		if service.IsValidation(err) {
			return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
		}
		return &middleware.AppError{Error: err, Message: "Failed to store upload", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusCreated, upload); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render upload", Code: http.StatusInternalServerError}
	}
	return nil
}

// deleteHandler removes a stored object by key.
func (h *MediaHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	key := chi.URLParam(r, "key")
	if key == "" {
		return &middleware.AppError{Error: nil, Message: "Missing object key", Code: http.StatusBadRequest}
	}
	if err := h.media.Remove(r.Context(), key); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to delete object", Code: http.StatusInternalServerError}
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
