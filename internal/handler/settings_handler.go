package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"go-news-app/internal/logger"
	"go-news-app/internal/middleware"
	"go-news-app/internal/render"
	"go-news-app/internal/service"
)

// SettingsHandler serves both configuration stores: the public site settings
// rows and the admin panel blob. The two never feed each other.
type SettingsHandler struct {
	settings service.SettingsServicer
	log      logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(ss service.SettingsServicer, log logger.Logger) *SettingsHandler {
	return &SettingsHandler{settings: ss, log: log}
}

// siteHandler returns the public site configuration map.
func (h *SettingsHandler) siteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	settings, err := h.settings.SiteSettings(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to retrieve settings", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, settings); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render settings", Code: http.StatusInternalServerError}
	}
	return nil
}

// updateSiteHandler upserts the posted keys into the site store.
func (h *SettingsHandler) updateSiteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var settings map[string]string
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}
	if err := h.settings.UpdateSiteSettings(r.Context(), settings); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to update settings", Code: http.StatusInternalServerError}
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// panelHandler returns the admin panel blob, or an empty document when none
// has been saved yet.
func (h *SettingsHandler) panelHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	blob, err := h.settings.PanelSettings()
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to retrieve panel settings", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, blob); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render panel settings", Code: http.StatusInternalServerError}
	}
	return nil
}

// savePanelHandler stores the admin panel blob verbatim.
func (h *SettingsHandler) savePanelHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to read request body", Code: http.StatusBadRequest}
	}
	if err := h.settings.SavePanelSettings(blob); err != nil {
		if service.IsValidation(err) {
			return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
		}
		return &middleware.AppError{Error: err, Message: "Failed to save panel settings", Code: http.StatusInternalServerError}
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
