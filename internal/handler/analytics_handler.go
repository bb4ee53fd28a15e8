package handler

import (
	"context"
	"net/http"

	"go-news-app/internal/logger"
	"go-news-app/internal/middleware"
	"go-news-app/internal/render"
	"go-news-app/internal/service"
)

// AnalyticsReporter builds dashboard reports for a time window.
type AnalyticsReporter interface {
	BuildReport(ctx context.Context, window string) (*service.Report, error)
}

// AnalyticsHandler serves the admin dashboard report.
type AnalyticsHandler struct {
	analytics AnalyticsReporter
	log       logger.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(a AnalyticsReporter, log logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: a, log: log}
}

var validWindows = map[string]bool{
	"day":   true,
	"week":  true,
	"month": true,
	"year":  true,
	"all":   true,
}

// reportHandler builds the full analytics report for the requested range.
// The default range is "all".
func (h *AnalyticsHandler) reportHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	window := r.URL.Query().Get("range")
	if window == "" {
		window = "all"
	}
	if !validWindows[window] {
		return &middleware.AppError{Error: nil, Message: "Invalid range parameter", Code: http.StatusBadRequest}
	}

	report, err := h.analytics.BuildReport(r.Context(), window)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to build analytics report", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, report); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render report", Code: http.StatusInternalServerError}
	}
	return nil
}
