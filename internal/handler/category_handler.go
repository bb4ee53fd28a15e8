package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-news-app/internal/data"
	"go-news-app/internal/logger"
	"go-news-app/internal/middleware"
	"go-news-app/internal/render"
	"go-news-app/internal/service"
)

// CategoryHandler holds the dependencies for the category handlers.
type CategoryHandler struct {
	categories service.CategoryServicer
	articles   service.ArticleServicer
	log        logger.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(cs service.CategoryServicer, as service.ArticleServicer, log logger.Logger) *CategoryHandler {
	return &CategoryHandler{categories: cs, articles: as, log: log}
}

// categoryPage is the payload for a public category section: the category
// itself plus its published articles.
type categoryPage struct {
	Category *data.Category  `json:"category"`
	Articles []*data.Article `json:"articles"`
}

// listHandler returns every category with its article count.
func (h *CategoryHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to retrieve categories", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, categories); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render categories", Code: http.StatusInternalServerError}
	}
	return nil
}

// getHandler returns one category by slug with its published articles.
func (h *CategoryHandler) getHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	slug := chi.URLParam(r, "slug")
	category, err := h.categories.GetBySlug(r.Context(), slug)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to retrieve category", Code: http.StatusInternalServerError}
	}
	if category == nil {
		return &middleware.AppError{Error: nil, Message: "Category not found", Code: http.StatusNotFound}
	}

	articles, err := h.articles.ListPublished(r.Context(), slug, 0)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to retrieve category articles", Code: http.StatusInternalServerError}
	}

	payload := categoryPage{Category: category, Articles: articles}
	if err := render.JSON(w, http.StatusOK, payload); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render category", Code: http.StatusInternalServerError}
	}
	return nil
}

// createHandler stores a new category from the admin form.
func (h *CategoryHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var input service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}
	category, err := h.categories.Create(r.Context(), input)
	if err != nil {
		if service.IsValidation(err) {
			return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
		}
		return &middleware.AppError{Error: err, Message: "Failed to create category", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusCreated, category); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render category", Code: http.StatusInternalServerError}
	}
	return nil
}

// updateHandler applies admin edits to an existing category.
func (h *CategoryHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid category id", Code: http.StatusBadRequest}
	}
	var input service.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}
	category, err := h.categories.Update(r.Context(), id, input)
	if err != nil {
		if service.IsValidation(err) {
			return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
		}
		return &middleware.AppError{Error: err, Message: "Failed to update category", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, category); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render category", Code: http.StatusInternalServerError}
	}
	return nil
}

// deleteHandler removes a category. A category still referenced by articles
// is refused with 409.
func (h *CategoryHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid category id", Code: http.StatusBadRequest}
	}
	if err := h.categories.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrCategoryInUse) {
			return &middleware.AppError{Error: err, Message: "Category is still referenced by articles", Code: http.StatusConflict}
		}
		return &middleware.AppError{Error: err, Message: "Failed to delete category", Code: http.StatusInternalServerError}
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
