package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-news-app/internal/logger"
	"go-news-app/internal/middleware"
	"go-news-app/internal/render"
	"go-news-app/internal/service"
)

// CommentHandler holds the dependencies for the comment handlers.
type CommentHandler struct {
	comments service.CommentServicer
	articles service.ArticleServicer
	log      logger.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(cs service.CommentServicer, as service.ArticleServicer, log logger.Logger) *CommentHandler {
	return &CommentHandler{comments: cs, articles: as, log: log}
}

// listHandler returns the two-level thread for one article.
func (h *CommentHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	article, err := h.articles.GetArticleBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Article not found", Code: http.StatusNotFound}
	}
	thread, err := h.comments.Thread(r.Context(), article.ID)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load comments", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, thread); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render comments", Code: http.StatusInternalServerError}
	}
	return nil
}

// createHandler stores a new comment or reply on an article.
func (h *CommentHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	article, err := h.articles.GetArticleBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Article not found", Code: http.StatusNotFound}
	}

	var input service.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}

	comment, err := h.comments.PostComment(r.Context(), article.ID, input)
	if err != nil {
		if service.IsValidation(err) {
			return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
		}
		if comment != nil {
			// Comment row was written but the article counter was not.
			// Return the comment; the count catches up on the next page load.
			h.log.Error(err, "comment counter update failed")
			if renderErr := render.JSON(w, http.StatusCreated, comment); renderErr != nil {
				return &middleware.AppError{Error: renderErr, Message: "Failed to render comment", Code: http.StatusInternalServerError}
			}
			return nil
		}
		return &middleware.AppError{Error: err, Message: "Failed to store comment", Code: http.StatusInternalServerError}
	}

	if err := render.JSON(w, http.StatusCreated, comment); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render comment", Code: http.StatusInternalServerError}
	}
	return nil
}

// likeHandler bumps a comment's like counter.
func (h *CommentHandler) likeHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid comment id", Code: http.StatusBadRequest}
	}
	if err := h.comments.LikeComment(r.Context(), id); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to like comment", Code: http.StatusInternalServerError}
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
