package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"go-news-app/internal/data"
	"go-news-app/internal/logger"
	"go-news-app/internal/middleware"
	"go-news-app/internal/render"
	"go-news-app/internal/service"
)

// ArticleHandler holds the dependencies for the public and admin article handlers.
type ArticleHandler struct {
	articles service.ArticleServicer
	comments service.CommentServicer
	log      logger.Logger
}

// NewArticleHandler creates a new ArticleHandler with the given dependencies.
func NewArticleHandler(as service.ArticleServicer, cs service.CommentServicer, log logger.Logger) *ArticleHandler {
	return &ArticleHandler{
		articles: as,
		comments: cs,
		log:      log,
	}
}

// articlePage is the payload for a public article view: the article with its
// rendered body plus the threaded comments.
type articlePage struct {
	Article  *data.Article              `json:"article"`
	Comments []*service.ThreadedComment `json:"comments"`
}

// listHandler returns published articles, optionally filtered by category slug.
func (h *ArticleHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return &middleware.AppError{Error: err, Message: "Invalid limit parameter", Code: http.StatusBadRequest}
		}
		limit = parsed
	}

	articles, err := h.articles.ListPublished(r.Context(), r.URL.Query().Get("category"), limit)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to retrieve articles", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, articles); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render articles", Code: http.StatusInternalServerError}
	}
	return nil
}

// viewHandler serves one article by slug together with its comment thread.
// Loading the page records a view.
func (h *ArticleHandler) viewHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	slug := chi.URLParam(r, "slug")

	article, err := h.articles.ViewArticle(r.Context(), slug)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Article not found", Code: http.StatusNotFound}
	}

	comments, err := h.comments.Thread(r.Context(), article.ID)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load comments", Code: http.StatusInternalServerError}
	}

	payload := articlePage{Article: article, Comments: comments}
	if err := render.JSON(w, http.StatusOK, payload); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render article", Code: http.StatusInternalServerError}
	}
	return nil
}

// searchHandler runs the multi-column pattern search.
func (h *ArticleHandler) searchHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	results, err := h.articles.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Search failed", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, results); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render search results", Code: http.StatusInternalServerError}
	}
	return nil
}

// likeHandler applies a like or unlike to an article.
func (h *ArticleHandler) likeHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	article, err := h.articles.GetArticleBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Article not found", Code: http.StatusNotFound}
	}

	var body struct {
		Action string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}

	if err := h.articles.Like(r.Context(), article.ID, body.Action); err != nil {
		if service.IsValidation(err) {
			return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
		}
		return &middleware.AppError{Error: err, Message: "Failed to update likes", Code: http.StatusInternalServerError}
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// adminListHandler returns every article for the dashboard, with an optional
// draft/published partition via ?status= and flag filters via ?flag=.
func (h *ArticleHandler) adminListHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	articles, err := h.articles.ListAll(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to retrieve articles", Code: http.StatusInternalServerError}
	}

	switch r.URL.Query().Get("status") {
	case "draft":
		articles = filterArticles(articles, func(a *data.Article) bool { return a.IsDraft() })
	case "published":
		articles = filterArticles(articles, func(a *data.Article) bool { return !a.IsDraft() })
	}

	switch r.URL.Query().Get("flag") {
	case "featured":
		articles = filterArticles(articles, func(a *data.Article) bool { return a.IsFeatured })
	case "video":
		articles = filterArticles(articles, func(a *data.Article) bool { return a.IsVideo })
	case "breaking":
		articles = filterArticles(articles, func(a *data.Article) bool { return a.IsBreaking })
	case "live":
		articles = filterArticles(articles, func(a *data.Article) bool { return a.IsLive })
	}

	if err := render.JSON(w, http.StatusOK, articles); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render articles", Code: http.StatusInternalServerError}
	}
	return nil
}

func filterArticles(articles []*data.Article, keep func(*data.Article) bool) []*data.Article {
	filtered := make([]*data.Article, 0, len(articles))
	for _, a := range articles {
		if keep(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// adminGetHandler returns one article by id, drafts included.
func (h *ArticleHandler) adminGetHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid article id", Code: http.StatusBadRequest}
	}
	article, err := h.articles.GetArticleByID(r.Context(), id)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Article not found", Code: http.StatusNotFound}
	}
	if err := render.JSON(w, http.StatusOK, article); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render article", Code: http.StatusInternalServerError}
	}
	return nil
}

// createHandler stores a new article from the admin form.
func (h *ArticleHandler) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var input service.ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}

	article, err := h.articles.CreateArticle(r.Context(), input)
	if err != nil {
		if service.IsValidation(err) {
			return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
		}
		return &middleware.AppError{Error: err, Message: "Failed to create article", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusCreated, article); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render article", Code: http.StatusInternalServerError}
	}
	return nil
}

// updateHandler applies admin edits to an existing article.
func (h *ArticleHandler) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid article id", Code: http.StatusBadRequest}
	}

	var input service.ArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid request body", Code: http.StatusBadRequest}
	}

	article, err := h.articles.UpdateArticle(r.Context(), id, input)
	if err != nil {
		if service.IsValidation(err) {
			return &middleware.AppError{Error: err, Message: err.Error(), Code: http.StatusBadRequest}
		}
		return &middleware.AppError{Error: err, Message: "Failed to update article", Code: http.StatusInternalServerError}
	}
	if err := render.JSON(w, http.StatusOK, article); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render article", Code: http.StatusInternalServerError}
	}
	return nil
}

// deleteHandler removes an article.
func (h *ArticleHandler) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid article id", Code: http.StatusBadRequest}
	}
	if err := h.articles.DeleteArticle(r.Context(), id); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to delete article", Code: http.StatusInternalServerError}
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
