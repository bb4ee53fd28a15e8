package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"go-news-app/internal/logger"
	appmw "go-news-app/internal/middleware"
	"go-news-app/internal/session"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Articles   *ArticleHandler
	Comments   *CommentHandler
	Categories *CategoryHandler
	Analytics  *AnalyticsHandler
	Settings   *SettingsHandler
	Media      *MediaHandler
	Auth       *AuthHandler
	Seo        *SeoHandler
}

// NewRouter creates and configures a new chi router.
func NewRouter(h Handlers, sm session.Manager, authz func(http.Handler) http.Handler, log logger.Logger) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(sm.LoadAndSave)

	wrap := appmw.Error(log)

	// Authentication routes
	r.Get("/auth/login", h.Auth.handleLogin)
	r.Get("/auth/callback", h.Auth.handleCallback)
	r.Get("/auth/logout", h.Auth.handleLogout)

	// Crawler routes
	r.Get("/robots.txt", h.Seo.robotsHandler)
	r.Get("/sitemap.xml", h.Seo.sitemapHandler)

	// Everything under /api and /admin/api goes through Casbin. Public
	// reads are allowed to the anonymous role by policy, not by being
	// outside the group.
	r.Group(func(r chi.Router) {
		r.Use(authz)

		// Public content
		r.Method(http.MethodGet, "/api/articles", wrap(h.Articles.listHandler))
		r.Method(http.MethodGet, "/api/articles/{slug}", wrap(h.Articles.viewHandler))
		r.Method(http.MethodPost, "/api/articles/{slug}/like", wrap(h.Articles.likeHandler))
		r.Method(http.MethodGet, "/api/articles/{slug}/comments", wrap(h.Comments.listHandler))
		r.Method(http.MethodPost, "/api/articles/{slug}/comments", wrap(h.Comments.createHandler))
		r.Method(http.MethodPost, "/api/comments/{id}/like", wrap(h.Comments.likeHandler))
		r.Method(http.MethodGet, "/api/categories", wrap(h.Categories.listHandler))
		r.Method(http.MethodGet, "/api/categories/{slug}", wrap(h.Categories.getHandler))
		r.Method(http.MethodGet, "/api/search", wrap(h.Articles.searchHandler))
		r.Method(http.MethodGet, "/api/settings", wrap(h.Settings.siteHandler))

		// Admin: articles and media (editor role and up)
		r.Method(http.MethodGet, "/admin/api/articles", wrap(h.Articles.adminListHandler))
		r.Method(http.MethodPost, "/admin/api/articles", wrap(h.Articles.createHandler))
		r.Method(http.MethodGet, "/admin/api/articles/{id}", wrap(h.Articles.adminGetHandler))
		r.Method(http.MethodPut, "/admin/api/articles/{id}", wrap(h.Articles.updateHandler))
		r.Method(http.MethodDelete, "/admin/api/articles/{id}", wrap(h.Articles.deleteHandler))
		r.Method(http.MethodPost, "/admin/api/media", wrap(h.Media.uploadHandler))
		r.Method(http.MethodDelete, "/admin/api/media/{key}", wrap(h.Media.deleteHandler))

		// Admin: categories, analytics, settings (admin role only)
		r.Method(http.MethodPost, "/admin/api/categories", wrap(h.Categories.createHandler))
		r.Method(http.MethodPut, "/admin/api/categories/{id}", wrap(h.Categories.updateHandler))
		r.Method(http.MethodDelete, "/admin/api/categories/{id}", wrap(h.Categories.deleteHandler))
		r.Method(http.MethodGet, "/admin/api/analytics", wrap(h.Analytics.reportHandler))
		r.Method(http.MethodGet, "/admin/api/settings/site", wrap(h.Settings.siteHandler))
		r.Method(http.MethodPut, "/admin/api/settings/site", wrap(h.Settings.updateSiteHandler))
		r.Method(http.MethodGet, "/admin/api/settings/panel", wrap(h.Settings.panelHandler))
		r.Method(http.MethodPut, "/admin/api/settings/panel", wrap(h.Settings.savePanelHandler))
	})

	return r
}
