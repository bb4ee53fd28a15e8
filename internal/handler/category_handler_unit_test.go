//go:build unit

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"go-news-app/internal/data"
	"go-news-app/internal/middleware"
	"go-news-app/internal/service"
)

func newCategoryTestRouter(t *testing.T, cs service.CategoryServicer, as service.ArticleServicer) *chi.Mux {
	t.Helper()
	log := newTestLogger(t)
	h := NewCategoryHandler(cs, as, log)
	wrap := middleware.Error(log)

	r := chi.NewRouter()
	r.Method(http.MethodGet, "/api/categories", wrap(h.listHandler))
	r.Method(http.MethodGet, "/api/categories/{slug}", wrap(h.getHandler))
	r.Method(http.MethodPost, "/admin/api/categories", wrap(h.createHandler))
	r.Method(http.MethodDelete, "/admin/api/categories/{id}", wrap(h.deleteHandler))
	return r
}

func TestGetCategoryHandlerNotFound(t *testing.T) {
	router := newCategoryTestRouter(t, &mockCategoryServicer{}, &mockArticleServicer{})

	req := httptest.NewRequest(http.MethodGet, "/api/categories/no-such", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestGetCategoryHandlerIncludesArticles(t *testing.T) {
	categories := &mockCategoryServicer{
		getBySlugFunc: func(ctx context.Context, slug string) (*data.Category, error) {
			return &data.Category{ID: 3, Name: "Politics", Slug: slug}, nil
		},
	}
	var gotSlug string
	articles := &mockArticleServicer{
		listPubFunc: func(ctx context.Context, categorySlug string, limit int) ([]*data.Article, error) {
			gotSlug = categorySlug
			return []*data.Article{{ID: 11, Title: "Budget Vote", Slug: "budget-vote"}}, nil
		},
	}
	router := newCategoryTestRouter(t, categories, articles)

	req := httptest.NewRequest(http.MethodGet, "/api/categories/politics", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if gotSlug != "politics" {
		t.Errorf("article list requested for category %q, want %q", gotSlug, "politics")
	}
	var page struct {
		Category *data.Category  `json:"category"`
		Articles []*data.Article `json:"articles"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&page); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if page.Category == nil || page.Category.Name != "Politics" {
		t.Errorf("category = %+v, want Politics", page.Category)
	}
	if len(page.Articles) != 1 || page.Articles[0].Slug != "budget-vote" {
		t.Errorf("articles = %+v, want the single published article", page.Articles)
	}
}

func TestCreateCategoryHandlerValidation(t *testing.T) {
	categories := &mockCategoryServicer{
		createFunc: func(ctx context.Context, input service.CategoryInput) (*data.Category, error) {
			return nil, service.NewValidationError("please select a color")
		},
	}
	router := newCategoryTestRouter(t, categories, &mockArticleServicer{})

	req := httptest.NewRequest(http.MethodPost, "/admin/api/categories", strings.NewReader(`{"name":"Local"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestDeleteCategoryHandlerInUse(t *testing.T) {
	categories := &mockCategoryServicer{
		deleteFunc: func(ctx context.Context, id int64) error {
			return service.ErrCategoryInUse
		},
	}
	router := newCategoryTestRouter(t, categories, &mockArticleServicer{})

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/categories/4", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rr.Code)
	}
}

func TestDeleteCategoryHandler(t *testing.T) {
	var gotID int64
	categories := &mockCategoryServicer{
		deleteFunc: func(ctx context.Context, id int64) error {
			gotID = id
			return nil
		},
	}
	router := newCategoryTestRouter(t, categories, &mockArticleServicer{})

	req := httptest.NewRequest(http.MethodDelete, "/admin/api/categories/4", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	if gotID != 4 {
		t.Errorf("delete forwarded id %d, want 4", gotID)
	}
}
