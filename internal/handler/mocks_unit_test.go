//go:build unit

package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-news-app/internal/config"
	"go-news-app/internal/data"
	"go-news-app/internal/logger"
	"go-news-app/internal/service"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	return logger.New(config.LogConfig{Level: "error", Format: "console"})
}

func timeNowPtr() *time.Time {
	now := time.Now()
	return &now
}

var errNotConfigured = errors.New("mock call not configured")

// mockArticleServicer is a function-field mock of service.ArticleServicer.
type mockArticleServicer struct {
	createFunc    func(ctx context.Context, input service.ArticleInput) (*data.Article, error)
	updateFunc    func(ctx context.Context, id int64, input service.ArticleInput) (*data.Article, error)
	deleteFunc    func(ctx context.Context, id int64) error
	getByIDFunc   func(ctx context.Context, id int64) (*data.Article, error)
	getBySlugFunc func(ctx context.Context, slug string) (*data.Article, error)
	viewFunc      func(ctx context.Context, slug string) (*data.Article, error)
	listPubFunc   func(ctx context.Context, categorySlug string, limit int) ([]*data.Article, error)
	listAllFunc   func(ctx context.Context) ([]*data.Article, error)
	searchFunc    func(ctx context.Context, term string) ([]*data.Article, error)
	likeFunc      func(ctx context.Context, id int64, action string) error
}

var _ service.ArticleServicer = (*mockArticleServicer)(nil)

func (m *mockArticleServicer) CreateArticle(ctx context.Context, input service.ArticleInput) (*data.Article, error) {
	if m.createFunc == nil {
		return nil, errNotConfigured
	}
	return m.createFunc(ctx, input)
}

func (m *mockArticleServicer) UpdateArticle(ctx context.Context, id int64, input service.ArticleInput) (*data.Article, error) {
	if m.updateFunc == nil {
		return nil, errNotConfigured
	}
	return m.updateFunc(ctx, id, input)
}

func (m *mockArticleServicer) DeleteArticle(ctx context.Context, id int64) error {
	if m.deleteFunc == nil {
		return errNotConfigured
	}
	return m.deleteFunc(ctx, id)
}

func (m *mockArticleServicer) GetArticleByID(ctx context.Context, id int64) (*data.Article, error) {
	if m.getByIDFunc == nil {
		return nil, errNotConfigured
	}
	return m.getByIDFunc(ctx, id)
}

func (m *mockArticleServicer) GetArticleBySlug(ctx context.Context, slug string) (*data.Article, error) {
	if m.getBySlugFunc == nil {
		return nil, errNotConfigured
	}
	return m.getBySlugFunc(ctx, slug)
}

func (m *mockArticleServicer) ViewArticle(ctx context.Context, slug string) (*data.Article, error) {
	if m.viewFunc == nil {
		return nil, errNotConfigured
	}
	return m.viewFunc(ctx, slug)
}

func (m *mockArticleServicer) ListPublished(ctx context.Context, categorySlug string, limit int) ([]*data.Article, error) {
	if m.listPubFunc == nil {
		return nil, errNotConfigured
	}
	return m.listPubFunc(ctx, categorySlug, limit)
}

func (m *mockArticleServicer) ListAll(ctx context.Context) ([]*data.Article, error) {
	if m.listAllFunc == nil {
		return nil, errNotConfigured
	}
	return m.listAllFunc(ctx)
}

func (m *mockArticleServicer) Search(ctx context.Context, term string) ([]*data.Article, error) {
	if m.searchFunc == nil {
		return nil, errNotConfigured
	}
	return m.searchFunc(ctx, term)
}

func (m *mockArticleServicer) Like(ctx context.Context, id int64, action string) error {
	if m.likeFunc == nil {
		return errNotConfigured
	}
	return m.likeFunc(ctx, id, action)
}

// mockCommentServicer is a function-field mock of service.CommentServicer.
type mockCommentServicer struct {
	threadFunc func(ctx context.Context, articleID int64) ([]*service.ThreadedComment, error)
	postFunc   func(ctx context.Context, articleID int64, input service.CommentInput) (*data.Comment, error)
	likeFunc   func(ctx context.Context, id int64) error
}

var _ service.CommentServicer = (*mockCommentServicer)(nil)

func (m *mockCommentServicer) Thread(ctx context.Context, articleID int64) ([]*service.ThreadedComment, error) {
	if m.threadFunc == nil {
		return []*service.ThreadedComment{}, nil
	}
	return m.threadFunc(ctx, articleID)
}

func (m *mockCommentServicer) PostComment(ctx context.Context, articleID int64, input service.CommentInput) (*data.Comment, error) {
	if m.postFunc == nil {
		return nil, errNotConfigured
	}
	return m.postFunc(ctx, articleID, input)
}

func (m *mockCommentServicer) LikeComment(ctx context.Context, id int64) error {
	if m.likeFunc == nil {
		return errNotConfigured
	}
	return m.likeFunc(ctx, id)
}

// mockCategoryServicer is a function-field mock of service.CategoryServicer.
type mockCategoryServicer struct {
	listFunc      func(ctx context.Context) ([]*service.CategoryWithCount, error)
	getBySlugFunc func(ctx context.Context, slug string) (*data.Category, error)
	createFunc    func(ctx context.Context, input service.CategoryInput) (*data.Category, error)
	updateFunc    func(ctx context.Context, id int64, input service.CategoryInput) (*data.Category, error)
	deleteFunc    func(ctx context.Context, id int64) error
}

var _ service.CategoryServicer = (*mockCategoryServicer)(nil)

func (m *mockCategoryServicer) List(ctx context.Context) ([]*service.CategoryWithCount, error) {
	if m.listFunc == nil {
		return []*service.CategoryWithCount{}, nil
	}
	return m.listFunc(ctx)
}

func (m *mockCategoryServicer) GetBySlug(ctx context.Context, slug string) (*data.Category, error) {
	if m.getBySlugFunc == nil {
		return nil, nil
	}
	return m.getBySlugFunc(ctx, slug)
}

func (m *mockCategoryServicer) Create(ctx context.Context, input service.CategoryInput) (*data.Category, error) {
	if m.createFunc == nil {
		return nil, errNotConfigured
	}
	return m.createFunc(ctx, input)
}

func (m *mockCategoryServicer) Update(ctx context.Context, id int64, input service.CategoryInput) (*data.Category, error) {
	if m.updateFunc == nil {
		return nil, errNotConfigured
	}
	return m.updateFunc(ctx, id, input)
}

func (m *mockCategoryServicer) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc == nil {
		return errNotConfigured
	}
	return m.deleteFunc(ctx, id)
}

// mockAnalyticsReporter is a function-field mock of AnalyticsReporter.
type mockAnalyticsReporter struct {
	buildFunc func(ctx context.Context, window string) (*service.Report, error)
}

var _ AnalyticsReporter = (*mockAnalyticsReporter)(nil)

func (m *mockAnalyticsReporter) BuildReport(ctx context.Context, window string) (*service.Report, error) {
	if m.buildFunc == nil {
		return nil, errNotConfigured
	}
	return m.buildFunc(ctx, window)
}
