//go:build unit

package service

import (
	"context"
	"errors"
	"testing"

	"go-news-app/internal/cache"
	"go-news-app/internal/config"
	"go-news-app/internal/data"
)

// newTestCache creates a new in-memory cache for testing.
func newTestCache(t *testing.T) (*cache.Cache, func()) {
	t.Helper()
	cfg := config.CacheConfig{
		FilePath: "file::memory:",
	}
	c, err := cache.New(cfg)
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}
	teardown := func() {
		c.Close()
	}
	return c, teardown
}

// mockArticleRepository is a mock implementation of the ArticleRepository interface.
type mockArticleRepository struct {
	errToReturn      error
	articleToReturn  *data.Article
	articlesToReturn []*data.Article
	countsToReturn   map[int64]int

	createCalled            bool
	updateCalled            bool
	deleteCalled            bool
	incrementViewsCalled    int
	adjustLikesCalled       int
	incrementCommentsCalled int
	lastLikesDelta          int
	lastArticlePassed       *data.Article
}

var _ ArticleRepository = (*mockArticleRepository)(nil)

func (m *mockArticleRepository) CreateArticle(ctx context.Context, article *data.Article) error {
	m.createCalled = true
	m.lastArticlePassed = article
	if m.errToReturn != nil {
		return m.errToReturn
	}
	article.ID = 1
	return nil
}

func (m *mockArticleRepository) GetArticleByID(ctx context.Context, id int64) (*data.Article, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.articleToReturn != nil && m.articleToReturn.ID == id {
		return m.articleToReturn, nil
	}
	return nil, errors.New("article not found")
}

func (m *mockArticleRepository) GetArticleBySlug(ctx context.Context, slug string) (*data.Article, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.articleToReturn != nil && m.articleToReturn.Slug == slug {
		return m.articleToReturn, nil
	}
	return nil, errors.New("article not found")
}

func (m *mockArticleRepository) UpdateArticle(ctx context.Context, article *data.Article) error {
	m.updateCalled = true
	m.lastArticlePassed = article
	return m.errToReturn
}

func (m *mockArticleRepository) DeleteArticle(ctx context.Context, id int64) error {
	m.deleteCalled = true
	return m.errToReturn
}

func (m *mockArticleRepository) GetAllArticles(ctx context.Context) ([]*data.Article, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.articlesToReturn, nil
}

func (m *mockArticleRepository) GetPublishedArticles(ctx context.Context, limit int) ([]*data.Article, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if limit > 0 && len(m.articlesToReturn) > limit {
		return m.articlesToReturn[:limit], nil
	}
	return m.articlesToReturn, nil
}

func (m *mockArticleRepository) GetArticlesByCategoryID(ctx context.Context, categoryID int64) ([]*data.Article, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.articlesToReturn, nil
}

func (m *mockArticleRepository) SearchArticles(ctx context.Context, term string) ([]*data.Article, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.articlesToReturn, nil
}

func (m *mockArticleRepository) IncrementViews(ctx context.Context, id int64) error {
	m.incrementViewsCalled++
	return m.errToReturn
}

func (m *mockArticleRepository) AdjustLikes(ctx context.Context, id int64, delta int) error {
	m.adjustLikesCalled++
	m.lastLikesDelta = delta
	return m.errToReturn
}

func (m *mockArticleRepository) IncrementComments(ctx context.Context, id int64) error {
	m.incrementCommentsCalled++
	return m.errToReturn
}

func (m *mockArticleRepository) CountByCategory(ctx context.Context) (map[int64]int, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.countsToReturn == nil {
		return map[int64]int{}, nil
	}
	return m.countsToReturn, nil
}

// mockCategoryRepository is a mock implementation of the CategoryRepository interface.
type mockCategoryRepository struct {
	errToReturn        error
	categoryToReturn   *data.Category
	categoriesToReturn []*data.Category

	saveCalled       bool
	updateCalled     bool
	deleteCalled     bool
	lastSavedCategory *data.Category
}

var _ CategoryRepository = (*mockCategoryRepository)(nil)

func (m *mockCategoryRepository) GetAll(ctx context.Context) ([]*data.Category, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.categoriesToReturn, nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, id int64) (*data.Category, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.categoryToReturn != nil && m.categoryToReturn.ID == id {
		return m.categoryToReturn, nil
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetBySlug(ctx context.Context, slug string) (*data.Category, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.categoryToReturn != nil && m.categoryToReturn.Slug == slug {
		return m.categoryToReturn, nil
	}
	return nil, nil
}

func (m *mockCategoryRepository) Save(ctx context.Context, category *data.Category) (int64, error) {
	m.saveCalled = true
	m.lastSavedCategory = category
	if m.errToReturn != nil {
		return 0, m.errToReturn
	}
	category.ID = 1
	return 1, nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, category *data.Category) error {
	m.updateCalled = true
	m.lastSavedCategory = category
	return m.errToReturn
}

func (m *mockCategoryRepository) Delete(ctx context.Context, id int64) error {
	m.deleteCalled = true
	return m.errToReturn
}

// mockCommentRepository is a mock implementation of the CommentRepository interface.
type mockCommentRepository struct {
	errToReturn      error
	commentToReturn  *data.Comment
	commentsToReturn []*data.Comment

	createCalled         bool
	incrementLikesCalled int
	lastCommentPassed    *data.Comment
}

var _ CommentRepository = (*mockCommentRepository)(nil)

func (m *mockCommentRepository) GetByArticleID(ctx context.Context, articleID int64) ([]*data.Comment, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return m.commentsToReturn, nil
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id int64) (*data.Comment, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.commentToReturn != nil && m.commentToReturn.ID == id {
		return m.commentToReturn, nil
	}
	return nil, nil
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *data.Comment) error {
	m.createCalled = true
	m.lastCommentPassed = comment
	if m.errToReturn != nil {
		return m.errToReturn
	}
	comment.ID = 1
	return nil
}

func (m *mockCommentRepository) IncrementLikes(ctx context.Context, id int64) error {
	m.incrementLikesCalled++
	return m.errToReturn
}

// mockSettingRepository is a mock implementation of the SettingRepository interface.
type mockSettingRepository struct {
	errToReturn error
	settings    map[string]string

	upsertCalled int
}

var _ SettingRepository = (*mockSettingRepository)(nil)

func (m *mockSettingRepository) GetAll(ctx context.Context) (map[string]string, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.settings == nil {
		return map[string]string{}, nil
	}
	return m.settings, nil
}

func (m *mockSettingRepository) Upsert(ctx context.Context, key, value string) error {
	m.upsertCalled++
	if m.errToReturn != nil {
		return m.errToReturn
	}
	if m.settings == nil {
		m.settings = map[string]string{}
	}
	m.settings[key] = value
	return nil
}

// mockObjectStore is a mock implementation of the ObjectStore interface.
type mockObjectStore struct {
	errToReturn error

	uploadCalled bool
	deleteCalled bool
	lastKey      string
}

var _ ObjectStore = (*mockObjectStore)(nil)

func (m *mockObjectStore) Upload(ctx context.Context, key, contentType string, body []byte) error {
	m.uploadCalled = true
	m.lastKey = key
	return m.errToReturn
}

func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	m.deleteCalled = true
	m.lastKey = key
	return m.errToReturn
}

func (m *mockObjectStore) PublicURL(key string) string {
	return "https://cdn.example.com/article-images/" + key
}
