package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"go-news-app/internal/cache"
	"go-news-app/internal/data"
)

// ArticleRepository defines the interface for database operations on articles.
type ArticleRepository interface {
	CreateArticle(ctx context.Context, article *data.Article) error
	GetArticleByID(ctx context.Context, id int64) (*data.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*data.Article, error)
	UpdateArticle(ctx context.Context, article *data.Article) error
	DeleteArticle(ctx context.Context, id int64) error
	GetAllArticles(ctx context.Context) ([]*data.Article, error)
	GetPublishedArticles(ctx context.Context, limit int) ([]*data.Article, error)
	GetArticlesByCategoryID(ctx context.Context, categoryID int64) ([]*data.Article, error)
	SearchArticles(ctx context.Context, term string) ([]*data.Article, error)
	IncrementViews(ctx context.Context, id int64) error
	AdjustLikes(ctx context.Context, id int64, delta int) error
	IncrementComments(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context) (map[int64]int, error)
}

// CategoryRepository defines the interface for database operations on categories.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*data.Category, error)
	GetByID(ctx context.Context, id int64) (*data.Category, error)
	GetBySlug(ctx context.Context, slug string) (*data.Category, error)
	Save(ctx context.Context, category *data.Category) (int64, error)
	Update(ctx context.Context, category *data.Category) error
	Delete(ctx context.Context, id int64) error
}

// ArticleServicer defines the interface for interacting with articles.
type ArticleServicer interface {
	CreateArticle(ctx context.Context, input ArticleInput) (*data.Article, error)
	UpdateArticle(ctx context.Context, id int64, input ArticleInput) (*data.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	GetArticleByID(ctx context.Context, id int64) (*data.Article, error)
	GetArticleBySlug(ctx context.Context, slug string) (*data.Article, error)
	ViewArticle(ctx context.Context, slug string) (*data.Article, error)
	ListPublished(ctx context.Context, categorySlug string, limit int) ([]*data.Article, error)
	ListAll(ctx context.Context) ([]*data.Article, error)
	Search(ctx context.Context, term string) ([]*data.Article, error)
	Like(ctx context.Context, id int64, action string) error
}

// ArticleInput carries the admin form fields for creating or updating an
// article. Field-level invariants are enforced here, not at call sites.
type ArticleInput struct {
	Title             string     `json:"title"`
	Subtitle          string     `json:"subtitle"`
	Content           string     `json:"content"`
	CategoryID        *int64     `json:"category_id"`
	AuthorName        string     `json:"author_name"`
	AuthorImagePath   string     `json:"author_image_path"`
	CoverImagePath    string     `json:"cover_image_path"`
	CoverImageCaption string     `json:"cover_image_caption"`
	IsFeatured        bool       `json:"is_featured"`
	IsVideo           bool       `json:"is_video"`
	IsLive            bool       `json:"is_live"`
	IsBreaking        bool       `json:"is_breaking"`
	VideoURL          string     `json:"video_url"`
	VideoDuration     string     `json:"video_duration"`
	ReadTimeMinutes   int        `json:"read_time_minutes"`
	PublishedAt       *time.Time `json:"published_at"`
}

const (
	defaultReadTime  = 5
	renderedCacheTTL = 10 * time.Minute
)

// ArticleService provides business logic for managing and rendering articles.
type ArticleService struct {
	repo         ArticleRepository
	categoryRepo CategoryRepository
	cache        *cache.Cache
	markdown     goldmark.Markdown
	sanitizer    *bluemonday.Policy
}

// NewArticleService creates a new ArticleService with the given dependencies.
func NewArticleService(repo ArticleRepository, categoryRepo CategoryRepository, c *cache.Cache) *ArticleService {
	// Article bodies are markdown written by editors. Goldmark converts them
	// and the UGC policy strips anything dangerous from the result before it
	// reaches a browser.
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	return &ArticleService{
		repo:         repo,
		categoryRepo: categoryRepo,
		cache:        c,
		markdown:     md,
		sanitizer:    bluemonday.UGCPolicy(),
	}
}

func (s *ArticleService) validate(input *ArticleInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return NewValidationError("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return NewValidationError("content is required")
	}
	if input.ReadTimeMinutes <= 0 {
		input.ReadTimeMinutes = defaultReadTime
	}
	return nil
}

// CreateArticle handles the creation of a new article. The slug is derived
// from the title with no collision check; identical titles share a slug.
func (s *ArticleService) CreateArticle(ctx context.Context, input ArticleInput) (*data.Article, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	article := &data.Article{
		Title:             strings.TrimSpace(input.Title),
		Subtitle:          input.Subtitle,
		Content:           input.Content,
		Slug:              Slugify(input.Title),
		CategoryID:        input.CategoryID,
		AuthorName:        input.AuthorName,
		AuthorImagePath:   input.AuthorImagePath,
		CoverImagePath:    input.CoverImagePath,
		CoverImageCaption: input.CoverImageCaption,
		IsFeatured:        input.IsFeatured,
		IsVideo:           input.IsVideo,
		IsLive:            input.IsLive,
		IsBreaking:        input.IsBreaking,
		VideoURL:          input.VideoURL,
		VideoDuration:     input.VideoDuration,
		ReadTimeMinutes:   input.ReadTimeMinutes,
		PublishedAt:       input.PublishedAt,
	}
	if err := s.repo.CreateArticle(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// UpdateArticle handles the logic for updating an existing article and
// invalidates its cached rendering.
func (s *ArticleService) UpdateArticle(ctx context.Context, id int64, input ArticleInput) (*data.Article, error) {
	if err := s.validate(&input); err != nil {
		return nil, err
	}
	article, err := s.repo.GetArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldSlug := article.Slug

	article.Title = strings.TrimSpace(input.Title)
	article.Subtitle = input.Subtitle
	article.Content = input.Content
	article.Slug = Slugify(input.Title)
	article.CategoryID = input.CategoryID
	article.AuthorName = input.AuthorName
	article.AuthorImagePath = input.AuthorImagePath
	article.CoverImagePath = input.CoverImagePath
	article.CoverImageCaption = input.CoverImageCaption
	article.IsFeatured = input.IsFeatured
	article.IsVideo = input.IsVideo
	article.IsLive = input.IsLive
	article.IsBreaking = input.IsBreaking
	article.VideoURL = input.VideoURL
	article.VideoDuration = input.VideoDuration
	article.ReadTimeMinutes = input.ReadTimeMinutes
	article.PublishedAt = input.PublishedAt

	if err := s.repo.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Delete(renderedCacheKey(oldSlug))
		_ = s.cache.Delete(renderedCacheKey(article.Slug))
	}
	return article, nil
}

// DeleteArticle removes an article and drops its cached rendering.
func (s *ArticleService) DeleteArticle(ctx context.Context, id int64) error {
	article, err := s.repo.GetArticleByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteArticle(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(renderedCacheKey(article.Slug))
	}
	return nil
}

// GetArticleByID retrieves one article without rendering or side effects.
func (s *ArticleService) GetArticleByID(ctx context.Context, id int64) (*data.Article, error) {
	return s.repo.GetArticleByID(ctx, id)
}

// GetArticleBySlug retrieves one article by slug without rendering or side
// effects. With duplicate slugs the oldest article wins, same as ViewArticle.
func (s *ArticleService) GetArticleBySlug(ctx context.Context, slug string) (*data.Article, error) {
	return s.repo.GetArticleBySlug(ctx, slug)
}

// ViewArticle retrieves an article by slug for a public page view: the body
// is rendered to sanitized HTML, the category is attached, and the view
// counter is bumped by one in a single atomic statement. The returned
// article already reflects the recorded view.
func (s *ArticleService) ViewArticle(ctx context.Context, slug string) (*data.Article, error) {
	article, err := s.repo.GetArticleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	html, err := s.renderContent(slug, article.Content)
	if err != nil {
		return nil, err
	}
	article.HTMLContent = html

	if article.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *article.CategoryID)
		if err == nil && category != nil {
			article.Category = category
		}
	}

	if err := s.repo.IncrementViews(ctx, article.ID); err != nil {
		return nil, err
	}
	article.ViewsCount++
	return article, nil
}

// renderContent converts markdown to HTML, consulting the rendered cache
// first. The output is sanitized before caching.
func (s *ArticleService) renderContent(slug, content string) (template.HTML, error) {
	key := renderedCacheKey(slug)
	if s.cache != nil {
		if cached, err := s.cache.Get(key); err == nil && cached != nil {
			return template.HTML(cached), nil
		}
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("failed to render article content: %w", err)
	}
	sanitized := s.sanitizer.SanitizeBytes(buf.Bytes())

	if s.cache != nil {
		_ = s.cache.Set(key, sanitized, renderedCacheTTL)
	}
	return template.HTML(sanitized), nil
}

func renderedCacheKey(slug string) string {
	return "article:html:" + slug
}

// ListPublished returns published articles, optionally restricted to one
// category slug. A limit of 0 means no limit.
func (s *ArticleService) ListPublished(ctx context.Context, categorySlug string, limit int) ([]*data.Article, error) {
	if categorySlug == "" {
		return s.repo.GetPublishedArticles(ctx, limit)
	}
	category, err := s.categoryRepo.GetBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("category with slug '%s' not found", categorySlug)
	}
	articles, err := s.repo.GetArticlesByCategoryID(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

// ListAll returns every article for the admin dashboard, drafts included.
func (s *ArticleService) ListAll(ctx context.Context) ([]*data.Article, error) {
	return s.repo.GetAllArticles(ctx)
}

// Search runs the multi-column pattern search over published articles.
func (s *ArticleService) Search(ctx context.Context, term string) ([]*data.Article, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []*data.Article{}, nil
	}
	return s.repo.SearchArticles(ctx, term)
}

// Like applies a like or unlike to an article. The write is one atomic
// statement, so a failure leaves the persisted counter untouched and the
// caller's optimistic state can simply be rolled back.
func (s *ArticleService) Like(ctx context.Context, id int64, action string) error {
	var delta int
	switch action {
	case "like":
		delta = 1
	case "unlike":
		delta = -1
	default:
		return NewValidationError("action must be 'like' or 'unlike'")
	}
	return s.repo.AdjustLikes(ctx, id, delta)
}
