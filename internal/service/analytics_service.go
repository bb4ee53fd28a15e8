package service

import (
	"context"
	"time"

	"go-news-app/internal/data"
)

// Report is the full analytics payload for the admin dashboard. Everything
// in it is recomputed from scratch on each call; input sizes are small
// enough that no incremental state is worth its complexity.
type Report struct {
	Range                string          `json:"range"`
	Overview             Overview        `json:"overview"`
	Trends               Trends          `json:"trends"`
	TopContent           []*data.Article `json:"top_content"`
	CategoryDistribution []CategoryStats `json:"category_distribution"`
	Trending             []*data.Article `json:"trending"`
	MostCommented        []*data.Article `json:"most_commented"`
	MostLiked            []*data.Article `json:"most_liked"`
}

// AnalyticsService assembles dashboard reports from the article collection.
type AnalyticsService struct {
	articleRepo  ArticleRepository
	categoryRepo CategoryRepository
	now          func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(articleRepo ArticleRepository, categoryRepo CategoryRepository) *AnalyticsService {
	return &AnalyticsService{
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// BuildReport fetches the published article collection, applies the
// requested time window and runs every aggregation over the result.
// Valid ranges are "day", "week", "month", "year" and "all".
func (s *AnalyticsService) BuildReport(ctx context.Context, window string) (*Report, error) {
	articles, err := s.articleRepo.GetPublishedArticles(ctx, 0)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := FilterByWindow(articles, window, now)

	return &Report{
		Range:                window,
		Overview:             ComputeOverview(filtered, len(categories)),
		Trends:               ComputeTrends(filtered),
		TopContent:           TopContent(filtered, 5),
		CategoryDistribution: CategoryDistribution(filtered, categories),
		Trending:             TrendingArticles(articles, now),
		MostCommented:        MostCommented(filtered, 3),
		MostLiked:            MostLiked(filtered, 3),
	}, nil
}
