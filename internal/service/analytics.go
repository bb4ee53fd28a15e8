package service

import (
	"sort"
	"time"

	"go-news-app/internal/data"
)

// Overview holds the whole-collection totals for the analytics dashboard.
type Overview struct {
	TotalViews      int64   `json:"total_views"`
	TotalLikes      int64   `json:"total_likes"`
	TotalComments   int64   `json:"total_comments"`
	TotalArticles   int     `json:"total_articles"`
	TotalCategories int     `json:"total_categories"`
	EngagementRate  float64 `json:"engagement_rate"`
}

// Trend compares the summed value of a metric between the recent and
// previous halves of the article list.
type Trend struct {
	Current  int64   `json:"current"`
	Previous int64   `json:"previous"`
	Change   float64 `json:"change"`
}

// Trends carries the period-over-period deltas for every counter.
type Trends struct {
	Views    Trend `json:"views"`
	Likes    Trend `json:"likes"`
	Comments Trend `json:"comments"`
	Articles Trend `json:"articles"`
}

// CategoryStats summarizes one category's share of the article collection.
type CategoryStats struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Color         string  `json:"color"`
	ArticleCount  int     `json:"article_count"`
	TotalViews    int64   `json:"total_views"`
	TotalLikes    int64   `json:"total_likes"`
	TotalComments int64   `json:"total_comments"`
	Percentage    float64 `json:"percentage"`
}

func sumViews(articles []*data.Article) int64 {
	var sum int64
	for _, a := range articles {
		sum += a.ViewsCount
	}
	return sum
}

func sumLikes(articles []*data.Article) int64 {
	var sum int64
	for _, a := range articles {
		sum += a.LikesCount
	}
	return sum
}

func sumComments(articles []*data.Article) int64 {
	var sum int64
	for _, a := range articles {
		sum += a.CommentsCount
	}
	return sum
}

// EngagementRate is (likes+comments)/views expressed as a percentage,
// defined as 0 when there are no views.
func EngagementRate(views, likes, comments int64) float64 {
	if views == 0 {
		return 0
	}
	return float64(likes+comments) / float64(views) * 100
}

// PercentChange follows the rate-of-change convention used throughout the
// dashboard: a zero previous value yields 100 when the recent value is
// positive, never infinity or NaN.
func PercentChange(recent, previous int64) float64 {
	if previous > 0 {
		return float64(recent-previous) / float64(previous) * 100
	}
	if recent > 0 {
		return 100
	}
	return 0
}

// ComputeOverview sums the counters across the article set.
func ComputeOverview(articles []*data.Article, categoryCount int) Overview {
	views := sumViews(articles)
	likes := sumLikes(articles)
	comments := sumComments(articles)
	return Overview{
		TotalViews:      views,
		TotalLikes:      likes,
		TotalComments:   comments,
		TotalArticles:   len(articles),
		TotalCategories: categoryCount,
		EngagementRate:  EngagementRate(views, likes, comments),
	}
}

// ComputeTrends splits the order-preserved article list at its midpoint into
// a recent half (the first half; the list arrives newest-first) and a
// previous half, and computes the percent change of each summed metric
// between them. This is a stand-in for true time-bucketed comparison.
func ComputeTrends(articles []*data.Article) Trends {
	half := len(articles) / 2
	recent := articles[:half]
	previous := articles[half:]

	trend := func(recentSum, previousSum int64) Trend {
		return Trend{
			Current:  recentSum,
			Previous: previousSum,
			Change:   PercentChange(recentSum, previousSum),
		}
	}
	return Trends{
		Views:    trend(sumViews(recent), sumViews(previous)),
		Likes:    trend(sumLikes(recent), sumLikes(previous)),
		Comments: trend(sumComments(recent), sumComments(previous)),
		Articles: trend(int64(len(recent)), int64(len(previous))),
	}
}

// ContentScore is the weighted engagement score used to rank top content.
func ContentScore(a *data.Article) float64 {
	return float64(a.ViewsCount)*0.3 + float64(a.LikesCount)*0.4 + float64(a.CommentsCount)*0.3
}

// TopContent ranks articles by their weighted engagement score, descending.
// The sort is stable so ties keep their original fetch order.
func TopContent(articles []*data.Article, limit int) []*data.Article {
	ranked := make([]*data.Article, len(articles))
	copy(ranked, articles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ContentScore(ranked[i]) > ContentScore(ranked[j])
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CategoryDistribution computes, per category, the article count, summed
// counters and share of the total article count, sorted descending by
// article count.
func CategoryDistribution(articles []*data.Article, categories []*data.Category) []CategoryStats {
	stats := make([]CategoryStats, 0, len(categories))
	for _, category := range categories {
		var group []*data.Article
		for _, a := range articles {
			if a.CategoryID != nil && *a.CategoryID == category.ID {
				group = append(group, a)
			}
		}
		var percentage float64
		if len(articles) > 0 {
			percentage = float64(len(group)) / float64(len(articles)) * 100
		}
		stats = append(stats, CategoryStats{
			ID:            category.ID,
			Name:          category.Name,
			Color:         category.Color,
			ArticleCount:  len(group),
			TotalViews:    sumViews(group),
			TotalLikes:    sumLikes(group),
			TotalComments: sumComments(group),
			Percentage:    percentage,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].ArticleCount > stats[j].ArticleCount
	})
	return stats
}

// TrendingScore weights comments and likes above raw views for the
// short-window trending list.
func TrendingScore(a *data.Article) int64 {
	return a.ViewsCount + a.LikesCount*2 + a.CommentsCount*3
}

// TrendingArticles returns the top three articles published within the last
// seven days of now, ranked by TrendingScore descending.
func TrendingArticles(articles []*data.Article, now time.Time) []*data.Article {
	oneWeekAgo := now.Add(-7 * 24 * time.Hour)
	var recent []*data.Article
	for _, a := range articles {
		if a.PublishedAt != nil && a.PublishedAt.After(oneWeekAgo) {
			recent = append(recent, a)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return TrendingScore(recent[i]) > TrendingScore(recent[j])
	})
	if len(recent) > 3 {
		recent = recent[:3]
	}
	return recent
}

// FilterByWindow keeps articles whose published_at falls within the trailing
// window ending at now. Ranges: "day", "week", "month", "year"; anything
// else means no filtering. Drafts never match a bounded window.
func FilterByWindow(articles []*data.Article, window string, now time.Time) []*data.Article {
	var cutoff time.Time
	switch window {
	case "day":
		cutoff = now.Add(-24 * time.Hour)
	case "week":
		cutoff = now.Add(-7 * 24 * time.Hour)
	case "month":
		cutoff = now.Add(-30 * 24 * time.Hour)
	case "year":
		cutoff = now.Add(-365 * 24 * time.Hour)
	default:
		return articles
	}
	var filtered []*data.Article
	for _, a := range articles {
		if a.PublishedAt != nil && a.PublishedAt.After(cutoff) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// MostCommented returns the top articles by raw comment count, descending.
func MostCommented(articles []*data.Article, limit int) []*data.Article {
	ranked := make([]*data.Article, len(articles))
	copy(ranked, articles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CommentsCount > ranked[j].CommentsCount
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// MostLiked returns the top articles by raw like count, descending.
func MostLiked(articles []*data.Article, limit int) []*data.Article {
	ranked := make([]*data.Article, len(articles))
	copy(ranked, articles)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].LikesCount > ranked[j].LikesCount
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
