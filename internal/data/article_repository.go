package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const articleColumns = `id, title, subtitle, content, slug, category_id, author_name,
	author_image_path, cover_image_path, cover_image_caption, is_featured, is_video,
	is_live, is_breaking, video_url, video_duration, read_time_minutes, published_at,
	views_count, likes_count, comments_count, created_at, updated_at`

// SQLArticleRepository is a concrete implementation of the ArticleRepository
// interface using sqlx.
type SQLArticleRepository struct {
	db *sqlx.DB
}

// NewSQLArticleRepository creates a new SQLArticleRepository.
func NewSQLArticleRepository(db *sqlx.DB) *SQLArticleRepository {
	return &SQLArticleRepository{db: db}
}

// CreateArticle inserts a new article and fills in the database-generated
// id and timestamps on the provided struct.
func (r *SQLArticleRepository) CreateArticle(ctx context.Context, article *Article) error {
	query := `INSERT INTO news_articles
		(title, subtitle, content, slug, category_id, author_name, author_image_path,
		 cover_image_path, cover_image_caption, is_featured, is_video, is_live,
		 is_breaking, video_url, video_duration, read_time_minutes, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query,
		article.Title, article.Subtitle, article.Content, article.Slug,
		article.CategoryID, article.AuthorName, article.AuthorImagePath,
		article.CoverImagePath, article.CoverImageCaption, article.IsFeatured,
		article.IsVideo, article.IsLive, article.IsBreaking, article.VideoURL,
		article.VideoDuration, article.ReadTimeMinutes, article.PublishedAt)
	if err := row.Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt); err != nil {
		return fmt.Errorf("failed to execute create article query: %w", err)
	}
	return nil
}

// GetArticleByID retrieves a single article by its ID.
func (r *SQLArticleRepository) GetArticleByID(ctx context.Context, id int64) (*Article, error) {
	var article Article
	query := `SELECT ` + articleColumns + ` FROM news_articles WHERE id = $1`
	if err := r.db.GetContext(ctx, &article, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("article with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}
	return &article, nil
}

// GetArticleBySlug retrieves a single article by its slug.
//
// Slugs are not de-duplicated at creation time, so two articles whose titles
// normalize identically share a slug. The lookup returns a single row, the
// oldest one, so a contested slug consistently resolves to the article that
// claimed it first.
func (r *SQLArticleRepository) GetArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	var article Article
	query := `SELECT ` + articleColumns + ` FROM news_articles WHERE slug = $1 ORDER BY id LIMIT 1`
	if err := r.db.GetContext(ctx, &article, query, slug); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("article with slug '%s' not found", slug)
		}
		return nil, fmt.Errorf("failed to get article by slug: %w", err)
	}
	return &article, nil
}

// UpdateArticle updates an existing article.
func (r *SQLArticleRepository) UpdateArticle(ctx context.Context, article *Article) error {
	query := `UPDATE news_articles SET
		title = :title, subtitle = :subtitle, content = :content, slug = :slug,
		category_id = :category_id, author_name = :author_name,
		author_image_path = :author_image_path, cover_image_path = :cover_image_path,
		cover_image_caption = :cover_image_caption, is_featured = :is_featured,
		is_video = :is_video, is_live = :is_live, is_breaking = :is_breaking,
		video_url = :video_url, video_duration = :video_duration,
		read_time_minutes = :read_time_minutes, published_at = :published_at,
		updated_at = now()
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, article)
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no article found to update with id %d", article.ID)
	}
	return nil
}

// DeleteArticle removes an article by its ID.
func (r *SQLArticleRepository) DeleteArticle(ctx context.Context, id int64) error {
	query := `DELETE FROM news_articles WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no article found to delete with id %d", id)
	}
	return nil
}

// GetAllArticles retrieves every article, drafts included, newest first.
func (r *SQLArticleRepository) GetAllArticles(ctx context.Context) ([]*Article, error) {
	var articles []*Article
	query := `SELECT ` + articleColumns + ` FROM news_articles ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &articles, query); err != nil {
		return nil, fmt.Errorf("failed to get all articles: %w", err)
	}
	return articles, nil
}

// GetPublishedArticles retrieves published articles ordered by published_at
// descending. A limit of 0 means no limit.
func (r *SQLArticleRepository) GetPublishedArticles(ctx context.Context, limit int) ([]*Article, error) {
	var articles []*Article
	query := `SELECT ` + articleColumns + ` FROM news_articles
		WHERE published_at IS NOT NULL ORDER BY published_at DESC`
	var err error
	if limit > 0 {
		err = r.db.SelectContext(ctx, &articles, query+` LIMIT $1`, limit)
	} else {
		err = r.db.SelectContext(ctx, &articles, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get published articles: %w", err)
	}
	return articles, nil
}

// GetArticlesByCategoryID retrieves the published articles of one category.
func (r *SQLArticleRepository) GetArticlesByCategoryID(ctx context.Context, categoryID int64) ([]*Article, error) {
	var articles []*Article
	query := `SELECT ` + articleColumns + ` FROM news_articles
		WHERE category_id = $1 AND published_at IS NOT NULL
		ORDER BY published_at DESC`
	if err := r.db.SelectContext(ctx, &articles, query, categoryID); err != nil {
		return nil, fmt.Errorf("failed to get articles by category id: %w", err)
	}
	return articles, nil
}

// SearchArticles performs a pattern match across title, subtitle, content and
// author name, combined with OR, over published articles.
func (r *SQLArticleRepository) SearchArticles(ctx context.Context, term string) ([]*Article, error) {
	var articles []*Article
	pattern := "%" + term + "%"
	query := `SELECT ` + articleColumns + ` FROM news_articles
		WHERE published_at IS NOT NULL
		  AND (title ILIKE $1 OR subtitle ILIKE $1 OR content ILIKE $1 OR author_name ILIKE $1)
		ORDER BY published_at DESC`
	if err := r.db.SelectContext(ctx, &articles, query, pattern); err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	return articles, nil
}

// IncrementViews bumps the view counter by one in a single statement, so
// concurrent page loads cannot under-count each other.
func (r *SQLArticleRepository) IncrementViews(ctx context.Context, id int64) error {
	query := `UPDATE news_articles SET views_count = views_count + 1 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// AdjustLikes applies a like or unlike delta atomically, clamped at zero.
func (r *SQLArticleRepository) AdjustLikes(ctx context.Context, id int64, delta int) error {
	query := `UPDATE news_articles SET likes_count = GREATEST(likes_count + $2, 0) WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, delta); err != nil {
		return fmt.Errorf("failed to adjust likes: %w", err)
	}
	return nil
}

// IncrementComments bumps the comment counter by one. Only top-level
// comments are counted; the service layer decides when to call this.
func (r *SQLArticleRepository) IncrementComments(ctx context.Context, id int64) error {
	query := `UPDATE news_articles SET comments_count = comments_count + 1 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment comments: %w", err)
	}
	return nil
}

// CountByCategory returns a map of category id to the number of articles
// referencing it, drafts included. Category deletion is guarded by this map.
func (r *SQLArticleRepository) CountByCategory(ctx context.Context) (map[int64]int, error) {
	rows := []struct {
		CategoryID int64 `db:"category_id"`
		Count      int   `db:"count"`
	}{}
	query := `SELECT category_id, COUNT(*) AS count FROM news_articles
		WHERE category_id IS NOT NULL GROUP BY category_id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count articles by category: %w", err)
	}
	counts := make(map[int64]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}
	return counts, nil
}
