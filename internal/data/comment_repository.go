package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CommentRepository handles database operations for article comments.
type CommentRepository struct {
	DB *sqlx.DB
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(db *sqlx.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

// GetByArticleID retrieves the flat comment list for one article, newest
// first. Threading happens in the service layer.
func (r *CommentRepository) GetByArticleID(ctx context.Context, articleID int64) ([]*Comment, error) {
	var comments []*Comment
	err := r.DB.SelectContext(ctx, &comments,
		`SELECT * FROM article_comments WHERE article_id = $1 ORDER BY created_at DESC`,
		articleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for article %d: %w", articleID, err)
	}
	return comments, nil
}

// GetByID finds a single comment by its ID.
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*Comment, error) {
	var comment Comment
	err := r.DB.GetContext(ctx, &comment,
		"SELECT * FROM article_comments WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found is not an error
		}
		return nil, err
	}
	return &comment, nil
}

// Create inserts a new comment and fills in the database-generated fields,
// mirroring the original store's insert-then-return-row contract.
func (r *CommentRepository) Create(ctx context.Context, comment *Comment) error {
	query := `INSERT INTO article_comments
		(article_id, commenter_name, commenter_email, content, parent_comment_id, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, likes_count, created_at`
	row := r.DB.QueryRowxContext(ctx, query,
		comment.ArticleID, comment.CommenterName, comment.CommenterEmail,
		comment.Content, comment.ParentCommentID, comment.IsApproved)
	if err := row.Scan(&comment.ID, &comment.LikesCount, &comment.CreatedAt); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// IncrementLikes bumps a comment's like counter by one atomically.
func (r *CommentRepository) IncrementLikes(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE article_comments SET likes_count = likes_count + 1 WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to like comment: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no comment found with id %d", id)
	}
	return nil
}
