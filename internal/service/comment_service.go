package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"go-news-app/internal/data"
)

// CommentRepository defines the interface for database operations on comments.
type CommentRepository interface {
	GetByArticleID(ctx context.Context, articleID int64) ([]*data.Comment, error)
	GetByID(ctx context.Context, id int64) (*data.Comment, error)
	Create(ctx context.Context, comment *data.Comment) error
	IncrementLikes(ctx context.Context, id int64) error
}

// CommentServicer defines the interface for interacting with comments.
type CommentServicer interface {
	Thread(ctx context.Context, articleID int64) ([]*ThreadedComment, error)
	PostComment(ctx context.Context, articleID int64, input CommentInput) (*data.Comment, error)
	LikeComment(ctx context.Context, id int64) error
}

// CommentInput carries the public comment form fields. Name and content are
// mandatory after trimming; email is optional.
type CommentInput struct {
	CommenterName   string `json:"commenter_name"`
	CommenterEmail  string `json:"commenter_email"`
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

// CommentService provides business logic for reader comments: validation,
// two-level threading and the comments_count bookkeeping on articles.
type CommentService struct {
	repo        CommentRepository
	articleRepo ArticleRepository
	sanitizer   *bluemonday.Policy
}

// NewCommentService creates a new CommentService.
func NewCommentService(repo CommentRepository, articleRepo ArticleRepository) *CommentService {
	return &CommentService{
		repo:        repo,
		articleRepo: articleRepo,
		sanitizer:   bluemonday.UGCPolicy(),
	}
}

// Thread returns the article's comments as a two-level tree, newest first.
func (s *CommentService) Thread(ctx context.Context, articleID int64) ([]*ThreadedComment, error) {
	comments, err := s.repo.GetByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	return ThreadComments(comments), nil
}

// PostComment validates and stores a new comment or reply. Nothing is
// written when validation fails.
//
// Only top-level comments bump the article's comments_count; replies leave
// it alone, so the counter undercounts replies. That matches the observed
// behavior of the original site and keeps the headline number equal to the
// number of threads.
func (s *CommentService) PostComment(ctx context.Context, articleID int64, input CommentInput) (*data.Comment, error) {
	name := strings.TrimSpace(input.CommenterName)
	if name == "" {
		return nil, NewValidationError("please enter your name")
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, NewValidationError("comment cannot be empty")
	}

	var email *string
	if trimmed := strings.TrimSpace(input.CommenterEmail); trimmed != "" {
		email = &trimmed
	}

	if input.ParentCommentID != nil {
		parent, err := s.repo.GetByID(ctx, *input.ParentCommentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.ArticleID != articleID {
			return nil, NewValidationError("parent comment not found")
		}
		// The thread is two levels deep at most.
		if parent.ParentCommentID != nil {
			return nil, NewValidationError("replies to replies are not supported")
		}
	}

	comment := &data.Comment{
		ArticleID:       articleID,
		CommenterName:   name,
		CommenterEmail:  email,
		Content:         s.sanitizer.Sanitize(content),
		ParentCommentID: input.ParentCommentID,
		IsApproved:      true,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if input.ParentCommentID == nil {
		if err := s.articleRepo.IncrementComments(ctx, articleID); err != nil {
			// The comment row exists; surface the counter failure so the
			// caller knows the displayed count may lag until reload.
			return comment, fmt.Errorf("comment stored but counter update failed: %w", err)
		}
	}
	return comment, nil
}

// LikeComment bumps a comment's like counter by one.
func (s *CommentService) LikeComment(ctx context.Context, id int64) error {
	return s.repo.IncrementLikes(ctx, id)
}
