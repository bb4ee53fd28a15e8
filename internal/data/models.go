package data

import (
	"html/template"
	"time"
)

// Article represents a single news article in the database.
//
// The three counters are independent running totals maintained by the
// engagement endpoints. They are never recomputed from the underlying
// rows, so comments_count can drift from the true number of comments.
type Article struct {
	ID                int64         `db:"id" json:"id"`
	Title             string        `db:"title" json:"title"`
	Subtitle          string        `db:"subtitle" json:"subtitle"`
	Content           string        `db:"content" json:"content"`
	HTMLContent       template.HTML `db:"-" json:"html_content,omitempty"`
	Slug              string        `db:"slug" json:"slug"`
	CategoryID        *int64        `db:"category_id" json:"category_id"`
	Category          *Category     `db:"-" json:"category,omitempty"`
	AuthorName        string        `db:"author_name" json:"author_name"`
	AuthorImagePath   string        `db:"author_image_path" json:"author_image_path"`
	CoverImagePath    string        `db:"cover_image_path" json:"cover_image_path"`
	CoverImageCaption string        `db:"cover_image_caption" json:"cover_image_caption"`
	IsFeatured        bool          `db:"is_featured" json:"is_featured"`
	IsVideo           bool          `db:"is_video" json:"is_video"`
	IsLive            bool          `db:"is_live" json:"is_live"`
	IsBreaking        bool          `db:"is_breaking" json:"is_breaking"`
	VideoURL          string        `db:"video_url" json:"video_url,omitempty"`
	VideoDuration     string        `db:"video_duration" json:"video_duration,omitempty"`
	ReadTimeMinutes   int           `db:"read_time_minutes" json:"read_time_minutes"`
	PublishedAt       *time.Time    `db:"published_at" json:"published_at"`
	ViewsCount        int64         `db:"views_count" json:"views_count"`
	LikesCount        int64         `db:"likes_count" json:"likes_count"`
	CommentsCount     int64         `db:"comments_count" json:"comments_count"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at" json:"updated_at"`
}

// IsDraft reports whether the article is unpublished. A null published_at
// is the only thing that distinguishes a draft.
func (a *Article) IsDraft() bool {
	return a.PublishedAt == nil
}

// Category represents a news category used for badges and section pages.
type Category struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description string    `db:"description" json:"description"`
	Color       string    `db:"color" json:"color"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Comment represents a reader comment on an article. A nil ParentCommentID
// marks a top-level comment; a non-nil one marks a reply to that exact
// parent. The schema allows deeper chains but the application never creates
// or surfaces them.
type Comment struct {
	ID              int64     `db:"id" json:"id"`
	ArticleID       int64     `db:"article_id" json:"article_id"`
	CommenterName   string    `db:"commenter_name" json:"commenter_name"`
	CommenterEmail  *string   `db:"commenter_email" json:"commenter_email,omitempty"`
	Content         string    `db:"content" json:"content"`
	ParentCommentID *int64    `db:"parent_comment_id" json:"parent_comment_id"`
	IsApproved      bool      `db:"is_approved" json:"is_approved"`
	LikesCount      int64     `db:"likes_count" json:"likes_count"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Setting is one row of the public site_settings key-value table.
type Setting struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}
