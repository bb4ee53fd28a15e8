package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ObjectStore defines the interface to the S3-compatible bucket that holds
// article and author images.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body []byte) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// Upload is the result of storing one media object.
type Upload struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9.-]+`)

// MediaService stores uploaded images in object storage. Resizing happens
// in the browser before upload; the server stores what it receives.
type MediaService struct {
	store ObjectStore
}

// NewMediaService creates a new MediaService.
func NewMediaService(store ObjectStore) *MediaService {
	return &MediaService{store: store}
}

// ObjectKey builds a collision-free storage key from an uploaded filename:
// a random prefix plus the cleaned original name (lowercased, unsafe runs
// collapsed to hyphens, edge hyphens trimmed).
func ObjectKey(filename string) string {
	cleaned := unsafeKeyChars.ReplaceAllString(strings.ToLower(filename), "-")
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "upload"
	}
	return uuid.NewString() + "-" + cleaned
}

// Store uploads one image and returns its key and public URL.
func (s *MediaService) Store(ctx context.Context, filename, contentType string, body []byte) (*Upload, error) {
	if len(body) == 0 {
		return nil, NewValidationError("uploaded file is empty")
	}
	key := ObjectKey(filename)
	if err := s.store.Upload(ctx, key, contentType, body); err != nil {
		return nil, err
	}
	return &Upload{Path: key, URL: s.store.PublicURL(key)}, nil
}

// Remove deletes one image by its key.
func (s *MediaService) Remove(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}

// URL returns the public URL for a stored key, or "" for an empty key.
func (s *MediaService) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.store.PublicURL(key)
}
