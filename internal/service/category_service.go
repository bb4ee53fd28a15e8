package service

import (
	"context"
	"strings"

	"go-news-app/internal/data"
)

// CategoryServicer defines the interface for interacting with categories.
type CategoryServicer interface {
	List(ctx context.Context) ([]*CategoryWithCount, error)
	GetBySlug(ctx context.Context, slug string) (*data.Category, error)
	Create(ctx context.Context, input CategoryInput) (*data.Category, error)
	Update(ctx context.Context, id int64, input CategoryInput) (*data.Category, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryInput carries the admin form fields for a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// CategoryWithCount pairs a category with the number of articles
// referencing it, for the admin listing.
type CategoryWithCount struct {
	data.Category
	ArticleCount int `json:"article_count"`
}

// CategoryService provides business logic for managing categories.
type CategoryService struct {
	repo        CategoryRepository
	articleRepo ArticleRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo CategoryRepository, articleRepo ArticleRepository) *CategoryService {
	return &CategoryService{repo: repo, articleRepo: articleRepo}
}

// List returns all categories with their article counts.
func (s *CategoryService) List(ctx context.Context) ([]*CategoryWithCount, error) {
	categories, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.articleRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		result = append(result, &CategoryWithCount{
			Category:     *category,
			ArticleCount: counts[category.ID],
		})
	}
	return result, nil
}

// GetBySlug returns one category, or nil when it does not exist.
func (s *CategoryService) GetBySlug(ctx context.Context, slug string) (*data.Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Create validates and stores a new category. The slug is derived from the
// name unless one was supplied.
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*data.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("category name is required")
	}
	if strings.TrimSpace(input.Color) == "" {
		return nil, NewValidationError("please select a color")
	}
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	category := &data.Category{
		Name:        name,
		Slug:        slug,
		Description: input.Description,
		Color:       input.Color,
	}
	if _, err := s.repo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update validates and stores changes to an existing category.
func (s *CategoryService) Update(ctx context.Context, id int64, input CategoryInput) (*data.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("category name is required")
	}
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, NewValidationError("category not found")
	}
	category.Name = name
	category.Description = input.Description
	if input.Color != "" {
		category.Color = input.Color
	}
	if slug := strings.TrimSpace(input.Slug); slug != "" {
		category.Slug = slug
	} else {
		category.Slug = Slugify(name)
	}
	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a category. Deletion is refused with ErrCategoryInUse when
// any article references the category; the check runs against the
// precomputed count map and the repository delete is never reached.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	counts, err := s.articleRepo.CountByCategory(ctx)
	if err != nil {
		return err
	}
	if counts[id] > 0 {
		return ErrCategoryInUse
	}
	return s.repo.Delete(ctx, id)
}
