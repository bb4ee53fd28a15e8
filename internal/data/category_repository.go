package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CategoryRepository handles database operations for categories.
type CategoryRepository struct {
	DB *sqlx.DB
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// GetAll retrieves all categories ordered by name.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*Category, error) {
	var categories []*Category
	err := r.DB.SelectContext(ctx, &categories,
		"SELECT * FROM news_categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByID finds a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*Category, error) {
	var category Category
	err := r.DB.GetContext(ctx, &category,
		"SELECT * FROM news_categories WHERE id = $1", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found is not an error
		}
		return nil, err
	}
	return &category, nil
}

// GetBySlug finds a category by its slug.
func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	var category Category
	err := r.DB.GetContext(ctx, &category,
		"SELECT * FROM news_categories WHERE slug = $1 LIMIT 1", slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found is not an error
		}
		return nil, err
	}
	return &category, nil
}

// Save creates a new category and returns its ID.
func (r *CategoryRepository) Save(ctx context.Context, category *Category) (int64, error) {
	var id int64
	err := r.DB.QueryRowxContext(ctx,
		`INSERT INTO news_categories (name, slug, description, color)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		category.Name, category.Slug, category.Description, category.Color).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save category: %w", err)
	}
	category.ID = id
	return id, nil
}

// Update modifies an existing category.
func (r *CategoryRepository) Update(ctx context.Context, category *Category) error {
	result, err := r.DB.NamedExecContext(ctx,
		`UPDATE news_categories SET name = :name, slug = :slug,
		 description = :description, color = :color WHERE id = :id`, category)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no category found to update with id %d", category.ID)
	}
	return nil
}

// Delete removes a category by its ID. Callers must have already checked
// that no article references it; there is no foreign-key constraint doing
// that for us.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM news_categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no category found to delete with id %d", id)
	}
	return nil
}
