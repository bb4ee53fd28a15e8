//go:build unit

package service

import (
	"context"
	"errors"
	"testing"

	"go-news-app/internal/data"
)

func TestCategoryListWithCounts(t *testing.T) {
	categoryRepo := &mockCategoryRepository{
		categoriesToReturn: []*data.Category{
			{ID: 1, Name: "Politics"},
			{ID: 2, Name: "Sports"},
		},
	}
	articleRepo := &mockArticleRepository{countsToReturn: map[int64]int{1: 3}}
	svc := NewCategoryService(categoryRepo, articleRepo)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(list))
	}
	if list[0].ArticleCount != 3 {
		t.Errorf("Politics count = %d, want 3", list[0].ArticleCount)
	}
	if list[1].ArticleCount != 0 {
		t.Errorf("Sports count = %d, want 0", list[1].ArticleCount)
	}
}

func TestCategoryCreate(t *testing.T) {
	categoryRepo := &mockCategoryRepository{}
	svc := NewCategoryService(categoryRepo, &mockArticleRepository{})

	category, err := svc.Create(context.Background(), CategoryInput{
		Name:  "Local News",
		Color: "blue",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if category.Slug != "local-news" {
		t.Errorf("slug = %q, want local-news", category.Slug)
	}
	if !categoryRepo.saveCalled {
		t.Error("expected repository save to be called")
	}
}

func TestCategoryCreateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CategoryInput
	}{
		{"missing name", CategoryInput{Color: "blue"}},
		{"missing color", CategoryInput{Name: "Local"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categoryRepo := &mockCategoryRepository{}
			svc := NewCategoryService(categoryRepo, &mockArticleRepository{})

			_, err := svc.Create(context.Background(), tt.input)
			if err == nil || !IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if categoryRepo.saveCalled {
				t.Error("repository must not be called on validation failure")
			}
		})
	}
}

func TestCategoryDeleteRefusedWhenInUse(t *testing.T) {
	categoryRepo := &mockCategoryRepository{}
	articleRepo := &mockArticleRepository{countsToReturn: map[int64]int{4: 2}}
	svc := NewCategoryService(categoryRepo, articleRepo)

	err := svc.Delete(context.Background(), 4)
	if !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("expected ErrCategoryInUse, got %v", err)
	}
	if categoryRepo.deleteCalled {
		t.Error("repository delete must never run for a category in use")
	}
}

func TestCategoryDeleteEmptyCategory(t *testing.T) {
	categoryRepo := &mockCategoryRepository{}
	articleRepo := &mockArticleRepository{countsToReturn: map[int64]int{4: 2}}
	svc := NewCategoryService(categoryRepo, articleRepo)

	if err := svc.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !categoryRepo.deleteCalled {
		t.Error("expected repository delete to be called")
	}
}
