package processor

import (
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// CategoryInput is the admin-editable part of a category
type CategoryInput struct {
	Name        string
	Slug        string
	Description *string
	Icon        *string
}

func (in CategoryInput) toParams() (store.CategoryParams, error) {
	name := strings.TrimSpace(in.Name)
	slug := strings.TrimSpace(in.Slug)
	if name == "" || slug == "" {
		return store.CategoryParams{}, ErrMissingNameOrSlug
	}
	return store.CategoryParams{
		Name:        name,
		Slug:        slug,
		Description: nonEmpty(in.Description),
		Icon:        nonEmpty(in.Icon),
	}, nil
}

// ListCategories returns every category with its total tool count, for admin
func (p *CatalogProcessor) ListCategories(ctx context.Context) ([]store.CategoryWithCount, error) {
	categories, err := p.store.ListCategoriesWithToolCount(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list categories", err)
		return nil, err
	}
	return categories, nil
}

// ListPublicCategories returns every category with its published tool count
func (p *CatalogProcessor) ListPublicCategories(ctx context.Context) ([]store.CategoryWithCount, error) {
	categories, err := p.store.ListCategoriesWithPublishedToolCount(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list public categories", err)
		return nil, err
	}
	return categories, nil
}

// CategoryDetail is a category page: the category and its published tools
type CategoryDetail struct {
	store.Category
	Tools []store.Tool `json:"tools"`
}

// GetCategoryDetail loads a category by slug with its published tools
func (p *CatalogProcessor) GetCategoryDetail(ctx context.Context, slug string) (CategoryDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "category_slug", Value: slug})

	category, err := p.store.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CategoryDetail{}, ErrCategoryNotFound
		}
		p.logger.Error(ctx, "failed to get category", err)
		return CategoryDetail{}, err
	}

	tools, err := p.store.ListPublishedTools(ctx, store.ListPublishedToolsParams{
		CategorySlug: category.Slug,
		Limit:        maxListLimit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list category tools", err)
		return CategoryDetail{}, err
	}

	return CategoryDetail{Category: category, Tools: tools}, nil
}

// CreateCategory validates and stores a new category
func (p *CatalogProcessor) CreateCategory(ctx context.Context, input CategoryInput) (store.Category, error) {
	params, err := input.toParams()
	if err != nil {
		return store.Category{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "category_slug", Value: params.Slug})

	category, err := p.store.CreateCategory(ctx, params)
	if err != nil {
		err = classifyWriteError(err, ErrCategoryNotFound, ErrCategoryExists, nil)
		p.logWriteError(ctx, "failed to create category", err)
		return store.Category{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "category_id", Value: category.ID.String()})
	p.logger.Info(ctx, "category created")
	return category, nil
}

// UpdateCategory replaces the editable fields of a category
func (p *CatalogProcessor) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input CategoryInput) (store.Category, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "category_id", Value: categoryID.String()})

	params, err := input.toParams()
	if err != nil {
		return store.Category{}, err
	}

	category, err := p.store.UpdateCategory(ctx, categoryID, params)
	if err != nil {
		err = classifyWriteError(err, ErrCategoryNotFound, ErrCategoryExists, nil)
		p.logWriteError(ctx, "failed to update category", err)
		return store.Category{}, err
	}

	p.logger.Info(ctx, "category updated")
	return category, nil
}

// DeleteCategory removes a category that no tool is filed under
func (p *CatalogProcessor) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "category_id", Value: categoryID.String()})

	if err := p.store.DeleteCategory(ctx, categoryID); err != nil {
		err = classifyWriteError(err, ErrCategoryNotFound, nil, ErrCategoryHasTools)
		p.logWriteError(ctx, "failed to delete category", err)
		return err
	}

	p.logger.Info(ctx, "category deleted")
	return nil
}
