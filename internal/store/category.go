package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CategoryParams carries the writable category columns
type CategoryParams struct {
	Name        string
	Slug        string
	Description *string
	Icon        *string
}

const sqlListCategoriesWithToolCount = `
SELECT c.id, c.name, c.slug, c.description, c.icon, c.created_at, c.updated_at, COUNT(t.id) AS tool_count
FROM categories c
LEFT JOIN tools t ON t.category_id = c.id
GROUP BY c.id
ORDER BY c.name
`

// ListCategoriesWithToolCount returns every category with the number of tools filed under it
func (s *Store) ListCategoriesWithToolCount(ctx context.Context) ([]CategoryWithCount, error) {
	categories := []CategoryWithCount{}
	if err := s.db.SelectContext(ctx, &categories, sqlListCategoriesWithToolCount); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

const sqlListCategoriesWithPublishedToolCount = `
SELECT c.id, c.name, c.slug, c.description, c.icon, c.created_at, c.updated_at,
	COUNT(t.id) FILTER (WHERE t.is_published) AS tool_count
FROM categories c
LEFT JOIN tools t ON t.category_id = c.id
GROUP BY c.id
ORDER BY c.name
`

// ListCategoriesWithPublishedToolCount counts only published tools, for public pages
func (s *Store) ListCategoriesWithPublishedToolCount(ctx context.Context) ([]CategoryWithCount, error) {
	categories := []CategoryWithCount{}
	if err := s.db.SelectContext(ctx, &categories, sqlListCategoriesWithPublishedToolCount); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

const sqlGetCategoryByID = `
SELECT id, name, slug, description, icon, created_at, updated_at
FROM categories
WHERE id = $1
`

// GetCategoryByID retrieves a category by ID
func (s *Store) GetCategoryByID(ctx context.Context, categoryID uuid.UUID) (Category, error) {
	var category Category
	if err := s.db.GetContext(ctx, &category, sqlGetCategoryByID, categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		return Category{}, fmt.Errorf("failed to get category by id: %w", err)
	}
	return category, nil
}

const sqlGetCategoryBySlug = `
SELECT id, name, slug, description, icon, created_at, updated_at
FROM categories
WHERE slug = $1
`

// GetCategoryBySlug retrieves a category by slug
func (s *Store) GetCategoryBySlug(ctx context.Context, slug string) (Category, error) {
	var category Category
	if err := s.db.GetContext(ctx, &category, sqlGetCategoryBySlug, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		return Category{}, fmt.Errorf("failed to get category by slug: %w", err)
	}
	return category, nil
}

const sqlCreateCategory = `
INSERT INTO categories (name, slug, description, icon)
VALUES ($1, $2, $3, $4)
RETURNING id, name, slug, description, icon, created_at, updated_at
`

// CreateCategory creates a new category
func (s *Store) CreateCategory(ctx context.Context, params CategoryParams) (Category, error) {
	var category Category
	err := s.db.GetContext(ctx, &category, sqlCreateCategory, params.Name, params.Slug, params.Description, params.Icon)
	if err != nil {
		return Category{}, fmt.Errorf("failed to create category: %w", classifyError(err))
	}
	return category, nil
}

const sqlUpdateCategory = `
UPDATE categories
SET name = $2, slug = $3, description = $4, icon = $5, updated_at = NOW()
WHERE id = $1
RETURNING id, name, slug, description, icon, created_at, updated_at
`

// UpdateCategory replaces the writable columns of a category
func (s *Store) UpdateCategory(ctx context.Context, categoryID uuid.UUID, params CategoryParams) (Category, error) {
	var category Category
	err := s.db.GetContext(ctx, &category, sqlUpdateCategory, categoryID, params.Name, params.Slug, params.Description, params.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Category{}, ErrNotFound
		}
		return Category{}, fmt.Errorf("failed to update category: %w", classifyError(err))
	}
	return category, nil
}

const (
	sqlLockCategory     = `SELECT id FROM categories WHERE id = $1 FOR UPDATE`
	sqlCategoryHasTools = `SELECT EXISTS (SELECT 1 FROM tools WHERE category_id = $1)`
	sqlDeleteCategory   = `DELETE FROM categories WHERE id = $1`
)

// DeleteCategory removes a category that no tool references
func (s *Store) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		return guardedDelete(ctx, tx, categoryID, sqlLockCategory, sqlCategoryHasTools, sqlDeleteCategory)
	})
}
