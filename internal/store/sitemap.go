package store

import (
	"context"
	"fmt"
	"time"
)

// SlugEntry is a page slug with its last modification time
type SlugEntry struct {
	Slug      string    `db:"slug"`
	UpdatedAt time.Time `db:"updated_at"`
}

const sqlListPublishedToolSlugs = `SELECT slug, updated_at FROM tools WHERE is_published = TRUE ORDER BY updated_at DESC`

// ListPublishedToolSlugs returns the slugs of every published tool, most recently updated first
func (s *Store) ListPublishedToolSlugs(ctx context.Context) ([]SlugEntry, error) {
	entries := []SlugEntry{}
	if err := s.db.SelectContext(ctx, &entries, sqlListPublishedToolSlugs); err != nil {
		return nil, fmt.Errorf("failed to list published tool slugs: %w", err)
	}
	return entries, nil
}

const sqlListCategorySlugs = `SELECT slug, updated_at FROM categories ORDER BY updated_at DESC`

// ListCategorySlugs returns every category slug, most recently updated first
func (s *Store) ListCategorySlugs(ctx context.Context) ([]SlugEntry, error) {
	entries := []SlugEntry{}
	if err := s.db.SelectContext(ctx, &entries, sqlListCategorySlugs); err != nil {
		return nil, fmt.Errorf("failed to list category slugs: %w", err)
	}
	return entries, nil
}
