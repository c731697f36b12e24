package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ToolParams carries every writable tool column for create and full update
type ToolParams struct {
	Name                string
	Slug                string
	Description         string
	ShortDescription    string
	LogoURL             *string
	WebsiteURL          *string
	CategoryID          *uuid.UUID
	VendorID            *uuid.UUID
	PricingModel        string
	StartingPrice       *float64
	PricingCurrency     string
	PricingPeriod       *string
	Features            StringList
	UseCases            StringList
	Integrations        StringList
	SupportedPlatforms  StringList
	APIAvailable        bool
	FreeTrial           bool
	TrialDays           *int
	IsFeatured          bool
	IsPublished         bool
	AffiliateURL        *string
	AffiliateCommission *float64
	MetaTitle           *string
	MetaDescription     *string
}

// ListPublishedToolsParams filters the public tool listing
type ListPublishedToolsParams struct {
	CategorySlug string
	Query        string
	Limit        int
	Offset       int
}

const toolSelectColumns = `
t.id, t.name, t.slug, t.description, t.short_description, t.logo_url, t.website_url, t.category_id, t.vendor_id,
t.pricing_model, t.starting_price, t.pricing_currency, t.pricing_period, t.features, t.use_cases, t.integrations,
t.supported_platforms, t.api_available, t.free_trial, t.trial_days, t.rating, t.review_count, t.is_featured,
t.is_published, t.affiliate_url, t.affiliate_commission, t.meta_title, t.meta_description, t.created_at, t.updated_at,
c.name AS category_name, c.slug AS category_slug, v.name AS vendor_name, v.slug AS vendor_slug
FROM tools t
LEFT JOIN categories c ON t.category_id = c.id
LEFT JOIN vendors v ON t.vendor_id = v.id
`

const sqlListTools = `SELECT ` + toolSelectColumns + `ORDER BY t.created_at DESC`

// ListTools returns every tool, newest first, for the admin catalog
func (s *Store) ListTools(ctx context.Context) ([]Tool, error) {
	tools := []Tool{}
	if err := s.db.SelectContext(ctx, &tools, sqlListTools); err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	for i := range tools {
		tools[i].attachRelations()
	}
	return tools, nil
}

const sqlGetToolByID = `SELECT ` + toolSelectColumns + `WHERE t.id = $1`

// GetToolByID retrieves a tool with its category and vendor
func (s *Store) GetToolByID(ctx context.Context, toolID uuid.UUID) (Tool, error) {
	var tool Tool
	if err := s.db.GetContext(ctx, &tool, sqlGetToolByID, toolID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tool{}, ErrNotFound
		}
		return Tool{}, fmt.Errorf("failed to get tool by id: %w", err)
	}
	tool.attachRelations()
	return tool, nil
}

const sqlGetPublishedToolBySlug = `SELECT ` + toolSelectColumns + `WHERE t.slug = $1 AND t.is_published = TRUE`

// GetPublishedToolBySlug retrieves a published tool for its public page
func (s *Store) GetPublishedToolBySlug(ctx context.Context, slug string) (Tool, error) {
	var tool Tool
	if err := s.db.GetContext(ctx, &tool, sqlGetPublishedToolBySlug, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tool{}, ErrNotFound
		}
		return Tool{}, fmt.Errorf("failed to get tool by slug: %w", err)
	}
	tool.attachRelations()
	return tool, nil
}

// ListPublishedTools returns published tools, featured and best rated first
func (s *Store) ListPublishedTools(ctx context.Context, params ListPublishedToolsParams) ([]Tool, error) {
	var (
		where = []string{"t.is_published = TRUE"}
		args  []interface{}
	)
	if params.CategorySlug != "" {
		args = append(args, params.CategorySlug)
		where = append(where, fmt.Sprintf("c.slug = $%d", len(args)))
	}
	if q := strings.TrimSpace(params.Query); q != "" {
		args = append(args, q, "%"+q+"%")
		where = append(where, fmt.Sprintf(
			"(t.search_vector @@ plainto_tsquery('english', $%d) OR t.name ILIKE $%d OR t.short_description ILIKE $%d)",
			len(args)-1, len(args), len(args)))
	}

	query := `SELECT ` + toolSelectColumns + `WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY t.is_featured DESC, t.rating DESC NULLS LAST, t.created_at DESC`

	if params.Limit > 0 {
		args = append(args, params.Limit, params.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	tools := []Tool{}
	if err := s.db.SelectContext(ctx, &tools, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list published tools: %w", err)
	}
	for i := range tools {
		tools[i].attachRelations()
	}
	return tools, nil
}

const sqlListRelatedTools = `SELECT ` + toolSelectColumns + `
WHERE t.category_id = $1 AND t.id <> $2 AND t.is_published = TRUE
ORDER BY t.is_featured DESC, t.rating DESC NULLS LAST
LIMIT $3`

// ListRelatedTools returns other published tools in the same category
func (s *Store) ListRelatedTools(ctx context.Context, categoryID, excludeToolID uuid.UUID, limit int) ([]Tool, error) {
	tools := []Tool{}
	if err := s.db.SelectContext(ctx, &tools, sqlListRelatedTools, categoryID, excludeToolID, limit); err != nil {
		return nil, fmt.Errorf("failed to list related tools: %w", err)
	}
	for i := range tools {
		tools[i].attachRelations()
	}
	return tools, nil
}

const sqlGetPublishedToolsByIDs = `SELECT ` + toolSelectColumns + `WHERE t.id::text = ANY($1::text[]) AND t.is_published = TRUE`

// GetPublishedToolsByIDs returns published tools in the order the ids were given
func (s *Store) GetPublishedToolsByIDs(ctx context.Context, toolIDs []uuid.UUID) ([]Tool, error) {
	if len(toolIDs) == 0 {
		return []Tool{}, nil
	}
	ids := make([]string, len(toolIDs))
	for i, id := range toolIDs {
		ids[i] = id.String()
	}

	rows := []Tool{}
	if err := s.db.SelectContext(ctx, &rows, sqlGetPublishedToolsByIDs, ids); err != nil {
		return nil, fmt.Errorf("failed to get tools by ids: %w", err)
	}

	byID := make(map[uuid.UUID]Tool, len(rows))
	for _, t := range rows {
		t.attachRelations()
		byID[t.ID] = t
	}
	tools := make([]Tool, 0, len(rows))
	for _, id := range toolIDs {
		if t, ok := byID[id]; ok {
			tools = append(tools, t)
		}
	}
	return tools, nil
}

const sqlCreateTool = `
INSERT INTO tools (name, slug, description, short_description, logo_url, website_url, category_id, vendor_id,
	pricing_model, starting_price, pricing_currency, pricing_period, features, use_cases, integrations,
	supported_platforms, api_available, free_trial, trial_days, is_featured, is_published, affiliate_url,
	affiliate_commission, meta_title, meta_description)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
RETURNING id
`

// CreateTool inserts a tool and returns it with joined relations
func (s *Store) CreateTool(ctx context.Context, params ToolParams) (Tool, error) {
	var toolID uuid.UUID
	err := s.db.GetContext(ctx, &toolID, sqlCreateTool, toolArgs(params)...)
	if err != nil {
		return Tool{}, fmt.Errorf("failed to create tool: %w", classifyError(err))
	}
	return s.GetToolByID(ctx, toolID)
}

const sqlUpdateTool = `
UPDATE tools
SET name = $2, slug = $3, description = $4, short_description = $5, logo_url = $6, website_url = $7,
	category_id = $8, vendor_id = $9, pricing_model = $10, starting_price = $11, pricing_currency = $12,
	pricing_period = $13, features = $14, use_cases = $15, integrations = $16, supported_platforms = $17,
	api_available = $18, free_trial = $19, trial_days = $20, is_featured = $21, is_published = $22,
	affiliate_url = $23, affiliate_commission = $24, meta_title = $25, meta_description = $26,
	updated_at = NOW()
WHERE id = $1
RETURNING id
`

// UpdateTool replaces every writable column of a tool
func (s *Store) UpdateTool(ctx context.Context, toolID uuid.UUID, params ToolParams) (Tool, error) {
	args := append([]interface{}{toolID}, toolArgs(params)...)
	var updatedID uuid.UUID
	err := s.db.GetContext(ctx, &updatedID, sqlUpdateTool, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Tool{}, ErrNotFound
		}
		return Tool{}, fmt.Errorf("failed to update tool: %w", classifyError(err))
	}
	return s.GetToolByID(ctx, updatedID)
}

func toolArgs(p ToolParams) []interface{} {
	return []interface{}{
		p.Name, p.Slug, p.Description, p.ShortDescription, p.LogoURL, p.WebsiteURL, p.CategoryID, p.VendorID,
		p.PricingModel, p.StartingPrice, p.PricingCurrency, p.PricingPeriod, p.Features, p.UseCases,
		p.Integrations, p.SupportedPlatforms, p.APIAvailable, p.FreeTrial, p.TrialDays, p.IsFeatured,
		p.IsPublished, p.AffiliateURL, p.AffiliateCommission, p.MetaTitle, p.MetaDescription,
	}
}

const (
	sqlLockTool       = `SELECT id FROM tools WHERE id = $1 FOR UPDATE`
	sqlToolHasReviews = `SELECT EXISTS (SELECT 1 FROM reviews WHERE tool_id = $1)`
	sqlDeleteToolByID = `DELETE FROM tools WHERE id = $1`
)

// DeleteTool removes a tool that has no reviews. The check and the delete share one
// transaction holding the tool row lock, and reviews.tool_id is ON DELETE RESTRICT.
func (s *Store) DeleteTool(ctx context.Context, toolID uuid.UUID) error {
	return s.withTx(ctx, func(tx *sqlx.Tx) error {
		return guardedDelete(ctx, tx, toolID, sqlLockTool, sqlToolHasReviews, sqlDeleteToolByID)
	})
}

// guardedDelete locks the parent row, refuses when dependents exist, then deletes
func guardedDelete(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, lockSQL, dependentsSQL, deleteSQL string) error {
	var lockedID uuid.UUID
	if err := tx.GetContext(ctx, &lockedID, lockSQL, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock row: %w", err)
	}

	var hasDependents bool
	if err := tx.GetContext(ctx, &hasDependents, dependentsSQL, id); err != nil {
		return fmt.Errorf("failed to check dependents: %w", err)
	}
	if hasDependents {
		return ErrHasDependents
	}

	if _, err := tx.ExecContext(ctx, deleteSQL, id); err != nil {
		err = classifyError(err)
		if errors.Is(err, ErrForeignKeyViolation) {
			return ErrHasDependents
		}
		return fmt.Errorf("failed to delete row: %w", err)
	}
	return nil
}

const sqlRefreshToolRating = `
UPDATE tools t
SET rating = stats.avg_rating, review_count = stats.review_count, updated_at = NOW()
FROM (
	SELECT ROUND(AVG(rating)::numeric, 2) AS avg_rating, COUNT(*) AS review_count
	FROM reviews
	WHERE tool_id = $1 AND is_published = TRUE
) stats
WHERE t.id = $1
`

// refreshToolRating recomputes rating and review_count from published reviews
func refreshToolRating(ctx context.Context, tx *sqlx.Tx, toolID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, sqlRefreshToolRating, toolID); err != nil {
		return fmt.Errorf("failed to refresh tool rating: %w", err)
	}
	return nil
}
