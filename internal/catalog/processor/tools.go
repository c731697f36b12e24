package processor

import (
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// MaxCompareTools caps how many tools can be compared side by side
const MaxCompareTools = 4

const (
	relatedToolsLimit      = 4
	detailReviewsLimit     = 10
	defaultListLimit       = 24
	maxListLimit           = 100
	defaultPricingCurrency = "USD"
)

// ToolInput is the admin-editable part of a tool. An empty Slug is derived from Name.
type ToolInput struct {
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
	PricingPeriod       string
	Features            []string
	UseCases            []string
	Integrations        []string
	SupportedPlatforms  []string
	APIAvailable        bool
	FreeTrial           bool
	TrialDays           *int
	IsFeatured          bool
	IsPublished         *bool
	AffiliateURL        *string
	AffiliateCommission *float64
	MetaTitle           *string
	MetaDescription     *string
}

// toParams validates the input and applies create defaults
func (in ToolInput) toParams() (store.ToolParams, error) {
	name := strings.TrimSpace(in.Name)
	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = Slugify(name)
	}
	if name == "" || slug == "" || strings.TrimSpace(in.ShortDescription) == "" {
		return store.ToolParams{}, ErrMissingToolFields
	}

	pricingModel := in.PricingModel
	if pricingModel == "" {
		pricingModel = store.PricingModelFreemium
	}
	switch pricingModel {
	case store.PricingModelFree, store.PricingModelFreemium, store.PricingModelPaid, store.PricingModelEnterprise:
	default:
		return store.ToolParams{}, ErrInvalidPricingModel
	}

	pricingPeriod := in.PricingPeriod
	if pricingPeriod == "" {
		pricingPeriod = store.PricingPeriodMonthly
	}
	switch pricingPeriod {
	case store.PricingPeriodOneTime, store.PricingPeriodMonthly, store.PricingPeriodYearly:
	default:
		return store.ToolParams{}, ErrInvalidPricingPeriod
	}

	currency := in.PricingCurrency
	if currency == "" {
		currency = defaultPricingCurrency
	}

	isPublished := true
	if in.IsPublished != nil {
		isPublished = *in.IsPublished
	}

	return store.ToolParams{
		Name:                name,
		Slug:                slug,
		Description:         in.Description,
		ShortDescription:    in.ShortDescription,
		LogoURL:             nonEmpty(in.LogoURL),
		WebsiteURL:          nonEmpty(in.WebsiteURL),
		CategoryID:          in.CategoryID,
		VendorID:            in.VendorID,
		PricingModel:        pricingModel,
		StartingPrice:       in.StartingPrice,
		PricingCurrency:     currency,
		PricingPeriod:       &pricingPeriod,
		Features:            listOrEmpty(in.Features),
		UseCases:            listOrEmpty(in.UseCases),
		Integrations:        listOrEmpty(in.Integrations),
		SupportedPlatforms:  listOrEmpty(in.SupportedPlatforms),
		APIAvailable:        in.APIAvailable,
		FreeTrial:           in.FreeTrial,
		TrialDays:           in.TrialDays,
		IsFeatured:          in.IsFeatured,
		IsPublished:         isPublished,
		AffiliateURL:        nonEmpty(in.AffiliateURL),
		AffiliateCommission: in.AffiliateCommission,
		MetaTitle:           nonEmpty(in.MetaTitle),
		MetaDescription:     nonEmpty(in.MetaDescription),
	}, nil
}

// ListTools returns every tool, newest first, with category and vendor
func (p *CatalogProcessor) ListTools(ctx context.Context) ([]store.Tool, error) {
	tools, err := p.store.ListTools(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list tools", err)
		return nil, err
	}
	return tools, nil
}

// GetTool returns a tool by id regardless of its published state
func (p *CatalogProcessor) GetTool(ctx context.Context, toolID uuid.UUID) (store.Tool, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_id", Value: toolID.String()})

	tool, err := p.store.GetToolByID(ctx, toolID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Tool{}, ErrToolNotFound
		}
		p.logger.Error(ctx, "failed to get tool", err)
		return store.Tool{}, err
	}
	return tool, nil
}

// CreateTool validates and stores a new tool
func (p *CatalogProcessor) CreateTool(ctx context.Context, input ToolInput) (store.Tool, error) {
	params, err := input.toParams()
	if err != nil {
		return store.Tool{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_slug", Value: params.Slug})

	tool, err := p.store.CreateTool(ctx, params)
	if err != nil {
		err = classifyWriteError(err, ErrToolNotFound, ErrToolExists, nil)
		p.logWriteError(ctx, "failed to create tool", err)
		return store.Tool{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_id", Value: tool.ID.String()})
	p.logger.Info(ctx, "tool created")
	return tool, nil
}

// UpdateTool replaces the editable fields of a tool
func (p *CatalogProcessor) UpdateTool(ctx context.Context, toolID uuid.UUID, input ToolInput) (store.Tool, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_id", Value: toolID.String()})

	params, err := input.toParams()
	if err != nil {
		return store.Tool{}, err
	}

	tool, err := p.store.UpdateTool(ctx, toolID, params)
	if err != nil {
		err = classifyWriteError(err, ErrToolNotFound, ErrToolExists, nil)
		p.logWriteError(ctx, "failed to update tool", err)
		return store.Tool{}, err
	}

	p.logger.Info(ctx, "tool updated")
	return tool, nil
}

// DeleteTool removes a tool that has no reviews
func (p *CatalogProcessor) DeleteTool(ctx context.Context, toolID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_id", Value: toolID.String()})

	if err := p.store.DeleteTool(ctx, toolID); err != nil {
		err = classifyWriteError(err, ErrToolNotFound, nil, ErrToolHasReviews)
		p.logWriteError(ctx, "failed to delete tool", err)
		return err
	}

	p.logger.Info(ctx, "tool deleted")
	return nil
}

// ListToolsParams filters the public tool listing
type ListToolsParams struct {
	CategorySlug string
	Query        string
	Limit        int
	Offset       int
}

// ListPublishedTools returns published tools, featured and best rated first
func (p *CatalogProcessor) ListPublishedTools(ctx context.Context, params ListToolsParams) ([]store.Tool, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "category_slug", Value: params.CategorySlug},
		observability.Field{Key: "query", Value: params.Query},
	)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	tools, err := p.store.ListPublishedTools(ctx, store.ListPublishedToolsParams{
		CategorySlug: params.CategorySlug,
		Query:        strings.TrimSpace(params.Query),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list published tools", err)
		return nil, err
	}
	return tools, nil
}

// ToolDetail is everything the public tool page shows
type ToolDetail struct {
	store.Tool
	RelatedTools []store.Tool   `json:"related_tools"`
	Reviews      []store.Review `json:"reviews"`
}

// GetToolDetail loads a published tool with its pricing plans, related tools and latest reviews
func (p *CatalogProcessor) GetToolDetail(ctx context.Context, slug string) (ToolDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_slug", Value: slug})

	tool, err := p.store.GetPublishedToolBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ToolDetail{}, ErrToolNotFound
		}
		p.logger.Error(ctx, "failed to get tool by slug", err)
		return ToolDetail{}, err
	}

	plans, err := p.store.ListPricingPlansForTool(ctx, tool.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list pricing plans", err)
		return ToolDetail{}, err
	}
	tool.PricingPlans = plans

	related := []store.Tool{}
	if tool.CategoryID != nil {
		related, err = p.store.ListRelatedTools(ctx, *tool.CategoryID, tool.ID, relatedToolsLimit)
		if err != nil {
			p.logger.Error(ctx, "failed to list related tools", err)
			return ToolDetail{}, err
		}
	}

	reviews, err := p.store.ListPublishedReviewsForTool(ctx, tool.ID, detailReviewsLimit, 0)
	if err != nil {
		p.logger.Error(ctx, "failed to list tool reviews", err)
		return ToolDetail{}, err
	}

	return ToolDetail{
		Tool:         tool,
		RelatedTools: related,
		Reviews:      reviews,
	}, nil
}

// CompareTools returns up to MaxCompareTools published tools in the requested order.
// Extra ids are ignored and unknown ids are skipped.
func (p *CatalogProcessor) CompareTools(ctx context.Context, toolIDs []uuid.UUID) ([]store.Tool, error) {
	ids := dedupeIDs(toolIDs)
	if len(ids) == 0 {
		return nil, ErrNoToolIDs
	}
	if len(ids) > MaxCompareTools {
		ids = ids[:MaxCompareTools]
	}

	tools, err := p.store.GetPublishedToolsByIDs(ctx, ids)
	if err != nil {
		p.logger.Error(ctx, "failed to get tools for comparison", err)
		return nil, err
	}
	return tools, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func listOrEmpty(items []string) store.StringList {
	if items == nil {
		return store.StringList{}
	}
	return store.StringList(items)
}
