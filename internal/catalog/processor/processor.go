package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"errors"

	"github.com/google/uuid"
)

// CatalogStore defines the database operations required by CatalogProcessor
type CatalogStore interface {
	ListTools(ctx context.Context) ([]store.Tool, error)
	GetToolByID(ctx context.Context, toolID uuid.UUID) (store.Tool, error)
	GetPublishedToolBySlug(ctx context.Context, slug string) (store.Tool, error)
	ListPublishedTools(ctx context.Context, params store.ListPublishedToolsParams) ([]store.Tool, error)
	ListRelatedTools(ctx context.Context, categoryID, excludeToolID uuid.UUID, limit int) ([]store.Tool, error)
	GetPublishedToolsByIDs(ctx context.Context, toolIDs []uuid.UUID) ([]store.Tool, error)
	CreateTool(ctx context.Context, params store.ToolParams) (store.Tool, error)
	UpdateTool(ctx context.Context, toolID uuid.UUID, params store.ToolParams) (store.Tool, error)
	DeleteTool(ctx context.Context, toolID uuid.UUID) error
	ListPricingPlansForTool(ctx context.Context, toolID uuid.UUID) ([]store.PricingPlan, error)

	ListCategoriesWithToolCount(ctx context.Context) ([]store.CategoryWithCount, error)
	ListCategoriesWithPublishedToolCount(ctx context.Context) ([]store.CategoryWithCount, error)
	GetCategoryBySlug(ctx context.Context, slug string) (store.Category, error)
	CreateCategory(ctx context.Context, params store.CategoryParams) (store.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, params store.CategoryParams) (store.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	ListVendors(ctx context.Context) ([]store.Vendor, error)
	CreateVendor(ctx context.Context, params store.VendorParams) (store.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID uuid.UUID, params store.VendorParams) (store.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID uuid.UUID) error

	CreateReview(ctx context.Context, params store.CreateReviewParams) (store.Review, error)
	ListPublishedReviewsForTool(ctx context.Context, toolID uuid.UUID, limit, offset int) ([]store.Review, error)
	ListReviews(ctx context.Context, params store.ListReviewsParams) ([]store.Review, error)
	UpdateReviewModeration(ctx context.Context, reviewID uuid.UUID, isPublished, isVerified *bool) (store.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) (uuid.UUID, error)

	GetDashboardStats(ctx context.Context) (store.DashboardStats, error)
}

var (
	ErrToolNotFound     = errors.New("tool not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrVendorNotFound   = errors.New("vendor not found")
	ErrReviewNotFound   = errors.New("review not found")

	ErrToolExists     = errors.New("tool with this name or slug already exists")
	ErrCategoryExists = errors.New("category with this name or slug already exists")
	ErrVendorExists   = errors.New("vendor with this name or slug already exists")

	ErrToolHasReviews   = errors.New("tool has reviews")
	ErrCategoryHasTools = errors.New("category has tools")
	ErrVendorHasTools   = errors.New("vendor has tools")

	ErrMissingToolFields    = errors.New("name, slug and short description are required")
	ErrMissingNameOrSlug    = errors.New("name and slug are required")
	ErrInvalidPricingModel  = errors.New("invalid pricing model")
	ErrInvalidPricingPeriod = errors.New("invalid pricing period")
	ErrInvalidReference     = errors.New("referenced category or vendor does not exist")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrInvalidReviewStatus  = errors.New("invalid review status")
	ErrNoToolIDs            = errors.New("at least one tool id is required")
)

type CatalogProcessor struct {
	store  CatalogStore
	logger *observability.Logger
}

func New(store CatalogStore, logger *observability.Logger) CatalogProcessor {
	return CatalogProcessor{
		store:  store,
		logger: logger,
	}
}

// GetDashboardStats returns the headline counts for the admin dashboard
func (p *CatalogProcessor) GetDashboardStats(ctx context.Context) (store.DashboardStats, error) {
	stats, err := p.store.GetDashboardStats(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get dashboard stats", err)
		return store.DashboardStats{}, err
	}
	return stats, nil
}

// classifyWriteError maps store constraint errors to catalog errors. exists is returned for
// unique violations, dependents for guarded deletes.
func classifyWriteError(err, notFound, exists, dependents error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return notFound
	case errors.Is(err, store.ErrUniqueViolation) && exists != nil:
		return exists
	case errors.Is(err, store.ErrForeignKeyViolation):
		return ErrInvalidReference
	case errors.Is(err, store.ErrHasDependents) && dependents != nil:
		return dependents
	}
	return err
}

// isDomainError reports whether err is one of the catalog sentinels rather than an unexpected failure
func isDomainError(err error) bool {
	for _, target := range []error{
		ErrToolNotFound, ErrCategoryNotFound, ErrVendorNotFound, ErrReviewNotFound,
		ErrToolExists, ErrCategoryExists, ErrVendorExists,
		ErrToolHasReviews, ErrCategoryHasTools, ErrVendorHasTools,
		ErrInvalidReference,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// logWriteError logs unexpected failures at Error and expected conflicts at Info
func (p *CatalogProcessor) logWriteError(ctx context.Context, msg string, err error) {
	if isDomainError(err) {
		p.logger.InfoWithError(ctx, msg, err)
		return
	}
	p.logger.Error(ctx, msg, err)
}
