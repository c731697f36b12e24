package handler

import (
	"errors"
	"net/http"
	"strconv"

	"aitoolshub/internal/apierrors"
	"aitoolshub/internal/catalog/processor"
	"aitoolshub/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CatalogProcessor
	logger    *observability.Logger
}

func New(processor processor.CatalogProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// MessageResponse is returned by deletes
type MessageResponse struct {
	Message string `json:"message"`
}

// HandleGetDashboardStats returns the admin dashboard counts
func (h *Handler) HandleGetDashboardStats(c *gin.Context) {
	stats, err := h.processor.GetDashboardStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) getID(c *gin.Context, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid "+entity+" ID format")
		return uuid.UUID{}, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrToolNotFound):
		apierrors.NotFound(c, "Tool not found")
	case errors.Is(err, processor.ErrCategoryNotFound):
		apierrors.NotFound(c, "Category not found")
	case errors.Is(err, processor.ErrVendorNotFound):
		apierrors.NotFound(c, "Vendor not found")
	case errors.Is(err, processor.ErrReviewNotFound):
		apierrors.NotFound(c, "Review not found")
	case errors.Is(err, processor.ErrToolExists):
		apierrors.Conflict(c, "CONFLICT", "Tool with this name or slug already exists")
	case errors.Is(err, processor.ErrCategoryExists):
		apierrors.Conflict(c, "CONFLICT", "Category with this name or slug already exists")
	case errors.Is(err, processor.ErrVendorExists):
		apierrors.Conflict(c, "CONFLICT", "Vendor with this name or slug already exists")
	case errors.Is(err, processor.ErrToolHasReviews):
		apierrors.Conflict(c, "HAS_DEPENDENTS", "Cannot delete tool that has reviews. Please delete the reviews first.")
	case errors.Is(err, processor.ErrCategoryHasTools):
		apierrors.Conflict(c, "HAS_DEPENDENTS", "Cannot delete category that has tools. Please reassign or delete the tools first.")
	case errors.Is(err, processor.ErrVendorHasTools):
		apierrors.Conflict(c, "HAS_DEPENDENTS", "Cannot delete vendor that has tools. Please reassign or delete the tools first.")
	case errors.Is(err, processor.ErrMissingToolFields):
		apierrors.MissingFields(c, "Name, slug, and short description are required")
	case errors.Is(err, processor.ErrMissingNameOrSlug):
		apierrors.MissingFields(c, "Name and slug are required")
	case errors.Is(err, processor.ErrInvalidPricingModel):
		apierrors.BadRequest(c, "INVALID_INPUT", "pricing_model must be one of: free freemium paid enterprise")
	case errors.Is(err, processor.ErrInvalidPricingPeriod):
		apierrors.BadRequest(c, "INVALID_INPUT", "pricing_period must be one of: one-time monthly yearly")
	case errors.Is(err, processor.ErrInvalidReference):
		apierrors.BadRequest(c, "INVALID_REFERENCE", "Referenced category or vendor does not exist")
	case errors.Is(err, processor.ErrInvalidRating):
		apierrors.BadRequest(c, "INVALID_INPUT", "rating must be between 1 and 5")
	case errors.Is(err, processor.ErrInvalidReviewStatus):
		apierrors.BadRequest(c, "INVALID_INPUT", "status must be one of: pending published")
	case errors.Is(err, processor.ErrNoToolIDs):
		apierrors.BadRequest(c, "INVALID_INPUT", "ids must list at least one tool ID")
	default:
		apierrors.InternalError(c, err)
	}
}
