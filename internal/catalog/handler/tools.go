package handler

import (
	"net/http"
	"strings"

	"aitoolshub/internal/apierrors"
	"aitoolshub/internal/catalog/processor"
	"aitoolshub/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ToolRequest represents the admin tool form
type ToolRequest struct {
	Name                string   `json:"name"`
	Slug                string   `json:"slug"`
	Description         string   `json:"description"`
	ShortDescription    string   `json:"short_description"`
	LogoURL             *string  `json:"logo_url"`
	WebsiteURL          *string  `json:"website_url"`
	CategoryID          string   `json:"category_id" binding:"omitempty,uuid"`
	VendorID            string   `json:"vendor_id" binding:"omitempty,uuid"`
	PricingModel        string   `json:"pricing_model"`
	StartingPrice       *float64 `json:"starting_price" binding:"omitempty,gte=0"`
	PricingCurrency     string   `json:"pricing_currency" binding:"omitempty,len=3"`
	PricingPeriod       string   `json:"pricing_period"`
	Features            []string `json:"features"`
	UseCases            []string `json:"use_cases"`
	Integrations        []string `json:"integrations"`
	SupportedPlatforms  []string `json:"supported_platforms"`
	APIAvailable        bool     `json:"api_available"`
	FreeTrial           bool     `json:"free_trial"`
	TrialDays           *int     `json:"trial_days" binding:"omitempty,gte=0"`
	IsFeatured          bool     `json:"is_featured"`
	IsPublished         *bool    `json:"is_published"`
	AffiliateURL        *string  `json:"affiliate_url"`
	AffiliateCommission *float64 `json:"affiliate_commission" binding:"omitempty,gte=0,lte=100"`
	MetaTitle           *string  `json:"meta_title"`
	MetaDescription     *string  `json:"meta_description"`
}

func (r ToolRequest) toInput() processor.ToolInput {
	return processor.ToolInput{
		Name:                r.Name,
		Slug:                r.Slug,
		Description:         r.Description,
		ShortDescription:    r.ShortDescription,
		LogoURL:             r.LogoURL,
		WebsiteURL:          r.WebsiteURL,
		CategoryID:          optionalID(r.CategoryID),
		VendorID:            optionalID(r.VendorID),
		PricingModel:        r.PricingModel,
		StartingPrice:       r.StartingPrice,
		PricingCurrency:     r.PricingCurrency,
		PricingPeriod:       r.PricingPeriod,
		Features:            r.Features,
		UseCases:            r.UseCases,
		Integrations:        r.Integrations,
		SupportedPlatforms:  r.SupportedPlatforms,
		APIAvailable:        r.APIAvailable,
		FreeTrial:           r.FreeTrial,
		TrialDays:           r.TrialDays,
		IsFeatured:          r.IsFeatured,
		IsPublished:         r.IsPublished,
		AffiliateURL:        r.AffiliateURL,
		AffiliateCommission: r.AffiliateCommission,
		MetaTitle:           r.MetaTitle,
		MetaDescription:     r.MetaDescription,
	}
}

// optionalID treats an empty form value as no reference. Values are already validated as UUIDs.
func optionalID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

// HandleListTools lists every tool for admin
func (h *Handler) HandleListTools(c *gin.Context) {
	tools, err := h.processor.ListTools(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tools)
}

// HandleGetTool retrieves a tool by ID for the admin editor
func (h *Handler) HandleGetTool(c *gin.Context) {
	toolID, ok := h.getID(c, "tool")
	if !ok {
		return
	}

	tool, err := h.processor.GetTool(c.Request.Context(), toolID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tool)
}

// HandleCreateTool creates a new tool
func (h *Handler) HandleCreateTool(c *gin.Context) {
	ctx := c.Request.Context()

	var req ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	tool, err := h.processor.CreateTool(ctx, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tool)
}

// HandleUpdateTool replaces a tool's editable fields
func (h *Handler) HandleUpdateTool(c *gin.Context) {
	ctx := c.Request.Context()

	toolID, ok := h.getID(c, "tool")
	if !ok {
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "tool_id", Value: toolID.String()})

	var req ToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	tool, err := h.processor.UpdateTool(ctx, toolID, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tool)
}

// HandleDeleteTool deletes a tool without reviews
func (h *Handler) HandleDeleteTool(c *gin.Context) {
	toolID, ok := h.getID(c, "tool")
	if !ok {
		return
	}

	if err := h.processor.DeleteTool(c.Request.Context(), toolID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Tool deleted successfully"})
}

// HandleListPublishedTools lists published tools, optionally by category and search query
func (h *Handler) HandleListPublishedTools(c *gin.Context) {
	tools, err := h.processor.ListPublishedTools(c.Request.Context(), processor.ListToolsParams{
		CategorySlug: c.Query("category"),
		Query:        c.Query("q"),
		Limit:        queryInt(c, "limit", 0),
		Offset:       queryInt(c, "offset", 0),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tools)
}

// HandleGetToolDetail returns the public tool page data
func (h *Handler) HandleGetToolDetail(c *gin.Context) {
	detail, err := h.processor.GetToolDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// HandleCompareTools returns published tools by comma separated ids, in request order
func (h *Handler) HandleCompareTools(c *gin.Context) {
	var ids []uuid.UUID
	for _, raw := range strings.Split(c.Query("ids"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_INPUT", "Invalid tool ID format")
			return
		}
		ids = append(ids, id)
	}

	tools, err := h.processor.CompareTools(c.Request.Context(), ids)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tools)
}
