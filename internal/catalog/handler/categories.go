package handler

import (
	"net/http"

	"aitoolshub/internal/apierrors"
	"aitoolshub/internal/catalog/processor"

	"github.com/gin-gonic/gin"
)

// CategoryRequest represents the admin category form
type CategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (r CategoryRequest) toInput() processor.CategoryInput {
	return processor.CategoryInput{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Icon:        r.Icon,
	}
}

// VendorRequest represents the admin vendor form
type VendorRequest struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	WebsiteURL   *string `json:"website_url"`
	LogoURL      *string `json:"logo_url"`
	FoundedYear  *int    `json:"founded_year" binding:"omitempty,gte=1800,lte=2100"`
	Headquarters *string `json:"headquarters"`
}

func (r VendorRequest) toInput() processor.VendorInput {
	return processor.VendorInput{
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		WebsiteURL:   r.WebsiteURL,
		LogoURL:      r.LogoURL,
		FoundedYear:  r.FoundedYear,
		Headquarters: r.Headquarters,
	}
}

// HandleListCategories lists categories with total tool counts, for admin
func (h *Handler) HandleListCategories(c *gin.Context) {
	categories, err := h.processor.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// HandleListPublicCategories lists categories with published tool counts
func (h *Handler) HandleListPublicCategories(c *gin.Context) {
	categories, err := h.processor.ListPublicCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// HandleGetCategoryDetail returns a category page with its published tools
func (h *Handler) HandleGetCategoryDetail(c *gin.Context) {
	detail, err := h.processor.GetCategoryDetail(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// HandleCreateCategory creates a category
func (h *Handler) HandleCreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	category, err := h.processor.CreateCategory(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// HandleUpdateCategory updates a category
func (h *Handler) HandleUpdateCategory(c *gin.Context) {
	categoryID, ok := h.getID(c, "category")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	category, err := h.processor.UpdateCategory(c.Request.Context(), categoryID, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// HandleDeleteCategory deletes a category no tool is filed under
func (h *Handler) HandleDeleteCategory(c *gin.Context) {
	categoryID, ok := h.getID(c, "category")
	if !ok {
		return
	}

	if err := h.processor.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}

// HandleListVendors lists vendors by name
func (h *Handler) HandleListVendors(c *gin.Context) {
	vendors, err := h.processor.ListVendors(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// HandleCreateVendor creates a vendor
func (h *Handler) HandleCreateVendor(c *gin.Context) {
	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	vendor, err := h.processor.CreateVendor(c.Request.Context(), req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

// HandleUpdateVendor updates a vendor
func (h *Handler) HandleUpdateVendor(c *gin.Context) {
	vendorID, ok := h.getID(c, "vendor")
	if !ok {
		return
	}

	var req VendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	vendor, err := h.processor.UpdateVendor(c.Request.Context(), vendorID, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// HandleDeleteVendor deletes a vendor no tool references
func (h *Handler) HandleDeleteVendor(c *gin.Context) {
	vendorID, ok := h.getID(c, "vendor")
	if !ok {
		return
	}

	if err := h.processor.DeleteVendor(c.Request.Context(), vendorID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Vendor deleted successfully"})
}
