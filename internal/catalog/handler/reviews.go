package handler

import (
	"net/http"

	"aitoolshub/internal/apierrors"
	"aitoolshub/internal/catalog/processor"

	"github.com/gin-gonic/gin"
)

// SubmitReviewRequest represents a visitor review
type SubmitReviewRequest struct {
	UserName  *string  `json:"user_name" binding:"omitempty,max=100"`
	UserEmail *string  `json:"user_email" binding:"omitempty,email"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Title     *string  `json:"title" binding:"omitempty,max=200"`
	Content   *string  `json:"content"`
	Pros      []string `json:"pros"`
	Cons      []string `json:"cons"`
}

// ModerateReviewRequest sets review flags; omitted flags stay unchanged
type ModerateReviewRequest struct {
	IsPublished *bool `json:"is_published"`
	IsVerified  *bool `json:"is_verified"`
}

// HandleSubmitReview stores a review for moderation
func (h *Handler) HandleSubmitReview(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	review, err := h.processor.SubmitReview(c.Request.Context(), c.Param("slug"), processor.ReviewInput{
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Rating:    req.Rating,
		Title:     req.Title,
		Content:   req.Content,
		Pros:      req.Pros,
		Cons:      req.Cons,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// HandleListToolReviews lists published reviews of a tool
func (h *Handler) HandleListToolReviews(c *gin.Context) {
	reviews, err := h.processor.ListToolReviews(c.Request.Context(), c.Param("slug"), queryInt(c, "limit", 0), queryInt(c, "offset", 0))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// HandleListReviews lists reviews for moderation
func (h *Handler) HandleListReviews(c *gin.Context) {
	reviews, err := h.processor.ListReviews(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// HandleModerateReview publishes, hides or verifies a review
func (h *Handler) HandleModerateReview(c *gin.Context) {
	reviewID, ok := h.getID(c, "review")
	if !ok {
		return
	}

	var req ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	review, err := h.processor.ModerateReview(c.Request.Context(), reviewID, req.IsPublished, req.IsVerified)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// HandleDeleteReview deletes a review
func (h *Handler) HandleDeleteReview(c *gin.Context) {
	reviewID, ok := h.getID(c, "review")
	if !ok {
		return
	}

	if err := h.processor.DeleteReview(c.Request.Context(), reviewID); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Review deleted successfully"})
}
