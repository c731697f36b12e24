package handler

import (
	"errors"
	"net/http"

	"aitoolshub/internal/affiliate/processor"
	"aitoolshub/internal/affiliate/tracking"
	"aitoolshub/internal/apierrors"
	"aitoolshub/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.AffiliateProcessor
	logger    *observability.Logger
}

func New(processor processor.AffiliateProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ClickRequest represents an outbound link activation sent by the browser
type ClickRequest struct {
	ToolID    string `json:"toolId"`
	SessionID string `json:"sessionId"`
	Referrer  string `json:"referrer"`
}

// ClickResponse tells the browser where to navigate
type ClickResponse struct {
	Success    bool   `json:"success"`
	ClickID    string `json:"clickId"`
	TargetURL  string `json:"targetUrl"`
	TrackedURL string `json:"trackedUrl"`
}

// ConversionRequest represents a visitor action to attribute to an earlier click
type ConversionRequest struct {
	SessionID       string                 `json:"sessionId"`
	ToolID          string                 `json:"toolId"`
	ConversionType  string                 `json:"conversionType"`
	ConversionValue *float64               `json:"conversionValue"`
	Metadata        map[string]interface{} `json:"metadata"`
}

// ConversionResponse reports the recorded conversion
type ConversionResponse struct {
	Success          bool    `json:"success"`
	ConversionID     string  `json:"conversionId"`
	CommissionAmount float64 `json:"commissionAmount"`
}

// HandleRecordClick records a click on a tool's outbound link. The session comes from the
// body, falling back to the session cookie, which is created when absent.
func (h *Handler) HandleRecordClick(c *gin.Context) {
	ctx := c.Request.Context()

	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if req.SessionID == "" {
		sessionID, created := tracking.EnsureSession(c)
		req.SessionID = sessionID
		if created {
			ctx = observability.WithFields(ctx, observability.Field{Key: "session_created", Value: true})
		}
	}

	referrer := c.GetHeader("Referer")
	if referrer == "" {
		referrer = req.Referrer
	}

	result, err := h.processor.RecordClick(ctx, processor.ClickInput{
		ToolID:    req.ToolID,
		SessionID: req.SessionID,
		Referrer:  referrer,
		ClientIP:  observability.GetRealClientIP(c),
		Headers:   c.Request.Header,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ClickResponse{
		Success:    true,
		ClickID:    result.ClickID.String(),
		TargetURL:  result.TargetURL,
		TrackedURL: result.TrackedURL,
	})
}

// HandleRecordConversion attributes a conversion to the session's latest click on the tool
func (h *Handler) HandleRecordConversion(c *gin.Context) {
	ctx := c.Request.Context()

	var req ConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if req.SessionID == "" {
		if sessionID, ok := tracking.SessionFromCookie(c); ok {
			req.SessionID = sessionID
		}
	}

	result, err := h.processor.RecordConversion(ctx, processor.ConversionInput{
		SessionID:       req.SessionID,
		ToolID:          req.ToolID,
		ConversionType:  req.ConversionType,
		ConversionValue: req.ConversionValue,
		Metadata:        req.Metadata,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConversionResponse{
		Success:          true,
		ConversionID:     result.ConversionID.String(),
		CommissionAmount: result.CommissionAmount,
	})
}

// HandleGetReport returns click and conversion totals for the requested window
func (h *Handler) HandleGetReport(c *gin.Context) {
	ctx := c.Request.Context()

	report, err := h.processor.BuildReport(ctx, processor.ReportParams{
		Period:    c.Query("period"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrMissingRequiredFields):
		apierrors.MissingFields(c, "Missing required fields")
	case errors.Is(err, processor.ErrInvalidToolID):
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid tool ID format")
	case errors.Is(err, processor.ErrInvalidConversionType):
		apierrors.BadRequest(c, "INVALID_CONVERSION_TYPE", "conversionType must be one of: signup trial purchase subscription")
	case errors.Is(err, processor.ErrInvalidDateRange):
		apierrors.BadRequest(c, "INVALID_DATE_RANGE", "start_date and end_date must be valid dates with start_date before end_date")
	case errors.Is(err, processor.ErrToolNotFound):
		apierrors.NotFound(c, "Tool not found")
	case errors.Is(err, processor.ErrClickNotFound):
		apierrors.NotFound(c, "Original click not found")
	default:
		apierrors.InternalError(c, err)
	}
}
