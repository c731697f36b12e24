package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"aitoolshub/internal/affiliate/tracking"
	"aitoolshub/internal/observability"
	"aitoolshub/internal/store"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AffiliateStore defines the database operations required by AffiliateProcessor
type AffiliateStore interface {
	GetToolByID(ctx context.Context, toolID uuid.UUID) (store.Tool, error)
	CreateAffiliateClick(ctx context.Context, params store.CreateAffiliateClickParams) (store.AffiliateClick, error)
	GetLatestAffiliateClick(ctx context.Context, sessionID string, toolID uuid.UUID) (store.AffiliateClick, error)
	CreateAffiliateConversion(ctx context.Context, params store.CreateAffiliateConversionParams) (store.AffiliateConversion, error)
	GetAffiliateTotals(ctx context.Context, start, end time.Time) (store.AffiliateTotals, error)
}

// EventPublisher receives recorded clicks and conversions as a side channel
type EventPublisher interface {
	PublishClickRecorded(ctx context.Context, click store.AffiliateClick) error
	PublishConversionRecorded(ctx context.Context, conversion store.AffiliateConversion) error
}

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidToolID         = errors.New("invalid tool id")
	ErrInvalidConversionType = errors.New("invalid conversion type")
	ErrInvalidDateRange      = errors.New("invalid date range")
	ErrToolNotFound          = errors.New("tool not found")
	ErrClickNotFound         = errors.New("original click not found")
)

type AffiliateProcessor struct {
	store     AffiliateStore
	publisher EventPublisher
	logger    *observability.Logger
	now       func() time.Time
}

// New creates an AffiliateProcessor. publisher may be nil when event streaming is disabled.
func New(store AffiliateStore, publisher EventPublisher, logger *observability.Logger) AffiliateProcessor {
	return AffiliateProcessor{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// ClickInput is an outbound link activation as received from the browser
type ClickInput struct {
	ToolID    string
	SessionID string
	Referrer  string
	ClientIP  string
	Headers   http.Header
}

// ClickResult tells the browser where to navigate
type ClickResult struct {
	ClickID    uuid.UUID
	TargetURL  string
	TrackedURL string
}

// RecordClick validates the click, enriches it with referrer and user agent context,
// stores it, and resolves the tool's destination URL.
func (p *AffiliateProcessor) RecordClick(ctx context.Context, input ClickInput) (ClickResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tool_id", Value: input.ToolID},
		observability.Field{Key: "session_id", Value: input.SessionID},
	)

	if strings.TrimSpace(input.ToolID) == "" || strings.TrimSpace(input.SessionID) == "" {
		return ClickResult{}, ErrMissingRequiredFields
	}
	toolID, err := uuid.Parse(input.ToolID)
	if err != nil {
		return ClickResult{}, ErrInvalidToolID
	}

	tool, err := p.store.GetToolByID(ctx, toolID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "click for unknown tool")
			return ClickResult{}, ErrToolNotFound
		}
		p.logger.Error(ctx, "failed to get tool for click", err)
		return ClickResult{}, err
	}

	headers := input.Headers
	if headers == nil {
		headers = http.Header{}
	}
	utm := tracking.ParseUTM(input.Referrer)
	userAgent := tracking.UserAgent(headers)
	client := tracking.ParseUserAgent(userAgent)
	userIP := input.ClientIP
	if userIP == "" {
		userIP = "unknown"
	}

	click, err := p.store.CreateAffiliateClick(ctx, store.CreateAffiliateClickParams{
		ToolID:      toolID,
		SessionID:   input.SessionID,
		UserIP:      &userIP,
		UserAgent:   &userAgent,
		Referrer:    &input.Referrer,
		UTMSource:   utm.Source,
		UTMMedium:   utm.Medium,
		UTMCampaign: utm.Campaign,
		UTMTerm:     utm.Term,
		UTMContent:  utm.Content,
		Country:     &client.Country,
		Device:      &client.Device,
		Browser:     &client.Browser,
		OS:          &client.OS,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record affiliate click", err)
		return ClickResult{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "click_id", Value: click.ID.String()})
	p.logger.Info(ctx, "affiliate click recorded")
	p.publish(ctx, func(ctx context.Context) error {
		return p.publisher.PublishClickRecorded(ctx, click)
	})

	target := tool.TargetURL()
	return ClickResult{
		ClickID:    click.ID,
		TargetURL:  target,
		TrackedURL: tracking.BuildAffiliateURL(target, toolID.String(), input.SessionID, utm),
	}, nil
}

// ConversionInput is a visitor action to attribute to an earlier click
type ConversionInput struct {
	SessionID       string
	ToolID          string
	ConversionType  string
	ConversionValue *float64
	Metadata        map[string]interface{}
}

// ConversionResult is the recorded conversion and the commission it earned
type ConversionResult struct {
	ConversionID     uuid.UUID
	CommissionAmount float64
}

// RecordConversion attributes a conversion to the session's most recent click on the tool
func (p *AffiliateProcessor) RecordConversion(ctx context.Context, input ConversionInput) (ConversionResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "tool_id", Value: input.ToolID},
		observability.Field{Key: "session_id", Value: input.SessionID},
		observability.Field{Key: "conversion_type", Value: input.ConversionType},
	)

	if strings.TrimSpace(input.SessionID) == "" || strings.TrimSpace(input.ToolID) == "" || input.ConversionType == "" {
		return ConversionResult{}, ErrMissingRequiredFields
	}
	if !IsValidConversionType(input.ConversionType) {
		return ConversionResult{}, ErrInvalidConversionType
	}
	toolID, err := uuid.Parse(input.ToolID)
	if err != nil {
		return ConversionResult{}, ErrInvalidToolID
	}

	click, err := p.store.GetLatestAffiliateClick(ctx, input.SessionID, toolID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "conversion without originating click")
			return ConversionResult{}, ErrClickNotFound
		}
		p.logger.Error(ctx, "failed to find originating click", err)
		return ConversionResult{}, err
	}

	tool, err := p.store.GetToolByID(ctx, toolID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ConversionResult{}, ErrToolNotFound
		}
		p.logger.Error(ctx, "failed to get tool for conversion", err)
		return ConversionResult{}, err
	}

	commission := tracking.CalculateCommission(input.ConversionValue, tool.AffiliateCommission)

	conversion, err := p.store.CreateAffiliateConversion(ctx, store.CreateAffiliateConversionParams{
		ClickID:          click.ID,
		ToolID:           toolID,
		SessionID:        input.SessionID,
		ConversionType:   input.ConversionType,
		ConversionValue:  input.ConversionValue,
		CommissionAmount: commission,
		Metadata:         store.JSONB(input.Metadata),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record affiliate conversion", err)
		return ConversionResult{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "conversion_id", Value: conversion.ID.String()},
		observability.Field{Key: "click_id", Value: click.ID.String()},
		observability.Field{Key: "commission_amount", Value: commission},
	)
	p.logger.Info(ctx, "affiliate conversion recorded")
	p.publish(ctx, func(ctx context.Context) error {
		return p.publisher.PublishConversionRecorded(ctx, conversion)
	})

	return ConversionResult{
		ConversionID:     conversion.ID,
		CommissionAmount: commission,
	}, nil
}

// publish runs a side-channel publish whose outcome is only logged
func (p *AffiliateProcessor) publish(ctx context.Context, fn func(ctx context.Context) error) {
	if p.publisher == nil {
		return
	}
	if err := fn(ctx); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish affiliate event", err)
	}
}

// IsValidConversionType reports whether t is a known conversion type
func IsValidConversionType(t string) bool {
	switch t {
	case store.ConversionTypeSignup, store.ConversionTypeTrial, store.ConversionTypePurchase, store.ConversionTypeSubscription:
		return true
	}
	return false
}

// Named report periods
const (
	Period7Days  = "7d"
	Period30Days = "30d"
	Period90Days = "90d"
	// PeriodCustom marks a window set by explicit start and end dates
	PeriodCustom = "custom"

	defaultPeriodDays = 30
	dateOnlyLayout    = "2006-01-02"
)

// ReportParams selects the report window. StartDate and EndDate override Period only
// when both are present.
type ReportParams struct {
	Period    string
	StartDate string
	EndDate   string
}

// ToolBreakdown is one row of the per-tool section of the report
type ToolBreakdown struct {
	ToolID      uuid.UUID `json:"toolId"`
	Name        string    `json:"name"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
}

// TrafficSource is one row of the per-source section of the report
type TrafficSource struct {
	Source string `json:"source"`
	Clicks int    `json:"clicks"`
}

// Report summarizes attribution activity over a window
type Report struct {
	Period           string          `json:"period"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          time.Time       `json:"endDate"`
	TotalClicks      int             `json:"totalClicks"`
	TotalConversions int             `json:"totalConversions"`
	ConversionRate   float64         `json:"conversionRate"`
	TotalRevenue     float64         `json:"totalRevenue"`
	TotalCommission  float64         `json:"totalCommission"`
	TopTools         []ToolBreakdown `json:"topTools"`
	TrafficSources   []TrafficSource `json:"trafficSources"`
}

// BuildReport aggregates clicks and conversions inside the requested window
func (p *AffiliateProcessor) BuildReport(ctx context.Context, params ReportParams) (Report, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "period", Value: params.Period})

	period := AppliedPeriod(params)

	start, end, err := ResolveWindow(p.now(), params)
	if err != nil {
		return Report{}, err
	}

	totals, err := p.store.GetAffiliateTotals(ctx, start, end)
	if err != nil {
		p.logger.Error(ctx, "failed to get affiliate totals", err)
		return Report{}, err
	}

	return Report{
		Period:           period,
		StartDate:        start,
		EndDate:          end,
		TotalClicks:      totals.TotalClicks,
		TotalConversions: totals.TotalConversions,
		ConversionRate:   ConversionRate(totals.TotalClicks, totals.TotalConversions),
		TotalRevenue:     totals.TotalRevenue,
		TotalCommission:  totals.TotalCommission,
		TopTools:         []ToolBreakdown{},
		TrafficSources:   []TrafficSource{},
	}, nil
}

// AppliedPeriod names the window ResolveWindow uses for params
func AppliedPeriod(params ReportParams) string {
	if params.StartDate != "" && params.EndDate != "" {
		return PeriodCustom
	}
	switch params.Period {
	case Period7Days, Period90Days:
		return params.Period
	}
	return Period30Days
}

// ResolveWindow maps report params to a [start, end] window relative to now.
// Unknown periods fall back to 30 days. A date-only end date covers that whole day.
func ResolveWindow(now time.Time, params ReportParams) (time.Time, time.Time, error) {
	if params.StartDate != "" && params.EndDate != "" {
		start, _, err := parseReportDate(params.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		end, dateOnly, err := parseReportDate(params.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		if dateOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, ErrInvalidDateRange
		}
		return start, end, nil
	}

	days := defaultPeriodDays
	switch params.Period {
	case Period7Days:
		days = 7
	case Period90Days:
		days = 90
	}
	return now.Add(-time.Duration(days) * 24 * time.Hour), now, nil
}

func parseReportDate(value string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid report date %q: %w", value, err)
	}
	return t, true, nil
}

// ConversionRate is conversions per 100 clicks, 0 when there are no clicks
func ConversionRate(clicks, conversions int) float64 {
	if clicks == 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}
