package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateAffiliateClickParams is one enriched outbound link activation
type CreateAffiliateClickParams struct {
	ToolID      uuid.UUID
	SessionID   string
	UserIP      *string
	UserAgent   *string
	Referrer    *string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	UTMTerm     *string
	UTMContent  *string
	Country     *string
	Device      *string
	Browser     *string
	OS          *string
}

const affiliateClickColumns = `id, tool_id, session_id, user_ip, user_agent, referrer, utm_source, utm_medium,
utm_campaign, utm_term, utm_content, country, device, browser, os, clicked_at`

const sqlCreateAffiliateClick = `
INSERT INTO affiliate_clicks (tool_id, session_id, user_ip, user_agent, referrer, utm_source, utm_medium,
	utm_campaign, utm_term, utm_content, country, device, browser, os)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + affiliateClickColumns

// CreateAffiliateClick appends a click to the attribution log
func (s *Store) CreateAffiliateClick(ctx context.Context, params CreateAffiliateClickParams) (AffiliateClick, error) {
	var click AffiliateClick
	err := s.db.GetContext(ctx, &click, sqlCreateAffiliateClick,
		params.ToolID,
		params.SessionID,
		params.UserIP,
		params.UserAgent,
		params.Referrer,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign,
		params.UTMTerm,
		params.UTMContent,
		params.Country,
		params.Device,
		params.Browser,
		params.OS)
	if err != nil {
		return AffiliateClick{}, fmt.Errorf("failed to create affiliate click: %w", err)
	}
	return click, nil
}

const sqlGetLatestAffiliateClick = `
SELECT ` + affiliateClickColumns + `
FROM affiliate_clicks
WHERE session_id = $1 AND tool_id = $2 AND clicked_at <= NOW()
ORDER BY clicked_at DESC
LIMIT 1
`

// GetLatestAffiliateClick finds the most recent click of a session on a tool.
// Both clicked_at and the cutoff come from the database clock.
func (s *Store) GetLatestAffiliateClick(ctx context.Context, sessionID string, toolID uuid.UUID) (AffiliateClick, error) {
	var click AffiliateClick
	if err := s.db.GetContext(ctx, &click, sqlGetLatestAffiliateClick, sessionID, toolID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AffiliateClick{}, ErrNotFound
		}
		return AffiliateClick{}, fmt.Errorf("failed to get latest affiliate click: %w", err)
	}
	return click, nil
}

// CreateAffiliateConversionParams is a conversion attributed to a click
type CreateAffiliateConversionParams struct {
	ClickID          uuid.UUID
	ToolID           uuid.UUID
	SessionID        string
	ConversionType   string
	ConversionValue  *float64
	CommissionAmount float64
	Metadata         JSONB
}

const sqlCreateAffiliateConversion = `
INSERT INTO affiliate_conversions (click_id, tool_id, session_id, conversion_type, conversion_value,
	commission_amount, metadata)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, click_id, tool_id, session_id, conversion_type, conversion_value, commission_amount, metadata, converted_at
`

// CreateAffiliateConversion appends a conversion to the attribution log
func (s *Store) CreateAffiliateConversion(ctx context.Context, params CreateAffiliateConversionParams) (AffiliateConversion, error) {
	metadata := params.Metadata
	if metadata == nil {
		metadata = JSONB{}
	}

	var conversion AffiliateConversion
	err := s.db.GetContext(ctx, &conversion, sqlCreateAffiliateConversion,
		params.ClickID,
		params.ToolID,
		params.SessionID,
		params.ConversionType,
		params.ConversionValue,
		params.CommissionAmount,
		metadata)
	if err != nil {
		return AffiliateConversion{}, fmt.Errorf("failed to create affiliate conversion: %w", err)
	}
	return conversion, nil
}

const sqlGetAffiliateTotals = `
SELECT
	(SELECT COUNT(*) FROM affiliate_clicks WHERE clicked_at >= $1 AND clicked_at <= $2) AS total_clicks,
	COUNT(*) AS total_conversions,
	COALESCE(SUM(conversion_value), 0) AS total_revenue,
	COALESCE(SUM(commission_amount), 0) AS total_commission
FROM affiliate_conversions
WHERE converted_at >= $1 AND converted_at <= $2
`

// GetAffiliateTotals aggregates clicks and conversions inside [start, end]
func (s *Store) GetAffiliateTotals(ctx context.Context, start, end time.Time) (AffiliateTotals, error) {
	var totals AffiliateTotals
	if err := s.db.GetContext(ctx, &totals, sqlGetAffiliateTotals, start, end); err != nil {
		return AffiliateTotals{}, fmt.Errorf("failed to get affiliate totals: %w", err)
	}
	return totals, nil
}
