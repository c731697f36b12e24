package tracking

import (
	"math"
	"net/url"
)

// Commission types. Only the percentage model is applied by CalculateCommission;
// fixed commissions are not configured on any tool.
const (
	CommissionTypePercentage = "percentage"
	CommissionTypeFixed      = "fixed"
)

// AffiliateRef identifies this directory as the referring partner
const AffiliateRef = "aitoolshub"

// CalculateCommission applies a percentage rate to a conversion value. A missing value
// counts as 0 and a missing rate yields 0. The result is rounded to cents, the precision
// commission_amount is stored at.
func CalculateCommission(conversionValue, ratePercent *float64) float64 {
	if ratePercent == nil {
		return 0
	}
	value := 0.0
	if conversionValue != nil {
		value = *conversionValue
	}
	return math.Round(value*(*ratePercent)) / 100
}

// BuildAffiliateURL decorates a destination with partner, tool, session and UTM parameters.
// Destinations that fail to parse are returned unchanged.
func BuildAffiliateURL(destination, toolID, sessionID string, utm UTMParams) string {
	u, err := url.Parse(destination)
	if err != nil || u.Host == "" {
		return destination
	}
	q := u.Query()
	q.Set("ref", AffiliateRef)
	q.Set("tool_id", toolID)
	if sessionID != "" {
		q.Set("session_id", sessionID)
	}
	for key, vals := range utm.Values() {
		q[key] = vals
	}
	u.RawQuery = q.Encode()
	return u.String()
}
