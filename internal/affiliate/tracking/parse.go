package tracking

import (
	"net/http"
	"net/url"
	"strings"
)

const unknown = "unknown"

// UTMParams holds the marketing tags of a referrer. Absent tags stay nil.
type UTMParams struct {
	Source   *string
	Medium   *string
	Campaign *string
	Term     *string
	Content  *string
}

// ParseUTM extracts utm_* query parameters from a referrer URL
func ParseUTM(referrer string) UTMParams {
	var params UTMParams
	if referrer == "" {
		return params
	}
	u, err := url.Parse(referrer)
	if err != nil {
		return params
	}
	q := u.Query()
	get := func(key string) *string {
		v := q.Get(key)
		if v == "" {
			return nil
		}
		return &v
	}
	params.Source = get("utm_source")
	params.Medium = get("utm_medium")
	params.Campaign = get("utm_campaign")
	params.Term = get("utm_term")
	params.Content = get("utm_content")
	return params
}

// Values returns the present tags as query values
func (p UTMParams) Values() url.Values {
	v := url.Values{}
	set := func(key string, val *string) {
		if val != nil {
			v.Set(key, *val)
		}
	}
	set("utm_source", p.Source)
	set("utm_medium", p.Medium)
	set("utm_campaign", p.Campaign)
	set("utm_term", p.Term)
	set("utm_content", p.Content)
	return v
}

// ClientInfo is the coarse visitor context derived from the user agent
type ClientInfo struct {
	Device  string
	Browser string
	OS      string
	Country string
}

type uaRule struct {
	needle string
	label  string
}

// First matching rule wins; the order is part of the classification contract.
var (
	mobileNeedles = []string{"Mobile", "Android", "iPhone", "iPad"}
	browserRules  = []uaRule{
		{"Chrome", "chrome"},
		{"Firefox", "firefox"},
		{"Safari", "safari"},
		{"Edge", "edge"},
	}
	osRules = []uaRule{
		{"Windows", "windows"},
		{"Mac", "macos"},
		{"Linux", "linux"},
		{"Android", "android"},
		{"iOS", "ios"},
	}
)

// ParseUserAgent classifies device, browser and OS by substring match.
// Country is not resolved and is always "unknown".
func ParseUserAgent(ua string) ClientInfo {
	info := ClientInfo{
		Device:  "desktop",
		Browser: matchRule(ua, browserRules),
		OS:      matchRule(ua, osRules),
		Country: unknown,
	}
	for _, needle := range mobileNeedles {
		if strings.Contains(ua, needle) {
			info.Device = "mobile"
			break
		}
	}
	return info
}

func matchRule(ua string, rules []uaRule) string {
	for _, r := range rules {
		if strings.Contains(ua, r.needle) {
			return r.label
		}
	}
	return unknown
}

// UserAgent returns the request user agent, or "unknown"
func UserAgent(h http.Header) string {
	if v := h.Get("User-Agent"); v != "" {
		return v
	}
	return unknown
}
