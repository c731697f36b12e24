package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// StringList is an ordered list of strings stored as a JSONB array
type StringList []string

// Value implements the driver.Valuer interface for StringList
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for StringList
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for StringList")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*l = StringList{}
		return nil
	}

	var result []string
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	if result == nil {
		result = []string{}
	}
	*l = result
	return nil
}

// Pricing models
const (
	PricingModelFree       = "free"
	PricingModelFreemium   = "freemium"
	PricingModelPaid       = "paid"
	PricingModelEnterprise = "enterprise"
)

// Billing periods
const (
	PricingPeriodOneTime = "one-time"
	PricingPeriodMonthly = "monthly"
	PricingPeriodYearly  = "yearly"
)

// Conversion types
const (
	ConversionTypeSignup       = "signup"
	ConversionTypeTrial        = "trial"
	ConversionTypePurchase     = "purchase"
	ConversionTypeSubscription = "subscription"
)

// EntityRef is the joined summary of a related category or vendor
type EntityRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type Category struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Slug        string    `db:"slug" json:"slug"`
	Description *string   `db:"description" json:"description,omitempty"`
	Icon        *string   `db:"icon" json:"icon,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CategoryWithCount is a category with the number of tools filed under it
type CategoryWithCount struct {
	Category
	ToolCount int `db:"tool_count" json:"tool_count"`
}

type Vendor struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Slug         string    `db:"slug" json:"slug"`
	Description  *string   `db:"description" json:"description,omitempty"`
	WebsiteURL   *string   `db:"website_url" json:"website_url,omitempty"`
	LogoURL      *string   `db:"logo_url" json:"logo_url,omitempty"`
	FoundedYear  *int      `db:"founded_year" json:"founded_year,omitempty"`
	Headquarters *string   `db:"headquarters" json:"headquarters,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type Tool struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	Name                string     `db:"name" json:"name"`
	Slug                string     `db:"slug" json:"slug"`
	Description         string     `db:"description" json:"description"`
	ShortDescription    string     `db:"short_description" json:"short_description"`
	LogoURL             *string    `db:"logo_url" json:"logo_url,omitempty"`
	WebsiteURL          *string    `db:"website_url" json:"website_url,omitempty"`
	CategoryID          *uuid.UUID `db:"category_id" json:"category_id,omitempty"`
	VendorID            *uuid.UUID `db:"vendor_id" json:"vendor_id,omitempty"`
	PricingModel        string     `db:"pricing_model" json:"pricing_model"`
	StartingPrice       *float64   `db:"starting_price" json:"starting_price,omitempty"`
	PricingCurrency     string     `db:"pricing_currency" json:"pricing_currency"`
	PricingPeriod       *string    `db:"pricing_period" json:"pricing_period,omitempty"`
	Features            StringList `db:"features" json:"features"`
	UseCases            StringList `db:"use_cases" json:"use_cases"`
	Integrations        StringList `db:"integrations" json:"integrations"`
	SupportedPlatforms  StringList `db:"supported_platforms" json:"supported_platforms"`
	APIAvailable        bool       `db:"api_available" json:"api_available"`
	FreeTrial           bool       `db:"free_trial" json:"free_trial"`
	TrialDays           *int       `db:"trial_days" json:"trial_days,omitempty"`
	Rating              *float64   `db:"rating" json:"rating,omitempty"`
	ReviewCount         int        `db:"review_count" json:"review_count"`
	IsFeatured          bool       `db:"is_featured" json:"is_featured"`
	IsPublished         bool       `db:"is_published" json:"is_published"`
	AffiliateURL        *string    `db:"affiliate_url" json:"affiliate_url,omitempty"`
	AffiliateCommission *float64   `db:"affiliate_commission" json:"affiliate_commission,omitempty"`
	MetaTitle           *string    `db:"meta_title" json:"meta_title,omitempty"`
	MetaDescription     *string    `db:"meta_description" json:"meta_description,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`

	// Joined columns, folded into Category and Vendor after scanning
	CategoryName *string `db:"category_name" json:"-"`
	CategorySlug *string `db:"category_slug" json:"-"`
	VendorName   *string `db:"vendor_name" json:"-"`
	VendorSlug   *string `db:"vendor_slug" json:"-"`

	Category     *EntityRef    `db:"-" json:"category,omitempty"`
	Vendor       *EntityRef    `db:"-" json:"vendor,omitempty"`
	PricingPlans []PricingPlan `db:"-" json:"pricing_plans,omitempty"`
}

// attachRelations builds the nested category and vendor from joined columns
func (t *Tool) attachRelations() {
	if t.CategoryID != nil && t.CategoryName != nil {
		t.Category = &EntityRef{ID: *t.CategoryID, Name: *t.CategoryName, Slug: deref(t.CategorySlug)}
	}
	if t.VendorID != nil && t.VendorName != nil {
		t.Vendor = &EntityRef{ID: *t.VendorID, Name: *t.VendorName, Slug: deref(t.VendorSlug)}
	}
}

// TargetURL is where a visitor lands after clicking through: the affiliate link when configured
func (t Tool) TargetURL() string {
	if t.AffiliateURL != nil && *t.AffiliateURL != "" {
		return *t.AffiliateURL
	}
	return deref(t.WebsiteURL)
}

type PricingPlan struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	ToolID        uuid.UUID  `db:"tool_id" json:"tool_id"`
	Name          string     `db:"name" json:"name"`
	Price         *float64   `db:"price" json:"price,omitempty"`
	Currency      string     `db:"currency" json:"currency"`
	BillingPeriod string     `db:"billing_period" json:"billing_period"`
	Features      StringList `db:"features" json:"features"`
	Limits        JSONB      `db:"limits" json:"limits"`
	IsPopular     bool       `db:"is_popular" json:"is_popular"`
	OrderIndex    int        `db:"order_index" json:"order_index"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

type Review struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ToolID       uuid.UUID  `db:"tool_id" json:"tool_id"`
	UserName     *string    `db:"user_name" json:"user_name,omitempty"`
	UserEmail    *string    `db:"user_email" json:"user_email,omitempty"`
	Rating       int        `db:"rating" json:"rating"`
	Title        *string    `db:"title" json:"title,omitempty"`
	Content      *string    `db:"content" json:"content,omitempty"`
	Pros         StringList `db:"pros" json:"pros"`
	Cons         StringList `db:"cons" json:"cons"`
	IsVerified   bool       `db:"is_verified" json:"is_verified"`
	IsPublished  bool       `db:"is_published" json:"is_published"`
	HelpfulCount int        `db:"helpful_count" json:"helpful_count"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`

	ToolName *string `db:"tool_name" json:"tool_name,omitempty"`
}

type AffiliateClick struct {
	ID          uuid.UUID `db:"id" json:"id"`
	ToolID      uuid.UUID `db:"tool_id" json:"tool_id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	UserIP      *string   `db:"user_ip" json:"user_ip,omitempty"`
	UserAgent   *string   `db:"user_agent" json:"user_agent,omitempty"`
	Referrer    *string   `db:"referrer" json:"referrer,omitempty"`
	UTMSource   *string   `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium   *string   `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign *string   `db:"utm_campaign" json:"utm_campaign,omitempty"`
	UTMTerm     *string   `db:"utm_term" json:"utm_term,omitempty"`
	UTMContent  *string   `db:"utm_content" json:"utm_content,omitempty"`
	Country     *string   `db:"country" json:"country,omitempty"`
	Device      *string   `db:"device" json:"device,omitempty"`
	Browser     *string   `db:"browser" json:"browser,omitempty"`
	OS          *string   `db:"os" json:"os,omitempty"`
	ClickedAt   time.Time `db:"clicked_at" json:"clicked_at"`
}

type AffiliateConversion struct {
	ID               uuid.UUID `db:"id" json:"id"`
	ClickID          uuid.UUID `db:"click_id" json:"click_id"`
	ToolID           uuid.UUID `db:"tool_id" json:"tool_id"`
	SessionID        string    `db:"session_id" json:"session_id"`
	ConversionType   string    `db:"conversion_type" json:"conversion_type"`
	ConversionValue  *float64  `db:"conversion_value" json:"conversion_value,omitempty"`
	CommissionAmount float64   `db:"commission_amount" json:"commission_amount"`
	Metadata         JSONB     `db:"metadata" json:"metadata"`
	ConvertedAt      time.Time `db:"converted_at" json:"converted_at"`
}

// AffiliateTotals are the window aggregates behind the affiliate report
type AffiliateTotals struct {
	TotalClicks      int     `db:"total_clicks"`
	TotalConversions int     `db:"total_conversions"`
	TotalRevenue     float64 `db:"total_revenue"`
	TotalCommission  float64 `db:"total_commission"`
}

type AdminProfile struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FullName  *string   `db:"full_name" json:"full_name,omitempty"`
	Role      string    `db:"role" json:"role"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// DashboardStats are the headline counts for the admin dashboard
type DashboardStats struct {
	Tools      int `db:"tools" json:"tools"`
	Categories int `db:"categories" json:"categories"`
	Reviews    int `db:"reviews" json:"reviews"`
	Clicks     int `db:"clicks" json:"clicks"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
