package utils

import (
	"time"
)

// ContextKey types request-scoped context values so they cannot collide
// with keys set by other packages
type ContextKey string

// Request-scoped context keys
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
)

// Token and session time constants
const (
	// AccessTokenTTL is the time-to-live for access tokens (24 hours)
	AccessTokenTTL = 24 * time.Hour

	// RefreshTokenTTL is the time-to-live for refresh tokens (7 days)
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)

// Tax policy constants
const (
	CediCurrency = "GHS"

	// FlatTaxRate is the flat rate applied when deriving tax liability
	// from estimated annual revenue (25%)
	FlatTaxRate = 0.25

	// DefaultComplianceScore substitutes for an influencer with no
	// recorded compliance score when classifying audit risk
	DefaultComplianceScore = 50

	// Risk band edges for compliance scores: below RiskHighThreshold is
	// High, below RiskMediumThreshold is Medium, otherwise Low
	RiskHighThreshold   = 40
	RiskMediumThreshold = 70

	// TopInfluencersLimit caps the revenue ranking returned to the dashboard
	TopInfluencersLimit = 10

	// UnknownRegion buckets influencers without a recorded region
	UnknownRegion = "Unknown"
)

// Cache keys
const (
	// AnalyticsOverviewCacheKey stores the assembled dashboard overview
	AnalyticsOverviewCacheKey = "analytics:overview"
)

// Audit log defaults
const (
	// DefaultAuditLogLimit applies when a recency query gives no limit
	DefaultAuditLogLimit = 20
)
