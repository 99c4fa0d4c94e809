// Package dto contains Data Transfer Objects for API request and response structures
package dto

// InfluencerDTO represents a registered influencer in API responses
type InfluencerDTO struct {
	ID                      uint     `json:"id" example:"42"`
	UUID                    string   `json:"uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name                    string   `json:"name" example:"Kwame Mensah"`
	Platform                string   `json:"platform" example:"youtube"`
	Handle                  string   `json:"handle" example:"@kwamevlogs"`
	ChannelID               *string  `json:"channel_id,omitempty" example:"UCdQw4w9WgXcQ"`
	ProfileImageURL         *string  `json:"profile_image_url,omitempty"`
	Email                   *string  `json:"email,omitempty" example:"kwame@example.com"`
	Phone                   *string  `json:"phone,omitempty" example:"+233501234567"`
	Subscribers             *float64 `json:"subscribers,omitempty" example:"250000"`
	TotalViews              *float64 `json:"total_views,omitempty" example:"12500000"`
	AvgEngagementRate       *float64 `json:"avg_engagement_rate,omitempty" example:"4.7"`
	TotalVideos             *float64 `json:"total_videos,omitempty" example:"310"`
	EstimatedMonthlyRevenue *float64 `json:"estimated_monthly_revenue,omitempty" example:"10000"`
	EstimatedAnnualRevenue  *float64 `json:"estimated_annual_revenue,omitempty" example:"120000"`
	TaxLiability            *float64 `json:"tax_liability,omitempty" example:"30000"`
	TaxIDNumber             *string  `json:"tax_id_number,omitempty" example:"P0012345678"`
	ComplianceScore         *float64 `json:"compliance_score,omitempty" example:"65"`
	ComplianceStatus        string   `json:"compliance_status" example:"pending"`
	RiskLevel               string   `json:"risk_level" example:"Medium"`
	Region                  *string  `json:"region,omitempty" example:"Greater Accra"`
	Notes                   *string  `json:"notes,omitempty"`
	LastAssessedAt          *string  `json:"last_assessed_at,omitempty" example:"2025-06-01T09:00:00Z"`
	LastDataRefresh         *string  `json:"last_data_refresh,omitempty" example:"2025-06-01T09:00:00Z"`
	CreatedAt               string   `json:"created_at" example:"2025-01-15T10:30:00Z"`
	UpdatedAt               string   `json:"updated_at" example:"2025-01-15T10:30:00Z"`
}

// CreateInfluencerRequest represents the payload to register a new influencer
type CreateInfluencerRequest struct {
	Name                    string   `json:"name" validate:"required,min=1,max=255" example:"Kwame Mensah"`
	Platform                string   `json:"platform" validate:"required,oneof=youtube tiktok" example:"youtube"`
	Handle                  string   `json:"handle" validate:"required,min=1,max=255" example:"@kwamevlogs"`
	ChannelID               *string  `json:"channel_id,omitempty" validate:"omitempty,max=255"`
	ProfileImageURL         *string  `json:"profile_image_url,omitempty" validate:"omitempty,url,max=2048"`
	Email                   *string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone                   *string  `json:"phone,omitempty" validate:"omitempty,max=32"`
	Subscribers             *float64 `json:"subscribers,omitempty" validate:"omitempty,gte=0"`
	TotalViews              *float64 `json:"total_views,omitempty" validate:"omitempty,gte=0"`
	AvgEngagementRate       *float64 `json:"avg_engagement_rate,omitempty" validate:"omitempty,gte=0"`
	TotalVideos             *float64 `json:"total_videos,omitempty" validate:"omitempty,gte=0"`
	EstimatedMonthlyRevenue *float64 `json:"estimated_monthly_revenue,omitempty" validate:"omitempty,gte=0"`
	EstimatedAnnualRevenue  *float64 `json:"estimated_annual_revenue,omitempty" validate:"omitempty,gte=0"`
	TaxIDNumber             *string  `json:"tax_id_number,omitempty" validate:"omitempty,max=64"`
	ComplianceScore         *float64 `json:"compliance_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	ComplianceStatus        *string  `json:"compliance_status,omitempty" validate:"omitempty,oneof=compliant non-compliant pending under-review"`
	Region                  *string  `json:"region,omitempty" validate:"omitempty,max=64"`
	Notes                   *string  `json:"notes,omitempty" validate:"omitempty,max=4096"`
}

// UpdateInfluencerRequest represents a partial update; absent fields are left unchanged
type UpdateInfluencerRequest struct {
	Name                    *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	ChannelID               *string  `json:"channel_id,omitempty" validate:"omitempty,max=255"`
	ProfileImageURL         *string  `json:"profile_image_url,omitempty" validate:"omitempty,url,max=2048"`
	Email                   *string  `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone                   *string  `json:"phone,omitempty" validate:"omitempty,max=32"`
	Subscribers             *float64 `json:"subscribers,omitempty" validate:"omitempty,gte=0"`
	TotalViews              *float64 `json:"total_views,omitempty" validate:"omitempty,gte=0"`
	AvgEngagementRate       *float64 `json:"avg_engagement_rate,omitempty" validate:"omitempty,gte=0"`
	TotalVideos             *float64 `json:"total_videos,omitempty" validate:"omitempty,gte=0"`
	EstimatedMonthlyRevenue *float64 `json:"estimated_monthly_revenue,omitempty" validate:"omitempty,gte=0"`
	EstimatedAnnualRevenue  *float64 `json:"estimated_annual_revenue,omitempty" validate:"omitempty,gte=0"`
	TaxIDNumber             *string  `json:"tax_id_number,omitempty" validate:"omitempty,max=64"`
	ComplianceScore         *float64 `json:"compliance_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	ComplianceStatus        *string  `json:"compliance_status,omitempty" validate:"omitempty,oneof=compliant non-compliant pending under-review"`
	Region                  *string  `json:"region,omitempty" validate:"omitempty,max=64"`
	Notes                   *string  `json:"notes,omitempty" validate:"omitempty,max=4096"`
}

// ListInfluencersRequest holds query parameters for listing and filtering influencers
type ListInfluencersRequest struct {
	Platform         *string `query:"platform" validate:"omitempty,oneof=youtube tiktok"`
	ComplianceStatus *string `query:"compliance_status" validate:"omitempty,oneof=compliant non-compliant pending under-review"`
	Region           *string `query:"region" validate:"omitempty,max=64"`
	Page             int     `query:"page" validate:"omitempty,gte=1"`
	PageSize         int     `query:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// ListInfluencersResponse wraps a page of influencers with the total match count
type ListInfluencersResponse struct {
	Influencers []InfluencerDTO `json:"influencers"`
	Total       int64           `json:"total" example:"128"`
	Page        int             `json:"page" example:"1"`
	PageSize    int             `json:"page_size" example:"20"`
}

// SearchInfluencersRequest holds the name search term
type SearchInfluencersRequest struct {
	Term     string `query:"q" validate:"required,min=1,max=255"`
	Page     int    `query:"page" validate:"omitempty,gte=1"`
	PageSize int    `query:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// InfluencerStatsDTO summarizes the registry for the influencers page header
type InfluencerStatsDTO struct {
	TotalInfluencers      int64   `json:"total_influencers" example:"128"`
	TotalEstimatedRevenue float64 `json:"total_estimated_revenue" example:"2400000"`
	TotalTaxLiability     float64 `json:"total_tax_liability" example:"600000"`
	ComplianceRate        int     `json:"compliance_rate" example:"33"`
	PendingReviewCount    int64   `json:"pending_review_count" example:"12"`
	YouTubeCount          int64   `json:"youtube_count" example:"80"`
	TikTokCount           int64   `json:"tiktok_count" example:"48"`
}
