// Package models contains domain entities and business models for the influencer tax registry
package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Platform represents the content platform an influencer publishes on
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformTikTok  Platform = "tiktok"
)

// String returns the string representation of the platform
func (p Platform) String() string {
	return string(p)
}

// Valid checks if the platform is valid
func (p Platform) Valid() bool {
	switch p {
	case PlatformYouTube, PlatformTikTok:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for Platform
func (p *Platform) Scan(value any) error {
	if value == nil {
		*p = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*p = Platform(v)
	case []byte:
		*p = Platform(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Platform", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for Platform
func (p Platform) Value() (driver.Value, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid Platform: %s", p)
	}
	return string(p), nil
}

// ComplianceStatus represents an influencer's tax-filing standing
type ComplianceStatus string

const (
	ComplianceStatusCompliant    ComplianceStatus = "compliant"
	ComplianceStatusNonCompliant ComplianceStatus = "non-compliant"
	ComplianceStatusPending      ComplianceStatus = "pending"
	ComplianceStatusUnderReview  ComplianceStatus = "under-review"
)

// AllComplianceStatuses lists the statuses in enumeration order. Aggregates
// that zero-fill every bucket iterate this slice so the output order is fixed.
var AllComplianceStatuses = []ComplianceStatus{
	ComplianceStatusCompliant,
	ComplianceStatusNonCompliant,
	ComplianceStatusPending,
	ComplianceStatusUnderReview,
}

// String returns the string representation of the status
func (s ComplianceStatus) String() string {
	return string(s)
}

// Valid checks if the status is valid
func (s ComplianceStatus) Valid() bool {
	switch s {
	case ComplianceStatusCompliant, ComplianceStatusNonCompliant,
		ComplianceStatusPending, ComplianceStatusUnderReview:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ComplianceStatus
func (s *ComplianceStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}

	switch v := value.(type) {
	case string:
		*s = ComplianceStatus(v)
	case []byte:
		*s = ComplianceStatus(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ComplianceStatus", value)
	}

	return nil
}

// Value implements the driver.Valuer interface for ComplianceStatus
func (s ComplianceStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid ComplianceStatus: %s", s)
	}
	return string(s), nil
}

// Regions enumerates the sixteen Ghanaian administrative regions an
// influencer can be registered under.
var Regions = []string{
	"Greater Accra",
	"Ashanti",
	"Western",
	"Eastern",
	"Central",
	"Northern",
	"Volta",
	"Upper East",
	"Upper West",
	"Bono",
	"Bono East",
	"Ahafo",
	"Western North",
	"Oti",
	"North East",
	"Savannah",
}

// IsKnownRegion reports whether the given region is one of the enumerated
// administrative regions.
func IsKnownRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}

// Influencer represents a creator tracked for tax purposes
type Influencer struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_influencers_uuid;index:idx_influencers_uuid" json:"uuid"`

	// Basic info
	Name            string   `gorm:"size:255;not null;index:idx_influencers_name" json:"name"`
	Platform        Platform `gorm:"type:platform_enum;not null;index:idx_influencers_platform;uniqueIndex:uk_influencers_platform_handle" json:"platform"`
	Handle          string   `gorm:"size:255;not null;uniqueIndex:uk_influencers_platform_handle" json:"handle"`
	ChannelID       *string  `gorm:"size:255" json:"channel_id,omitempty"`
	ProfileImageURL *string  `gorm:"type:text" json:"profile_image_url,omitempty"`
	Email           *string  `gorm:"size:255" json:"email,omitempty"`
	Phone           *string  `gorm:"size:20" json:"phone,omitempty"`

	// Channel metrics
	Subscribers       *float64 `json:"subscribers,omitempty"`
	TotalViews        *float64 `json:"total_views,omitempty"`
	AvgEngagementRate *float64 `json:"avg_engagement_rate,omitempty"`
	TotalVideos       *float64 `json:"total_videos,omitempty"`

	// Revenue & tax
	EstimatedMonthlyRevenue *float64 `json:"estimated_monthly_revenue,omitempty"`
	EstimatedAnnualRevenue  *float64 `json:"estimated_annual_revenue,omitempty"`
	TaxLiability            *float64 `json:"tax_liability,omitempty"`
	TaxIDNumber             *string  `gorm:"size:50" json:"tax_id_number,omitempty"`

	// Compliance
	ComplianceScore  *float64          `json:"compliance_score,omitempty"`
	ComplianceStatus *ComplianceStatus `gorm:"type:compliance_status_enum;index:idx_influencers_compliance_status" json:"compliance_status,omitempty"`

	// Location
	Region *string `gorm:"size:60;index:idx_influencers_region" json:"region,omitempty"`

	// Metadata
	Notes           *string    `gorm:"type:text" json:"notes,omitempty"`
	LastAssessedAt  *time.Time `json:"last_assessed_at,omitempty"`
	LastDataRefresh *time.Time `json:"last_data_refresh,omitempty"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_influencers_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updated_at"`

	// Relations
	Assessments []TaxAssessment `gorm:"foreignKey:InfluencerID" json:"-"`
}

func (Influencer) TableName() string {
	return "influencers"
}

// InfluencerFilter represents filter criteria for influencer queries
type InfluencerFilter struct {
	ID               *uint
	UUID             *uuid.UUID
	Platform         *Platform
	Handle           *string
	ComplianceStatus *ComplianceStatus
	Region           *string
	CreatedAfter     *time.Time
	CreatedBefore    *time.Time
}

// EffectiveComplianceStatus returns the stored status, or pending when absent.
// Every reader applies this default; the stored field stays nullable.
func (i *Influencer) EffectiveComplianceStatus() ComplianceStatus {
	if i.ComplianceStatus == nil {
		return ComplianceStatusPending
	}
	return *i.ComplianceStatus
}

// AnnualRevenueOrZero treats a missing estimated annual revenue as zero.
func (i *Influencer) AnnualRevenueOrZero() float64 {
	if i.EstimatedAnnualRevenue == nil {
		return 0
	}
	return *i.EstimatedAnnualRevenue
}

// TaxLiabilityOrZero treats a missing tax liability as zero.
func (i *Influencer) TaxLiabilityOrZero() float64 {
	if i.TaxLiability == nil {
		return 0
	}
	return *i.TaxLiability
}

// RegionOrUnknown buckets a missing region as "Unknown" for regional aggregates.
func (i *Influencer) RegionOrUnknown() string {
	if i.Region == nil || *i.Region == "" {
		return "Unknown"
	}
	return *i.Region
}
