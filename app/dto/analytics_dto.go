// Package dto contains Data Transfer Objects for API request and response structures
package dto

// DashboardMetricsDTO is the headline summary rendered on the dashboard
type DashboardMetricsDTO struct {
	TotalInfluencers      int     `json:"total_influencers" example:"128"`
	TotalEstimatedRevenue float64 `json:"total_estimated_revenue" example:"2400000"`
	TotalTaxLiability     float64 `json:"total_tax_liability" example:"600000"`
	ComplianceRate        int     `json:"compliance_rate" example:"33"`
	PendingAssessments    int     `json:"pending_assessments" example:"9"`
	ApprovedAssessments   int     `json:"approved_assessments" example:"17"`
	DisputedAssessments   int     `json:"disputed_assessments" example:"3"`
}

// PlatformSliceDTO is one platform bucket of the platform distribution chart
type PlatformSliceDTO struct {
	Platform string `json:"platform" example:"YouTube"`
	Count    int    `json:"count" example:"80"`
	Color    string `json:"color" example:"#FF0000"`
}

// RegionCountDTO is one bucket of the regional distribution
type RegionCountDTO struct {
	Region string `json:"region" example:"Greater Accra"`
	Count  int    `json:"count" example:"34"`
}

// ComplianceSliceDTO is one zero-filled bucket of the compliance breakdown
type ComplianceSliceDTO struct {
	Status string `json:"status" example:"compliant"`
	Count  int    `json:"count" example:"12"`
}

// MonthlyRevenuePointDTO is one point of the monthly revenue series
type MonthlyRevenuePointDTO struct {
	Month   string  `json:"month" example:"2025-06"`
	Revenue float64 `json:"revenue" example:"200000"`
}

// AnalyticsOverviewResponse bundles every dashboard aggregate in one payload
type AnalyticsOverviewResponse struct {
	Metrics              DashboardMetricsDTO      `json:"metrics"`
	PlatformDistribution []PlatformSliceDTO       `json:"platform_distribution"`
	RegionalDistribution []RegionCountDTO         `json:"regional_distribution"`
	ComplianceBreakdown  []ComplianceSliceDTO     `json:"compliance_breakdown"`
	TopInfluencers       []InfluencerDTO          `json:"top_influencers"`
	MonthlyRevenue       []MonthlyRevenuePointDTO `json:"monthly_revenue"`
}

// RiskClassificationDTO reports the audit-priority band for one influencer
type RiskClassificationDTO struct {
	InfluencerID    uint    `json:"influencer_id" example:"42"`
	ComplianceScore float64 `json:"compliance_score" example:"50"`
	RiskLevel       string  `json:"risk_level" example:"Medium"`
}
