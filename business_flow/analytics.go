// Package businessflow contains the core business logic and use cases for registry workflows
package businessflow

import (
	"math"
	"sort"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
)

// RiskLevel buckets a compliance score for audit prioritization
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "High"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelLow    RiskLevel = "Low"
)

// Display colors for the platform distribution chart
const (
	youtubeColor = "#FF0000"
	tiktokColor  = "#00F2EA"
)

// ComputeDashboardMetrics produces the headline dashboard summary from a
// snapshot of the registry. Missing revenue and liability values count as
// zero; the compliance rate is a rounded percentage and defined as 0 for an
// empty registry.
func ComputeDashboardMetrics(influencers []*models.Influencer, assessments []*models.TaxAssessment) dto.DashboardMetricsDTO {
	var totalRevenue, totalTax float64
	compliant := 0
	for _, inf := range influencers {
		totalRevenue += inf.AnnualRevenueOrZero()
		totalTax += inf.TaxLiabilityOrZero()
		if inf.EffectiveComplianceStatus() == models.ComplianceStatusCompliant {
			compliant++
		}
	}

	rate := 0
	if len(influencers) > 0 {
		rate = int(math.Round(float64(compliant) / float64(len(influencers)) * 100))
	}

	var pending, approved, disputed int
	for _, a := range assessments {
		switch a.Status {
		case models.AssessmentStatusPending:
			pending++
		case models.AssessmentStatusApproved:
			approved++
		case models.AssessmentStatusDisputed:
			disputed++
		}
	}

	return dto.DashboardMetricsDTO{
		TotalInfluencers:      len(influencers),
		TotalEstimatedRevenue: totalRevenue,
		TotalTaxLiability:     totalTax,
		ComplianceRate:        rate,
		PendingAssessments:    pending,
		ApprovedAssessments:   approved,
		DisputedAssessments:   disputed,
	}
}

// ComputePlatformDistribution counts influencers per platform. The output is
// always exactly two entries, YouTube then TikTok, even when a bucket is empty.
func ComputePlatformDistribution(influencers []*models.Influencer) []dto.PlatformSliceDTO {
	var youtube, tiktok int
	for _, inf := range influencers {
		switch inf.Platform {
		case models.PlatformYouTube:
			youtube++
		case models.PlatformTikTok:
			tiktok++
		}
	}

	return []dto.PlatformSliceDTO{
		{Platform: "YouTube", Count: youtube, Color: youtubeColor},
		{Platform: "TikTok", Count: tiktok, Color: tiktokColor},
	}
}

// ComputeRegionalDistribution counts influencers per region, bucketing a
// missing region as "Unknown", sorted descending by count. Tie-break order
// among equal counts is not part of the contract.
func ComputeRegionalDistribution(influencers []*models.Influencer) []dto.RegionCountDTO {
	counts := make(map[string]int)
	for _, inf := range influencers {
		counts[inf.RegionOrUnknown()]++
	}

	regions := make([]dto.RegionCountDTO, 0, len(counts))
	for region, count := range counts {
		regions = append(regions, dto.RegionCountDTO{Region: region, Count: count})
	}

	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Count != regions[j].Count {
			return regions[i].Count > regions[j].Count
		}
		return regions[i].Region < regions[j].Region
	})

	return regions
}

// ComputeComplianceBreakdown counts influencers per compliance status. Every
// enumerated status appears in the output, zero-filled, in enumeration order.
// An influencer with no stored status counts as pending.
func ComputeComplianceBreakdown(influencers []*models.Influencer) []dto.ComplianceSliceDTO {
	counts := make(map[models.ComplianceStatus]int, len(models.AllComplianceStatuses))
	for _, inf := range influencers {
		status := inf.EffectiveComplianceStatus()
		if status.Valid() {
			counts[status]++
		}
	}

	breakdown := make([]dto.ComplianceSliceDTO, 0, len(models.AllComplianceStatuses))
	for _, status := range models.AllComplianceStatuses {
		breakdown = append(breakdown, dto.ComplianceSliceDTO{
			Status: status.String(),
			Count:  counts[status],
		})
	}

	return breakdown
}

// ComputeTopInfluencers returns the highest-earning influencers sorted
// descending by estimated annual revenue, missing revenue treated as zero,
// truncated to the configured limit. The input slice is not mutated.
func ComputeTopInfluencers(influencers []*models.Influencer) []*models.Influencer {
	ranked := make([]*models.Influencer, len(influencers))
	copy(ranked, influencers)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AnnualRevenueOrZero() > ranked[j].AnnualRevenueOrZero()
	})

	if len(ranked) > utils.TopInfluencersLimit {
		ranked = ranked[:utils.TopInfluencersLimit]
	}

	return ranked
}

// ComputeInfluencerStats summarizes the registry for the influencers page.
func ComputeInfluencerStats(influencers []*models.Influencer) dto.InfluencerStatsDTO {
	var totalRevenue, totalTax float64
	var compliant, pendingOrReview, youtube, tiktok int64
	for _, inf := range influencers {
		totalRevenue += inf.AnnualRevenueOrZero()
		totalTax += inf.TaxLiabilityOrZero()

		switch inf.EffectiveComplianceStatus() {
		case models.ComplianceStatusCompliant:
			compliant++
		case models.ComplianceStatusPending, models.ComplianceStatusUnderReview:
			pendingOrReview++
		}

		switch inf.Platform {
		case models.PlatformYouTube:
			youtube++
		case models.PlatformTikTok:
			tiktok++
		}
	}

	rate := 0
	if len(influencers) > 0 {
		rate = int(math.Round(float64(compliant) / float64(len(influencers)) * 100))
	}

	return dto.InfluencerStatsDTO{
		TotalInfluencers:      int64(len(influencers)),
		TotalEstimatedRevenue: totalRevenue,
		TotalTaxLiability:     totalTax,
		ComplianceRate:        rate,
		PendingReviewCount:    pendingOrReview,
		YouTubeCount:          youtube,
		TikTokCount:           tiktok,
	}
}

// ComputeMonthlyRevenueSeries returns an empty series. Historical revenue is
// not modeled, and the series is never synthesized from a single snapshot.
func ComputeMonthlyRevenueSeries(influencers []*models.Influencer) []dto.MonthlyRevenuePointDTO {
	return []dto.MonthlyRevenuePointDTO{}
}

// ClassifyComplianceRisk buckets a compliance score into an audit-priority
// band. A missing score defaults to 50. Scores below 40 are High risk, below
// 70 Medium, and 70 or above Low.
func ClassifyComplianceRisk(score *float64) RiskLevel {
	s := float64(utils.DefaultComplianceScore)
	if score != nil {
		s = *score
	}
	switch {
	case s < utils.RiskHighThreshold:
		return RiskLevelHigh
	case s < utils.RiskMediumThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// EstimateTaxLiability derives the flat-rate tax owed on an estimated annual
// revenue, rounded to the nearest cedi. A missing revenue yields no liability.
func EstimateTaxLiability(annualRevenue *float64) *float64 {
	if annualRevenue == nil {
		return nil
	}
	return utils.ToPtr(math.Round(*annualRevenue * utils.FlatTaxRate))
}
