// Package tests contains test cases for models and business flow packages to avoid circular imports
package tests

import (
	"testing"

	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeInfluencer(name string, platform models.Platform, status *models.ComplianceStatus, annualRevenue *float64, region *string) *models.Influencer {
	inf := &models.Influencer{
		Name:             name,
		Platform:         platform,
		Handle:           "@" + name,
		ComplianceStatus: status,
		Region:           region,
	}
	if annualRevenue != nil {
		inf.EstimatedAnnualRevenue = annualRevenue
		inf.TaxLiability = utils.ToPtr(*annualRevenue * utils.FlatTaxRate)
	}
	return inf
}

func registrySnapshot() []*models.Influencer {
	return []*models.Influencer{
		makeInfluencer("ama", models.PlatformYouTube,
			utils.ToPtr(models.ComplianceStatusCompliant),
			utils.ToPtr(120000.0),
			utils.ToPtr("Greater Accra")),
		makeInfluencer("kofi", models.PlatformTikTok,
			utils.ToPtr(models.ComplianceStatusPending),
			utils.ToPtr(80000.0),
			utils.ToPtr("Ashanti")),
		makeInfluencer("esi", models.PlatformYouTube,
			utils.ToPtr(models.ComplianceStatusNonCompliant),
			nil,
			nil),
	}
}

func TestComputeDashboardMetrics(t *testing.T) {
	t.Run("MixedRegistry", func(t *testing.T) {
		metrics := businessflow.ComputeDashboardMetrics(registrySnapshot(), nil)

		assert.Equal(t, 3, metrics.TotalInfluencers)
		assert.Equal(t, 200000.0, metrics.TotalEstimatedRevenue)
		assert.Equal(t, 50000.0, metrics.TotalTaxLiability)
		assert.Equal(t, 33, metrics.ComplianceRate)
	})

	t.Run("EmptyRegistry", func(t *testing.T) {
		metrics := businessflow.ComputeDashboardMetrics(nil, nil)

		assert.Equal(t, 0, metrics.TotalInfluencers)
		assert.Equal(t, 0.0, metrics.TotalEstimatedRevenue)
		assert.Equal(t, 0, metrics.ComplianceRate)
	})

	t.Run("AssessmentStatusCounts", func(t *testing.T) {
		assessments := []*models.TaxAssessment{
			{Status: models.AssessmentStatusPending},
			{Status: models.AssessmentStatusPending},
			{Status: models.AssessmentStatusApproved},
			{Status: models.AssessmentStatusDisputed},
			{Status: models.AssessmentStatusDraft},
		}
		metrics := businessflow.ComputeDashboardMetrics(nil, assessments)

		assert.Equal(t, 2, metrics.PendingAssessments)
		assert.Equal(t, 1, metrics.ApprovedAssessments)
		assert.Equal(t, 1, metrics.DisputedAssessments)
	})

	t.Run("MissingStatusCountsAsPending", func(t *testing.T) {
		influencers := []*models.Influencer{
			makeInfluencer("ama", models.PlatformYouTube, nil, nil, nil),
		}
		metrics := businessflow.ComputeDashboardMetrics(influencers, nil)

		assert.Equal(t, 0, metrics.ComplianceRate)
	})
}

func TestComputePlatformDistribution(t *testing.T) {
	t.Run("AlwaysTwoEntriesInOrder", func(t *testing.T) {
		dist := businessflow.ComputePlatformDistribution(registrySnapshot())

		require.Len(t, dist, 2)
		assert.Equal(t, "YouTube", dist[0].Platform)
		assert.Equal(t, 2, dist[0].Count)
		assert.Equal(t, "#FF0000", dist[0].Color)
		assert.Equal(t, "TikTok", dist[1].Platform)
		assert.Equal(t, 1, dist[1].Count)
		assert.Equal(t, "#00F2EA", dist[1].Color)
	})

	t.Run("EmptyRegistryStillTwoEntries", func(t *testing.T) {
		dist := businessflow.ComputePlatformDistribution(nil)

		require.Len(t, dist, 2)
		assert.Equal(t, 0, dist[0].Count)
		assert.Equal(t, 0, dist[1].Count)
	})
}

func TestComputeRegionalDistribution(t *testing.T) {
	influencers := []*models.Influencer{
		makeInfluencer("a", models.PlatformYouTube, nil, nil, utils.ToPtr("Ashanti")),
		makeInfluencer("b", models.PlatformYouTube, nil, nil, utils.ToPtr("Ashanti")),
		makeInfluencer("c", models.PlatformTikTok, nil, nil, utils.ToPtr("Greater Accra")),
		makeInfluencer("d", models.PlatformTikTok, nil, nil, nil),
	}

	dist := businessflow.ComputeRegionalDistribution(influencers)

	require.Len(t, dist, 3)
	assert.Equal(t, "Ashanti", dist[0].Region)
	assert.Equal(t, 2, dist[0].Count)

	// Remaining buckets have one each; nil region lands in Unknown
	regions := map[string]int{}
	for _, r := range dist {
		regions[r.Region] = r.Count
	}
	assert.Equal(t, 1, regions["Greater Accra"])
	assert.Equal(t, 1, regions[utils.UnknownRegion])
}

func TestComputeComplianceBreakdown(t *testing.T) {
	t.Run("ZeroFilledInEnumerationOrder", func(t *testing.T) {
		breakdown := businessflow.ComputeComplianceBreakdown(nil)

		require.Len(t, breakdown, 4)
		assert.Equal(t, "compliant", breakdown[0].Status)
		assert.Equal(t, "non-compliant", breakdown[1].Status)
		assert.Equal(t, "pending", breakdown[2].Status)
		assert.Equal(t, "under-review", breakdown[3].Status)
		for _, b := range breakdown {
			assert.Equal(t, 0, b.Count)
		}
	})

	t.Run("MissingStatusBucketsAsPending", func(t *testing.T) {
		influencers := []*models.Influencer{
			makeInfluencer("a", models.PlatformYouTube, nil, nil, nil),
			makeInfluencer("b", models.PlatformYouTube, utils.ToPtr(models.ComplianceStatusCompliant), nil, nil),
		}
		breakdown := businessflow.ComputeComplianceBreakdown(influencers)

		require.Len(t, breakdown, 4)
		assert.Equal(t, 1, breakdown[0].Count) // compliant
		assert.Equal(t, 0, breakdown[1].Count) // non-compliant
		assert.Equal(t, 1, breakdown[2].Count) // pending
		assert.Equal(t, 0, breakdown[3].Count) // under-review
	})
}

func TestComputeTopInfluencers(t *testing.T) {
	t.Run("DescendingByRevenue", func(t *testing.T) {
		top := businessflow.ComputeTopInfluencers(registrySnapshot())

		require.Len(t, top, 3)
		assert.Equal(t, "ama", top[0].Name)
		assert.Equal(t, "kofi", top[1].Name)
		assert.Equal(t, "esi", top[2].Name)
	})

	t.Run("TruncatedToLimit", func(t *testing.T) {
		var influencers []*models.Influencer
		for i := 0; i < 15; i++ {
			influencers = append(influencers, makeInfluencer(
				string(rune('a'+i)), models.PlatformYouTube, nil,
				utils.ToPtr(float64(i*1000)), nil))
		}

		top := businessflow.ComputeTopInfluencers(influencers)

		require.Len(t, top, utils.TopInfluencersLimit)
		assert.Equal(t, 14000.0, top[0].AnnualRevenueOrZero())
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		influencers := registrySnapshot()
		_ = businessflow.ComputeTopInfluencers(influencers)

		assert.Equal(t, "ama", influencers[0].Name)
		assert.Equal(t, "kofi", influencers[1].Name)
		assert.Equal(t, "esi", influencers[2].Name)
	})
}

func TestComputeMonthlyRevenueSeries(t *testing.T) {
	series := businessflow.ComputeMonthlyRevenueSeries(registrySnapshot())

	require.NotNil(t, series)
	assert.Empty(t, series)
}

func TestClassifyComplianceRisk(t *testing.T) {
	t.Run("MissingScoreDefaultsToMedium", func(t *testing.T) {
		assert.Equal(t, businessflow.RiskLevelMedium, businessflow.ClassifyComplianceRisk(nil))
	})

	t.Run("BandEdges", func(t *testing.T) {
		assert.Equal(t, businessflow.RiskLevelHigh, businessflow.ClassifyComplianceRisk(utils.ToPtr(0.0)))
		assert.Equal(t, businessflow.RiskLevelHigh, businessflow.ClassifyComplianceRisk(utils.ToPtr(39.0)))
		assert.Equal(t, businessflow.RiskLevelMedium, businessflow.ClassifyComplianceRisk(utils.ToPtr(40.0)))
		assert.Equal(t, businessflow.RiskLevelMedium, businessflow.ClassifyComplianceRisk(utils.ToPtr(69.0)))
		assert.Equal(t, businessflow.RiskLevelLow, businessflow.ClassifyComplianceRisk(utils.ToPtr(70.0)))
		assert.Equal(t, businessflow.RiskLevelLow, businessflow.ClassifyComplianceRisk(utils.ToPtr(100.0)))
	})
}

func TestEstimateTaxLiability(t *testing.T) {
	t.Run("FlatRateRounded", func(t *testing.T) {
		liability := businessflow.EstimateTaxLiability(utils.ToPtr(120000.0))
		require.NotNil(t, liability)
		assert.Equal(t, 30000.0, *liability)

		liability = businessflow.EstimateTaxLiability(utils.ToPtr(100001.0))
		require.NotNil(t, liability)
		assert.Equal(t, 25000.0, *liability)
	})

	t.Run("MissingRevenue", func(t *testing.T) {
		assert.Nil(t, businessflow.EstimateTaxLiability(nil))
	})
}

func TestComputeInfluencerStats(t *testing.T) {
	stats := businessflow.ComputeInfluencerStats(registrySnapshot())

	assert.Equal(t, int64(3), stats.TotalInfluencers)
	assert.Equal(t, 200000.0, stats.TotalEstimatedRevenue)
	assert.Equal(t, 50000.0, stats.TotalTaxLiability)
	assert.Equal(t, 33, stats.ComplianceRate)
	assert.Equal(t, int64(1), stats.PendingReviewCount)
	assert.Equal(t, int64(2), stats.YouTubeCount)
	assert.Equal(t, int64(1), stats.TikTokCount)
}
