// Package tests contains integration tests for the analytics flow
package tests

import (
	"context"
	"testing"

	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/kwabenaosei/Sankofa/config"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	testingutil "github.com/kwabenaosei/Sankofa/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyticsFlow(testDB *testingutil.TestDB) businessflow.AnalyticsFlow {
	influencerRepo := repository.NewInfluencerRepository(testDB.DB)
	assessmentRepo := repository.NewTaxAssessmentRepository(testDB.DB)
	// No redis in tests; the flow degrades to recomputation
	return businessflow.NewAnalyticsFlow(influencerRepo, assessmentRepo, nil, &config.CacheConfig{})
}

func TestAnalyticsFlowOverview(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newAnalyticsFlow(testDB)
		ctx := context.Background()

		inf1, err := fixtures.CreateTestInfluencer(models.PlatformYouTube,
			testingutil.WithComplianceStatus(models.ComplianceStatusCompliant),
			testingutil.WithAnnualRevenue(120000),
			testingutil.WithRegion("Greater Accra"))
		require.NoError(t, err)
		_, err = fixtures.CreateTestInfluencer(models.PlatformTikTok,
			testingutil.WithComplianceStatus(models.ComplianceStatusPending),
			testingutil.WithAnnualRevenue(80000),
			testingutil.WithRegion("Ashanti"))
		require.NoError(t, err)
		_, err = fixtures.CreateTestAssessment(inf1.ID, 120000, models.AssessmentStatusPending)
		require.NoError(t, err)

		overview, err := flow.Overview(ctx)
		require.NoError(t, err)
		require.NotNil(t, overview)

		assert.Equal(t, 2, overview.Metrics.TotalInfluencers)
		assert.Equal(t, float64(200000), overview.Metrics.TotalEstimatedRevenue)
		assert.Equal(t, float64(50000), overview.Metrics.TotalTaxLiability)
		assert.Equal(t, 50, overview.Metrics.ComplianceRate)
		assert.Equal(t, 1, overview.Metrics.PendingAssessments)

		require.Len(t, overview.PlatformDistribution, 2)
		assert.Equal(t, "YouTube", overview.PlatformDistribution[0].Platform)
		assert.Equal(t, 1, overview.PlatformDistribution[0].Count)
		assert.Equal(t, "TikTok", overview.PlatformDistribution[1].Platform)
		assert.Equal(t, 1, overview.PlatformDistribution[1].Count)

		require.Len(t, overview.RegionalDistribution, 2)
		assert.Len(t, overview.ComplianceBreakdown, 4)
		assert.Len(t, overview.TopInfluencers, 2)
		assert.Equal(t, inf1.Name, overview.TopInfluencers[0].Name)
		assert.NotNil(t, overview.MonthlyRevenue)
		assert.Empty(t, overview.MonthlyRevenue)

		return nil
	})
	require.NoError(t, err)
}

func TestAnalyticsFlowSectionEndpoints(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newAnalyticsFlow(testDB)
		ctx := context.Background()

		_, err := fixtures.CreateTestInfluencer(models.PlatformYouTube,
			testingutil.WithComplianceStatus(models.ComplianceStatusCompliant),
			testingutil.WithAnnualRevenue(90000))
		require.NoError(t, err)

		metrics, err := flow.DashboardMetrics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, metrics.TotalInfluencers)
		assert.Equal(t, 100, metrics.ComplianceRate)

		platforms, err := flow.PlatformDistribution(ctx)
		require.NoError(t, err)
		require.Len(t, platforms, 2)
		assert.Equal(t, 1, platforms[0].Count)
		assert.Equal(t, 0, platforms[1].Count)

		regions, err := flow.RegionalDistribution(ctx)
		require.NoError(t, err)
		require.Len(t, regions, 1)
		assert.Equal(t, "Unknown", regions[0].Region)

		breakdown, err := flow.ComplianceBreakdown(ctx)
		require.NoError(t, err)
		require.Len(t, breakdown, 4)
		assert.Equal(t, 1, breakdown[0].Count)

		top, err := flow.TopInfluencers(ctx)
		require.NoError(t, err)
		assert.Len(t, top, 1)

		monthly, err := flow.MonthlyRevenue(ctx)
		require.NoError(t, err)
		assert.NotNil(t, monthly)
		assert.Empty(t, monthly)

		return nil
	})
	require.NoError(t, err)
}
