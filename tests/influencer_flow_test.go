// Package tests contains integration tests for the influencer registry flow
package tests

import (
	"context"
	"testing"

	"github.com/kwabenaosei/Sankofa/app/dto"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	testingutil "github.com/kwabenaosei/Sankofa/testing"
	"github.com/kwabenaosei/Sankofa/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInfluencerFlow(testDB *testingutil.TestDB) businessflow.InfluencerFlow {
	influencerRepo := repository.NewInfluencerRepository(testDB.DB)
	assessmentRepo := repository.NewTaxAssessmentRepository(testDB.DB)
	auditRepo := repository.NewAuditLogRepository(testDB.DB)
	return businessflow.NewInfluencerFlow(influencerRepo, assessmentRepo, auditRepo, testDB.DB)
}

func testMetadata() *businessflow.ClientMetadata {
	return businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")
}

func TestInfluencerFlowCreate(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		flow := newInfluencerFlow(testDB)
		ctx := context.Background()

		t.Run("SuccessfulCreate", func(t *testing.T) {
			req := &dto.CreateInfluencerRequest{
				Name:                   "Kwame Mensah",
				Platform:               "youtube",
				Handle:                 "@kwamevlogs",
				EstimatedAnnualRevenue: utils.ToPtr(120000.0),
				Region:                 utils.ToPtr("Greater Accra"),
			}

			result, err := flow.Create(ctx, req, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.NotZero(t, result.ID)
			assert.NotEmpty(t, result.UUID)
			assert.Equal(t, "pending", result.ComplianceStatus)
			require.NotNil(t, result.TaxLiability)
			assert.Equal(t, 30000.0, *result.TaxLiability)
			assert.NotNil(t, result.LastDataRefresh)
		})

		t.Run("DuplicateHandleOnSamePlatform", func(t *testing.T) {
			req := &dto.CreateInfluencerRequest{
				Name:     "Impostor",
				Platform: "youtube",
				Handle:   "@kwamevlogs",
			}

			_, err := flow.Create(ctx, req, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsHandleAlreadyExists(err))
		})

		t.Run("SameHandleOnOtherPlatformAllowed", func(t *testing.T) {
			req := &dto.CreateInfluencerRequest{
				Name:     "Kwame Mensah",
				Platform: "tiktok",
				Handle:   "@kwamevlogs",
			}

			result, err := flow.Create(ctx, req, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, "tiktok", result.Platform)
		})

		t.Run("UnknownRegionRejected", func(t *testing.T) {
			req := &dto.CreateInfluencerRequest{
				Name:     "Efua",
				Platform: "tiktok",
				Handle:   "@efua",
				Region:   utils.ToPtr("Atlantis"),
			}

			_, err := flow.Create(ctx, req, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsUnknownRegion(err))
		})

		t.Run("InvalidPlatformRejected", func(t *testing.T) {
			req := &dto.CreateInfluencerRequest{
				Name:     "Efua",
				Platform: "instagram",
				Handle:   "@efua",
			}

			_, err := flow.Create(ctx, req, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidPlatform(err))
		})

		t.Run("CreateWritesAuditEntry", func(t *testing.T) {
			auditRepo := repository.NewAuditLogRepository(testDB.DB)
			action := models.AuditActionInfluencerCreated
			entries, err := auditRepo.ByFilter(ctx, models.AuditLogFilter{Action: &action}, "", 0, 0)
			require.NoError(t, err)
			assert.NotEmpty(t, entries)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestInfluencerFlowUpdateAndDelete(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newInfluencerFlow(testDB)
		ctx := context.Background()

		t.Run("PartialUpdateRecalculatesLiability", func(t *testing.T) {
			inf, err := fixtures.CreateTestInfluencer(models.PlatformYouTube,
				testingutil.WithAnnualRevenue(100000))
			require.NoError(t, err)

			req := &dto.UpdateInfluencerRequest{
				EstimatedAnnualRevenue: utils.ToPtr(200000.0),
			}

			result, err := flow.Update(ctx, inf.ID, req, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, result.TaxLiability)
			assert.Equal(t, 50000.0, *result.TaxLiability)
			// Untouched fields survive
			assert.Equal(t, inf.Name, result.Name)
		})

		t.Run("EmptyUpdateRejected", func(t *testing.T) {
			inf, err := fixtures.CreateTestInfluencer(models.PlatformYouTube)
			require.NoError(t, err)

			_, err = flow.Update(ctx, inf.ID, &dto.UpdateInfluencerRequest{}, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsUpdateFieldsRequired(err))
		})

		t.Run("UpdateMissingInfluencer", func(t *testing.T) {
			req := &dto.UpdateInfluencerRequest{
				Name: utils.ToPtr("Ghost"),
			}

			_, err := flow.Update(ctx, 999999, req, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInfluencerNotFound(err))
		})

		t.Run("DeleteThenGetNotFound", func(t *testing.T) {
			inf, err := fixtures.CreateTestInfluencer(models.PlatformTikTok)
			require.NoError(t, err)

			err = flow.Delete(ctx, inf.ID, testMetadata())
			require.NoError(t, err)

			_, err = flow.Get(ctx, inf.ID)
			require.Error(t, err)
			assert.True(t, businessflow.IsInfluencerNotFound(err))
		})

		t.Run("DeleteMissingInfluencer", func(t *testing.T) {
			err := flow.Delete(ctx, 999999, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInfluencerNotFound(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestInfluencerFlowListSearchStats(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newInfluencerFlow(testDB)
		ctx := context.Background()

		_, err := fixtures.CreateTestInfluencer(models.PlatformYouTube,
			testingutil.WithComplianceStatus(models.ComplianceStatusCompliant),
			testingutil.WithAnnualRevenue(120000),
			testingutil.WithRegion("Greater Accra"))
		require.NoError(t, err)
		_, err = fixtures.CreateTestInfluencer(models.PlatformTikTok,
			testingutil.WithComplianceStatus(models.ComplianceStatusPending),
			testingutil.WithAnnualRevenue(80000),
			testingutil.WithRegion("Ashanti"))
		require.NoError(t, err)
		named := &models.Influencer{
			UUID:     uuid.New(),
			Name:     "Akosua Repeatable",
			Platform: models.PlatformYouTube,
			Handle:   "@akosua",
		}
		require.NoError(t, testDB.DB.Create(named).Error)

		t.Run("ListAll", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListInfluencersRequest{})
			require.NoError(t, err)
			assert.Equal(t, int64(3), result.Total)
			assert.Len(t, result.Influencers, 3)
		})

		t.Run("ListFilteredByPlatform", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListInfluencersRequest{
				Platform: utils.ToPtr("tiktok"),
			})
			require.NoError(t, err)
			assert.Equal(t, int64(1), result.Total)
		})

		t.Run("ListFilteredByRegion", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListInfluencersRequest{
				Region: utils.ToPtr("Greater Accra"),
			})
			require.NoError(t, err)
			assert.Equal(t, int64(1), result.Total)
		})

		t.Run("ListPaginated", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListInfluencersRequest{
				Page:     1,
				PageSize: 2,
			})
			require.NoError(t, err)
			assert.Equal(t, int64(3), result.Total)
			assert.Len(t, result.Influencers, 2)
		})

		t.Run("SearchByName", func(t *testing.T) {
			result, err := flow.Search(ctx, &dto.SearchInfluencersRequest{Term: "Akosua"})
			require.NoError(t, err)
			require.Len(t, result.Influencers, 1)
			assert.Equal(t, "Akosua Repeatable", result.Influencers[0].Name)
		})

		t.Run("SearchIsCaseInsensitive", func(t *testing.T) {
			result, err := flow.Search(ctx, &dto.SearchInfluencersRequest{Term: "akosua"})
			require.NoError(t, err)
			assert.Len(t, result.Influencers, 1)
		})

		t.Run("SearchNoMatches", func(t *testing.T) {
			result, err := flow.Search(ctx, &dto.SearchInfluencersRequest{Term: "nobody"})
			require.NoError(t, err)
			assert.Empty(t, result.Influencers)
		})

		t.Run("Stats", func(t *testing.T) {
			stats, err := flow.Stats(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(3), stats.TotalInfluencers)
			assert.Equal(t, 200000.0, stats.TotalEstimatedRevenue)
			assert.Equal(t, 33, stats.ComplianceRate)
			assert.Equal(t, int64(2), stats.YouTubeCount)
			assert.Equal(t, int64(1), stats.TikTokCount)
		})

		return nil
	})
	require.NoError(t, err)
}
