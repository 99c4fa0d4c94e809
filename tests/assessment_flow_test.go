// Package tests contains integration tests for the tax assessment flow
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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssessmentFlow(testDB *testingutil.TestDB) businessflow.AssessmentFlow {
	assessmentRepo := repository.NewTaxAssessmentRepository(testDB.DB)
	influencerRepo := repository.NewInfluencerRepository(testDB.DB)
	auditRepo := repository.NewAuditLogRepository(testDB.DB)
	return businessflow.NewAssessmentFlow(assessmentRepo, influencerRepo, auditRepo, testDB.DB)
}

func TestAssessmentFlowCreate(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newAssessmentFlow(testDB)
		ctx := context.Background()

		influencer, err := fixtures.CreateTestInfluencer(models.PlatformYouTube)
		require.NoError(t, err)

		t.Run("DefaultsToFlatRate", func(t *testing.T) {
			req := &dto.CreateAssessmentRequest{
				InfluencerID:          influencer.ID,
				AssessmentPeriodStart: "2024-01-01T00:00:00Z",
				AssessmentPeriodEnd:   "2024-12-31T23:59:59Z",
				TaxableIncome:         120000,
			}

			result, err := flow.Create(ctx, req, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, utils.FlatTaxRate, result.TaxRate)
			assert.Equal(t, 30000.0, result.TaxAmount)
			assert.Equal(t, "pending", result.Status)
		})

		t.Run("ExplicitRateHonored", func(t *testing.T) {
			req := &dto.CreateAssessmentRequest{
				InfluencerID:          influencer.ID,
				AssessmentPeriodStart: "2024-01-01T00:00:00Z",
				AssessmentPeriodEnd:   "2024-12-31T23:59:59Z",
				TaxableIncome:         100000,
				TaxRate:               0.3,
			}

			result, err := flow.Create(ctx, req, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, 0.3, result.TaxRate)
			assert.Equal(t, 30000.0, result.TaxAmount)
		})

		t.Run("StampsLastAssessedOnInfluencer", func(t *testing.T) {
			influencerRepo := repository.NewInfluencerRepository(testDB.DB)
			stored, err := influencerRepo.ByID(ctx, influencer.ID)
			require.NoError(t, err)
			assert.NotNil(t, stored.LastAssessedAt)
		})

		t.Run("MissingInfluencer", func(t *testing.T) {
			req := &dto.CreateAssessmentRequest{
				InfluencerID:          999999,
				AssessmentPeriodStart: "2024-01-01T00:00:00Z",
				AssessmentPeriodEnd:   "2024-12-31T23:59:59Z",
				TaxableIncome:         1000,
			}

			_, err := flow.Create(ctx, req, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInfluencerNotFound(err))
		})

		t.Run("InvertedPeriodRejected", func(t *testing.T) {
			req := &dto.CreateAssessmentRequest{
				InfluencerID:          influencer.ID,
				AssessmentPeriodStart: "2024-12-31T23:59:59Z",
				AssessmentPeriodEnd:   "2024-01-01T00:00:00Z",
				TaxableIncome:         1000,
			}

			_, err := flow.Create(ctx, req, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsAssessmentPeriodInverted(err))
		})

		t.Run("ZeroTaxableIncomeRejected", func(t *testing.T) {
			req := &dto.CreateAssessmentRequest{
				InfluencerID:          influencer.ID,
				AssessmentPeriodStart: "2024-01-01T00:00:00Z",
				AssessmentPeriodEnd:   "2024-12-31T23:59:59Z",
				TaxableIncome:         0,
			}

			_, err := flow.Create(ctx, req, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsTaxableIncomeRequired(err))
		})

		t.Run("RateAboveOneRejected", func(t *testing.T) {
			req := &dto.CreateAssessmentRequest{
				InfluencerID:          influencer.ID,
				AssessmentPeriodStart: "2024-01-01T00:00:00Z",
				AssessmentPeriodEnd:   "2024-12-31T23:59:59Z",
				TaxableIncome:         1000,
				TaxRate:               1.5,
			}

			_, err := flow.Create(ctx, req, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsTaxRateOutOfRange(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAssessmentFlowStatusAndListing(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newAssessmentFlow(testDB)
		ctx := context.Background()

		influencer, err := fixtures.CreateTestInfluencer(models.PlatformTikTok)
		require.NoError(t, err)
		other, err := fixtures.CreateTestInfluencer(models.PlatformYouTube)
		require.NoError(t, err)

		pending, err := fixtures.CreateTestAssessment(influencer.ID, 50000, models.AssessmentStatusPending)
		require.NoError(t, err)
		_, err = fixtures.CreateTestAssessment(influencer.ID, 20000, models.AssessmentStatusApproved)
		require.NoError(t, err)
		_, err = fixtures.CreateTestAssessment(other.ID, 10000, models.AssessmentStatusDraft)
		require.NoError(t, err)

		t.Run("UpdateStatus", func(t *testing.T) {
			result, err := flow.UpdateStatus(ctx, pending.ID, &dto.UpdateAssessmentStatusRequest{
				Status: "approved",
			}, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, "approved", result.Status)
		})

		t.Run("UpdateStatusInvalidValue", func(t *testing.T) {
			_, err := flow.UpdateStatus(ctx, pending.ID, &dto.UpdateAssessmentStatusRequest{
				Status: "finalized",
			}, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidAssessmentStatus(err))
		})

		t.Run("UpdateStatusMissingAssessment", func(t *testing.T) {
			_, err := flow.UpdateStatus(ctx, 999999, &dto.UpdateAssessmentStatusRequest{
				Status: "approved",
			}, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsAssessmentNotFound(err))
		})

		t.Run("Get", func(t *testing.T) {
			result, err := flow.Get(ctx, pending.ID)
			require.NoError(t, err)
			assert.Equal(t, influencer.ID, result.InfluencerID)
			assert.Equal(t, 50000.0, result.TaxableIncome)
		})

		t.Run("GetMissingAssessment", func(t *testing.T) {
			_, err := flow.Get(ctx, 999999)
			require.Error(t, err)
			assert.True(t, businessflow.IsAssessmentNotFound(err))
		})

		t.Run("ListAll", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListAssessmentsRequest{})
			require.NoError(t, err)
			assert.Equal(t, int64(3), result.Total)
		})

		t.Run("ListByInfluencer", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListAssessmentsRequest{
				InfluencerID: &influencer.ID,
			})
			require.NoError(t, err)
			assert.Equal(t, int64(2), result.Total)
		})

		t.Run("ListByStatus", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListAssessmentsRequest{
				Status: utils.ToPtr("draft"),
			})
			require.NoError(t, err)
			assert.Equal(t, int64(1), result.Total)
		})

		return nil
	})
	require.NoError(t, err)
}
