// Package tests contains test cases for models and business flow packages to avoid circular imports
package tests

import (
	"testing"

	"github.com/kwabenaosei/Sankofa/models"
	testingutil "github.com/kwabenaosei/Sankofa/testing"
	"github.com/kwabenaosei/Sankofa/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatform(t *testing.T) {
	t.Run("Constants", func(t *testing.T) {
		assert.Equal(t, "youtube", models.PlatformYouTube.String())
		assert.Equal(t, "tiktok", models.PlatformTikTok.String())
	})

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, models.PlatformYouTube.Valid())
		assert.True(t, models.PlatformTikTok.Valid())
		assert.False(t, models.Platform("instagram").Valid())
		assert.False(t, models.Platform("").Valid())
	})
}

func TestComplianceStatus(t *testing.T) {
	t.Run("Constants", func(t *testing.T) {
		assert.Equal(t, "compliant", models.ComplianceStatusCompliant.String())
		assert.Equal(t, "non-compliant", models.ComplianceStatusNonCompliant.String())
		assert.Equal(t, "pending", models.ComplianceStatusPending.String())
		assert.Equal(t, "under-review", models.ComplianceStatusUnderReview.String())
	})

	t.Run("EnumerationOrder", func(t *testing.T) {
		require.Len(t, models.AllComplianceStatuses, 4)
		assert.Equal(t, models.ComplianceStatusCompliant, models.AllComplianceStatuses[0])
		assert.Equal(t, models.ComplianceStatusNonCompliant, models.AllComplianceStatuses[1])
		assert.Equal(t, models.ComplianceStatusPending, models.AllComplianceStatuses[2])
		assert.Equal(t, models.ComplianceStatusUnderReview, models.AllComplianceStatuses[3])
	})

	t.Run("Valid", func(t *testing.T) {
		assert.True(t, models.ComplianceStatusCompliant.Valid())
		assert.False(t, models.ComplianceStatus("unknown").Valid())
	})
}

func TestAssessmentStatus(t *testing.T) {
	assert.True(t, models.AssessmentStatusDraft.Valid())
	assert.True(t, models.AssessmentStatusPending.Valid())
	assert.True(t, models.AssessmentStatusApproved.Valid())
	assert.True(t, models.AssessmentStatusDisputed.Valid())
	assert.False(t, models.AssessmentStatus("finalized").Valid())
}

func TestRegions(t *testing.T) {
	t.Run("SixteenAdministrativeRegions", func(t *testing.T) {
		assert.Len(t, models.Regions, 16)
	})

	t.Run("IsKnownRegion", func(t *testing.T) {
		assert.True(t, models.IsKnownRegion("Greater Accra"))
		assert.True(t, models.IsKnownRegion("Savannah"))
		assert.False(t, models.IsKnownRegion("Lagos"))
		assert.False(t, models.IsKnownRegion(""))
	})
}

func TestInfluencerHelpers(t *testing.T) {
	t.Run("EffectiveComplianceStatus", func(t *testing.T) {
		inf := &models.Influencer{}
		assert.Equal(t, models.ComplianceStatusPending, inf.EffectiveComplianceStatus())

		inf.ComplianceStatus = utils.ToPtr(models.ComplianceStatusCompliant)
		assert.Equal(t, models.ComplianceStatusCompliant, inf.EffectiveComplianceStatus())
	})

	t.Run("RevenueAndLiabilityDefaults", func(t *testing.T) {
		inf := &models.Influencer{}
		assert.Equal(t, 0.0, inf.AnnualRevenueOrZero())
		assert.Equal(t, 0.0, inf.TaxLiabilityOrZero())

		inf.EstimatedAnnualRevenue = utils.ToPtr(120000.0)
		inf.TaxLiability = utils.ToPtr(30000.0)
		assert.Equal(t, 120000.0, inf.AnnualRevenueOrZero())
		assert.Equal(t, 30000.0, inf.TaxLiabilityOrZero())
	})

	t.Run("RegionOrUnknown", func(t *testing.T) {
		inf := &models.Influencer{}
		assert.Equal(t, utils.UnknownRegion, inf.RegionOrUnknown())

		inf.Region = utils.ToPtr("")
		assert.Equal(t, utils.UnknownRegion, inf.RegionOrUnknown())

		inf.Region = utils.ToPtr("Volta")
		assert.Equal(t, "Volta", inf.RegionOrUnknown())
	})
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "influencers", models.Influencer{}.TableName())
	assert.Equal(t, "tax_assessments", models.TaxAssessment{}.TableName())
	assert.Equal(t, "audit_log", models.AuditLog{}.TableName())
	assert.Equal(t, "officers", models.Officer{}.TableName())
}

func TestModelPersistence(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		t.Run("CreateInfluencer", func(t *testing.T) {
			inf, err := fixtures.CreateTestInfluencer(models.PlatformYouTube,
				testingutil.WithComplianceStatus(models.ComplianceStatusCompliant),
				testingutil.WithAnnualRevenue(120000),
				testingutil.WithRegion("Greater Accra"))
			require.NoError(t, err)
			assert.NotZero(t, inf.ID)
			assert.Equal(t, models.PlatformYouTube, inf.Platform)
			require.NotNil(t, inf.TaxLiability)
			assert.Equal(t, 30000.0, *inf.TaxLiability)
		})

		t.Run("DuplicateHandleRejected", func(t *testing.T) {
			inf, err := fixtures.CreateTestInfluencer(models.PlatformTikTok)
			require.NoError(t, err)

			dup := &models.Influencer{
				UUID:     inf.UUID,
				Name:     inf.Name,
				Platform: inf.Platform,
				Handle:   inf.Handle,
			}
			err = testDB.DB.Create(dup).Error
			assert.Error(t, err)
		})

		t.Run("CreateAssessmentForInfluencer", func(t *testing.T) {
			inf, err := fixtures.CreateTestInfluencer(models.PlatformYouTube)
			require.NoError(t, err)

			assessment, err := fixtures.CreateTestAssessment(inf.ID, 80000, models.AssessmentStatusPending)
			require.NoError(t, err)
			assert.NotZero(t, assessment.ID)
			assert.Equal(t, 20000.0, assessment.TaxAmount)
		})

		t.Run("CreateOfficer", func(t *testing.T) {
			officer, err := fixtures.CreateTestOfficer("ama.owusu")
			require.NoError(t, err)
			assert.NotZero(t, officer.ID)
			assert.True(t, *officer.IsActive)
		})

		t.Run("CreateAuditLog", func(t *testing.T) {
			entityID := "42"
			entry, err := fixtures.CreateTestAuditLog(models.AuditActionInfluencerCreated, models.AuditEntityInfluencer, &entityID)
			require.NoError(t, err)
			assert.NotZero(t, entry.ID)
		})

		return nil
	})
	require.NoError(t, err)
}
