// Package tests contains integration tests for the reporting flow
package tests

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kwabenaosei/Sankofa/app/dto"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	testingutil "github.com/kwabenaosei/Sankofa/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newReportFlow(testDB *testingutil.TestDB) businessflow.ReportFlow {
	influencerRepo := repository.NewInfluencerRepository(testDB.DB)
	assessmentRepo := repository.NewTaxAssessmentRepository(testDB.DB)
	auditRepo := repository.NewAuditLogRepository(testDB.DB)
	return businessflow.NewReportFlow(influencerRepo, assessmentRepo, auditRepo)
}

func TestReportFlowGenerate(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newReportFlow(testDB)
		ctx := context.Background()

		inf, err := fixtures.CreateTestInfluencer(models.PlatformYouTube,
			testingutil.WithComplianceStatus(models.ComplianceStatusCompliant),
			testingutil.WithAnnualRevenue(120000),
			testingutil.WithRegion("Greater Accra"))
		require.NoError(t, err)
		_, err = fixtures.CreateTestAssessment(inf.ID, 120000, models.AssessmentStatusPending)
		require.NoError(t, err)

		t.Run("TaxSummary", func(t *testing.T) {
			result, err := flow.Generate(ctx, &dto.GenerateReportRequest{
				Format: dto.ReportFormatTaxSummary,
			}, testMetadata())
			require.NoError(t, err)
			assert.Equal(t, "text/plain; charset=utf-8", result.ContentType)
			assert.True(t, strings.HasSuffix(result.Filename, ".txt"))
			assert.Contains(t, result.Body, "GHANA REVENUE AUTHORITY")
			assert.Contains(t, result.Body, "TAX SUMMARY REPORT")
			assert.Contains(t, result.Body, "Total Registered Influencers: 1")
			assert.Contains(t, result.Body, "GH₵120,000")
			assert.Contains(t, result.Body, "Compliance Rate: 100%")
			assert.Contains(t, result.Body, "Pending Assessments: 1")
		})

		t.Run("ComplianceOverview", func(t *testing.T) {
			result, err := flow.Generate(ctx, &dto.GenerateReportRequest{
				Format: dto.ReportFormatComplianceOverview,
			}, testMetadata())
			require.NoError(t, err)
			assert.Contains(t, result.Body, "COMPLIANCE OVERVIEW")
			assert.Contains(t, result.Body, "COMPLIANT")
			assert.Contains(t, result.Body, "UNDER-REVIEW")
		})

		t.Run("InfluencerList", func(t *testing.T) {
			result, err := flow.Generate(ctx, &dto.GenerateReportRequest{
				Format: dto.ReportFormatInfluencerList,
			}, testMetadata())
			require.NoError(t, err)
			assert.Contains(t, result.Body, "INFLUENCER REGISTRY")
			assert.Contains(t, result.Body, "Total Records: 1")
			assert.Contains(t, result.Body, inf.Name)
		})

		t.Run("RevenueAnalysis", func(t *testing.T) {
			result, err := flow.Generate(ctx, &dto.GenerateReportRequest{
				Format: dto.ReportFormatRevenueAnalysis,
			}, testMetadata())
			require.NoError(t, err)
			assert.Contains(t, result.Body, "REVENUE ANALYSIS")
			assert.Contains(t, result.Body, "YouTube:  GH₵120,000")
			assert.Contains(t, result.Body, "TikTok:   GH₵0")
		})

		t.Run("UnknownFormat", func(t *testing.T) {
			_, err := flow.Generate(ctx, &dto.GenerateReportRequest{
				Format: "pie-chart",
			}, testMetadata())
			require.Error(t, err)
			assert.True(t, businessflow.IsUnknownReportFormat(err))
		})

		t.Run("GenerateWritesAuditEntry", func(t *testing.T) {
			auditRepo := repository.NewAuditLogRepository(testDB.DB)
			action := models.AuditActionReportGenerated
			entries, err := auditRepo.ByFilter(ctx, models.AuditLogFilter{Action: &action}, "", 0, 0)
			require.NoError(t, err)
			assert.NotEmpty(t, entries)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestReportFlowExcelExport(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newReportFlow(testDB)
		ctx := context.Background()

		inf, err := fixtures.CreateTestInfluencer(models.PlatformTikTok,
			testingutil.WithAnnualRevenue(80000),
			testingutil.WithComplianceScore(35))
		require.NoError(t, err)

		filename, body, err := flow.ExportRegistryExcel(ctx, testMetadata())
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "gra-registry-"))
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))
		require.NotEmpty(t, body)

		xl, err := excelize.OpenReader(bytes.NewReader(body))
		require.NoError(t, err)
		defer xl.Close()

		rows, err := xl.GetRows("Registry")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "name", rows[0][1])
		assert.Equal(t, inf.Name, rows[1][1])
		assert.Equal(t, "tiktok", rows[1][2])
		// Score 35 lands in the High risk band
		assert.Equal(t, "High", rows[1][7])

		return nil
	})
	require.NoError(t, err)
}
