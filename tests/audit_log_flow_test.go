// Package tests contains integration tests for the audit trail flow
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

func TestAuditLogFlowList(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := businessflow.NewAuditLogFlow(repository.NewAuditLogRepository(testDB.DB))
		ctx := context.Background()

		// Three influencer entries, two of them for the same record
		_, err := fixtures.CreateTestAuditLog(models.AuditActionInfluencerCreated, models.AuditEntityInfluencer, utils.ToPtr("1"))
		require.NoError(t, err)
		_, err = fixtures.CreateTestAuditLog(models.AuditActionInfluencerUpdated, models.AuditEntityInfluencer, utils.ToPtr("1"))
		require.NoError(t, err)
		_, err = fixtures.CreateTestAuditLog(models.AuditActionInfluencerCreated, models.AuditEntityInfluencer, utils.ToPtr("2"))
		require.NoError(t, err)
		_, err = fixtures.CreateTestAuditLog(models.AuditActionReportGenerated, models.AuditEntityReport, nil)
		require.NoError(t, err)
		_, err = fixtures.CreateTestAuditLog(models.AuditActionReportGenerated, models.AuditEntityReport, nil)
		require.NoError(t, err)

		t.Run("DefaultPage", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListAuditLogsRequest{})
			require.NoError(t, err)
			assert.Len(t, result.Logs, 5)
			assert.Equal(t, int64(5), result.Total)
			assert.Equal(t, 1, result.Page)
			assert.Equal(t, utils.DefaultAuditLogLimit, result.PageSize)
		})

		t.Run("FilterByEntityType", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListAuditLogsRequest{
				EntityType: utils.ToPtr(models.AuditEntityInfluencer),
			})
			require.NoError(t, err)
			assert.Len(t, result.Logs, 3)
			assert.Equal(t, int64(3), result.Total)
			for _, entry := range result.Logs {
				assert.Equal(t, models.AuditEntityInfluencer, entry.EntityType)
			}
		})

		t.Run("FilterByEntityRecord", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListAuditLogsRequest{
				EntityType: utils.ToPtr(models.AuditEntityInfluencer),
				EntityID:   utils.ToPtr("1"),
			})
			require.NoError(t, err)
			assert.Len(t, result.Logs, 2)
			assert.Equal(t, int64(2), result.Total)
		})

		t.Run("Pagination", func(t *testing.T) {
			result, err := flow.List(ctx, &dto.ListAuditLogsRequest{Page: 1, PageSize: 2})
			require.NoError(t, err)
			assert.Len(t, result.Logs, 2)
			assert.Equal(t, int64(5), result.Total)
			assert.Equal(t, 2, result.PageSize)

			last, err := flow.List(ctx, &dto.ListAuditLogsRequest{Page: 3, PageSize: 2})
			require.NoError(t, err)
			assert.Len(t, last.Logs, 1)
		})

		t.Run("InvalidPagination", func(t *testing.T) {
			_, err := flow.List(ctx, &dto.ListAuditLogsRequest{Page: -1})
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidPage(err))

			_, err = flow.List(ctx, &dto.ListAuditLogsRequest{PageSize: 500})
			require.Error(t, err)
			assert.True(t, businessflow.IsInvalidPageSize(err))
		})

		return nil
	})
	require.NoError(t, err)
}
