// Package tests contains integration tests for the channel lookup flow
package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/app/services"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	testingutil "github.com/kwabenaosei/Sankofa/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelLookupFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		auditRepo := repository.NewAuditLogRepository(testDB.DB)
		ctx := context.Background()

		provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/channels/youtube/UCtest123", r.URL.Path)
			assert.Equal(t, "test-api-key", r.Header.Get("X-Api-Key"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"channel_id": "UCtest123",
				"title": "Ama Creates",
				"subscribers": 250000,
				"total_views": 12000000,
				"total_videos": 180,
				"engagement_rate": 4.2
			}`))
		}))
		defer provider.Close()

		client := services.NewChannelLookupClient(provider.URL, "test-api-key", 5*time.Second)
		flow := businessflow.NewChannelFlow(client, auditRepo)

		t.Run("SuccessfulLookup", func(t *testing.T) {
			info, err := flow.Lookup(ctx, &dto.ChannelLookupRequest{
				Platform:  "youtube",
				ChannelID: "UCtest123",
			}, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, info)

			assert.Equal(t, "UCtest123", info.ChannelID)
			assert.Equal(t, "Ama Creates", info.Title)
			require.NotNil(t, info.Subscribers)
			assert.Equal(t, float64(250000), *info.Subscribers)
			require.NotNil(t, info.AvgEngagementRate)
			assert.Equal(t, 4.2, *info.AvgEngagementRate)
			assert.NotEmpty(t, info.FetchedAt)

			action := models.AuditActionChannelLookup
			entries, err := auditRepo.ByFilter(ctx, models.AuditLogFilter{Action: &action}, "", 0, 0)
			require.NoError(t, err)
			assert.NotEmpty(t, entries)
		})

		t.Run("MissingChannelID", func(t *testing.T) {
			info, err := flow.Lookup(ctx, &dto.ChannelLookupRequest{
				Platform: "youtube",
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, info)
			assert.True(t, businessflow.IsChannelIDRequired(err))
		})

		t.Run("InvalidPlatform", func(t *testing.T) {
			info, err := flow.Lookup(ctx, &dto.ChannelLookupRequest{
				Platform:  "twitch",
				ChannelID: "somebody",
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, info)
			assert.True(t, businessflow.IsInvalidPlatform(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestChannelLookupProviderFailures(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		auditRepo := repository.NewAuditLogRepository(testDB.DB)
		ctx := context.Background()

		t.Run("ProviderNotConfigured", func(t *testing.T) {
			client := services.NewChannelLookupClient("", "", 5*time.Second)
			flow := businessflow.NewChannelFlow(client, auditRepo)

			info, err := flow.Lookup(ctx, &dto.ChannelLookupRequest{
				Platform:  "tiktok",
				ChannelID: "@creator",
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, info)
			assert.True(t, businessflow.IsChannelProviderUnavailable(err))
		})

		t.Run("ProviderError", func(t *testing.T) {
			provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer provider.Close()

			client := services.NewChannelLookupClient(provider.URL, "", 5*time.Second)
			flow := businessflow.NewChannelFlow(client, auditRepo)

			info, err := flow.Lookup(ctx, &dto.ChannelLookupRequest{
				Platform:  "youtube",
				ChannelID: "UCbroken",
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, info)
			assert.True(t, businessflow.IsChannelLookupFailed(err))
		})

		return nil
	})
	require.NoError(t, err)
}
