// Package tests contains integration tests for the officer authentication flow
package tests

import (
	"context"
	"testing"
	"time"

	"github.com/kwabenaosei/Sankofa/app/dto"
	"github.com/kwabenaosei/Sankofa/app/services"
	businessflow "github.com/kwabenaosei/Sankofa/business_flow"
	"github.com/kwabenaosei/Sankofa/models"
	"github.com/kwabenaosei/Sankofa/repository"
	testingutil "github.com/kwabenaosei/Sankofa/testing"
	"github.com/kwabenaosei/Sankofa/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOfficerAuthFlow(t *testing.T, testDB *testingutil.TestDB, captchaSvc services.CaptchaService) businessflow.OfficerAuthFlow {
	officerRepo := repository.NewOfficerRepository(testDB.DB)
	auditRepo := repository.NewAuditLogRepository(testDB.DB)

	tokenService, err := services.NewTokenService(1*time.Hour, 24*time.Hour,
		"test-issuer", "test-audience", false, "", "",
		"test-secret-key-for-jwt-signing-32-chars")
	require.NoError(t, err)

	return businessflow.NewOfficerAuthFlow(officerRepo, auditRepo, tokenService, captchaSvc)
}

func TestOfficerLoginFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)
		flow := newOfficerAuthFlow(t, testDB, services.NewMockCaptchaService())
		officerRepo := repository.NewOfficerRepository(testDB.DB)
		auditRepo := repository.NewAuditLogRepository(testDB.DB)
		ctx := context.Background()

		t.Run("SuccessfulLogin", func(t *testing.T) {
			officer, err := fixtures.CreateTestOfficer("ama.owusu")
			require.NoError(t, err)

			result, err := flow.Login(ctx, &dto.OfficerLoginRequest{
				ChallengeID: "test-challenge",
				Username:    "ama.owusu",
				Password:    "TestPass123!",
				UserAngle:   42,
			}, testMetadata())
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, officer.ID, result.Officer.ID)
			assert.Equal(t, officer.Username, result.Officer.Username)
			assert.Equal(t, officer.FullName, result.Officer.FullName)
			assert.True(t, utils.IsTrue(result.Officer.IsActive))

			assert.NotEmpty(t, result.Session.AccessToken)
			assert.NotEmpty(t, result.Session.RefreshToken)
			assert.NotEqual(t, result.Session.AccessToken, result.Session.RefreshToken)
			assert.Equal(t, "Bearer", result.Session.TokenType)

			// Login should be stamped on the officer record
			stored, err := officerRepo.ByUsername(ctx, "ama.owusu")
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.NotNil(t, stored.LastLoginAt)

			action := models.AuditActionOfficerLoginSuccess
			entries, err := auditRepo.ByFilter(ctx, models.AuditLogFilter{Action: &action}, "", 0, 0)
			require.NoError(t, err)
			assert.NotEmpty(t, entries)
		})

		t.Run("IncorrectPassword", func(t *testing.T) {
			_, err := fixtures.CreateTestOfficer("kwame.mensah")
			require.NoError(t, err)

			result, err := flow.Login(ctx, &dto.OfficerLoginRequest{
				ChallengeID: "test-challenge",
				Username:    "kwame.mensah",
				Password:    "WrongPass123!",
				UserAngle:   42,
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, businessflow.IsIncorrectPassword(err))

			action := models.AuditActionOfficerLoginFailed
			entries, err := auditRepo.ByFilter(ctx, models.AuditLogFilter{Action: &action}, "", 0, 0)
			require.NoError(t, err)
			assert.NotEmpty(t, entries)
		})

		t.Run("OfficerNotFound", func(t *testing.T) {
			result, err := flow.Login(ctx, &dto.OfficerLoginRequest{
				ChallengeID: "test-challenge",
				Username:    "nobody.here",
				Password:    "TestPass123!",
				UserAngle:   42,
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, businessflow.IsOfficerNotFound(err))
		})

		t.Run("InactiveOfficer", func(t *testing.T) {
			officer, err := fixtures.CreateTestOfficer("efua.asante")
			require.NoError(t, err)
			err = testDB.DB.Model(&models.Officer{}).Where("id = ?", officer.ID).
				Update("is_active", false).Error
			require.NoError(t, err)

			result, err := flow.Login(ctx, &dto.OfficerLoginRequest{
				ChallengeID: "test-challenge",
				Username:    "efua.asante",
				Password:    "TestPass123!",
				UserAngle:   42,
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, businessflow.IsOfficerInactive(err))
		})

		t.Run("MissingCaptchaChallenge", func(t *testing.T) {
			result, err := flow.Login(ctx, &dto.OfficerLoginRequest{
				Username:  "ama.owusu",
				Password:  "TestPass123!",
				UserAngle: 42,
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, businessflow.IsInvalidCaptcha(err))
		})

		t.Run("EmptyCredentials", func(t *testing.T) {
			result, err := flow.Login(ctx, &dto.OfficerLoginRequest{
				ChallengeID: "test-challenge",
				UserAngle:   42,
			}, testMetadata())
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, businessflow.IsIncorrectPassword(err))
		})

		return nil
	})
	require.NoError(t, err)
}

func TestOfficerLoginCaptchaRejection(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		captchaSvc, err := services.NewCaptchaServiceRotate(time.Minute, 15, 220)
		require.NoError(t, err)

		flow := newOfficerAuthFlow(t, testDB, captchaSvc)
		ctx := context.Background()

		_, err = fixtures.CreateTestOfficer("ama.owusu")
		require.NoError(t, err)

		// A challenge ID the captcha service never issued
		result, err := flow.Login(ctx, &dto.OfficerLoginRequest{
			ChallengeID: "bogus-challenge",
			Username:    "ama.owusu",
			Password:    "TestPass123!",
			UserAngle:   42,
		}, testMetadata())
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, businessflow.IsInvalidCaptcha(err))

		return nil
	})
	require.NoError(t, err)
}

func TestOfficerCaptchaInit(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		captchaSvc, err := services.NewCaptchaServiceRotate(time.Minute, 15, 220)
		require.NoError(t, err)

		flow := newOfficerAuthFlow(t, testDB, captchaSvc)

		resp, err := flow.InitCaptcha(context.Background())
		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.NotEmpty(t, resp.ChallengeID)
		assert.NotEmpty(t, resp.MasterImageBase64)
		assert.NotEmpty(t, resp.ThumbImageBase64)

		return nil
	})
	require.NoError(t, err)
}
