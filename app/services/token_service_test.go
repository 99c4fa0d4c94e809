// Package services provides external service integrations and technical concerns like tokens and captcha
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestTokenService creates a token service for testing with symmetric key
func createTestTokenService() (TokenService, error) {
	return NewTokenService(
		15*time.Minute,
		7*24*time.Hour,
		"test-issuer",
		"test-audience",
		false, // useRSAKeys
		"",    // privateKeyPEM
		"",    // publicKeyPEM
		"test-secret-key-for-jwt-signing-32-chars", // secretKey
	)
}

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name            string
		accessTokenTTL  time.Duration
		refreshTokenTTL time.Duration
		issuer          string
		audience        string
		useRSAKeys      bool
		privateKeyPEM   string
		publicKeyPEM    string
		secretKey       string
		expectError     bool
	}{
		{
			name:            "valid symmetric key configuration",
			accessTokenTTL:  15 * time.Minute,
			refreshTokenTTL: 7 * 24 * time.Hour,
			issuer:          "test-issuer",
			audience:        "test-audience",
			useRSAKeys:      false,
			secretKey:       "test-secret-key-for-jwt-signing-32-chars",
			expectError:     false,
		},
		{
			name:            "missing secret key",
			accessTokenTTL:  15 * time.Minute,
			refreshTokenTTL: 7 * 24 * time.Hour,
			issuer:          "test-issuer",
			audience:        "test-audience",
			useRSAKeys:      false,
			secretKey:       "",
			expectError:     true,
		},
		{
			name:            "RSA mode without keys",
			accessTokenTTL:  15 * time.Minute,
			refreshTokenTTL: 7 * 24 * time.Hour,
			issuer:          "test-issuer",
			audience:        "test-audience",
			useRSAKeys:      true,
			expectError:     true,
		},
		{
			name:            "empty issuer and audience",
			accessTokenTTL:  15 * time.Minute,
			refreshTokenTTL: 7 * 24 * time.Hour,
			issuer:          "",
			audience:        "",
			useRSAKeys:      false,
			secretKey:       "test-secret-key-for-jwt-signing-32-chars",
			expectError:     false, // Should not error, just use empty strings
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := NewTokenService(
				tt.accessTokenTTL,
				tt.refreshTokenTTL,
				tt.issuer,
				tt.audience,
				tt.useRSAKeys,
				tt.privateKeyPEM,
				tt.publicKeyPEM,
				tt.secretKey,
			)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, service)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, service)
			}
		})
	}
}

func TestGenerateOfficerTokens(t *testing.T) {
	service, err := createTestTokenService()
	require.NoError(t, err)

	tests := []struct {
		name      string
		officerID uint
		username  string
	}{
		{
			name:      "valid officer ID",
			officerID: 123,
			username:  "ama.owusu",
		},
		{
			name:      "zero officer ID",
			officerID: 0,
			username:  "system",
		},
		{
			name:      "large officer ID",
			officerID: 999999999,
			username:  "kwame.mensah",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accessToken, refreshToken, err := service.GenerateOfficerTokens(tt.officerID, tt.username)

			assert.NoError(t, err)
			assert.NotEmpty(t, accessToken)
			assert.NotEmpty(t, refreshToken)
			assert.NotEqual(t, accessToken, refreshToken)

			// Verify tokens are valid JWT format (should start with "eyJ")
			assert.Contains(t, accessToken, "eyJ")
			assert.Contains(t, refreshToken, "eyJ")
		})
	}
}

func TestValidateOfficerToken(t *testing.T) {
	service, err := createTestTokenService()
	require.NoError(t, err)

	// Generate valid tokens for testing
	accessToken, refreshToken, err := service.GenerateOfficerTokens(123, "ama.owusu")
	require.NoError(t, err)

	tests := []struct {
		name         string
		token        string
		expectError  bool
		expectClaims *OfficerTokenClaims
	}{
		{
			name:        "valid access token",
			token:       accessToken,
			expectError: false,
			expectClaims: &OfficerTokenClaims{
				OfficerID: 123,
				Username:  "ama.owusu",
				TokenType: "access",
			},
		},
		{
			name:        "valid refresh token",
			token:       refreshToken,
			expectError: false,
			expectClaims: &OfficerTokenClaims{
				OfficerID: 123,
				Username:  "ama.owusu",
				TokenType: "refresh",
			},
		},
		{
			name:         "empty token",
			token:        "",
			expectError:  true,
			expectClaims: nil,
		},
		{
			name:         "invalid token format",
			token:        "invalid.token.format",
			expectError:  true,
			expectClaims: nil,
		},
		{
			name:         "malformed token",
			token:        "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.invalid.signature",
			expectError:  true,
			expectClaims: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateOfficerToken(tt.token)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)

				if tt.expectClaims != nil {
					assert.Equal(t, tt.expectClaims.OfficerID, claims.OfficerID)
					assert.Equal(t, tt.expectClaims.Username, claims.Username)
					assert.Equal(t, tt.expectClaims.TokenType, claims.TokenType)
					assert.NotEmpty(t, claims.TokenID)
					assert.False(t, claims.IssuedAt.IsZero())
					assert.False(t, claims.ExpiresAt.IsZero())
					assert.True(t, claims.ExpiresAt.After(claims.IssuedAt))
				}
			}
		})
	}
}

func TestRefreshOfficerToken(t *testing.T) {
	service, err := createTestTokenService()
	require.NoError(t, err)

	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		_, refreshToken, err := service.GenerateOfficerTokens(123, "ama.owusu")
		require.NoError(t, err)

		newAccessToken, newRefreshToken, err := service.RefreshOfficerToken(refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccessToken)
		assert.NotEmpty(t, newRefreshToken)
		assert.NotEqual(t, newAccessToken, newRefreshToken)
		assert.NotEqual(t, newRefreshToken, refreshToken)

		// The username survives rotation
		claims, err := service.ValidateOfficerToken(newAccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(123), claims.OfficerID)
		assert.Equal(t, "ama.owusu", claims.Username)

		// The consumed refresh token can no longer mint sessions
		_, _, err = service.RefreshOfficerToken(refreshToken)
		assert.Error(t, err)
	})

	t.Run("access token instead of refresh token", func(t *testing.T) {
		accessToken, _, err := service.GenerateOfficerTokens(123, "ama.owusu")
		require.NoError(t, err)

		newAccessToken, newRefreshToken, err := service.RefreshOfficerToken(accessToken)
		assert.Error(t, err)
		assert.Empty(t, newAccessToken)
		assert.Empty(t, newRefreshToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		newAccessToken, newRefreshToken, err := service.RefreshOfficerToken("invalid.token")
		assert.Error(t, err)
		assert.Empty(t, newAccessToken)
		assert.Empty(t, newRefreshToken)
	})
}

func TestRevokeToken(t *testing.T) {
	service, err := createTestTokenService()
	require.NoError(t, err)

	t.Run("revoked token fails validation", func(t *testing.T) {
		accessToken, _, err := service.GenerateOfficerTokens(123, "ama.owusu")
		require.NoError(t, err)

		claims, err := service.ValidateOfficerToken(accessToken)
		require.NoError(t, err)
		require.NotNil(t, claims)

		err = service.RevokeToken(accessToken)
		assert.NoError(t, err)

		claims, err = service.ValidateOfficerToken(accessToken)
		assert.ErrorIs(t, err, ErrTokenRevoked)
		assert.Nil(t, claims)
	})

	t.Run("revoking twice is a no-op", func(t *testing.T) {
		accessToken, _, err := service.GenerateOfficerTokens(456, "kwame.mensah")
		require.NoError(t, err)

		require.NoError(t, service.RevokeToken(accessToken))
		assert.NoError(t, service.RevokeToken(accessToken))
	})

	t.Run("invalid token", func(t *testing.T) {
		assert.Error(t, service.RevokeToken("invalid.token"))
	})

	t.Run("empty token", func(t *testing.T) {
		assert.Error(t, service.RevokeToken(""))
	})
}

func TestTokenExpiration(t *testing.T) {
	// Create service with very short TTL for testing expiration
	service, err := NewTokenService(1*time.Second, 2*time.Second, "test-issuer", "test-audience", false, "", "", "test-secret-key-for-jwt-signing-32-chars")
	require.NoError(t, err)

	accessToken, refreshToken, err := service.GenerateOfficerTokens(123, "ama.owusu")
	require.NoError(t, err)

	// Initially, tokens should be valid
	claims, err := service.ValidateOfficerToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, uint(123), claims.OfficerID)

	// Wait for tokens to expire
	time.Sleep(3 * time.Second)

	claims, err = service.ValidateOfficerToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)

	// Refresh token should also be expired
	_, _, err = service.RefreshOfficerToken(refreshToken)
	assert.Error(t, err)
}

func TestTokenSecurity(t *testing.T) {
	// Create services with different configurations to ensure different keys
	service1, err := NewTokenService(15*time.Minute, 7*24*time.Hour, "issuer1", "audience1", false, "", "", "test-secret-key-1-for-jwt-signing-32-chars")
	require.NoError(t, err)

	service2, err := NewTokenService(15*time.Minute, 7*24*time.Hour, "issuer2", "audience2", false, "", "", "test-secret-key-2-for-jwt-signing-32-chars")
	require.NoError(t, err)

	token1, _, err := service1.GenerateOfficerTokens(123, "ama.owusu")
	require.NoError(t, err)

	token2, _, err := service2.GenerateOfficerTokens(123, "ama.owusu")
	require.NoError(t, err)

	// Tokens should be different even with the same officer ID
	assert.NotEqual(t, token1, token2)

	// Tokens from one service should not be valid in another service
	claims, err := service1.ValidateOfficerToken(token2)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = service2.ValidateOfficerToken(token1)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestOfficerTokenClaimsStructure(t *testing.T) {
	service, err := createTestTokenService()
	require.NoError(t, err)

	accessToken, refreshToken, err := service.GenerateOfficerTokens(456, "kwame.mensah")
	require.NoError(t, err)

	accessClaims, err := service.ValidateOfficerToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(456), accessClaims.OfficerID)
	assert.Equal(t, "kwame.mensah", accessClaims.Username)
	assert.Equal(t, "access", accessClaims.TokenType)
	assert.NotEmpty(t, accessClaims.TokenID)
	assert.True(t, accessClaims.ExpiresAt.After(accessClaims.IssuedAt))

	refreshClaims, err := service.ValidateOfficerToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, uint(456), refreshClaims.OfficerID)
	assert.Equal(t, "refresh", refreshClaims.TokenType)
	assert.NotEmpty(t, refreshClaims.TokenID)

	// Token IDs should be different
	assert.NotEqual(t, accessClaims.TokenID, refreshClaims.TokenID)
}

func TestConcurrentTokenGeneration(t *testing.T) {
	service, err := createTestTokenService()
	require.NoError(t, err)

	const numGoroutines = 10
	tokens := make(chan string, numGoroutines)
	errs := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(officerID uint) {
			accessToken, _, err := service.GenerateOfficerTokens(officerID, "officer")
			if err != nil {
				errs <- err
				return
			}
			tokens <- accessToken
		}(uint(i + 1))
	}

	generatedTokens := make(map[string]bool)
	for i := 0; i < numGoroutines; i++ {
		select {
		case token := <-tokens:
			assert.NotEmpty(t, token)
			assert.False(t, generatedTokens[token], "Duplicate token generated")
			generatedTokens[token] = true
		case err := <-errs:
			t.Errorf("Error generating token: %v", err)
		}
	}

	assert.Equal(t, numGoroutines, len(generatedTokens))
}

func BenchmarkGenerateOfficerTokens(b *testing.B) {
	service, err := createTestTokenService()
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := service.GenerateOfficerTokens(uint(i), "officer")
		require.NoError(b, err)
	}
}

func BenchmarkValidateOfficerToken(b *testing.B) {
	service, err := createTestTokenService()
	require.NoError(b, err)

	token, _, err := service.GenerateOfficerTokens(123, "ama.owusu")
	require.NoError(b, err)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.ValidateOfficerToken(token)
		require.NoError(b, err)
	}
}
