// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-lumen/jewelry-backend/internal/config"
	"github.com/atelier-lumen/jewelry-backend/internal/models"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey: "test-secret",
			TokenTTL:  1,
		},
	}
}

func TestSignupCreatesClientWithHashedPassword(t *testing.T) {
	db := setupTestDB(t)
	authService := NewAuthService(db, testConfig())

	user, err := authService.Signup(&SignupRequest{
		Name:     "Mara Quist",
		Email:    "mara@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleClient, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("secret123"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	authService := NewAuthService(db, testConfig())

	req := &SignupRequest{Name: "First", Email: "taken@example.com", Password: "secret123"}
	_, err := authService.Signup(req)
	require.NoError(t, err)

	_, err = authService.Signup(&SignupRequest{Name: "Second", Email: "taken@example.com", Password: "other456"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestSignupValidatesInput(t *testing.T) {
	db := setupTestDB(t)
	authService := NewAuthService(db, testConfig())

	_, err := authService.Signup(&SignupRequest{Name: "X", Email: "not-an-email", Password: "123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	authService := NewAuthService(db, cfg)

	_, err := authService.Signup(&SignupRequest{
		Name:     "Login User",
		Email:    "login@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("valid credentials return a usable token", func(t *testing.T) {
		resp, err := authService.Login(&LoginRequest{Email: "login@example.com", Password: "secret123"})
		require.NoError(t, err)

		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, 3600, resp.ExpiresIn)

		claims, err := utils.ValidateJWT(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
		assert.Equal(t, "login@example.com", claims.Email)
		assert.Equal(t, string(models.RoleClient), claims.Role)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		_, wrongPass := authService.Login(&LoginRequest{Email: "login@example.com", Password: "nope1234"})
		_, unknown := authService.Login(&LoginRequest{Email: "nobody@example.com", Password: "nope1234"})

		require.Error(t, wrongPass)
		require.Error(t, unknown)
		assert.Equal(t, wrongPass.Error(), unknown.Error())
	})
}
