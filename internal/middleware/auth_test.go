// internal/middleware/auth_test.go
package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/atelier-lumen/jewelry-backend/internal/models"
	"github.com/atelier-lumen/jewelry-backend/internal/utils"
)

func setupAuthTest(t *testing.T) *gorm.DB {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("middleware-test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func createRoleUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{Name: "Role User", Email: email, Role: role}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func doGet(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe-path", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOptionalAuth(t *testing.T) {
	db := setupAuthTest(t)
	user := createRoleUser(t, db, "optional@example.com", models.RoleClient)

	r := gin.New()
	r.GET("/probe-path", OptionalAuth(), func(c *gin.Context) {
		userID, _ := utils.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	t.Run("anonymous requests pass through", func(t *testing.T) {
		w := doGet(r, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":0`)
	})

	t.Run("garbage tokens do not block the route", func(t *testing.T) {
		w := doGet(r, "not-a-token")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid token attaches the user", func(t *testing.T) {
		token, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), 1)
		require.NoError(t, err)

		w := doGet(r, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(`"user_id":%d`, user.ID))
	})
}

func TestAdminRequired(t *testing.T) {
	db := setupAuthTest(t)
	admin := createRoleUser(t, db, "admin@example.com", models.RoleAdmin)
	client := createRoleUser(t, db, "client@example.com", models.RoleClient)

	r := gin.New()
	r.GET("/probe-path", AuthRequired(), AdminRequired(db), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	adminToken, err := utils.GenerateJWT(admin.ID, admin.Email, string(models.RoleAdmin), 1)
	require.NoError(t, err)
	clientToken, err := utils.GenerateJWT(client.ID, client.Email, string(models.RoleClient), 1)
	require.NoError(t, err)

	t.Run("admin claim with admin row passes", func(t *testing.T) {
		w := doGet(r, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("client claim is rejected on the claim alone", func(t *testing.T) {
		w := doGet(r, clientToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("demoted admin is rejected by the row re-check", func(t *testing.T) {
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", admin.ID).
			Update("role", models.RoleClient).Error)

		// Token still claims admin; the stored role decides
		w := doGet(r, adminToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
