package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-insurance-backend/internal/models"
	"health-insurance-backend/pkg/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 7*24*time.Hour)
	m.Run()
}

func newProtectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthMiddleware(), RequireRoles(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":   c.MustGet("userID"),
			"role":      c.MustGet("role"),
			"superuser": c.MustGet("superuser"),
		})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := newProtectedRouter(models.RoleAdmin)
	w := doRequest(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	r := newProtectedRouter(models.RoleAdmin)
	w := doRequest(t, r, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := newProtectedRouter(models.RoleAdmin)
	w := doRequest(t, r, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	token, err := utils.GenerateAccessToken(7, models.RoleClaimOfficer, false)
	require.NoError(t, err)

	r := newProtectedRouter(models.RoleAdmin, models.RoleClaimOfficer)
	w := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"claim_officer"`)
}

func TestRequireRolesDeniesUnlistedRole(t *testing.T) {
	token, err := utils.GenerateAccessToken(7, models.RoleAgent, false)
	require.NoError(t, err)

	r := newProtectedRouter(models.RoleAdmin, models.RoleClaimOfficer)
	w := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not permitted")
}

func TestRequireRolesSuperuserBypass(t *testing.T) {
	token, err := utils.GenerateAccessToken(1, models.RoleAdmin, true)
	require.NoError(t, err)

	// superuser passes a gate that lists neither admin nor its role
	r := newProtectedRouter(models.RoleHospital)
	w := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRolesWithoutAuthContext(t *testing.T) {
	r := gin.New()
	r.GET("/bare", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/bare", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
