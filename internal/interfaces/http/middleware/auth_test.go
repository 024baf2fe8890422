package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/backend/internal/infrastructure/auth"
	"github.com/shopcore/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-at-least-32-chars",
		Expiration: 15 * time.Minute,
		Issuer:     "test-issuer",
	})
}

func mintToken(t *testing.T, jwtService *auth.JWTService, role string) (string, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	token, _, err := jwtService.GenerateToken(auth.GenerateTokenInput{
		UserID:   userID,
		Username: "testuser",
		Role:     role,
	})
	require.NoError(t, err)
	return token, userID
}

func TestRequireAuth_ValidToken(t *testing.T) {
	jwtService := newTestJWTService()
	token, userID := mintToken(t, jwtService, "customer")

	router := gin.New()
	router.Use(RequireAuth(jwtService))
	router.GET("/protected", func(c *gin.Context) {
		assert.Equal(t, userID, GetUserID(c))
		assert.False(t, IsAdmin(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router := gin.New()
	router.Use(RequireAuth(newTestJWTService()))
	router.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, w.Body.String())
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	router := gin.New()
	router.Use(RequireAuth(newTestJWTService()))
	router.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+"not-a-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousPasses(t *testing.T) {
	router := gin.New()
	router.Use(OptionalAuth(newTestJWTService()))
	router.GET("/open", func(c *gin.Context) {
		assert.Equal(t, uuid.Nil, GetUserID(c))
		assert.Nil(t, GetClaims(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth_BadTokenTreatedAsAnonymous(t *testing.T) {
	router := gin.New()
	router.Use(OptionalAuth(newTestJWTService()))
	router.GET("/open", func(c *gin.Context) {
		assert.Equal(t, uuid.Nil, GetUserID(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+"expired-or-garbage")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	jwtService := newTestJWTService()
	adminToken, _ := mintToken(t, jwtService, "admin")
	customerToken, _ := mintToken(t, jwtService, "customer")

	router := gin.New()
	router.Use(RequireAuth(jwtService), RequireAdmin())
	router.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+adminToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("customer forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+customerToken)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"error":"Admin access required"}`, w.Body.String())
	})
}
