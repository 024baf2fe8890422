package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopcore/backend/internal/domain/shopping"
)

const testSessionHeader = "X-Cart-Session"

func TestCartSession_MintsWhenAbsent(t *testing.T) {
	var seen string

	router := gin.New()
	router.Use(CartSession(testSessionHeader))
	router.GET("/cart", func(c *gin.Context) {
		seen = GetCartSessionID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, w.Header().Get(testSessionHeader))
}

func TestCartSession_PropagatesExisting(t *testing.T) {
	sessionID := uuid.NewString()

	router := gin.New()
	router.Use(CartSession(testSessionHeader))
	router.GET("/cart", func(c *gin.Context) {
		assert.Equal(t, sessionID, GetCartSessionID(c))
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(testSessionHeader, sessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, sessionID, w.Header().Get(testSessionHeader))
}

func TestResolveCartOwner_PrefersUser(t *testing.T) {
	jwtService := newTestJWTService()
	token, userID := mintToken(t, jwtService, "customer")

	var owner shopping.CartOwner

	router := gin.New()
	router.Use(OptionalAuth(jwtService), CartSession(testSessionHeader))
	router.GET("/cart", func(c *gin.Context) {
		owner = ResolveCartOwner(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+token)
	req.Header.Set(testSessionHeader, uuid.NewString())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.True(t, owner.IsUser())
	assert.Equal(t, userID, owner.UserID())
}

func TestResolveCartOwner_FallsBackToSession(t *testing.T) {
	sessionID := uuid.NewString()
	var owner shopping.CartOwner

	router := gin.New()
	router.Use(OptionalAuth(newTestJWTService()), CartSession(testSessionHeader))
	router.GET("/cart", func(c *gin.Context) {
		owner = ResolveCartOwner(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(testSessionHeader, sessionID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.True(t, owner.IsSession())
	assert.Equal(t, sessionID, owner.SessionID())
}
