package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/shopcore/backend/internal/domain/shopping"
)

// CartSessionKey is the gin context key for the anonymous cart session ID
const CartSessionKey = "cart_session_id"

// CartSession resolves the anonymous cart session for a request. If the
// client sent no session header a fresh session ID is minted. The ID is
// echoed back in the response header either way so clients can persist it.
func CartSession(headerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(headerName)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Set(CartSessionKey, sessionID)
		c.Writer.Header().Set(headerName, sessionID)
		c.Next()
	}
}

// GetCartSessionID returns the cart session ID minted or propagated by
// CartSession, or an empty string when the middleware did not run
func GetCartSessionID(c *gin.Context) string {
	return c.GetString(CartSessionKey)
}

// ResolveCartOwner identifies the cart owner for a request: the
// authenticated user when a valid token is present, the anonymous
// session otherwise.
func ResolveCartOwner(c *gin.Context) shopping.CartOwner {
	if userID := GetUserID(c); userID != uuid.Nil {
		return shopping.UserOwner(userID)
	}
	if sessionID := GetCartSessionID(c); sessionID != "" {
		return shopping.SessionOwner(sessionID)
	}
	return shopping.CartOwner{}
}
