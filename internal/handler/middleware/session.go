package middleware

import (
	"club-portal/internal/pkg/config"
	"club-portal/internal/pkg/cookie"
	"club-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "cart_session_id"

// SessionMiddleware guarantees every request on the store routes carries a
// cart-session ID, minting one on first contact.
func SessionMiddleware(cfg config.SessionConfig, carts usecase.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := cookie.GetSessionID(c, cfg)
		if sessionID == "" {
			sessionID = carts.NewSessionID()
			cookie.SetSessionCookie(c, cfg, sessionID)
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
