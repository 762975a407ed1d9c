package cookie

import (
	"net/http"

	"club-portal/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// The session cookie only carries an opaque cart-session ID; everything else
// lives server side.

func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, sessionID string) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		cfg.CookieName,
		sessionID,
		int(cfg.TTL.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		cfg.CookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetSessionID(c *gin.Context, cfg config.SessionConfig) string {
	id, _ := c.Cookie(cfg.CookieName)
	return id
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
