package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/astropredict-web/internal/infra/config"
)

const sessionIDKey = "session_id"

// sessionMiddleware makes sure every request carries a session cookie.
func sessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.TTL.Seconds())
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		// Refresh on every request so active sessions do not expire mid-use.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, id, maxAge, "/", "", cfg.Secure || c.Request.TLS != nil, true)
		setSessionID(c, id)
		c.Next()
	}
}

func setSessionID(c *gin.Context, id string) {
	c.Set(sessionIDKey, id)
}

func getSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
