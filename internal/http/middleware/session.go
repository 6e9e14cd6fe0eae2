package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "tripzy_session"
	sessionKey    = "session_id"
)

// Session gives every visitor an opaque id cookie. Booking drafts are keyed
// by it; nothing about the visitor is stored in the cookie itself.
func Session(ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(strings.TrimSpace(sid)) != nil {
			sid = uuid.NewString()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sid, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(sessionKey, sid)
		c.Next()
	}
}

// GetSessionID returns the visitor id set by Session.
func GetSessionID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	return c.GetString(sessionKey)
}
