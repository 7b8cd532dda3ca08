package middleware

import (
	"github.com/gin-gonic/gin"
)

// SessionHeader carries the preview session identifier.
const SessionHeader = "X-PullPane-Session-ID"

const sessionContextKey = "pullpane-session-id"

// SessionMiddleware extracts the session header into the request context.
// An absent header is allowed; handlers decide whether a session is required.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID := c.GetHeader(SessionHeader); sessionID != "" {
			c.Set(sessionContextKey, sessionID)
		}
		c.Next()
	}
}

// GetSessionID returns the session ID extracted by SessionMiddleware.
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return "", false
	}
	sessionID, ok := value.(string)
	return sessionID, ok && sessionID != ""
}
