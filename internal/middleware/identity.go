package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/egzamapp/config"
)

const userIDKey = "userID"

// Identity resolves the owner of the request. Without an authenticating proxy every
// request belongs to the configured default user.
func Identity(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := cfg.Auth.DefaultUserID
		if cfg.Auth.TrustUserHeader && cfg.Auth.UserHeader != "" {
			if h := strings.TrimSpace(c.GetHeader(cfg.Auth.UserHeader)); h != "" {
				userID = h
			}
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// UserID returns the identity stored by Identity.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
