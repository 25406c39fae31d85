package middleware

import (
	"net/http"
	"strings"

	"SocialChat/tools"

	"github.com/gin-gonic/gin"
)

// Origin restricts websocket upgrades on /chat to the configured origins.
// ALLOWED_ORIGINS is a comma separated list; empty means allow all (dev).
func Origin() gin.HandlerFunc {
	allowed := tools.GetEnv("ALLOWED_ORIGINS", "")
	var origins []string
	if allowed != "" {
		for _, o := range strings.Split(allowed, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && c.Request.URL.Path == "/chat" && len(origins) > 0 {
			origin := c.GetHeader("Origin")
			ok := false
			for _, o := range origins {
				if origin == o {
					ok = true
					break
				}
			}
			if !ok {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}
		c.Next()
	}
}
