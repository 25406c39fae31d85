package security

import (
	"net/http"
	"strings"

	"SocialChat/global"
	"SocialChat/service/storage"
	"SocialChat/tools/errs"
	jwtlib "SocialChat/tools/security"

	"github.com/gin-gonic/gin"
)

// context keys; downstream handlers read identity through these
const (
	CtxUserIDKey    = "userID"
	CtxTokenHashKey = "tokenHash"
)

type Options struct {
	HeaderToken               string // default "authorization"
	EnableAuthorizationBearer bool   // default true
	CheckSession              bool   // default true: token must map to a live redis session
}

func DefaultOptions() *Options {
	return &Options{
		HeaderToken:               "authorization",
		EnableAuthorizationBearer: true,
		CheckSession:              true,
	}
}

// Middleware verifies the JWT and (optionally) the redis session record, and
// injects the user identity into the gin context.
func Middleware(opts *Options) gin.HandlerFunc {
	if opts == nil {
		opts = DefaultOptions()
	}
	jwtOpts := jwtlib.DefaultOptions(global.GetJwtSecret())

	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(opts.HeaderToken))
		if token == "" {
			token = strings.TrimSpace(c.GetHeader("Authorization"))
		}

		// accept both a raw JWT and Authorization: Bearer xxx; the scheme
		// prefix must be stripped before verification
		if opts.EnableAuthorizationBearer && strings.HasPrefix(strings.ToLower(token), "bearer ") {
			token = strings.TrimSpace(token[len("bearer "):])
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenExpired)
			return
		}

		claims, err := jwtlib.Verify(jwtOpts, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenExpired)
			return
		}

		hash := jwtlib.HashToken(token)
		if opts.CheckSession {
			_, ok, err := storage.LookupSession(c.Request.Context(), hash)
			if err != nil || !ok {
				// revoked or expired server side
				c.AbortWithStatusJSON(http.StatusUnauthorized, errs.ErrTokenExpired)
				return
			}
			// sliding expiration on activity; a failed renew is harmless,
			// the record just keeps its old TTL
			_ = storage.TouchSession(c.Request.Context(), hash, jwtOpts.TTL)
		}

		c.Set(CtxUserIDKey, claims.UserID())
		c.Set(CtxTokenHashKey, hash)
		c.Next()
	}
}

// UserID reads the authenticated user from the gin context.
func UserID(c *gin.Context) string {
	v, _ := c.Get(CtxUserIDKey)
	s, _ := v.(string)
	return s
}

// TokenHash reads the session token hash from the gin context.
func TokenHash(c *gin.Context) string {
	v, _ := c.Get(CtxTokenHashKey)
	s, _ := v.(string)
	return s
}
