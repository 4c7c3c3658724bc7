package middleware

import (
	"net/http"
	"strings"

	"github.com/slicycode/file-drive/utils"

	"github.com/gin-gonic/gin"
)

// ContextTokenIdentifier is the gin context key holding the caller's stable
// identity token identifier. Empty means unauthenticated.
const ContextTokenIdentifier = "token_identifier"

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// AuthMiddleware rejects requests without a valid identity token. Used on
// mutating routes, where an unauthenticated caller is an error.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c)
		if !ok {
			utils.Error(c, http.StatusUnauthorized, "missing identity token")
			c.Abort()
			return
		}

		claims, err := utils.VerifyIdentityToken(raw)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "invalid or expired identity token")
			c.Abort()
			return
		}

		c.Set(ContextTokenIdentifier, claims.TokenIdentifier)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the identity when present but lets the
// request through either way. Read routes degrade to empty results for
// unauthenticated callers instead of failing.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, ok := bearerToken(c); ok {
			if claims, err := utils.VerifyIdentityToken(raw); err == nil {
				c.Set(ContextTokenIdentifier, claims.TokenIdentifier)
			}
		}
		c.Next()
	}
}

// SyncSecretMiddleware guards the internal user-sync endpoints written to
// by the external org-membership sync process.
func SyncSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" || c.GetHeader("X-Sync-Secret") != secret {
			utils.Error(c, http.StatusUnauthorized, "invalid sync secret")
			c.Abort()
			return
		}
		c.Next()
	}
}
