package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lexdesk/internal/permission"
	"lexdesk/internal/utils"
)

// Context keys set after a token verifies.
const (
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
	CtxUserRole  = "userRole"
)

// AuthCookie is the HTTP-only cookie set at login; the middleware
// accepts it interchangeably with a Bearer header.
const AuthCookie = "lexdesk_token"

func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookie, err := c.Cookie(AuthCookie); err == nil {
		return cookie
	}
	return ""
}

// RequireAuth rejects requests without a valid token. Used on every
// mutating route.
func RequireAuth(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		claims, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth verifies a token when present but lets anonymous
// requests through. Used on read routes.
func OptionalAuth(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := issuer.Parse(token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequirePermission layers a role check on top of RequireAuth.
func RequirePermission(perm string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		if !permission.HasPermission(role, perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			return
		}
		c.Next()
	}
}

func setClaims(c *gin.Context, claims *utils.Claims) {
	c.Set(CtxUserID, claims.UserID)
	c.Set(CtxUserEmail, claims.Email)
	c.Set(CtxUserRole, claims.Role)
}
