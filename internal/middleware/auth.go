package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kunci-cimahi/service-booking/internal/auth"
	"github.com/kunci-cimahi/service-booking/internal/response"
)

const (
	contextKeySubject = "auth_subject"
	contextKeyRole    = "auth_role"
)

// AuthMiddleware validates the Bearer token and stores its claims in the
// request context. Requests without a valid token are rejected.
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextKeySubject, claims.Subject)
		c.Set(contextKeyRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects requests whose token does not carry the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := GetRole(c)
		if !ok || got != role {
			response.Unauthorized(c, "insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetSubject returns the authenticated subject stored by AuthMiddleware.
func GetSubject(c *gin.Context) (string, bool) {
	v, ok := c.Get(contextKeySubject)
	if !ok {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}

// GetRole returns the authenticated role stored by AuthMiddleware.
func GetRole(c *gin.Context) (string, bool) {
	v, ok := c.Get(contextKeyRole)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
