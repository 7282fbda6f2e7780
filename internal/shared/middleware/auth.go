package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edumgt/eden-api/internal/shared/response"
	"github.com/edumgt/eden-api/pkg/jwt"
)

// ContextSubjectKey holds the authenticated subject (the user's email).
const ContextSubjectKey = "subject"

// Auth verifies the Bearer token on protected routes and stores the
// asserted subject in the request context.
func Auth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextSubjectKey, claims.Subject)
		c.Next()
	}
}
