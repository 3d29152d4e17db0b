package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"reviews-backend/pkg/jwt"
)

// Context keys set by AuthMiddleware.
const (
	CtxIdentityID = "identity_id"
	CtxUsername   = "username"
	CtxIsStaff    = "is_staff"
)

// AuthMiddleware validates the bearer token and records the caller's
// identity in the gin context. Requests without a valid token are rejected
// with 401 before reaching any handler.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		identityID, err := uuid.Parse(claims.IdentityID)
		if err != nil {
			abortUnauthorized(c, "invalid identity in token")
			return
		}

		c.Set(CtxIdentityID, identityID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxIsStaff, claims.IsStaff)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
	c.Abort()
}
