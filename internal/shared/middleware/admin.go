package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StaffMiddleware gates routes reserved for administrative identities.
// Runs after AuthMiddleware, which supplies the staff flag.
func StaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isStaff, exists := c.Get(CtxIsStaff)
		if !exists || isStaff != true {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "staff access required",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
