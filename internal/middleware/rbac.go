package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/model"
)

func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Admin bypasses all role checks
		if GetCurrentUserRole(c) == model.RoleAdmin {
			c.Next()
			return
		}
		userRole := GetCurrentUserRole(c)
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"code":    40301,
			"message": "insufficient permissions",
			"data":    nil,
		})
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUserRole(c) != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"code":    40301,
				"message": "insufficient permissions",
				"data":    nil,
			})
			return
		}
		c.Next()
	}
}
