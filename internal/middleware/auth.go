package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jdbernardo16/project-manager/internal/model"
	"github.com/jdbernardo16/project-manager/pkg/jwt"
	"gorm.io/gorm"
)

func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			if tokenStr == authHeader {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 40101, "message": "malformed token", "data": nil})
				return
			}
		}

		if tokenStr == "" {
			tokenStr = c.Query("token")
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 40101, "message": "missing token", "data": nil})
			return
		}

		claims, err := jwt.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 40102, "message": "token expired, sign in again", "data": nil})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 40103, "message": "invalid token", "data": nil})
			}
			return
		}

		var user model.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 40103, "message": "user not found", "data": nil})
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Set("user", &user)
		c.Next()
	}
}

func GetCurrentUser(c *gin.Context) *model.User {
	u, exists := c.Get("user")
	if !exists {
		return nil
	}
	return u.(*model.User)
}

func GetCurrentUserID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	return id.(uint)
}

func GetCurrentUserRole(c *gin.Context) string {
	role, _ := c.Get("userRole")
	return role.(string)
}
