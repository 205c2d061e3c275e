package middleware

import (
	"net/http"
	"strings"

	"litoral-shop/models"
	"litoral-shop/utils"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization header required",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenParts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("can_production", claims.CanAccessProduction)
		c.Set("can_admin", claims.CanAccessAdmin)
		c.Next()
	}
}

// ProductionMiddleware gates the staff panel. A missing flag degrades to
// a denied notice, never an error.
func ProductionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("can_production") {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Production access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminMiddleware gates the back-office panel.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("can_admin") {
			c.JSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
