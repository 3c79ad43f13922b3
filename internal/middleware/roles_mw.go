package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"news_api/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware creates a middleware to check for specific user roles.
// The rejection message names the required roles and the caller's actual
// role; roles are not secret, so this is a diagnostic, not a leak.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.APIResponse{
				Success: false,
				Message: "Authentication required",
				Error:   model.ErrCodeUnauthorized,
			})
			return
		}

		for _, allowedRole := range allowedRoles {
			if identity.Role == allowedRole {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, model.APIResponse{
			Success: false,
			Message: fmt.Sprintf("Access denied. Required roles: %s. Your role: %s",
				strings.Join(allowedRoles, ", "), identity.Role),
			Error:         model.ErrCodeForbidden,
			RequiredRoles: allowedRoles,
			UserRole:      identity.Role,
		})
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleAdmin)
}

// UserMiddleware allows both users and admins
func UserMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleUser, model.RoleAdmin)
}

// StrictlyUserMiddleware checks if the user has only the 'USER' role
func StrictlyUserMiddleware() gin.HandlerFunc {
	return RoleMiddleware(model.RoleUser)
}
