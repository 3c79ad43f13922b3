package middleware

import (
	"net/http"
	"strings"

	"news_api/internal/model"
	"news_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const IdentityKey = "authIdentity"

// extractBearerToken pulls the token out of "Authorization: Bearer <token>".
// Returns "" when the header is absent or malformed.
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// JWTAuthMiddleware rejects requests without a valid bearer token.
// A missing token is 401; a present-but-invalid token is 403.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.APIResponse{
				Success: false,
				Message: "Access token is required",
				Error:   model.ErrCodeUnauthorized,
			})
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, model.APIResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   model.ErrCodeForbidden,
			})
			return
		}

		c.Set(IdentityKey, model.UserIdentity{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		})

		c.Next()
	}
}

// OptionalAuthMiddleware attaches an identity when a valid bearer token is
// present. A missing or bad token never blocks the request.
func OptionalAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractBearerToken(c); tokenString != "" {
			if claims, err := jwtUtil.ValidateToken(tokenString); err == nil {
				c.Set(IdentityKey, model.UserIdentity{
					ID:    claims.UserID,
					Email: claims.Email,
					Role:  claims.Role,
				})
			}
		}
		c.Next()
	}
}

// GetIdentity returns the identity attached by the auth middleware, if any
func GetIdentity(c *gin.Context) (model.UserIdentity, bool) {
	val, exists := c.Get(IdentityKey)
	if !exists {
		return model.UserIdentity{}, false
	}
	identity, ok := val.(model.UserIdentity)
	return identity, ok
}
