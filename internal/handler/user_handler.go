package handler

import (
	"errors"
	"net/http"
	"strconv"

	"news_api/internal/middleware"
	"news_api/internal/model"
	"news_api/internal/service"
	"news_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler handles admin user management requests
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// ListUsers returns all users (admin only)
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		respondInternal(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, "Users retrieved successfully", gin.H{"users": users})
}

// GetClaimsProfile echoes the identity claims carried by the caller's token
func (h *UserHandler) GetClaimsProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required", model.ErrCodeUnauthorized)
		return
	}
	respondSuccess(c, http.StatusOK, "Profile retrieved successfully", identity)
}

// GrantAdmin promotes a user to ADMIN (admin only)
func (h *UserHandler) GrantAdmin(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID", model.ErrCodeValidation)
		return
	}

	user, err := h.service.GrantAdmin(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, err.Error(), model.ErrCodeUserNotFound)
		case errors.Is(err, service.ErrAlreadyAdmin):
			respondError(c, http.StatusBadRequest, err.Error(), model.ErrCodeAlreadyAdmin)
		default:
			respondInternal(c, err)
		}
		return
	}

	respondSuccess(c, http.StatusOK, "Role updated successfully", gin.H{
		"user": gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// DeleteUser removes another user (admin only, not self)
func (h *UserHandler) DeleteUser(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required", model.ErrCodeUnauthorized)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID", model.ErrCodeValidation)
		return
	}

	user, err := h.service.DeleteUser(c.Request.Context(), id, identity.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCannotDeleteSelf):
			respondError(c, http.StatusBadRequest, err.Error(), model.ErrCodeCannotDeleteSelf)
		case errors.Is(err, service.ErrUserNotFound):
			respondError(c, http.StatusNotFound, err.Error(), model.ErrCodeUserNotFound)
		default:
			respondInternal(c, err)
		}
		return
	}

	respondSuccess(c, http.StatusOK, "User deleted successfully", gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}

// RegisterUserRoutes registers user management routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, jwtUtil *utils.JWTUtil) {
	userGroup := rg.Group("/users", middleware.JWTAuthMiddleware(jwtUtil))
	{
		userGroup.GET("", middleware.AdminMiddleware(), h.ListUsers)
		userGroup.GET("/profile", middleware.UserMiddleware(), h.GetClaimsProfile)
		userGroup.PUT("/:id/role", middleware.AdminMiddleware(), h.GrantAdmin)
		userGroup.DELETE("/:id", middleware.AdminMiddleware(), h.DeleteUser)
	}
}
