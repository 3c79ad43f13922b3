package handler

import (
	"errors"
	"net/http"

	"news_api/internal/middleware"
	"news_api/internal/model"
	"news_api/internal/service"
	"news_api/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// authError maps a domain error to its HTTP status and stable error code.
// Returns false when the error is not a known domain failure.
func authError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest, model.ErrCodeInvalidEmail, true
	case errors.Is(err, service.ErrInvalidPassword):
		return http.StatusBadRequest, model.ErrCodeInvalidPassword, true
	case errors.Is(err, service.ErrInvalidFullName):
		return http.StatusBadRequest, model.ErrCodeValidation, true
	case errors.Is(err, service.ErrEmailExists):
		return http.StatusBadRequest, model.ErrCodeEmailExists, true
	case errors.Is(err, service.ErrInvalidOtp):
		return http.StatusBadRequest, model.ErrCodeInvalidOtp, true
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, model.ErrCodeInvalidCreds, true
	case errors.Is(err, service.ErrAccountDisabled):
		return http.StatusUnauthorized, model.ErrCodeAccountDisabled, true
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, model.ErrCodeUserNotFound, true
	}
	return 0, "", false
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	if status, code, ok := authError(err); ok {
		respondError(c, status, err.Error(), code)
		return
	}
	respondInternal(c, err)
}

// SendOtp issues a registration code for a not-yet-registered email
func (h *AuthHandler) SendOtp(c *gin.Context) {
	var req model.SendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email is required", model.ErrCodeMissingFields)
		return
	}

	validity, err := h.service.SendOtp(c.Request.Context(), req.Email)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "OTP code sent to your email", gin.H{
		"email":     req.Email,
		"expiresIn": int(validity.Seconds()),
	})
}

// VerifyOtp redeems a code and creates the account
func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req model.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields: "+err.Error(), model.ErrCodeMissingFields)
		return
	}

	user, token, err := h.service.VerifyOtp(c.Request.Context(), req)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Registration successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// Register creates an account directly, without OTP verification
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing required fields: "+err.Error(), model.ErrCodeMissingFields)
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Registration successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// Login authenticates by email and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Email and password are required", model.ErrCodeMissingFields)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

// GetProfile returns the caller's own user record
func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authentication required", model.ErrCodeUnauthorized)
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), identity.ID)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Profile retrieved successfully", gin.H{"user": user})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, jwtUtil *utils.JWTUtil) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/send-otp", h.SendOtp)
		authGroup.POST("/verify-otp", h.VerifyOtp)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)
		authGroup.GET("/profile", middleware.JWTAuthMiddleware(jwtUtil), h.GetProfile)
	}
}
