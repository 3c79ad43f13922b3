package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"news_api/internal/model"
	"news_api/internal/repository"
	"news_api/internal/utils"
)

var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPassword    = errors.New("password must be at least 8 characters with an upper-case letter, a lower-case letter and a digit")
	ErrInvalidFullName    = errors.New("full name must be between 2 and 100 characters")
	ErrEmailExists        = errors.New("email is already in use")
	ErrInvalidOtp         = errors.New("otp code is invalid or expired")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService provides authentication related services
type AuthService interface {
	SendOtp(ctx context.Context, email string) (time.Duration, error)
	VerifyOtp(ctx context.Context, req model.VerifyOtpRequest) (*model.User, string, error)
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
	GetProfile(ctx context.Context, userID int) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	otpRepo  repository.OtpRepository
	mailer   Mailer
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, otpRepo repository.OtpRepository, mailer Mailer, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		mailer:   mailer,
		jwtUtil:  jwtUtil,
	}
}

// normalizeEmail lowercases and trims so email matching is case-insensitive
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SendOtp issues a registration code for an email that is not yet in use.
// Returns the validity window of the issued code.
func (s *authService) SendOtp(ctx context.Context, email string) (time.Duration, error) {
	email = normalizeEmail(email)
	if !utils.IsEmailValid(email) {
		return 0, ErrInvalidEmail
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return 0, ErrEmailExists
	}

	// Cleanup only; expired codes can never match anyway
	if err := s.otpRepo.DeleteExpired(ctx, email); err != nil {
		log.Printf("WARN: failed to clean up expired otp codes for %s: %v", email, err)
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return 0, fmt.Errorf("failed to generate otp code: %w", err)
	}

	otp := &model.OtpCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(model.OtpValidityWindow),
		CreatedAt: time.Now(),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return 0, fmt.Errorf("failed to store otp code: %w", err)
	}

	if err := s.mailer.SendOtpEmail(ctx, email, code, model.OtpValidityWindow); err != nil {
		return 0, fmt.Errorf("failed to deliver otp code: %w", err)
	}

	return model.OtpValidityWindow, nil
}

// VerifyOtp redeems a code and creates the user account
func (s *authService) VerifyOtp(ctx context.Context, req model.VerifyOtpRequest) (*model.User, string, error) {
	email := normalizeEmail(req.Email)
	if err := validateRegistration(email, req.Password, req.FullName); err != nil {
		return nil, "", err
	}

	// The email may have been registered between send-otp and now
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrEmailExists
	}

	otp, err := s.otpRepo.Consume(ctx, email, req.Code)
	if err != nil {
		return nil, "", fmt.Errorf("failed to consume otp code: %w", err)
	}
	if otp == nil {
		return nil, "", ErrInvalidOtp
	}

	return s.createUser(ctx, email, req.Password, req.FullName, req.Phone)
}

// Register creates a new user account without OTP verification
func (s *authService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, error) {
	email := normalizeEmail(req.Email)
	if err := validateRegistration(email, req.Password, req.FullName); err != nil {
		return nil, "", err
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrEmailExists
	}

	return s.createUser(ctx, email, req.Password, req.FullName, req.Phone)
}

func validateRegistration(email, password, fullName string) error {
	if !utils.IsEmailValid(email) {
		return ErrInvalidEmail
	}
	if !utils.IsPasswordValid(password) {
		return ErrInvalidPassword
	}
	if !utils.IsFullNameValid(fullName) {
		return ErrInvalidFullName
	}
	return nil
}

func (s *authService) createUser(ctx context.Context, email, password, fullName string, phone *string) (*model.User, string, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &model.User{
		Email:        email,
		Phone:        phone,
		PasswordHash: hashedPassword,
		FullName:     fullName,
		Role:         model.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("ERROR: User %s (ID: %d) created, but failed to generate token: %v", user.Email, user.ID, err)
		return user, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user and returns a JWT token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = normalizeEmail(email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // User not found
	}

	if !user.IsActive {
		return nil, "", ErrAccountDisabled
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials // Password mismatch
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

// GetProfile returns the caller's own user record
func (s *authService) GetProfile(ctx context.Context, userID int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
