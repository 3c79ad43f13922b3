package service

import (
	"context"
	"errors"
	"fmt"

	"news_api/internal/model"
	"news_api/internal/repository"
)

var (
	ErrAlreadyAdmin     = errors.New("user is already an admin")
	ErrCannotDeleteSelf = errors.New("cannot delete your own account")
)

// UserService provides admin user management
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GrantAdmin(ctx context.Context, id int) (*model.User, error)
	DeleteUser(ctx context.Context, targetID, callerID int) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// ListUsers returns all users; password hashes never serialize
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GrantAdmin promotes a user to ADMIN. The reverse transition is not exposed.
func (s *userService) GrantAdmin(ctx context.Context, id int) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for role grant: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == model.RoleAdmin {
		return nil, ErrAlreadyAdmin
	}

	if err := s.userRepo.UpdateRole(ctx, id, model.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to update user role: %w", err)
	}

	user.Role = model.RoleAdmin
	return user, nil
}

// DeleteUser removes another user's account. Admins cannot delete themselves.
func (s *userService) DeleteUser(ctx context.Context, targetID, callerID int) (*model.User, error) {
	if targetID == callerID {
		return nil, ErrCannotDeleteSelf
	}

	user, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for deletion: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return user, nil
}
