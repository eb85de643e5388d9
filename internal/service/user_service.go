package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"lexdesk/internal/model"
	"lexdesk/internal/permission"
	"lexdesk/internal/repository"
)

type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List() ([]model.User, error) {
	return s.users.List()
}

// SetRole changes a user's role. Callers gate this behind the
// users.manage permission; the role itself must exist in the table.
func (s *UserService) SetRole(userID uint, role string) (*model.User, error) {
	if !permission.ValidRole(role) {
		return nil, fmt.Errorf("%w: unknown role", ErrInvalid)
	}
	user, err := s.users.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetStatus(userID uint, status string) (*model.User, error) {
	switch status {
	case model.UserStatusActive, model.UserStatusInactive, model.UserStatusPending:
	default:
		return nil, fmt.Errorf("%w: unknown status", ErrInvalid)
	}
	user, err := s.users.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
