package service

import (
	"errors"

	"lexdesk/internal/dto"
	"lexdesk/internal/model"
	"lexdesk/internal/permission"
	"lexdesk/internal/repository"
	"lexdesk/internal/utils"
)

type AuthService interface {
	Register(req dto.RegisterReq) (uint, error)
	Login(req dto.LoginReq) (*dto.LoginResp, error)
	Session(userID uint) (*dto.SessionResp, error)
}

type authService struct {
	repo   repository.UserRepository
	issuer *utils.TokenIssuer
}

func NewAuthService(repo repository.UserRepository, issuer *utils.TokenIssuer) AuthService {
	return &authService{repo: repo, issuer: issuer}
}

func (s *authService) Register(req dto.RegisterReq) (uint, error) {
	if s.repo.IsUsernameExist(req.Username) {
		return 0, errors.New("username already taken")
	}
	if _, err := s.repo.GetByEmail(req.Email); err == nil {
		return 0, errors.New("email already registered")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return 0, errors.New("could not hash password")
	}

	// New accounts start as pending associates until an admin
	// activates them or changes the role.
	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Name:         req.Name,
		Role:         permission.RoleAssociate,
		Status:       model.UserStatusPending,
	}
	if err := s.repo.Create(user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *authService) Login(req dto.LoginReq) (*dto.LoginResp, error) {
	user, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, errors.New("invalid credentials")
	}
	if user.Status == model.UserStatusInactive {
		return nil, errors.New("account is inactive")
	}

	token, err := s.issuer.Generate(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.New("could not issue token")
	}

	return &dto.LoginResp{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (s *authService) Session(userID uint) (*dto.SessionResp, error) {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return &dto.SessionResp{
		UserID:      user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Name:        user.Name,
		Role:        user.Role,
		Permissions: permission.PermissionsFor(user.Role),
	}, nil
}
