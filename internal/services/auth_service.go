package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/medimatch/medimatch-backend/internal/common"
	"github.com/medimatch/medimatch-backend/internal/dtos"
	"github.com/medimatch/medimatch-backend/internal/models"
	"github.com/medimatch/medimatch-backend/internal/repository"
	"github.com/medimatch/medimatch-backend/internal/security"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *security.TokenProvider
}

func NewAuthService(users repository.UserRepository, tokens *security.TokenProvider) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequest) (*dtos.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleJobseeker
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	// The unique index on email turns a duplicate registration into a
	// conflict even when two requests race.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to sign token", err)
	}
	return &dtos.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeValidation, "Invalid credentials", nil)
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, common.NewError(common.CodeValidation, "Invalid credentials", nil)
	}

	token, err := s.tokens.Sign(user.ID, user.Role)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to sign token", err)
	}
	return &dtos.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req dtos.UpdateProfileRequest) (*dtos.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
			return nil, common.NewError(common.CodeConflict, "Email already in use", nil)
		} else if !common.Is(err, common.CodeNotFound) {
			return nil, err
		}
	}

	if req.NewPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
			return nil, common.NewError(common.CodeValidation, "Current password is incorrect", nil)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
		}
		user.PasswordHash = string(hash)
	}

	user.Name = req.Name
	user.Email = req.Email
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func toUserResponse(user *models.User) dtos.UserResponse {
	return dtos.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
