// Package auth handles registration, login and token refresh.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/vetify/booking-api/internal/model"
	"github.com/vetify/booking-api/internal/repository"
	"github.com/vetify/booking-api/pkg/auth"
	apperrors "github.com/vetify/booking-api/pkg/errors"
	"github.com/vetify/booking-api/pkg/security"
)

type Service struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
	jwt    auth.JWTService
}

func NewService(users repository.UserRepository, hasher security.PasswordHasher, jwt auth.JWTService) *Service {
	return &Service{users: users, hasher: hasher, jwt: jwt}
}

// Register creates a regular account. Superuser accounts are never
// created through the API.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if _, err := s.users.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.Validation("username already taken", nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an access/refresh token pair.
// Bad username, bad password and a deactivated account all produce the
// same unauthorized error.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.Unauthorized(nil)
	}
	if !user.IsActive {
		return nil, apperrors.Unauthorized(nil)
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperrors.Unauthorized(nil)
	}
	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The user is
// reloaded so a deactivation since login takes effect here.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*model.TokenResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil || !user.IsActive {
		return nil, apperrors.Unauthorized(nil)
	}
	return s.issueTokens(user)
}

// UserFromToken resolves an access token to its current user record.
func (s *Service) UserFromToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, apperrors.Unauthorized(nil)
	}
	return user, nil
}

func (s *Service) issueTokens(user *model.User) (*model.TokenResponse, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.Username, user.IsSuperuser)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(user.ID, user.Username, user.IsSuperuser)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &model.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
