package service

import (
	"context"
	"fmt"

	"userbase/internal/auth"
	apperrors "userbase/internal/errors"
	"userbase/internal/repository"
)

// AuthService handles login: credential verification and token issuance.
type AuthService interface {
	Login(ctx context.Context, name, password string) (accessToken string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     *auth.PasswordHasher
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

// Login verifies the password against the stored hash and returns a signed
// access token. Unknown names and wrong passwords are indistinguishable to
// the caller: both are ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, name, password string) (string, error) {
	user, err := s.userRepo.FindByName(ctx, name)
	if err != nil {
		return "", fmt.Errorf("login lookup: %w", err)
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Issue(user.Name)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
