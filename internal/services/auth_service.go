package services

import (
	"context"
	"fmt"
	"time"

	"github.com/6ogunt48/class-manager/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo    domain.UserRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	accessTTL   time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		accessTTL:   accessTTL,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, firstName, lastName, username, email, password string, role domain.Role) (*domain.User, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}
	if existing, err := s.userRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hashedPassword, err := s.passwordSvc.Hash(ctx, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login implements domain.AuthService. A missing user and a wrong password
// are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokenSvc.Generate(user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: accessToken,
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}

// ChangePassword implements domain.AuthService. The current credentials are
// verified exactly like a login before the new hash is written.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, username, password, newPassword string) error {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return domain.ErrInvalidCredentials
	}

	hashedPassword, err := s.passwordSvc.Hash(ctx, newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// Authenticate implements domain.AuthService. It resolves a session token to
// the caller's identity: verify the token, then look up the claimed subject.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenSvc.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, claims.Username)
	if err != nil {
		// Token subject no longer resolves, e.g. account removed after issue.
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}
