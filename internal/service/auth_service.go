package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fittrack/internal/auth"
	apperrors "fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/repository"
)

const bcryptCost = 10

// bcrypt keys on at most 72 password bytes; GenerateFromPassword rejects
// anything longer while CompareHashAndPassword silently ignores the tail.
// Truncating on both paths keeps the full accepted password range (up to
// 100 chars) registering and verifying consistently.
const maxPasswordBytes = 72

func passwordBytes(password string) []byte {
	if len(password) > maxPasswordBytes {
		return []byte(password[:maxPasswordBytes])
	}
	return []byte(password)
}

// AuthService handles registration, login and token lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Register creates a new user with a hashed password. Username and email
// must both be unique; the pre-checks give a precise conflict code and the
// unique indexes catch any concurrent registration racing past them.
func (s *authService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(passwordBytes(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race; figure out which constraint fired.
			if _, lookupErr := s.userRepo.FindByUsername(ctx, username); lookupErr == nil {
				return nil, apperrors.ErrUsernameTaken
			}
			return nil, apperrors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login authenticates a user and returns access and refresh tokens. A
// missing user and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordBytes(password)); err != nil {
		return "", "", apperrors.ErrInvalidCredentials
	}

	accessToken, err = s.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, auth.RefreshTokenExpiry); err != nil {
		return "", "", fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// Refresh validates a refresh token and returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return "", apperrors.ErrInvalidRefreshToken
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", apperrors.ErrInvalidRefreshToken
	}

	storedUserID, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil || storedUserID != userID {
		return "", apperrors.ErrInvalidRefreshToken
	}

	accessToken, err = s.jwtService.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return apperrors.ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, claims.ID)
}
