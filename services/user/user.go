package user

import (
	"context"
	"errors"
	"strings"
	"time"

	userRepo "slotswapper/database/repository/user"
	"slotswapper/models"
	"slotswapper/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of issued bearer tokens.
const tokenTTL = 72 * time.Hour

// DefaultUserService implements UserService over the user repository and
// the redis auth-token cache.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates a new user and issues a token.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, NewInvalidArgumentError("name and email are required")
	}
	if len(password) < 8 {
		return nil, NewInvalidArgumentError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(usr); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, NewDuplicateEmailError()
		}
		return nil, err
	}

	utils.GetLogger().Info("user registered", zap.String("userId", usr.ID))
	return s.issueToken(ctx, usr)
}

// Authenticate verifies credentials and issues a token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, NewInvalidCredentialsError()
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, NewInvalidCredentialsError()
	}

	return s.issueToken(ctx, usr)
}

// GetProfile returns the user record for the given id.
func (s *DefaultUserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, NewNotFoundError("user not found")
		}
		return nil, err
	}
	return usr, nil
}

// RevokeToken drops the cached token hash so the current token stops
// authenticating.
func (s *DefaultUserService) RevokeToken(ctx context.Context, userID string) error {
	return utils.DeleteAuthTokenHash(ctx, userID)
}

// issueToken signs a JWT and caches its hash for middleware validation.
func (s *DefaultUserService) issueToken(ctx context.Context, usr *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return nil, err
	}
	if err := utils.StoreAuthTokenHash(ctx, usr.ID, utils.HashToken(token), tokenTTL); err != nil {
		utils.GetLogger().Warn("failed to cache auth token", zap.Error(err))
	}
	return &AuthResult{User: usr, Token: token}, nil
}
