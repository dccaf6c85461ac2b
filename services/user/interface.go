package user

import (
	"context"

	"slotswapper/models"
)

// AuthResult is a successful signup or login: the user record plus a
// freshly issued bearer token.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService is the identity provider: registration, credential checks
// and token lifecycle. The swap engine never calls this; it only receives
// the user id the auth middleware resolved.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Authenticate(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	RevokeToken(ctx context.Context, userID string) error
}
