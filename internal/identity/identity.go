package identity

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when no account exists for the given email
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when an account already exists for the given email
var ErrEmailExists = errors.New("email already in use")

// User is the provider's view of an account
type User struct {
	UID         string
	Email       string
	DisplayName string
}

// Provider defines the interface to the external identity service.
// Passwords are only ever submitted to the provider, never stored or
// compared locally.
type Provider interface {
	// CreateUser provisions a new account and returns its stable UID
	CreateUser(ctx context.Context, email, password, displayName string) (*User, error)

	// GetUserByEmail resolves an account by email, ErrUserNotFound if absent
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// VerifyPassword submits credentials to the provider's password
	// verification endpoint and resolves the account on success
	VerifyPassword(ctx context.Context, email, password string) (*User, error)
}
