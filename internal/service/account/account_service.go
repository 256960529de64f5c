package account

import (
	"career-advisor/internal/apperr"
	"career-advisor/internal/identity"
	"career-advisor/internal/logger"
	"career-advisor/internal/store"
	"career-advisor/pkg/validation"
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
)

// RegisterRequest contains all the fields of a registration attempt
type RegisterRequest struct {
	Email           string
	Password        string
	ConfirmPassword string
	Username        string
}

// RegisterResult is returned on successful registration
type RegisterResult struct {
	UID     string
	Message string
}

// LoginResult is returned on successful login
type LoginResult struct {
	UID      string
	Username string
	Email    string
}

// AccountService handles registration and login against the external
// identity provider. No password is ever stored or compared locally.
type AccountService struct {
	identity  identity.Provider
	store     store.Store
	validator *validation.AuthRequestValidator
}

// NewAccountService creates a new AccountService
func NewAccountService(provider identity.Provider, st store.Store) *AccountService {
	return &AccountService{
		identity:  provider,
		store:     st,
		validator: validation.NewAuthRequestValidator(),
	}
}

// Register validates the request, provisions the identity-provider account
// and writes the profile document
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if err := s.validator.ValidateRegisterRequest(req.Email, req.Password, req.ConfirmPassword, req.Username); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	// Check for an existing account before provisioning one
	_, err := s.identity.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperr.Conflict("Email already in use")
	}
	if !errors.Is(err, identity.ErrUserNotFound) {
		return nil, apperr.Upstream("Account creation failed", err)
	}

	user, err := s.identity.CreateUser(ctx, req.Email, req.Password, req.Username)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			return nil, apperr.Conflict("Email already in use")
		}
		return nil, apperr.Upstream("Account creation failed", err)
	}

	if _, err := s.store.CreateProfile(ctx, user.UID, req.Email, req.Username); err != nil {
		return nil, apperr.Upstream("Account creation failed", err)
	}

	logger.Log.WithFields(logrus.Fields{"uid": user.UID, "username": req.Username}).Info("User registered")

	return &RegisterResult{
		UID:     user.UID,
		Message: "Account created successfully!",
	}, nil
}

// Login submits credentials to the identity provider and resolves the stable
// user identifier and display name
func (s *AccountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if err := s.validator.ValidateLoginRequest(email, password); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	user, err := s.identity.VerifyPassword(ctx, email, password)
	if err != nil {
		if apperr.Is(err, apperr.KindAuth) || apperr.Is(err, apperr.KindUpstream) {
			return nil, err
		}
		return nil, apperr.Upstream("Login failed", err)
	}

	username := user.DisplayName
	if username == "" {
		// Fall back to the local part of the email, matching what was
		// registered before display names were required
		username = strings.SplitN(email, "@", 2)[0]
	}

	logger.Log.WithField("uid", user.UID).Info("User logged in")

	return &LoginResult{
		UID:      user.UID,
		Username: username,
		Email:    user.Email,
	}, nil
}
