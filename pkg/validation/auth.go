package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// PasswordMinLength is the single password policy for every registration path.
// The product previously shipped with both 6 and 8 in different builds; 6 is
// the chosen constant.
const PasswordMinLength = 6

// AuthRequestValidator validates authentication-related requests
type AuthRequestValidator struct{}

// NewAuthRequestValidator creates a new AuthRequestValidator
func NewAuthRequestValidator() *AuthRequestValidator {
	return &AuthRequestValidator{}
}

// ValidateUsername validates a display username
func (v *AuthRequestValidator) ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username cannot be empty")
	}

	if len(username) > 50 {
		return fmt.Errorf("username must be at most 50 characters long, got %d", len(username))
	}

	return nil
}

// ValidatePassword validates a password against the policy
func (v *AuthRequestValidator) ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	if len(password) < PasswordMinLength {
		return fmt.Errorf("password must be at least %d characters", PasswordMinLength)
	}

	if len(password) > 128 {
		return fmt.Errorf("password must be at most 128 characters long, got %d", len(password))
	}

	return nil
}

// ValidateEmail validates an email address (basic validation)
func (v *AuthRequestValidator) ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email cannot be empty")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return errors.New("invalid email format")
	}

	if len(email) > 255 {
		return fmt.Errorf("email must be at most 255 characters long, got %d", len(email))
	}

	return nil
}

// ValidateLoginRequest validates a login request
func (v *AuthRequestValidator) ValidateLoginRequest(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}

	return nil
}

// ValidateRegisterRequest validates a registration request
func (v *AuthRequestValidator) ValidateRegisterRequest(email, password, confirmPassword, username string) error {
	if email == "" || password == "" || confirmPassword == "" || username == "" {
		return errors.New("all fields are required")
	}

	if err := v.ValidateEmail(email); err != nil {
		return err
	}

	if err := v.ValidateUsername(username); err != nil {
		return err
	}

	if err := v.ValidatePassword(password); err != nil {
		return err
	}

	if password != confirmPassword {
		return errors.New("passwords do not match")
	}

	return nil
}
