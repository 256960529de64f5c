package account

import (
	"career-advisor/internal/apperr"
	"career-advisor/internal/identity"
	"career-advisor/internal/store"
	"career-advisor/internal/testutil"
	"context"
	"errors"
	"testing"
)

func TestRegister_Success(t *testing.T) {
	mockIdentity := &testutil.MockIdentityProvider{}
	mockStore := &testutil.MockStore{}
	service := NewAccountService(mockIdentity, mockStore)

	mockIdentity.GetUserByEmailFunc = func(ctx context.Context, email string) (*identity.User, error) {
		return nil, identity.ErrUserNotFound
	}

	var createdEmail, createdName string
	mockIdentity.CreateUserFunc = func(ctx context.Context, email, password, displayName string) (*identity.User, error) {
		createdEmail = email
		createdName = displayName
		return &identity.User{UID: "uid-123", Email: email, DisplayName: displayName}, nil
	}

	var profileUID string
	mockStore.CreateProfileFunc = func(ctx context.Context, uid, email, username string) (*store.Profile, error) {
		profileUID = uid
		return &store.Profile{Email: email, Username: username}, nil
	}

	result, err := service.Register(context.Background(), RegisterRequest{
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Username:        "Ann",
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.UID != "uid-123" {
		t.Errorf("Expected UID 'uid-123', got '%s'", result.UID)
	}
	if result.Message != "Account created successfully!" {
		t.Errorf("Unexpected message: %s", result.Message)
	}
	if createdEmail != "a@x.com" || createdName != "Ann" {
		t.Errorf("CreateUser called with (%s, %s)", createdEmail, createdName)
	}
	if profileUID != "uid-123" {
		t.Errorf("Profile keyed by '%s', want 'uid-123'", profileUID)
	}
}

func TestRegister_PasswordMismatch(t *testing.T) {
	mockIdentity := &testutil.MockIdentityProvider{}
	mockStore := &testutil.MockStore{}
	service := NewAccountService(mockIdentity, mockStore)

	created := false
	mockIdentity.CreateUserFunc = func(ctx context.Context, email, password, displayName string) (*identity.User, error) {
		created = true
		return &identity.User{UID: "uid-123"}, nil
	}

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
		Username:        "Ann",
	})

	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("Expected validation error, got: %v", err)
	}
	if created {
		t.Error("No identity-provider account may be created on password mismatch")
	}
}

func TestRegister_EmptyFields(t *testing.T) {
	service := NewAccountService(&testutil.MockIdentityProvider{}, &testutil.MockStore{})

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Username:        "",
	})

	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("Expected validation error, got: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	mockIdentity := &testutil.MockIdentityProvider{}
	mockStore := &testutil.MockStore{}
	service := NewAccountService(mockIdentity, mockStore)

	mockIdentity.GetUserByEmailFunc = func(ctx context.Context, email string) (*identity.User, error) {
		return &identity.User{UID: "existing", Email: email}, nil
	}

	profileWritten := false
	mockStore.CreateProfileFunc = func(ctx context.Context, uid, email, username string) (*store.Profile, error) {
		profileWritten = true
		return nil, nil
	}

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Username:        "Ann",
	})

	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("Expected conflict error, got: %v", err)
	}
	if profileWritten {
		t.Error("No duplicate profile document may be written for an existing email")
	}
}

func TestRegister_ProviderRace(t *testing.T) {
	// The email appears free at the lookup but the provider rejects the
	// create; the conflict must still surface as a conflict
	mockIdentity := &testutil.MockIdentityProvider{}
	service := NewAccountService(mockIdentity, &testutil.MockStore{})

	mockIdentity.GetUserByEmailFunc = func(ctx context.Context, email string) (*identity.User, error) {
		return nil, identity.ErrUserNotFound
	}
	mockIdentity.CreateUserFunc = func(ctx context.Context, email, password, displayName string) (*identity.User, error) {
		return nil, identity.ErrEmailExists
	}

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Username:        "Ann",
	})

	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("Expected conflict error, got: %v", err)
	}
}

func TestRegister_IdentityProviderDown(t *testing.T) {
	mockIdentity := &testutil.MockIdentityProvider{}
	service := NewAccountService(mockIdentity, &testutil.MockStore{})

	mockIdentity.GetUserByEmailFunc = func(ctx context.Context, email string) (*identity.User, error) {
		return nil, errors.New("connection refused")
	}

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Username:        "Ann",
	})

	if !apperr.Is(err, apperr.KindUpstream) {
		t.Fatalf("Expected upstream error, got: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	mockIdentity := &testutil.MockIdentityProvider{}
	service := NewAccountService(mockIdentity, &testutil.MockStore{})

	mockIdentity.VerifyPasswordFunc = func(ctx context.Context, email, password string) (*identity.User, error) {
		if email != "a@x.com" || password != "secret1" {
			t.Errorf("VerifyPassword called with (%s, %s)", email, password)
		}
		return &identity.User{UID: "uid-123", Email: email, DisplayName: "Ann"}, nil
	}

	result, err := service.Login(context.Background(), "a@x.com", "secret1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.UID != "uid-123" {
		t.Errorf("Expected provider-resolved UID 'uid-123', got '%s'", result.UID)
	}
	if result.Username != "Ann" {
		t.Errorf("Expected username 'Ann', got '%s'", result.Username)
	}
}

func TestLogin_DisplayNameFallback(t *testing.T) {
	mockIdentity := &testutil.MockIdentityProvider{}
	service := NewAccountService(mockIdentity, &testutil.MockStore{})

	mockIdentity.VerifyPasswordFunc = func(ctx context.Context, email, password string) (*identity.User, error) {
		return &identity.User{UID: "uid-123", Email: email}, nil
	}

	result, err := service.Login(context.Background(), "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result.Username != "ann" {
		t.Errorf("Expected fallback username 'ann', got '%s'", result.Username)
	}
}

func TestLogin_EmptyFields(t *testing.T) {
	service := NewAccountService(&testutil.MockIdentityProvider{}, &testutil.MockStore{})

	_, err := service.Login(context.Background(), "", "secret1")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("Expected validation error, got: %v", err)
	}

	_, err = service.Login(context.Background(), "a@x.com", "")
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("Expected validation error, got: %v", err)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	mockIdentity := &testutil.MockIdentityProvider{}
	service := NewAccountService(mockIdentity, &testutil.MockStore{})

	mockIdentity.VerifyPasswordFunc = func(ctx context.Context, email, password string) (*identity.User, error) {
		return nil, apperr.Auth("INVALID_PASSWORD")
	}

	_, err := service.Login(context.Background(), "a@x.com", "wrong")
	if !apperr.Is(err, apperr.KindAuth) {
		t.Fatalf("Expected auth error, got: %v", err)
	}
	if apperr.UserMessage(err) != "INVALID_PASSWORD" {
		t.Errorf("Expected the provider's message to be carried, got %q", apperr.UserMessage(err))
	}
}
