package identity

import (
	"bytes"
	"career-advisor/internal/apperr"
	"career-advisor/internal/config"
	"career-advisor/internal/logger"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const signInURL = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// Ensure FirebaseProvider implements the Provider interface
var _ Provider = (*FirebaseProvider)(nil)

// FirebaseProvider implements Provider on top of the Firebase Admin SDK
// (account management) and the Identity Toolkit REST API (password
// verification, which the Admin SDK does not expose).
type FirebaseProvider struct {
	auth       *fbauth.Client
	apiKey     string
	httpClient *http.Client
	endpoint   string
}

// NewFirebaseProvider initializes the Admin SDK from the service-account
// credential file and returns a ready provider
func NewFirebaseProvider(ctx context.Context, cfg config.FirebaseConfig) (*FirebaseProvider, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase auth client: %w", err)
	}

	logger.Log.WithField("project_id", cfg.ProjectID).Info("Connected to Firebase identity provider")

	return &FirebaseProvider{
		auth:       authClient,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{},
		endpoint:   signInURL,
	}, nil
}

// CreateUser provisions a new Firebase account
func (p *FirebaseProvider) CreateUser(ctx context.Context, email, password, displayName string) (*User, error) {
	params := (&fbauth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)

	record, err := p.auth.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"uid": record.UID, "email": email}).Info("Created identity-provider account")

	return &User{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}

// GetUserByEmail resolves an account by email via the Admin SDK
func (p *FirebaseProvider) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	record, err := p.auth.GetUserByEmail(ctx, email)
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &User{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
	}, nil
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken     string `json:"idToken"`
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// VerifyPassword submits credentials to the Identity Toolkit
// signInWithPassword endpoint. The password never touches local storage.
func (p *FirebaseProvider) VerifyPassword(ctx context.Context, email, password string) (*User, error) {
	if p.apiKey == "" {
		return nil, apperr.Upstream("Identity service not configured", fmt.Errorf("FIREBASE_API_KEY not configured"))
	}

	reqBody := signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", p.endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, apperr.Upstream("Identity service unavailable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstream("Identity service unavailable", err)
	}

	var signIn signInResponse
	if err := json.Unmarshal(body, &signIn); err != nil {
		return nil, apperr.Upstream("Identity service unavailable", fmt.Errorf("error decoding response: %w", err))
	}

	if signIn.IDToken == "" {
		message := "Login failed"
		if signIn.Error != nil && signIn.Error.Message != "" {
			message = signIn.Error.Message
		}
		logger.Log.WithFields(logrus.Fields{"email": email, "status_code": resp.StatusCode}).Info("Password verification rejected")
		return nil, apperr.Auth(message)
	}

	logger.Log.WithField("uid", signIn.LocalID).Debug("Password verified by identity provider")

	return &User{
		UID:         signIn.LocalID,
		Email:       signIn.Email,
		DisplayName: signIn.DisplayName,
	}, nil
}
