package handlers

import (
	"career-advisor/internal/auth"
	"career-advisor/internal/logger"
	"career-advisor/internal/service/account"
	"encoding/json"
	"net/http"
)

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Username        string `json:"username"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	UID      string `json:"uid"`
	Username string `json:"username"`
}

// AuthHandlers exposes registration and login over HTTP
type AuthHandlers struct {
	accounts *account.AccountService
	tokens   *auth.TokenManager
}

// NewAuthHandlers creates a new AuthHandlers
func NewAuthHandlers(accounts *account.AccountService, tokens *auth.TokenManager) *AuthHandlers {
	return &AuthHandlers{
		accounts: accounts,
		tokens:   tokens,
	}
}

// RegisterHandler creates a new user account
func (h *AuthHandlers) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.accounts.Register(r.Context(), account.RegisterRequest{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Username:        req.Username,
	})
	if err != nil {
		logger.Log.WithError(err).Info("Registration rejected")
		sendAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(RegisterResponse{
		Message: result.Message,
		UID:     result.UID,
	})
}

// LoginHandler verifies credentials against the identity provider and
// returns a session token
func (h *AuthHandlers) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		logger.Log.WithError(err).Info("Login rejected")
		sendAppError(w, err)
		return
	}

	token, err := h.tokens.Generate(result.UID, result.Email, result.Username)
	if err != nil {
		logger.Log.WithError(err).Error("Error generating token")
		sendError(w, http.StatusInternalServerError, "Error generating token", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{
		Token:    token,
		UID:      result.UID,
		Username: result.Username,
	})
}
