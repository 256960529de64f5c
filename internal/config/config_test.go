package config

import (
	"career-advisor/internal/apperr"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "test-groq-key")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("FIREBASE_API_KEY", "test-firebase-key")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.LLM.Model != "llama3-70b-8192" {
		t.Errorf("Expected default model llama3-70b-8192, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.7 {
		t.Errorf("Expected default temperature 0.7, got %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens != 1024 {
		t.Errorf("Expected default max tokens 1024, got %d", cfg.LLM.MaxTokens)
	}
	if !cfg.Chat.ReplayHistory {
		t.Error("Expected history replay enabled by default")
	}
	if cfg.Chat.ApologyMessage == "" {
		t.Error("Expected a default apology message")
	}
	if cfg.Auth.TokenExpiration != 24*time.Hour {
		t.Errorf("Expected default token expiration 24h, got %v", cfg.Auth.TokenExpiration)
	}
}

func TestLoadConfig_MissingGroqKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GROQ_API_KEY", "")

	_, err := LoadConfig()
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("Expected config error for missing GROQ_API_KEY, got: %v", err)
	}
}

func TestLoadConfig_MissingJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("Expected config error for missing JWT_SECRET, got: %v", err)
	}
}

func TestLoadConfig_ShortJWTSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "tooshort")

	_, err := LoadConfig()
	if !apperr.Is(err, apperr.KindConfig) {
		t.Fatalf("Expected config error for short JWT_SECRET, got: %v", err)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("GROQ_TEMPERATURE", "0.2")
	t.Setenv("GROQ_MAX_TOKENS", "256")
	t.Setenv("CHAT_REPLAY_HISTORY", "false")
	t.Setenv("JWT_TOKEN_EXPIRATION", "1h")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port override not applied, got %s", cfg.Server.Port)
	}
	if cfg.LLM.Model != "llama-3.1-8b-instant" {
		t.Errorf("Model override not applied, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.2 {
		t.Errorf("Temperature override not applied, got %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens != 256 {
		t.Errorf("Max tokens override not applied, got %d", cfg.LLM.MaxTokens)
	}
	if cfg.Chat.ReplayHistory {
		t.Error("Replay override not applied")
	}
	if cfg.Auth.TokenExpiration != time.Hour {
		t.Errorf("Expiration override not applied, got %v", cfg.Auth.TokenExpiration)
	}
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GROQ_TEMPERATURE", "not-a-float")
	t.Setenv("GROQ_MAX_TOKENS", "not-an-int")
	t.Setenv("CHAT_REPLAY_HISTORY", "not-a-bool")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.LLM.Temperature != 0.7 {
		t.Errorf("Expected default temperature on parse failure, got %f", cfg.LLM.Temperature)
	}
	if cfg.LLM.MaxTokens != 1024 {
		t.Errorf("Expected default max tokens on parse failure, got %d", cfg.LLM.MaxTokens)
	}
	if !cfg.Chat.ReplayHistory {
		t.Error("Expected default replay on parse failure")
	}
}
