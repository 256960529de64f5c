package config

import (
	"career-advisor/internal/apperr"
	"career-advisor/internal/logger"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// AppConfig holds all application configuration
type AppConfig struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	LLM      LLMConfig
	Auth     AuthConfig
	Chat     ChatConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
}

// FirebaseConfig holds identity-provider and document-store configuration
type FirebaseConfig struct {
	APIKey          string
	ProjectID       string
	CredentialsFile string
}

// LLMConfig holds completion API configuration
type LLMConfig struct {
	GroqAPIKey     string
	Model          string
	Temperature    float64
	MaxTokens      int
	SystemPrompt   string
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// AuthConfig holds session token configuration
type AuthConfig struct {
	JWTSecret       []byte
	TokenExpiration time.Duration
}

// ChatConfig holds chat flow configuration
type ChatConfig struct {
	// ReplayHistory controls whether persisted turns are replayed into the
	// model context on each request, or only the system preamble is sent.
	ReplayHistory  bool
	ApologyMessage string
}

const defaultSystemPrompt = "You are a career advisor chatbot that provides detailed, personalized advice about career paths, job recommendations, and industry trends."

const defaultApologyMessage = "Sorry, I'm having trouble responding right now. Please try again later."

// LoadConfig loads and validates application configuration from environment
func LoadConfig() (*AppConfig, error) {
	config := &AppConfig{}

	config.Server = ServerConfig{
		Port: getEnvOrDefault("SERVER_PORT", "8080"),
	}

	firebaseAPIKey := os.Getenv("FIREBASE_API_KEY")
	if firebaseAPIKey == "" {
		logger.Log.Warn("FIREBASE_API_KEY environment variable not set, logins will fail")
	}

	config.Firebase = FirebaseConfig{
		APIKey:          firebaseAPIKey,
		ProjectID:       getEnvOrDefault("FIREBASE_PROJECT_ID", ""),
		CredentialsFile: getEnvOrDefault("FIREBASE_CREDENTIALS_FILE", "key.json"),
	}

	// The completion API key is the one secret the app cannot start without
	groqAPIKey := os.Getenv("GROQ_API_KEY")
	if groqAPIKey == "" {
		return nil, apperr.Config("GROQ_API_KEY environment variable must be set")
	}

	config.LLM = LLMConfig{
		GroqAPIKey:     groqAPIKey,
		Model:          getEnvOrDefault("GROQ_MODEL", "llama3-70b-8192"),
		Temperature:    getEnvAsFloat("GROQ_TEMPERATURE", 0.7),
		MaxTokens:      getEnvAsInt("GROQ_MAX_TOKENS", 1024),
		SystemPrompt:   getEnvOrDefault("ADVISOR_SYSTEM_PROMPT", defaultSystemPrompt),
		MaxRetries:     getEnvAsInt("GROQ_MAX_RETRIES", 3),
		RetryBaseDelay: getEnvAsDuration("GROQ_RETRY_BASE_DELAY", 500*time.Millisecond),
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, apperr.Config("JWT_SECRET environment variable must be set")
	}
	if len(jwtSecret) < 32 {
		return nil, apperr.Config("JWT_SECRET must be at least 32 characters")
	}

	config.Auth = AuthConfig{
		JWTSecret:       []byte(jwtSecret),
		TokenExpiration: getEnvAsDuration("JWT_TOKEN_EXPIRATION", 24*time.Hour),
	}

	config.Chat = ChatConfig{
		ReplayHistory:  getEnvAsBool("CHAT_REPLAY_HISTORY", true),
		ApologyMessage: getEnvOrDefault("CHAT_APOLOGY_MESSAGE", defaultApologyMessage),
	}

	return config, nil
}

// Helper functions for environment variable parsing

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid integer value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid float value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid boolean value, using default")
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		logger.Log.WithFields(logrus.Fields{"key": key, "default": defaultValue}).Warn("Invalid duration value, using default")
		return defaultValue
	}
	return value
}
