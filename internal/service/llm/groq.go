package llm

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
	"time"

	"github.com/sirupsen/logrus"
)

const groqURL = "https://api.groq.com/openai/v1/chat/completions"

// Ensure GroqGateway implements the Gateway interface
var _ Gateway = (*GroqGateway)(nil)

// GroqGateway implements Gateway using the Groq chat-completions API
// (OpenAI-compatible wire format)
type GroqGateway struct {
	config     *config.LLMConfig
	httpClient *http.Client
	endpoint   string
}

// NewGroqGateway creates a new Groq gateway with config
func NewGroqGateway(llmConfig *config.LLMConfig) *GroqGateway {
	return &GroqGateway{
		config:     llmConfig,
		httpClient: &http.Client{},
		endpoint:   groqURL,
	}
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Reply sends the conversation history and returns the generated text.
// Transient failures (transport errors, 429, 5xx) are retried with
// exponential backoff before surfacing an upstream error.
func (g *GroqGateway) Reply(ctx context.Context, history []Message) (string, error) {
	apiKey := g.config.GroqAPIKey
	if apiKey == "" {
		return "", apperr.Upstream("Assistant unavailable", fmt.Errorf("GROQ_API_KEY not configured"))
	}

	reqBody := chatRequest{
		Model:       g.config.Model,
		Messages:    history,
		Temperature: g.config.Temperature,
		MaxTokens:   g.config.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"model":         g.config.Model,
		"message_count": len(history),
	}).Info("Calling completion API")

	maxRetries := g.config.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := g.config.RetryBaseDelay * time.Duration(1<<uint(attempt-1))
			logger.Log.WithFields(logrus.Fields{"delay": delay, "attempt": attempt + 1, "max_retries": maxRetries}).Info("Retrying completion call")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", apperr.Upstream("Assistant unavailable", ctx.Err())
			}
		}

		content, retryable, err := g.complete(ctx, jsonData)
		if err == nil {
			return content, nil
		}
		if !retryable {
			return "", apperr.Upstream("Assistant unavailable", err)
		}
		lastErr = err
	}

	return "", apperr.Upstream("Assistant unavailable", fmt.Errorf("failed after %d attempts: %v", maxRetries, lastErr))
}

// complete performs one request; the second return value reports whether the
// failure is worth retrying
func (g *GroqGateway) complete(ctx context.Context, jsonData []byte) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", g.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", false, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.GroqAPIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", false, fmt.Errorf("error decoding response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", false, fmt.Errorf("no response from API")
	}

	content := chatResp.Choices[0].Message.Content
	logger.Log.WithField("content_length", len(content)).Debug("Extracted content from response")
	return content, false, nil
}
