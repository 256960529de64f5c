package validation

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MessageMaxLength bounds a single chat turn; Firestore documents cap at 1 MiB.
const MessageMaxLength = 32768

// ChatRequestValidator validates chat-related requests
type ChatRequestValidator struct{}

// NewChatRequestValidator creates a new ChatRequestValidator
func NewChatRequestValidator() *ChatRequestValidator {
	return &ChatRequestValidator{}
}

// ValidateMessage validates a chat message
func (v *ChatRequestValidator) ValidateMessage(message string) error {
	if message == "" {
		return errors.New("message cannot be empty")
	}

	if utf8.RuneCountInString(message) > MessageMaxLength {
		return fmt.Errorf("message must be at most %d characters", MessageMaxLength)
	}

	return nil
}

// ValidateIndustry validates an industry overview request
func (v *ChatRequestValidator) ValidateIndustry(industry string) error {
	if industry == "" {
		return errors.New("industry cannot be empty")
	}
	return nil
}
