package chat

import (
	"career-advisor/internal/apperr"
	"career-advisor/internal/catalog"
	"career-advisor/internal/config"
	"career-advisor/internal/logger"
	"career-advisor/internal/service/llm"
	"career-advisor/internal/store"
	"career-advisor/pkg/validation"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// SendMessageResponse contains the assistant's turn for a processed message
type SendMessageResponse struct {
	Reply string
	// Degraded is true when the completion API failed and the reply is the
	// configured apology text
	Degraded bool
}

// ChatService handles the business logic for chat operations: persisting
// turns, assembling the conversation history and calling the assistant
// gateway. A failed gateway call always settles as a Degraded turn with the
// apology text; the raw upstream error is logged, never persisted or shown.
type ChatService struct {
	store     store.Store
	gateway   llm.Gateway
	config    *config.ChatConfig
	preamble  string
	validator *validation.ChatRequestValidator
}

// NewChatService creates a new ChatService
func NewChatService(st store.Store, gateway llm.Gateway, chatConfig *config.ChatConfig, systemPrompt string) *ChatService {
	return &ChatService{
		store:     st,
		gateway:   gateway,
		config:    chatConfig,
		preamble:  systemPrompt,
		validator: validation.NewChatRequestValidator(),
	}
}

// SendMessage persists the user's turn, obtains the assistant's reply and
// persists it. The returned reply is exactly what was persisted.
func (s *ChatService) SendMessage(ctx context.Context, uid, message string) (*SendMessageResponse, error) {
	if err := s.validator.ValidateMessage(message); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if _, err := s.store.AppendTurn(ctx, uid, store.RoleUser, message); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	history, err := s.buildHistory(ctx, uid, message)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble conversation history: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{
		"uid":           uid,
		"message_count": len(history),
	}).Debug("Prepared for completion call")

	degraded := false
	reply, err := s.gateway.Reply(ctx, history)
	if err != nil {
		logger.Log.WithError(err).Warn("Completion call failed, substituting apology")
		reply = s.config.ApologyMessage
		degraded = true
	}

	if _, err := s.store.AppendTurn(ctx, uid, store.RoleAssistant, reply); err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	return &SendMessageResponse{
		Reply:    reply,
		Degraded: degraded,
	}, nil
}

// History returns the user's persisted transcript in ascending timestamp
// order, for display at session start
func (s *ChatService) History(ctx context.Context, uid string) ([]store.Turn, error) {
	turns, err := s.store.LoadHistory(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return turns, nil
}

// IndustryOverview appends the canned assistant overview for an industry to
// the user's transcript and returns it
func (s *ChatService) IndustryOverview(ctx context.Context, uid, industryName string) (*store.Turn, error) {
	if err := s.validator.ValidateIndustry(industryName); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	ind, ok := catalog.Find(industryName)
	if !ok {
		return nil, apperr.Validationf("unknown industry: %s", industryName)
	}

	turn, err := s.store.AppendTurn(ctx, uid, store.RoleAssistant, catalog.Overview(ind))
	if err != nil {
		return nil, fmt.Errorf("failed to save industry overview: %w", err)
	}

	logger.Log.WithFields(logrus.Fields{"uid": uid, "industry": ind.Name}).Info("Appended industry overview")

	return turn, nil
}

// buildHistory assembles the conversation history for the completion call:
// the fixed system preamble, then either a prefix-consistent replay of the
// persisted turns (which end with the just-appended user message) or, with
// replay disabled, only the current user message.
func (s *ChatService) buildHistory(ctx context.Context, uid, message string) ([]llm.Message, error) {
	history := []llm.Message{{Role: store.RoleSystem, Content: s.preamble}}

	if !s.config.ReplayHistory {
		return append(history, llm.Message{Role: store.RoleUser, Content: message}), nil
	}

	turns, err := s.store.LoadHistory(ctx, uid)
	if err != nil {
		return nil, err
	}

	for _, turn := range turns {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	return history, nil
}
