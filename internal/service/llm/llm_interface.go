package llm

import "context"

// Message is one role/content pair in the conversation history sent to the
// completion API
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Gateway defines the interface to the hosted completion API
type Gateway interface {
	// Reply sends the ordered conversation history (system preamble plus
	// alternating turns) and returns the generated reply text
	Reply(ctx context.Context, history []Message) (string, error)
}
