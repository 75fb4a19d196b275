package llm

import (
	"context"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider is the completion capability every backend implements.
type Provider interface {
	// Name returns the provider id used in config.
	Name() string

	// Complete sends the messages and returns the generated text.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Ping checks that the provider is reachable and the credential is accepted.
	Ping(ctx context.Context) error
}

// CompletionRequest is an ordered list of role/content messages plus sampling options.
type CompletionRequest struct {
	Model       string    `json:"model,omitempty"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompletionResponse struct {
	Content      string `json:"content"`
	Model        string `json:"model,omitempty"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// NewRequest builds a request from a system prompt and a user prompt.
// An empty system prompt produces a single user message.
func NewRequest(model, systemPrompt, userPrompt string) *CompletionRequest {
	var msgs []Message
	if systemPrompt != "" {
		msgs = append(msgs, Message{Role: RoleSystem, Content: systemPrompt})
	}
	msgs = append(msgs, Message{Role: RoleUser, Content: userPrompt})

	return &CompletionRequest{
		Model:       model,
		Messages:    msgs,
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// splitSystem separates system messages from the conversation for APIs
// that take the system prompt as a separate field.
func splitSystem(msgs []Message) (string, []Message) {
	var system string
	var rest []Message
	for _, m := range msgs {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}
