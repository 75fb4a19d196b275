package assist

import (
	"context"

	"github.com/sant0-9/querylens/internal/llm"
	"github.com/sant0-9/querylens/internal/logx"
	"github.com/sant0-9/querylens/internal/prompts"
)

// Completer is the one capability the assistant needs from a provider.
type Completer interface {
	Complete(ctx context.Context, req *llm.CompletionRequest) (*llm.CompletionResponse, error)
}

// Assistant turns tickets into completion calls.
type Assistant struct {
	completer   Completer
	model       string
	suggestions int
}

func NewAssistant(completer Completer, model string, suggestions int) *Assistant {
	return &Assistant{
		completer:   completer,
		model:       model,
		suggestions: suggestions,
	}
}

// Request builds the messages for a ticket: the rephrase instruction plus
// the raw query for suggestions, the bare query for answers.
func (a *Assistant) Request(t Ticket) *llm.CompletionRequest {
	if t.Op == OpSuggest {
		return llm.NewRequest(a.model, prompts.BuildSuggestPrompt(a.suggestions), t.Text)
	}
	return llm.NewRequest(a.model, "", t.Text)
}

// Run performs the call for t. Failures are logged and returned in the Result.
func (a *Assistant) Run(ctx context.Context, t Ticket) Result {
	resp, err := a.completer.Complete(ctx, a.Request(t))
	if err != nil {
		logx.Error().
			Err(err).
			Str("op", string(t.Op)).
			Uint64("seq", t.Seq).
			Msg("completion failed")
		return Result{Ticket: t, Err: err}
	}

	logx.Debug().
		Str("op", string(t.Op)).
		Uint64("seq", t.Seq).
		Str("model", resp.Model).
		Int("tokens", resp.Usage.TotalTokens).
		Msg("completion finished")

	return Result{Ticket: t, Text: resp.Content}
}
