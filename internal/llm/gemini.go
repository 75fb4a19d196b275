package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"
)

// GeminiProvider runs completions through an eino chat model backed by the genai client.
type GeminiProvider struct {
	client *genai.Client
	chat   *gemini.ChatModel
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, modelName, baseURL string) (*GeminiProvider, error) {
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	chat, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client: client,
		Model:  modelName,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini chat model: %w", err)
	}

	return &GeminiProvider{
		client: client,
		chat:   chat,
		model:  modelName,
	}, nil
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

func (g *GeminiProvider) Ping(ctx context.Context) error {
	if _, err := g.client.Models.Get(ctx, g.model, nil); err != nil {
		return fmt.Errorf("cannot reach Gemini model %s: %w", g.model, err)
	}
	return nil
}

func (g *GeminiProvider) Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = g.model
	}

	opts := []model.Option{model.WithModel(modelName)}
	if req.Temperature > 0 {
		opts = append(opts, model.WithTemperature(float32(req.Temperature)))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(req.MaxTokens))
	}

	out, err := g.chat.Generate(ctx, toSchemaMessages(req.Messages), opts...)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	if out == nil {
		return nil, fmt.Errorf("gemini: %w", ErrEmptyResponse)
	}

	resp := &CompletionResponse{
		Content: out.Content,
		Model:   modelName,
	}
	if meta := out.ResponseMeta; meta != nil {
		resp.FinishReason = meta.FinishReason
		if meta.Usage != nil {
			resp.Usage = Usage{
				PromptTokens:     meta.Usage.PromptTokens,
				CompletionTokens: meta.Usage.CompletionTokens,
				TotalTokens:      meta.Usage.TotalTokens,
			}
		}
	}
	return resp, nil
}

func toSchemaMessages(msgs []Message) []*schema.Message {
	out := make([]*schema.Message, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			out = append(out, schema.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, schema.AssistantMessage(m.Content, nil))
		default:
			out = append(out, schema.UserMessage(m.Content))
		}
	}
	return out
}
