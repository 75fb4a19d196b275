package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sant0-9/querylens/internal/config"
)

// NewProvider creates a provider from config.
func NewProvider(ctx context.Context, cfg *config.Config) (Provider, error) {
	key := cfg.Key()
	switch cfg.Provider {
	case "ollama":
		return NewOllamaProvider(cfg.BaseURL, cfg.Model), nil

	case "openai":
		if key == "" {
			return nil, fmt.Errorf("openai requires an API key")
		}
		p := NewOpenAIProvider(key, cfg.Model)
		if cfg.BaseURL != "" {
			p.baseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		return p, nil

	case "groq":
		if key == "" {
			return nil, fmt.Errorf("groq requires an API key")
		}
		return NewGroqProvider(key, cfg.Model), nil

	case "openrouter":
		if key == "" {
			return nil, fmt.Errorf("openrouter requires an API key")
		}
		return NewOpenRouterProvider(key, cfg.Model), nil

	case "anthropic":
		if key == "" {
			return nil, fmt.Errorf("anthropic requires an API key")
		}
		p := NewAnthropicProvider(key, cfg.Model)
		if cfg.BaseURL != "" {
			p.baseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		return p, nil

	case "gemini":
		if key == "" {
			return nil, fmt.Errorf("gemini requires an API key")
		}
		return NewGeminiProvider(ctx, key, cfg.Model, cfg.BaseURL)

	case "custom":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("custom provider requires base_url")
		}
		return NewCustomProvider(cfg.BaseURL, key, cfg.Model), nil

	case "proxy":
		base := cfg.BaseURL
		if base == "" {
			addr := cfg.ProxyAddr()
			if strings.HasPrefix(addr, ":") {
				addr = "localhost" + addr
			}
			base = "http://" + addr
		}
		return NewProxyProvider(base, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
