package config

type ProviderInfo struct {
	ID           string
	Name         string
	Description  string
	NeedsAPIKey  bool
	KeyEnv       string
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:           "openai",
		Name:         "OpenAI",
		Description:  "GPT models, the default",
		NeedsAPIKey:  true,
		KeyEnv:       "OPENAI_API_KEY",
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o-mini", "gpt-4o", "gpt-3.5-turbo"},
		DefaultModel: "gpt-4o-mini",
	},
	{
		ID:           "anthropic",
		Name:         "Anthropic",
		Description:  "Claude models",
		NeedsAPIKey:  true,
		KeyEnv:       "ANTHROPIC_API_KEY",
		SignupURL:    "https://console.anthropic.com/",
		Models:       []string{"claude-3-5-haiku-20241022", "claude-3-5-sonnet-20241022"},
		DefaultModel: "claude-3-5-haiku-20241022",
	},
	{
		ID:           "gemini",
		Name:         "Gemini",
		Description:  "Google Gemini API",
		NeedsAPIKey:  true,
		KeyEnv:       "GEMINI_API_KEY",
		SignupURL:    "https://aistudio.google.com/apikey",
		Models:       []string{"gemini-2.0-flash", "gemini-1.5-pro"},
		DefaultModel: "gemini-2.0-flash",
	},
	{
		ID:           "groq",
		Name:         "Groq",
		Description:  "Very fast, cheap",
		NeedsAPIKey:  true,
		KeyEnv:       "GROQ_API_KEY",
		SignupURL:    "https://console.groq.com/keys",
		Models:       []string{"llama-3.1-8b-instant", "llama-3.1-70b-versatile", "mixtral-8x7b-32768"},
		DefaultModel: "llama-3.1-8b-instant",
	},
	{
		ID:           "openrouter",
		Name:         "OpenRouter",
		Description:  "Access all models",
		NeedsAPIKey:  true,
		KeyEnv:       "OPENROUTER_API_KEY",
		SignupURL:    "https://openrouter.ai/keys",
		Models:       []string{"openai/gpt-4o-mini", "anthropic/claude-3.5-sonnet", "meta-llama/llama-3.1-70b-instruct"},
		DefaultModel: "openai/gpt-4o-mini",
	},
	{
		ID:           "ollama",
		Name:         "Ollama",
		Description:  "Local, free, private",
		NeedsAPIKey:  false,
		Models:       []string{"llama3.1:8b", "qwen2.5:7b", "mistral:7b"},
		DefaultModel: "llama3.1:8b",
	},
	{
		ID:           "proxy",
		Name:         "querylens proxy",
		Description:  "Key stays on the server",
		NeedsAPIKey:  false,
		Models:       []string{""},
		DefaultModel: "",
	},
}

func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// ProviderIndex returns the position of id in Providers, or 0.
func ProviderIndex(id string) int {
	for i, p := range Providers {
		if p.ID == id {
			return i
		}
	}
	return 0
}
