package tui

import (
	"strings"

	"github.com/sant0-9/querylens/internal/config"
	"github.com/sant0-9/querylens/internal/llm"
)

func (a *App) renderError() string {
	p := a.newPage()
	p.title("Something went wrong", colorError)

	errMsg := "Unknown error"
	if a.state.providerError != nil {
		errMsg = a.state.providerError.Error()
	}

	width := max(20, min(60, a.width-4))
	p.add(styleBox.Width(width).BorderForeground(colorError).Render(errMsg), 2)

	if hints := errorHints(a.state.providerError, a.state.config); len(hints) > 0 {
		p.add(styleBox.Width(width).Render("Suggestions:\n"+strings.Join(hints, "\n")), 2)
	}

	p.add(styleStatusBar.Render("[r] Retry  [s] Settings  [Esc] Quit"), 0)
	return a.centerVertically(p.String())
}

// errorHints maps a connection failure to things the user can try.
func errorHints(err error, cfg *config.Config) []string {
	if err == nil {
		return nil
	}
	lower := strings.ToLower(err.Error())

	switch {
	case llm.IsUnauthorized(err) || strings.Contains(lower, "api key"):
		hints := []string{"Check your API key, or press [s] to open settings"}
		if p := config.GetProvider(cfg.Provider); p != nil && p.KeyEnv != "" {
			hints = append(hints, "The key can also come from "+p.KeyEnv)
		}
		return hints
	case cfg.Provider == "ollama":
		return []string{"Make sure Ollama is running: ollama serve", "Or switch to a cloud provider in settings"}
	case cfg.Provider == "proxy":
		return []string{"Start the proxy: querylens proxy", "Proxy address: " + cfg.ProxyAddr()}
	case strings.Contains(lower, "429") || strings.Contains(lower, "rate limit"):
		return []string{"You've hit the API rate limit", "Wait a moment and try again"}
	case strings.Contains(lower, "connect") || strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline"):
		return []string{"Check your internet connection"}
	}
	return nil
}
