package tui

import (
	"fmt"
	"strings"

	"github.com/sant0-9/querylens/internal/config"
)

const listHints = "[Up/Down] Navigate  [Enter] Select  [Esc] Cancel"

func (a *App) renderSettings() string {
	p := a.newPage()
	switch a.state.settingsMode {
	case "provider":
		a.settingsProviders(p)
	case "model":
		a.settingsModels(p)
	case "apikey":
		a.settingsKey(p)
	default:
		a.settingsOverview(p)
	}
	return a.centerVertically(p.String())
}

func (a *App) settingsOverview(p *page) {
	p.title("Settings", colorPrimary)

	cfg := a.state.config
	providerName := cfg.Provider
	if info := config.GetProvider(cfg.Provider); info != nil {
		providerName = info.Name
	}

	rows := [][2]string{
		{"Provider", providerName},
		{"Model", modelName(cfg.Model)},
		{"API Key", keyLabel(cfg)},
		{"Debounce", cfg.DebounceInterval().String()},
		{"Suggestions", fmt.Sprint(cfg.Suggestions())},
	}
	if cfg.BaseURL != "" {
		rows = append(rows, [2]string{"Base URL", cfg.BaseURL})
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = fmt.Sprintf("  %-12s %s", r[0]+":", r[1])
	}
	p.add(styleBox.Width(50).Render(strings.Join(lines, "\n")), 2)

	actions := strings.Join([]string{
		"  [p] Change provider",
		"  [m] Change model",
		"  [k] Update API key",
		"  [r] Reset setup",
	}, "\n")
	p.add(styleBox.Width(50).Render(actions), 2)
	p.add(styleStatusBar.Render("[Esc] Back"), 0)
}

func (a *App) settingsProviders(p *page) {
	p.title("Select Provider", colorPrimary)

	names := make([]string, len(config.Providers))
	for i, info := range config.Providers {
		names[i] = info.Name
	}
	p.add(styleBox.Width(50).Render(pickList(names, a.state.settingsSelected)), 2)
	p.add(styleStatusBar.Render(listHints), 0)
}

func (a *App) settingsModels(p *page) {
	p.title("Select Model", colorPrimary)

	info := config.GetProvider(a.state.config.Provider)
	if info == nil {
		p.add(styleSubtitle.Render("No provider selected"), 0)
		return
	}
	p.add(styleSubtitle.Render("Provider: "+info.Name), 2)

	models := make([]string, len(info.Models))
	for i, m := range info.Models {
		models[i] = modelName(m)
		if m == a.state.config.Model {
			models[i] += " (current)"
		}
	}
	p.add(styleBox.Width(50).Render(pickList(models, a.state.settingsSelected)), 2)
	p.add(styleStatusBar.Render(listHints), 0)
}

func (a *App) settingsKey(p *page) {
	p.title("Update API Key", colorPrimary)
	p.add(styleSubtitle.Render("Enter your new API key"), 2)

	input := styleBox.
		Width(50).
		BorderForeground(colorPrimary).
		Render(a.state.apiKeyInput.View())
	p.add(input, 2)
	p.add(styleStatusBar.Render("[Enter] Save  [Esc] Cancel"), 0)
}

// modelName labels the empty model, which defers to the proxy's choice.
func modelName(m string) string {
	if m == "" {
		return "server default"
	}
	return m
}

func keyLabel(cfg *config.Config) string {
	k := cfg.Key()
	if k != "" && k != cfg.APIKey {
		return maskKey(k) + " (environment)"
	}
	return maskKey(k)
}

func maskKey(k string) string {
	switch {
	case k == "":
		return "Not set"
	case len(k) > 8:
		return k[:4] + "****" + k[len(k)-4:]
	default:
		return "****"
	}
}
