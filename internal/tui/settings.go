package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/querylens/internal/config"
)

type settingsSavedMsg struct{}

func (a *App) openSettings() {
	a.view = viewSettings
	a.state.settingsMode = ""
	a.state.settingsSelected = 0
	a.state.input.Blur()
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := a.state
	switch s.settingsMode {
	case "":
		switch msg.String() {
		case "p":
			s.settingsMode = "provider"
			s.settingsSelected = config.ProviderIndex(s.config.Provider)
		case "m":
			s.settingsMode = "model"
			s.settingsSelected = 0
			if p := config.GetProvider(s.config.Provider); p != nil {
				for i, m := range p.Models {
					if m == s.config.Model {
						s.settingsSelected = i
					}
				}
			}
		case "k":
			s.settingsMode = "apikey"
			return s.apiKeyInput.Focus(), true
		case "r":
			s.needsSetup = true
			s.setupStep = 0
			s.selectedProvider = config.ProviderIndex(s.config.Provider)
			a.view = viewSetup
		}
		return nil, true

	case "provider":
		return a.handleSettingsList(msg, len(config.Providers), func(i int) {
			p := config.Providers[i]
			if p.ID == s.config.Provider {
				return
			}
			s.config.Provider = p.ID
			s.config.Model = p.DefaultModel
			s.config.APIKey = ""
		}), true

	case "model":
		p := config.GetProvider(s.config.Provider)
		if p == nil {
			s.settingsMode = ""
			return nil, true
		}
		return a.handleSettingsList(msg, len(p.Models), func(i int) {
			s.config.Model = p.Models[i]
		}), true

	case "apikey":
		if key.Matches(msg, keys.Enter) {
			k := strings.TrimSpace(s.apiKeyInput.Value())
			s.apiKeyInput.Reset()
			s.apiKeyInput.Blur()
			if k == "" {
				s.settingsMode = ""
				return nil, true
			}
			s.config.APIKey = k
			return a.saveSettings(), true
		}
	}

	return nil, false
}

// handleSettingsList moves the settings cursor over n entries and applies
// the chosen one on enter.
func (a *App) handleSettingsList(msg tea.KeyMsg, n int, choose func(int)) tea.Cmd {
	s := a.state
	switch {
	case key.Matches(msg, keys.ListUp):
		if s.settingsSelected > 0 {
			s.settingsSelected--
		}
	case key.Matches(msg, keys.ListDown):
		if s.settingsSelected < n-1 {
			s.settingsSelected++
		}
	case key.Matches(msg, keys.Enter):
		if s.settingsSelected >= n {
			return nil
		}
		choose(s.settingsSelected)
		return a.saveSettings()
	}
	return nil
}

// saveSettings writes the config and reconnects with it.
func (a *App) saveSettings() tea.Cmd {
	a.state.settingsMode = ""
	cfg := *a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return settingsSavedMsg{}
	}
}

func (a *App) reconnect() tea.Cmd {
	a.state.assistant = nil
	a.state.provider = nil
	a.state.providerReady = false
	a.state.session.Reset()
	a.state.cursor = 0
	a.state.input.Reset()
	return a.connect()
}
