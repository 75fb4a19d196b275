package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/sant0-9/querylens/internal/assist"
	"github.com/sant0-9/querylens/internal/config"
	"github.com/sant0-9/querylens/internal/llm"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Settings
	settingsMode     string
	settingsSelected int

	// Query assistant
	input     textinput.Model
	session   *assist.Session
	assistant *assist.Assistant

	// Suggestion list cursor and the screen row of its first entry
	cursor        int
	suggestionRow int

	spinner  spinner.Model
	spinning bool

	// connecting is set while the provider check runs.
	connecting bool

	// Provider
	provider      llm.Provider
	providerReady bool
	providerError error
}

func newState(cfg *config.Config) *state {
	input := textinput.New()
	input.Placeholder = "Enter your query..."
	input.CharLimit = 500
	input.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleLogo

	return &state{
		config:      cfg,
		input:       input,
		apiKeyInput: apiKey,
		spinner:     sp,
		session:     newSession(cfg),

		suggestionRow: -1,
	}
}

func newSession(cfg *config.Config) *assist.Session {
	return assist.NewSession(assist.Options{
		MinQueryLength: cfg.MinLength(),
		MaxSuggestions: cfg.Suggestions(),
	})
}
