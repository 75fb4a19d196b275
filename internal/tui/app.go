package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sant0-9/querylens/internal/assist"
	"github.com/sant0-9/querylens/internal/config"
	"github.com/sant0-9/querylens/internal/llm"
	"github.com/sant0-9/querylens/internal/logx"
)

const pingTimeout = 5 * time.Second

type view int

const (
	viewQuery view = iota
	viewSetup
	viewSettings
	viewHelp
	viewError
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

// NewApp builds the UI. A nil cfg starts the setup wizard with defaults.
func NewApp(cfg *config.Config) *App {
	needsSetup := cfg == nil
	if needsSetup {
		cfg = config.DefaultConfig()
	}

	s := newState(cfg)
	s.needsSetup = needsSetup
	s.selectedProvider = config.ProviderIndex(cfg.Provider)

	return &App{
		view:  viewQuery,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.connect(),
	)
}

// connect checks the provider with the spinner running until it answers.
func (a *App) connect() tea.Cmd {
	a.state.connecting = true
	return tea.Batch(a.testProvider(), a.startSpinner())
}

// testProvider builds the configured provider and checks it answers.
func (a *App) testProvider() tea.Cmd {
	cfg := *a.state.config
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		provider, err := llm.NewProvider(ctx, &cfg)
		if err != nil {
			return providerErrorMsg{err}
		}

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := a.handleKey(msg)
		if handled {
			return a, cmd
		}

	case tea.MouseMsg:
		return a, a.handleMouse(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.input.Width = max(20, min(70, a.width-4)-6)

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.state.settingsMode = ""
		a.view = viewQuery
		return a, a.reconnect()

	case settingsSavedMsg:
		logx.Info().Str("provider", a.state.config.Provider).Str("model", a.state.config.Model).Msg("settings saved")
		return a, a.reconnect()

	case setupErrorMsg:
		a.state.providerError = msg.error
		a.view = viewError
		return a, nil

	case providerReadyMsg:
		cfg := a.state.config
		a.state.provider = msg.provider
		a.state.assistant = assist.NewAssistant(msg.provider, cfg.Model, cfg.Suggestions())
		a.state.providerReady = true
		a.state.providerError = nil
		a.state.connecting = false
		logx.Info().Str("provider", msg.provider.Name()).Str("model", cfg.Model).Msg("provider ready")
		a.state.input.Focus()
		return a, textinput.Blink

	case providerErrorMsg:
		logx.Error().Err(msg.error).Str("provider", a.state.config.Provider).Msg("provider unavailable")
		a.state.connecting = false
		a.state.providerError = msg.error
		a.view = viewError
		return a, nil

	case debounceMsg:
		return a, a.debounceElapsed(msg.gen)

	case completionMsg:
		a.applyResult(msg.result)
		return a, nil

	case spinner.TickMsg:
		if !a.state.session.Loading() && !a.state.connecting {
			a.state.spinning = false
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd
	}

	// Update text inputs based on view
	switch {
	case a.view == viewSetup && a.state.setupStep == 1,
		a.view == viewSettings && a.state.settingsMode == "apikey":
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	case a.view == viewQuery:
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd, a.queryEdited())
	}

	return a, tea.Batch(cmds...)
}

// handleKey returns handled=false when the key should fall through to the focused input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		switch {
		case a.view == viewSettings && a.state.settingsMode != "":
			a.state.settingsMode = ""
			a.state.apiKeyInput.Reset()
			return nil, true
		case a.view == viewSettings || a.view == viewHelp:
			a.view = viewQuery
			return a.state.input.Focus(), true
		case a.view == viewSetup && a.state.setupStep == 1:
			a.state.setupStep = 0
			a.state.apiKeyInput.Reset()
			return nil, true
		}
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	case viewError:
		return a.handleErrorKey(msg)
	case viewHelp:
		return nil, true
	}

	return a.handleQueryKey(msg)
}

func (a *App) handleQueryKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	s := a.state
	switch {
	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return nil, true

	case key.Matches(msg, keys.Settings):
		a.openSettings()
		return nil, true

	case key.Matches(msg, keys.Enter):
		return a.process(), true

	case key.Matches(msg, keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
		return nil, true

	case key.Matches(msg, keys.Down):
		if s.cursor < len(s.session.Suggestions())-1 {
			s.cursor++
		}
		return nil, true

	case key.Matches(msg, keys.Select):
		return a.selectSuggestion(s.cursor), true

	case key.Matches(msg, keys.Clear):
		s.input.Reset()
		return a.queryEdited(), true
	}

	return nil, false
}

func (a *App) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.view != viewQuery || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if a.state.suggestionRow < 0 {
		return nil
	}
	i := msg.Y - a.state.suggestionRow
	if i < 0 || i >= len(a.state.session.Suggestions()) {
		return nil
	}
	a.state.cursor = i
	return a.selectSuggestion(i)
}

// queryEdited syncs the input into the session and schedules the debounce.
func (a *App) queryEdited() tea.Cmd {
	gen, schedule := a.state.session.SetQuery(a.state.input.Value())
	a.clampCursor()
	if !schedule {
		return nil
	}
	return tea.Tick(a.state.config.DebounceInterval(), func(time.Time) tea.Msg {
		return debounceMsg{gen}
	})
}

func (a *App) debounceElapsed(gen uint64) tea.Cmd {
	if a.state.assistant == nil {
		return nil
	}
	ticket, ok := a.state.session.DebounceElapsed(gen)
	if !ok {
		a.clampCursor()
		return nil
	}
	return a.run(ticket)
}

func (a *App) selectSuggestion(i int) tea.Cmd {
	gen, schedule, err := a.state.session.Select(i)
	if err != nil {
		return nil
	}
	a.state.input.SetValue(a.state.session.Query())
	a.state.input.CursorEnd()
	if !schedule {
		return nil
	}
	return tea.Tick(a.state.config.DebounceInterval(), func(time.Time) tea.Msg {
		return debounceMsg{gen}
	})
}

func (a *App) process() tea.Cmd {
	if a.state.assistant == nil {
		return nil
	}
	ticket, err := a.state.session.Process()
	if err != nil {
		logx.Debug().Err(err).Msg("process ignored")
		return nil
	}
	return a.run(ticket)
}

// run performs the ticket's completion off the event loop.
func (a *App) run(t assist.Ticket) tea.Cmd {
	assistant := a.state.assistant
	call := func() tea.Msg {
		return completionMsg{assistant.Run(context.Background(), t)}
	}
	return tea.Batch(call, a.startSpinner())
}

func (a *App) startSpinner() tea.Cmd {
	if a.state.spinning {
		return nil
	}
	a.state.spinning = true
	return a.state.spinner.Tick
}

func (a *App) applyResult(r assist.Result) {
	before := a.state.session.Suggestions()
	if !a.state.session.Apply(r) {
		return
	}
	if r.Ticket.Op == assist.OpSuggest && r.Err == nil && !equalStrings(before, a.state.session.Suggestions()) {
		a.state.cursor = 0
	}
	a.clampCursor()
}

func (a *App) clampCursor() {
	n := len(a.state.session.Suggestions())
	if a.state.cursor >= n {
		a.state.cursor = max(n-1, 0)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (a *App) handleSetupKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch a.state.setupStep {
	case 0: // Provider selection
		switch {
		case key.Matches(msg, keys.ListUp):
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case key.Matches(msg, keys.ListDown):
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case key.Matches(msg, keys.Enter):
			provider := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = provider.ID
			a.state.config.Model = provider.DefaultModel
			// A key exported in the environment is used but not saved.
			a.state.config.APIKey = ""

			if provider.NeedsAPIKey && a.state.config.Key() == "" {
				a.state.setupStep = 1
				return a.state.apiKeyInput.Focus(), true
			}
			return a.finishSetup(), true
		}
		return nil, true

	case 1: // API key entry
		if key.Matches(msg, keys.Enter) {
			if strings.TrimSpace(a.state.apiKeyInput.Value()) == "" {
				return nil, true
			}
			a.state.config.APIKey = strings.TrimSpace(a.state.apiKeyInput.Value())
			a.state.apiKeyInput.Reset()
			a.state.setupStep = 0
			return a.finishSetup(), true
		}
	}

	return nil, false
}

func (a *App) handleErrorKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "r":
		a.view = viewQuery
		a.state.providerError = nil
		return a.connect(), true
	case "s":
		a.openSettings()
		return nil, true
	}
	return nil, true
}

// finishSetup persists the config and moves on to connecting.
func (a *App) finishSetup() tea.Cmd {
	cfg := *a.state.config
	return func() tea.Msg {
		if err := cfg.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }
type debounceMsg struct{ gen uint64 }
type completionMsg struct{ result assist.Result }

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSetup:
		return a.renderSetup()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderQuery()
	}
}
