package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/querylens/internal/assist"
	"github.com/sant0-9/querylens/internal/highlight"
)

func emphasise(s string) string { return styleKeyword.Render(s) }

// renderQuery lays the view out top-down so suggestionRow matches the
// screen row of the first suggestion for mouse selection.
func (a *App) renderQuery() string {
	s := a.state
	boxWidth := max(20, min(70, a.width-4))

	var blocks []string
	rows := 0
	add := func(block string) {
		blocks = append(blocks, lipgloss.PlaceHorizontal(a.width, lipgloss.Center, block))
		rows += lipgloss.Height(block)
	}

	// Header
	header := styleLogo.Render("querylens") + styleSubtitle.Render("  "+a.modelLabel())
	add(header)
	add("")

	if !s.providerReady {
		add(styleSubtitle.Render(s.spinner.View() + " Connecting..."))
		add("")
	}

	inputBox := styleBox.
		Width(boxWidth).
		BorderForeground(colorSecondary).
		Render(s.input.View())
	add(inputBox)

	// Highlighted preview
	query := s.session.Query()
	if strings.TrimSpace(query) != "" {
		preview := highlight.Render(truncate(query, boxWidth-2), emphasise, nil)
		add(preview)
	} else {
		add(styleSubtitle.Render(fmt.Sprintf("Type at least %d characters to get suggestions", s.config.MinLength())))
	}
	add("")

	add(a.renderStatus())
	add("")

	// Suggestions
	suggestions := s.session.Suggestions()
	if len(suggestions) > 0 {
		add(styleSubtitle.Render("Suggestions"))
		s.suggestionRow = rows
		selected, hasSelection := s.session.Selected()
		for i, text := range suggestions {
			add(a.renderSuggestion(i, text, boxWidth, hasSelection && selected == i))
		}
		add("")
	} else {
		s.suggestionRow = -1
	}

	// Answer
	if answer := s.session.Answer(); answer != "" {
		add(a.renderAnswer(answer, boxWidth, rows))
		add("")
	}

	content := strings.Join(blocks, "\n")

	status := styleStatusBar.Render(a.statusHints())
	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status)

	padding := max(a.height-rows-1, 0)
	return content + strings.Repeat("\n", padding) + "\n" + statusLine
}

func (a *App) renderSuggestion(i int, text string, width int, selected bool) string {
	cursor := "  "
	if i == a.state.cursor {
		cursor = "> "
	}
	mark := "[ ] "
	if selected {
		mark = styleSelected.Render("[x]") + " "
	}

	body := truncate(text, width-6)
	if selected {
		body = highlight.Render(body, func(w string) string {
			return styleKeyword.Render(w)
		}, func(w string) string {
			return styleSelected.Render(w)
		})
	} else {
		body = highlight.Render(body, emphasise, nil)
	}

	// Pad to the box width so rows line up when centered.
	line := cursor + mark + body
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

// renderAnswer wraps the answer to width and keeps it within the rows left on screen.
func (a *App) renderAnswer(answer string, width, used int) string {
	inner := width - 4
	wrapped := lipgloss.NewStyle().Width(inner).Render(answer)
	lines := strings.Split(wrapped, "\n")

	limit := max(a.height-used-5, 3)
	if len(lines) > limit {
		lines = append(lines[:limit-1], styleSubtitle.Render("..."))
	}

	style := styleBox.
		Width(width).
		BorderForeground(colorPrimary)
	if a.state.session.Status(assist.OpAnswer) == assist.StatusFailed {
		style = style.BorderForeground(colorError)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (a *App) modelLabel() string {
	cfg := a.state.config
	name := cfg.Provider
	if a.state.provider != nil {
		name = a.state.provider.Name()
	}
	if cfg.Model == "" {
		return name
	}
	return name + " / " + cfg.Model
}

func (a *App) statusHints() string {
	var hints []string
	if a.state.session.CanProcess() {
		hints = append(hints, "[Enter] Process")
	} else if a.state.session.Pending(assist.OpAnswer) {
		hints = append(hints, "Answering...")
	}
	hints = append(hints, "[Up/Down] Move", "[Tab] Use", "[Ctrl+L] Clear", "[F1] Help", "[Esc] Quit")
	return strings.Join(hints, "  ")
}
