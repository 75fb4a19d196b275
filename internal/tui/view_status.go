package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/querylens/internal/assist"
	"github.com/sant0-9/querylens/internal/llm"
)

// renderStatus shows one entry per tracked operation, in session order.
func (a *App) renderStatus() string {
	var parts []string
	for _, op := range a.state.session.Ops() {
		st := a.state.session.Status(op)

		var icon string
		var style lipgloss.Style
		switch st {
		case assist.StatusPending:
			icon = a.state.spinner.View()
			style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
		case assist.StatusSucceeded:
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		case assist.StatusFailed:
			icon = "[!]"
			style = lipgloss.NewStyle().Foreground(colorError)
		default:
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(colorMuted)
		}

		line := fmt.Sprintf("%s %s: %s", icon, op, st)
		if err := a.state.session.Err(op); err != nil {
			line += " (" + failureReason(err) + ")"
		}
		parts = append(parts, style.Render(line))
	}
	return strings.Join(parts, "   ")
}

// failureReason is a short, credential-free summary of a failed call.
func failureReason(err error) string {
	var apiErr *llm.APIError
	switch {
	case errors.As(err, &apiErr):
		return fmt.Sprintf("status %d", apiErr.Status)
	case errors.Is(err, context.DeadlineExceeded):
		return "timed out"
	case errors.Is(err, llm.ErrEmptyResponse):
		return "empty response"
	default:
		return "request error"
	}
}
