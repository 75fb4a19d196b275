package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (a *App) renderHelp() string {
	p := a.newPage()
	p.title("Help", colorPrimary)

	cfg := a.state.config
	about := []string{
		fmt.Sprintf("  Pause typing for %s to get %d rephrasings.", cfg.DebounceInterval(), cfg.Suggestions()),
		fmt.Sprintf("  Queries shorter than %d characters are ignored.", cfg.MinLength()),
		"  Pick a rephrasing to make it your query,",
		"  then press Enter to get an answer.",
	}
	p.add(styleBox.Width(56).Render(strings.Join(about, "\n")), 2)

	var shortcuts []string
	for _, k := range []key.Binding{keys.Enter, keys.Up, keys.Down, keys.Select, keys.Clear, keys.Settings, keys.Help, keys.Quit} {
		h := k.Help()
		shortcuts = append(shortcuts, fmt.Sprintf("  %-14s %s", h.Key, h.Desc))
	}
	shortcuts = append(shortcuts, fmt.Sprintf("  %-14s %s", "click", "use suggestion"))

	p.add(styleSubtitle.Render("Keyboard Shortcuts"), 2)
	p.add(styleBox.Width(56).Render(strings.Join(shortcuts, "\n")), 2)
	p.add(styleStatusBar.Render("[Esc] Back"), 0)

	return a.centerVertically(p.String())
}
