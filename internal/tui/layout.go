package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// page stacks centered blocks, each followed by gap blank lines.
type page struct {
	width int
	b     strings.Builder
}

func (a *App) newPage() *page {
	return &page{width: a.width}
}

func (p *page) add(block string, gap int) {
	p.b.WriteString(lipgloss.PlaceHorizontal(p.width, lipgloss.Center, block))
	p.b.WriteString(strings.Repeat("\n", gap))
}

func (p *page) title(text string, color lipgloss.Color) {
	p.add(lipgloss.NewStyle().Foreground(color).Bold(true).Render(text), 2)
}

func (p *page) String() string {
	return p.b.String()
}

// pickList renders one line per item with a cursor on the selected one.
func pickList(items []string, selected int) string {
	lines := make([]string, len(items))
	for i, item := range items {
		if i == selected {
			lines[i] = styleSelected.Render("> " + item)
			continue
		}
		lines[i] = "  " + item
	}
	return strings.Join(lines, "\n")
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := max((a.height-lines)/2, 0)
	return strings.Repeat("\n", padding) + content
}
