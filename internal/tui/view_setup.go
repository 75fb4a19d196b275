package tui

import (
	"fmt"

	"github.com/sant0-9/querylens/internal/config"
)

const logo = `
 ┌─┐ ┬ ┬┌─┐┬─┐┬ ┬┬  ┌─┐┌┐┌┌─┐
 │─┼┐│ │├┤ ├┬┘└┬┘│  ├┤ │││└─┐
 └─┘└└─┘└─┘┴└─ ┴ ┴─┘└─┘┘└┘└─┘
`

func (a *App) renderSetup() string {
	p := a.newPage()
	p.add(styleLogo.Render(logo), 2)

	if a.state.setupStep == 1 {
		a.setupKeyEntry(p)
	} else {
		a.setupProviders(p)
	}
	return a.centerVertically(p.String())
}

func (a *App) setupProviders(p *page) {
	p.title("Welcome! Choose where your queries go:", colorWhite)

	items := make([]string, len(config.Providers))
	for i, info := range config.Providers {
		mark := "[ ]"
		if i == a.state.selectedProvider {
			mark = "[x]"
		}
		items[i] = fmt.Sprintf("%s %-16s %s", mark, info.Name, info.Description)
	}
	p.add(styleBox.Width(60).Render(pickList(items, a.state.selectedProvider)), 2)
	p.add(styleStatusBar.Render("[j/k] Navigate  [Enter] Select  [Esc] Quit"), 0)
}

func (a *App) setupKeyEntry(p *page) {
	info := config.GetProvider(a.state.config.Provider)
	if info == nil {
		p.add(styleSubtitle.Render("Unknown provider "+a.state.config.Provider), 0)
		return
	}

	p.title(fmt.Sprintf("Enter your %s API key:", info.Name), colorWhite)
	if info.SignupURL != "" {
		p.add(styleSubtitle.Render("Get one at: "+info.SignupURL), 1)
	}
	if info.KeyEnv != "" {
		p.add(styleSubtitle.Render(fmt.Sprintf("or export %s before starting", info.KeyEnv)), 1)
	}
	p.add("", 1)

	input := styleBox.
		Width(60).
		BorderForeground(colorSecondary).
		Render(a.state.apiKeyInput.View())
	p.add(input, 2)
	p.add(styleStatusBar.Render("[Enter] Continue  [Esc] Back"), 0)
}
