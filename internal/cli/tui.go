package cli

import (
	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the full-screen interactive interface.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runBoardTUI starts the interface directly on the project board.
func runBoardTUI(app *App) error {
	m := newAppModel(app)
	m.viewStack = []View{newBoardView(m.state)}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
