package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// switchHomeMsg resets the stack to a single root view, used by the
// global section shortcuts.
type switchHomeMsg struct {
	view View
}

// refreshViewMsg tells every view on the stack to reload its data after
// a mutation made elsewhere (forms, views above it).
type refreshViewMsg struct{}

// flashMsg carries a transient one-line confirmation shown in the status bar.
type flashMsg struct {
	text string
}

// formDoneMsg is sent when a form completes or is cancelled. The appModel
// handles it atomically: pop the form view, then run nextCmd.
type formDoneMsg struct {
	nextCmd tea.Cmd
}

// quitMsg requests application shutdown.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// refreshViews returns a tea.Cmd that broadcasts a data reload.
func refreshViews() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// flash returns a tea.Cmd that shows a transient status line.
func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}
