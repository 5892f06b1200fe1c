package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Active drill-down context
	ActiveClientID   string
	ActiveClientName string
	ActiveProjectID  string

	// Terminal dimensions
	Width  int
	Height int
}

// SetActiveClient records the client a list view drilled into.
func (s *SharedState) SetActiveClient(id, name string) {
	s.ActiveClientID = id
	s.ActiveClientName = name
}

// ClearActiveClient resets the client drill-down context.
func (s *SharedState) ClearActiveClient() {
	s.ActiveClientID = ""
	s.ActiveClientName = ""
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
