package cli

import (
	"fmt"
	"strings"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clientsLoadedMsg signals that client list data has been loaded.
type clientsLoadedMsg struct {
	clients []domain.Client
}

// clientListView shows an interactive, navigable list of clients.
type clientListView struct {
	state   *SharedState
	clients []domain.Client
	cursor  int
	loading bool

	// Filtering
	filtering bool
	filter    string
}

func newClientListView(state *SharedState) *clientListView {
	return &clientListView{state: state, loading: true}
}

func (v *clientListView) ID() ViewID    { return ViewClientList }
func (v *clientListView) Title() string { return "Clients" }

func (v *clientListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "projects")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	}
}

func (v *clientListView) Init() tea.Cmd {
	return v.load()
}

func (v *clientListView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return clientsLoadedMsg{clients: app.Store.Clients()}
	}
}

func (v *clientListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clientsLoadedMsg:
		v.loading = false
		v.clients = msg.clients
		if v.cursor >= len(v.clients) {
			v.cursor = max(len(v.clients)-1, 0)
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if v.filtering {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *clientListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visibleClients()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(visible) {
			c := visible[v.cursor]
			v.state.SetActiveClient(c.ID, c.Company)
			return v, pushView(newProjectListViewForClient(v.state, c.ID))
		}
	case "a":
		return v, pushView(newClientFormView(v.state, ""))
	case "e":
		if v.cursor < len(visible) {
			return v, pushView(newClientFormView(v.state, visible[v.cursor].ID))
		}
	case "x":
		if v.cursor < len(visible) {
			c := visible[v.cursor]
			app := v.state.App
			return v, tea.Batch(func() tea.Msg {
				if err := app.Store.DeleteClient(c.ID); err != nil {
					return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
				}
				return flashMsg{text: formatter.StyleGreen.Render("✔") + " Deleted " + formatter.Bold(c.Name)}
			}, refreshViews())
		}
	case "/":
		v.filtering = true
		v.filter = ""
	}
	return v, nil
}

func (v *clientListView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter = ""
		v.cursor = 0
		return v, nil
	case tea.KeyEnter:
		v.filtering = false
		return v, nil
	case tea.KeyBackspace:
		if len(v.filter) > 0 {
			v.filter = v.filter[:len(v.filter)-1]
			v.cursor = 0
		}
	default:
		if len(msg.String()) == 1 {
			v.filter += msg.String()
			v.cursor = 0
		}
	}
	return v, nil
}

func (v *clientListView) visibleClients() []domain.Client {
	if v.filter == "" {
		return v.clients
	}
	lf := strings.ToLower(v.filter)
	var filtered []domain.Client
	for _, c := range v.clients {
		if strings.Contains(strings.ToLower(c.Name), lf) ||
			strings.Contains(strings.ToLower(c.Company), lf) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (v *clientListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading clients...")
	}

	visible := v.visibleClients()

	var b strings.Builder
	b.WriteString("\n")

	if v.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + v.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No clients found.") + "\n")
		return b.String()
	}

	for i, c := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s %s\n",
			cursor,
			nameStyle.Render(formatter.PadRight(c.Name, 22)),
			formatter.Dim(formatter.PadRight(c.Company, 24)),
			formatter.ClientStatusPill(c.Status),
			formatter.Dim(fmt.Sprintf("%d proj", c.TotalProjects)),
			formatter.StyleGreen.Render(formatter.FormatTRY(c.TotalRevenue)),
		))
	}

	return b.String()
}
