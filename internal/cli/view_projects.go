package cli

import (
	"fmt"
	"strings"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// projectsLoadedMsg signals that project list data has been loaded.
type projectsLoadedMsg struct {
	projects []domain.Project
}

// projectListView shows an interactive, navigable list of projects,
// optionally restricted to a single client.
type projectListView struct {
	state    *SharedState
	clientID string
	projects []domain.Project
	cursor   int
	loading  bool

	// Filtering
	filtering bool
	filter    string
}

func newProjectListView(state *SharedState) *projectListView {
	state.ClearActiveClient()
	return &projectListView{state: state, loading: true}
}

func newProjectListViewForClient(state *SharedState, clientID string) *projectListView {
	return &projectListView{state: state, clientID: clientID, loading: true}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "Projects" }

func (v *projectListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	}
}

func (v *projectListView) Init() tea.Cmd {
	return v.load()
}

func (v *projectListView) load() tea.Cmd {
	app := v.state.App
	clientID := v.clientID
	return func() tea.Msg {
		projects := app.Store.Projects()
		if clientID != "" {
			var scoped []domain.Project
			for _, p := range projects {
				if p.ClientID == clientID {
					scoped = append(scoped, p)
				}
			}
			projects = scoped
		}
		return projectsLoadedMsg{projects: projects}
	}
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		v.loading = false
		v.projects = msg.projects
		if v.cursor >= len(v.projects) {
			v.cursor = max(len(v.projects)-1, 0)
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

func (v *projectListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visibleProjects()

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
			v.state.ActiveProjectID = visible[v.cursor].ID
			return v, pushView(newProjectDetailView(v.state, visible[v.cursor].ID))
		}
	case "a":
		return v, pushView(newProjectFormView(v.state, ""))
	case "e":
		if v.cursor < len(visible) {
			return v, pushView(newProjectFormView(v.state, visible[v.cursor].ID))
		}
	case "x":
		if v.cursor < len(visible) {
			p := visible[v.cursor]
			app := v.state.App
			return v, tea.Batch(func() tea.Msg {
				if err := app.Store.DeleteProject(p.ID); err != nil {
					return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
				}
				return flashMsg{text: formatter.StyleGreen.Render("✔") + " Deleted " + formatter.Bold(p.Name)}
			}, refreshViews())
		}
	case "/":
		v.filtering = true
		v.filter = ""
	}
	return v, nil
}

func (v *projectListView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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

func (v *projectListView) visibleProjects() []domain.Project {
	if v.filter == "" {
		return v.projects
	}
	lf := strings.ToLower(v.filter)
	var filtered []domain.Project
	for _, p := range v.projects {
		if strings.Contains(strings.ToLower(p.Name), lf) ||
			strings.Contains(strings.ToLower(p.ClientName), lf) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (v *projectListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading projects...")
	}

	visible := v.visibleProjects()

	var b strings.Builder
	b.WriteString("\n")

	if v.filtering {
		b.WriteString("  " + formatter.StyleYellow.Render("/") + " " + v.filter + "█\n\n")
	}

	if len(visible) == 0 {
		b.WriteString("  " + formatter.Dim("No projects found.") + "\n")
		return b.String()
	}

	for i, p := range visible {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s %s\n",
			cursor,
			nameStyle.Render(formatter.PadRight(p.Name, 26)),
			formatter.Dim(formatter.PadRight(p.ClientName, 20)),
			formatter.ProjectStatusPill(p.Status),
			formatter.RenderProgress(float64(p.DeriveProgress())/100, 10),
			formatter.Dim(formatter.FormatTRY(p.Budget)),
		))
	}

	return b.String()
}
