package cli

import (
	"fmt"
	"strings"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// projectDetailLoadedMsg signals that project detail data has been loaded.
type projectDetailLoadedMsg struct {
	project  domain.Project
	showcase *domain.Showcase
	found    bool
}

// projectDetailView shows a single project with its task list, dates and
// attached showcase. Tasks are toggled in place.
type projectDetailView struct {
	state     *SharedState
	projectID string
	project   domain.Project
	showcase  *domain.Showcase
	cursor    int
	loading   bool
	missing   bool
}

func newProjectDetailView(state *SharedState, projectID string) *projectDetailView {
	return &projectDetailView{state: state, projectID: projectID, loading: true}
}

func (v *projectDetailView) ID() ViewID    { return ViewProjectDetail }
func (v *projectDetailView) Title() string { return v.project.Name }

func (v *projectDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle task")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	}
}

func (v *projectDetailView) Init() tea.Cmd {
	return v.load()
}

func (v *projectDetailView) load() tea.Cmd {
	app := v.state.App
	id := v.projectID
	return func() tea.Msg {
		p, ok := app.Store.Project(id)
		if !ok {
			return projectDetailLoadedMsg{found: false}
		}
		msg := projectDetailLoadedMsg{project: p, found: true}
		if sc, ok := app.Store.ShowcaseByProject(id); ok {
			msg.showcase = &sc
		}
		return msg
	}
}

func (v *projectDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectDetailLoadedMsg:
		v.loading = false
		v.missing = !msg.found
		if msg.found {
			v.project = msg.project
			v.showcase = msg.showcase
			if v.cursor >= len(v.project.Tasks) {
				v.cursor = max(len(v.project.Tasks)-1, 0)
			}
		}
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.project.Tasks)-1 {
				v.cursor++
			}
		case " ":
			return v, v.toggleTask()
		case "e":
			return v, pushView(newProjectFormView(v.state, v.projectID))
		}
	}
	return v, nil
}

// toggleTask flips the selected task's completed flag and writes the full
// task list back, letting the store re-derive progress.
func (v *projectDetailView) toggleTask() tea.Cmd {
	if v.cursor >= len(v.project.Tasks) {
		return nil
	}
	tasks := make([]domain.Task, len(v.project.Tasks))
	copy(tasks, v.project.Tasks)
	tasks[v.cursor].Completed = !tasks[v.cursor].Completed

	app := v.state.App
	id := v.projectID
	return tea.Batch(func() tea.Msg {
		if _, err := app.Store.UpdateProject(id, domain.ProjectPatch{Tasks: &tasks}); err != nil {
			return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return nil
	}, refreshViews())
}

func (v *projectDetailView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.missing {
		return "\n  " + formatter.StyleRed.Render("Project not found.")
	}

	p := v.project
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + formatter.Bold(p.Name) + "  " + formatter.ProjectStatusPill(p.Status) + "\n")
	if p.Description != "" {
		b.WriteString("  " + formatter.Dim(p.Description) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Client:"), p.ClientName))
	b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
		formatter.Dim("Dates:"), formatter.FormatDate(p.StartDate),
		formatter.Dim("→"), formatter.DeadlineStyled(p.EndDate)))
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Budget:"), formatter.StyleGreen.Render(formatter.FormatTRY(p.Budget))))
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Progress:"), formatter.RenderProgress(float64(p.DeriveProgress())/100, 20)))
	b.WriteString("\n")

	b.WriteString("  " + formatter.Header("Tasks") + "\n")
	if len(p.Tasks) == 0 {
		b.WriteString("  " + formatter.Dim("No tasks.") + "\n")
	}
	for i, t := range p.Tasks {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
		check := formatter.Dim("[ ]")
		titleStyle := formatter.StyleFg
		if t.Completed {
			check = formatter.StyleGreen.Render("[✔]")
			titleStyle = formatter.StyleDim
		}
		due := ""
		if t.DueDate != nil {
			due = "  " + formatter.DeadlineStyled(*t.DueDate)
		}
		b.WriteString(fmt.Sprintf("%s%s %s%s\n", cursor, check, titleStyle.Render(t.Title), due))
	}

	if v.showcase != nil {
		sc := v.showcase
		b.WriteString("\n  " + formatter.Header("Showcase") + "\n")
		b.WriteString(fmt.Sprintf("  %s  %s\n", formatter.Bold(sc.Title), formatter.ShowcaseStatusPill(sc.Status)))
		for _, it := range sc.Items {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				formatter.PadRight(it.Name, 30),
				formatter.Dim(formatter.FormatTRY(it.Quantity*it.UnitPrice))))
		}
		if sc.Discount > 0 {
			b.WriteString(fmt.Sprintf("  %s -%s\n", formatter.Dim("Discount:"), formatter.FormatTRY(sc.Discount)))
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Total:"), formatter.StyleGreen.Render(formatter.FormatTRY(sc.FinalAmount))))
	}

	return b.String()
}
