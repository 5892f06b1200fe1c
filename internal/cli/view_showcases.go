package cli

import (
	"fmt"
	"strings"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// showcasesLoadedMsg signals that showcase list data has been loaded.
type showcasesLoadedMsg struct {
	showcases []domain.Showcase
	projects  map[string]string // project id -> name
}

// showcaseListView shows the per-project showcases and their amounts.
type showcaseListView struct {
	state     *SharedState
	showcases []domain.Showcase
	projects  map[string]string
	cursor    int
	loading   bool
}

func newShowcaseListView(state *SharedState) *showcaseListView {
	return &showcaseListView{state: state, loading: true}
}

func (v *showcaseListView) ID() ViewID    { return ViewShowcaseList }
func (v *showcaseListView) Title() string { return "Showcases" }

func (v *showcaseListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "mark sent")),
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "accept")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "reject")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *showcaseListView) Init() tea.Cmd {
	return v.load()
}

func (v *showcaseListView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		names := make(map[string]string)
		for _, p := range app.Store.Projects() {
			names[p.ID] = p.Name
		}
		return showcasesLoadedMsg{showcases: app.Store.Showcases(), projects: names}
	}
}

func (v *showcaseListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showcasesLoadedMsg:
		v.loading = false
		v.showcases = msg.showcases
		v.projects = msg.projects
		if v.cursor >= len(v.showcases) {
			v.cursor = max(len(v.showcases)-1, 0)
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
			if v.cursor < len(v.showcases)-1 {
				v.cursor++
			}
		case "s":
			return v, v.setStatus(domain.ShowcaseSent)
		case "y":
			return v, v.setStatus(domain.ShowcaseAccepted)
		case "n":
			return v, v.setStatus(domain.ShowcaseRejected)
		case "x":
			if v.cursor < len(v.showcases) {
				sc := v.showcases[v.cursor]
				app := v.state.App
				return v, tea.Batch(func() tea.Msg {
					if err := app.Store.DeleteShowcase(sc.ID); err != nil {
						return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
					}
					return flashMsg{text: formatter.StyleGreen.Render("✔") + " Deleted " + formatter.Bold(sc.Title)}
				}, refreshViews())
			}
		}
	}
	return v, nil
}

func (v *showcaseListView) setStatus(status domain.ShowcaseStatus) tea.Cmd {
	if v.cursor >= len(v.showcases) {
		return nil
	}
	id := v.showcases[v.cursor].ID
	app := v.state.App
	return tea.Batch(func() tea.Msg {
		sc, err := app.Store.UpdateShowcase(id, domain.ShowcasePatch{Status: &status})
		if err != nil {
			return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return flashMsg{text: formatter.StyleGreen.Render("✔") + " " + formatter.Bold(sc.Title) + " " + formatter.ShowcaseStatusPill(sc.Status)}
	}, refreshViews())
}

func (v *showcaseListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading showcases...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(v.showcases) == 0 {
		b.WriteString("  " + formatter.Dim("No showcases.") + "\n")
		return b.String()
	}

	for i, sc := range v.showcases {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		amount := formatter.FormatTRY(sc.FinalAmount)
		if sc.Discount > 0 {
			amount += formatter.Dim(fmt.Sprintf(" (−%s)", formatter.FormatTRY(sc.Discount)))
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s\n",
			cursor,
			titleStyle.Render(formatter.PadRight(sc.Title, 28)),
			formatter.Dim(formatter.PadRight(v.projects[sc.ProjectID], 22)),
			formatter.ShowcaseStatusPill(sc.Status),
			formatter.StyleGreen.Render(amount),
		))
	}

	return b.String()
}
