package cli

import (
	"fmt"
	"strings"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/meanval/meanval/internal/store"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardLoadedMsg signals that dashboard data has been loaded.
type dashboardLoadedMsg struct {
	stats   store.Stats
	recent  []domain.Project
	pending []domain.Proposal
}

// dashboardView is the home view: headline numbers plus the most recent
// projects and the proposals still waiting on an answer.
type dashboardView struct {
	state   *SharedState
	stats   store.Stats
	recent  []domain.Project
	pending []domain.Proposal
	loading bool
}

func newDashboardView(state *SharedState) *dashboardView {
	return &dashboardView{state: state, loading: true}
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.load()
}

func (v *dashboardView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		msg := dashboardLoadedMsg{stats: app.Store.Stats()}

		projects := app.Store.Projects()
		for i := len(projects) - 1; i >= 0 && len(msg.recent) < 5; i-- {
			msg.recent = append(msg.recent, projects[i])
		}
		for _, p := range app.Store.Proposals() {
			if p.Status == domain.ProposalDraft || p.Status == domain.ProposalSent {
				msg.pending = append(msg.pending, p)
			}
		}
		return msg
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		v.loading = false
		v.stats = msg.stats
		v.recent = msg.recent
		v.pending = msg.pending
		return v, nil

	case refreshViewMsg:
		return v, v.load()

	case tea.KeyMsg:
		if msg.String() == "r" {
			return v, v.load()
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %s %s    %s %s    %s %s    %s %s\n\n",
		formatter.Bold(fmt.Sprintf("%d", v.stats.TotalProjects)), formatter.Dim("projects"),
		formatter.Bold(fmt.Sprintf("%d", v.stats.ActiveClients)), formatter.Dim("active clients"),
		formatter.Bold(fmt.Sprintf("%d", v.stats.PendingProposals)), formatter.Dim("pending proposals"),
		formatter.StyleGreen.Render(formatter.FormatTRY(v.stats.TotalRevenue)), formatter.Dim("total budget"),
	))

	b.WriteString("  " + formatter.Header("By Status") + "\n")
	for _, status := range domain.BoardColumns {
		n := v.stats.ProjectsByStatus[status]
		bar := strings.Repeat("▇", n)
		b.WriteString(fmt.Sprintf("  %s %s %d\n",
			formatter.PadRight(formatter.ProjectStatusLabel(status), 14),
			formatter.ProjectStatusStyle(status).Render(bar), n))
	}
	b.WriteString("\n")

	b.WriteString("  " + formatter.Header("Recent Projects") + "\n")
	if len(v.recent) == 0 {
		b.WriteString("  " + formatter.Dim("No projects yet.") + "\n")
	}
	for _, p := range v.recent {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			formatter.PadRight(p.Name, 28),
			formatter.ProjectStatusPill(p.Status),
			formatter.Dim(formatter.FormatTRY(p.Budget))))
	}
	b.WriteString("\n")

	b.WriteString("  " + formatter.Header("Open Proposals") + "\n")
	if len(v.pending) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing waiting.") + "\n")
	}
	for _, p := range v.pending {
		b.WriteString(fmt.Sprintf("  %s %s %s %s\n",
			formatter.StyleGreen.Render(p.Number),
			formatter.PadRight(p.ProjectName, 24),
			formatter.ProposalStatusPill(p.Status),
			formatter.Dim(formatter.FormatTRY(p.Amount))))
	}

	return b.String()
}
