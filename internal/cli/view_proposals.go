package cli

import (
	"fmt"
	"strings"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// proposalsLoadedMsg signals that proposal list data has been loaded.
type proposalsLoadedMsg struct {
	proposals []domain.Proposal
}

// proposalListView shows the proposals with their document numbers.
type proposalListView struct {
	state     *SharedState
	proposals []domain.Proposal
	cursor    int
	loading   bool
}

func newProposalListView(state *SharedState) *proposalListView {
	return &proposalListView{state: state, loading: true}
}

func (v *proposalListView) ID() ViewID    { return ViewProposalList }
func (v *proposalListView) Title() string { return "Proposals" }

func (v *proposalListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "mark sent")),
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "accept")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "reject")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *proposalListView) Init() tea.Cmd {
	return v.load()
}

func (v *proposalListView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return proposalsLoadedMsg{proposals: app.Store.Proposals()}
	}
}

func (v *proposalListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case proposalsLoadedMsg:
		v.loading = false
		v.proposals = msg.proposals
		if v.cursor >= len(v.proposals) {
			v.cursor = max(len(v.proposals)-1, 0)
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
			if v.cursor < len(v.proposals)-1 {
				v.cursor++
			}
		case "s":
			return v, v.setStatus(domain.ProposalSent)
		case "y":
			return v, v.setStatus(domain.ProposalAccepted)
		case "n":
			return v, v.setStatus(domain.ProposalRejected)
		case "x":
			if v.cursor < len(v.proposals) {
				p := v.proposals[v.cursor]
				app := v.state.App
				return v, tea.Batch(func() tea.Msg {
					if err := app.Store.DeleteProposal(p.ID); err != nil {
						return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
					}
					return flashMsg{text: formatter.StyleGreen.Render("✔") + " Deleted " + formatter.Bold(p.Number)}
				}, refreshViews())
			}
		}
	}
	return v, nil
}

func (v *proposalListView) setStatus(status domain.ProposalStatus) tea.Cmd {
	if v.cursor >= len(v.proposals) {
		return nil
	}
	id := v.proposals[v.cursor].ID
	app := v.state.App
	return tea.Batch(func() tea.Msg {
		p, err := app.Store.UpdateProposal(id, domain.ProposalPatch{Status: &status})
		if err != nil {
			return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return flashMsg{text: formatter.StyleGreen.Render("✔") + " " + formatter.Bold(p.Number) + " " + formatter.ProposalStatusPill(p.Status)}
	}, refreshViews())
}

func (v *proposalListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading proposals...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(v.proposals) == 0 {
		b.WriteString("  " + formatter.Dim("No proposals.") + "\n")
		return b.String()
	}

	for i, p := range v.proposals {
		cursor := "  "
		numStyle := formatter.StyleGreen
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			numStyle = formatter.StyleGreen.Bold(true)
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s %s %s\n",
			cursor,
			numStyle.Render(p.Number),
			formatter.PadRight(p.ProjectName, 24),
			formatter.Dim(formatter.PadRight(p.ClientName, 18)),
			formatter.ProposalStatusPill(p.Status),
			formatter.StyleGreen.Render(formatter.FormatTRY(p.Amount)),
			formatter.Dim("valid "+formatter.FormatDate(p.ValidUntil)),
		))
	}

	return b.String()
}
