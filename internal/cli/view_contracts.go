package cli

import (
	"fmt"
	"strings"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// contractsLoadedMsg signals that contract list data has been loaded.
type contractsLoadedMsg struct {
	contracts []domain.Contract
}

// contractListView shows the contracts with their signature state.
type contractListView struct {
	state     *SharedState
	contracts []domain.Contract
	cursor    int
	loading   bool
}

func newContractListView(state *SharedState) *contractListView {
	return &contractListView{state: state, loading: true}
}

func (v *contractListView) ID() ViewID    { return ViewContractList }
func (v *contractListView) Title() string { return "Contracts" }

func (v *contractListView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "to signature")),
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "mark signed")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *contractListView) Init() tea.Cmd {
	return v.load()
}

func (v *contractListView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return contractsLoadedMsg{contracts: app.Store.Contracts()}
	}
}

func (v *contractListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contractsLoadedMsg:
		v.loading = false
		v.contracts = msg.contracts
		if v.cursor >= len(v.contracts) {
			v.cursor = max(len(v.contracts)-1, 0)
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
			if v.cursor < len(v.contracts)-1 {
				v.cursor++
			}
		case "p":
			return v, v.setStatus(domain.ContractPendingSignature)
		case "g":
			return v, v.setStatus(domain.ContractSigned)
		case "x":
			if v.cursor < len(v.contracts) {
				c := v.contracts[v.cursor]
				app := v.state.App
				return v, tea.Batch(func() tea.Msg {
					if err := app.Store.DeleteContract(c.ID); err != nil {
						return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
					}
					return flashMsg{text: formatter.StyleGreen.Render("✔") + " Deleted " + formatter.Bold(c.Number)}
				}, refreshViews())
			}
		}
	}
	return v, nil
}

func (v *contractListView) setStatus(status domain.ContractStatus) tea.Cmd {
	if v.cursor >= len(v.contracts) {
		return nil
	}
	id := v.contracts[v.cursor].ID
	app := v.state.App
	return tea.Batch(func() tea.Msg {
		c, err := app.Store.UpdateContract(id, domain.ContractPatch{Status: &status})
		if err != nil {
			return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return flashMsg{text: formatter.StyleGreen.Render("✔") + " " + formatter.Bold(c.Number) + " " + formatter.ContractStatusPill(c.Status)}
	}, refreshViews())
}

func (v *contractListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading contracts...")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(v.contracts) == 0 {
		b.WriteString("  " + formatter.Dim("No contracts.") + "\n")
		return b.String()
	}

	for i, c := range v.contracts {
		cursor := "  "
		numStyle := formatter.StyleGreen
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			numStyle = formatter.StyleGreen.Bold(true)
		}

		signed := formatter.Dim("—")
		if c.SignedAt != nil {
			signed = formatter.Dim("signed " + formatter.FormatDate(*c.SignedAt))
		}

		b.WriteString(fmt.Sprintf("%s%s %s %s %s %s\n",
			cursor,
			numStyle.Render(c.Number),
			formatter.PadRight(c.ProjectName, 26),
			formatter.Dim(formatter.PadRight(c.ClientName, 18)),
			formatter.ContractStatusPill(c.Status),
			signed,
		))
	}

	return b.String()
}
