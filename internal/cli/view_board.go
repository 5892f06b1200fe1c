package cli

import (
	"fmt"
	"strings"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// boardLoadedMsg signals that board data has been loaded.
type boardLoadedMsg struct {
	projects []domain.Project
}

// boardView is the project board: one column per status, cards moved
// between columns with a grab-move-drop cycle. Status changes are applied
// to the working copy immediately while a card is held and only written
// to the store on drop; cancelling reverts the working copy.
type boardView struct {
	state *SharedState

	// Working copy of the projects, reordered and restatused locally
	// while a card is held.
	projects []domain.Project

	col int // cursor column, index into domain.BoardColumns
	row int // cursor row within the column

	grabbed    bool
	grabbedID  string
	origStatus domain.ProjectStatus

	loading bool
	err     error
}

func newBoardView(state *SharedState) *boardView {
	return &boardView{state: state, loading: true}
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "Board" }

func (v *boardView) ShortHelp() []key.Binding {
	if v.grabbed {
		return []key.Binding{
			key.NewBinding(key.WithKeys("h", "l"), key.WithHelp("←/→", "move")),
			key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("↑/↓", "reorder")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "grab")),
		key.NewBinding(key.WithKeys("h", "j", "k", "l"), key.WithHelp("hjkl", "navigate")),
	}
}

// grabbing reports whether a card is currently held; the root model uses
// it to let esc cancel the move instead of popping the view.
func (v *boardView) grabbing() bool { return v.grabbed }

func (v *boardView) Init() tea.Cmd {
	return v.load()
}

func (v *boardView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		return boardLoadedMsg{projects: app.Store.Projects()}
	}
}

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		v.loading = false
		v.projects = msg.projects
		v.clampCursor()
		return v, nil

	case refreshViewMsg:
		if !v.grabbed {
			return v, v.load()
		}
		return v, nil

	case tea.KeyMsg:
		if v.grabbed {
			return v.updateGrabbed(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *boardView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.col > 0 {
			v.col--
			v.clampCursor()
		}
	case "right", "l":
		if v.col < len(domain.BoardColumns)-1 {
			v.col++
			v.clampCursor()
		}
	case "up", "k":
		if v.row > 0 {
			v.row--
		}
	case "down", "j":
		if v.row < len(v.column(v.col))-1 {
			v.row++
		}
	case "enter", " ":
		cards := v.column(v.col)
		if v.row < len(cards) {
			v.grabbed = true
			v.grabbedID = cards[v.row].ID
			v.origStatus = cards[v.row].Status
		}
	case "r":
		return v, v.load()
	}
	return v, nil
}

func (v *boardView) updateGrabbed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if v.col > 0 {
			v.moveGrabbedTo(domain.BoardColumns[v.col-1])
			v.col--
		}
	case "right", "l":
		if v.col < len(domain.BoardColumns)-1 {
			v.moveGrabbedTo(domain.BoardColumns[v.col+1])
			v.col++
		}
	case "up", "k":
		v.reorderGrabbed(-1)
	case "down", "j":
		v.reorderGrabbed(+1)
	case "enter", " ":
		return v.drop()
	case "esc":
		v.cancel()
	}
	return v, nil
}

// moveGrabbedTo restatuses the held card in the working copy only.
func (v *boardView) moveGrabbedTo(status domain.ProjectStatus) {
	for i := range v.projects {
		if v.projects[i].ID == v.grabbedID {
			v.projects[i].Status = status
			break
		}
	}
	v.row = v.rowOfGrabbed(status)
}

// reorderGrabbed swaps the held card with its column neighbor. Ordering is
// presentation state: it survives until the next reload, nothing more.
func (v *boardView) reorderGrabbed(dir int) {
	cards := v.column(v.col)
	cur := -1
	for i, c := range cards {
		if c.ID == v.grabbedID {
			cur = i
			break
		}
	}
	tgt := cur + dir
	if cur < 0 || tgt < 0 || tgt >= len(cards) {
		return
	}
	a := v.indexOf(cards[cur].ID)
	b := v.indexOf(cards[tgt].ID)
	v.projects[a], v.projects[b] = v.projects[b], v.projects[a]
	v.row = tgt
}

// drop commits the move. Dropping a card back on its source column is a
// no-op and writes nothing.
func (v *boardView) drop() (tea.Model, tea.Cmd) {
	id := v.grabbedID
	newStatus := domain.BoardColumns[v.col]
	orig := v.origStatus
	v.grabbed = false
	v.grabbedID = ""

	if newStatus == orig {
		return v, nil
	}

	app := v.state.App
	return v, func() tea.Msg {
		p, err := app.Store.UpdateProject(id, domain.ProjectPatch{Status: &newStatus})
		if err != nil {
			return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
		}
		return flashMsg{text: fmt.Sprintf("%s %s %s %s",
			formatter.StyleGreen.Render("✔"),
			formatter.Bold(p.Name),
			formatter.Dim("→"),
			formatter.ProjectStatusLabel(newStatus))}
	}
}

// cancel reverts the working copy and releases the card.
func (v *boardView) cancel() {
	for i := range v.projects {
		if v.projects[i].ID == v.grabbedID {
			v.projects[i].Status = v.origStatus
			break
		}
	}
	v.grabbed = false
	v.grabbedID = ""
	for ci, st := range domain.BoardColumns {
		if st == v.origStatus {
			v.col = ci
		}
	}
	v.clampCursor()
}

// ── working-copy helpers ─────────────────────────────────────────────────────

func (v *boardView) column(col int) []domain.Project {
	status := domain.BoardColumns[col]
	var out []domain.Project
	for _, p := range v.projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

func (v *boardView) indexOf(id string) int {
	for i := range v.projects {
		if v.projects[i].ID == id {
			return i
		}
	}
	return -1
}

func (v *boardView) rowOfGrabbed(status domain.ProjectStatus) int {
	row := 0
	for _, p := range v.projects {
		if p.Status != status {
			continue
		}
		if p.ID == v.grabbedID {
			return row
		}
		row++
	}
	return 0
}

func (v *boardView) clampCursor() {
	n := len(v.column(v.col))
	if v.row >= n {
		v.row = n - 1
	}
	if v.row < 0 {
		v.row = 0
	}
}

// ── rendering ────────────────────────────────────────────────────────────────

func (v *boardView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading board...")
	}

	colWidth := 24
	if v.state.Width > 0 {
		if w := v.state.Width/len(domain.BoardColumns) - 2; w > 16 {
			colWidth = w
		}
	}

	var cols []string
	for ci, status := range domain.BoardColumns {
		cols = append(cols, v.renderColumn(ci, status, colWidth))
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (v *boardView) renderColumn(ci int, status domain.ProjectStatus, width int) string {
	cards := v.column(ci)

	style := formatter.ProjectStatusStyle(status)
	header := style.Render(formatter.PadRight(formatter.ProjectStatusLabel(status), width-6)) +
		formatter.Dim(fmt.Sprintf("%3d", len(cards)))

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(formatter.Dim(strings.Repeat("─", width)) + "\n")

	if len(cards) == 0 {
		b.WriteString(formatter.Dim("  (empty)") + "\n")
	}

	for ri, p := range cards {
		b.WriteString(v.renderCard(p, width, ci == v.col && ri == v.row))
	}

	return lipgloss.NewStyle().Width(width + 2).PaddingRight(2).Render(b.String())
}

func (v *boardView) renderCard(p domain.Project, width int, selected bool) string {
	name := formatter.PadRight(p.Name, width-2)
	cursor := "  "
	nameStyle := formatter.StyleFg

	if selected {
		nameStyle = formatter.StyleBold
		if v.grabbed && p.ID == v.grabbedID {
			cursor = formatter.StyleYellow.Render("◆ ")
			nameStyle = formatter.StyleYellow.Bold(true)
		} else {
			cursor = formatter.StyleGreen.Render("▸ ")
		}
	}

	line1 := cursor + nameStyle.Render(name)
	line2 := "  " + formatter.Dim(formatter.PadRight(p.ClientName, width-12)) +
		formatter.StyleBlue.Render(fmt.Sprintf("%3d%%", p.DeriveProgress()))
	line3 := "  " + formatter.Dim(formatter.FormatTRY(p.Budget))

	return line1 + "\n" + line2 + "\n" + line3 + "\n\n"
}
