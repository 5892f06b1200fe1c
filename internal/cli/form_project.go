package cli

import (
	"fmt"
	"time"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// projectFormFields holds form-bound values for the project form.
type projectFormFields struct {
	name        string
	description string
	clientID    string
	status      string
	startDate   string
	endDate     string
	budget      string
}

// newProjectFormView builds the add/edit project form. An empty id means
// a new project; otherwise fields are pre-populated and saved as a patch.
func newProjectFormView(state *SharedState, id string) View {
	f := &projectFormFields{status: string(domain.ProjectPlanning)}
	editing := id != ""
	title := "Add Project"

	if editing {
		title = "Edit Project"
		if p, ok := state.App.Store.Project(id); ok {
			f.name = p.Name
			f.description = p.Description
			f.clientID = p.ClientID
			f.status = string(p.Status)
			if !p.StartDate.IsZero() {
				f.startDate = p.StartDate.Format("2006-01-02")
			}
			if !p.EndDate.IsZero() {
				f.endDate = p.EndDate.Format("2006-01-02")
			}
			if p.Budget > 0 {
				f.budget = fmt.Sprintf("%.0f", p.Budget)
			}
		}
	}
	if f.clientID == "" && state.ActiveClientID != "" {
		f.clientID = state.ActiveClientID
	}

	clientOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, c := range state.App.Store.Clients() {
		clientOptions = append(clientOptions, huh.NewOption(c.Company, c.ID))
	}

	statusOptions := make([]huh.Option[string], 0, len(domain.BoardColumns))
	for _, st := range domain.BoardColumns {
		statusOptions = append(statusOptions, huh.NewOption(formatter.ProjectStatusLabel(st), string(st)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.name).Validate(validateRequired),
			huh.NewInput().Title("Description").Placeholder("optional").Value(&f.description),
			huh.NewSelect[string]().Title("Client").Options(clientOptions...).Value(&f.clientID),
			huh.NewSelect[string]().Title("Status").Options(statusOptions...).Value(&f.status),
		),
		huh.NewGroup(
			huh.NewInput().Title("Start Date (YYYY-MM-DD)").Placeholder("2026-01-15").
				Value(&f.startDate).Validate(validateOptionalDate),
			huh.NewInput().Title("End Date (YYYY-MM-DD)").Placeholder("2026-06-30").
				Value(&f.endDate).Validate(validateOptionalDate),
			huh.NewInput().Title("Budget (TRY)").Placeholder("150000").
				Value(&f.budget).Validate(validateOptionalAmount),
		),
	).WithTheme(meanvalHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			status := domain.ProjectStatus(f.status)
			if editing {
				patch := domain.ProjectPatch{
					Name:        &f.name,
					Description: &f.description,
					ClientID:    &f.clientID,
					Status:      &status,
				}
				if f.startDate != "" {
					d := parseDate(f.startDate)
					patch.StartDate = &d
				}
				if f.endDate != "" {
					d := parseDate(f.endDate)
					patch.EndDate = &d
				}
				if f.budget != "" {
					b := parseAmount(f.budget)
					patch.Budget = &b
				}
				p, err := app.Store.UpdateProject(id, patch)
				if err != nil {
					return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
				}
				return flashMsg{text: formatter.StyleGreen.Render("✔") + " Updated " + formatter.Bold(p.Name)}
			}

			p := domain.Project{
				Name:        f.name,
				Description: f.description,
				ClientRef:   domain.ClientRef{ClientID: f.clientID},
				Status:      status,
				Budget:      parseAmount(f.budget),
			}
			if f.startDate != "" {
				p.StartDate = parseDate(f.startDate)
			} else {
				p.StartDate = time.Now().UTC()
			}
			if f.endDate != "" {
				p.EndDate = parseDate(f.endDate)
			}
			created := app.Store.AddProject(p)
			return flashMsg{text: formatter.StyleGreen.Render("✔") + " Added " + formatter.Bold(created.Name)}
		}
	}

	return newFormView(state, title, form, done)
}
