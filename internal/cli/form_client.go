package cli

import (
	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// clientFormFields holds form-bound values for the client form.
type clientFormFields struct {
	name    string
	email   string
	phone   string
	company string
	address string
	status  string
}

// newClientFormView builds the add/edit client form. An empty id means
// a new client; otherwise fields are pre-populated and saved as a patch.
func newClientFormView(state *SharedState, id string) View {
	f := &clientFormFields{status: string(domain.ClientActive)}
	editing := id != ""
	title := "Add Client"

	if editing {
		title = "Edit Client"
		if c, ok := state.App.Store.Client(id); ok {
			f.name = c.Name
			f.email = c.Email
			f.phone = c.Phone
			f.company = c.Company
			f.address = c.Address
			f.status = string(c.Status)
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&f.name).Validate(validateRequired),
			huh.NewInput().Title("Email").Value(&f.email),
			huh.NewInput().Title("Phone").Placeholder("+90 555 000 0000").Value(&f.phone),
			huh.NewInput().Title("Company").Value(&f.company),
		),
		huh.NewGroup(
			huh.NewInput().Title("Address").Placeholder("optional").Value(&f.address),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Aktif", string(domain.ClientActive)),
					huh.NewOption("Pasif", string(domain.ClientInactive)),
				).
				Value(&f.status),
		),
	).WithTheme(meanvalHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		app := state.App
		return func() tea.Msg {
			status := domain.ClientStatus(f.status)
			if editing {
				patch := domain.ClientPatch{
					Name:    &f.name,
					Email:   &f.email,
					Phone:   &f.phone,
					Company: &f.company,
					Address: &f.address,
					Status:  &status,
				}
				c, err := app.Store.UpdateClient(id, patch)
				if err != nil {
					return flashMsg{text: formatter.StyleRed.Render("Error: " + err.Error())}
				}
				app.Store.ReconcileClientRefs(c.ID)
				return flashMsg{text: formatter.StyleGreen.Render("✔") + " Updated " + formatter.Bold(c.Name)}
			}

			c := app.Store.AddClient(domain.Client{
				Name:    f.name,
				Email:   f.email,
				Phone:   f.phone,
				Company: f.company,
				Address: f.address,
				Status:  status,
			})
			return flashMsg{text: formatter.StyleGreen.Render("✔") + " Added " + formatter.Bold(c.Name)}
		}
	}

	return newFormView(state, title, form, done)
}
