package cli

import (
	"fmt"
	"time"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectShowCmd(app),
		newProjectAddCmd(app),
		newProjectMoveCmd(app),
		newProjectRemoveCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	var clientID, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range app.Store.Projects() {
				if clientID != "" && p.ClientID != clientID {
					continue
				}
				if status != "" && string(p.Status) != status {
					continue
				}
				fmt.Printf("%s  %s %s %s %3d%%  %s\n",
					formatter.TruncID(p.ID),
					formatter.PadRight(p.Name, 26),
					formatter.Dim(formatter.PadRight(p.ClientName, 20)),
					formatter.ProjectStatusPill(p.Status),
					p.DeriveProgress(),
					formatter.FormatTRY(p.Budget))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Only projects for this client id")
	cmd.Flags().StringVar(&status, "status", "", "Only projects with this status")

	return cmd
}

func newProjectShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project with its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := app.Store.Project(args[0])
			if !ok {
				return fmt.Errorf("project not found: %q", args[0])
			}
			fmt.Println(formatter.Bold(p.Name) + "  " + formatter.ProjectStatusPill(p.Status))
			if p.Description != "" {
				fmt.Println(formatter.Dim(p.Description))
			}
			fmt.Println(formatter.Dim("Client:   ") + p.ClientName)
			fmt.Printf("%s%s → %s\n", formatter.Dim("Dates:    "), formatter.FormatDate(p.StartDate), formatter.FormatDate(p.EndDate))
			fmt.Println(formatter.Dim("Budget:   ") + formatter.FormatTRY(p.Budget))
			fmt.Println(formatter.Dim("Progress: ") + formatter.RenderProgress(float64(p.DeriveProgress())/100, 20))
			for _, t := range p.Tasks {
				check := "[ ]"
				if t.Completed {
					check = "[✔]"
				}
				fmt.Printf("  %s %s\n", check, t.Title)
			}
			return nil
		},
	}
}

func newProjectAddCmd(app *App) *cobra.Command {
	var name, description, clientID, start, end string
	var budget float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			p := domain.Project{
				Name:        name,
				Description: description,
				ClientRef:   domain.ClientRef{ClientID: clientID},
				Budget:      budget,
			}
			if start != "" {
				t, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				p.StartDate = t
			}
			if end != "" {
				t, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				p.EndDate = t
			}
			created := app.Store.AddProject(p)
			app.Store.Flush()
			fmt.Printf("Created project %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&clientID, "client", "", "Client id")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Budget in TRY")

	return cmd
}

func newProjectMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move a project to another board column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.ProjectStatus(args[1])
			valid := false
			for _, st := range domain.BoardColumns {
				if st == status {
					valid = true
				}
			}
			if !valid {
				return fmt.Errorf("unknown status %q", args[1])
			}
			p, err := app.Store.UpdateProject(args[0], domain.ProjectPatch{Status: &status})
			if err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("Moved %s to %s\n", p.Name, formatter.ProjectStatusLabel(p.Status))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.DeleteProject(args[0]); err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("Deleted project %s\n", args[0])
			return nil
		},
	}
}
