package cli

import (
	"fmt"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/spf13/cobra"
)

func newShowcaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Manage project showcases",
	}

	cmd.AddCommand(
		newShowcaseListCmd(app),
		newShowcaseShowCmd(app),
		newShowcaseAddCmd(app),
		newShowcaseRemoveCmd(app),
	)

	return cmd
}

func newShowcaseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List showcases",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sc := range app.Store.Showcases() {
				fmt.Printf("%s  %s %s  %s\n",
					formatter.TruncID(sc.ID),
					formatter.PadRight(sc.Title, 28),
					formatter.ShowcaseStatusPill(sc.Status),
					formatter.FormatTRY(sc.FinalAmount))
			}
			return nil
		},
	}
}

func newShowcaseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a showcase with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, ok := app.Store.Showcase(args[0])
			if !ok {
				return fmt.Errorf("showcase not found: %q", args[0])
			}
			fmt.Println(formatter.Bold(sc.Title) + "  " + formatter.ShowcaseStatusPill(sc.Status))
			if sc.Introduction != "" {
				fmt.Println(formatter.Dim(sc.Introduction))
			}
			for _, it := range sc.Items {
				fmt.Printf("  %s %.0f × %s = %s\n",
					formatter.PadRight(it.Name, 30),
					it.Quantity,
					formatter.FormatTRY(it.UnitPrice),
					formatter.FormatTRY(it.Quantity*it.UnitPrice))
			}
			fmt.Println(formatter.Dim("Subtotal: ") + formatter.FormatTRY(sc.TotalAmount))
			if sc.Discount > 0 {
				fmt.Println(formatter.Dim("Discount: ") + "-" + formatter.FormatTRY(sc.Discount))
			}
			fmt.Println(formatter.Dim("Total:    ") + formatter.Bold(formatter.FormatTRY(sc.FinalAmount)))
			return nil
		},
	}
}

func newShowcaseAddCmd(app *App) *cobra.Command {
	var projectID, title, introduction string
	var discount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a showcase for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectID == "" {
				return fmt.Errorf("--project-id is required")
			}
			sc, err := app.Store.AddShowcase(domain.Showcase{
				ProjectID:    projectID,
				Title:        title,
				Introduction: introduction,
				Discount:     discount,
			})
			if err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("Created showcase %s (%s)\n", sc.Title, sc.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project-id", "", "Project id")
	cmd.Flags().StringVar(&title, "title", "", "Showcase title")
	cmd.Flags().StringVar(&introduction, "intro", "", "Introduction text")
	cmd.Flags().Float64Var(&discount, "discount", 0, "Discount in TRY")

	return cmd
}

func newShowcaseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a showcase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.DeleteShowcase(args[0]); err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("Deleted showcase %s\n", args[0])
			return nil
		},
	}
}
