package cli

import (
	"fmt"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/spf13/cobra"
)

// newBoardCmd prints the board as text, or opens the interactive board
// when running on a terminal.
func newBoardCmd(app *App) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the project board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive && !plain {
				return runBoardTUI(app)
			}

			projects := app.Store.Projects()
			for _, status := range domain.BoardColumns {
				fmt.Println(formatter.ProjectStatusStyle(status).Render(formatter.ProjectStatusLabel(status)))
				n := 0
				for _, p := range projects {
					if p.Status != status {
						continue
					}
					n++
					fmt.Printf("  %s %s %3d%%\n",
						formatter.PadRight(p.Name, 28),
						formatter.Dim(formatter.PadRight(p.ClientName, 20)),
						p.DeriveProgress())
				}
				if n == 0 {
					fmt.Println(formatter.Dim("  (empty)"))
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print the board without the interactive UI")

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show headline numbers",
		RunE: func(cmd *cobra.Command, args []string) error {
			st := app.Store.Stats()
			fmt.Printf("%s %d\n", formatter.Dim("Projects:         "), st.TotalProjects)
			fmt.Printf("%s %d\n", formatter.Dim("Active clients:   "), st.ActiveClients)
			fmt.Printf("%s %d\n", formatter.Dim("Pending proposals:"), st.PendingProposals)
			fmt.Printf("%s %s\n", formatter.Dim("Total budget:     "), formatter.FormatTRY(st.TotalRevenue))
			for _, status := range domain.BoardColumns {
				fmt.Printf("  %s %d\n",
					formatter.PadRight(formatter.ProjectStatusLabel(status), 14),
					st.ProjectsByStatus[status])
			}
			return nil
		},
	}
}
