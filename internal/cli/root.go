package cli

import (
	"github.com/meanval/meanval/internal/store"
	"github.com/spf13/cobra"
)

// App holds the shared dependencies used by CLI commands and TUI views.
type App struct {
	Store *store.Store

	// IsInteractive reports whether stdout is a terminal; the root
	// command only launches the TUI when it is.
	IsInteractive bool
}

// NewRootCmd creates the top-level "meanval" command and registers all
// subcommands against the provided App. With no arguments it launches
// the interactive TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "meanval",
		Short: "Agency operations: clients, projects, proposals, contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newClientCmd(app),
		newProjectCmd(app),
		newProposalCmd(app),
		newContractCmd(app),
		newShowcaseCmd(app),
		newBoardCmd(app),
		newStatusCmd(app),
	)

	return root
}
