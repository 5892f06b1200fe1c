package cli

import (
	"fmt"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/spf13/cobra"
)

func newContractCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage contracts",
	}

	cmd.AddCommand(
		newContractListCmd(app),
		newContractShowCmd(app),
		newContractAddCmd(app),
		newContractSignCmd(app),
		newContractRemoveCmd(app),
	)

	return cmd
}

func newContractListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range app.Store.Contracts() {
				signed := "—"
				if c.SignedAt != nil {
					signed = formatter.FormatDate(*c.SignedAt)
				}
				fmt.Printf("%s  %s %s %s  %s\n",
					formatter.StyleGreen.Render(c.Number),
					formatter.PadRight(c.ProjectName, 26),
					formatter.Dim(formatter.PadRight(c.ClientName, 20)),
					formatter.ContractStatusPill(c.Status),
					formatter.Dim(signed))
			}
			return nil
		},
	}
}

func newContractShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := app.Store.Contract(args[0])
			if !ok {
				return fmt.Errorf("contract not found: %q", args[0])
			}
			fmt.Println(formatter.StyleGreen.Render(c.Number) + "  " + formatter.Bold(c.ProjectName) + "  " + formatter.ContractStatusPill(c.Status))
			fmt.Println(formatter.Dim("Client: ") + c.ClientName)
			if c.SignedAt != nil {
				fmt.Println(formatter.Dim("Signed: ") + formatter.FormatDate(*c.SignedAt))
			}
			if c.Content != "" {
				fmt.Println()
				fmt.Println(c.Content)
			}
			return nil
		},
	}
}

func newContractAddCmd(app *App) *cobra.Command {
	var projectID, projectName, clientID, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectName == "" {
				return fmt.Errorf("--project is required")
			}
			c := app.Store.AddContract(domain.Contract{
				ProjectID:   projectID,
				ProjectName: projectName,
				ClientRef:   domain.ClientRef{ClientID: clientID},
				Content:     content,
			})
			app.Store.Flush()
			fmt.Printf("Created contract %s (%s)\n", c.Number, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project-id", "", "Project id")
	cmd.Flags().StringVar(&projectName, "project", "", "Project name")
	cmd.Flags().StringVar(&clientID, "client", "", "Client id")
	cmd.Flags().StringVar(&content, "content", "", "Contract body")

	return cmd
}

func newContractSignCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sign <id>",
		Short: "Mark a contract as signed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.ContractSigned
			c, err := app.Store.UpdateContract(args[0], domain.ContractPatch{Status: &status})
			if err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("%s signed at %s\n", c.Number, formatter.FormatDate(*c.SignedAt))
			return nil
		},
	}
}

func newContractRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a contract",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.DeleteContract(args[0]); err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("Deleted contract %s\n", args[0])
			return nil
		},
	}
}
