package cli

import (
	"fmt"
	"time"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/spf13/cobra"
)

func newProposalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal",
		Short: "Manage proposals",
	}

	cmd.AddCommand(
		newProposalListCmd(app),
		newProposalShowCmd(app),
		newProposalAddCmd(app),
		newProposalStatusCmd(app),
		newProposalRemoveCmd(app),
	)

	return cmd
}

func newProposalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List proposals",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range app.Store.Proposals() {
				fmt.Printf("%s  %s %s %s  %s\n",
					formatter.StyleGreen.Render(p.Number),
					formatter.PadRight(p.ProjectName, 26),
					formatter.Dim(formatter.PadRight(p.ClientName, 20)),
					formatter.ProposalStatusPill(p.Status),
					formatter.FormatTRY(p.Amount))
			}
			return nil
		},
	}
}

func newProposalShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a proposal with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := app.Store.Proposal(args[0])
			if !ok {
				return fmt.Errorf("proposal not found: %q", args[0])
			}
			fmt.Println(formatter.StyleGreen.Render(p.Number) + "  " + formatter.Bold(p.ProjectName) + "  " + formatter.ProposalStatusPill(p.Status))
			if p.Description != "" {
				fmt.Println(formatter.Dim(p.Description))
			}
			fmt.Println(formatter.Dim("Client:      ") + p.ClientName)
			fmt.Println(formatter.Dim("Valid until: ") + formatter.FormatDate(p.ValidUntil))
			for _, it := range p.Items {
				fmt.Printf("  %s %.0f × %s = %s\n",
					formatter.PadRight(it.Description, 30),
					it.Quantity,
					formatter.FormatTRY(it.UnitPrice),
					formatter.FormatTRY(it.Total))
			}
			fmt.Println(formatter.Dim("Amount:      ") + formatter.Bold(formatter.FormatTRY(p.Amount)))
			return nil
		},
	}
}

func newProposalAddCmd(app *App) *cobra.Command {
	var clientID, projectName, description, validUntil string
	var amount float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new proposal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectName == "" {
				return fmt.Errorf("--project is required")
			}
			p := domain.Proposal{
				ClientRef:   domain.ClientRef{ClientID: clientID},
				ProjectName: projectName,
				Description: description,
				Amount:      amount,
			}
			if validUntil != "" {
				t, err := time.Parse("2006-01-02", validUntil)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", validUntil, err)
				}
				p.ValidUntil = t
			}
			created := app.Store.AddProposal(p)
			app.Store.Flush()
			fmt.Printf("Created proposal %s (%s)\n", created.Number, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client id")
	cmd.Flags().StringVar(&projectName, "project", "", "Proposed project name")
	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&validUntil, "valid-until", "", "Validity date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount in TRY")

	return cmd
}

func newProposalStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <draft|sent|accepted|rejected>",
		Short: "Change a proposal's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.ProposalStatus(args[1])
			switch status {
			case domain.ProposalDraft, domain.ProposalSent, domain.ProposalAccepted, domain.ProposalRejected:
			default:
				return fmt.Errorf("unknown status %q", args[1])
			}
			p, err := app.Store.UpdateProposal(args[0], domain.ProposalPatch{Status: &status})
			if err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("%s is now %s\n", p.Number, p.Status)
			return nil
		},
	}
}

func newProposalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.DeleteProposal(args[0]); err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("Deleted proposal %s\n", args[0])
			return nil
		},
	}
}
