package cli

import (
	"fmt"

	"github.com/meanval/meanval/internal/cli/formatter"
	"github.com/meanval/meanval/internal/domain"
	"github.com/spf13/cobra"
)

func newClientCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Manage clients",
	}

	cmd.AddCommand(
		newClientListCmd(app),
		newClientShowCmd(app),
		newClientAddCmd(app),
		newClientRemoveCmd(app),
	)

	return cmd
}

func newClientListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, c := range app.Store.Clients() {
				fmt.Printf("%s  %s %s %s  %d proj  %s\n",
					formatter.TruncID(c.ID),
					formatter.PadRight(c.Name, 22),
					formatter.Dim(formatter.PadRight(c.Company, 24)),
					formatter.ClientStatusPill(c.Status),
					c.TotalProjects,
					formatter.FormatTRY(c.TotalRevenue))
			}
			return nil
		},
	}
}

func newClientShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := app.Store.Client(args[0])
			if !ok {
				return fmt.Errorf("client not found: %q", args[0])
			}
			fmt.Println(formatter.Bold(c.Name) + "  " + formatter.ClientStatusPill(c.Status))
			fmt.Println(formatter.Dim("Company: ") + c.Company)
			fmt.Println(formatter.Dim("Email:   ") + c.Email)
			fmt.Println(formatter.Dim("Phone:   ") + c.Phone)
			if c.Address != "" {
				fmt.Println(formatter.Dim("Address: ") + c.Address)
			}
			fmt.Printf("%s%d projects, %s\n", formatter.Dim("Totals:  "), c.TotalProjects, formatter.FormatTRY(c.TotalRevenue))
			fmt.Println(formatter.Dim("Since:   ") + formatter.FormatDate(c.CreatedAt))
			return nil
		},
	}
}

func newClientAddCmd(app *App) *cobra.Command {
	var name, email, phone, company, address string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new client",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			c := app.Store.AddClient(domain.Client{
				Name:    name,
				Email:   email,
				Phone:   phone,
				Company: company,
				Address: address,
			})
			app.Store.Flush()
			fmt.Printf("Created client %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Contact name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.Flags().StringVar(&address, "address", "", "Postal address")

	return cmd
}

func newClientRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.DeleteClient(args[0]); err != nil {
				return err
			}
			app.Store.Flush()
			fmt.Printf("Deleted client %s\n", args[0])
			return nil
		},
	}
}
