package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewNetworksCommand creates the networks command group
func NewNetworksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "networks",
		Aliases: []string{"network"},
		Short:   "Manage networks",
		Long:    "List networks known to the daemon",
	}

	cmd.AddCommand(newNetworksListCommand())

	return cmd
}

func newNetworksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			networks, err := client.Networks().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list networks: %w", err)
			}

			return render(cmd.OutOrStdout(), networks, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Driver", "Scope")

				for _, network := range networks {
					_ = table.Append(
						shortID(network.ID),
						stringOr(network.Name, NotAvailable),
						stringOr(network.Driver, NotAvailable),
						stringOr(network.Scope, NotAvailable),
					)
				}
			})
		},
	}
}
