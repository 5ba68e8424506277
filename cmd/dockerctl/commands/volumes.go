package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewVolumesCommand creates the volumes command group
func NewVolumesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "volumes",
		Aliases: []string{"volume"},
		Short:   "Manage volumes",
		Long:    "List volumes known to the daemon",
	}

	cmd.AddCommand(newVolumesListCommand())

	return cmd
}

func newVolumesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List volumes",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			volumes, err := client.Volumes().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list volumes: %w", err)
			}

			for _, warning := range volumes.Warnings {
				logrus.Warn(warning)
			}

			return render(cmd.OutOrStdout(), volumes, func(table *tablewriter.Table) {
				table.Header("Driver", "Name", "Scope", "Mountpoint")

				for _, volume := range volumes.Volumes {
					_ = table.Append(
						stringOr(volume.Driver, NotAvailable),
						stringOr(volume.Name, NotAvailable),
						stringOr(volume.Scope, NotAvailable),
						stringOr(volume.Mountpoint, NotAvailable),
					)
				}
			})
		},
	}
}
