package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSwarmCommand creates the swarm command group
func NewSwarmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swarm",
		Short: "Inspect the swarm",
		Long:  "Inspect the swarm the daemon belongs to",
	}

	cmd.AddCommand(newSwarmInspectCommand())

	return cmd
}

func newSwarmInspectCommand() *cobra.Command {
	var showTokens bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show swarm details",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			swarm, err := client.Swarm().Inspect(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to inspect swarm: %w", err)
			}

			if !showTokens {
				swarm.JoinTokens = nil
			}

			return render(cmd.OutOrStdout(), swarm, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", stringOr(swarm.ID, NotAvailable))
				_ = table.Append("Created", humanSinceRFC3339(swarm.CreatedAt))
				_ = table.Append("Updated", humanSinceRFC3339(swarm.UpdatedAt))

				if swarm.Version != nil && swarm.Version.Index != nil {
					_ = table.Append("Version", strconv.FormatUint(*swarm.Version.Index, 10))
				}

				if swarm.Spec != nil {
					_ = table.Append("Name", stringOr(swarm.Spec.Name, NotAvailable))

					if swarm.Spec.Orchestration != nil && swarm.Spec.Orchestration.TaskHistoryRetentionLimit != nil {
						_ = table.Append("Task History Retention", strconv.FormatInt(*swarm.Spec.Orchestration.TaskHistoryRetentionLimit, 10))
					}

					if swarm.Spec.EncryptionConfig != nil && swarm.Spec.EncryptionConfig.AutoLockManagers != nil {
						_ = table.Append("Autolock", strconv.FormatBool(*swarm.Spec.EncryptionConfig.AutoLockManagers))
					}
				}

				if swarm.JoinTokens != nil {
					_ = table.Append("Worker Token", stringOr(swarm.JoinTokens.Worker, NotAvailable))
					_ = table.Append("Manager Token", stringOr(swarm.JoinTokens.Manager, NotAvailable))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&showTokens, "show-tokens", false, "include join tokens in the output")

	return cmd
}
