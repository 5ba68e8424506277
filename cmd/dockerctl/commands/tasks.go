package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// NewTasksCommand creates the tasks command group
func NewTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"task"},
		Short:   "Manage swarm tasks",
		Long:    "List tasks scheduled on the swarm",
	}

	cmd.AddCommand(newTasksListCommand())

	return cmd
}

func newTasksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			tasks, err := client.Tasks().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			return render(cmd.OutOrStdout(), tasks, func(table *tablewriter.Table) {
				table.Header("ID", "Service", "Slot", "Node", "Desired State", "Current State", "Image")

				for _, task := range tasks {
					slot := NotAvailable
					if task.Slot != nil {
						slot = fmt.Sprintf("%d", *task.Slot)
					}

					image := NotAvailable
					if task.Spec != nil && task.Spec.ContainerSpec != nil {
						image = stringOr(task.Spec.ContainerSpec.Image, NotAvailable)
					}

					_ = table.Append(
						shortID(task.ID),
						shortID(task.ServiceID),
						slot,
						shortID(task.NodeID),
						taskState(task.DesiredState),
						currentState(task.Status),
						image,
					)
				}
			})
		},
	}
}

func taskState(state *docker.TaskState) string {
	if state == nil {
		return NotAvailable
	}

	return string(*state)
}

func currentState(status *docker.TaskStatus) string {
	if status == nil {
		return NotAvailable
	}

	state := taskState(status.State)
	if status.Timestamp != nil {
		state += " " + humanSinceRFC3339(status.Timestamp)
	}

	return state
}
