package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// NewContainersCommand creates the containers command group
func NewContainersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "containers",
		Aliases: []string{"container", "ps"},
		Short:   "Manage containers",
		Long:    "List containers running on the daemon",
	}

	cmd.AddCommand(newContainersListCommand())

	return cmd
}

func newContainersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List containers",
		Long:    "List running containers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			containers, err := client.Containers().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list containers: %w", err)
			}

			return render(cmd.OutOrStdout(), containers, func(table *tablewriter.Table) {
				table.Header("ID", "Image", "Created", "Status", "Ports", "Names")

				for _, container := range containers {
					names := make([]string, 0, len(container.Names))
					for _, name := range container.Names {
						names = append(names, strings.TrimPrefix(name, "/"))
					}

					_ = table.Append(
						shortID(container.ID),
						stringOr(container.Image, NotAvailable),
						humanSince(container.Created),
						stringOr(container.Status, NotAvailable),
						formatPorts(container.Ports),
						strings.Join(names, ", "),
					)
				}
			})
		},
	}
}

// formatPorts renders port mappings the way docker ps does: 0.0.0.0:8080->80/tcp.
func formatPorts(ports []docker.Port) string {
	formatted := make([]string, 0, len(ports))

	for _, port := range ports {
		private := strconv.Itoa(docker.Deref(port.PrivatePort)) + "/" + stringOr(port.Type, "tcp")

		if port.PublicPort == nil {
			formatted = append(formatted, private)

			continue
		}

		formatted = append(formatted, fmt.Sprintf("%s:%d->%s", stringOr(port.IP, "0.0.0.0"), *port.PublicPort, private))
	}

	return strings.Join(formatted, ", ")
}
