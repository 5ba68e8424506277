package commands

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewImagesCommand creates the images command group
func NewImagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "images",
		Aliases: []string{"image"},
		Short:   "Manage images",
		Long:    "List images known to the daemon",
	}

	cmd.AddCommand(newImagesListCommand())

	return cmd
}

func newImagesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List images",
		Long:    "List all top-level images",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			images, err := client.Images().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list images: %w", err)
			}

			return render(cmd.OutOrStdout(), images, func(table *tablewriter.Table) {
				table.Header("ID", "Tags", "Created", "Size")

				for _, image := range images {
					tags := NotAvailable
					if len(image.RepoTags) > 0 {
						tags = strings.Join(image.RepoTags, ", ")
					}

					_ = table.Append(shortID(image.ID), tags, humanSince(image.Created), humanSize(image.Size))
				}
			})
		},
	}
}
