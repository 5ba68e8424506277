package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// VersionInfo is the output of the version command.
type VersionInfo struct {
	Version string                `json:"version"          yaml:"version"`
	Commit  string                `json:"commit"           yaml:"commit"`
	Built   string                `json:"built"            yaml:"built"`
	Daemon  *docker.SystemVersion `json:"daemon,omitempty" yaml:"daemon,omitempty"`
}

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	var clientOnly bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display version information about dockerctl and the daemon it talks to",
		RunE: func(cmd *cobra.Command, args []string) error {
			versionInfo := VersionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}

			if !clientOnly {
				client, err := createClient()
				if err != nil {
					return err
				}

				daemon, err := client.System().Version(cmd.Context())
				if err != nil {
					return err
				}

				versionInfo.Daemon = daemon
			}

			return render(cmd.OutOrStdout(), versionInfo, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("Version", version)
				_ = table.Append("Commit", commit)
				_ = table.Append("Built", date)
				_ = table.Append("Library API Version", docker.APIVersion)

				if versionInfo.Daemon != nil {
					_ = table.Append("Daemon Version", stringOr(versionInfo.Daemon.Version, NotAvailable))
					_ = table.Append("Daemon API Version", stringOr(versionInfo.Daemon.APIVersion, NotAvailable))
					_ = table.Append("Daemon Min API Version", stringOr(versionInfo.Daemon.MinAPIVersion, NotAvailable))
					_ = table.Append("Daemon OS/Arch", stringOr(versionInfo.Daemon.Os, NotAvailable)+"/"+stringOr(versionInfo.Daemon.Arch, NotAvailable))
				}
			})
		},
	}

	cmd.Flags().BoolVar(&clientOnly, "client", false, "only show dockerctl's own version")

	return cmd
}
