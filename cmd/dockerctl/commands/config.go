package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/docker-client/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show the effective dockerctl configuration or write it to the config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the configuration after flags, environment and config file are merged",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := loadSettings()
			configFile := viper.ConfigFileUsed()

			return render(cmd.OutOrStdout(), settings, func(table *tablewriter.Table) {
				table.Header("Setting", "Value")
				_ = table.Append("Config File", stringOr(&configFile, NotAvailable))
				_ = table.Append("Host", settings.Host)
				_ = table.Append("API Version", settings.APIVersion)
				_ = table.Append("Output", settings.Output)
				_ = table.Append("Verbose", fmt.Sprintf("%t", settings.Verbose))
				_ = table.Append("Timeout", settings.Timeout.String())
				_ = table.Append("Headers", formatLabels(settings.Headers))
			})
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current configuration to the config file",
		Long:  "Persist the effective host, API version, output and timeout settings to $HOME/.dockerctl/config.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			if !force {
				_, err = os.Stat(configFile)
				if err == nil {
					return fmt.Errorf("%w: %s", constants.ErrConfigExists, configFile)
				}

				if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("failed to check config file: %w", err)
				}
			}

			err = saveSettings(configFile, loadSettings())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", configFile)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

// configFilePath returns the --config path if given, else the default
// location under the user's home directory.
func configFilePath() (string, error) {
	if configFile := viper.GetString("config"); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+".yml"), nil
}

func saveSettings(configFile string, settings Settings) error {
	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("%w: %w", constants.ErrConfigDirUnwritable, err)
	}

	// Verbose is a per-invocation switch and is not persisted.
	persisted := map[string]interface{}{
		"host":        settings.Host,
		"api_version": settings.APIVersion,
		"output":      settings.Output,
		"timeout":     settings.Timeout.String(),
	}

	if len(settings.Headers) > 0 {
		persisted["headers"] = settings.Headers
	}

	data, err := yaml.Marshal(persisted)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
