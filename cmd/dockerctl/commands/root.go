package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/docker-client/internal/constants"
)

// NewRootCommand creates the dockerctl command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dockerctl",
		Short: "Docker engine API CLI",
		Long: `A command-line interface for the Docker engine API.

dockerctl talks to the daemon over its unix socket (or tcp) and covers
images, containers, networks, volumes, swarm tasks, the swarm itself and
swarm secrets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig()

			return validateOutputFormat(viper.GetString("output"))
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.dockerctl/config.yml)")
	rootCmd.PersistentFlags().StringP("host", "H", constants.DefaultHost, "daemon socket or address")
	rootCmd.PersistentFlags().String("api-version", constants.DefaultAPIVersion, "engine API version")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Duration("timeout", constants.DefaultHTTPTimeout, "timeout for a single request")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	_ = viper.BindPFlag("api_version", rootCmd.PersistentFlags().Lookup("api-version"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))

	// Add commands
	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewImagesCommand())
	rootCmd.AddCommand(NewContainersCommand())
	rootCmd.AddCommand(NewNetworksCommand())
	rootCmd.AddCommand(NewVolumesCommand())
	rootCmd.AddCommand(NewTasksCommand())
	rootCmd.AddCommand(NewSwarmCommand())
	rootCmd.AddCommand(NewSecretsCommand())

	return rootCmd
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in ~/.dockerctl/config.yml
			viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
			viper.SetConfigType("yml")
			viper.SetConfigName(constants.ConfigFileName)
		}
	}

	// Read in environment variables that match
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// Settings is the effective CLI configuration after flags, environment and
// config file have been merged.
type Settings struct {
	Host       string        `json:"host"        yaml:"host"`
	APIVersion string        `json:"api_version" yaml:"api_version"`
	Output     string        `json:"output"      yaml:"output"`
	Verbose    bool          `json:"verbose"     yaml:"verbose"`
	Timeout    time.Duration `json:"timeout"     yaml:"timeout"`
	// Headers are extra HTTP headers sent with every request, read from the
	// "headers" map of the config file.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

func loadSettings() Settings {
	return Settings{
		Host:       viper.GetString("host"),
		APIVersion: viper.GetString("api_version"),
		Output:     viper.GetString("output"),
		Verbose:    viper.GetBool("verbose"),
		Timeout:    viper.GetDuration("timeout"),
		Headers:    viper.GetStringMapString("headers"),
	}
}

func validateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, format)
	}
}
