package commands

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/docker-client/internal/constants"
	"github.com/fivetwenty-io/docker-client/pkg/docker"
)

// NewSecretsCommand creates the secrets command group
func NewSecretsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "secrets",
		Aliases: []string{"secret"},
		Short:   "Manage swarm secrets",
		Long:    "List, inspect, create, update and delete swarm secrets",
	}

	cmd.AddCommand(newSecretsListCommand())
	cmd.AddCommand(newSecretsInspectCommand())
	cmd.AddCommand(newSecretsCreateCommand())
	cmd.AddCommand(newSecretsUpdateCommand())
	cmd.AddCommand(newSecretsDeleteCommand())

	return cmd
}

func newSecretsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List secrets",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			secrets, err := client.Secrets().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list secrets: %w", err)
			}

			return render(cmd.OutOrStdout(), secrets, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Created", "Updated", "Labels")

				for _, secret := range secrets {
					name, labels := NotAvailable, ""
					if secret.Spec != nil {
						name = stringOr(secret.Spec.Name, NotAvailable)
						labels = formatLabels(secret.Spec.Labels)
					}

					_ = table.Append(
						stringOr(secret.ID, NotAvailable),
						name,
						humanSinceRFC3339(secret.CreatedAt),
						humanSinceRFC3339(secret.UpdatedAt),
						labels,
					)
				}
			})
		},
	}
}

func newSecretsInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect SECRET_ID",
		Short: "Show secret details",
		Long:  "Display the metadata of a secret. The daemon never returns the secret data.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			secret, err := client.Secrets().Inspect(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to inspect secret: %w", err)
			}

			return render(cmd.OutOrStdout(), secret, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", stringOr(secret.ID, NotAvailable))

				if secret.Version != nil && secret.Version.Index != nil {
					_ = table.Append("Version", strconv.FormatUint(*secret.Version.Index, 10))
				}

				_ = table.Append("Created", humanSinceRFC3339(secret.CreatedAt))
				_ = table.Append("Updated", humanSinceRFC3339(secret.UpdatedAt))

				if secret.Spec != nil {
					_ = table.Append("Name", stringOr(secret.Spec.Name, NotAvailable))
					_ = table.Append("Labels", formatLabels(secret.Spec.Labels))

					if secret.Spec.Driver != nil {
						_ = table.Append("Driver", stringOr(secret.Spec.Driver.Name, NotAvailable))
					}
				}
			})
		},
	}
}

func newSecretsCreateCommand() *cobra.Command {
	var (
		file   string
		data   string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a secret",
		Long: `Create a swarm secret.

The secret data is read from --file, from --data, or from stdin. When stdin
is a terminal the data is prompted for without echo. Use --file - to read
from stdin explicitly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return constants.ErrSecretNameRequired
			}

			parsedLabels, err := parseLabels(labels)
			if err != nil {
				return err
			}

			payload, err := readSecretData(cmd, file, data)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			created, err := client.Secrets().Create(cmd.Context(), &docker.SecretSpec{
				Name:   &name,
				Labels: parsedLabels,
				Data:   docker.Ptr(base64.StdEncoding.EncodeToString(payload)),
			})
			if err != nil {
				return fmt.Errorf("failed to create secret: %w", err)
			}

			return render(cmd.OutOrStdout(), created, func(table *tablewriter.Table) {
				table.Header("ID", "Name")
				_ = table.Append(created.ID, name)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read the secret data from a file (- for stdin)")
	cmd.Flags().StringVar(&data, "data", "", "secret data as a literal string")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "secret label (key=value), repeatable")

	return cmd
}

func newSecretsUpdateCommand() *cobra.Command {
	var (
		labels       []string
		removeLabels []string
	)

	cmd := &cobra.Command{
		Use:   "update SECRET_ID",
		Short: "Update secret labels",
		Long: `Update the labels of a secret.

The daemon only allows labels to change once a secret exists. The current
version index is read first and sent with the update, so a concurrent
change makes the update fail instead of being overwritten.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(labels) == 0 && len(removeLabels) == 0 {
				return constants.ErrNothingToUpdate
			}

			addLabels, err := parseLabels(labels)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			secret, err := client.Secrets().Inspect(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to inspect secret: %w", err)
			}

			if secret.Version == nil || secret.Version.Index == nil {
				return constants.ErrSecretVersionMissing
			}

			spec := secret.Spec
			if spec == nil {
				spec = &docker.SecretSpec{}
			}

			spec.Labels = mergeLabels(spec.Labels, addLabels, removeLabels)

			err = client.Secrets().Update(cmd.Context(), args[0], *secret.Version.Index, spec)
			if err != nil {
				return fmt.Errorf("failed to update secret: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated secret %s\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "add or replace a label (key=value), repeatable")
	cmd.Flags().StringArrayVar(&removeLabels, "remove-label", nil, "remove a label by key, repeatable")

	return cmd
}

func newSecretsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete SECRET_ID...",
		Aliases: []string{"rm"},
		Short:   "Delete secrets",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			for _, id := range args {
				err = client.Secrets().Delete(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("failed to delete secret %s: %w", id, err)
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted secret %s\n", id)
			}

			return nil
		},
	}
}

// readSecretData resolves the secret payload from the create flags.
func readSecretData(cmd *cobra.Command, file, data string) ([]byte, error) {
	if file != "" && data != "" {
		return nil, constants.ErrSecretDataConflict
	}

	var (
		payload []byte
		err     error
	)

	switch {
	case data != "":
		payload = []byte(data)
	case file != "" && file != "-":
		// #nosec G304
		payload, err = os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read secret file: %w", err)
		}
	default:
		payload, err = readSecretStdin(cmd)
		if err != nil {
			return nil, err
		}
	}

	if len(payload) == 0 {
		return nil, constants.ErrSecretDataRequired
	}

	return payload, nil
}

func readSecretStdin(cmd *cobra.Command) ([]byte, error) {
	in := cmd.InOrStdin()

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Secret data: ")

		payload, err := term.ReadPassword(int(f.Fd()))

		_, _ = fmt.Fprintln(cmd.ErrOrStderr())

		if err != nil {
			return nil, fmt.Errorf("failed to read secret data: %w", err)
		}

		return payload, nil
	}

	payload, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret data from stdin: %w", err)
	}

	return payload, nil
}

func parseLabels(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	labels := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidLabel, pair)
		}

		labels[strings.TrimSpace(key)] = value
	}

	return labels, nil
}

func mergeLabels(current, add map[string]string, remove []string) map[string]string {
	merged := make(map[string]string, len(current)+len(add))

	for key, value := range current {
		merged[key] = value
	}

	for _, key := range remove {
		delete(merged, key)
	}

	for key, value := range add {
		merged[key] = value
	}

	if len(merged) == 0 {
		return nil
	}

	return merged
}
