package app

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dtlpy/dtlpy-go/client"
	"github.com/dtlpy/dtlpy-go/entities"
	"github.com/dtlpy/dtlpy-go/repositories"
)

func init() { //nolint: gochecknoinits
	settingsCmd.PersistentFlags().StringVar(&projectID, "project", "", "Project context (default Platform.Project)")
	settingsCmd.PersistentFlags().StringVar(&orgID, "org", "", "Org context (default Platform.Org)")

	settingsListCmd.Flags().StringVar(&listFilter.Name, "name", "", "Only settings with this name")
	settingsListCmd.Flags().StringVar((*string)(&listFilter.ScopeType), "scope-type", "", "Only settings of this scope type")
	settingsListCmd.Flags().StringVar(&listFilter.ScopeID, "scope-id", "", "Only settings of this scope id")

	settingsCreateCmd.Flags().StringVarP(&documentFile, "file", "f", "-", "Setting document, - reads stdin")

	settingsCmd.AddCommand(settingsListCmd, settingsGetCmd, settingsCreateCmd, settingsSetCmd, settingsDeleteCmd)
	rootCmd.AddCommand(settingsCmd)
}

var (
	projectID    string
	orgID        string
	documentFile string
	listFilter   repositories.Filter

	settingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Manage platform settings",
	}

	settingsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := settingsRepository().List(cmd.Context(), listFilter)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), list)
		},
	}

	settingsGetCmd = &cobra.Command{
		Use:   "get <id>",
		Short: "Show a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settingsRepository().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), s)
		},
	}

	settingsCreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Create a setting from a JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readDocument(cmd.InOrStdin(), documentFile)
			if err != nil {
				return err
			}

			repo := settingsRepository()

			s, err := entities.Decode(data, repo)
			if err != nil {
				return err
			}

			created, err := repo.Create(cmd.Context(), s)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), created)
		},
	}

	settingsSetCmd = &cobra.Command{
		Use:   "set <id> <value>",
		Short: "Change the value of a setting",
		Long: `Change the value of a setting. The value is read as JSON,
anything that is not valid JSON is sent as a string.`,
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := settingsRepository().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			s.Value = parseValue(args[1])

			updated, err := s.Update(cmd.Context())
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), updated)
		},
	}

	settingsDeleteCmd = &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := settingsRepository().Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), map[string]any{"id": args[0], "deleted": deleted})
		},
	}
)

// settingsRepository binds a repository to the configured platform and the
// context flags.
func settingsRepository() *repositories.Settings {
	project := cfg.Platform.Project
	if projectID != "" {
		project = projectID
	}

	org := cfg.Platform.Org
	if orgID != "" {
		org = orgID
	}

	return repositories.NewSettings(client.New(cfg.Platform.Client()), project, org)
}

func readDocument(stdin io.Reader, file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(file)
}

func parseValue(raw string) any {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return raw
	}

	return v
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}
