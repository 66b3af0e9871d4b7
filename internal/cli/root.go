package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/usertable/internal/config"
	"github.com/rshade/usertable/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootOptions holds the persistent flags and the state built from them.
type rootOptions struct {
	configPath string
	debug      bool

	cfg       *config.Config
	logResult *logging.Result
}

// NewRootCmd creates the root Cobra command for the usertable CLI.
// Running it without a subcommand behaves like "usertable view".
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{}
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:           "usertable",
		Short:         "Browse remote user records as a searchable, sortable, paginated table",
		Long:          "usertable fetches a JSON array of user records and shows it as an interactive table or prints one page as a table or JSON.",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Default()
			if !skipConfigLoad(cmd) {
				loaded, err := config.Load(opts.configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			opts.cfg = cfg

			result := setupLogging(cmd, cfg, opts.debug)
			opts.logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, opts.logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, opts, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		fmt.Sprintf("config file (default %s)", displayDefaultPath()))
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	addViewFlags(cmd, flags)

	cmd.AddCommand(
		newViewCmd(opts),
		newColumnsCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(ver),
	)
	return cmd
}

func displayDefaultPath() string {
	if p := config.DefaultPath(); p != "" {
		return p
	}
	return "~/.usertable/config.yaml"
}

const rootCmdExample = `  # Browse the default user collection interactively
  usertable

  # Print the second page of users named Doe, sorted by email descending
  usertable view --search doe --sort email:desc --page 2 --output table

  # Read records from a local file and print them as JSON
  usertable view --file users.json --output json

  # List the available columns
  usertable columns

  # Write a default configuration file
  usertable config init`
