package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/usertable/internal/config"
	"github.com/rshade/usertable/internal/fetch"
	"github.com/rshade/usertable/internal/logging"
	"github.com/rshade/usertable/internal/render"
)

// newColumnsCmd creates the columns command.
func newColumnsCmd(opts *rootOptions) *cobra.Command {
	var (
		flags  sourceFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the fields of the record collection",
		Long: `Loads the collection and lists the fields of the first record in document
order, marking which take part in search and which can be sorted on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			applySourceFlags(cmd.Flags(), cfg, &flags)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			ctx := cmd.Context()
			store, err := loadStore(ctx, fetch.FromConfig(cfg.Source, *logging.FromContext(ctx)))
			if err != nil {
				return err
			}

			columns := render.DescribeColumns(store.FieldNames(), cfg.Schema())
			switch output {
			case config.OutputJSON:
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(columns)
			case config.OutputTable:
				return render.ColumnsTable(cmd.OutOrStdout(), columns)
			default:
				return fmt.Errorf("%w: %s", render.ErrUnsupportedFormat, output)
			}
		},
	}

	addSourceFlags(cmd, &flags)
	cmd.Flags().StringVarP(&output, "output", "o", config.OutputTable, "output format: table, json")
	return cmd
}
