package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rshade/usertable/internal/config"
	"github.com/rshade/usertable/internal/fetch"
	"github.com/rshade/usertable/internal/logging"
	"github.com/rshade/usertable/internal/records"
	"github.com/rshade/usertable/internal/render"
	"github.com/rshade/usertable/internal/tui"
	"github.com/rshade/usertable/internal/view"
)

// Flag validation errors.
var (
	ErrInvalidPage      = errors.New("page must be >= 1")
	ErrInvalidSortField = errors.New("invalid sort field")
)

// sourceFlags select where records are loaded from.
type sourceFlags struct {
	url     string
	file    string
	timeout time.Duration
	retries int
}

// viewFlags are the flags of "usertable view" (and of the root command).
type viewFlags struct {
	sourceFlags

	search   string
	sort     string
	page     int
	pageSize int
	output   string
}

func addSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringVar(&f.url, "url", "", "URL returning a JSON array of records (default "+config.DefaultURL+")")
	cmd.Flags().StringVar(&f.file, "file", "", "read records from a local JSON file instead of a URL")
	cmd.Flags().DurationVar(&f.timeout, "timeout", config.DefaultTimeout, "timeout for each fetch attempt")
	cmd.Flags().IntVar(&f.retries, "retries", 0, "retries on transport errors and 5xx responses")
}

func addViewFlags(cmd *cobra.Command, f *viewFlags) {
	addSourceFlags(cmd, &f.sourceFlags)
	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive search term")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort field and order, e.g. 'email' or 'email:desc'")
	cmd.Flags().IntVar(&f.page, "page", 1, "page to show (1-based)")
	cmd.Flags().IntVar(&f.pageSize, "page-size", view.DefaultPageSize, "rows per page")
	cmd.Flags().StringVarP(&f.output, "output", "o", config.OutputAuto, "output format: auto, tui, table, json")
}

// newViewCmd creates the view command.
func newViewCmd(opts *rootOptions) *cobra.Command {
	flags := &viewFlags{}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the record table",
		Long: `Fetches the record collection and shows it.

On a terminal the interactive table starts: "/" searches, tab selects a column,
"s" or a digit sorts, "n" and "p" page and "q" quits. Otherwise, or with
--output table|json, the page selected by --search, --sort and --page is printed.`,
		Example: `  # Interactive table
  usertable view

  # Third page of the collection sorted by last name
  usertable view --sort lastname --page 3 --output table

  # Users matching "smith" as JSON, 5 per page
  usertable view --search smith --page-size 5 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, opts, flags)
		},
	}
	addViewFlags(cmd, flags)
	return cmd
}

// applySourceFlags overrides the source section with explicitly set flags.
func applySourceFlags(fs *pflag.FlagSet, cfg *config.Config, f *sourceFlags) {
	if fs.Changed("url") {
		cfg.Source.URL = f.url
		if !fs.Changed("file") {
			cfg.Source.File = ""
		}
	}
	if fs.Changed("file") {
		cfg.Source.File = f.file
		if !fs.Changed("url") {
			cfg.Source.URL = ""
		}
	}
	if fs.Changed("timeout") {
		cfg.Source.Timeout = f.timeout
	}
	if fs.Changed("retries") {
		cfg.Source.Retries = f.retries
	}
}

// applyViewFlags overrides the configuration with explicitly set flags.
func applyViewFlags(fs *pflag.FlagSet, cfg *config.Config, f *viewFlags) {
	applySourceFlags(fs, cfg, &f.sourceFlags)
	if fs.Changed("page-size") {
		cfg.View.PageSize = f.pageSize
	}
	if fs.Changed("output") {
		cfg.Output.Format = f.output
	}
}

// intentsFromFlags translates --search, --sort and --page into the intents a
// user would issue interactively.
func intentsFromFlags(f *viewFlags, schema view.Schema) ([]view.Intent, error) {
	if f.page < view.FirstPage {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPage, f.page)
	}

	var intents []view.Intent
	if f.search != "" {
		intents = append(intents, view.SetSearchTerm(f.search))
	}

	field, order, err := view.ParseSortExpression(f.sort)
	if err != nil {
		return nil, err
	}
	if field != "" {
		if !schema.Sortable(field) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, field)
		}
		intents = append(intents, view.ToggleSort(field))
		if order == view.Descending {
			intents = append(intents, view.ToggleSort(field))
		}
	}

	if f.page > view.FirstPage {
		intents = append(intents, view.GoToPage(f.page))
	}
	return intents, nil
}

func runView(cmd *cobra.Command, opts *rootOptions, f *viewFlags) error {
	ctx := cmd.Context()
	cfg := opts.cfg
	applyViewFlags(cmd.Flags(), cfg, f)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	schema := cfg.Schema()
	intents, err := intentsFromFlags(f, schema)
	if err != nil {
		return err
	}

	mode, err := render.DetectOutputMode(cfg.Output.Format, cmd.OutOrStdout(), cmd.InOrStdin())
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Debug().
		Str("mode", mode.String()).
		Str("url", cfg.Source.URL).
		Str("file", cfg.Source.File).
		Int("page_size", cfg.View.PageSize).
		Int("intents", len(intents)).
		Msg("starting view")

	if mode == render.ModeTUI {
		// Log lines would corrupt the screen unless they go to a file.
		tuiLogger := zerolog.Nop()
		if opts.logResult != nil && opts.logResult.UsingFile {
			tuiLogger = *log
		}
		return runInteractive(cmd, fetch.FromConfig(cfg.Source, tuiLogger), tui.Options{
			Schema:       schema,
			PageSize:     cfg.View.PageSize,
			Intents:      intents,
			DisplayPaths: cfg.View.DisplayPaths,
			Logger:       tuiLogger,
		})
	}

	store, err := loadStore(ctx, fetch.FromConfig(cfg.Source, *log))
	if err != nil {
		return err
	}

	session := view.NewSession(store, schema, view.NewState(cfg.View.PageSize), view.WithLogger(*log))
	for _, in := range intents {
		session.Dispatch(in)
	}
	if got := session.State().CurrentPage; got != f.page {
		log.Warn().
			Int("requested", f.page).
			Int("page_count", session.Result().Meta.PageCount).
			Msg("requested page is out of range, showing the first page")
	}

	page := render.NewPage(session)
	if mode == render.ModeJSON {
		return render.JSON(cmd.OutOrStdout(), page)
	}
	return render.Table(cmd.OutOrStdout(), page, cfg.View.DisplayPaths)
}

// loadStore runs the loader and installs the result in a new store.
func loadStore(ctx context.Context, loader fetch.Loader) (*records.Store, error) {
	recs, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	store := records.NewStore()
	if err = store.Load(recs); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Int("records", store.Len()).Msg("records loaded")
	return store, nil
}

func runInteractive(cmd *cobra.Command, loader fetch.Loader, opts tui.Options) error {
	ctx := cmd.Context()
	p := tea.NewProgram(tui.NewModel(ctx, loader, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	if m, ok := final.(*tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
