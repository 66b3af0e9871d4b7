// Package config loads usertable settings from ~/.usertable/config.yaml,
// USERTABLE_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/usertable/internal/view"
)

// Defaults.
const (
	DefaultURL     = "https://jsonplaceholder.org/users"
	DefaultTimeout = 30 * time.Second
	DefaultOutput  = OutputAuto
	configDirName  = ".usertable"
	configFileName = "config.yaml"
	maxRetries     = 10
)

// Output formats.
const (
	OutputAuto  = "auto"
	OutputTUI   = "tui"
	OutputTable = "table"
	OutputJSON  = "json"
)

// Validation errors.
var (
	ErrNoSource        = errors.New("either source.url or source.file must be set")
	ErrBothSources     = errors.New("source.url and source.file are mutually exclusive")
	ErrInvalidTimeout  = errors.New("source.timeout must be positive")
	ErrInvalidRetries  = errors.New("source.retries must be between 0 and 10")
	ErrInvalidPageSize = fmt.Errorf("view.page_size must be between %d and %d", view.MinPageSize, view.MaxPageSize)
	ErrInvalidOutput   = errors.New("output.format must be one of auto, tui, table, json")
	ErrInvalidLogFmt   = errors.New("logging.format must be json or console")
)

// Config is the full usertable configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	View    ViewConfig    `yaml:"view"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig selects where records are loaded from.
type SourceConfig struct {
	URL     string        `yaml:"url"`
	File    string        `yaml:"file"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

// ViewConfig controls paging, search and sort restrictions and nested cell display.
type ViewConfig struct {
	PageSize     int               `yaml:"page_size"`
	SearchFields []string          `yaml:"search_fields"`
	SortFields   []string          `yaml:"sort_fields"`
	DisplayPaths map[string]string `yaml:"display_paths"`
}

// OutputConfig selects the renderer.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     DefaultURL,
			Timeout: DefaultTimeout,
		},
		View: ViewConfig{
			PageSize: view.DefaultPageSize,
			DisplayPaths: map[string]string{
				"login":   "username",
				"address": "street",
				"company": "name",
			},
		},
		Output: OutputConfig{Format: DefaultOutput},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns ~/.usertable/config.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment. An empty path reads DefaultPath when it exists; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, unmarshalErr)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch {
	case c.Source.URL == "" && c.Source.File == "":
		return ErrNoSource
	case c.Source.URL != "" && c.Source.File != "":
		return ErrBothSources
	case c.Source.Timeout <= 0:
		return ErrInvalidTimeout
	case c.Source.Retries < 0 || c.Source.Retries > maxRetries:
		return ErrInvalidRetries
	case c.View.PageSize < view.MinPageSize || c.View.PageSize > view.MaxPageSize:
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.View.PageSize)
	}

	validOutputs := []string{OutputAuto, OutputTUI, OutputTable, OutputJSON}
	if !slices.Contains(validOutputs, c.Output.Format) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutput, c.Output.Format)
	}
	return c.Logging.Validate()
}

// Schema returns the search and sort restrictions for the view pipeline.
func (c *Config) Schema() view.Schema {
	return view.Schema{
		SearchFields: slices.Clone(c.View.SearchFields),
		SortFields:   slices.Clone(c.View.SortFields),
	}
}

// Save writes the configuration as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
