package fetch

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rshade/usertable/internal/config"
	"github.com/rshade/usertable/internal/records"
)

// Loader supplies the raw record collection.
type Loader interface {
	Load(ctx context.Context) ([]records.Record, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]records.Record, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context) ([]records.Record, error) {
	return f(ctx)
}

// FileLoader reads a JSON array of records from a local file.
type FileLoader struct {
	Path string
}

// Load reads and decodes the file.
func (l FileLoader) Load(ctx context.Context) ([]records.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Source: l.Path, Err: err}
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, &LoadError{Source: l.Path, Err: err}
	}
	recs, err := records.ParseJSON(data)
	if err != nil {
		return nil, &LoadError{Source: l.Path, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}
	return recs, nil
}

// FromConfig returns the loader selected by the source section.
func FromConfig(src config.SourceConfig, logger zerolog.Logger) Loader {
	if src.File != "" {
		return FileLoader{Path: src.File}
	}
	return NewHTTPLoader(src.URL,
		WithTimeout(src.Timeout),
		WithRetries(src.Retries),
		WithLogger(logger),
	)
}
