package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestNewLogger_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	result := newLogger(Config{Level: "debug", Format: FormatJSON}, &buf)

	cl := ComponentLogger(result.Logger, "fetch")
	cl.Debug().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"fetch"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
	assert.False(t, result.UsingFile)
}

func TestNewLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	result := newLogger(Config{Format: FormatJSON, Caller: true}, &buf)

	result.Logger.Info().Msg("where")
	assert.Contains(t, buf.String(), `"caller":`)
	assert.Contains(t, buf.String(), "logging_test.go")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	result := newLogger(Config{Level: "warn", Format: FormatJSON}, &buf)

	result.Logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usertable.log")
	result := NewLogger(Config{Level: "info", Output: OutputFile, File: path})
	t.Cleanup(func() { _ = result.Close() })

	require.True(t, result.UsingFile)
	result.Logger.Info().Msg("to file")
	require.NoError(t, result.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}

func TestNewLogger_FileFallback(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "dir", "usertable.log")
	result := newLogger(Config{Output: OutputFile, File: path, Format: FormatJSON}, &buf)

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.Contains(t, result.FallbackReason, "cannot open log file")

	result.Logger.Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")
}

func TestNewLogger_None(t *testing.T) {
	result := NewLogger(Config{Output: OutputNone})
	assert.Equal(t, zerolog.Disabled, result.Logger.GetLevel())
	assert.NoError(t, result.Close())
}

func TestTraceIDs(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	id := GetOrGenerateTraceID(ctx)
	_, err := ulid.Parse(id)
	require.NoError(t, err)

	ctx = ContextWithTraceID(ctx, id)
	assert.Equal(t, id, TraceIDFromContext(ctx))
	assert.Equal(t, id, GetOrGenerateTraceID(ctx))
}

func TestFromContext_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())
	ctx = ContextWithTraceID(ctx, "01TRACE")

	FromContext(ctx).Info().Msg("traced")
	assert.Contains(t, buf.String(), `"trace_id":"01TRACE"`)
}
