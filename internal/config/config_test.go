package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/usertable/internal/logging"
	"github.com/rshade/usertable/internal/view"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultURL, cfg.Source.URL)
	assert.Equal(t, DefaultTimeout, cfg.Source.Timeout)
	assert.Equal(t, view.DefaultPageSize, cfg.View.PageSize)
	assert.Equal(t, "street", cfg.View.DisplayPaths["address"])
	assert.Equal(t, OutputAuto, cfg.Output.Format)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvURL, "")
	t.Setenv(EnvPageSize, "")
	t.Setenv(EnvLogCaller, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
source:
  url: https://example.test/users
  timeout: 5s
  retries: 2
view:
  page_size: 25
  search_fields: [firstname, lastname]
  sort_fields: [id, email]
output:
  format: json
logging:
  caller: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "https://example.test/users", cfg.Source.URL)
	assert.Equal(t, 5*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 2, cfg.Source.Retries)
	assert.Equal(t, 25, cfg.View.PageSize)
	assert.Equal(t, OutputJSON, cfg.Output.Format)
	assert.True(t, cfg.Logging.Caller)
	assert.Equal(t, "name", cfg.View.DisplayPaths["company"], "unset sections keep defaults")
	assert.Equal(t, view.Schema{
		SearchFields: []string{"firstname", "lastname"},
		SortFields:   []string{"id", "email"},
	}, cfg.Schema())
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvURL, "")
	t.Setenv(EnvPageSize, "")
	t.Setenv(EnvOutput, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Source, cfg.Source)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("view: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvFile:      "users.json",
		EnvTimeout:   "2s",
		EnvPageSize:  "5",
		EnvOutput:    "table",
		EnvLogLevel:  "debug",
		EnvLogFormat: "json",
		EnvLogCaller: "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "users.json", cfg.Source.File)
	assert.Empty(t, cfg.Source.URL)
	assert.Equal(t, 2*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 5, cfg.View.PageSize)
	assert.Equal(t, OutputTable, cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Caller)
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv_Invalid(t *testing.T) {
	cfg := Default()
	require.Error(t, cfg.ApplyEnv(envMap(map[string]string{EnvPageSize: "ten"})))
	require.Error(t, cfg.ApplyEnv(envMap(map[string]string{EnvTimeout: "soon"})))
	require.Error(t, cfg.ApplyEnv(envMap(map[string]string{EnvLogCaller: "maybe"})))
	require.NoError(t, cfg.ApplyEnv(noEnv))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"no source", func(c *Config) { c.Source.URL = "" }, ErrNoSource},
		{"both sources", func(c *Config) { c.Source.File = "x.json" }, ErrBothSources},
		{"zero timeout", func(c *Config) { c.Source.Timeout = 0 }, ErrInvalidTimeout},
		{"negative retries", func(c *Config) { c.Source.Retries = -1 }, ErrInvalidRetries},
		{"too many retries", func(c *Config) { c.Source.Retries = 11 }, ErrInvalidRetries},
		{"zero page size", func(c *Config) { c.View.PageSize = 0 }, ErrInvalidPageSize},
		{"huge page size", func(c *Config) { c.View.PageSize = 5000 }, ErrInvalidPageSize},
		{"bad output", func(c *Config) { c.Output.Format = "xml" }, ErrInvalidOutput},
		{"bad log format", func(c *Config) { c.Logging.Format = "pretty" }, ErrInvalidLogFmt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.View.PageSize = 42
	cfg.Source.Timeout = 90 * time.Second
	require.NoError(t, cfg.Save(path))

	t.Setenv(EnvPageSize, "")
	t.Setenv(EnvTimeout, "")
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.View.PageSize)
	assert.Equal(t, 90*time.Second, loaded.Source.Timeout)
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	stderr := LoggingConfig{Level: "warn", Format: "json"}.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, stderr.Output)
	assert.Equal(t, "warn", stderr.Level)
	assert.False(t, stderr.Caller)

	file := LoggingConfig{Level: "info", Format: "json", File: "/tmp/u.log"}.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, file.Output)
	assert.Equal(t, "/tmp/u.log", file.File)

	withCaller := LoggingConfig{Format: "json", Caller: true}.ToLoggingConfig()
	assert.True(t, withCaller.Caller)
}
