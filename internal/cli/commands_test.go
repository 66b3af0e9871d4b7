package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/usertable/internal/cli"
	"github.com/rshade/usertable/internal/config"
	"github.com/rshade/usertable/internal/render"
)

func TestColumns(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "columns", "--file", fixture)
	require.NoError(t, err)
	assert.Contains(t, out, "SEARCHABLE")
	assert.Contains(t, out, "birthDate")
	assert.Contains(t, out, "company")

	out, err = execute(t, "columns", "--file", fixture, "-o", "json")
	require.NoError(t, err)
	var columns []render.ColumnInfo
	require.NoError(t, json.Unmarshal([]byte(out), &columns))
	require.Len(t, columns, 10)
	assert.Equal(t, render.ColumnInfo{Index: 2, Name: "firstname", Searchable: true, Sortable: true}, columns[1])

	_, err = execute(t, "columns", "--file", fixture, "-o", "xml")
	require.ErrorIs(t, err, render.ErrUnsupportedFormat)
}

func TestConfigInit(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, config.DefaultURL, cfg.Source.URL)
	assert.Equal(t, 10, cfg.View.PageSize)

	_, err = execute(t, "--config", path, "config", "init")
	require.ErrorIs(t, err, cli.ErrConfigExists)

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_DefaultPath(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, config.DefaultPath())
}

func TestConfigShowAndValidate(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvPageSize, "25")

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "page_size: 25")
	assert.Contains(t, out, config.DefaultURL)

	out, err = execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	t.Setenv(config.EnvPageSize, "0")
	_, err = execute(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidPageSize)
}

func TestConfig_MissingExplicitFile(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config", "show")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestVersion(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "usertable version test\n", out)

	out, err = execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "test")
}

func TestRoot_UnknownCommand(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "frobnicate")
	require.Error(t, err)
}
