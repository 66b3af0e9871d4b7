package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMode(t *testing.T) {
	tests := []struct {
		format      string
		interactive bool
		want        Mode
	}{
		{"auto", true, ModeTUI},
		{"auto", false, ModeTable},
		{"", true, ModeTUI},
		{"TUI", false, ModeTUI},
		{"table", true, ModeTable},
		{"json", true, ModeJSON},
		{" json ", false, ModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.format+"/"+tt.want.String(), func(t *testing.T) {
			got, err := ResolveMode(tt.format, tt.interactive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ResolveMode("yaml", false)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDetectOutputMode_NonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	mode, err := DetectOutputMode("auto", &buf, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, ModeTable, mode)

	mode, err = DetectOutputMode("json", &buf, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, ModeJSON, mode)

	_, err = DetectOutputMode("xml", &buf, strings.NewReader(""))
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))
}
