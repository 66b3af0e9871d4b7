package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Mode is the resolved output mode.
type Mode int

const (
	// ModeTable prints one page as a plain table.
	ModeTable Mode = iota
	// ModeJSON prints one page as a JSON document.
	ModeJSON
	// ModeTUI starts the interactive table.
	ModeTUI
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeTable:
		return "table"
	case ModeJSON:
		return "json"
	case ModeTUI:
		return "tui"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned for output formats other than auto, tui, table and json.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// ResolveMode maps an --output value to a Mode. "auto" (or "") picks the TUI
// on a terminal and the plain table otherwise.
func ResolveMode(format string, interactive bool) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto":
		if interactive {
			return ModeTUI, nil
		}
		return ModeTable, nil
	case "tui":
		return ModeTUI, nil
	case "table":
		return ModeTable, nil
	case "json":
		return ModeJSON, nil
	default:
		return ModeTable, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// fdStream is implemented by *os.File.
type fdStream interface {
	Fd() uintptr
}

// IsTerminal reports whether stream is a terminal. Streams without a file
// descriptor, such as buffers, never are.
func IsTerminal(stream any) bool {
	f, ok := stream.(fdStream)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// DetectOutputMode resolves format for a page printed to out while keys are
// read from in. "auto" only picks the TUI when both are terminals.
func DetectOutputMode(format string, out io.Writer, in io.Reader) (Mode, error) {
	return ResolveMode(format, IsTerminal(out) && IsTerminal(in))
}
