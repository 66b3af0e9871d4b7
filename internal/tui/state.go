package tui

// ViewState is the screen the model is showing.
type ViewState int

const (
	// ViewStateLoading shows a spinner while records are fetched.
	ViewStateLoading ViewState = iota
	// ViewStateTable shows the current page.
	ViewStateTable
	// ViewStateError shows a load failure.
	ViewStateError
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// String implements fmt.Stringer.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateTable:
		return "table"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEsc      = "esc"
	keyEnter    = "enter"
	keySlash    = "/"
	keyS        = "s"
	keyR        = "r"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyNext     = "n"
	keyPrev     = "p"
	keyRight    = "right"
	keyLeft     = "left"
	keyPgDown   = "pgdown"
	keyPgUp     = "pgup"
)

// Layout defaults.
const (
	defaultWidth  = 120
	defaultHeight = 30
	// chromeHeight is the number of lines around the table: title, search,
	// footer, help and spacing.
	chromeHeight         = 6
	minTableHeight       = 3
	minColumnWidth       = 4
	maxColumnWidth       = 28
	searchInputCharLimit = 64
	searchInputWidth     = 40
)
