package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/usertable/internal/fetch"
	"github.com/rshade/usertable/internal/records"
	"github.com/rshade/usertable/internal/render"
	"github.com/rshade/usertable/internal/view"
)

// recordsLoadedMsg carries the outcome of the Loader.
type recordsLoadedMsg struct {
	records []records.Record
	err     error
}

// Options configures the model.
type Options struct {
	// Schema restricts search and sort fields.
	Schema view.Schema
	// PageSize is the number of rows per page.
	PageSize int
	// Intents are applied in order once records are loaded, e.g. an initial
	// search, sort or page taken from the command line.
	Intents []view.Intent
	// DisplayPaths renders nested objects through a sub-field.
	DisplayPaths map[string]string
	Logger       zerolog.Logger
}

// Model is the Bubble Tea model for the interactive record table.
type Model struct {
	// View state
	state   ViewState
	session *view.Session
	opts    Options

	// Interactive components
	table       table.Model
	textInput   textinput.Model
	showSearch  bool
	selectedCol int

	// Display configuration
	width  int
	height int

	// Loading state
	loading  *LoadingState
	fetchCmd tea.Cmd

	// Error handling
	err error
}

// NewModel creates a model that starts in the loading state and fetches
// records with loader when the program starts.
func NewModel(ctx context.Context, loader fetch.Loader, opts Options) *Model {
	return &Model{
		state:     ViewStateLoading,
		opts:      opts,
		textInput: newSearchInput(),
		width:     defaultWidth,
		height:    defaultHeight,
		loading:   NewLoadingState(),
		fetchCmd: func() tea.Msg {
			recs, err := loader.Load(ctx)
			return recordsLoadedMsg{records: recs, err: err}
		},
	}
}

// newSearchInput creates the text input used for searching.
func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search users..."
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth
	return ti
}

// Err returns the load failure, if any.
func (m *Model) Err() error {
	return m.err
}

// State returns the screen being shown.
func (m *Model) State() ViewState {
	return m.state
}

// Session returns the view session, or nil before records are loaded.
func (m *Model) Session() *view.Session {
	return m.session
}

// Init starts the spinner and the fetch.
func (m *Model) Init() tea.Cmd {
	if m.state == ViewStateLoading {
		return tea.Batch(m.loading.Init(), m.fetchCmd)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	if loadMsg, ok := msg.(recordsLoadedMsg); ok {
		return m.handleLoadingComplete(loadMsg)
	}

	if m.showSearch {
		return m.handleSearchInput(msg)
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateTable:
		return m.handleTableUpdate(msg)
	case ViewStateError:
		return m.handleErrorUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) handleLoadingComplete(msg recordsLoadedMsg) (tea.Model, tea.Cmd) {
	logger := m.opts.Logger.With().Str("component", "tui").Logger()

	if msg.err != nil {
		logger.Error().Err(msg.err).Msg("record load failed")
		m.err = msg.err
		m.state = ViewStateError
		return m, nil
	}

	store := records.NewStore()
	if err := store.Load(msg.records); err != nil {
		m.err = err
		m.state = ViewStateError
		return m, nil
	}

	m.err = nil
	m.session = view.NewSession(store, m.opts.Schema, view.NewState(m.opts.PageSize), view.WithLogger(m.opts.Logger))
	for _, in := range m.opts.Intents {
		m.session.Dispatch(in)
	}
	m.textInput.SetValue(m.session.State().SearchTerm)
	m.selectedCol = m.columnIndex(m.session.State().SortKey)
	m.state = ViewStateTable
	m.rebuildTable()

	logger.Debug().Int("records", store.Len()).Msg("records loaded")
	return m, nil
}

func (m *Model) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter, keyEsc:
			m.showSearch = false
			m.textInput.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.session != nil && m.textInput.Value() != m.session.State().SearchTerm {
		m.session.SetSearchTerm(m.textInput.Value())
		m.rebuildTable()
	}
	return m, cmd
}

func (m *Model) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}
	return m, m.loading.Update(msg)
}

func (m *Model) handleTableUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := keyMsg.String()
	switch key {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		m.showSearch = true
		return m, m.textInput.Focus()
	case keyEsc:
		if m.session.State().SearchTerm != "" {
			m.textInput.SetValue("")
			m.session.SetSearchTerm("")
			m.rebuildTable()
		}
		return m, nil
	case keyTab:
		m.moveColumn(1)
		return m, nil
	case keyShiftTab:
		m.moveColumn(-1)
		return m, nil
	case keyS, keyEnter:
		m.sortSelected()
		return m, nil
	case keyNext, keyRight, keyPgDown:
		m.session.NextPage()
		m.rebuildTable()
		return m, nil
	case keyPrev, keyLeft, keyPgUp:
		m.session.PreviousPage()
		m.rebuildTable()
		return m, nil
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= 9 {
		if n <= len(m.session.Columns()) {
			m.selectedCol = n - 1
			m.sortSelected()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *Model) handleErrorUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyQuit, keyCtrlC, keyEsc:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyR:
			m.state = ViewStateLoading
			m.loading = NewLoadingState()
			return m, tea.Batch(m.loading.Init(), m.fetchCmd)
		}
	}
	return m, nil
}

// moveColumn moves the column selection by delta, wrapping around.
func (m *Model) moveColumn(delta int) {
	n := len(m.session.Columns())
	if n == 0 {
		return
	}
	m.selectedCol = ((m.selectedCol+delta)%n + n) % n
	m.rebuildTable()
}

// sortSelected toggles the sort on the selected column.
func (m *Model) sortSelected() {
	columns := m.session.Columns()
	if m.selectedCol < 0 || m.selectedCol >= len(columns) {
		return
	}
	m.session.ToggleSort(columns[m.selectedCol])
	m.rebuildTable()
}

func (m *Model) columnIndex(field string) int {
	if m.session == nil {
		return 0
	}
	for i, c := range m.session.Columns() {
		if c == field {
			return i
		}
	}
	return 0
}

// rebuildTable rebuilds the table component from the current page.
func (m *Model) rebuildTable() {
	if m.session == nil {
		return
	}

	columns := m.session.Columns()
	state := m.session.State()
	result := m.session.Result()

	rows := make([]table.Row, len(result.Records))
	for i, rec := range result.Records {
		rows[i] = render.Row(columns, rec, m.opts.DisplayPaths)
	}

	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		title := render.Header(c, state)
		if i == m.selectedCol {
			title = "▸" + title
		}
		cols[i] = table.Column{Title: title, Width: columnWidth(title, rows, i)}
	}

	height := m.height - chromeHeight
	if want := state.PageSize + 1; height > want {
		height = want
	}
	if height < minTableHeight {
		height = minTableHeight
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	m.table = t
}

// columnWidth fits a column to its widest cell within [minColumnWidth, maxColumnWidth].
func columnWidth(title string, rows []table.Row, col int) int {
	width := lipgloss.Width(title)
	for _, row := range rows {
		if w := lipgloss.Width(row[col]); w > width {
			width = w
		}
	}
	return min(max(width, minColumnWidth), maxColumnWidth)
}
