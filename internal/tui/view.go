package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/usertable/internal/render"
)

const helpText = "/ search · tab column · s sort · 1-9 sort column · n/p page · esc clear · q quit"

// View renders the current view.
func (m *Model) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateLoading:
		return RenderLoading(m.loading)
	case ViewStateTable:
		return m.renderTableView()
	default:
		return ""
	}
}

func (m *Model) renderErrorView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)),
		SubtleStyle.Render("Press 'r' to retry, 'q' to quit"),
	)
}

// renderTableView renders the title, search line, table, footer and help.
func (m *Model) renderTableView() string {
	result := m.session.Result()
	state := m.session.State()

	sections := []string{HeaderStyle.Render("USERS")}

	switch {
	case m.showSearch:
		sections = append(sections, LabelStyle.Render("Search: ")+m.textInput.View())
	case state.SearchTerm != "":
		sections = append(sections,
			LabelStyle.Render("Search: ")+ValueStyle.Render(state.SearchTerm)+SubtleStyle.Render("  (esc to clear)"))
	}

	if result.Empty() {
		sections = append(sections, m.renderEmpty())
	} else {
		sections = append(sections, m.table.View())
	}

	footer := render.Footer(result.Meta)
	if nav := render.Navigation(result.Meta); nav != "" {
		footer += "  " + nav
	}
	sections = append(sections, InfoStyle.Render(footer), SubtleStyle.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderEmpty shows the column headings above the empty-state message.
func (m *Model) renderEmpty() string {
	var b strings.Builder
	headers := render.Headers(m.session.Columns(), m.session.State())
	b.WriteString(TableHeaderStyle.Render(strings.Join(headers, "  ")))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(render.EmptyMessage))
	return b.String()
}
