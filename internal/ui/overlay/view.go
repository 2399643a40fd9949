package overlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"amphi/internal/domain"
	"amphi/internal/ui/views"
)

const (
	maxBoxWidth = 64
	minBoxWidth = 24
	// listTop is the first box row of the result list: border, input, divider
	listTop       = 3
	rowsPerResult = 2
)

// typeStyle is the icon and accent used for one result type
type typeStyle struct {
	icon  string
	color lipgloss.Color
}

var typeStyles = map[domain.ResultType]typeStyle{
	domain.ResultPage:          {icon: "▢", color: lipgloss.Color("39")},
	domain.ResultComponent:     {icon: "◆", color: lipgloss.Color("141")},
	domain.ResultDocumentation: {icon: "▤", color: lipgloss.Color("114")},
	domain.ResultAPI:           {icon: "λ", color: lipgloss.Color("214")},
}

func styleFor(t domain.ResultType) typeStyle {
	if s, ok := typeStyles[t]; ok {
		return s
	}
	return typeStyle{icon: "•", color: lipgloss.Color("245")}
}

// boxWidth returns the outer width of the overlay box
func (m *Model) boxWidth() int {
	w := m.width - 4
	if w > maxBoxWidth {
		w = maxBoxWidth
	}
	if w < minBoxWidth {
		w = minBoxWidth
	}
	return w
}

// Bounds returns where the box is drawn: centered horizontally, a fifth
// of the way down.
func (m *Model) Bounds() views.Rect {
	w := m.boxWidth()
	h := lipgloss.Height(m.View())
	x := (m.width - w) / 2
	if x < 0 {
		x = 0
	}
	y := m.height / 5
	if y+h > m.height {
		y = m.height - h
	}
	if y < 0 {
		y = 0
	}
	return views.Rect{X: x, Y: y, W: w, H: h}
}

// View renders the overlay box. It is empty while closed.
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	outer := m.boxWidth()
	// border and horizontal padding
	inner := outer - 4

	var rows []string
	rows = append(rows, m.inputLine(inner))
	rows = append(rows, m.styles.Divider.Render(strings.Repeat("─", inner)))
	rows = append(rows, m.body(inner)...)
	rows = append(rows, m.footer(inner))

	return m.styles.OverlayBox.
		Width(outer - 2).
		Render(strings.Join(rows, "\n"))
}

func (m *Model) inputLine(inner int) string {
	icon := "⌕"
	if m.searching {
		icon = m.spinner.View()
	}
	hint := m.styles.Help.Render("esc")
	m.input.Width = inner - lipgloss.Width(icon) - lipgloss.Width(hint) - 3
	if m.input.Width < 1 {
		m.input.Width = 1
	}
	line := icon + " " + m.input.View()
	gap := inner - lipgloss.Width(line) - lipgloss.Width(hint)
	if gap < 1 {
		gap = 1
	}
	return line + strings.Repeat(" ", gap) + hint
}

func (m *Model) body(inner int) []string {
	line := func(style lipgloss.Style, text string) string {
		return style.Render(truncate(text, inner))
	}

	switch {
	case m.err != nil:
		return []string{
			line(m.styles.StatusError, "Search failed: "+m.err.Error()),
			line(m.styles.Dim, "Check the search backend and try again"),
		}

	case m.query == "":
		return []string{
			line(m.styles.Tip, "Tips"),
			line(m.styles.Description, "  Shortcut: Ctrl + K"),
			line(m.styles.Description, "  Search Scope: Site-wide"),
		}

	case m.searching:
		return []string{m.spinner.View() + " " + line(m.styles.StatusLoading, "Searching...")}

	case len(m.results) == 0:
		return []string{
			line(m.styles.Heading, "No results found"),
			line(m.styles.Dim, "Try using different keywords"),
		}
	}

	rows := make([]string, 0, rowsPerResult*len(m.results))
	for i, r := range m.results {
		title, desc := m.resultRows(r, inner)
		if i == m.selected {
			title = m.styles.Selected.Width(inner).Render(title)
			desc = m.styles.Selected.Width(inner).Render(desc)
		}
		rows = append(rows, title, desc)
	}
	return rows
}

// resultRows renders the title line (icon, title, category chip) and the
// description line of one result
func (m *Model) resultRows(r domain.SearchResult, inner int) (string, string) {
	ts := styleFor(r.Type)
	icon := lipgloss.NewStyle().Foreground(ts.color).Render(ts.icon)
	chip := m.styles.Chip.Render(" " + r.Category + " ")

	room := inner - 2 - lipgloss.Width(chip) - 1
	title := truncate(r.Title, room)
	pad := room - runewidth.StringWidth(title)
	if pad < 0 {
		pad = 0
	}
	line := icon + " " + lipgloss.NewStyle().Bold(true).Render(title) + strings.Repeat(" ", pad) + " " + chip
	desc := "  " + m.styles.Description.Render(truncate(r.Description, inner-2))
	return line, desc
}

func (m *Model) footer(inner int) string {
	if len(m.results) > 0 && !m.searching {
		counter := fmt.Sprintf("%d results", len(m.results))
		if len(m.results) == 1 {
			counter = "1 result"
		}
		h := m.help.ShortHelpView(m.keys.ShortHelp())
		gap := inner - lipgloss.Width(h) - len(counter)
		if gap < 1 {
			return truncate(counter, inner)
		}
		return h + strings.Repeat(" ", gap) + m.styles.Help.Render(counter)
	}
	return m.styles.Help.Render(truncate("Type to search the site", inner))
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}
