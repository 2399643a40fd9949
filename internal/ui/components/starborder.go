package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// StarBorder frames a clickable label with two stars running along the
// top and bottom edges in opposite directions.
type StarBorder struct {
	Label     string
	Color     lipgloss.Color
	Speed     time.Duration
	Thickness int
	Hovered   bool
	Focused   bool
	Disabled  bool
}

// NewStarBorder creates a star border with the stock 6s period
func NewStarBorder(label string) StarBorder {
	return StarBorder{
		Label:     label,
		Color:     lipgloss.Color("231"),
		Speed:     6 * time.Second,
		Thickness: 1,
	}
}

// Width returns the rendered width in cells
func (s StarBorder) Width() int {
	return lipgloss.Width(s.Label) + 2*s.padding() + 2
}

// Height returns the rendered height in rows
func (s StarBorder) Height() int {
	return 2 + s.Thickness
}

func (s StarBorder) padding() int { return 2 }

// StarPositions returns the column of the top and bottom star within the
// horizontal run. The motion ping-pongs like an alternating animation.
func (s StarBorder) StarPositions(elapsed time.Duration) (top, bottom int) {
	run := s.Width() - 2
	if run <= 1 || s.Speed <= 0 {
		return 0, 0
	}
	cycle := 2 * s.Speed
	phase := float64(elapsed%cycle) / float64(s.Speed)
	if phase > 1 {
		phase = 2 - phase
	}
	top = int(phase * float64(run-1))
	if top > run-1 {
		top = run - 1
	}
	return top, run - 1 - top
}

// Render draws the bordered label as it looks at elapsed
func (s StarBorder) Render(elapsed time.Duration) string {
	run := s.Width() - 2
	edge := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	glow := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	star := lipgloss.NewStyle().Foreground(s.Color).Bold(true)
	if s.Hovered || s.Focused {
		edge = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	}

	top, bottom := s.StarPositions(elapsed)
	if s.Disabled {
		top, bottom = -10, -10
	}

	line := func(left, right string, pos int) string {
		var b strings.Builder
		b.WriteString(edge.Render(left))
		for i := 0; i < run; i++ {
			switch {
			case i == pos:
				b.WriteString(star.Render("✦"))
			case i == pos-1 || i == pos+1:
				b.WriteString(glow.Render("─"))
			default:
				b.WriteString(edge.Render("─"))
			}
		}
		b.WriteString(edge.Render(right))
		return b.String()
	}

	text := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if s.Hovered || s.Focused {
		text = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	}
	if s.Disabled {
		text = lipgloss.NewStyle().Faint(true)
	}
	pad := strings.Repeat(" ", s.padding())
	middle := edge.Render("│") + pad + text.Render(s.Label) + pad + edge.Render("│")

	rows := []string{line("╭", "╮", top)}
	for i := 0; i < s.Thickness; i++ {
		rows = append(rows, middle)
	}
	rows = append(rows, line("╰", "╯", bottom))
	return strings.Join(rows, "\n")
}
