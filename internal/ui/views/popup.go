package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay dims mainContent into a backdrop and draws popup over
// it with its top-left corner at (at.X, at.Y)
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popup string, at Rect, width, height int) string {
	c := newCanvas(width, height)
	c.place(0, 0, desaturate(mainContent, pr.styles.Backdrop))
	c.place(at.X, at.Y, popup)
	return c.String()
}

// desaturate strips styles from s and recolors it with the backdrop tone
func desaturate(s string, backdrop lipgloss.Style) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = backdrop.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// canvas is a fixed size grid of styled lines that blocks are spliced into.
// Cells outside a placed block keep whatever was drawn before.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, lines: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range c.lines {
		c.lines[i] = blank
	}
	return c
}

// place draws block with its top-left corner at (x, y), clipping at the edges
func (c *canvas) place(x, y int, block string) {
	if block == "" || x >= c.width {
		return
	}
	for i, row := range strings.Split(block, "\n") {
		ly := y + i
		if ly < 0 || ly >= len(c.lines) {
			continue
		}
		c.lines[ly] = splice(c.lines[ly], row, x, c.width)
	}
}

// splice replaces the cells of line starting at x with row
func splice(line, row string, x, width int) string {
	if x < 0 {
		row = ansi.TruncateLeft(row, -x, "")
		x = 0
	}
	rowW := ansi.StringWidth(row)
	if x+rowW > width {
		row = ansi.Truncate(row, width-x, "")
		rowW = ansi.StringWidth(row)
	}

	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := ansi.TruncateLeft(line, x+rowW, "")
	return left + row + right
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
