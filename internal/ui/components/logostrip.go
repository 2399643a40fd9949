package components

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"amphi/internal/domain"
)

// cellPixels converts the pixel based speed and gap settings to cells
const cellPixels = 8

// fadeCells is how many cells at each edge are dimmed when fading
const fadeCells = 3

// LogoStripOptions parameterizes a LogoStrip. Speed is in pixels per
// second, Gap in pixels; both are mapped to cells.
type LogoStripOptions struct {
	Speed        int
	Direction    string
	Gap          int
	PauseOnHover bool
	FadeOut      bool
}

type stripCell struct {
	r    rune
	logo int
}

// LogoStrip is a looping marquee of partner logos
type LogoStrip struct {
	logos []domain.Logo
	opts  LogoStripOptions
	seq   []stripCell

	offset  float64
	hovered bool
	hoverX  int
	width   int
}

func NewLogoStrip(logos []domain.Logo, opts LogoStripOptions) *LogoStrip {
	s := &LogoStrip{logos: logos, opts: opts, hoverX: -1}

	gap := opts.Gap / cellPixels
	if gap < 1 {
		gap = 1
	}
	for i, l := range logos {
		for _, r := range l.Title {
			s.seq = append(s.seq, stripCell{r: r, logo: i})
		}
		for j := 0; j < gap; j++ {
			s.seq = append(s.seq, stripCell{r: ' ', logo: -1})
		}
	}
	return s
}

// Paused reports whether hovering currently stops the marquee
func (s *LogoStrip) Paused() bool {
	return s.opts.PauseOnHover && s.hovered
}

// Offset returns the scroll offset in cells
func (s *LogoStrip) Offset() float64 { return s.offset }

// Advance moves the marquee by dt worth of travel
func (s *LogoStrip) Advance(dt time.Duration) {
	if s.Paused() || len(s.seq) == 0 {
		return
	}
	speed := float64(s.opts.Speed) / cellPixels
	s.offset = math.Mod(s.offset+speed*dt.Seconds(), float64(len(s.seq)))
}

// SetHover records the pointer column, or clears hover when inside is false
func (s *LogoStrip) SetHover(x int, inside bool) {
	s.hovered = inside
	if !inside {
		s.hoverX = -1
		return
	}
	s.hoverX = x
}

// LogoAt returns the logo rendered at column x by the last Render call
func (s *LogoStrip) LogoAt(x int) (domain.Logo, bool) {
	idx := s.cellAt(x)
	if idx < 0 {
		return domain.Logo{}, false
	}
	return s.logos[idx], true
}

func (s *LogoStrip) cellAt(x int) int {
	n := len(s.seq)
	if n == 0 || x < 0 || (s.width > 0 && x >= s.width) {
		return -1
	}
	return s.seq[s.index(x)].logo
}

func (s *LogoStrip) index(col int) int {
	n := len(s.seq)
	start := int(s.offset)
	if s.opts.Direction == "right" {
		start = n - start
	}
	i := (start + col) % n
	if i < 0 {
		i += n
	}
	return i
}

// Render draws one row of the marquee at the given width
func (s *LogoStrip) Render(width int) string {
	s.width = width
	if len(s.seq) == 0 || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}

	normal := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	faded := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	hover := lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	hovered := s.cellAt(s.hoverX)

	var b strings.Builder
	for col := 0; col < width; col++ {
		c := s.seq[s.index(col)]
		style := normal
		switch {
		case c.logo >= 0 && c.logo == hovered:
			style = hover
		case s.opts.FadeOut && (col < fadeCells || col >= width-fadeCells):
			style = faded
		}
		b.WriteString(style.Render(string(c.r)))
	}
	return b.String()
}
