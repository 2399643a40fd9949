package components

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// ShinyText sweeps a highlight band across a label, once per Speed
type ShinyText struct {
	Text     string
	Speed    time.Duration
	Disabled bool

	base  lipgloss.Style
	mid   lipgloss.Style
	shine lipgloss.Style
}

// NewShinyText creates a shiny label; speed <= 0 means the 5s default
func NewShinyText(text string, speed time.Duration) ShinyText {
	if speed <= 0 {
		speed = 5 * time.Second
	}
	return ShinyText{
		Text:  text,
		Speed: speed,
		base:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		mid:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		shine: lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
	}
}

// BandCenter returns the highlight position in runes at elapsed. The band
// starts one text-width left of the label and leaves one width to the right.
func (s ShinyText) BandCenter(elapsed time.Duration) float64 {
	n := float64(len([]rune(s.Text)))
	if s.Speed <= 0 || n == 0 {
		return -1
	}
	progress := float64(elapsed%s.Speed) / float64(s.Speed)
	return -n*0.5 + progress*n*2
}

// Render draws the label as it looks at elapsed
func (s ShinyText) Render(elapsed time.Duration) string {
	if s.Disabled {
		return s.base.Render(s.Text)
	}
	center := s.BandCenter(elapsed)

	var b strings.Builder
	for i, r := range []rune(s.Text) {
		d := math.Abs(float64(i) - center)
		switch {
		case d < 1:
			b.WriteString(s.shine.Render(string(r)))
		case d < 2.5:
			b.WriteString(s.mid.Render(string(r)))
		default:
			b.WriteString(s.base.Render(string(r)))
		}
	}
	return b.String()
}
