package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tier is the visual state of a GlassInput
type Tier int

const (
	TierIdle Tier = iota
	TierHovered
	TierFocused
)

func (t Tier) String() string {
	switch t {
	case TierHovered:
		return "hovered"
	case TierFocused:
		return "focused"
	default:
		return "idle"
	}
}

// GlassInput is a controlled text input whose frame changes with hover
// and focus. The value is mirrored locally and every change is reported
// through OnChange.
type GlassInput struct {
	OnChange func(string)

	input   textinput.Model
	value   string
	hovered bool
	width   int
}

// NewGlassInput creates an input with the given placeholder and inner width
func NewGlassInput(placeholder string, width int) *GlassInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Width = width
	return &GlassInput{input: ti, width: width}
}

func (g *GlassInput) Focus() tea.Cmd { return g.input.Focus() }
func (g *GlassInput) Blur()          { g.input.Blur() }
func (g *GlassInput) Focused() bool  { return g.input.Focused() }

func (g *GlassInput) SetHovered(h bool) { g.hovered = h }
func (g *GlassInput) Hovered() bool     { return g.hovered }

// Value returns the mirrored value
func (g *GlassInput) Value() string { return g.value }

// SetValue replaces the value, reporting it like a keystroke would
func (g *GlassInput) SetValue(v string) {
	g.input.SetValue(v)
	g.sync()
}

// Tier resolves the visual tier. Focus wins over hover.
func (g *GlassInput) Tier() Tier {
	switch {
	case g.input.Focused():
		return TierFocused
	case g.hovered:
		return TierHovered
	default:
		return TierIdle
	}
}

// Update forwards msg to the underlying textinput
func (g *GlassInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	g.sync()
	return cmd
}

func (g *GlassInput) sync() {
	v := g.input.Value()
	if v == g.value {
		return
	}
	g.value = v
	if g.OnChange != nil {
		g.OnChange(v)
	}
}

// Width returns the rendered width including the frame
func (g *GlassInput) Width() int {
	return g.width + 6
}

func (g *GlassInput) View() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(g.width + 4)

	switch g.Tier() {
	case TierFocused:
		frame = frame.BorderForeground(lipgloss.Color("231")).Background(lipgloss.Color("236"))
	case TierHovered:
		frame = frame.BorderForeground(lipgloss.Color("248")).Background(lipgloss.Color("235"))
	default:
		frame = frame.BorderForeground(lipgloss.Color("240"))
	}
	return frame.Render(g.input.View())
}
