package input

import (
	"amphi/internal/ui/input/types"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Focus types.Control
	Text  string
}

// FocusedControl returns the control holding page focus
func (c *ModelContext) FocusedControl() types.Control {
	return c.Focus
}

// HeroText returns the hero input's current value
func (c *ModelContext) HeroText() string {
	return c.Text
}
