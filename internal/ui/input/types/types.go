package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModePage Mode = iota
	ModeHeroInput
	ModeOverlay
	ModeNav
	ModeMenu
)

func (m Mode) String() string {
	switch m {
	case ModeHeroInput:
		return "input"
	case ModeOverlay:
		return "search"
	case ModeNav:
		return "nav"
	case ModeMenu:
		return "menu"
	default:
		return "page"
	}
}

// Control is a focusable element of the page
type Control int

const (
	ControlNone Control = iota
	ControlSearch
	ControlDoc
	ControlAPI
	ControlHeroInput
	ControlGetStarted
	ControlLearnMore
	ControlOrb
)

// FocusOrder is the Tab order of the page controls
var FocusOrder = []Control{
	ControlSearch,
	ControlDoc,
	ControlAPI,
	ControlHeroInput,
	ControlGetStarted,
	ControlLearnMore,
	ControlOrb,
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	FocusedControl() Control
	HeroText() string
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
