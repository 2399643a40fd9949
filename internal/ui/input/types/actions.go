package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// FocusAction moves page focus through FocusOrder by Delta steps
type FocusAction struct {
	Delta int
}

func (a FocusAction) Type() string { return "focus" }

// ActivateAction triggers the focused control, nav link or menu item
type ActivateAction struct{}

func (a ActivateAction) Type() string { return "activate" }

// ChooseMenuItemAction picks the highlighted dropdown entry
type ChooseMenuItemAction struct{}

func (a ChooseMenuItemAction) Type() string { return "choose_menu_item" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// OpenSearchAction asks the page to show the search overlay
type OpenSearchAction struct{}

func (a OpenSearchAction) Type() string { return "open_search" }

// OverlayKeyAction forwards a key to the open overlay
type OverlayKeyAction struct {
	Key tea.KeyMsg
}

func (a OverlayKeyAction) Type() string { return "overlay_key" }

// SetNavAction expands or collapses the navigation cards
type SetNavAction struct {
	Expanded bool
}

func (a SetNavAction) Type() string { return "set_nav" }

// SetMenuAction shows or hides the Get Started dropdown
type SetMenuAction struct {
	Open bool
}

func (a SetMenuAction) Type() string { return "set_menu" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
