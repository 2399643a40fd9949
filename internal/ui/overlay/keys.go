package overlay

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the overlay's keyboard contract. Bindings are enabled only
// while the overlay is open.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the overlay bindings, disabled
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
	km.setEnabled(false)
	return km
}

func (k *KeyMap) setEnabled(on bool) {
	k.Up.SetEnabled(on)
	k.Down.SetEnabled(on)
	k.Enter.SetEnabled(on)
	k.Escape.SetEnabled(on)
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Escape}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Enter, k.Escape}}
}
