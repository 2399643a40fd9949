package ui

import "github.com/charmbracelet/bubbles/key"

// pageKeyMap documents the page level keys for the status line and the
// help pager. Dispatch itself happens in the input modes.
type pageKeyMap struct {
	Search   key.Binding
	Focus    key.Binding
	Activate key.Binding
	Input    key.Binding
	Menu     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newPageKeyMap() pageKeyMap {
	return pageKeyMap{
		Search: key.NewBinding(
			key.WithKeys("ctrl+k", "/"),
			key.WithHelp("ctrl+k", "search"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "focus"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
		Input: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "ask"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k pageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Focus, k.Activate, k.Input, k.Menu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k pageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Input},
		{k.Focus, k.Activate, k.Menu},
		{k.Help, k.Quit},
	}
}
