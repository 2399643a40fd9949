package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"amphi/internal/ui/input/types"
)

// MenuMode drives the Get Started dropdown
type MenuMode struct{}

func NewMenuMode() *MenuMode {
	return &MenuMode{}
}

func (m *MenuMode) Name() string {
	return "menu"
}

func (m *MenuMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.SetMenuAction{Open: true}}
}

func (m *MenuMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.SetMenuAction{Open: false}}
}

func (m *MenuMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePage}}, true
	case "up", "k", "shift+tab":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j", "tab":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "enter", " ":
		return []types.Action{
			types.ChooseMenuItemAction{},
			types.ChangeModeAction{Mode: types.ModePage},
		}, true
	}

	return nil, true
}
