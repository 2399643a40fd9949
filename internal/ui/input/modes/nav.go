package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"amphi/internal/ui/input/types"
)

// NavMode moves link focus inside the expanded navigation cards
type NavMode struct{}

func NewNavMode() *NavMode {
	return &NavMode{}
}

func (m *NavMode) Name() string {
	return "nav"
}

func (m *NavMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.SetNavAction{Expanded: true}}
}

func (m *NavMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.SetNavAction{Expanded: false}}
}

func (m *NavMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "ctrl+k":
		return []types.Action{
			types.OpenSearchAction{},
			types.ChangeModeAction{Mode: types.ModeOverlay},
		}, true
	case "esc", "m", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModePage}}, true
	case "up", "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "left", "h", "shift+tab":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case "right", "l", "tab":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case "enter", " ":
		return []types.Action{types.ActivateAction{}}, true
	}

	return nil, true
}
