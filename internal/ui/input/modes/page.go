package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"amphi/internal/ui/input/types"
)

// PageMode moves focus between page controls
type PageMode struct{}

func NewPageMode() *PageMode {
	return &PageMode{}
}

func (m *PageMode) Name() string {
	return "page"
}

func (m *PageMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *PageMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PageMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyCtrlK:
		return []types.Action{
			types.OpenSearchAction{},
			types.ChangeModeAction{Mode: types.ModeOverlay},
		}, true

	case tea.KeyTab, tea.KeyRight:
		return []types.Action{types.FocusAction{Delta: 1}}, true

	case tea.KeyShiftTab, tea.KeyLeft:
		return []types.Action{types.FocusAction{Delta: -1}}, true

	case tea.KeyEnter, tea.KeySpace:
		if ctx.FocusedControl() == types.ControlNone {
			return nil, true
		}
		return []types.Action{types.ActivateAction{}}, true

	case tea.KeyEsc:
		return nil, true
	}

	switch msg.String() {
	case "l":
		return []types.Action{types.FocusAction{Delta: 1}}, true

	case "h":
		return []types.Action{types.FocusAction{Delta: -1}}, true

	case "/":
		return []types.Action{
			types.OpenSearchAction{},
			types.ChangeModeAction{Mode: types.ModeOverlay},
		}, true

	case "i":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHeroInput}}, true

	case "m":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNav}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
