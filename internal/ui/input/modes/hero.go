package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"amphi/internal/ui/input/types"
)

// HeroInputMode types into the hero input. Keys it does not claim go to
// the input itself.
type HeroInputMode struct{}

func NewHeroInputMode() *HeroInputMode {
	return &HeroInputMode{}
}

func (m *HeroInputMode) Name() string {
	return "input"
}

func (m *HeroInputMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HeroInputMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HeroInputMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "ctrl+k":
		return []types.Action{
			types.OpenSearchAction{},
			types.ChangeModeAction{Mode: types.ModeOverlay},
		}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModePage},
		}, true
	case "tab":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModePage},
			types.FocusAction{Delta: 1},
		}, true
	case "shift+tab":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModePage},
			types.FocusAction{Delta: -1},
		}, true
	case "enter":
		return []types.Action{types.SubmitTextAction{Text: ctx.HeroText()}}, true
	default:
		// Returning false here means the input handler will process it
		return nil, false
	}
}
