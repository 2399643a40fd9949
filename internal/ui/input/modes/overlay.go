package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"amphi/internal/ui/input/types"
)

// OverlayMode hands every key to the search overlay. The overlay reports
// when it closes; the page then switches back to PageMode.
type OverlayMode struct{}

func NewOverlayMode() *OverlayMode {
	return &OverlayMode{}
}

func (m *OverlayMode) Name() string {
	return "search"
}

func (m *OverlayMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OverlayMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OverlayMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	return []types.Action{types.OverlayKeyAction{Key: msg}}, true
}
