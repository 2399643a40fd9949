package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"amphi/internal/ui/input/modes"
	"amphi/internal/ui/input/types"
)

// TextTarget is the text field typed into while in ModeHeroInput
type TextTarget interface {
	Update(msg tea.Msg) tea.Cmd
	Focus() tea.Cmd
	Blur()
	Value() string
}

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	text        TextTarget
}

func New(text TextTarget) *Handler {
	h := &Handler{
		currentMode: types.ModePage,
		text:        text,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModePage] = modes.NewPageMode()
	h.modes[types.ModeHeroInput] = modes.NewHeroInputMode()
	h.modes[types.ModeOverlay] = modes.NewOverlayMode()
	h.modes[types.ModeNav] = modes.NewNavMode()
	h.modes[types.ModeMenu] = modes.NewMenuMode()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmds []tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			modeActions, cmd := h.switchMode(changeMode.Mode, ctx)
			allActions = append(allActions, modeActions...)
			cmds = append(cmds, cmd)
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed && h.text != nil {
		cmds = append(cmds, h.text.Update(msg))
		allActions = append(allActions, types.UpdateTextAction{Text: h.text.Value()})
	}

	return allActions, tea.Batch(cmds...)
}

// switchMode runs the exit and enter hooks and moves text focus
func (h *Handler) switchMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		actions = append(actions, cur.Exit(ctx)...)
	}

	oldMode := h.currentMode
	h.currentMode = mode

	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	var cmd tea.Cmd
	if h.text != nil {
		if h.isTextMode(h.currentMode) {
			cmd = h.text.Focus()
		} else if h.isTextMode(oldMode) {
			h.text.Blur()
		}
	}
	return actions, cmd
}

// ChangeMode switches mode outside of a key press, e.g. after a mouse click
// or when the overlay closes itself
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	return h.switchMode(mode, ctx)
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeHeroInput
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) && h.text != nil {
		return h.text.Update(msg)
	}
	return nil
}
