package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"battletower/internal/ui/input/modes"
	"battletower/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeForm,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeForm] = modes.NewFormMode()
	h.modes[types.ModeModal] = modes.NewModalMode()
	h.modes[types.ModeHelp] = modes.NewHelpMode()

	return h
}

// HandleKey maps a key to actions for the current mode. Mode changes are
// applied here, with the Exit and Enter actions of the modes involved
// spliced in. A key the mode does not consume becomes a ForwardKeyAction.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return []types.Action{types.ForwardKeyAction{Msg: msg}}
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.ChangeMode(changeMode.Mode, ctx)...)
	}
	return allActions
}

// ChangeMode switches modes and returns the Exit/Enter actions to run
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeForm
	}
	return h.currentMode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeForm
}
