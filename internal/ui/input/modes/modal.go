package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"battletower/internal/ui/input/types"
)

// ModalMode is active while the team summary is shown
type ModalMode struct{}

func NewModalMode() *ModalMode {
	return &ModalMode{}
}

func (m *ModalMode) Name() string {
	return "modal"
}

func (m *ModalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.CloseModalAction{}}
}

func (m *ModalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true
	case "enter", " ":
		// A repeated submit key must not dismiss the summary before it loads
		if ctx.Resolving() {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeForm}}, true
	}
	// Swallow everything else so the form underneath stays untouched
	return nil, true
}
