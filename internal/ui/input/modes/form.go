package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"battletower/internal/ui/input/types"
)

// FormMode moves focus between the form controls. Keys it does not
// consume go to the focused control.
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyTab:
		return []types.Action{types.FocusNextAction{}}, true
	case tea.KeyShiftTab:
		return []types.Action{types.FocusPrevAction{}}, true
	case tea.KeyCtrlS:
		return []types.Action{types.SubmitAction{}}, true
	case tea.KeyF1:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	}

	// The open list owns every other key, esc included
	if ctx.ComboOpen() {
		return nil, false
	}

	focus := ctx.Focus()
	switch msg.Type {
	case tea.KeyUp:
		if focus != types.FocusFirstName {
			return []types.Action{types.FocusPrevAction{}}, true
		}
		return nil, true
	case tea.KeyDown:
		if focus.IsText() {
			return []types.Action{types.FocusNextAction{}}, true
		}
	case tea.KeyEnter:
		if focus.IsText() {
			return []types.Action{types.FocusNextAction{}}, true
		}
		if focus == types.FocusSubmit {
			return []types.Action{types.SubmitAction{}}, true
		}
	}

	// Letters are field input while a text field has focus
	if focus.IsText() {
		return nil, false
	}

	switch msg.String() {
	case "?":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true
	case " ":
		if focus == types.FocusSubmit {
			return []types.Action{types.SubmitAction{}}, true
		}
	case "q":
		if focus == types.FocusSubmit {
			return []types.Action{types.QuitAction{}}, true
		}
	}
	return nil, false
}
