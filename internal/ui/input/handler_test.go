package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battletower/internal/ui/input/types"
)

func TestTabMovesFocus(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: types.FocusFirstName}

	assert.Equal(t, []types.Action{types.FocusNextAction{}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx))
	assert.Equal(t, []types.Action{types.FocusPrevAction{}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab}, ctx))
}

func TestLettersGoToTextField(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: types.FocusFirstName}

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}
	actions := h.HandleKey(msg, ctx)
	require.Equal(t, []types.Action{types.ForwardKeyAction{Msg: msg}}, actions)
	require.Equal(t, types.ModeForm, h.CurrentMode())
}

func TestOpenListOwnsKeys(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: types.FocusTeam, Open: true}

	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyUp},
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune("?")},
	} {
		actions := h.HandleKey(msg, ctx)
		require.Equal(t, []types.Action{types.ForwardKeyAction{Msg: msg}}, actions, msg.String())
	}

	// Focus change still works and dismisses the list upstream
	assert.Equal(t, []types.Action{types.FocusNextAction{}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyTab}, ctx))
}

func TestSubmitButton(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: types.FocusSubmit}

	assert.Equal(t, []types.Action{types.SubmitAction{}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx))
	assert.Equal(t, []types.Action{types.SubmitAction{}}, h.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ctx))
	assert.Equal(t, []types.Action{types.QuitAction{}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, ctx))
}

func TestHelpModeRoundTrip(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: types.FocusSubmit}

	actions := h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, ctx)
	require.Equal(t, []types.Action{types.ToggleHelpAction{}}, actions)
	require.Equal(t, types.ModeHelp, h.CurrentMode())

	actions = h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("H")}, ctx)
	require.Equal(t, []types.Action{types.ToggleHelpAction{}, types.OpenHelpPagerAction{}}, actions)
	require.Equal(t, types.ModeForm, h.CurrentMode())
}

func TestModalSwallowsKeys(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: types.FocusSubmit}
	require.Empty(t, h.ChangeMode(types.ModeModal, ctx))

	assert.Empty(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, ctx))
	assert.Equal(t, []types.Action{types.CloseModalAction{}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyEsc}, ctx))
	assert.Equal(t, types.ModeForm, h.CurrentMode())
}

func TestModalIgnoresEnterWhileResolving(t *testing.T) {
	h := New()
	ctx := &ModelContext{Focused: types.FocusSubmit, Busy: true}
	h.ChangeMode(types.ModeModal, ctx)

	assert.Empty(t, h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx))
	assert.Equal(t, types.ModeModal, h.CurrentMode())

	ctx.Busy = false
	assert.Equal(t, []types.Action{types.CloseModalAction{}}, h.HandleKey(tea.KeyMsg{Type: tea.KeyEnter}, ctx))
	assert.Equal(t, types.ModeForm, h.CurrentMode())
}
