package types

import tea "github.com/charmbracelet/bubbletea"

// Focus actions
type FocusNextAction struct{}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusPrevAction struct{}

func (a FocusPrevAction) Type() string { return "focus_prev" }

type FocusAction struct {
	Target Focus
}

func (a FocusAction) Type() string { return "focus" }

// ForwardKeyAction hands a key the mode did not consume to the focused control
type ForwardKeyAction struct {
	Msg tea.KeyMsg
}

func (a ForwardKeyAction) Type() string { return "forward_key" }

// Form actions
type SubmitAction struct{}

func (a SubmitAction) Type() string { return "submit" }

type CloseModalAction struct{}

func (a CloseModalAction) Type() string { return "close_modal" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Help actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type ScrollHelpAction struct {
	Delta int
}

func (a ScrollHelpAction) Type() string { return "scroll_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
