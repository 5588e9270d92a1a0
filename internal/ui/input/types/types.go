package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeForm Mode = iota
	ModeModal
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeModal:
		return "modal"
	case ModeHelp:
		return "help"
	default:
		return "form"
	}
}

// Focus identifies the focused form control
type Focus int

const (
	FocusFirstName Focus = iota
	FocusLastName
	FocusTeam
	FocusSubmit
)

// FocusCount is the number of focusable controls
const FocusCount = 4

// IsText reports whether the control is a text field
func (f Focus) IsText() bool {
	return f == FocusFirstName || f == FocusLastName
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Focus() Focus
	ComboOpen() bool
	Resolving() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
