package input

import "battletower/internal/ui/input/types"

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Focused types.Focus
	Open    bool
	Busy    bool
}

// Focus returns the focused control
func (c *ModelContext) Focus() types.Focus {
	return c.Focused
}

// ComboOpen reports whether the team list is open
func (c *ModelContext) ComboOpen() bool {
	return c.Open
}

// Resolving reports whether team details are being fetched
func (c *ModelContext) Resolving() bool {
	return c.Busy
}
