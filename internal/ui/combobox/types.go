package combobox

// State is the open/closed state of the control
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Options configures a combo-box
type Options struct {
	Height      int    // visible list rows
	Threshold   int    // rows from the end that trigger the next page
	Width       int    // rendered width, 0 for natural width
	Placeholder string // shown when nothing is selected
}

// PageLoadedMsg is delivered when a page request completes
type PageLoadedMsg struct {
	Added   int
	HasMore bool
}

// PageFailedMsg is delivered when a page request fails
type PageFailedMsg struct {
	Err error
}

// ScrollMsg is routed to the scroll-proximity subscription after the list
// window moves
type ScrollMsg struct {
	Offset    int
	Remaining int
}

// Event types published on the UI bus
type OpenedEvent struct {
	Cached int
}

type ClosedEvent struct {
	Selected int
}

// listTop is the number of lines above the first list row in the open view
const listTop = 3
