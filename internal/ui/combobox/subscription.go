package combobox

import tea "github.com/charmbracelet/bubbletea"

// Handler reacts to a message routed through a Subscription
type Handler func(tea.Msg) tea.Cmd

// Subscription routes messages to a handler while attached. The combo-box
// attaches its listeners on opening and detaches them on closing.
type Subscription struct {
	name    string
	handler Handler
}

// NewSubscription creates a detached subscription
func NewSubscription(name string) *Subscription {
	return &Subscription{name: name}
}

// Name returns the subscription name
func (s *Subscription) Name() string {
	return s.name
}

// Attach installs h, replacing any previous handler
func (s *Subscription) Attach(h Handler) {
	s.handler = h
}

// Detach removes the handler. Detaching twice is harmless.
func (s *Subscription) Detach() {
	s.handler = nil
}

// Attached reports whether a handler is installed
func (s *Subscription) Attached() bool {
	return s.handler != nil
}

// Dispatch delivers msg to the handler, if any
func (s *Subscription) Dispatch(msg tea.Msg) tea.Cmd {
	if s.handler == nil {
		return nil
	}
	return s.handler(msg)
}
