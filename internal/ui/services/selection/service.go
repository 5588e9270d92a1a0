package selection

import (
	"battletower/internal/domain"
	"battletower/internal/ui/services/events"
)

// Service holds the bounded, ordered set of chosen options
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a selection service that keeps at most max options.
// A max below 1 is treated as 1.
func NewService(bus events.EventBus, max int) *Service {
	if max < 1 {
		max = 1
	}
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Selected: make([]domain.Option, 0, max),
			Max:      max,
		},
		bus: bus,
	}
}

// Toggle removes option if it is selected, otherwise appends it.
// At capacity the earliest-selected option is evicted first.
func (s *Service) Toggle(option domain.Option) {
	if i := s.indexOf(option.Identity); i >= 0 {
		s.removeAt(i)
		s.bus.Publish(SelectionChangedEvent{
			Removed: []string{option.Identity},
			Total:   len(s.state.Selected),
		})
		return
	}

	var evicted []string
	if len(s.state.Selected) >= s.state.Max {
		evicted = append(evicted, s.state.Selected[0].Identity)
		s.removeAt(0)
	}
	s.state.Selected = append(s.state.Selected, option)

	s.bus.Publish(SelectionChangedEvent{
		Added:   []string{option.Identity},
		Evicted: evicted,
		Total:   len(s.state.Selected),
	})
}

// Remove drops option by identity; no-op when it is not selected
func (s *Service) Remove(option domain.Option) {
	i := s.indexOf(option.Identity)
	if i < 0 {
		return
	}
	s.removeAt(i)
	s.bus.Publish(SelectionChangedEvent{
		Removed: []string{option.Identity},
		Total:   len(s.state.Selected),
	})
}

// RemoveLast drops the most recently selected option
func (s *Service) RemoveLast() {
	if len(s.state.Selected) == 0 {
		return
	}
	s.Remove(s.state.Selected[len(s.state.Selected)-1])
}

// Clear empties the selection
func (s *Service) Clear() {
	s.state.Selected = s.state.Selected[:0]
	s.bus.Publish(SelectionClearedEvent{})
}

// IsSelected checks if an identity is selected
func (s *Service) IsSelected(identity string) bool {
	return s.indexOf(identity) >= 0
}

// Selected returns the selection in selection order
func (s *Service) Selected() []domain.Option {
	out := make([]domain.Option, len(s.state.Selected))
	copy(out, s.state.Selected)
	return out
}

// Count returns the number of selected options
func (s *Service) Count() int {
	return len(s.state.Selected)
}

// Max returns the selection bound
func (s *Service) Max() int {
	return s.state.Max
}

// Full reports whether the next new option will evict the oldest one
func (s *Service) Full() bool {
	return len(s.state.Selected) >= s.state.Max
}

func (s *Service) indexOf(identity string) int {
	for i, opt := range s.state.Selected {
		if opt.Identity == identity {
			return i
		}
	}
	return -1
}

func (s *Service) removeAt(i int) {
	s.state.Selected = append(s.state.Selected[:i], s.state.Selected[i+1:]...)
}
