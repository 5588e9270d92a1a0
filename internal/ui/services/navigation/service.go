package navigation

import (
	"battletower/internal/ui/services/events"
)

// Service handles cursor movement and scrolling over a windowed list
type Service struct {
	state   *State
	bus     events.EventBus
	countFn func() int // number of rows currently in the list
}

// NewService creates a navigation service showing height rows at a time
func NewService(bus events.EventBus, height int) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	if height < 1 {
		height = 1
	}
	return &Service{
		state: &State{ViewportHeight: height},
		bus:   bus,
	}
}

// SetCountFunction sets the function reporting the list length
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
}

// Cursor returns current cursor position
func (s *Service) Cursor() int {
	return s.state.Cursor
}

// ViewportOffset returns the index of the first visible row
func (s *Service) ViewportOffset() int {
	return s.state.ViewportOffset
}

// ViewportHeight returns the number of visible rows
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates viewport height
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.Sync()
}

// Remaining returns the number of rows below the visible window
func (s *Service) Remaining() int {
	s.refreshCount()
	remaining := s.state.Count - (s.state.ViewportOffset + s.state.ViewportHeight)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NearEnd reports whether fewer than threshold rows lie below the window
func (s *Service) NearEnd(threshold int) bool {
	return s.Remaining() < threshold
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	oldCursor := s.state.Cursor
	s.refreshCount()

	switch direction {
	case DirectionUp:
		s.state.Cursor--
	case DirectionDown:
		s.state.Cursor++
	case DirectionPageUp:
		s.state.Cursor -= s.pageStep()
	case DirectionPageDown:
		s.state.Cursor += s.pageStep()
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.state.Count - 1
	}
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.refreshCount()

	oldCursor := s.state.Cursor
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()

	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldIndex: oldCursor,
			NewIndex: s.state.Cursor,
		})
	}
}

// Scroll moves the window by delta rows, dragging the cursor along when it
// would leave the window
func (s *Service) Scroll(delta int) {
	s.refreshCount()

	oldOffset := s.state.ViewportOffset
	s.state.ViewportOffset = s.clampOffset(s.state.ViewportOffset + delta)
	if s.state.ViewportOffset == oldOffset {
		return
	}

	if s.state.Cursor < s.state.ViewportOffset {
		s.state.Cursor = s.state.ViewportOffset
	} else if last := s.state.ViewportOffset + s.state.ViewportHeight - 1; s.state.Cursor > last {
		s.state.Cursor = s.clampIndex(last)
	}
	s.publishViewport()
}

// Sync re-clamps cursor and window after the list changed length
func (s *Service) Sync() {
	s.refreshCount()
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	s.ensureVisible()
}

// Reset moves cursor and window back to the top
func (s *Service) Reset() {
	s.state.Cursor = 0
	if s.state.ViewportOffset != 0 {
		s.state.ViewportOffset = 0
		s.publishViewport()
	}
}

func (s *Service) refreshCount() {
	if s.countFn != nil {
		s.state.Count = s.countFn()
	}
}

func (s *Service) pageStep() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) clampIndex(index int) int {
	if index >= s.state.Count {
		index = s.state.Count - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

func (s *Service) clampOffset(offset int) int {
	maxOffset := s.state.Count - s.state.ViewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}

func (s *Service) ensureVisible() {
	oldOffset := s.state.ViewportOffset

	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	s.state.ViewportOffset = s.clampOffset(s.state.ViewportOffset)

	if s.state.ViewportOffset != oldOffset {
		s.publishViewport()
	}
}

func (s *Service) publishViewport() {
	s.bus.Publish(ViewportChangedEvent{
		Offset: s.state.ViewportOffset,
		Height: s.state.ViewportHeight,
		Count:  s.state.Count,
	})
}
