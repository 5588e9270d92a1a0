package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battletower/internal/ui/services/events"
)

func newNav(count, height int) (*Service, *int) {
	n := count
	s := NewService(nil, height)
	s.SetCountFunction(func() int { return n })
	s.Sync()
	return s, &n
}

func TestNavigateKeepsCursorVisible(t *testing.T) {
	s, _ := newNav(20, 5)

	for i := 0; i < 6; i++ {
		s.Navigate(DirectionDown)
	}
	require.Equal(t, 6, s.Cursor())
	require.Equal(t, 2, s.ViewportOffset())

	s.Navigate(DirectionHome)
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())

	s.Navigate(DirectionEnd)
	assert.Equal(t, 19, s.Cursor())
	assert.Equal(t, 15, s.ViewportOffset())

	s.Navigate(DirectionDown)
	assert.Equal(t, 19, s.Cursor(), "cursor stops at the last row")
}

func TestPageMovement(t *testing.T) {
	s, _ := newNav(20, 5)

	s.Navigate(DirectionPageDown)
	assert.Equal(t, 4, s.Cursor())
	s.Navigate(DirectionPageDown)
	assert.Equal(t, 8, s.Cursor())
	s.Navigate(DirectionPageUp)
	assert.Equal(t, 4, s.Cursor())
}

func TestRemainingAndNearEnd(t *testing.T) {
	s, count := newNav(10, 4)

	require.Equal(t, 6, s.Remaining())
	require.False(t, s.NearEnd(2))

	s.Scroll(5)
	require.Equal(t, 5, s.ViewportOffset())
	require.Equal(t, 1, s.Remaining())
	require.True(t, s.NearEnd(2))
	require.Equal(t, 5, s.Cursor(), "cursor dragged into the window")

	// A page arrives
	*count = 30
	require.Equal(t, 21, s.Remaining())
	require.False(t, s.NearEnd(2))
}

func TestScrollClampsToContent(t *testing.T) {
	s, _ := newNav(6, 4)

	s.Scroll(100)
	assert.Equal(t, 2, s.ViewportOffset())
	s.Scroll(-100)
	assert.Equal(t, 0, s.ViewportOffset())
}

func TestSyncAfterShrink(t *testing.T) {
	s, count := newNav(20, 5)
	s.MoveToIndex(15)
	require.Equal(t, 15, s.Cursor())

	*count = 3
	s.Sync()
	assert.Equal(t, 2, s.Cursor())
	assert.Equal(t, 0, s.ViewportOffset())

	*count = 0
	s.Sync()
	assert.Equal(t, 0, s.Cursor())
}

func TestPublishesCursorEvents(t *testing.T) {
	bus := events.NewBus()
	var moves []CursorMovedEvent
	bus.Subscribe(events.NameOf(CursorMovedEvent{}), func(e interface{}) {
		moves = append(moves, e.(CursorMovedEvent))
	})

	s := NewService(bus, 3)
	s.SetCountFunction(func() int { return 3 })
	s.Navigate(DirectionDown)
	s.Navigate(DirectionUp)
	s.Navigate(DirectionUp) // already at top

	require.Equal(t, []CursorMovedEvent{{OldIndex: 0, NewIndex: 1}, {OldIndex: 1, NewIndex: 0}}, moves)
}
