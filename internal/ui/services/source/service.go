package source

import (
	"context"
	"log"
	"sync"

	"battletower/internal/domain"
	"battletower/internal/eventbus"
)

// Service accumulates options page by page from a Lister, dropping items
// whose identity is already cached. At most one page request is in flight.
type Service struct {
	mu         sync.Mutex
	state      *State
	lister     Lister
	bus        eventbus.EventBus
	pageSize   int
	spriteBase string
	generation int // bumped by Reset so stale pages are discarded
}

// NewService creates an option source. bus may be nil.
func NewService(lister Lister, bus eventbus.EventBus, pageSize int, spriteBase string) *Service {
	if pageSize < 1 {
		pageSize = 20
	}
	s := &Service{
		lister:     lister,
		bus:        bus,
		pageSize:   pageSize,
		spriteBase: spriteBase,
	}
	s.state = newState()
	return s
}

func newState() *State {
	return &State{
		Seen:   make(map[string]struct{}),
		Cursor: domain.PageCursor{Offset: 0, HasMore: true},
	}
}

// LoadNextPage fetches the page at the current offset and appends the items
// not seen before. A call while another is in flight, or after the upstream
// reported the last page, is a no-op. On error the cursor is left unchanged.
func (s *Service) LoadNextPage(ctx context.Context) ([]domain.Option, bool, error) {
	s.mu.Lock()
	if s.state.Loading || !s.state.Cursor.HasMore {
		hasMore := s.state.Cursor.HasMore
		s.mu.Unlock()
		return nil, hasMore, nil
	}
	s.state.Loading = true
	offset := s.state.Cursor.Offset
	generation := s.generation
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.generation == generation {
			s.state.Loading = false
		}
		s.mu.Unlock()
	}()

	s.publish(eventbus.PageRequestedEvent{Offset: offset, Limit: s.pageSize})

	page, err := s.lister.ListPage(ctx, s.pageSize, offset)
	if err != nil {
		log.Printf("Error loading options at offset %d: %v", offset, err)
		s.publish(eventbus.PageFailedEvent{Offset: offset, Err: err})
		s.mu.Lock()
		hasMore := s.state.Cursor.HasMore
		s.mu.Unlock()
		return nil, hasMore, err
	}

	s.mu.Lock()
	if s.generation != generation {
		hasMore := s.state.Cursor.HasMore
		s.mu.Unlock()
		return nil, hasMore, nil
	}
	added := make([]domain.Option, 0, len(page.Results))
	for _, item := range page.Results {
		opt := domain.NewOption(item, s.spriteBase)
		if _, dup := s.state.Seen[opt.Identity]; dup {
			continue
		}
		s.state.Seen[opt.Identity] = struct{}{}
		s.state.Options = append(s.state.Options, opt)
		added = append(added, opt)
	}
	s.state.Cursor.Offset = offset + len(page.Results)
	s.state.Cursor.HasMore = page.HasNext()
	hasMore := s.state.Cursor.HasMore
	s.mu.Unlock()

	s.publish(eventbus.PageLoadedEvent{
		Offset:  offset,
		Fetched: len(page.Results),
		Added:   len(added),
		HasMore: hasMore,
	})

	return added, hasMore, nil
}

// Options returns a copy of the accumulated cache
func (s *Service) Options() []domain.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Option, len(s.state.Options))
	copy(out, s.state.Options)
	return out
}

// Len returns the number of cached options
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Options)
}

// Loading reports whether a page request is in flight
func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Loading
}

// HasMore reports whether the upstream has further pages
func (s *Service) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cursor.HasMore
}

// Cursor returns the pagination cursor
func (s *Service) Cursor() domain.PageCursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cursor
}

// Reset empties the cache and rewinds the cursor. The result of a request
// in flight at the time of the reset is discarded.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = newState()
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
