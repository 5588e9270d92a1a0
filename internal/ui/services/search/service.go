package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"battletower/internal/domain"
	"battletower/internal/ui/services/events"
)

// Service narrows the accumulated options to the ones whose label contains the query.
// It never mutates the accumulated list and never fetches.
type Service struct {
	state     *State
	bus       events.EventBus
	optionsFn func() []domain.Option // accumulated options, in load order
}

// NewService creates a new search service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// SetOptionsFunction sets the function returning the accumulated options
func (s *Service) SetOptionsFunction(fn func() []domain.Option) {
	s.optionsFn = fn
}

// SetQuery stores q. Setting the same query again yields the same visible list.
func (s *Service) SetQuery(q string) {
	s.state.Query = q

	if q == "" {
		s.bus.Publish(QueryClearedEvent{})
		return
	}

	s.bus.Publish(QueryChangedEvent{
		Query:      q,
		MatchCount: len(s.Visible()),
	})
}

// Query returns the current query
func (s *Service) Query() string {
	return s.state.Query
}

// Visible returns the accumulated options matching the current query, in load order
func (s *Service) Visible() []domain.Option {
	all := s.all()
	if s.state.Query == "" {
		return all
	}

	query := strings.ToLower(s.state.Query)
	visible := make([]domain.Option, 0, len(all))
	for _, opt := range all {
		if strings.Contains(strings.ToLower(opt.Label), query) {
			visible = append(visible, opt)
		}
	}
	return visible
}

// ShouldHighlight reports whether label matches a non-empty query
func (s *Service) ShouldHighlight(label string) bool {
	if s.state.Query == "" {
		return false
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(s.state.Query))
}

// Suggestions returns up to limit labels that fuzzily resemble the query.
// Only offered when the substring filter matches nothing.
func (s *Service) Suggestions(limit int) []string {
	if s.state.Query == "" || limit <= 0 || len(s.Visible()) > 0 {
		return nil
	}

	all := s.all()
	labels := make([]string, len(all))
	for i, opt := range all {
		labels[i] = opt.Label
	}

	ranks := fuzzy.RankFindFold(s.state.Query, labels)
	sort.Sort(ranks)

	out := make([]string, 0, limit)
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, r.Target)
	}
	return out
}

func (s *Service) all() []domain.Option {
	if s.optionsFn == nil {
		return nil
	}
	return s.optionsFn()
}
