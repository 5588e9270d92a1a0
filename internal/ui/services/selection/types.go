package selection

import "battletower/internal/domain"

// State holds selection state
type State struct {
	Selected []domain.Option // selection order, oldest first
	Max      int
}

// Event types
type SelectionChangedEvent struct {
	Added   []string // identities
	Removed []string // identities removed by the user
	Evicted []string // identities dropped to make room
	Total   int
}

type SelectionClearedEvent struct{}
