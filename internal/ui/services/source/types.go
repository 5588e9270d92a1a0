package source

import (
	"context"

	"battletower/internal/domain"
	"battletower/internal/pokeapi"
)

// Lister fetches one page of the upstream listing
type Lister interface {
	ListPage(ctx context.Context, limit, offset int) (*pokeapi.Page, error)
}

// State holds the accumulated option cache and the pagination cursor
type State struct {
	Options []domain.Option     // accumulated, in load order
	Seen    map[string]struct{} // identities already in Options
	Cursor  domain.PageCursor
	Loading bool
}
