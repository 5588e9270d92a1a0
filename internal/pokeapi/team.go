package pokeapi

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"battletower/internal/domain"
	"battletower/internal/eventbus"
)

// DetailFetcher resolves a single record by name or id
type DetailFetcher interface {
	Detail(ctx context.Context, nameOrID string) (*domain.Creature, error)
}

// TeamResolver fetches detail records for a selected team
type TeamResolver struct {
	fetcher     DetailFetcher
	bus         eventbus.EventBus
	concurrency int
}

// NewTeamResolver creates a resolver. bus may be nil.
func NewTeamResolver(fetcher DetailFetcher, bus eventbus.EventBus) *TeamResolver {
	return &TeamResolver{
		fetcher:     fetcher,
		bus:         bus,
		concurrency: 4,
	}
}

// Resolve fetches details for every option concurrently and returns them in
// selection order. Failed lookups are logged and left out of the result;
// only context cancellation is returned as an error.
func (r *TeamResolver) Resolve(ctx context.Context, options []domain.Option) ([]domain.Creature, error) {
	names := make([]string, len(options))
	for i, opt := range options {
		names[i] = opt.Name
	}
	r.publish(eventbus.TeamRequestedEvent{Names: names})

	results := make([]*domain.Creature, len(options))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, name := range names {
		g.Go(func() error {
			creature, err := r.fetcher.Detail(gctx, name)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				log.Printf("Error fetching details for %s: %v", name, err)
				r.publish(eventbus.DetailFailedEvent{Name: name, Err: err})
				return nil
			}
			results[i] = creature
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	team := make([]domain.Creature, 0, len(results))
	for _, c := range results {
		if c != nil {
			team = append(team, *c)
		}
	}

	r.publish(eventbus.TeamResolvedEvent{Requested: len(options), Resolved: len(team)})
	return team, nil
}

func (r *TeamResolver) publish(event eventbus.DomainEvent) {
	if r.bus != nil {
		r.bus.Publish(event)
	}
}
