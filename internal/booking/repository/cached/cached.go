// Package cached decorates a booking Repository with an LRU cache over
// route lookups. The route table is small, read-only reference data hit
// on every quote and booking, so caching it cuts a store round-trip per
// turn. Booking reads and writes pass straight through.
package cached

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	repo "air-cargo-assistant/internal/booking/repository"
	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/pkg/log"
)

const defaultCacheSize = 256

type implRepository struct {
	repo.Repository
	cache *lru.Cache[string, model.Route]
	l     log.Logger
}

// New wraps inner with a route-lookup LRU cache of the given size.
// Size <= 0 uses a default.
func New(inner repo.Repository, size int, l log.Logger) (repo.Repository, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, model.Route](size)
	if err != nil {
		return nil, err
	}
	return &implRepository{Repository: inner, cache: cache, l: l}, nil
}

// GetRoute serves route lookups from the cache, falling through to the
// inner store on miss. Not-found results are not cached so a freshly
// seeded lane becomes visible without a restart.
func (r *implRepository) GetRoute(ctx context.Context, opt repo.GetRouteOptions) (model.Route, error) {
	key := opt.Origin + "-" + opt.Destination
	if route, ok := r.cache.Get(key); ok {
		return route, nil
	}

	route, err := r.Repository.GetRoute(ctx, opt)
	if err != nil {
		return model.Route{}, err
	}
	if route.ID != 0 {
		r.cache.Add(key, route)
	}
	return route, nil
}
