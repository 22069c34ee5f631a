package usecase

import (
	"context"
	"time"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
	"github.com/kbop543/BrokenKayak/internal/kayak/search"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgmetric"
)

type ItinerariesInput struct {
	Date        time.Time
	Origin      string
	Destination string
	SortBy      entity.SortBy
}

type ItinerariesOutput struct {
	SearchCriteria SearchCriteria
	Itineraries    []entity.Itinerary
	CacheHit       bool
	SearchTimeMs   int64
}

type SearchCriteria struct {
	Date        string
	Origin      string
	Destination string
}

// Itineraries enumerates every itinerary for the criteria and ranks it
// per the selector. Positions on the returned itineraries are discovery
// positions; ranking reorders the slice but keeps them.
func (u *Usecase) Itineraries(_ context.Context, in ItinerariesInput) (*ItinerariesOutput, error) {
	start := time.Now()
	date := in.Date.Format(entity.DateLayout)
	pkgmetric.SearchesTotal.WithLabelValues(sortLabel(in.SortBy)).Inc()

	u.mu.RLock()
	cacheKey := buildCacheKey(u.generation, date, in.Origin, in.Destination, in.SortBy)
	if cached, ok := u.cache.Get(cacheKey); ok {
		u.mu.RUnlock()
		pkgmetric.SearchCacheHits.Inc()
		cached.CacheHit = true
		cached.SearchTimeMs = time.Since(start).Milliseconds()
		return cached, nil
	}
	results := search.NewEngine(u.network).Search(date, in.Origin, in.Destination)
	u.mu.RUnlock()

	output := &ItinerariesOutput{
		SearchCriteria: SearchCriteria{
			Date:        date,
			Origin:      in.Origin,
			Destination: in.Destination,
		},
		Itineraries:  search.Rank(results, in.SortBy),
		SearchTimeMs: time.Since(start).Milliseconds(),
	}

	u.cache.Set(cacheKey, output, u.cacheTTL)

	return output, nil
}
