package usecase

import (
	"strconv"
	"strings"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
)

// buildCacheKey carries airport codes verbatim: network lookups are
// case-sensitive, so the key must be too. The generation ties the entry
// to the network it was computed from, so a write that lands after a
// purge is never served against a newer network.
func buildCacheKey(generation uint64, date, origin, destination string, by entity.SortBy) string {
	return strings.Join([]string{
		strconv.FormatUint(generation, 10),
		date,
		origin,
		destination,
		sortLabel(by),
	}, "|")
}

func sortLabel(by entity.SortBy) string {
	switch by {
	case entity.SortByCost:
		return "cost"
	case entity.SortByTime:
		return "time"
	default:
		return "none"
	}
}

func CloneItinerariesOutput(value *ItinerariesOutput) *ItinerariesOutput {
	if value == nil {
		return nil
	}
	clone := &ItinerariesOutput{
		SearchCriteria: value.SearchCriteria,
		Itineraries:    make([]entity.Itinerary, len(value.Itineraries)),
		CacheHit:       value.CacheHit,
		SearchTimeMs:   value.SearchTimeMs,
	}
	copy(clone.Itineraries, value.Itineraries)
	return clone
}
