package search

import (
	"sort"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
)

// Rank returns a sorted copy of the itineraries. SortByCost orders by
// non-decreasing total price, SortByTime by non-decreasing total
// duration; both compare exact values, not display strings. The sort is
// stable, so ties keep their discovery order. SortByNone returns the
// copy unchanged.
func Rank(itineraries []entity.Itinerary, by entity.SortBy) []entity.Itinerary {
	ranked := make([]entity.Itinerary, len(itineraries))
	copy(ranked, itineraries)

	switch by {
	case entity.SortByCost:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TotalPrice() < ranked[j].TotalPrice()
		})
	case entity.SortByTime:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TotalDuration() < ranked[j].TotalDuration()
		})
	}

	return ranked
}
