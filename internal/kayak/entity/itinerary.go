package entity

import (
	"fmt"
	"time"
)

// Itinerary is an ordered chain of one or more connecting legs. Adjacent
// legs satisfy legs[i].Destination == legs[i+1].Origin; the search engine
// only ever builds chains that hold this.
type Itinerary struct {
	// Position is the 1-based discovery position within a search result.
	// Ranking reorders itineraries but keeps their discovery positions.
	Position int
	Legs     []Flight
}

func (it Itinerary) TotalPrice() Money {
	var total Money
	for _, leg := range it.Legs {
		total += leg.Price
	}
	return total
}

// TotalDuration is elapsed travel time including layovers: last arrival
// minus first departure.
func (it Itinerary) TotalDuration() time.Duration {
	if len(it.Legs) == 0 {
		return 0
	}
	return it.Legs[len(it.Legs)-1].Arrival.Sub(it.Legs[0].Departure)
}

// FormatDuration renders a duration as zero-padded HH:MM, truncated to
// whole minutes. Hours are total hours, not wrapped at 24.
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SortBy selects an itinerary ranking order.
type SortBy int

const (
	SortByNone SortBy = iota
	SortByCost
	SortByTime
)
