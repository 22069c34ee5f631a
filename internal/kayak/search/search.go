package search

import (
	"time"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
	"github.com/kbop543/BrokenKayak/internal/kayak/network"
)

// MaxStopover is the longest allowed gap between one leg's arrival and
// the next leg's departure. The window is inclusive at both ends:
// 0 <= gap <= MaxStopover.
const MaxStopover = 6 * time.Hour

// Engine enumerates itineraries over a flight network. It holds no state
// across searches; a search runs to completion before returning.
type Engine struct {
	network *network.Network
}

func NewEngine(n *network.Network) *Engine {
	return &Engine{network: n}
}

// Search returns every itinerary from origin to destination whose first
// leg departs on date (DateLayout format). Results are in depth-first
// discovery order, flights explored in bucket ingestion order, with
// 1-based positions assigned in that order. No matching flights is an
// empty result, not an error; unknown airports simply have no flights.
func (e *Engine) Search(date, origin, destination string) []entity.Itinerary {
	s := &state{
		network:     e.network,
		destination: destination,
		visited:     map[string]bool{origin: true},
	}
	for _, f := range e.network.Departures(origin) {
		if !f.DepartsOn(date) {
			continue
		}
		s.extend([]entity.Flight{f})
	}
	return s.results
}

type state struct {
	network     *network.Network
	destination string
	visited     map[string]bool
	results     []entity.Itinerary
}

// extend emits the path when it has reached the destination, then keeps
// exploring deeper: a path that reaches the destination early is still a
// distinct itinerary from one reaching it again via more hops.
func (s *state) extend(path []entity.Flight) {
	last := path[len(path)-1]
	if last.Destination == s.destination {
		legs := make([]entity.Flight, len(path))
		copy(legs, path)
		s.results = append(s.results, entity.Itinerary{
			Position: len(s.results) + 1,
			Legs:     legs,
		})
	}
	if s.visited[last.Destination] {
		return
	}
	s.visited[last.Destination] = true
	for _, f := range s.network.Departures(last.Destination) {
		gap := f.Departure.Sub(last.Arrival)
		if gap < 0 || gap > MaxStopover {
			continue
		}
		next := make([]entity.Flight, len(path), len(path)+1)
		copy(next, path)
		s.extend(append(next, f))
	}
	delete(s.visited, last.Destination)
}
