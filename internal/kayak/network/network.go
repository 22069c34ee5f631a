package network

import "github.com/kbop543/BrokenKayak/internal/kayak/entity"

// Network indexes flights by origin airport, then by destination airport.
// Buckets keep ingestion order. A Network is not internally locked: the
// owner serializes writes (the usecase does a Clone-and-swap) and treats
// a published Network as read-only.
type Network struct {
	adjacency  map[string]map[string][]entity.Flight
	departures map[string][]entity.Flight
	size       int
}

func New() *Network {
	return &Network{
		adjacency:  make(map[string]map[string][]entity.Flight),
		departures: make(map[string][]entity.Flight),
	}
}

// AddFlight appends the flight to its (origin, destination) bucket.
// Duplicate flight numbers are preserved as distinct entries.
func (n *Network) AddFlight(f entity.Flight) {
	byDest, ok := n.adjacency[f.Origin]
	if !ok {
		byDest = make(map[string][]entity.Flight)
		n.adjacency[f.Origin] = byDest
	}
	byDest[f.Destination] = append(byDest[f.Destination], f)
	n.departures[f.Origin] = append(n.departures[f.Origin], f)
	n.size++
}

// FlightsBetween returns the bucket for (origin, destination) in
// ingestion order. Unknown airports yield an empty result, never an
// error.
func (n *Network) FlightsBetween(origin, destination string) []entity.Flight {
	return n.adjacency[origin][destination]
}

// FlightsFrom returns every bucket departing origin, keyed by
// destination. The returned map must not be mutated.
func (n *Network) FlightsFrom(origin string) map[string][]entity.Flight {
	return n.adjacency[origin]
}

// Departures returns every flight departing origin in ingestion order
// across all destinations. This is the traversal order the search engine
// relies on for stable discovery positions.
func (n *Network) Departures(origin string) []entity.Flight {
	return n.departures[origin]
}

// Len is the number of flights in the network.
func (n *Network) Len() int {
	return n.size
}

// Clone copies the index so a writer can extend it while readers keep
// the published version. Bucket slices are copied, Flight values are
// immutable and shared.
func (n *Network) Clone() *Network {
	clone := &Network{
		adjacency:  make(map[string]map[string][]entity.Flight, len(n.adjacency)),
		departures: make(map[string][]entity.Flight, len(n.departures)),
		size:       n.size,
	}
	for origin, byDest := range n.adjacency {
		buckets := make(map[string][]entity.Flight, len(byDest))
		for destination, flights := range byDest {
			copied := make([]entity.Flight, len(flights))
			copy(copied, flights)
			buckets[destination] = copied
		}
		clone.adjacency[origin] = buckets
	}
	for origin, flights := range n.departures {
		copied := make([]entity.Flight, len(flights))
		copy(copied, flights)
		clone.departures[origin] = copied
	}
	return clone
}
