package usecase

import (
	"context"
	"time"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
)

type FlightsInput struct {
	Date        time.Time
	Origin      string
	Destination string
}

type FlightsOutput struct {
	SearchCriteria SearchCriteria
	Flights        []entity.Flight
}

// Flights returns every direct flight between origin and destination
// departing on the given date, in network bucket order. Unknown
// airports or a date with no departures yield an empty list.
func (u *Usecase) Flights(_ context.Context, in FlightsInput) (*FlightsOutput, error) {
	date := in.Date.Format(entity.DateLayout)

	u.mu.RLock()
	bucket := u.network.FlightsBetween(in.Origin, in.Destination)
	flights := make([]entity.Flight, 0, len(bucket))
	for _, f := range bucket {
		if f.DepartsOn(date) {
			flights = append(flights, f)
		}
	}
	u.mu.RUnlock()

	return &FlightsOutput{
		SearchCriteria: SearchCriteria{
			Date:        date,
			Origin:      in.Origin,
			Destination: in.Destination,
		},
		Flights: flights,
	}, nil
}
