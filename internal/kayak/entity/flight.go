package entity

import (
	"errors"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

var ErrArrivalBeforeDeparture = errors.New("flight arrival is before its departure")

// Flight is one scheduled leg. Values are built once at ingestion and
// never mutated afterwards.
type Flight struct {
	Number      string
	Airline     string
	Origin      string
	Destination string
	Departure   time.Time
	Arrival     time.Time
	Price       Money
}

// NewFlight builds a Flight, refusing records that would model a
// negative-duration flight.
func NewFlight(number, airline, origin, destination string, departure, arrival time.Time, price Money) (Flight, error) {
	if arrival.Before(departure) {
		return Flight{}, ErrArrivalBeforeDeparture
	}
	return Flight{
		Number:      number,
		Airline:     airline,
		Origin:      origin,
		Destination: destination,
		Departure:   departure,
		Arrival:     arrival,
		Price:       price,
	}, nil
}

func (f Flight) Duration() time.Duration {
	return f.Arrival.Sub(f.Departure)
}

// DepartsOn reports whether the flight departs on the given calendar
// date, formatted as DateLayout.
func (f Flight) DepartsOn(date string) bool {
	return f.Departure.Format(DateLayout) == date
}
