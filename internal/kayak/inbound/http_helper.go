package inbound

import (
	"net/http"
	"strings"
	"time"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
	"github.com/kbop543/BrokenKayak/internal/kayak/usecase"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgerror"
)

func parseClientInput(r *http.Request) (usecase.ClientInput, error) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		return usecase.ClientInput{}, pkgerror.NewBusiness("email is required", pkgerror.CodeInvalidInput)
	}
	return usecase.ClientInput{Email: email}, nil
}

func parseFlightsInput(r *http.Request) (usecase.FlightsInput, error) {
	date, origin, destination, err := parseSearchQuery(r)
	if err != nil {
		return usecase.FlightsInput{}, err
	}
	return usecase.FlightsInput{Date: date, Origin: origin, Destination: destination}, nil
}

func parseItinerariesInput(r *http.Request) (usecase.ItinerariesInput, error) {
	date, origin, destination, err := parseSearchQuery(r)
	if err != nil {
		return usecase.ItinerariesInput{}, err
	}

	sortBy := entity.SortByNone
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get("sort"))) {
	case "":
	case "cost":
		sortBy = entity.SortByCost
	case "time":
		sortBy = entity.SortByTime
	default:
		return usecase.ItinerariesInput{}, pkgerror.NewBusiness("sort must be cost or time", pkgerror.CodeInvalidInput)
	}

	return usecase.ItinerariesInput{
		Date:        date,
		Origin:      origin,
		Destination: destination,
		SortBy:      sortBy,
	}, nil
}

func parseSearchQuery(r *http.Request) (time.Time, string, string, error) {
	q := r.URL.Query()

	origin := strings.TrimSpace(q.Get("origin"))
	destination := strings.TrimSpace(q.Get("destination"))
	if origin == "" || destination == "" {
		return time.Time{}, "", "", pkgerror.NewBusiness("origin and destination are required", pkgerror.CodeInvalidInput)
	}

	dateStr := strings.TrimSpace(q.Get("date"))
	if dateStr == "" {
		return time.Time{}, "", "", pkgerror.NewBusiness("date is required", pkgerror.CodeInvalidInput)
	}
	date, err := time.ParseInLocation(entity.DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, "", "", pkgerror.NewBusiness("invalid date", pkgerror.CodeInvalidInput)
	}

	return date, origin, destination, nil
}

func mapSearchCriteria(criteria usecase.SearchCriteria) SearchCriteriaResponse {
	return SearchCriteriaResponse{
		Date:        criteria.Date,
		Origin:      criteria.Origin,
		Destination: criteria.Destination,
	}
}

func mapClientResponse(c entity.Client) ClientResponse {
	expiry := c.ExpiryDate.Format(entity.DateLayout)
	return ClientResponse{
		LastName:         c.LastName,
		FirstNames:       c.FirstNames,
		Email:            c.Email,
		Address:          c.Address,
		CreditCardNumber: c.CreditCardNumber,
		ExpiryDate:       expiry,
		Formatted: strings.Join([]string{
			c.LastName, c.FirstNames, c.Email, c.Address, c.CreditCardNumber, expiry,
		}, ","),
	}
}

func mapFlightResponses(flights []entity.Flight) []FlightResponse {
	resp := make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		resp = append(resp, FlightResponse{
			Number:      f.Number,
			Departure:   f.Departure.Format(entity.DateTimeLayout),
			Arrival:     f.Arrival.Format(entity.DateTimeLayout),
			Airline:     f.Airline,
			Origin:      f.Origin,
			Destination: f.Destination,
			Price:       f.Price.String(),
			Formatted:   formatFlightLine(f) + "," + f.Price.String(),
		})
	}
	return resp
}

func mapItineraryResponses(itineraries []entity.Itinerary) []ItineraryResponse {
	resp := make([]ItineraryResponse, 0, len(itineraries))
	for _, it := range itineraries {
		legs := make([]LegResponse, 0, len(it.Legs))
		lines := make([]string, 0, len(it.Legs)+2)
		for _, leg := range it.Legs {
			line := formatFlightLine(leg)
			legs = append(legs, LegResponse{
				Number:      leg.Number,
				Departure:   leg.Departure.Format(entity.DateTimeLayout),
				Arrival:     leg.Arrival.Format(entity.DateTimeLayout),
				Airline:     leg.Airline,
				Origin:      leg.Origin,
				Destination: leg.Destination,
				Formatted:   line,
			})
			lines = append(lines, line)
		}

		totalPrice := it.TotalPrice().String()
		totalDuration := entity.FormatDuration(it.TotalDuration())
		lines = append(lines, totalPrice, totalDuration)

		resp = append(resp, ItineraryResponse{
			Position:      it.Position,
			Legs:          legs,
			TotalPrice:    totalPrice,
			TotalDuration: totalDuration,
			Formatted:     strings.Join(lines, "\n"),
		})
	}
	return resp
}

// formatFlightLine renders the leg line of the boundary format, without
// the price column.
func formatFlightLine(f entity.Flight) string {
	return strings.Join([]string{
		f.Number,
		f.Departure.Format(entity.DateTimeLayout),
		f.Arrival.Format(entity.DateTimeLayout),
		f.Airline,
		f.Origin,
		f.Destination,
	}, ",")
}
