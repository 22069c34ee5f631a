package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kbop543/BrokenKayak/internal/kayak/entity"
)

const (
	flightFields = 7
	clientFields = 6
)

// Reads are all-or-nothing: a single malformed line rejects the whole
// batch, so a partially admitted file can never exist.

// ReadFlights parses flight records, one per line, fields in order
// Number,DepartureDateTime,ArrivalDateTime,Airline,Origin,Destination,Price.
// Datetimes use "2006-01-02 15:04"; prices carry exactly two decimals.
func ReadFlights(r io.Reader) ([]entity.Flight, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = flightFields

	flights := make([]entity.Flight, 0)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return flights, nil
		}
		if err != nil {
			return nil, fmt.Errorf("flights line %d: %w", line, err)
		}

		departure, err := time.ParseInLocation(entity.DateTimeLayout, record[1], time.Local)
		if err != nil {
			return nil, fmt.Errorf("flights line %d: departure: %w", line, err)
		}
		arrival, err := time.ParseInLocation(entity.DateTimeLayout, record[2], time.Local)
		if err != nil {
			return nil, fmt.Errorf("flights line %d: arrival: %w", line, err)
		}
		price, err := entity.ParseMoney(record[6])
		if err != nil {
			return nil, fmt.Errorf("flights line %d: price: %w", line, err)
		}

		flight, err := entity.NewFlight(record[0], record[3], record[4], record[5], departure, arrival, price)
		if err != nil {
			return nil, fmt.Errorf("flights line %d: %w", line, err)
		}
		flights = append(flights, flight)
	}
}

// ReadClients parses client records, one per line, fields in order
// LastName,FirstNames,Email,Address,CreditCardNumber,ExpiryDate
// (ExpiryDate as "2006-01-02").
func ReadClients(r io.Reader) ([]entity.Client, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = clientFields

	clients := make([]entity.Client, 0)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return clients, nil
		}
		if err != nil {
			return nil, fmt.Errorf("clients line %d: %w", line, err)
		}

		expiry, err := time.ParseInLocation(entity.DateLayout, record[5], time.Local)
		if err != nil {
			return nil, fmt.Errorf("clients line %d: expiry date: %w", line, err)
		}

		clients = append(clients, entity.Client{
			LastName:         record[0],
			FirstNames:       record[1],
			Email:            record[2],
			Address:          record[3],
			CreditCardNumber: record[4],
			ExpiryDate:       expiry,
		})
	}
}
