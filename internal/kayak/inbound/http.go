package inbound

import (
	"context"
	"io"

	"github.com/kbop543/BrokenKayak/internal/kayak/usecase"
	"github.com/kbop543/BrokenKayak/internal/pkg/pkgrouter"
)

type uc interface {
	Client(ctx context.Context, in usecase.ClientInput) (*usecase.ClientOutput, error)
	Flights(ctx context.Context, in usecase.FlightsInput) (*usecase.FlightsOutput, error)
	Itineraries(ctx context.Context, in usecase.ItinerariesInput) (*usecase.ItinerariesOutput, error)
	UploadClients(ctx context.Context, r io.Reader) (*usecase.UploadOutput, error)
	UploadFlights(ctx context.Context, r io.Reader) (*usecase.UploadOutput, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/clients", end.Client)
	r.GET("/flights", end.Flights)
	r.GET("/itineraries", end.Itineraries)
	r.POST("/uploads/clients", end.UploadClients)
	r.POST("/uploads/flights", end.UploadFlights)
}
