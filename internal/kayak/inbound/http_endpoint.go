package inbound

import (
	"context"
	"net/http"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Client(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseClientInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Client(ctx, input)
	if err != nil {
		return nil, err
	}

	return mapClientResponse(output.Client), nil
}

func (h *HTTPEndpoint) Flights(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseFlightsInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Flights(ctx, input)
	if err != nil {
		return nil, err
	}

	return FlightsResponse{
		SearchCriteria: mapSearchCriteria(output.SearchCriteria),
		Flights:        mapFlightResponses(output.Flights),
	}, nil
}

func (h *HTTPEndpoint) Itineraries(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseItinerariesInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Itineraries(ctx, input)
	if err != nil {
		return nil, err
	}

	return ItinerariesResponse{
		SearchCriteria: mapSearchCriteria(output.SearchCriteria),
		Metadata: MetadataResponse{
			TotalResults: len(output.Itineraries),
			SearchTimeMs: output.SearchTimeMs,
			CacheHit:     output.CacheHit,
		},
		Itineraries: mapItineraryResponses(output.Itineraries),
	}, nil
}

func (h *HTTPEndpoint) UploadClients(ctx context.Context, r *http.Request) (any, error) {
	output, err := h.uc.UploadClients(ctx, r.Body)
	if err != nil {
		return nil, err
	}
	return UploadResponse{Records: output.Records}, nil
}

func (h *HTTPEndpoint) UploadFlights(ctx context.Context, r *http.Request) (any, error) {
	output, err := h.uc.UploadFlights(ctx, r.Body)
	if err != nil {
		return nil, err
	}
	return UploadResponse{Records: output.Records}, nil
}
