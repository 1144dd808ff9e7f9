package inbound

import (
	"context"
	"net/http"

	"github.com/Juhwan24/Flown/internal/flown/entity"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Search(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseSearchInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Search(ctx, input)
	if err != nil {
		return nil, err
	}

	return SearchResponse{
		TotalCost:         output.TotalCost,
		Segments:          mapSegmentResponses(output.Segments),
		RoutePattern:      output.RoutePattern,
		CheaperThanDirect: output.CheaperThanDirect,
		DirectCost:        output.DirectCost,
	}, nil
}

func (h *HTTPEndpoint) Health(context.Context, *http.Request) (any, error) {
	return HealthResponse{Status: "healthy", Service: "Flown API"}, nil
}

func mapSegmentResponses(segments []entity.FlightSegment) []SegmentResponse {
	resp := make([]SegmentResponse, 0, len(segments))
	for _, segment := range segments {
		resp = append(resp, SegmentResponse{
			FromAirport:   segment.FromAirport,
			ToAirport:     segment.ToAirport,
			Price:         segment.Price,
			Provider:      segment.Provider,
			Date:          entity.FormatAPIDate(segment.Date),
			FlightNumber:  segment.FlightNumber,
			DepartureTime: segment.DepartureTime,
			ArrivalTime:   segment.ArrivalTime,
		})
	}
	return resp
}
