package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Juhwan24/Flown/internal/flown/entity"
	"github.com/Juhwan24/Flown/internal/flown/graph"
)

type SearchInput struct {
	Departure   string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	TripNights  *int
}

type SearchOutput struct {
	TotalCost         int
	Segments          []entity.FlightSegment
	RoutePattern      string
	CheaperThanDirect bool
	DirectCost        *int
}

// Search runs the full pipeline: populate a fresh graph for the request,
// expand the template catalog against it, price every expansion over the
// candidate date pairs and return the cheapest itinerary. When no
// template yields an itinerary the direct-only response is returned;
// that is a "no itinerary found" result, not an error.
func (u *Usecase) Search(ctx context.Context, in SearchInput) (*SearchOutput, error) {
	departure := strings.ToUpper(in.Departure)
	destination := strings.ToUpper(in.Destination)

	slog.InfoContext(ctx, "search started", "departure", departure, "destination", destination)

	g := graph.New()
	engine := NewTemplateEngine(u.entryAirports, u.exitAirports)
	catalog := Catalog()

	candidates := allCandidates(engine, catalog, departure, destination)

	dates := dateRange(in.StartDate, in.EndDate)
	if len(dates) > maxFetchDays {
		dates = dates[:maxFetchDays]
	}

	u.populateGraph(ctx, g, candidates, dates)

	// Narrow the wildcard candidates to what the graph actually holds,
	// then re-derive the candidate routes.
	engine.RefreshFromGraph(g)

	tripNights := defaultTripNights
	if in.TripNights != nil && *in.TripNights > 0 {
		tripNights = *in.TripNights
	}
	pairs := departureReturnPairs(in.StartDate, in.EndDate, tripNights)
	if len(pairs) > maxDatePairs {
		pairs = pairs[:maxDatePairs]
	}

	aggregator := NewAggregator(g)
	var itineraries []entity.Itinerary

	for _, template := range catalog {
		expansions := engine.Expand(template, g, departure, destination, nil)
		if len(expansions) == 0 {
			slog.DebugContext(ctx, "template skipped, no valid expansion", "template", template.Name)
			continue
		}

		produced := 0
		for _, route := range expansions {
			for _, pair := range pairs {
				constraints := TripConstraints{
					DepartureDate:        pair.departure,
					ReturnDate:           pair.ret,
					Destination:          destination,
					AllowSameDayTransfer: template.AllowSameDayTransfer,
					StrictDateMatch:      true,
				}

				itinerary, ok := aggregator.BuildItinerary(route, constraints)
				if !ok {
					// Retry without the strict date restriction before
					// giving up on this candidate.
					constraints.StrictDateMatch = false
					itinerary, ok = aggregator.BuildItinerary(route, constraints)
				}
				if !ok {
					continue
				}

				logItinerary(itinerary)
				itineraries = append(itineraries, itinerary)
				produced++
			}
		}

		if produced == 0 {
			slog.DebugContext(ctx, "template skipped, no priceable leg", "template", template.Name)
		} else {
			slog.DebugContext(ctx, "template produced itineraries", "template", template.Name, "count", produced)
		}
	}

	cheapest, ok := CheapestItinerary(itineraries)
	if !ok {
		slog.InfoContext(ctx, "no itinerary found, returning direct-only response")
		return u.directOnlyResponse(ctx, in, departure, destination, tripNights), nil
	}

	directCost := u.directCost(ctx, departure, destination, in.StartDate, tripNights)

	validSegments := make([]entity.FlightSegment, 0, len(cheapest.Segments))
	for _, segment := range cheapest.Segments {
		if segment.Valid() {
			validSegments = append(validSegments, segment)
		}
	}
	if len(validSegments) == 0 {
		return u.directOnlyResponse(ctx, in, departure, destination, tripNights), nil
	}

	slog.InfoContext(ctx, "search finished",
		"route", cheapest.RoutePattern(),
		"total_cost", cheapest.TotalCost,
		"itineraries", len(itineraries))

	return &SearchOutput{
		TotalCost:         cheapest.TotalCost,
		Segments:          validSegments,
		RoutePattern:      cheapest.RoutePattern(),
		CheaperThanDirect: CheaperThanDirect(cheapest, directCost),
		DirectCost:        directCost,
	}, nil
}

// directCost prices a direct round trip through the international fetch
// path for baseline comparison. Nil when either direction is missing.
func (u *Usecase) directCost(ctx context.Context, departure, destination string, startDate time.Time, tripNights int) *int {
	outbound, err := u.fetchSegments(ctx, departure, destination, startDate)
	if err != nil || len(outbound) == 0 {
		return nil
	}
	inbound, err := u.fetchSegments(ctx, destination, departure, returnDateFor(startDate, tripNights))
	if err != nil || len(inbound) == 0 {
		return nil
	}

	cost := cheapestPrice(outbound) + cheapestPrice(inbound)
	return &cost
}

func cheapestPrice(segments []entity.FlightSegment) int {
	best := segments[0].Price
	for _, segment := range segments[1:] {
		if segment.Price < best {
			best = segment.Price
		}
	}
	return best
}

func (u *Usecase) directOnlyResponse(ctx context.Context, in SearchInput, departure, destination string, tripNights int) *SearchOutput {
	directCost := u.directCost(ctx, departure, destination, in.StartDate, tripNights)

	total := 0
	if directCost != nil {
		total = *directCost
	}
	return &SearchOutput{
		TotalCost:         total,
		Segments:          []entity.FlightSegment{},
		RoutePattern:      entity.DirectRoutePattern(departure, destination),
		CheaperThanDirect: false,
		DirectCost:        directCost,
	}
}

// allCandidates enumerates the structural candidate routes of every
// template, used to decide which pairs the populate pass must fetch.
func allCandidates(engine *TemplateEngine, catalog []Template, departure, destination string) [][]string {
	var routes [][]string
	for _, template := range catalog {
		routes = append(routes, engine.Candidates(template, departure, destination)...)
	}
	return routes
}
