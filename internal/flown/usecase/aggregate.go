package usecase

import (
	"log/slog"
	"strings"
	"time"

	"github.com/Juhwan24/Flown/internal/flown/entity"
	"github.com/Juhwan24/Flown/internal/flown/graph"
)

// TripConstraints drive per-leg date computation when assembling an
// itinerary from an expanded route.
type TripConstraints struct {
	DepartureDate time.Time
	ReturnDate    time.Time
	// Destination is the true trip destination; reaching it jumps the
	// date cursor to the return date. Never inferred from the route.
	Destination string
	// AllowSameDayTransfer lets consecutive hub legs share a calendar
	// date instead of advancing a day between them.
	AllowSameDayTransfer bool
	// StrictDateMatch restricts leg pricing to segments on the computed
	// date. When false, a leg with no segment on that date falls back
	// to the cheapest segment on any date.
	StrictDateMatch bool
}

// Aggregator assembles priced itineraries from expanded routes over a
// populated graph.
type Aggregator struct {
	graph *graph.Graph
}

func NewAggregator(g *graph.Graph) *Aggregator {
	return &Aggregator{graph: g}
}

// BuildItinerary walks the route leg by leg, picks the cheapest segment
// for each leg and assembles the dated itinerary. Returns false when
// any leg cannot be priced; that is a normal dead end, not an error.
//
// Graph segments are shared between itineraries, so the chosen segment
// is always cloned before its date is stamped. The graph copy is never
// mutated.
func (a *Aggregator) BuildItinerary(route []string, constraints TripConstraints) (entity.Itinerary, bool) {
	if len(route) < 3 {
		return entity.Itinerary{}, false
	}

	finalDestination := strings.ToUpper(constraints.Destination)
	currentDate := constraints.DepartureDate

	segments := make([]entity.FlightSegment, 0, len(route)-1)
	for i := 0; i < len(route)-1; i++ {
		from := strings.ToUpper(route[i])
		to := strings.ToUpper(route[i+1])

		legDate := currentDate
		segment, ok := a.graph.CheapestSegment(from, to, &legDate)
		if !ok && !constraints.StrictDateMatch {
			segment, ok = a.graph.CheapestSegment(from, to, nil)
		}
		if !ok {
			return entity.Itinerary{}, false
		}

		stamped := segment.Clone()
		stamped.Date = currentDate
		segments = append(segments, stamped)

		if to == finalDestination {
			currentDate = constraints.ReturnDate
		} else if !constraints.AllowSameDayTransfer {
			currentDate = currentDate.AddDate(0, 0, 1)
		}
	}

	itinerary := entity.Itinerary{
		Segments:  segments,
		TotalCost: totalCost(segments),
	}
	return itinerary, true
}

func totalCost(segments []entity.FlightSegment) int {
	total := 0
	for _, segment := range segments {
		total += segment.Price
	}
	return total
}

// CheapestItinerary picks the minimum-cost itinerary. Ties keep the
// earlier entry so template iteration order stays the tie-break.
func CheapestItinerary(itineraries []entity.Itinerary) (entity.Itinerary, bool) {
	if len(itineraries) == 0 {
		return entity.Itinerary{}, false
	}
	best := itineraries[0]
	for _, candidate := range itineraries[1:] {
		if candidate.TotalCost < best.TotalCost {
			best = candidate
		}
	}
	return best, true
}

// CheaperThanDirect reports whether the itinerary beats the direct
// round-trip baseline. With no baseline available the combination is
// the only option and counts as cheaper.
func CheaperThanDirect(itinerary entity.Itinerary, directCost *int) bool {
	if directCost == nil {
		return true
	}
	return itinerary.TotalCost < *directCost
}

func logItinerary(itinerary entity.Itinerary) {
	slog.Debug("itinerary assembled",
		"route", itinerary.RoutePattern(),
		"total_cost", itinerary.TotalCost,
		"segments", len(itinerary.Segments))
}
