package entity

import (
	"strings"
	"time"
)

// APIDateLayout is the canonical date format used for provider requests
// and for dates stored in cache payloads. Cache entries never carry
// native time encodings so the payload format stays stable.
const APIDateLayout = "2006-01-02"

// FlightSegment is one priced point-to-point leg reported by a provider.
// Segments stored in the route graph are shared between itineraries and
// must never be mutated in place; use Clone before stamping a date.
type FlightSegment struct {
	FromAirport   string
	ToAirport     string
	Price         int
	Provider      string
	Date          time.Time
	FlightNumber  string
	DepartureTime string
	ArrivalTime   string
}

// Clone returns an independent copy of the segment.
func (s FlightSegment) Clone() FlightSegment {
	return s
}

// Valid reports whether the segment carries the fields every consumer
// depends on.
func (s FlightSegment) Valid() bool {
	return s.FromAirport != "" && s.ToAirport != "" && !s.Date.IsZero()
}

// FormatAPIDate renders a date in the canonical provider/cache format.
func FormatAPIDate(t time.Time) string {
	return t.Format(APIDateLayout)
}

// ParseAPIDate parses a date in the canonical provider/cache format.
func ParseAPIDate(value string) (time.Time, error) {
	return time.Parse(APIDateLayout, value)
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Itinerary is a fully priced, dated sequence of segment copies
// representing one complete trip candidate. Immutable once built.
type Itinerary struct {
	Segments  []FlightSegment
	TotalCost int
}

// RoutePattern renders the itinerary as "ICN → KIX → CTS → FUK → ICN".
func (it Itinerary) RoutePattern() string {
	if len(it.Segments) == 0 {
		return ""
	}
	airports := make([]string, 0, len(it.Segments)+1)
	for _, seg := range it.Segments {
		airports = append(airports, seg.FromAirport)
	}
	airports = append(airports, it.Segments[len(it.Segments)-1].ToAirport)
	return strings.Join(airports, " → ")
}

// DirectRoutePattern renders the round-trip pattern used when only a
// direct flight is available for comparison.
func DirectRoutePattern(departure, destination string) string {
	return departure + " → " + destination + " → " + departure
}
