// Package graph holds the in-memory route graph built for a single
// search request: airports as nodes, priced flight segments as edges.
package graph

import (
	"sort"
	"strings"
	"time"

	"github.com/Juhwan24/Flown/internal/flown/entity"
)

// EdgeKey identifies a directed edge between two airports.
type EdgeKey struct {
	From string
	To   string
}

// Graph is a directed multigraph keyed by origin and destination
// airport codes. It is built once per search request and is not safe
// for concurrent mutation; the populator inserts all segments before
// any reader touches the graph.
type Graph struct {
	edges map[string]map[string][]entity.FlightSegment
}

func New() *Graph {
	return &Graph{edges: make(map[string]map[string][]entity.FlightSegment)}
}

// AddSegment inserts a segment as an edge. Segments without both
// endpoints are ignored.
func (g *Graph) AddSegment(segment entity.FlightSegment) {
	from := strings.ToUpper(segment.FromAirport)
	to := strings.ToUpper(segment.ToAirport)
	if from == "" || to == "" {
		return
	}

	destinations, ok := g.edges[from]
	if !ok {
		destinations = make(map[string][]entity.FlightSegment)
		g.edges[from] = destinations
	}
	destinations[to] = append(destinations[to], segment)
}

func (g *Graph) AddSegments(segments []entity.FlightSegment) {
	for _, segment := range segments {
		g.AddSegment(segment)
	}
}

func (g *Graph) Clear() {
	g.edges = make(map[string]map[string][]entity.FlightSegment)
}

// HasEdge reports whether at least one segment connects the two airports.
func (g *Graph) HasEdge(from, to string) bool {
	destinations, ok := g.edges[strings.ToUpper(from)]
	if !ok {
		return false
	}
	return len(destinations[strings.ToUpper(to)]) > 0
}

// Segments returns the segments between two airports. When dateFilter is
// non-nil only segments departing on that calendar date are returned.
func (g *Graph) Segments(from, to string, dateFilter *time.Time) []entity.FlightSegment {
	destinations, ok := g.edges[strings.ToUpper(from)]
	if !ok {
		return nil
	}
	segments := destinations[strings.ToUpper(to)]
	if dateFilter == nil {
		return segments
	}

	filtered := make([]entity.FlightSegment, 0, len(segments))
	for _, segment := range segments {
		if entity.SameDate(segment.Date, *dateFilter) {
			filtered = append(filtered, segment)
		}
	}
	return filtered
}

// CheapestSegment returns the minimum-price segment between two
// airports, optionally restricted to a calendar date. Price ties are
// broken by earlier reported departure time, then by provider name, so
// selection is deterministic regardless of insertion order.
func (g *Graph) CheapestSegment(from, to string, dateFilter *time.Time) (entity.FlightSegment, bool) {
	segments := g.Segments(from, to, dateFilter)
	if len(segments) == 0 {
		return entity.FlightSegment{}, false
	}

	best := segments[0]
	for _, candidate := range segments[1:] {
		if lessSegment(candidate, best) {
			best = candidate
		}
	}
	return best, true
}

func lessSegment(a, b entity.FlightSegment) bool {
	if a.Price != b.Price {
		return a.Price < b.Price
	}
	if a.DepartureTime != b.DepartureTime {
		// A missing departure time loses the tie.
		if a.DepartureTime == "" {
			return false
		}
		if b.DepartureTime == "" {
			return true
		}
		return a.DepartureTime < b.DepartureTime
	}
	return a.Provider < b.Provider
}

// Edges returns every (from, to) pair that has at least one segment,
// sorted for deterministic iteration.
func (g *Graph) Edges() []EdgeKey {
	keys := make([]EdgeKey, 0, len(g.edges))
	for from, destinations := range g.edges {
		for to, segments := range destinations {
			if len(segments) > 0 {
				keys = append(keys, EdgeKey{From: from, To: to})
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].To < keys[j].To
	})
	return keys
}

// Destinations returns the airports reachable from the given airport,
// sorted for deterministic iteration.
func (g *Graph) Destinations(from string) []string {
	destinations, ok := g.edges[strings.ToUpper(from)]
	if !ok {
		return nil
	}
	result := make([]string, 0, len(destinations))
	for to, segments := range destinations {
		if len(segments) > 0 {
			result = append(result, to)
		}
	}
	sort.Strings(result)
	return result
}
