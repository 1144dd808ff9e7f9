package usecase

import (
	"strings"

	"github.com/Juhwan24/Flown/internal/flown/graph"
)

// SlotKind describes one position in a route template. Departure and
// destination slots are anchored to the search request; entry and exit
// slots are wildcards enumerated over the engine's candidate sets.
type SlotKind int

const (
	SlotDeparture SlotKind = iota
	SlotDestination
	SlotEntry
	SlotExit
)

// Template is an abstract route skeleton. Expanding the catalog instead
// of walking the whole graph keeps the candidate space bounded.
type Template struct {
	Name                 string
	Slots                []SlotKind
	AllowSameDayTransfer bool
}

// maxMiddleAirports bounds the airports between departure and the final
// return leg; the largest catalog entry uses four.
const maxMiddleAirports = 4

// Catalog returns the route skeletons considered for every search:
//
//	direct:      DEP → DEST → DEP
//	one-entry:   DEP → ENTRY → DEST → DEP
//	entry-exit:  DEP → ENTRY → DEST → EXIT → DEP
//	two-entries: DEP → ENTRY → ENTRY → DEST → EXIT → DEP
func Catalog() []Template {
	return []Template{
		{Name: "direct", Slots: []SlotKind{SlotDeparture, SlotDestination, SlotDeparture}},
		{Name: "one-entry", Slots: []SlotKind{SlotDeparture, SlotEntry, SlotDestination, SlotDeparture}},
		{Name: "entry-exit", Slots: []SlotKind{SlotDeparture, SlotEntry, SlotDestination, SlotExit, SlotDeparture}},
		{Name: "two-entries", Slots: []SlotKind{SlotDeparture, SlotEntry, SlotEntry, SlotDestination, SlotExit, SlotDeparture}},
	}
}

// TemplateEngine expands templates into concrete airport sequences.
// One engine is built per search so refreshing candidates from the
// populated graph never leaks between requests.
type TemplateEngine struct {
	entryAirports []string
	exitAirports  []string
}

func NewTemplateEngine(entryAirports, exitAirports []string) *TemplateEngine {
	return &TemplateEngine{
		entryAirports: upperAll(entryAirports),
		exitAirports:  upperAll(exitAirports),
	}
}

func (e *TemplateEngine) EntryAirports() []string {
	return append([]string(nil), e.entryAirports...)
}

func (e *TemplateEngine) ExitAirports() []string {
	return append([]string(nil), e.exitAirports...)
}

// Candidates enumerates every concrete airport sequence a template can
// produce for the given origin and destination, without consulting the
// graph. Output order is deterministic: slot order then candidate-set
// order.
func (e *TemplateEngine) Candidates(t Template, origin, destination string) [][]string {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	var routes [][]string
	prefix := make([]string, 0, len(t.Slots))
	e.enumerate(t.Slots, origin, destination, prefix, &routes)

	valid := routes[:0]
	for _, route := range routes {
		if validRoute(route, destination) {
			valid = append(valid, route)
		}
	}
	return valid
}

func (e *TemplateEngine) enumerate(slots []SlotKind, origin, destination string, prefix []string, out *[][]string) {
	if len(slots) == 0 {
		route := make([]string, len(prefix))
		copy(route, prefix)
		*out = append(*out, route)
		return
	}

	switch slots[0] {
	case SlotDeparture:
		e.enumerate(slots[1:], origin, destination, append(prefix, origin), out)
	case SlotDestination:
		e.enumerate(slots[1:], origin, destination, append(prefix, destination), out)
	case SlotEntry:
		for _, airport := range e.entryAirports {
			e.enumerate(slots[1:], origin, destination, append(prefix, airport), out)
		}
	case SlotExit:
		for _, airport := range e.exitAirports {
			e.enumerate(slots[1:], origin, destination, append(prefix, airport), out)
		}
	}
}

// validRoute checks the structural rules every candidate must satisfy:
// a round trip, no repeated middle airport, a bounded middle length and
// the destination actually visited.
func validRoute(route []string, destination string) bool {
	if len(route) < 3 {
		return false
	}
	if route[0] != route[len(route)-1] {
		return false
	}

	middle := route[1 : len(route)-1]
	if len(middle) > maxMiddleAirports {
		return false
	}

	seen := make(map[string]struct{}, len(middle))
	hasDestination := false
	for _, airport := range middle {
		if _, dup := seen[airport]; dup {
			return false
		}
		seen[airport] = struct{}{}
		if airport == destination {
			hasDestination = true
		}
	}
	return hasDestination
}

// Expand returns the candidates of a template that are fully realizable
// in the graph: every adjacent pair must have at least one edge or the
// whole candidate is discarded. availableSegments, when non-nil,
// overrides the graph lookup so callers can restrict enumeration to a
// known-good subset. An empty result is a normal outcome.
func (e *TemplateEngine) Expand(t Template, g *graph.Graph, origin, destination string, availableSegments map[graph.EdgeKey]bool) [][]string {
	var expanded [][]string
	for _, route := range e.Candidates(t, origin, destination) {
		if routeRealizable(route, g, availableSegments) {
			expanded = append(expanded, route)
		}
	}
	return expanded
}

func routeRealizable(route []string, g *graph.Graph, availableSegments map[graph.EdgeKey]bool) bool {
	for i := 0; i < len(route)-1; i++ {
		key := graph.EdgeKey{From: route[i], To: route[i+1]}
		if availableSegments != nil {
			if !availableSegments[key] {
				return false
			}
			continue
		}
		if !g.HasEdge(key.From, key.To) {
			return false
		}
	}
	return true
}

// RefreshFromGraph narrows the entry and exit candidate sets to the
// airports that actually appear on observed international edges. Called
// after the populate pass; keeps expansion proportional to the real
// graph. Candidate sets are left untouched when the graph shows none.
func (e *TemplateEngine) RefreshFromGraph(g *graph.Graph) {
	entries := make(map[string]struct{})
	exits := make(map[string]struct{})

	for _, edge := range g.Edges() {
		_, fromKR := koreanAirports[edge.From]
		_, toJP := japaneseAirports[edge.To]
		if fromKR && toJP {
			entries[edge.To] = struct{}{}
		}
		_, fromJP := japaneseAirports[edge.From]
		_, toKR := koreanAirports[edge.To]
		if fromJP && toKR {
			exits[edge.From] = struct{}{}
		}
	}

	if len(entries) > 0 {
		e.entryAirports = sortedKeys(entries)
	}
	if len(exits) > 0 {
		e.exitAirports = sortedKeys(exits)
	}
}

func upperAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if value == "" {
			continue
		}
		result = append(result, strings.ToUpper(value))
	}
	return result
}
