package usecase

import "strings"

// RouteClass selects the provider and cache TTL for an airport pair.
type RouteClass int

const (
	RouteDomestic RouteClass = iota
	RouteInternational
)

var koreanAirports = map[string]struct{}{
	"ICN": {}, "GMP": {}, "PUS": {}, "CJU": {},
}

var japaneseAirports = map[string]struct{}{
	"NRT": {}, "HND": {}, "KIX": {}, "CTS": {},
	"FUK": {}, "OKA": {}, "NGO": {}, "ITM": {},
}

// Classify returns the route class for an airport pair. Korea ↔ Japan
// pairs are international; everything else, including pairs with
// airports missing from the tables, is domestic. Routing an unknown
// pair to the international provider would hit the wrong provider and
// TTL, so domestic is the only allowed default.
func Classify(from, to string) RouteClass {
	f := strings.ToUpper(from)
	t := strings.ToUpper(to)

	_, fromKR := koreanAirports[f]
	_, toKR := koreanAirports[t]
	_, fromJP := japaneseAirports[f]
	_, toJP := japaneseAirports[t]

	if (fromKR && toJP) || (fromJP && toKR) {
		return RouteInternational
	}
	return RouteDomestic
}
