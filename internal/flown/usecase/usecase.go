// Package usecase implements the search core: graph population under a
// concurrency cap, route template expansion and price aggregation.
package usecase

import (
	"time"

	"github.com/Juhwan24/Flown/internal/flown/cache"
	"github.com/Juhwan24/Flown/internal/flown/provider"
)

type Dependency struct {
	// International serves Korea ↔ Japan pairs, Domestic serves intra-
	// Japan pairs. Both are process-scoped and closed at shutdown.
	International provider.Provider
	Domestic      provider.Provider

	// Cache may be nil, in which case every fetch is a live call.
	Cache            cache.Store
	TTLInternational time.Duration
	TTLDomestic      time.Duration

	// Default wildcard candidates for entry/exit template slots. The
	// engine narrows them to edges observed in the populated graph.
	EntryAirports []string
	ExitAirports  []string
}

type Usecase struct {
	international    provider.Provider
	domestic         provider.Provider
	cache            cache.Store
	ttlInternational time.Duration
	ttlDomestic      time.Duration
	entryAirports    []string
	exitAirports     []string
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		international:    dep.International,
		domestic:         dep.Domestic,
		cache:            dep.Cache,
		ttlInternational: dep.TTLInternational,
		ttlDomestic:      dep.TTLDomestic,
		entryAirports:    dep.EntryAirports,
		exitAirports:     dep.ExitAirports,
	}
}
