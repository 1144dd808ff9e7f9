// Package flown wires the cheapest-combination flight search module:
// providers, cache, the search usecase and its HTTP endpoints.
package flown

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Juhwan24/Flown/internal/flown/cache"
	"github.com/Juhwan24/Flown/internal/flown/inbound"
	"github.com/Juhwan24/Flown/internal/flown/provider"
	"github.com/Juhwan24/Flown/internal/flown/usecase"
	"github.com/Juhwan24/Flown/internal/pkg/pkgconfig"
	"github.com/Juhwan24/Flown/internal/pkg/pkgrouter"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
	// RegisterCloser adds a shutdown hook for process-scoped resources
	// (provider connection pools, the cache client).
	RegisterCloser func(name string, fn func(context.Context) error)
}

func New(dep Dependency) error {
	international := provider.Provider(provider.NewAmadeusProvider(provider.AmadeusConfig{
		APIKey:    dep.Config.GetString("modules.flown.amadeus.api_key"),
		APISecret: dep.Config.GetString("modules.flown.amadeus.api_secret"),
		BaseURL:   dep.Config.GetString("modules.flown.amadeus.base_url"),
	}))
	domestic := provider.Provider(provider.NewAirLabsProvider(provider.AirLabsConfig{
		APIKey:  dep.Config.GetString("modules.flown.airlabs.api_key"),
		BaseURL: dep.Config.GetString("modules.flown.airlabs.base_url"),
	}))

	if rateLimitMs := dep.Config.GetInt("modules.flown.provider.rate_limit_ms"); rateLimitMs > 0 {
		interval := time.Duration(rateLimitMs) * time.Millisecond
		international = provider.NewRateLimitedProvider(international, interval)
		domestic = provider.NewRateLimitedProvider(domestic, interval)
	}

	cacheStore := newCacheStore(dep.Config)

	ttlInternational := 3 * time.Hour
	if seconds := dep.Config.GetInt("modules.flown.cache.ttl_international_seconds"); seconds > 0 {
		ttlInternational = time.Duration(seconds) * time.Second
	}
	// Domestic fares change less often, so they live longer.
	ttlDomestic := 6 * time.Hour
	if seconds := dep.Config.GetInt("modules.flown.cache.ttl_domestic_seconds"); seconds > 0 {
		ttlDomestic = time.Duration(seconds) * time.Second
	}

	uc := usecase.New(usecase.Dependency{
		International:    international,
		Domestic:         domestic,
		Cache:            cacheStore,
		TTLInternational: ttlInternational,
		TTLDomestic:      ttlDomestic,
		EntryAirports:    airportList(dep.Config.GetString("modules.flown.entry_airports"), []string{"NRT", "KIX", "FUK"}),
		ExitAirports:     airportList(dep.Config.GetString("modules.flown.exit_airports"), []string{"NRT", "KIX", "FUK"}),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	dep.RegisterCloser("Amadeus Provider", func(context.Context) error {
		return international.Close()
	})
	dep.RegisterCloser("AirLabs Provider", func(context.Context) error {
		return domestic.Close()
	})
	if cacheStore != nil {
		dep.RegisterCloser("Cache", func(context.Context) error {
			return cacheStore.Close()
		})
	}

	return nil
}

// newCacheStore builds the configured cache backend. An unreachable
// Redis disables caching instead of failing startup; every fetch then
// goes live.
func newCacheStore(cfg pkgconfig.Config) cache.Store {
	switch cfg.GetString("modules.flown.cache.backend") {
	case "memory":
		return cache.NewMemory()
	case "redis":
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		store, err := cache.NewRedis(ctx, cache.RedisOptions{
			Addr:     cfg.GetString("modules.flown.cache.redis.addr"),
			Password: cfg.GetString("modules.flown.cache.redis.password"),
			DB:       cfg.GetInt("modules.flown.cache.redis.db"),
		})
		if err != nil {
			slog.Warn("redis unavailable, caching disabled", "error", err)
			return nil
		}
		return store
	default:
		return nil
	}
}

func airportList(value string, fallback []string) []string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	airports := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			airports = append(airports, trimmed)
		}
	}
	if len(airports) == 0 {
		return fallback
	}
	return airports
}
