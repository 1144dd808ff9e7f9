package usecase

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/Juhwan24/Flown/internal/flown/cache"
	"github.com/Juhwan24/Flown/internal/flown/entity"
	"github.com/Juhwan24/Flown/internal/flown/graph"
	"github.com/Juhwan24/Flown/internal/flown/provider"
)

// maxConcurrentFetches caps in-flight provider fetches for one populate
// pass. Bounds memory and keeps fan-out under provider rate limits.
const maxConcurrentFetches = 20

type populateStats struct {
	succeeded int
	failed    int
}

type fetchTask struct {
	from string
	to   string
	date time.Time
}

type fetchResult struct {
	segments []entity.FlightSegment
	err      error
}

// populateGraph fetches every (pair, date) combination the candidate
// routes need and inserts the results as graph edges. All fetches run
// behind the semaphore; results are collected first and inserted only
// after every fetch finished, so no reader can observe a partially
// built edge. A failed fetch yields no edge and is only counted.
func (u *Usecase) populateGraph(ctx context.Context, g *graph.Graph, routes [][]string, dates []time.Time) populateStats {
	pairs := neededPairs(routes)

	tasks := make([]fetchTask, 0, len(pairs)*len(dates))
	for _, pair := range pairs {
		for _, date := range dates {
			tasks = append(tasks, fetchTask{from: pair.From, to: pair.To, date: date})
		}
	}

	sem := semaphore.NewWeighted(maxConcurrentFetches)
	results := make(chan fetchResult, len(tasks))

	var wg sync.WaitGroup
	for _, task := range tasks {
		wg.Add(1)
		go func(task fetchTask) {
			defer wg.Done()
			if err := sem.Acquire(ctx, 1); err != nil {
				results <- fetchResult{err: err}
				return
			}
			defer sem.Release(1)

			segments, err := u.fetchSegments(ctx, task.from, task.to, task.date)
			results <- fetchResult{segments: segments, err: err}
		}(task)
	}
	wg.Wait()
	close(results)

	stats := populateStats{}
	for result := range results {
		if result.err != nil {
			stats.failed++
			slog.WarnContext(ctx, "segment fetch failed", "error", result.err)
			continue
		}
		stats.succeeded++
		g.AddSegments(result.segments)
	}

	slog.InfoContext(ctx, "graph populated",
		"pairs", len(pairs), "dates", len(dates),
		"fetches_succeeded", stats.succeeded, "fetches_failed", stats.failed)
	return stats
}

// neededPairs extracts the distinct adjacent airport pairs the candidate
// routes require, in deterministic order.
func neededPairs(routes [][]string) []graph.EdgeKey {
	seen := make(map[graph.EdgeKey]struct{})
	var pairs []graph.EdgeKey
	for _, route := range routes {
		for i := 0; i < len(route)-1; i++ {
			key := graph.EdgeKey{
				From: strings.ToUpper(route[i]),
				To:   strings.ToUpper(route[i+1]),
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			pairs = append(pairs, key)
		}
	}
	return pairs
}

// fetchSegments resolves one (pair, date) query through the cache and
// the provider picked by route classification. A corrupt cache payload
// is logged and treated as a miss; the live result is written back with
// the TTL of the route class.
func (u *Usecase) fetchSegments(ctx context.Context, from, to string, date time.Time) ([]entity.FlightSegment, error) {
	prov := u.domestic
	ttl := u.ttlDomestic
	if Classify(from, to) == RouteInternational {
		prov = u.international
		ttl = u.ttlInternational
	}

	key := cache.Key(strings.ToLower(prov.Name()), map[string]string{
		"from": from,
		"to":   to,
		"date": entity.FormatAPIDate(date),
	})

	if u.cache != nil {
		if payload, ok := u.cache.Get(ctx, key); ok {
			segments, err := cache.DecodeSegments(payload)
			if err == nil {
				return segments, nil
			}
			slog.WarnContext(ctx, "corrupt cache payload, falling back to live fetch",
				"key", key, "error", err)
		}
	}

	segments, err := prov.Search(ctx, provider.SearchRequest{
		Origin:      from,
		Destination: to,
		Date:        date,
	})
	if err != nil {
		return nil, err
	}

	if u.cache != nil && len(segments) > 0 {
		payload, err := cache.EncodeSegments(segments)
		if err != nil {
			slog.WarnContext(ctx, "failed to encode cache payload", "key", key, "error", err)
		} else {
			u.cache.Set(ctx, key, payload, ttl)
		}
	}
	return segments, nil
}
