package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Juhwan24/Flown/internal/flown/entity"
	"github.com/Juhwan24/Flown/internal/flown/provider"
)

func date(value string) time.Time {
	parsed, err := entity.ParseAPIDate(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func intPtr(value int) *int {
	return &value
}

// fakeProvider serves segments from a price table keyed "FROM-TO" and
// records calls and peak concurrency.
type fakeProvider struct {
	name   string
	prices map[string]int
	err    error
	delay  time.Duration

	mu          sync.Mutex
	calls       []provider.SearchRequest
	inflight    int32
	maxInflight int32
}

func newFakeProvider(name string, prices map[string]int) *fakeProvider {
	return &fakeProvider{name: name, prices: prices}
}

func (f *fakeProvider) Name() string {
	return f.name
}

func (f *fakeProvider) Search(ctx context.Context, req provider.SearchRequest) ([]entity.FlightSegment, error) {
	current := atomic.AddInt32(&f.inflight, 1)
	for {
		peak := atomic.LoadInt32(&f.maxInflight)
		if current <= peak || atomic.CompareAndSwapInt32(&f.maxInflight, peak, current) {
			break
		}
	}
	defer atomic.AddInt32(&f.inflight, -1)

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	price, ok := f.prices[req.Origin+"-"+req.Destination]
	if !ok {
		return nil, nil
	}
	return []entity.FlightSegment{{
		FromAirport: req.Origin,
		ToAirport:   req.Destination,
		Price:       price,
		Provider:    f.name,
		Date:        req.Date,
	}}, nil
}

func (f *fakeProvider) Close() error {
	return nil
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeStore is an in-memory cache that records the TTL of every write.
type fakeStore struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data: map[string][]byte{},
		ttls: map[string]time.Duration{},
	}
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payload, ok := f.data[key]
	return payload, ok
}

func (f *fakeStore) Set(_ context.Context, key string, payload []byte, ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = payload
	f.ttls[key] = ttl
}

func (f *fakeStore) Close() error {
	return nil
}
