package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schedulesPayload = `{
	"response": [
		{"flight_iata": "MM101", "dep_time": "2025-01-02 08:15", "arr_time": "2025-01-02 10:05"},
		{"flight_iata": "MM103", "dep_time": "2025-01-02 13:30", "arr_time": "2025-01-02 15:20"}
	]
}`

func TestAirLabsSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/schedules", r.URL.Path)
		require.Equal(t, "KIX", r.URL.Query().Get("dep_iata"))
		require.Equal(t, "CTS", r.URL.Query().Get("arr_iata"))
		require.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		w.Write([]byte(schedulesPayload))
	}))
	defer server.Close()

	p := NewAirLabsProvider(AirLabsConfig{APIKey: "test-key", BaseURL: server.URL})
	defer p.Close()

	req := SearchRequest{
		Origin:      "kix",
		Destination: "cts",
		Date:        time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	segments, err := p.Search(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "KIX", segments[0].FromAirport)
	assert.Equal(t, "CTS", segments[0].ToAirport)
	assert.Equal(t, 12000, segments[0].Price, "KIX→CTS uses the route fare table")
	assert.Equal(t, "AirLabs", segments[0].Provider)
	assert.Equal(t, "MM101", segments[0].FlightNumber)
	assert.Equal(t, "08:15", segments[0].DepartureTime)
	assert.Equal(t, "10:05", segments[0].ArrivalTime)
	assert.Equal(t, req.Date, segments[0].Date)
}

func TestAirLabsDefaultFare(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": [{"flight_iata": "MM900"}]}`))
	}))
	defer server.Close()

	p := NewAirLabsProvider(AirLabsConfig{APIKey: "test-key", BaseURL: server.URL})
	defer p.Close()

	segments, err := p.Search(context.Background(), SearchRequest{Origin: "ITM", Destination: "CTS"})

	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, defaultDomesticFare, segments[0].Price, "unlisted route falls back to the default fare")
}

func TestAirLabsEmptySchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response": []}`))
	}))
	defer server.Close()

	p := NewAirLabsProvider(AirLabsConfig{APIKey: "test-key", BaseURL: server.URL})
	defer p.Close()

	segments, err := p.Search(context.Background(), SearchRequest{Origin: "KIX", Destination: "CTS"})

	require.NoError(t, err)
	assert.Empty(t, segments)
}

func TestClockFromTimestamp(t *testing.T) {
	assert.Equal(t, "08:15", clockFromTimestamp("2025-01-02 08:15"))
	assert.Equal(t, "", clockFromTimestamp("2025-01-02"))
	assert.Equal(t, "", clockFromTimestamp(""))
}
