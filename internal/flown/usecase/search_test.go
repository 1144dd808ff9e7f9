package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func internationalFares() map[string]int {
	return map[string]int{
		"ICN-CTS": 150000, "CTS-ICN": 150000,
		"ICN-KIX": 80000, "KIX-ICN": 75000,
		"ICN-NRT": 95000, "NRT-ICN": 90000,
		"ICN-FUK": 90000, "FUK-ICN": 70000,
	}
}

func domesticFares() map[string]int {
	return map[string]int{
		"KIX-CTS": 30000, "CTS-KIX": 28000,
		"NRT-CTS": 32000, "CTS-NRT": 31000,
		"FUK-CTS": 26000, "CTS-FUK": 25000,
		"KIX-FUK": 8000, "FUK-KIX": 7500,
		"NRT-KIX": 9000, "KIX-NRT": 9000,
		"NRT-FUK": 10000, "FUK-NRT": 10000,
	}
}

func TestSearchFindsCheapestCombination(t *testing.T) {
	international := newFakeProvider("Amadeus", internationalFares())
	domestic := newFakeProvider("AirLabs", domesticFares())
	u := newTestUsecase(international, domestic, newFakeStore())

	output, err := u.Search(context.Background(), SearchInput{
		Departure:   "ICN",
		Destination: "CTS",
		StartDate:   date("2025-01-01"),
		EndDate:     date("2025-01-03"),
	})

	require.NoError(t, err)
	// ICN→KIX 80000 + KIX→CTS 30000 + CTS→FUK 25000 + FUK→ICN 70000
	// beats the 300000 direct round trip.
	assert.Equal(t, 205000, output.TotalCost)
	assert.Equal(t, "ICN → KIX → CTS → FUK → ICN", output.RoutePattern)
	assert.True(t, output.CheaperThanDirect)
	require.NotNil(t, output.DirectCost)
	assert.Equal(t, 300000, *output.DirectCost)
	require.Len(t, output.Segments, 4)
	assert.Equal(t, "ICN", output.Segments[0].FromAirport)
	assert.Equal(t, "ICN", output.Segments[3].ToAirport)
}

func TestSearchSucceedsWhenOnlyDirectTemplateExpands(t *testing.T) {
	// Domestic pairs have no fares at all, so every multi-leg template
	// dead-ends; the direct template must still produce an itinerary.
	international := newFakeProvider("Amadeus", map[string]int{
		"ICN-CTS": 150000, "CTS-ICN": 150000,
	})
	domestic := newFakeProvider("AirLabs", nil)
	u := newTestUsecase(international, domestic, newFakeStore())

	output, err := u.Search(context.Background(), SearchInput{
		Departure:   "ICN",
		Destination: "CTS",
		StartDate:   date("2025-01-01"),
		EndDate:     date("2025-01-02"),
	})

	require.NoError(t, err)
	assert.Equal(t, 300000, output.TotalCost)
	assert.Equal(t, "ICN → CTS → ICN", output.RoutePattern)
	assert.False(t, output.CheaperThanDirect)
	require.Len(t, output.Segments, 2)
}

func TestSearchReturnsDirectOnlyResponseWhenNothingFound(t *testing.T) {
	international := newFakeProvider("Amadeus", nil)
	international.err = errors.New("provider down")
	domestic := newFakeProvider("AirLabs", nil)
	domestic.err = errors.New("provider down")
	u := newTestUsecase(international, domestic, nil)

	output, err := u.Search(context.Background(), SearchInput{
		Departure:   "ICN",
		Destination: "CTS",
		StartDate:   date("2025-01-01"),
		EndDate:     date("2025-01-02"),
	})

	require.NoError(t, err, "a searchable request with no itinerary is not a transport error")
	assert.Equal(t, 0, output.TotalCost)
	assert.Empty(t, output.Segments)
	assert.Equal(t, "ICN → CTS → ICN", output.RoutePattern)
	assert.False(t, output.CheaperThanDirect)
	assert.Nil(t, output.DirectCost)
}

func TestSearchHonorsTripNights(t *testing.T) {
	international := newFakeProvider("Amadeus", internationalFares())
	domestic := newFakeProvider("AirLabs", domesticFares())
	u := newTestUsecase(international, domestic, nil)

	output, err := u.Search(context.Background(), SearchInput{
		Departure:   "ICN",
		Destination: "CTS",
		StartDate:   date("2025-01-01"),
		EndDate:     date("2025-01-01"),
		TripNights:  intPtr(5),
	})

	require.NoError(t, err)
	require.Len(t, output.Segments, 4)
	// Reaching CTS jumps the date cursor to departure + trip nights.
	assert.Equal(t, date("2025-01-06"), output.Segments[2].Date)
}
