package inbound

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Juhwan24/Flown/internal/flown/entity"
	"github.com/Juhwan24/Flown/internal/flown/usecase"
	"github.com/Juhwan24/Flown/internal/pkg/pkgerror"
)

type fakeUsecase struct {
	input  usecase.SearchInput
	output *usecase.SearchOutput
	err    error
}

func (f *fakeUsecase) Search(_ context.Context, in usecase.SearchInput) (*usecase.SearchOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func postSearch(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(body))
}

func TestParseSearchInput(t *testing.T) {
	nights := 4
	tests := []struct {
		name    string
		body    string
		want    usecase.SearchInput
		wantErr bool
	}{
		{
			name: "valid",
			body: `{"departure":"icn","destination":"CTS","start_date":"2025-01-01","end_date":"2025-01-03","trip_nights":4}`,
			want: usecase.SearchInput{
				Departure:   "ICN",
				Destination: "CTS",
				StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				EndDate:     time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
				TripNights:  &nights,
			},
		},
		{
			name:    "not json",
			body:    `{`,
			wantErr: true,
		},
		{
			name:    "bad airport code",
			body:    `{"departure":"INCHEON","destination":"CTS","start_date":"2025-01-01","end_date":"2025-01-03"}`,
			wantErr: true,
		},
		{
			name:    "bad start date",
			body:    `{"departure":"ICN","destination":"CTS","start_date":"01/01/2025","end_date":"2025-01-03"}`,
			wantErr: true,
		},
		{
			name:    "end before start",
			body:    `{"departure":"ICN","destination":"CTS","start_date":"2025-01-03","end_date":"2025-01-01"}`,
			wantErr: true,
		},
		{
			name:    "non-positive trip nights",
			body:    `{"departure":"ICN","destination":"CTS","start_date":"2025-01-01","end_date":"2025-01-03","trip_nights":0}`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseSearchInput(postSearch(tc.body))
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, pkgerror.HTTPStatus(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSearchEndpoint(t *testing.T) {
	direct := 300000
	fake := &fakeUsecase{output: &usecase.SearchOutput{
		TotalCost: 205000,
		Segments: []entity.FlightSegment{{
			FromAirport: "ICN",
			ToAirport:   "KIX",
			Price:       80000,
			Provider:    "Amadeus",
			Date:        time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}},
		RoutePattern:      "ICN → KIX → CTS → FUK → ICN",
		CheaperThanDirect: true,
		DirectCost:        &direct,
	}}
	end := &HTTPEndpoint{uc: fake}

	body := `{"departure":"ICN","destination":"CTS","start_date":"2025-01-01","end_date":"2025-01-03"}`
	result, err := end.Search(context.Background(), postSearch(body))

	require.NoError(t, err)
	resp, ok := result.(SearchResponse)
	require.True(t, ok)
	assert.Equal(t, 205000, resp.TotalCost)
	assert.Equal(t, "ICN → KIX → CTS → FUK → ICN", resp.RoutePattern)
	assert.True(t, resp.CheaperThanDirect)
	require.Len(t, resp.Segments, 1)
	assert.Equal(t, "2025-01-01", resp.Segments[0].Date)
	assert.Equal(t, "ICN", fake.input.Departure)
}

func TestSearchEndpointInvalidBody(t *testing.T) {
	end := &HTTPEndpoint{uc: &fakeUsecase{}}

	_, err := end.Search(context.Background(), postSearch(`{`))

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, pkgerror.HTTPStatus(err))
}

func TestHealthEndpoint(t *testing.T) {
	end := &HTTPEndpoint{}

	result, err := end.Health(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, HealthResponse{Status: "healthy", Service: "Flown API"}, result)
}
