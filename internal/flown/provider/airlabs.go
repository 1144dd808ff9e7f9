package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Juhwan24/Flown/internal/flown/entity"
)

const airLabsName = "AirLabs"

// domesticFares estimates Japan domestic LCC fares in KRW per route.
// AirLabs reports schedules without prices, so routes not listed here
// fall back to defaultDomesticFare.
var domesticFares = map[string]int{
	"KIX-CTS": 12000,
	"CTS-KIX": 11000,
	"KIX-FUK": 8000,
	"FUK-KIX": 7500,
	"NRT-CTS": 15000,
	"CTS-NRT": 14000,
	"NRT-FUK": 13000,
	"FUK-NRT": 12500,
	"NRT-OKA": 16000,
	"OKA-NRT": 15500,
	"KIX-OKA": 10000,
	"OKA-KIX": 9500,
}

const defaultDomesticFare = 13000

// AirLabsProvider searches Japan domestic flights (Peach Aviation and
// other LCCs) through the AirLabs schedules API.
type AirLabsProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type AirLabsConfig struct {
	APIKey  string
	BaseURL string
}

func NewAirLabsProvider(cfg AirLabsConfig) *AirLabsProvider {
	return &AirLabsProvider{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  newPooledClient(),
	}
}

func (p *AirLabsProvider) Name() string {
	return airLabsName
}

func (p *AirLabsProvider) Search(ctx context.Context, req SearchRequest) ([]entity.FlightSegment, error) {
	origin := strings.ToUpper(req.Origin)
	destination := strings.ToUpper(req.Destination)

	query := url.Values{}
	query.Set("dep_iata", origin)
	query.Set("arr_iata", destination)
	query.Set("api_key", p.apiKey)
	endpoint := p.baseURL + "/schedules?" + query.Encode()

	resp, err := doWithRetry(ctx, p.client, airLabsName, func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("airlabs schedules status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("airlabs read body: %w", err)
	}

	var payload struct {
		Response []struct {
			FlightIATA string `json:"flight_iata"`
			DepTime    string `json:"dep_time"`
			ArrTime    string `json:"arr_time"`
		} `json:"response"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("airlabs decode: %w", err)
	}

	fare, ok := domesticFares[origin+"-"+destination]
	if !ok {
		fare = defaultDomesticFare
	}

	segments := make([]entity.FlightSegment, 0, len(payload.Response))
	for _, schedule := range payload.Response {
		segments = append(segments, entity.FlightSegment{
			FromAirport:   origin,
			ToAirport:     destination,
			Price:         fare,
			Provider:      airLabsName,
			Date:          req.Date,
			FlightNumber:  schedule.FlightIATA,
			DepartureTime: clockFromTimestamp(schedule.DepTime),
			ArrivalTime:   clockFromTimestamp(schedule.ArrTime),
		})
	}
	return segments, nil
}

func (p *AirLabsProvider) Close() error {
	p.client.CloseIdleConnections()
	return nil
}

// clockFromTimestamp extracts "15:04" from "2025-01-01 09:00" style
// timestamps AirLabs returns.
func clockFromTimestamp(value string) string {
	fields := strings.Fields(value)
	if len(fields) < 2 || len(fields[1]) < 5 {
		return ""
	}
	return fields[1][:5]
}
