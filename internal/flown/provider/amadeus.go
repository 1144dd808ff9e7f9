package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/Juhwan24/Flown/internal/flown/entity"
)

const amadeusName = "Amadeus"

// AmadeusProvider searches Korea ↔ Japan international fares through the
// Amadeus flight-offers API.
type AmadeusProvider struct {
	apiKey    string
	apiSecret string
	baseURL   string
	client    *http.Client

	mu          sync.Mutex
	accessToken string
}

type AmadeusConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
}

func NewAmadeusProvider(cfg AmadeusConfig) *AmadeusProvider {
	return &AmadeusProvider{
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		client:    newPooledClient(),
	}
}

func (a *AmadeusProvider) Name() string {
	return amadeusName
}

func (a *AmadeusProvider) Search(ctx context.Context, req SearchRequest) ([]entity.FlightSegment, error) {
	token, err := a.token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("originLocationCode", strings.ToUpper(req.Origin))
	query.Set("destinationLocationCode", strings.ToUpper(req.Destination))
	query.Set("departureDate", entity.FormatAPIDate(req.Date))
	query.Set("adults", "1")
	query.Set("currencyCode", "KRW")
	query.Set("max", "5")
	endpoint := a.baseURL + "/v2/shopping/flight-offers?" + query.Encode()

	resp, err := doWithRetry(ctx, a.client, amadeusName, func() (*http.Request, error) {
		httpReq, err := http.NewRequest(http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
		return httpReq, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("amadeus flight-offers status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("amadeus read body: %w", err)
	}

	return a.parseOffers(body, req)
}

func (a *AmadeusProvider) parseOffers(body []byte, req SearchRequest) ([]entity.FlightSegment, error) {
	var payload struct {
		Data []struct {
			Itineraries []struct {
				Segments []struct {
					Departure struct {
						IATACode string `json:"iataCode"`
						At       string `json:"at"`
					} `json:"departure"`
					Arrival struct {
						IATACode string `json:"iataCode"`
						At       string `json:"at"`
					} `json:"arrival"`
					CarrierCode string `json:"carrierCode"`
					Number      string `json:"number"`
				} `json:"segments"`
			} `json:"itineraries"`
			Price struct {
				GrandTotal string `json:"grandTotal"`
			} `json:"price"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("amadeus decode: %w", err)
	}

	segments := make([]entity.FlightSegment, 0, len(payload.Data))
	for _, offer := range payload.Data {
		if len(offer.Itineraries) == 0 {
			continue
		}
		legs := offer.Itineraries[0].Segments
		// Only point-to-point offers become graph edges.
		if len(legs) != 1 {
			continue
		}
		leg := legs[0]

		price, err := strconv.ParseFloat(offer.Price.GrandTotal, 64)
		if err != nil {
			continue
		}

		segments = append(segments, entity.FlightSegment{
			FromAirport:   leg.Departure.IATACode,
			ToAirport:     leg.Arrival.IATACode,
			Price:         int(price),
			Provider:      amadeusName,
			Date:          req.Date,
			FlightNumber:  leg.CarrierCode + leg.Number,
			DepartureTime: clockFromISO(leg.Departure.At),
			ArrivalTime:   clockFromISO(leg.Arrival.At),
		})
	}
	return segments, nil
}

// token returns a cached OAuth access token, requesting a new one on
// first use. Amadeus tokens outlive a populate pass, so refresh on 401
// is handled by the retry of the next search request.
func (a *AmadeusProvider) token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.accessToken != "" {
		return a.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", a.apiKey)
	form.Set("client_secret", a.apiSecret)
	endpoint := a.baseURL + "/v1/security/oauth2/token"

	resp, err := doWithRetry(ctx, a.client, amadeusName, func() (*http.Request, error) {
		httpReq, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return httpReq, nil
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("amadeus token status %d", resp.StatusCode)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("amadeus token decode: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("amadeus token response missing access_token")
	}

	a.accessToken = tokenResp.AccessToken
	return a.accessToken, nil
}

func (a *AmadeusProvider) Close() error {
	a.client.CloseIdleConnections()
	return nil
}

// clockFromISO extracts "15:04" from an ISO timestamp such as
// "2025-01-01T09:00:00". Returns empty on malformed input.
func clockFromISO(value string) string {
	idx := strings.IndexByte(value, 'T')
	if idx < 0 || len(value) < idx+6 {
		return ""
	}
	return value[idx+1 : idx+6]
}
