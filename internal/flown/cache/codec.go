package cache

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Juhwan24/Flown/internal/flown/entity"
)

// segmentRecord is the wire form of a cached segment. Dates are stored
// as API-formatted strings, never as native time encodings, so the
// payload format stays stable across versions.
type segmentRecord struct {
	FromAirport   string `json:"from_airport"`
	ToAirport     string `json:"to_airport"`
	Price         int    `json:"price"`
	Provider      string `json:"provider"`
	Date          string `json:"date"`
	FlightNumber  string `json:"flight_number,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
}

// EncodeSegments serializes a segment list into the cache payload format.
func EncodeSegments(segments []entity.FlightSegment) ([]byte, error) {
	records := make([]segmentRecord, 0, len(segments))
	for _, segment := range segments {
		records = append(records, segmentRecord{
			FromAirport:   segment.FromAirport,
			ToAirport:     segment.ToAirport,
			Price:         segment.Price,
			Provider:      segment.Provider,
			Date:          entity.FormatAPIDate(segment.Date),
			FlightNumber:  segment.FlightNumber,
			DepartureTime: segment.DepartureTime,
			ArrivalTime:   segment.ArrivalTime,
		})
	}
	return json.Marshal(records)
}

// DecodeSegments parses a cache payload back into segments. Any decode
// failure is returned to the caller, which treats it as a cache miss.
func DecodeSegments(payload []byte) ([]entity.FlightSegment, error) {
	var records []segmentRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode cache payload: %w", err)
	}

	segments := make([]entity.FlightSegment, 0, len(records))
	for _, record := range records {
		date, err := entity.ParseAPIDate(record.Date)
		if err != nil {
			return nil, fmt.Errorf("decode cache date %q: %w", record.Date, err)
		}
		segments = append(segments, entity.FlightSegment{
			FromAirport:   record.FromAirport,
			ToAirport:     record.ToAirport,
			Price:         record.Price,
			Provider:      record.Provider,
			Date:          date,
			FlightNumber:  record.FlightNumber,
			DepartureTime: record.DepartureTime,
			ArrivalTime:   record.ArrivalTime,
		})
	}
	return segments, nil
}

// Key builds a cache key from a provider prefix and sorted parameters,
// e.g. "amadeus:date:2025-01-01:from:ICN:to:KIX".
func Key(prefix string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, 1+len(names))
	parts = append(parts, prefix)
	for _, name := range names {
		parts = append(parts, name+":"+params[name])
	}
	return strings.Join(parts, ":")
}
