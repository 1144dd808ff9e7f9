package usecase

import "time"

const (
	defaultTripNights = 3

	// Caps keep the fetch fan-out and the candidate space proportional
	// to the window instead of exploding with it.
	maxFetchDays = 7
	maxDatePairs = 5
)

type datePair struct {
	departure time.Time
	ret       time.Time
}

// dateRange lists every date from start to end inclusive.
func dateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		dates = append(dates, current)
	}
	return dates
}

// returnDateFor computes the return date from a departure date and the
// number of trip nights.
func returnDateFor(departure time.Time, tripNights int) time.Time {
	return departure.AddDate(0, 0, tripNights)
}

// departureReturnPairs lists candidate (departure, return) date pairs
// across the search window for a fixed trip length.
func departureReturnPairs(start, end time.Time, tripNights int) []datePair {
	var pairs []datePair
	latestReturn := end.AddDate(0, 0, 30)
	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		ret := returnDateFor(current, tripNights)
		if ret.After(latestReturn) {
			continue
		}
		pairs = append(pairs, datePair{departure: current, ret: ret})
	}
	return pairs
}
