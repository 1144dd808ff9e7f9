package inbound

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Juhwan24/Flown/internal/flown/entity"
	"github.com/Juhwan24/Flown/internal/flown/usecase"
	"github.com/Juhwan24/Flown/internal/pkg/pkgerror"
)

func parseSearchInput(r *http.Request) (usecase.SearchInput, error) {
	var body SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return usecase.SearchInput{}, pkgerror.NewBusiness("invalid request body", pkgerror.CodeInvalidInput)
	}

	departure := strings.ToUpper(strings.TrimSpace(body.Departure))
	destination := strings.ToUpper(strings.TrimSpace(body.Destination))
	if len(departure) != 3 || len(destination) != 3 {
		return usecase.SearchInput{}, pkgerror.NewBusiness("departure and destination must be 3-letter airport codes", pkgerror.CodeInvalidInput)
	}

	startDate, err := entity.ParseAPIDate(strings.TrimSpace(body.StartDate))
	if err != nil {
		return usecase.SearchInput{}, pkgerror.NewBusiness("invalid start_date", pkgerror.CodeInvalidInput)
	}
	endDate, err := entity.ParseAPIDate(strings.TrimSpace(body.EndDate))
	if err != nil {
		return usecase.SearchInput{}, pkgerror.NewBusiness("invalid end_date", pkgerror.CodeInvalidInput)
	}
	if endDate.Before(startDate) {
		return usecase.SearchInput{}, pkgerror.NewBusiness("end_date must not be before start_date", pkgerror.CodeInvalidInput)
	}

	if body.TripNights != nil && *body.TripNights <= 0 {
		return usecase.SearchInput{}, pkgerror.NewBusiness("trip_nights must be positive", pkgerror.CodeInvalidInput)
	}

	return usecase.SearchInput{
		Departure:   departure,
		Destination: destination,
		StartDate:   startDate,
		EndDate:     endDate,
		TripNights:  body.TripNights,
	}, nil
}
