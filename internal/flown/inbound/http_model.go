package inbound

type SearchRequestBody struct {
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TripNights  *int   `json:"trip_nights,omitempty"`
}

type SearchResponse struct {
	TotalCost         int               `json:"total_cost"`
	Segments          []SegmentResponse `json:"segments"`
	RoutePattern      string            `json:"route_pattern"`
	CheaperThanDirect bool              `json:"cheaper_than_direct"`
	DirectCost        *int              `json:"direct_cost,omitempty"`
}

type SegmentResponse struct {
	FromAirport   string `json:"from_airport"`
	ToAirport     string `json:"to_airport"`
	Price         int    `json:"price"`
	Provider      string `json:"provider"`
	Date          string `json:"date"`
	FlightNumber  string `json:"flight_number,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
