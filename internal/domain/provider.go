package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// FlightQuery describes a flight search against an upstream data source.
type FlightQuery struct {
	// Origin is the departure airport code
	Origin string

	// Destination is the arrival airport code
	Destination string

	// OutboundDate is the departure date in YYYY-MM-DD form
	OutboundDate string

	// ReturnDate is the return date in YYYY-MM-DD form, empty for one-way
	ReturnDate string

	// OneWay requests a one-way search regardless of ReturnDate
	OneWay bool
}

// HotelQuery describes a hotel search against an upstream data source.
type HotelQuery struct {
	// Location is the destination in city-name form
	Location string

	// CheckInDate is the check-in date in YYYY-MM-DD form
	CheckInDate string

	// CheckOutDate is the check-out date in YYYY-MM-DD form
	CheckOutDate string
}

// ActivityQuery describes an activity search against an upstream data source.
type ActivityQuery struct {
	// Location is the destination in city-name form
	Location string

	// Kind is the activity category (e.g. "things to do", "museums").
	// Empty defaults to a general attractions search.
	Kind string
}

// FlightProvider is an upstream source of flight offers.
// Implementations must respect context cancellation and return normalized
// offers; unparseable records are dropped, never surfaced as errors.
type FlightProvider interface {
	// Name returns the provider's unique identifier for logging and
	// failure reporting.
	Name() string

	// SearchFlights queries the provider for flight offers.
	SearchFlights(ctx context.Context, query FlightQuery) ([]FlightOffer, error)
}

// HotelProvider is an upstream source of hotel offers.
type HotelProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// SearchHotels queries the provider for hotel offers.
	SearchHotels(ctx context.Context, query HotelQuery) ([]HotelOffer, error)
}

// ActivityProvider is an upstream source of activity offers.
// Activity retrieval is best-effort: callers log and swallow its errors.
type ActivityProvider interface {
	// Name returns the provider's unique identifier.
	Name() string

	// SearchActivities queries the provider for activity offers.
	SearchActivities(ctx context.Context, query ActivityQuery) ([]ActivityOffer, error)
}

// ParameterExtractor turns a free-text trip request into structured
// TripParameters. It models the external LLM extraction collaborator and is
// consumed as an opaque function; extraction quality is out of scope.
type ParameterExtractor interface {
	// ExtractTripParameters resolves the utterance into trip parameters.
	// The returned parameters may be incomplete; callers check Complete
	// and MissingFields.
	ExtractTripParameters(ctx context.Context, utterance string) (TripParameters, error)
}
