package domain

import "time"

// TravelPlan is the selected cheapest valid (flight, hotel) bundle.
// It references exactly one flight and one hotel drawn from the candidate
// sets passed into the optimizer, is immutable once returned, and is never
// persisted: each request recomputes from scratch.
type TravelPlan struct {
	// Flight is the chosen flight offer
	Flight FlightOffer `json:"flight"`

	// Hotel is the chosen hotel offer
	Hotel HotelOffer `json:"hotel"`

	// TotalPrice is flight price + hotel per-night price * nights
	TotalPrice float64 `json:"totalPrice"`

	// Nights is the stay length used for the hotel cost
	Nights int `json:"nights"`

	// ArrivalTime is the flight arrival instant used for timing validation
	ArrivalTime time.Time `json:"arrivalTime"`

	// GapHours is the airport-to-hotel buffer applied during validation
	GapHours int `json:"gapHours"`
}

// QualityRelaxation identifies which rung of the quality filter's
// degradation ladder produced the hotel candidate set.
type QualityRelaxation string

// Degradation ladder rungs, from strictest to loosest.
const (
	// RelaxationNone means the strict overall + location filter was used
	RelaxationNone QualityRelaxation = "none"

	// RelaxationLocationDropped means the location threshold was dropped
	RelaxationLocationDropped QualityRelaxation = "location_dropped"

	// RelaxationOverallLowered means the overall threshold was lowered
	RelaxationOverallLowered QualityRelaxation = "overall_lowered"

	// RelaxationUnfiltered means the complete unfiltered set was used
	RelaxationUnfiltered QualityRelaxation = "unfiltered"
)

// TripSearchResult is the aggregated outcome of one trip request.
type TripSearchResult struct {
	// Parameters echoes the resolved trip parameters
	Parameters TripParameters `json:"parameters"`

	// Plan is the optimized bundle for full-trip searches. nil signals
	// that no timing-compatible combination exists; that is a legitimate
	// outcome, not an error.
	Plan *TravelPlan `json:"plan,omitempty"`

	// Flights holds the normalized flight candidates
	Flights []FlightOffer `json:"flights,omitempty"`

	// Hotels holds the normalized hotel candidates
	Hotels []HotelOffer `json:"hotels,omitempty"`

	// Activities holds best-effort activity results; may be empty even on
	// success since activity retrieval never fails the trip search
	Activities []ActivityOffer `json:"activities,omitempty"`

	// Metadata describes how the search executed
	Metadata TripSearchMetadata `json:"metadata"`
}

// TripSearchMetadata contains information about the search execution.
type TripSearchMetadata struct {
	// Nights is the computed hotel-stay length
	Nights int `json:"nights"`

	// QualityRelaxation reports which degradation rung supplied the hotel
	// set, so callers know when quality constraints were silently relaxed
	QualityRelaxation QualityRelaxation `json:"qualityRelaxation,omitempty"`

	// SourcesFailed lists upstream sources that returned errors
	SourcesFailed []string `json:"sourcesFailed,omitempty"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}
