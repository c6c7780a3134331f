package domain

import (
	"fmt"
	"regexp"
	"time"
)

// SearchIntent identifies which downstream queries a trip request needs.
type SearchIntent string

// Available search intents.
const (
	// IntentFullTrip searches flights and hotels and optimizes the bundle
	IntentFullTrip SearchIntent = "full-trip"

	// IntentFlightOnly searches flights only
	IntentFlightOnly SearchIntent = "flight-only"

	// IntentHotelOnly searches hotels only
	IntentHotelOnly SearchIntent = "hotel-only"

	// IntentActivityOnly searches activities only
	IntentActivityOnly SearchIntent = "activity-only"
)

// IsValid checks if the intent is a known value.
func (s SearchIntent) IsValid() bool {
	switch s {
	case IntentFullTrip, IntentFlightOnly, IntentHotelOnly, IntentActivityOnly:
		return true
	default:
		return false
	}
}

// NeedsFlights reports whether this intent requires a flight query.
func (s SearchIntent) NeedsFlights() bool {
	return s == IntentFullTrip || s == IntentFlightOnly
}

// NeedsHotels reports whether this intent requires a hotel query.
func (s SearchIntent) NeedsHotels() bool {
	return s == IntentFullTrip || s == IntentHotelOnly
}

// NeedsActivities reports whether this intent requires an activity query.
func (s SearchIntent) NeedsActivities() bool {
	return s == IntentFullTrip || s == IntentActivityOnly
}

// ParseSearchIntent converts a string to a SearchIntent.
// Returns IntentFullTrip if the string is empty or invalid.
func ParseSearchIntent(s string) SearchIntent {
	intent := SearchIntent(s)
	if intent.IsValid() {
		return intent
	}
	return IntentFullTrip
}

// TripParameters is the resolved set of parameters for one trip request.
// It is produced once per user utterance by the external extraction
// collaborator (or built directly from a structured API request), consumed
// immediately, and never persisted.
type TripParameters struct {
	// Intent selects which downstream queries to issue
	Intent SearchIntent `json:"intent"`

	// Origin is the departure locator in airport-code form (e.g. "LAX"),
	// used for flight queries
	Origin string `json:"origin"`

	// Destination is the arrival locator in airport-code form (e.g. "NRT"),
	// used for flight queries
	Destination string `json:"destination"`

	// DestinationCity is the destination in city-name form (e.g. "Tokyo"),
	// used for hotel and activity queries. Falls back to Destination when
	// empty.
	DestinationCity string `json:"destinationCity,omitempty"`

	// StartDate is the trip start date in YYYY-MM-DD form
	StartDate string `json:"startDate"`

	// EndDate is the trip end date in YYYY-MM-DD form, optional for one-way
	EndDate string `json:"endDate,omitempty"`

	// OneWay marks a one-way trip (no return flight, single-night stay)
	OneWay bool `json:"oneWay"`

	// Complete is set by the extraction collaborator when all required
	// fields were recovered from the utterance
	Complete bool `json:"complete"`

	// MissingFields lists fields the extraction collaborator could not
	// recover, as free text for clarification prompts
	MissingFields []string `json:"missingFields,omitempty"`
}

// tripDateRegex matches dates in YYYY-MM-DD format.
var tripDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayout is the wire format for trip dates.
const dateLayout = "2006-01-02"

// Validate checks the parameters against the current date.
// It returns a wrapped ErrInvalidRequest error describing the first
// problem found; these errors are user-facing.
func (p *TripParameters) Validate(now time.Time) error {
	if p.Intent.NeedsFlights() && p.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if p.Destination == "" && p.DestinationCity == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}

	if p.StartDate == "" {
		return fmt.Errorf("%w: start date is required", ErrInvalidRequest)
	}
	start, err := parseTripDate(p.StartDate)
	if err != nil {
		return err
	}

	// A start date before today is a user error, not a data error.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if start.Before(today) {
		return fmt.Errorf("%w: start date %s is in the past", ErrInvalidRequest, p.StartDate)
	}

	if p.EndDate != "" {
		end, err := parseTripDate(p.EndDate)
		if err != nil {
			return err
		}
		if end.Before(start) {
			return fmt.Errorf("%w: end date %s precedes start date %s",
				ErrInvalidRequest, p.EndDate, p.StartDate)
		}
	} else if !p.OneWay && p.Intent != IntentActivityOnly {
		return fmt.Errorf("%w: end date is required for round trips", ErrInvalidRequest)
	}

	return nil
}

// Nights computes the hotel-stay length from the trip dates.
// It defaults to 1 night when dates are absent or when a one-way trip
// makes only a single night relevant.
func (p *TripParameters) Nights() int {
	if p.OneWay || p.StartDate == "" || p.EndDate == "" {
		return 1
	}
	start, errStart := time.Parse(dateLayout, p.StartDate)
	end, errEnd := time.Parse(dateLayout, p.EndDate)
	if errStart != nil || errEnd != nil {
		return 1
	}
	nights := int(end.Sub(start).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// HotelLocation returns the locator to use for hotel and activity queries.
func (p *TripParameters) HotelLocation() string {
	if p.DestinationCity != "" {
		return p.DestinationCity
	}
	return p.Destination
}

// parseTripDate parses a YYYY-MM-DD date, returning a wrapped
// ErrInvalidRequest on failure.
func parseTripDate(s string) (time.Time, error) {
	if !tripDateRegex.MatchString(s) {
		return time.Time{}, fmt.Errorf("%w: date must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid date", ErrInvalidRequest, s)
	}
	return t, nil
}
