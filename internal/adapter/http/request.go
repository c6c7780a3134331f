// Package http provides the HTTP handler layer for the trip search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"regexp"
	"strings"
	"time"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// SearchTripsRequest represents the request body for a structured trip search.
type SearchTripsRequest struct {
	// Intent selects the search scope: full-trip, flight-only, hotel-only,
	// or activity-only. Empty defaults to full-trip.
	Intent string `json:"intent,omitempty"`

	// Origin is the IATA code of the departure airport (e.g., "LAX")
	Origin string `json:"origin,omitempty"`

	// Destination is the IATA code of the arrival airport (e.g., "NRT")
	Destination string `json:"destination"`

	// DestinationCity is the destination city name used for hotel and
	// activity queries (e.g., "Tokyo"). Falls back to Destination.
	DestinationCity string `json:"destinationCity,omitempty"`

	// StartDate is the trip start date in YYYY-MM-DD format
	StartDate string `json:"startDate"`

	// EndDate is the trip end date in YYYY-MM-DD format (optional for one-way)
	EndDate string `json:"endDate,omitempty"`

	// OneWay marks a one-way trip
	OneWay bool `json:"oneWay,omitempty"`
}

// ResolveTripRequest represents the request body for free-text trip resolution.
type ResolveTripRequest struct {
	// Query is the natural-language trip request
	// (e.g., "Find me the cheapest trip from LAX to Tokyo, Jan 15-22")
	Query string `json:"query"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Valid intent values.
var validIntents = map[string]bool{
	"full-trip":     true,
	"flight-only":   true,
	"hotel-only":    true,
	"activity-only": true,
	"":              true, // Empty is valid (defaults to full-trip)
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks the request's shape. Semantic checks that depend on the
// current date (past start dates, stay length) belong to the domain layer.
func (r *SearchTripsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateIntent(errs)
	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateDates(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchTripsRequest) validateIntent(errs *ValidationErrors) {
	if !validIntents[strings.ToLower(r.Intent)] {
		errs.Add("intent", "intent must be one of: full-trip, flight-only, hotel-only, activity-only")
	}
}

func (r *SearchTripsRequest) validateOrigin(errs *ValidationErrors) {
	intent := domain.ParseSearchIntent(strings.ToLower(r.Intent))

	if r.Origin == "" {
		if intent.NeedsFlights() {
			errs.Add("origin", "origin is required for flight searches")
		}
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !airportCodePattern.MatchString(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin // Normalize to uppercase
}

func (r *SearchTripsRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" && r.DestinationCity == "" {
		errs.Add("destination", "destination is required")
		return
	}

	if r.Destination != "" {
		dest := strings.ToUpper(r.Destination)
		if !airportCodePattern.MatchString(dest) {
			errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
			return
		}
		r.Destination = dest

		if r.Origin != "" && strings.EqualFold(r.Origin, r.Destination) {
			errs.Add("destination", "origin and destination must be different")
		}
	}
}

func (r *SearchTripsRequest) validateDates(errs *ValidationErrors) {
	if r.StartDate == "" {
		errs.Add("startDate", "startDate is required")
	} else if !isValidDate(r.StartDate) {
		errs.Add("startDate", "startDate must be a valid date in YYYY-MM-DD format")
	}

	if r.EndDate != "" && !isValidDate(r.EndDate) {
		errs.Add("endDate", "endDate must be a valid date in YYYY-MM-DD format")
	}
}

// Validate checks the free-text resolution request.
func (r *ResolveTripRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Query) == "" {
		errs.Add("query", "query is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// isValidDate validates a YYYY-MM-DD date string.
func isValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
