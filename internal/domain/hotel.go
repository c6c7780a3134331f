package domain

import (
	"strings"
	"time"
)

// DefaultCheckInTime is the standard hotel industry check-in time, used
// when a provider does not supply one.
const DefaultCheckInTime = "15:00"

// HotelOffer represents a single hotel option returned by a data provider.
type HotelOffer struct {
	// ID is a unique identifier for this offer (generated internally)
	ID string `json:"id"`

	// Name is the hotel name
	Name string `json:"name"`

	// Price is the per-night rate, currency-agnostic
	Price float64 `json:"price"`

	// OverallRating is the hotel's overall rating on a 0-5 scale.
	// nil means the provider did not supply a rating.
	OverallRating *float64 `json:"overallRating,omitempty"`

	// LocationRating is the location-specific rating on a 0-5 scale.
	// nil means no location rating data exists for this hotel.
	LocationRating *float64 `json:"locationRating,omitempty"`

	// HotelClass is the star class (3, 4, 5), 0 if unknown
	HotelClass int `json:"hotelClass,omitempty"`

	// CheckIn is the hotel's check-in policy
	CheckIn CheckInPolicy `json:"checkIn"`

	// Amenities is an opaque list of amenity names, display-only
	Amenities []string `json:"amenities,omitempty"`
}

// CheckInPolicy describes when a hotel allows guests to check in.
// Hotels allow check-in any time AFTER the stated check-in time.
type CheckInPolicy struct {
	// Time is the check-in time-of-day in "HH:MM" or "H:MM AM/PM" form.
	// Empty defaults to DefaultCheckInTime.
	Time string `json:"time,omitempty"`

	// Date is the explicit check-in date in YYYY-MM-DD form. Empty means
	// the date is inferred from context (the flight arrival date) at
	// validation time.
	Date string `json:"date,omitempty"`
}

// checkInTimeLayouts are the accepted time-of-day formats, tried in order.
var checkInTimeLayouts = []string{"15:04", "3:04 PM", "03:04 PM"}

// Instant resolves the policy into a concrete check-in instant, using
// referenceDate for the calendar date when the policy has no explicit one.
// The boolean is false when neither the policy nor the fallback produces a
// usable instant; callers treat that case permissively.
func (p CheckInPolicy) Instant(referenceDate time.Time) (time.Time, bool) {
	date := referenceDate
	if p.Date != "" {
		if parsed, err := time.Parse("2006-01-02", p.Date); err == nil {
			date = parsed
		}
	}
	if date.IsZero() {
		return time.Time{}, false
	}

	tod, ok := parseCheckInTime(p.Time)
	if !ok {
		// Unparseable time falls back to the industry default rather
		// than invalidating the offer.
		tod, _ = parseCheckInTime(DefaultCheckInTime)
	}

	return time.Date(date.Year(), date.Month(), date.Day(),
		tod.Hour(), tod.Minute(), 0, 0, date.Location()), true
}

// parseCheckInTime parses a check-in time-of-day string.
func parseCheckInTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = DefaultCheckInTime
	}

	upper := strings.ToUpper(s)
	for _, layout := range checkInTimeLayouts {
		if t, err := time.Parse(layout, upper); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// HasOverallRating reports whether overall rating data exists.
func (h *HotelOffer) HasOverallRating() bool {
	return h.OverallRating != nil
}

// HasLocationRating reports whether location rating data exists.
func (h *HotelOffer) HasLocationRating() bool {
	return h.LocationRating != nil
}
