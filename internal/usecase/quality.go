package usecase

import (
	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// QualityThresholds holds the rating bars applied before cost optimization.
type QualityThresholds struct {
	// MinOverall is the minimum overall rating (0-5 scale)
	MinOverall float64

	// MinLocation is the minimum location rating (0-5 scale)
	MinLocation float64
}

// FilterHotelsByQuality restricts hotel candidates to a minimum quality bar,
// degrading gracefully when rating data is sparse. The ladder, from
// strictest to loosest:
//
//  1. overall >= MinOverall AND location >= MinLocation
//  2. overall >= MinOverall (location requirement dropped)
//  3. overall >= RelaxedOverallRating
//  4. the complete unfiltered set
//
// The returned relaxation rung tells the caller how far the ladder had to
// degrade, so relaxed quality is reported rather than silent. The ladder
// guarantees a non-empty result whenever the input is non-empty: finding a
// plan is prioritized over strict quality adherence.
//
// The location threshold is only applied to hotels that actually carry
// location rating data; hotels without it are never excluded on that basis.
func FilterHotelsByQuality(hotels []domain.HotelOffer, thresholds QualityThresholds) ([]domain.HotelOffer, domain.QualityRelaxation) {
	if len(hotels) == 0 {
		return hotels, domain.RelaxationNone
	}

	strict := filterHotels(hotels, func(h domain.HotelOffer) bool {
		return meetsOverall(h, thresholds.MinOverall) && meetsLocation(h, thresholds.MinLocation)
	})
	if len(strict) > 0 {
		return strict, domain.RelaxationNone
	}

	overallOnly := filterHotels(hotels, func(h domain.HotelOffer) bool {
		return meetsOverall(h, thresholds.MinOverall)
	})
	if len(overallOnly) > 0 {
		return overallOnly, domain.RelaxationLocationDropped
	}

	relaxed := filterHotels(hotels, func(h domain.HotelOffer) bool {
		return meetsOverall(h, RelaxedOverallRating)
	})
	if len(relaxed) > 0 {
		return relaxed, domain.RelaxationOverallLowered
	}

	return hotels, domain.RelaxationUnfiltered
}

// meetsOverall checks the overall-rating threshold. Hotels without overall
// rating data do not pass; the unfiltered rung readmits them.
func meetsOverall(h domain.HotelOffer, min float64) bool {
	return h.HasOverallRating() && *h.OverallRating >= min
}

// meetsLocation checks the location-rating threshold for hotels that have
// location data; hotels lacking it pass, to avoid penalizing missing
// provider data.
func meetsLocation(h domain.HotelOffer, min float64) bool {
	if !h.HasLocationRating() {
		return true
	}
	return *h.LocationRating >= min
}

// filterHotels returns the hotels matching the predicate.
func filterHotels(hotels []domain.HotelOffer, keep func(domain.HotelOffer) bool) []domain.HotelOffer {
	result := make([]domain.HotelOffer, 0, len(hotels))
	for _, h := range hotels {
		if keep(h) {
			result = append(result, h)
		}
	}
	return result
}
