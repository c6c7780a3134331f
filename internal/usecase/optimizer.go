package usecase

import (
	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// FindCheapestPlan returns the (flight, hotel) pair minimizing
// flight price + hotel per-night price * nights, among all pairs that pass
// the timing validator, drawn from the quality-filtered hotel set.
//
// The outer loop visits flights in input order; a flight without a usable
// arrival instant is skipped. Ties are broken deterministically: the strict
// less-than comparison keeps the first pair seen at the minimum, so
// identical inputs always produce identical output.
//
// A nil plan means no timing-compatible combination exists (or an input
// list was empty); that is a legitimate result, not an error. The returned
// relaxation rung reports how far the quality filter had to degrade.
func FindCheapestPlan(flights []domain.FlightOffer, hotels []domain.HotelOffer, opts PlanOptions) (*domain.TravelPlan, domain.QualityRelaxation) {
	opts = opts.withDefaults()

	if len(flights) == 0 || len(hotels) == 0 {
		return nil, domain.RelaxationNone
	}

	candidates, relaxation := FilterHotelsByQuality(hotels, QualityThresholds{
		MinOverall:  opts.MinOverallRating,
		MinLocation: opts.MinLocationRating,
	})

	var best *domain.TravelPlan
	for _, flight := range flights {
		if !flight.HasArrival() {
			continue
		}

		for _, hotel := range ValidHotels(candidates, flight.ArrivalTime, opts.GapHours) {
			total := flight.Price + hotel.Price*float64(opts.Nights)
			if best != nil && total >= best.TotalPrice {
				continue
			}
			best = &domain.TravelPlan{
				Flight:      flight,
				Hotel:       hotel,
				TotalPrice:  total,
				Nights:      opts.Nights,
				ArrivalTime: flight.ArrivalTime,
				GapHours:    opts.GapHours,
			}
		}
	}

	return best, relaxation
}
