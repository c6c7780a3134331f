// Package usecase contains the business logic for trip search operations:
// timing validation, quality filtering, plan optimization, and the
// orchestration that feeds provider results through them.
package usecase

// Default tuning values for plan optimization. GapHours and the rating
// thresholds are normally supplied from configuration; these constants are
// the fallbacks when a caller passes a zero value.
const (
	// DefaultGapHours is the buffer between flight arrival and hotel
	// check-in, covering deplaning, customs, baggage, and ground transit.
	DefaultGapHours = 2

	// DefaultMinOverallRating is the strict overall-rating threshold.
	DefaultMinOverallRating = 3.7

	// DefaultMinLocationRating is the strict location-rating threshold.
	DefaultMinLocationRating = 4.0

	// RelaxedOverallRating is the lowered overall threshold used by the
	// degradation ladder before giving up on rating filters entirely.
	RelaxedOverallRating = 3.0
)

// PlanOptions tunes a single plan optimization run.
type PlanOptions struct {
	// GapHours is the airport-to-hotel buffer in hours
	GapHours int

	// Nights is the hotel-stay length used for total cost
	Nights int

	// MinOverallRating is the strict overall-rating threshold
	MinOverallRating float64

	// MinLocationRating is the strict location-rating threshold
	MinLocationRating float64
}

// DefaultPlanOptions returns PlanOptions with the standard defaults.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		GapHours:          DefaultGapHours,
		Nights:            1,
		MinOverallRating:  DefaultMinOverallRating,
		MinLocationRating: DefaultMinLocationRating,
	}
}

// withDefaults fills zero fields with the standard defaults.
func (o PlanOptions) withDefaults() PlanOptions {
	if o.GapHours <= 0 {
		o.GapHours = DefaultGapHours
	}
	if o.Nights <= 0 {
		o.Nights = 1
	}
	if o.MinOverallRating <= 0 {
		o.MinOverallRating = DefaultMinOverallRating
	}
	if o.MinLocationRating <= 0 {
		o.MinLocationRating = DefaultMinLocationRating
	}
	return o
}
