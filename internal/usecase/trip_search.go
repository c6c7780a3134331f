package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
	"github.com/trip-search/trip-search-and-optimization-system/internal/infrastructure/timeutil"
)

// Default timeout values.
const (
	DefaultGlobalTimeout = 15 * time.Second
	DefaultSourceTimeout = 10 * time.Second
)

// TripSearchUseCase defines the interface for trip search operations.
type TripSearchUseCase interface {
	// Search resolves a set of trip parameters into offers and, for
	// full-trip searches, the cheapest timing-valid plan.
	Search(ctx context.Context, params domain.TripParameters) (*domain.TripSearchResult, error)

	// Resolve turns a free-text utterance into trip parameters via the
	// extraction collaborator and runs Search on them.
	Resolve(ctx context.Context, utterance string) (*domain.TripSearchResult, error)
}

// Config contains configuration options for the use case.
type Config struct {
	GlobalTimeout     time.Duration
	SourceTimeout     time.Duration
	GapHours          int
	MinOverallRating  float64
	MinLocationRating float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		GlobalTimeout:     DefaultGlobalTimeout,
		SourceTimeout:     DefaultSourceTimeout,
		GapHours:          DefaultGapHours,
		MinOverallRating:  DefaultMinOverallRating,
		MinLocationRating: DefaultMinLocationRating,
	}
}

// Providers bundles the upstream data sources a trip search draws from.
// Activities may be nil; activity retrieval is best-effort either way.
type Providers struct {
	Flights    domain.FlightProvider
	Hotels     domain.HotelProvider
	Activities domain.ActivityProvider
}

// tripSearchUseCase implements TripSearchUseCase. Flight and hotel queries
// are independent and run concurrently; activity retrieval follows once the
// location is known and never fails the overall search.
type tripSearchUseCase struct {
	providers Providers
	extractor domain.ParameterExtractor
	clock     timeutil.Clock
	cfg       Config
	log       zerolog.Logger
}

// Option configures optional collaborators on the use case.
type Option func(*tripSearchUseCase)

// WithExtractor installs the parameter extraction collaborator used by
// Resolve. Without one, Resolve returns ErrExtractorUnavailable.
func WithExtractor(e domain.ParameterExtractor) Option {
	return func(uc *tripSearchUseCase) { uc.extractor = e }
}

// WithClock overrides the clock used for past-date validation.
func WithClock(c timeutil.Clock) Option {
	return func(uc *tripSearchUseCase) { uc.clock = c }
}

// WithLogger sets the logger used for best-effort failure reporting.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *tripSearchUseCase) { uc.log = log }
}

// NewTripSearchUseCase creates a TripSearchUseCase with the given providers
// and configuration. If config is nil, defaults are used.
func NewTripSearchUseCase(providers Providers, config *Config, opts ...Option) TripSearchUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.GlobalTimeout > 0 {
			cfg.GlobalTimeout = config.GlobalTimeout
		}
		if config.SourceTimeout > 0 {
			cfg.SourceTimeout = config.SourceTimeout
		}
		if config.GapHours > 0 {
			cfg.GapHours = config.GapHours
		}
		if config.MinOverallRating > 0 {
			cfg.MinOverallRating = config.MinOverallRating
		}
		if config.MinLocationRating > 0 {
			cfg.MinLocationRating = config.MinLocationRating
		}
	}

	uc := &tripSearchUseCase{
		providers: providers,
		clock:     timeutil.NewRealClock(),
		cfg:       cfg,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// sourceResult holds the outcome of one upstream query.
type sourceResult struct {
	Source  string
	Flights []domain.FlightOffer
	Hotels  []domain.HotelOffer
	Error   error
}

// Search implements TripSearchUseCase.Search.
func (uc *tripSearchUseCase) Search(ctx context.Context, params domain.TripParameters) (*domain.TripSearchResult, error) {
	startTime := time.Now()

	if params.Intent == "" {
		params.Intent = domain.IntentFullTrip
	}
	if err := params.Validate(uc.clock.Now()); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GlobalTimeout)
	defer cancel()

	result := &domain.TripSearchResult{
		Parameters: params,
		Metadata: domain.TripSearchMetadata{
			Nights: params.Nights(),
		},
	}

	// Flights and hotels have no data dependency; fetch them in parallel.
	gathered, failed := uc.gatherOffers(ctx, params)
	result.Flights = gathered.flights
	result.Hotels = gathered.hotels
	result.Metadata.SourcesFailed = failed

	wanted := 0
	if params.Intent.NeedsFlights() {
		wanted++
	}
	if params.Intent.NeedsHotels() {
		wanted++
	}
	if wanted > 0 && len(failed) == wanted {
		return nil, domain.ErrAllProvidersFailed
	}

	// Activities are best-effort: a failure is recorded, never fatal.
	if params.Intent.NeedsActivities() {
		result.Activities = uc.fetchActivities(ctx, params, result)
	}

	if params.Intent == domain.IntentFullTrip {
		plan, relaxation := FindCheapestPlan(result.Flights, result.Hotels, PlanOptions{
			GapHours:          uc.cfg.GapHours,
			Nights:            result.Metadata.Nights,
			MinOverallRating:  uc.cfg.MinOverallRating,
			MinLocationRating: uc.cfg.MinLocationRating,
		})
		result.Plan = plan
		result.Metadata.QualityRelaxation = relaxation
	}

	result.Metadata.SearchTimeMs = time.Since(startTime).Milliseconds()
	return result, nil
}

// Resolve implements TripSearchUseCase.Resolve.
func (uc *tripSearchUseCase) Resolve(ctx context.Context, utterance string) (*domain.TripSearchResult, error) {
	if uc.extractor == nil {
		return nil, domain.ErrExtractorUnavailable
	}

	params, err := uc.extractor.ExtractTripParameters(ctx, utterance)
	if err != nil {
		return nil, fmt.Errorf("extract trip parameters: %w", err)
	}

	if !params.Complete {
		return nil, fmt.Errorf("%w: missing %v", domain.ErrIncompleteParameters, params.MissingFields)
	}

	return uc.Search(ctx, params)
}

// gatheredOffers aggregates the flight and hotel scatter results.
type gatheredOffers struct {
	flights []domain.FlightOffer
	hotels  []domain.HotelOffer
}

// gatherOffers runs the flight and hotel queries concurrently and collects
// their results. Returns the offers plus the names of failed sources.
func (uc *tripSearchUseCase) gatherOffers(ctx context.Context, params domain.TripParameters) (gatheredOffers, []string) {
	resultsChan := make(chan sourceResult, 2)
	var wg sync.WaitGroup

	if params.Intent.NeedsFlights() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.queryFlights(ctx, params, resultsChan)
		}()
	}

	if params.Intent.NeedsHotels() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			uc.queryHotels(ctx, params, resultsChan)
		}()
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var gathered gatheredOffers
	var failed []string
	for result := range resultsChan {
		if result.Error != nil {
			uc.log.Warn().
				Str("source", result.Source).
				Err(result.Error).
				Msg("Upstream source failed")
			failed = append(failed, result.Source)
			continue
		}
		if result.Flights != nil {
			gathered.flights = result.Flights
		}
		if result.Hotels != nil {
			gathered.hotels = result.Hotels
		}
	}

	return gathered, failed
}

// queryFlights queries the flight provider with timeout and panic recovery.
func (uc *tripSearchUseCase) queryFlights(ctx context.Context, params domain.TripParameters, results chan<- sourceResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.SourceTimeout)
	defer cancel()

	source := uc.providers.Flights.Name()
	defer func() {
		if r := recover(); r != nil {
			results <- sourceResult{Source: source, Error: fmt.Errorf("provider panic: %v", r)}
		}
	}()

	flights, err := uc.providers.Flights.SearchFlights(ctx, domain.FlightQuery{
		Origin:       params.Origin,
		Destination:  params.Destination,
		OutboundDate: params.StartDate,
		ReturnDate:   params.EndDate,
		OneWay:       params.OneWay,
	})
	if err == nil && flights == nil {
		flights = []domain.FlightOffer{}
	}

	results <- sourceResult{Source: source, Flights: flights, Error: err}
}

// queryHotels queries the hotel provider with timeout and panic recovery.
func (uc *tripSearchUseCase) queryHotels(ctx context.Context, params domain.TripParameters, results chan<- sourceResult) {
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.SourceTimeout)
	defer cancel()

	source := uc.providers.Hotels.Name()
	defer func() {
		if r := recover(); r != nil {
			results <- sourceResult{Source: source, Error: fmt.Errorf("provider panic: %v", r)}
		}
	}()

	checkOut := params.EndDate
	if checkOut == "" {
		checkOut = params.StartDate
	}
	hotels, err := uc.providers.Hotels.SearchHotels(ctx, domain.HotelQuery{
		Location:     params.HotelLocation(),
		CheckInDate:  params.StartDate,
		CheckOutDate: checkOut,
	})
	if err == nil && hotels == nil {
		hotels = []domain.HotelOffer{}
	}

	results <- sourceResult{Source: source, Hotels: hotels, Error: err}
}

// fetchActivities retrieves activities for the destination. Failures are
// appended to the result metadata and otherwise swallowed.
func (uc *tripSearchUseCase) fetchActivities(ctx context.Context, params domain.TripParameters, result *domain.TripSearchResult) []domain.ActivityOffer {
	if uc.providers.Activities == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.SourceTimeout)
	defer cancel()

	source := uc.providers.Activities.Name()
	activities, err := uc.providers.Activities.SearchActivities(ctx, domain.ActivityQuery{
		Location: params.HotelLocation(),
	})
	if err != nil {
		uc.log.Warn().
			Str("source", source).
			Err(err).
			Msg("Activity search failed, continuing without activities")
		result.Metadata.SourcesFailed = append(result.Metadata.SourcesFailed, source)
		return nil
	}
	return activities
}

// Ensure tripSearchUseCase implements TripSearchUseCase at compile time.
var _ TripSearchUseCase = (*tripSearchUseCase)(nil)
