// Package mock provides test doubles for the trip search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// FlightSource is a configurable mock implementation of domain.FlightProvider.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and partial failures.
type FlightSource struct {
	name      string
	offers    []domain.FlightOffer
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewFlightSource creates a new mock flight source with the given name.
// The source is configured using the builder pattern methods.
func NewFlightSource(name string) *FlightSource {
	return &FlightSource{name: name}
}

// WithOffers configures the source to return the given flight offers.
func (s *FlightSource) WithOffers(offers []domain.FlightOffer) *FlightSource {
	s.offers = offers
	return s
}

// WithError configures the source to return the given error.
func (s *FlightSource) WithError(err error) *FlightSource {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *FlightSource) WithDelay(d time.Duration) *FlightSource {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *FlightSource) Name() string {
	return s.name
}

// SearchFlights implements domain.FlightProvider.SearchFlights.
// It respects context cancellation, applies configured delay,
// and returns configured offers or error.
func (s *FlightSource) SearchFlights(ctx context.Context, query domain.FlightQuery) ([]domain.FlightOffer, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.offers, nil
}

// CallCount returns the number of times SearchFlights was called.
func (s *FlightSource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// HotelSource is a configurable mock implementation of domain.HotelProvider.
type HotelSource struct {
	name      string
	offers    []domain.HotelOffer
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewHotelSource creates a new mock hotel source with the given name.
func NewHotelSource(name string) *HotelSource {
	return &HotelSource{name: name}
}

// WithOffers configures the source to return the given hotel offers.
func (s *HotelSource) WithOffers(offers []domain.HotelOffer) *HotelSource {
	s.offers = offers
	return s
}

// WithError configures the source to return the given error.
func (s *HotelSource) WithError(err error) *HotelSource {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
func (s *HotelSource) WithDelay(d time.Duration) *HotelSource {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *HotelSource) Name() string {
	return s.name
}

// SearchHotels implements domain.HotelProvider.SearchHotels.
func (s *HotelSource) SearchHotels(ctx context.Context, query domain.HotelQuery) ([]domain.HotelOffer, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.offers, nil
}

// CallCount returns the number of times SearchHotels was called.
func (s *HotelSource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// ActivitySource is a configurable mock implementation of domain.ActivityProvider.
type ActivitySource struct {
	name      string
	offers    []domain.ActivityOffer
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewActivitySource creates a new mock activity source with the given name.
func NewActivitySource(name string) *ActivitySource {
	return &ActivitySource{name: name}
}

// WithOffers configures the source to return the given activity offers.
func (s *ActivitySource) WithOffers(offers []domain.ActivityOffer) *ActivitySource {
	s.offers = offers
	return s
}

// WithError configures the source to return the given error.
func (s *ActivitySource) WithError(err error) *ActivitySource {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
func (s *ActivitySource) WithDelay(d time.Duration) *ActivitySource {
	s.delay = d
	return s
}

// Name returns the source's unique identifier.
func (s *ActivitySource) Name() string {
	return s.name
}

// SearchActivities implements domain.ActivityProvider.SearchActivities.
func (s *ActivitySource) SearchActivities(ctx context.Context, query domain.ActivityQuery) ([]domain.ActivityOffer, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.offers, nil
}

// CallCount returns the number of times SearchActivities was called.
func (s *ActivitySource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Extractor is a configurable mock implementation of domain.ParameterExtractor.
type Extractor struct {
	params domain.TripParameters
	err    error
}

// NewExtractor creates a mock extractor returning the given parameters.
func NewExtractor(params domain.TripParameters) *Extractor {
	return &Extractor{params: params}
}

// WithError configures the extractor to return the given error.
func (e *Extractor) WithError(err error) *Extractor {
	e.err = err
	return e
}

// ExtractTripParameters implements domain.ParameterExtractor.
func (e *Extractor) ExtractTripParameters(ctx context.Context, utterance string) (domain.TripParameters, error) {
	if e.err != nil {
		return domain.TripParameters{}, e.err
	}
	return e.params, nil
}

// wait sleeps for the configured delay while respecting context cancellation.
func wait(ctx context.Context, delay time.Duration) error {
	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return ctx.Err()
}

// Compile-time interface checks.
var (
	_ domain.FlightProvider     = (*FlightSource)(nil)
	_ domain.HotelProvider      = (*HotelSource)(nil)
	_ domain.ActivityProvider   = (*ActivitySource)(nil)
	_ domain.ParameterExtractor = (*Extractor)(nil)
)

// SampleFlightOffers returns flight offers with all required fields populated.
// Offers arrive in ascending price order with arrivals spaced two hours apart,
// starting at 10:00 on the given date.
func SampleFlightOffers(date string, count int) []domain.FlightOffer {
	day, _ := time.Parse("2006-01-02", date)
	base := time.Date(day.Year(), day.Month(), day.Day(), 10, 0, 0, 0, time.UTC)

	airlines := []string{"United", "Delta", "ANA", "JAL"}
	offers := make([]domain.FlightOffer, count)
	for i := 0; i < count; i++ {
		arrival := base.Add(time.Duration(i*2) * time.Hour)
		offers[i] = domain.FlightOffer{
			ID:            "flight-" + itoa(i+1),
			Airline:       airlines[i%len(airlines)],
			Price:         450 + float64(i*50),
			DepartureTime: arrival.Add(-11 * time.Hour),
			DepartureCode: "LAX",
			ArrivalTime:   arrival,
			ArrivalCode:   "NRT",
			Stops:         i % 2,
		}
	}
	return offers
}

// SampleHotelOffers returns hotel offers that pass the strict quality filter.
// Check-in time is the industry-standard 15:00 and prices ascend in steps
// of 40 from the given base rate.
func SampleHotelOffers(basePrice float64, count int) []domain.HotelOffer {
	names := []string{"Grand Plaza", "Harbor View", "City Central", "Park Residence"}
	offers := make([]domain.HotelOffer, count)
	for i := 0; i < count; i++ {
		overall := 4.2
		location := 4.5
		offers[i] = domain.HotelOffer{
			ID:             "hotel-" + itoa(i+1),
			Name:           names[i%len(names)],
			Price:          basePrice + float64(i*40),
			OverallRating:  &overall,
			LocationRating: &location,
			HotelClass:     4,
			CheckIn:        domain.CheckInPolicy{Time: "15:00"},
		}
	}
	return offers
}

// SampleActivityOffers returns display-ready activity offers.
func SampleActivityOffers(count int) []domain.ActivityOffer {
	names := []string{"National Museum", "Riverside Park", "Old Town Walking Tour", "Observation Deck"}
	types := []string{"Museum", "Park", "Tour", "Landmark"}
	offers := make([]domain.ActivityOffer, count)
	for i := 0; i < count; i++ {
		rating := 4.4
		offers[i] = domain.ActivityOffer{
			ID:      "activity-" + itoa(i+1),
			Name:    names[i%len(names)],
			Rating:  &rating,
			Reviews: 1200 + i*300,
			Type:    types[i%len(types)],
		}
	}
	return offers
}

// itoa converts a small non-negative integer to string without strconv.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
