package serpapi

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// FlightProviderName identifies the google_flights engine adapter.
const FlightProviderName = "serpapi_flights"

// Return-flight matching weights. A return on the same airline is strongly
// preferred, mismatched stop counts are penalized, and a nonstop pairing
// earns a bonus when the outbound is nonstop.
const (
	sameAirlineScore = 10
	stopsDiffPenalty = 2
	bothNonstopBonus = 5
)

// legTimeLayouts are the scheduled-time formats google_flights has been
// observed to emit, tried in order.
var legTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// FlightAdapter implements domain.FlightProvider on top of the
// google_flights engine.
type FlightAdapter struct {
	client *Client
}

// NewFlightAdapter creates a flight adapter using the shared client.
func NewFlightAdapter(client *Client) *FlightAdapter {
	return &FlightAdapter{client: client}
}

// Name returns the provider identifier.
func (a *FlightAdapter) Name() string {
	return FlightProviderName
}

// SearchFlights queries google_flights for offers. Round trips query with
// the return date attached; when the engine omits inline return legs a
// second one-way search supplies return candidates, matched to each
// outbound by airline and stop similarity. Itineraries whose legs cannot
// be parsed at all are dropped.
func (a *FlightAdapter) SearchFlights(ctx context.Context, query domain.FlightQuery) ([]domain.FlightOffer, error) {
	oneWay := query.OneWay || query.ReturnDate == ""

	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", strings.ToUpper(query.Origin))
	params.Set("arrival_id", strings.ToUpper(query.Destination))
	params.Set("outbound_date", query.OutboundDate)
	params.Set("sort_by", "2")
	params.Set("currency", "USD")
	if oneWay {
		params.Set("type", "2")
	} else {
		params.Set("type", "1")
		params.Set("return_date", query.ReturnDate)
	}

	var resp flightsResponse
	if err := a.client.search(ctx, params, &resp); err != nil {
		return nil, err
	}

	groups := append(resp.BestFlights, resp.OtherFlights...)
	offers := make([]domain.FlightOffer, 0, len(groups))
	needReturnSearch := false

	for _, group := range groups {
		offer, ok := normalizeGroup(group)
		if !ok {
			a.client.log.Debug().Str("provider", FlightProviderName).
				Msg("skipping itinerary with no legs")
			continue
		}
		if !oneWay && offer.Return == nil {
			needReturnSearch = true
		}
		offers = append(offers, offer)
	}

	// google_flights round-trip responses often omit inline return legs;
	// a separate one-way search on the reversed route fills the gap.
	if needReturnSearch {
		returns, err := a.searchReturnFlights(ctx, query)
		if err != nil {
			a.client.log.Warn().Err(err).Str("provider", FlightProviderName).
				Msg("return flight search failed, offers carry outbound legs only")
		} else {
			for i := range offers {
				if offers[i].Return == nil {
					offers[i].Return = matchReturnFlight(offers[i], returns)
				}
			}
		}
	}

	return offers, nil
}

// searchReturnFlights fetches one-way candidates for the reversed route on
// the return date.
func (a *FlightAdapter) searchReturnFlights(ctx context.Context, query domain.FlightQuery) ([]domain.ReturnFlightOffer, error) {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", strings.ToUpper(query.Destination))
	params.Set("arrival_id", strings.ToUpper(query.Origin))
	params.Set("outbound_date", query.ReturnDate)
	params.Set("type", "2")
	params.Set("sort_by", "2")
	params.Set("currency", "USD")

	var resp flightsResponse
	if err := a.client.search(ctx, params, &resp); err != nil {
		return nil, err
	}

	groups := append(resp.BestFlights, resp.OtherFlights...)
	returns := make([]domain.ReturnFlightOffer, 0, len(groups))
	for _, group := range groups {
		if len(group.Flights) == 0 {
			continue
		}
		rf := normalizeReturnLegs(group.Flights, group.TotalDuration)
		rf.Price = group.Price
		returns = append(returns, rf)
	}
	return returns, nil
}

// normalizeGroup converts a raw itinerary into a domain offer. The reported
// departure is the first leg's and the arrival is the last leg's, which is
// when the traveler actually reaches the destination. Unparseable times
// leave the corresponding field zero.
func normalizeGroup(group flightGroup) (domain.FlightOffer, bool) {
	if len(group.Flights) == 0 {
		return domain.FlightOffer{}, false
	}

	first := group.Flights[0]
	last := group.Flights[len(group.Flights)-1]

	offer := domain.FlightOffer{
		ID:              uuid.NewString(),
		Airline:         legAirline(first),
		Price:           group.Price,
		DepartureTime:   parseLegTime(first.DepartureAirport.Time),
		DepartureCode:   first.DepartureAirport.ID,
		ArrivalTime:     parseLegTime(last.ArrivalAirport.Time),
		ArrivalCode:     last.ArrivalAirport.ID,
		DurationMinutes: group.TotalDuration,
		Stops:           len(group.Flights) - 1,
		Legs:            normalizeLegs(group.Flights),
	}

	if len(group.ReturnFlights) > 0 {
		rf := normalizeReturnLegs(group.ReturnFlights, group.ReturnDuration)
		offer.Return = &rf
	}

	return offer, true
}

// normalizeLegs retains the raw legs for display.
func normalizeLegs(legs []flightLeg) []domain.FlightLeg {
	result := make([]domain.FlightLeg, 0, len(legs))
	for _, leg := range legs {
		result = append(result, domain.FlightLeg{
			Airline:       leg.Airline,
			FlightNumber:  leg.FlightNumber,
			DepartureCode: leg.DepartureAirport.ID,
			DepartureTime: leg.DepartureAirport.Time,
			ArrivalCode:   leg.ArrivalAirport.ID,
			ArrivalTime:   leg.ArrivalAirport.Time,
		})
	}
	return result
}

// normalizeReturnLegs folds return legs into a single return offer.
func normalizeReturnLegs(legs []flightLeg, durationMinutes int) domain.ReturnFlightOffer {
	first := legs[0]
	last := legs[len(legs)-1]

	return domain.ReturnFlightOffer{
		Airline:         legAirline(first),
		DepartureTime:   parseLegTime(first.DepartureAirport.Time),
		DepartureCode:   first.DepartureAirport.ID,
		ArrivalTime:     parseLegTime(last.ArrivalAirport.Time),
		ArrivalCode:     last.ArrivalAirport.ID,
		DurationMinutes: durationMinutes,
		Stops:           len(legs) - 1,
	}
}

// matchReturnFlight picks the return candidate that best pairs with the
// outbound. Ties keep the first candidate, which sorts cheapest upstream.
func matchReturnFlight(outbound domain.FlightOffer, returns []domain.ReturnFlightOffer) *domain.ReturnFlightOffer {
	if len(returns) == 0 {
		return nil
	}

	bestIdx := -1
	bestScore := 0
	for i, rf := range returns {
		score := 0
		if strings.EqualFold(rf.Airline, outbound.Airline) {
			score += sameAirlineScore
		}
		diff := rf.Stops - outbound.Stops
		if diff < 0 {
			diff = -diff
		}
		score -= diff * stopsDiffPenalty
		if outbound.Stops == 0 && rf.Stops == 0 {
			score += bothNonstopBonus
		}

		if bestIdx < 0 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	matched := returns[bestIdx]
	return &matched
}

// legAirline returns the leg's airline, defaulting when missing.
func legAirline(leg flightLeg) string {
	if leg.Airline == "" {
		return "Unknown"
	}
	return leg.Airline
}

// parseLegTime parses a scheduled leg time, returning the zero time when no
// known layout matches.
func parseLegTime(s string) time.Time {
	for _, layout := range legTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
