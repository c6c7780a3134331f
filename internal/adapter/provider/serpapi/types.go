package serpapi

import (
	"encoding/json"
	"strconv"
	"strings"
)

// flightsResponse mirrors the google_flights engine payload. SerpAPI splits
// results into recommended and remaining groups; both carry the same shape.
type flightsResponse struct {
	BestFlights  []flightGroup `json:"best_flights"`
	OtherFlights []flightGroup `json:"other_flights"`
}

// flightGroup is one bookable itinerary. Legs run in travel order, so the
// first leg's departure and the last leg's arrival bracket the journey.
type flightGroup struct {
	Flights        []flightLeg `json:"flights"`
	Price          float64     `json:"price"`
	TotalDuration  int         `json:"total_duration"`
	ReturnDuration int         `json:"return_duration"`
	ReturnFlights  []flightLeg `json:"return_flights"`
}

// flightLeg is a single segment of an itinerary.
type flightLeg struct {
	DepartureAirport airportPoint `json:"departure_airport"`
	ArrivalAirport   airportPoint `json:"arrival_airport"`
	Airline          string       `json:"airline"`
	FlightNumber     string       `json:"flight_number"`
}

// airportPoint is an airport reference with its scheduled local time.
type airportPoint struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Time string `json:"time"`
}

// hotelsResponse mirrors the google_hotels engine payload.
type hotelsResponse struct {
	Properties []hotelProperty `json:"properties"`
}

// hotelProperty is one hotel listing.
type hotelProperty struct {
	Name                string       `json:"name"`
	RatePerNight        rateInfo     `json:"rate_per_night"`
	TotalRate           rateInfo     `json:"total_rate"`
	OverallRating       *float64     `json:"overall_rating"`
	LocationRating      *float64     `json:"location_rating"`
	Ratings             []ratingItem `json:"ratings"`
	ExtractedHotelClass int          `json:"extracted_hotel_class"`
	CheckInTime         string       `json:"check_in_time"`
	Amenities           []string     `json:"amenities"`
}

// rateInfo carries a price quote.
type rateInfo struct {
	Lowest          flexPrice `json:"lowest"`
	ExtractedLowest float64   `json:"extracted_lowest"`
}

// amount returns the usable price from the quote, preferring the numeric
// extracted value over the display string.
func (r rateInfo) amount() float64 {
	if r.ExtractedLowest > 0 {
		return r.ExtractedLowest
	}
	return float64(r.Lowest)
}

// ratingItem is one entry of the per-category ratings breakdown.
type ratingItem struct {
	Name   string   `json:"name"`
	Rating *float64 `json:"rating"`
}

// localResponse mirrors the google_local engine payload.
type localResponse struct {
	LocalResults []localPlace `json:"local_results"`
}

// localPlace is one place listing from the local results.
type localPlace struct {
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating"`
	Reviews     int      `json:"reviews"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Snippet     string   `json:"snippet"`
	Price       string   `json:"price"`
}

// flexPrice decodes a price that SerpAPI returns either as a JSON number or
// as a display string such as "$1,234".
type flexPrice float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *flexPrice) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*p = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, "$", ""), ",", ""))
		if s == "" {
			*p = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// Unrecognized price strings degrade to zero instead of
			// failing the whole listing.
			*p = 0
			return nil
		}
		*p = flexPrice(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = flexPrice(v)
	return nil
}
