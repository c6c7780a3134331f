package http

import (
	"time"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// SearchResponseDTO is the data transfer object for trip search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	Parameters ParametersDTO `json:"parameters"`
	Plan       *PlanDTO      `json:"plan,omitempty"`
	Flights    []FlightDTO   `json:"flights,omitempty"`
	Hotels     []HotelDTO    `json:"hotels,omitempty"`
	Activities []ActivityDTO `json:"activities,omitempty"`
	Metadata   MetadataDTO   `json:"metadata"`
}

// ParametersDTO echoes the resolved trip parameters in the response.
type ParametersDTO struct {
	Intent          string `json:"intent"`
	Origin          string `json:"origin,omitempty"`
	Destination     string `json:"destination,omitempty"`
	DestinationCity string `json:"destination_city,omitempty"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date,omitempty"`
	OneWay          bool   `json:"one_way,omitempty"`
}

// PlanDTO is the optimized flight+hotel bundle.
type PlanDTO struct {
	Flight     FlightDTO `json:"flight"`
	Hotel      HotelDTO  `json:"hotel"`
	TotalPrice float64   `json:"total_price"`
	Nights     int       `json:"nights"`
	GapHours   int       `json:"gap_hours"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	Nights            int      `json:"nights"`
	QualityRelaxation string   `json:"quality_relaxation,omitempty"`
	SourcesFailed     []string `json:"sources_failed,omitempty"`
	SearchTimeMs      int64    `json:"search_time_ms"`
}

// FlightDTO is the data transfer object for flight offers.
type FlightDTO struct {
	ID              string           `json:"id"`
	Airline         string           `json:"airline"`
	Price           float64          `json:"price"`
	DepartureTime   string           `json:"departure_time,omitempty"`
	DepartureCode   string           `json:"departure_code,omitempty"`
	ArrivalTime     string           `json:"arrival_time,omitempty"`
	ArrivalCode     string           `json:"arrival_code,omitempty"`
	DurationMinutes int              `json:"duration_minutes,omitempty"`
	Stops           int              `json:"stops"`
	Legs            []FlightLegDTO   `json:"legs,omitempty"`
	ReturnFlight    *ReturnFlightDTO `json:"return_flight,omitempty"`
}

// FlightLegDTO is a single segment of an itinerary.
type FlightLegDTO struct {
	Airline       string `json:"airline,omitempty"`
	FlightNumber  string `json:"flight_number,omitempty"`
	DepartureCode string `json:"departure_code"`
	DepartureTime string `json:"departure_time"`
	ArrivalCode   string `json:"arrival_code"`
	ArrivalTime   string `json:"arrival_time"`
}

// ReturnFlightDTO describes the matched return flight of a round trip.
type ReturnFlightDTO struct {
	Airline         string  `json:"airline"`
	Price           float64 `json:"price,omitempty"`
	DepartureTime   string  `json:"departure_time,omitempty"`
	DepartureCode   string  `json:"departure_code,omitempty"`
	ArrivalTime     string  `json:"arrival_time,omitempty"`
	ArrivalCode     string  `json:"arrival_code,omitempty"`
	DurationMinutes int     `json:"duration_minutes,omitempty"`
	Stops           int     `json:"stops"`
}

// HotelDTO is the data transfer object for hotel offers.
type HotelDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	OverallRating  *float64 `json:"overall_rating,omitempty"`
	LocationRating *float64 `json:"location_rating,omitempty"`
	HotelClass     int      `json:"hotel_class,omitempty"`
	CheckInTime    string   `json:"check_in_time,omitempty"`
	CheckInDate    string   `json:"check_in_date,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
}

// ActivityDTO is the data transfer object for activity offers.
type ActivityDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Reviews     int      `json:"reviews,omitempty"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	PriceLevel  string   `json:"price_level,omitempty"`
}

// ToSearchResponseDTO converts a domain search result to the response DTO.
func ToSearchResponseDTO(result *domain.TripSearchResult) *SearchResponseDTO {
	dto := &SearchResponseDTO{
		Parameters: ParametersDTO{
			Intent:          string(result.Parameters.Intent),
			Origin:          result.Parameters.Origin,
			Destination:     result.Parameters.Destination,
			DestinationCity: result.Parameters.DestinationCity,
			StartDate:       result.Parameters.StartDate,
			EndDate:         result.Parameters.EndDate,
			OneWay:          result.Parameters.OneWay,
		},
		Metadata: MetadataDTO{
			Nights:            result.Metadata.Nights,
			QualityRelaxation: string(result.Metadata.QualityRelaxation),
			SourcesFailed:     result.Metadata.SourcesFailed,
			SearchTimeMs:      result.Metadata.SearchTimeMs,
		},
	}

	if result.Plan != nil {
		dto.Plan = &PlanDTO{
			Flight:     toFlightDTO(result.Plan.Flight),
			Hotel:      toHotelDTO(result.Plan.Hotel),
			TotalPrice: result.Plan.TotalPrice,
			Nights:     result.Plan.Nights,
			GapHours:   result.Plan.GapHours,
		}
	}

	for _, f := range result.Flights {
		dto.Flights = append(dto.Flights, toFlightDTO(f))
	}
	for _, h := range result.Hotels {
		dto.Hotels = append(dto.Hotels, toHotelDTO(h))
	}
	for _, a := range result.Activities {
		dto.Activities = append(dto.Activities, toActivityDTO(a))
	}

	return dto
}

// toFlightDTO converts a domain flight offer.
func toFlightDTO(f domain.FlightOffer) FlightDTO {
	dto := FlightDTO{
		ID:              f.ID,
		Airline:         f.Airline,
		Price:           f.Price,
		DepartureTime:   formatTime(f.DepartureTime),
		DepartureCode:   f.DepartureCode,
		ArrivalTime:     formatTime(f.ArrivalTime),
		ArrivalCode:     f.ArrivalCode,
		DurationMinutes: f.DurationMinutes,
		Stops:           f.Stops,
	}

	for _, leg := range f.Legs {
		dto.Legs = append(dto.Legs, FlightLegDTO{
			Airline:       leg.Airline,
			FlightNumber:  leg.FlightNumber,
			DepartureCode: leg.DepartureCode,
			DepartureTime: leg.DepartureTime,
			ArrivalCode:   leg.ArrivalCode,
			ArrivalTime:   leg.ArrivalTime,
		})
	}

	if f.Return != nil {
		dto.ReturnFlight = &ReturnFlightDTO{
			Airline:         f.Return.Airline,
			Price:           f.Return.Price,
			DepartureTime:   formatTime(f.Return.DepartureTime),
			DepartureCode:   f.Return.DepartureCode,
			ArrivalTime:     formatTime(f.Return.ArrivalTime),
			ArrivalCode:     f.Return.ArrivalCode,
			DurationMinutes: f.Return.DurationMinutes,
			Stops:           f.Return.Stops,
		}
	}

	return dto
}

// toHotelDTO converts a domain hotel offer.
func toHotelDTO(h domain.HotelOffer) HotelDTO {
	return HotelDTO{
		ID:             h.ID,
		Name:           h.Name,
		Price:          h.Price,
		OverallRating:  h.OverallRating,
		LocationRating: h.LocationRating,
		HotelClass:     h.HotelClass,
		CheckInTime:    h.CheckIn.Time,
		CheckInDate:    h.CheckIn.Date,
		Amenities:      h.Amenities,
	}
}

// toActivityDTO converts a domain activity offer.
func toActivityDTO(a domain.ActivityOffer) ActivityDTO {
	return ActivityDTO{
		ID:          a.ID,
		Name:        a.Name,
		Address:     a.Address,
		Rating:      a.Rating,
		Reviews:     a.Reviews,
		Type:        a.Type,
		Description: a.Description,
		PriceLevel:  a.PriceLevel,
	}
}

// formatTime renders a parsed provider time, empty when unknown.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
