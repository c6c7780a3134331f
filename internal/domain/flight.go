// Package domain contains the core business entities and rules for the trip search system.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import "time"

// FlightOffer represents a single flight option returned by a data provider.
// For multi-leg itineraries the departure refers to the first leg and the
// arrival refers to the last leg, which is the instant the traveler actually
// reaches the destination.
type FlightOffer struct {
	// ID is a unique identifier for this offer (generated internally)
	ID string `json:"id"`

	// Airline is the primary operating airline name
	Airline string `json:"airline"`

	// Price is the provider-quoted total price (round-trip or one-way,
	// depending on the search mode), currency-agnostic
	Price float64 `json:"price"`

	// DepartureTime is the first leg's scheduled departure
	DepartureTime time.Time `json:"departureTime"`

	// DepartureCode is the IATA code of the departure airport
	DepartureCode string `json:"departureCode,omitempty"`

	// ArrivalTime is the LAST leg's scheduled arrival. A zero value means
	// the provider data could not be parsed; such offers are skipped by
	// the optimizer because they cannot be timing-validated.
	ArrivalTime time.Time `json:"arrivalTime"`

	// ArrivalCode is the IATA code of the final arrival airport
	ArrivalCode string `json:"arrivalCode,omitempty"`

	// DurationMinutes is the total travel duration in minutes
	DurationMinutes int `json:"durationMinutes,omitempty"`

	// Stops is the number of connections (legs - 1)
	Stops int `json:"stops"`

	// Legs is the raw leg list, retained for display only
	Legs []FlightLeg `json:"legs,omitempty"`

	// Return holds the matched return flight for round trips, nil for one-way
	Return *ReturnFlightOffer `json:"returnFlight,omitempty"`
}

// FlightLeg represents a single segment of a flight itinerary.
// Times are kept as raw provider strings since legs are display-only.
type FlightLeg struct {
	// Airline is the operating airline of this leg
	Airline string `json:"airline,omitempty"`

	// FlightNumber is the airline's flight number for this leg
	FlightNumber string `json:"flightNumber,omitempty"`

	// DepartureCode is the IATA code of the leg's departure airport
	DepartureCode string `json:"departureCode"`

	// DepartureTime is the raw departure time string from the provider
	DepartureTime string `json:"departureTime"`

	// ArrivalCode is the IATA code of the leg's arrival airport
	ArrivalCode string `json:"arrivalCode"`

	// ArrivalTime is the raw arrival time string from the provider
	ArrivalTime string `json:"arrivalTime"`
}

// ReturnFlightOffer describes the return portion of a round trip.
// It mirrors the outbound shape without nesting further returns.
type ReturnFlightOffer struct {
	// Airline is the primary operating airline name (may differ from outbound)
	Airline string `json:"airline"`

	// Price is the one-way price of the return flight, for reference only;
	// the outbound offer's Price already covers the round trip
	Price float64 `json:"price,omitempty"`

	// DepartureTime is the return flight's departure instant
	DepartureTime time.Time `json:"departureTime"`

	// DepartureCode is the IATA code of the return departure airport
	DepartureCode string `json:"departureCode,omitempty"`

	// ArrivalTime is the return flight's final arrival instant
	ArrivalTime time.Time `json:"arrivalTime"`

	// ArrivalCode is the IATA code of the return arrival airport
	ArrivalCode string `json:"arrivalCode,omitempty"`

	// DurationMinutes is the return flight duration in minutes
	DurationMinutes int `json:"durationMinutes,omitempty"`

	// Stops is the number of connections on the return flight
	Stops int `json:"stops"`
}

// HasArrival reports whether the offer carries a usable arrival instant.
// Offers without one cannot be timing-validated against hotel check-in.
func (f *FlightOffer) HasArrival() bool {
	return !f.ArrivalTime.IsZero()
}
