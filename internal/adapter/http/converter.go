// Package http provides the HTTP handler layer for the trip search API.
package http

import (
	"strings"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// ToDomainParameters converts a SearchTripsRequest to domain.TripParameters.
// Structured API requests are complete by construction; only free-text
// resolution can yield incomplete parameters.
func ToDomainParameters(req *SearchTripsRequest) domain.TripParameters {
	return domain.TripParameters{
		Intent:          domain.ParseSearchIntent(strings.ToLower(req.Intent)),
		Origin:          strings.ToUpper(req.Origin),
		Destination:     strings.ToUpper(req.Destination),
		DestinationCity: req.DestinationCity,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		OneWay:          req.OneWay,
		Complete:        true,
	}
}
