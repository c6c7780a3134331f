// Package http provides the HTTP handler layer for the trip search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-search/trip-search-and-optimization-system/internal/adapter/http/response"
	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
	"github.com/trip-search/trip-search-and-optimization-system/internal/usecase"
)

// TripHandler handles HTTP requests for trip-related endpoints.
type TripHandler struct {
	useCase usecase.TripSearchUseCase
}

// NewTripHandler creates a new TripHandler with the given use case.
func NewTripHandler(uc usecase.TripSearchUseCase) *TripHandler {
	return &TripHandler{
		useCase: uc,
	}
}

// SearchTrips handles POST /api/v1/trips/search
//
// @Summary Search for a trip
// @Description Search flights, hotels and activities and compute the cheapest timing-valid plan
// @Tags trips
// @Accept json
// @Produce json
// @Param request body SearchTripsRequest true "Trip parameters"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/trips/search [post]
func (h *TripHandler) SearchTrips(c echo.Context) error {
	var req SearchTripsRequest

	// Bind request body
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	// Validate request
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	// Call use case with request context
	result, err := h.useCase.Search(c.Request().Context(), ToDomainParameters(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	// Return successful response
	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// ResolveTrip handles POST /api/v1/trips/resolve
//
// @Summary Resolve a free-text trip request
// @Description Extract trip parameters from a natural-language query and run the search
// @Tags trips
// @Accept json
// @Produce json
// @Param request body ResolveTripRequest true "Free-text trip request"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error or incomplete parameters"
// @Failure 503 {object} response.ErrorDetail "Service unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/trips/resolve [post]
func (h *TripHandler) ResolveTrip(c echo.Context) error {
	var req ResolveTripRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Resolve(c.Request().Context(), req.Query)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.SearchResults(c, ToSearchResponseDTO(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	// Check for all providers failed
	if errors.Is(err, domain.ErrAllProvidersFailed) {
		return response.ServiceUnavailable(c)
	}

	// No extraction collaborator is configured
	if errors.Is(err, domain.ErrExtractorUnavailable) {
		return response.ExtractorUnavailable(c)
	}

	// The extraction collaborator could not recover all required fields
	if errors.Is(err, domain.ErrIncompleteParameters) {
		return response.IncompleteParameters(c, err.Error())
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c)
}
