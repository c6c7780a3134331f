// Package integration provides helpers and integration tests for the trip search system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, use cases, and mock providers.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-search/trip-search-and-optimization-system/internal/adapter/http"
	"github.com/trip-search/trip-search-and-optimization-system/internal/adapter/http/response"
	"github.com/trip-search/trip-search-and-optimization-system/internal/usecase"
	"github.com/trip-search/trip-search-and-optimization-system/test/testutil"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.TripHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.TripSearchUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewTripHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a trip search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/search",
		Body:   body,
	})
}

// ResolveRequest posts a free-text resolve request with the given body.
func (ts *TestServer) ResolveRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/trips/resolve",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResponse parses a successful response body into the search DTO.
func (r *Response) ParseSearchResponse() (*httpAdapter.SearchResponseDTO, error) {
	var dto httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}

// ParseError parses a failure response body into the error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// SearchRequestBody is a helper struct for building search request bodies.
type SearchRequestBody struct {
	Intent          string `json:"intent,omitempty"`
	Origin          string `json:"origin,omitempty"`
	Destination     string `json:"destination,omitempty"`
	DestinationCity string `json:"destinationCity,omitempty"`
	StartDate       string `json:"startDate,omitempty"`
	EndDate         string `json:"endDate,omitempty"`
	OneWay          bool   `json:"oneWay,omitempty"`
}

// DefaultSearchRequest returns a valid full-trip request body.
// Uses dates in the future to avoid past date validation errors.
func DefaultSearchRequest() SearchRequestBody {
	return SearchRequestBody{
		Origin:          "LAX",
		Destination:     "NRT",
		DestinationCity: "Tokyo",
		StartDate:       testutil.FutureDate(30),
		EndDate:         testutil.FutureDate(37),
	}
}

// TripDates returns the start and end date used by DefaultSearchRequest.
func TripDates() (string, string) {
	return testutil.FutureDate(30), testutil.FutureDate(37)
}

// FastTimeouts returns a use case config with short timeouts for delay tests.
func FastTimeouts() *usecase.Config {
	return &usecase.Config{
		GlobalTimeout: 500 * time.Millisecond,
		SourceTimeout: 200 * time.Millisecond,
	}
}
