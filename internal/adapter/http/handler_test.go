package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/trip-search-and-optimization-system/internal/adapter/http/response"
	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
	"github.com/trip-search/trip-search-and-optimization-system/internal/usecase"
)

// mockUseCase is a mock implementation of TripSearchUseCase for testing.
type mockUseCase struct {
	searchFunc  func(ctx context.Context, params domain.TripParameters) (*domain.TripSearchResult, error)
	resolveFunc func(ctx context.Context, utterance string) (*domain.TripSearchResult, error)
}

func (m *mockUseCase) Search(ctx context.Context, params domain.TripParameters) (*domain.TripSearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, params)
	}
	return &domain.TripSearchResult{
		Parameters: params,
		Metadata: domain.TripSearchMetadata{
			Nights:       params.Nights(),
			SearchTimeMs: 100,
		},
	}, nil
}

func (m *mockUseCase) Resolve(ctx context.Context, utterance string) (*domain.TripSearchResult, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, utterance)
	}
	return &domain.TripSearchResult{}, nil
}

// setupTestHandler creates a test Echo instance and TripHandler.
func setupTestHandler(uc usecase.TripSearchUseCase) (*echo.Echo, *TripHandler) {
	e := echo.New()
	h := NewTripHandler(uc)
	RegisterRoutes(e, h)
	return e, h
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// getFutureDate returns a date string n days from now.
func getFutureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

// validSearchBody builds a complete round-trip search request.
func validSearchBody() SearchTripsRequest {
	return SearchTripsRequest{
		Origin:          "LAX",
		Destination:     "NRT",
		DestinationCity: "Tokyo",
		StartDate:       getFutureDate(30),
		EndDate:         getFutureDate(37),
	}
}

func TestSearchTrips_Success(t *testing.T) {
	rating := 4.5
	result := &domain.TripSearchResult{
		Parameters: domain.TripParameters{
			Intent:      domain.IntentFullTrip,
			Origin:      "LAX",
			Destination: "NRT",
			StartDate:   "2026-01-15",
			EndDate:     "2026-01-22",
		},
		Plan: &domain.TravelPlan{
			Flight: domain.FlightOffer{
				ID:          "f1",
				Airline:     "Budget Air",
				Price:       500,
				ArrivalTime: time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC),
			},
			Hotel: domain.HotelOffer{
				ID:            "h1",
				Name:          "Tokyo Stay",
				Price:         100,
				OverallRating: &rating,
			},
			TotalPrice: 1200,
			Nights:     7,
			GapHours:   2,
		},
		Flights: []domain.FlightOffer{{ID: "f1", Airline: "Budget Air", Price: 500}},
		Hotels:  []domain.HotelOffer{{ID: "h1", Name: "Tokyo Stay", Price: 100}},
		Metadata: domain.TripSearchMetadata{
			Nights:            7,
			QualityRelaxation: domain.RelaxationNone,
			SearchTimeMs:      250,
		},
	}

	uc := &mockUseCase{
		searchFunc: func(ctx context.Context, params domain.TripParameters) (*domain.TripSearchResult, error) {
			assert.Equal(t, domain.IntentFullTrip, params.Intent)
			assert.Equal(t, "LAX", params.Origin)
			assert.True(t, params.Complete)
			return result, nil
		},
	}
	e, _ := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/trips/search", validSearchBody())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "Budget Air", resp.Plan.Flight.Airline)
	assert.Equal(t, "Tokyo Stay", resp.Plan.Hotel.Name)
	assert.Equal(t, float64(1200), resp.Plan.TotalPrice)
	assert.Equal(t, "2026-01-15 18:30", resp.Plan.Flight.ArrivalTime)
	assert.Equal(t, "none", resp.Metadata.QualityRelaxation)
	assert.Len(t, resp.Flights, 1)
	assert.Len(t, resp.Hotels, 1)
}

func TestSearchTrips_NoPlanStillSucceeds(t *testing.T) {
	uc := &mockUseCase{
		searchFunc: func(ctx context.Context, params domain.TripParameters) (*domain.TripSearchResult, error) {
			return &domain.TripSearchResult{
				Parameters: params,
				Flights:    []domain.FlightOffer{{ID: "f1"}},
				Hotels:     []domain.HotelOffer{{ID: "h1"}},
				Metadata:   domain.TripSearchMetadata{Nights: 7},
			}, nil
		},
	}
	e, _ := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/trips/search", validSearchBody())

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Plan)
	assert.Len(t, resp.Flights, 1)
}

func TestSearchTrips_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SearchTripsRequest)
		field  string
	}{
		{
			name:   "missing origin for full trip",
			mutate: func(r *SearchTripsRequest) { r.Origin = "" },
			field:  "origin",
		},
		{
			name:   "lowercase origin is normalized, bad code rejected",
			mutate: func(r *SearchTripsRequest) { r.Origin = "LAXX" },
			field:  "origin",
		},
		{
			name:   "missing destination",
			mutate: func(r *SearchTripsRequest) { r.Destination = ""; r.DestinationCity = "" },
			field:  "destination",
		},
		{
			name:   "same origin and destination",
			mutate: func(r *SearchTripsRequest) { r.Destination = "LAX" },
			field:  "destination",
		},
		{
			name:   "missing start date",
			mutate: func(r *SearchTripsRequest) { r.StartDate = "" },
			field:  "startDate",
		},
		{
			name:   "malformed start date",
			mutate: func(r *SearchTripsRequest) { r.StartDate = "15-01-2026" },
			field:  "startDate",
		},
		{
			name:   "malformed end date",
			mutate: func(r *SearchTripsRequest) { r.EndDate = "2026-13-45" },
			field:  "endDate",
		},
		{
			name:   "unknown intent",
			mutate: func(r *SearchTripsRequest) { r.Intent = "everything" },
			field:  "intent",
		},
	}

	e, _ := setupTestHandler(&mockUseCase{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validSearchBody()
			tt.mutate(&body)

			rec := makeRequest(e, http.MethodPost, "/api/v1/trips/search", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, response.CodeValidationError, errResp.Code)
			assert.Contains(t, errResp.Details, tt.field)
		})
	}
}

func TestSearchTrips_HotelOnlyWithoutOrigin(t *testing.T) {
	uc := &mockUseCase{
		searchFunc: func(ctx context.Context, params domain.TripParameters) (*domain.TripSearchResult, error) {
			assert.Equal(t, domain.IntentHotelOnly, params.Intent)
			return &domain.TripSearchResult{Parameters: params}, nil
		},
	}
	e, _ := setupTestHandler(uc)

	body := SearchTripsRequest{
		Intent:          "hotel-only",
		DestinationCity: "Tokyo",
		StartDate:       getFutureDate(30),
		EndDate:         getFutureDate(37),
	}
	rec := makeRequest(e, http.MethodPost, "/api/v1/trips/search", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchTrips_MalformedBody(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/search",
		bytes.NewBufferString(`{"origin": 123}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, response.CodeInvalidRequest, errResp.Code)
}

func TestSearchTrips_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "all providers failed maps to 503",
			err:        domain.ErrAllProvidersFailed,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   response.CodeServiceUnavailable,
		},
		{
			name:       "deadline exceeded maps to 504",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "cancellation maps to 504",
			err:        context.Canceled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "domain validation maps to 400",
			err:        domain.ErrInvalidRequest,
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeValidationError,
		},
		{
			name:       "unexpected error maps to 500",
			err:        errors.New("database exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{
				searchFunc: func(ctx context.Context, params domain.TripParameters) (*domain.TripSearchResult, error) {
					return nil, tt.err
				},
			}
			e, _ := setupTestHandler(uc)

			rec := makeRequest(e, http.MethodPost, "/api/v1/trips/search", validSearchBody())

			assert.Equal(t, tt.wantStatus, rec.Code)

			var errResp response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantCode, errResp.Code)
		})
	}
}

func TestResolveTrip_Success(t *testing.T) {
	uc := &mockUseCase{
		resolveFunc: func(ctx context.Context, utterance string) (*domain.TripSearchResult, error) {
			assert.Equal(t, "cheapest trip LAX to Tokyo Jan 15-22", utterance)
			return &domain.TripSearchResult{
				Parameters: domain.TripParameters{
					Intent: domain.IntentFullTrip,
					Origin: "LAX",
				},
				Metadata: domain.TripSearchMetadata{Nights: 7},
			}, nil
		},
	}
	e, _ := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/trips/resolve",
		ResolveTripRequest{Query: "cheapest trip LAX to Tokyo Jan 15-22"})

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "LAX", resp.Parameters.Origin)
}

func TestResolveTrip_EmptyQuery(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/trips/resolve",
		ResolveTripRequest{Query: "   "})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Contains(t, errResp.Details, "query")
}

func TestResolveTrip_IncompleteParameters(t *testing.T) {
	uc := &mockUseCase{
		resolveFunc: func(ctx context.Context, utterance string) (*domain.TripSearchResult, error) {
			return nil, domain.ErrIncompleteParameters
		},
	}
	e, _ := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/trips/resolve",
		ResolveTripRequest{Query: "I want to go somewhere"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, response.CodeIncompleteParameters, errResp.Code)
}

func TestResolveTrip_ExtractorUnavailable(t *testing.T) {
	uc := &mockUseCase{
		resolveFunc: func(ctx context.Context, utterance string) (*domain.TripSearchResult, error) {
			return nil, domain.ErrExtractorUnavailable
		},
	}
	e, _ := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/trips/resolve",
		ResolveTripRequest{Query: "anywhere warm"})

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var errResp response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, response.MsgExtractorUnavailable, errResp.Message)
}

func TestHealth(t *testing.T) {
	e, _ := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}
