package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
	"github.com/trip-search/trip-search-and-optimization-system/internal/infrastructure/retry"
)

// noRetry keeps adapter tests fast and deterministic.
var noRetry = retry.Config{MaxAttempts: 1}

func newTestClient(serverURL string) *Client {
	return NewClient("test-key", serverURL, WithRetryConfig(noRetry))
}

func TestFlightAdapter_Name(t *testing.T) {
	adapter := NewFlightAdapter(NewClient("k", ""))
	assert.Equal(t, "serpapi_flights", adapter.Name())
}

func TestFlightAdapter_ImplementsInterface(t *testing.T) {
	var _ domain.FlightProvider = (*FlightAdapter)(nil)
}

func TestFlightAdapter_SearchOneWay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google_flights", r.URL.Query().Get("engine"))
		assert.Equal(t, "LAX", r.URL.Query().Get("departure_id"))
		assert.Equal(t, "NRT", r.URL.Query().Get("arrival_id"))
		assert.Equal(t, "2", r.URL.Query().Get("type"))
		assert.Empty(t, r.URL.Query().Get("return_date"))

		w.Write([]byte(`{
			"best_flights": [
				{
					"price": 650,
					"total_duration": 720,
					"flights": [
						{
							"airline": "Japan Airlines",
							"flight_number": "JL 15",
							"departure_airport": {"id": "LAX", "time": "2026-01-15 11:30"},
							"arrival_airport": {"id": "HND", "time": "2026-01-16 16:25"}
						},
						{
							"airline": "Japan Airlines",
							"flight_number": "JL 45",
							"departure_airport": {"id": "HND", "time": "2026-01-16 18:00"},
							"arrival_airport": {"id": "NRT", "time": "2026-01-16 18:30"}
						}
					]
				}
			],
			"other_flights": [
				{
					"price": 540,
					"total_duration": 900,
					"flights": [
						{
							"airline": "ZipAir",
							"departure_airport": {"id": "LAX", "time": "2026-01-15 23:55"},
							"arrival_airport": {"id": "NRT", "time": "2026-01-17 05:10"}
						}
					]
				},
				{"price": 10, "flights": []}
			]
		}`))
	}))
	defer server.Close()

	adapter := NewFlightAdapter(newTestClient(server.URL))
	offers, err := adapter.SearchFlights(context.Background(), domain.FlightQuery{
		Origin:       "lax",
		Destination:  "nrt",
		OutboundDate: "2026-01-15",
		OneWay:       true,
	})

	require.NoError(t, err)
	// The empty itinerary is dropped.
	require.Len(t, offers, 2)

	first := offers[0]
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "Japan Airlines", first.Airline)
	assert.Equal(t, float64(650), first.Price)
	assert.Equal(t, "LAX", first.DepartureCode)
	assert.Equal(t, "NRT", first.ArrivalCode)
	// Arrival comes from the LAST leg.
	assert.Equal(t, time.Date(2026, 1, 16, 18, 30, 0, 0, time.UTC), first.ArrivalTime)
	assert.Equal(t, 1, first.Stops)
	assert.Equal(t, 720, first.DurationMinutes)
	assert.Len(t, first.Legs, 2)
	assert.Nil(t, first.Return)

	second := offers[1]
	assert.Equal(t, "ZipAir", second.Airline)
	assert.Equal(t, 0, second.Stops)
}

func TestFlightAdapter_RoundTripInlineReturn(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "1", r.URL.Query().Get("type"))
		assert.Equal(t, "2026-01-22", r.URL.Query().Get("return_date"))

		w.Write([]byte(`{
			"best_flights": [
				{
					"price": 1100,
					"total_duration": 700,
					"return_duration": 650,
					"flights": [
						{
							"airline": "ANA",
							"departure_airport": {"id": "LAX", "time": "2026-01-15 10:00"},
							"arrival_airport": {"id": "NRT", "time": "2026-01-16 14:30"}
						}
					],
					"return_flights": [
						{
							"airline": "ANA",
							"departure_airport": {"id": "NRT", "time": "2026-01-22 17:00"},
							"arrival_airport": {"id": "LAX", "time": "2026-01-22 10:30"}
						}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	adapter := NewFlightAdapter(newTestClient(server.URL))
	offers, err := adapter.SearchFlights(context.Background(), domain.FlightQuery{
		Origin:       "LAX",
		Destination:  "NRT",
		OutboundDate: "2026-01-15",
		ReturnDate:   "2026-01-22",
	})

	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.NotNil(t, offers[0].Return)
	assert.Equal(t, "ANA", offers[0].Return.Airline)
	assert.Equal(t, "NRT", offers[0].Return.DepartureCode)
	assert.Equal(t, 650, offers[0].Return.DurationMinutes)
	// Inline return legs mean no second search.
	assert.Equal(t, int32(1), requests.Load())
}

func TestFlightAdapter_RoundTripSeparateReturnSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("departure_id") == "NRT" {
			// The reversed one-way search for return candidates.
			assert.Equal(t, "2", r.URL.Query().Get("type"))
			assert.Equal(t, "2026-01-22", r.URL.Query().Get("outbound_date"))
			w.Write([]byte(`{
				"best_flights": [
					{
						"price": 480,
						"total_duration": 640,
						"flights": [
							{
								"airline": "United",
								"departure_airport": {"id": "NRT", "time": "2026-01-22 16:45"},
								"arrival_airport": {"id": "LAX", "time": "2026-01-22 09:55"}
							},
							{
								"airline": "United",
								"departure_airport": {"id": "SFO", "time": "2026-01-22 11:30"},
								"arrival_airport": {"id": "LAX", "time": "2026-01-22 13:00"}
							}
						]
					},
					{
						"price": 510,
						"total_duration": 610,
						"flights": [
							{
								"airline": "Delta",
								"departure_airport": {"id": "NRT", "time": "2026-01-22 15:30"},
								"arrival_airport": {"id": "LAX", "time": "2026-01-22 08:40"}
							}
						]
					}
				]
			}`))
			return
		}

		w.Write([]byte(`{
			"best_flights": [
				{
					"price": 980,
					"total_duration": 660,
					"flights": [
						{
							"airline": "Delta",
							"departure_airport": {"id": "LAX", "time": "2026-01-15 12:00"},
							"arrival_airport": {"id": "NRT", "time": "2026-01-16 16:00"}
						}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	adapter := NewFlightAdapter(newTestClient(server.URL))
	offers, err := adapter.SearchFlights(context.Background(), domain.FlightQuery{
		Origin:       "LAX",
		Destination:  "NRT",
		OutboundDate: "2026-01-15",
		ReturnDate:   "2026-01-22",
	})

	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.NotNil(t, offers[0].Return)
	// The nonstop Delta return matches the nonstop Delta outbound despite
	// the one-stop United option being cheaper.
	assert.Equal(t, "Delta", offers[0].Return.Airline)
	assert.Equal(t, 0, offers[0].Return.Stops)
	assert.Equal(t, float64(510), offers[0].Return.Price)
}

func TestFlightAdapter_UnparseableTimesLeaveZeroArrival(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"best_flights": [
				{
					"price": 300,
					"flights": [
						{
							"airline": "Mystery Air",
							"departure_airport": {"id": "AAA", "time": "sometime"},
							"arrival_airport": {"id": "BBB", "time": "later"}
						}
					]
				}
			]
		}`))
	}))
	defer server.Close()

	adapter := NewFlightAdapter(newTestClient(server.URL))
	offers, err := adapter.SearchFlights(context.Background(), domain.FlightQuery{
		Origin: "AAA", Destination: "BBB", OutboundDate: "2026-01-15", OneWay: true,
	})

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.False(t, offers[0].HasArrival())
	// Raw leg strings survive for display.
	assert.Equal(t, "sometime", offers[0].Legs[0].DepartureTime)
}

func TestFlightAdapter_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Your searches for the month are exhausted."}`))
	}))
	defer server.Close()

	adapter := NewFlightAdapter(newTestClient(server.URL))
	offers, err := adapter.SearchFlights(context.Background(), domain.FlightQuery{
		Origin: "LAX", Destination: "NRT", OutboundDate: "2026-01-15", OneWay: true,
	})

	assert.Nil(t, offers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exhausted")
}

func TestFlightAdapter_MissingAPIKey(t *testing.T) {
	adapter := NewFlightAdapter(NewClient("", "http://localhost:1"))
	_, err := adapter.SearchFlights(context.Background(), domain.FlightQuery{
		Origin: "LAX", Destination: "NRT", OutboundDate: "2026-01-15", OneWay: true,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestFlightAdapter_ClientErrorIsNotRetried(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL,
		WithRetryConfig(retry.Config{MaxAttempts: 3, RetryIf: retry.SkipPermanent}))
	adapter := NewFlightAdapter(client)

	_, err := adapter.SearchFlights(context.Background(), domain.FlightQuery{
		Origin: "LAX", Destination: "NRT", OutboundDate: "2026-01-15", OneWay: true,
	})

	require.Error(t, err)
	assert.Equal(t, int32(1), requests.Load())
}

func TestFlightAdapter_ServerErrorIsRetried(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"best_flights": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL,
		WithRetryConfig(retry.Config{MaxAttempts: 2, RetryIf: retry.SkipPermanent}))
	adapter := NewFlightAdapter(client)

	offers, err := adapter.SearchFlights(context.Background(), domain.FlightQuery{
		Origin: "LAX", Destination: "NRT", OutboundDate: "2026-01-15", OneWay: true,
	})

	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.Equal(t, int32(2), requests.Load())
}
