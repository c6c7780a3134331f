package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() SearchTripsRequest {
	return SearchTripsRequest{
		Origin:          "LAX",
		Destination:     "NRT",
		DestinationCity: "Tokyo",
		StartDate:       "2030-01-15",
		EndDate:         "2030-01-22",
	}
}

func TestSearchTripsRequest_ValidateSuccess(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SearchTripsRequest)
	}{
		{name: "complete round trip", mutate: func(r *SearchTripsRequest) {}},
		{name: "explicit full-trip intent", mutate: func(r *SearchTripsRequest) { r.Intent = "full-trip" }},
		{name: "one-way without end date", mutate: func(r *SearchTripsRequest) { r.OneWay = true; r.EndDate = "" }},
		{name: "hotel-only without origin", mutate: func(r *SearchTripsRequest) {
			r.Intent = "hotel-only"
			r.Origin = ""
		}},
		{name: "activity-only with city only", mutate: func(r *SearchTripsRequest) {
			r.Intent = "activity-only"
			r.Origin = ""
			r.Destination = ""
		}},
		{name: "uppercase intent accepted", mutate: func(r *SearchTripsRequest) { r.Intent = "Flight-Only" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			assert.NoError(t, req.Validate())
		})
	}
}

func TestSearchTripsRequest_ValidateFailure(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SearchTripsRequest)
		field  string
	}{
		{name: "missing origin", mutate: func(r *SearchTripsRequest) { r.Origin = "" }, field: "origin"},
		{name: "origin too long", mutate: func(r *SearchTripsRequest) { r.Origin = "LAXB" }, field: "origin"},
		{name: "origin with digits", mutate: func(r *SearchTripsRequest) { r.Origin = "L4X" }, field: "origin"},
		{name: "missing destination entirely", mutate: func(r *SearchTripsRequest) {
			r.Destination = ""
			r.DestinationCity = ""
		}, field: "destination"},
		{name: "invalid destination code", mutate: func(r *SearchTripsRequest) { r.Destination = "Tokyo" }, field: "destination"},
		{name: "same origin and destination", mutate: func(r *SearchTripsRequest) { r.Destination = "lax" }, field: "destination"},
		{name: "missing start date", mutate: func(r *SearchTripsRequest) { r.StartDate = "" }, field: "startDate"},
		{name: "start date wrong format", mutate: func(r *SearchTripsRequest) { r.StartDate = "Jan 15" }, field: "startDate"},
		{name: "start date impossible", mutate: func(r *SearchTripsRequest) { r.StartDate = "2030-02-30" }, field: "startDate"},
		{name: "end date wrong format", mutate: func(r *SearchTripsRequest) { r.EndDate = "22/01/2030" }, field: "endDate"},
		{name: "unknown intent", mutate: func(r *SearchTripsRequest) { r.Intent = "cruise" }, field: "intent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var vErrs *ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Contains(t, vErrs.ToMap(), tt.field)
		})
	}
}

func TestSearchTripsRequest_NormalizesAirportCodes(t *testing.T) {
	req := baseRequest()
	req.Origin = "lax"
	req.Destination = "nrt"

	require.NoError(t, req.Validate())
	assert.Equal(t, "LAX", req.Origin)
	assert.Equal(t, "NRT", req.Destination)
}

func TestSearchTripsRequest_CollectsMultipleErrors(t *testing.T) {
	req := SearchTripsRequest{}

	err := req.Validate()
	require.Error(t, err)

	var vErrs *ValidationErrors
	require.ErrorAs(t, err, &vErrs)
	m := vErrs.ToMap()
	assert.Contains(t, m, "origin")
	assert.Contains(t, m, "destination")
	assert.Contains(t, m, "startDate")
}

func TestResolveTripRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "valid query", query: "cheapest trip from LAX to Tokyo", wantErr: false},
		{name: "empty query", query: "", wantErr: true},
		{name: "whitespace only", query: "  \t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := ResolveTripRequest{Query: tt.query}

			err := req.Validate()
			if tt.wantErr {
				require.Error(t, err)

				var vErrs *ValidationErrors
				require.ErrorAs(t, err, &vErrs)
				assert.Contains(t, vErrs.ToMap(), "query")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
