package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// hotelWithCheckIn builds a hotel offer with the given check-in policy.
func hotelWithCheckIn(name, checkInTime, checkInDate string) domain.HotelOffer {
	return domain.HotelOffer{
		Name:  name,
		Price: 100,
		CheckIn: domain.CheckInPolicy{
			Time: checkInTime,
			Date: checkInDate,
		},
	}
}

func hotelNames(hotels []domain.HotelOffer) []string {
	names := make([]string, 0, len(hotels))
	for _, h := range hotels {
		names = append(names, h.Name)
	}
	return names
}

func TestValidHotels_SameDay(t *testing.T) {
	// Flight arrives 18:30, gap 2h: traveler reaches the hotel at 20:30.
	flightArrival := time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)

	hotels := []domain.HotelOffer{
		hotelWithCheckIn("Hotel A", "15:00", ""), // check-in started at 15:00
		hotelWithCheckIn("Hotel B", "21:00", ""), // check-in not yet started
	}

	valid := ValidHotels(hotels, flightArrival, 2)
	assert.Equal(t, []string{"Hotel A"}, hotelNames(valid))
}

func TestValidHotels_MorningArrivalBeforeCheckInOpens(t *testing.T) {
	// A 10:00 arrival with a 2h gap puts the traveler at the hotel at
	// 12:00, before a standard 15:00 check-in opens. The same-day rule
	// rejects the hotel.
	flightArrival := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	hotels := []domain.HotelOffer{hotelWithCheckIn("Afternoon Desk", "15:00", "")}

	valid := ValidHotels(hotels, flightArrival, 2)
	assert.Empty(t, valid)
}

func TestValidHotels_InclusiveBoundary(t *testing.T) {
	// Traveler time-of-day exactly equal to check-in time-of-day is valid.
	flightArrival := time.Date(2026, 1, 15, 18, 30, 0, 0, time.UTC)

	hotels := []domain.HotelOffer{hotelWithCheckIn("Boundary Hotel", "20:30", "")}

	valid := ValidHotels(hotels, flightArrival, 2)
	assert.Len(t, valid, 1)
}

func TestValidHotels_NextDayArrival(t *testing.T) {
	// Flight arrives 23:00, gap 3h: traveler reaches the hotel at 02:00 the
	// next day. The hotel holds the reservation overnight.
	flightArrival := time.Date(2026, 1, 15, 23, 0, 0, 0, time.UTC)

	hotels := []domain.HotelOffer{hotelWithCheckIn("Night Hotel", "15:00", "2026-01-15")}

	valid := ValidHotels(hotels, flightArrival, 3)
	assert.Len(t, valid, 1)
}

func TestValidHotels_TooLateArrival(t *testing.T) {
	// Traveler arrives two days after the hotel's check-in date.
	flightArrival := time.Date(2026, 1, 17, 10, 0, 0, 0, time.UTC)

	hotels := []domain.HotelOffer{hotelWithCheckIn("Missed Hotel", "15:00", "2026-01-15")}

	valid := ValidHotels(hotels, flightArrival, 2)
	assert.Empty(t, valid)
}

func TestValidHotels_ArrivalBeforeCheckInDate(t *testing.T) {
	flightArrival := time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)

	hotels := []domain.HotelOffer{hotelWithCheckIn("Future Hotel", "15:00", "2026-01-16")}

	valid := ValidHotels(hotels, flightArrival, 2)
	assert.Empty(t, valid)
}

func TestValidHotels_MissingPolicyIncluded(t *testing.T) {
	// A hotel whose check-in instant cannot be established at all is
	// included by default.
	hotels := []domain.HotelOffer{hotelWithCheckIn("Opaque Hotel", "15:00", "")}

	valid := ValidHotels(hotels, time.Time{}, 2)
	assert.Len(t, valid, 1)
}

func TestValidHotels_GapSensitivity(t *testing.T) {
	// For hotels whose check-in has already started, raising the gap never
	// adds hotels; it can only shrink the set once the arrival slides past
	// the one-day window.
	flightArrival := time.Date(2026, 1, 15, 16, 0, 0, 0, time.UTC)
	hotels := []domain.HotelOffer{
		hotelWithCheckIn("Early", "14:00", "2026-01-15"),
		hotelWithCheckIn("Noon", "12:00", "2026-01-15"),
	}

	previous := len(ValidHotels(hotels, flightArrival, 1))
	require.Equal(t, 2, previous)

	for gap := 2; gap <= 48; gap++ {
		current := len(ValidHotels(hotels, flightArrival, gap))
		assert.LessOrEqual(t, current, previous, "gap %dh grew the valid set", gap)
		previous = current
	}

	// By 48 hours the traveler is more than a day late everywhere.
	assert.Zero(t, previous)
}

func TestCalendarDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2026, 1, 15, 15, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 1, 15, 23, 59, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "next day just after midnight",
			a:    time.Date(2026, 1, 15, 15, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 1, 16, 0, 1, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "previous day",
			a:    time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 1, 14, 22, 0, 0, 0, time.UTC),
			want: -1,
		},
		{
			name: "month boundary",
			a:    time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 2, 1, 1, 0, 0, 0, time.UTC),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendarDaysBetween(tt.a, tt.b))
		})
	}
}
