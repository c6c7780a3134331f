package usecase

import (
	"time"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// maxCheckInDelayDays is how many calendar days after the hotel's check-in
// date a traveler may still arrive; hotels are presumed to hold the
// reservation through the next day.
const maxCheckInDelayDays = 1

// ValidHotels returns the hotels a traveler landing at flightArrival can
// validly check into, given the configured gap between landing and reaching
// the hotel. The function is pure; it is called once per flight candidate.
func ValidHotels(hotels []domain.HotelOffer, flightArrival time.Time, gapHours int) []domain.HotelOffer {
	travelerArrival := flightArrival.Add(time.Duration(gapHours) * time.Hour)

	valid := make([]domain.HotelOffer, 0, len(hotels))
	for _, hotel := range hotels {
		if hotelReachable(hotel, flightArrival, travelerArrival) {
			valid = append(valid, hotel)
		}
	}
	return valid
}

// hotelReachable decides whether a single hotel's check-in policy is
// compatible with the traveler reaching it at travelerArrival.
//
// Classification is by the calendar-day relationship between the traveler's
// hotel arrival and the hotel's check-in date:
//   - same day: valid when the traveler's time-of-day is at or after the
//     check-in time-of-day (check-in has started; the boundary is inclusive)
//   - one day after: valid, the reservation is held overnight
//   - before the check-in date, or more than one day after: invalid
//
// When no check-in instant can be established the hotel is included: the
// policy biases toward over-inclusion rather than starving the result set
// on missing provider data.
func hotelReachable(hotel domain.HotelOffer, flightArrival, travelerArrival time.Time) bool {
	checkIn, ok := hotel.CheckIn.Instant(flightArrival)
	if !ok {
		return true
	}

	delayDays := calendarDaysBetween(checkIn, travelerArrival)
	switch {
	case delayDays < 0:
		// Arriving before the check-in date; unreachable for a
		// forward-arriving traveler but guarded for safety.
		return false
	case delayDays == 0:
		return !timeOfDayBefore(travelerArrival, checkIn)
	default:
		return delayDays <= maxCheckInDelayDays
	}
}

// calendarDaysBetween returns the whole calendar days from a's date to b's
// date, ignoring time-of-day.
func calendarDaysBetween(a, b time.Time) int {
	aDate := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDate := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDate.Sub(aDate).Hours() / 24)
}

// timeOfDayBefore reports whether a's time-of-day is strictly before b's.
func timeOfDayBefore(a, b time.Time) bool {
	aMinutes := a.Hour()*60 + a.Minute()
	bMinutes := b.Hour()*60 + b.Minute()
	return aMinutes < bMinutes
}
