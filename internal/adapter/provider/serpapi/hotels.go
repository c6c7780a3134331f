package serpapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// HotelProviderName identifies the google_hotels engine adapter.
const HotelProviderName = "serpapi_hotels"

// HotelAdapter implements domain.HotelProvider on top of the google_hotels
// engine.
type HotelAdapter struct {
	client *Client
}

// NewHotelAdapter creates a hotel adapter using the shared client.
func NewHotelAdapter(client *Client) *HotelAdapter {
	return &HotelAdapter{client: client}
}

// Name returns the provider identifier.
func (a *HotelAdapter) Name() string {
	return HotelProviderName
}

// SearchHotels queries google_hotels for offers sorted by lowest price.
// Listings without any usable price are dropped; missing ratings and
// check-in times are preserved as absent rather than zeroed so downstream
// filters can treat them permissively.
func (a *HotelAdapter) SearchHotels(ctx context.Context, query domain.HotelQuery) ([]domain.HotelOffer, error) {
	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", query.Location)
	params.Set("check_in_date", query.CheckInDate)
	params.Set("check_out_date", query.CheckOutDate)
	params.Set("sort_by", "3")
	params.Set("currency", "USD")

	var resp hotelsResponse
	if err := a.client.search(ctx, params, &resp); err != nil {
		return nil, err
	}

	offers := make([]domain.HotelOffer, 0, len(resp.Properties))
	for _, prop := range resp.Properties {
		offer, ok := normalizeProperty(prop, query.CheckInDate)
		if !ok {
			a.client.log.Debug().Str("provider", HotelProviderName).
				Str("hotel", prop.Name).Msg("skipping listing without a price")
			continue
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

// normalizeProperty converts a raw listing into a domain offer. The nightly
// rate is preferred; the stay total is a fallback some markets return
// instead.
func normalizeProperty(prop hotelProperty, checkInDate string) (domain.HotelOffer, bool) {
	price := prop.RatePerNight.amount()
	if price == 0 {
		price = prop.TotalRate.amount()
	}
	if price == 0 {
		return domain.HotelOffer{}, false
	}

	name := prop.Name
	if name == "" {
		name = "Unknown Hotel"
	}

	return domain.HotelOffer{
		ID:             uuid.NewString(),
		Name:           name,
		Price:          price,
		OverallRating:  prop.OverallRating,
		LocationRating: locationRating(prop),
		HotelClass:     prop.ExtractedHotelClass,
		CheckIn: domain.CheckInPolicy{
			Time: prop.CheckInTime,
			Date: checkInDate,
		},
		Amenities: prop.Amenities,
	}, true
}

// locationRating resolves the location-specific rating. The per-category
// breakdown is authoritative when present; a flat location_rating field is
// the fallback.
func locationRating(prop hotelProperty) *float64 {
	for _, item := range prop.Ratings {
		if strings.Contains(strings.ToLower(item.Name), "location") && item.Rating != nil {
			return item.Rating
		}
	}
	return prop.LocationRating
}
