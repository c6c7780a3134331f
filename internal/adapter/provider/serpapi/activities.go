package serpapi

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/trip-search/trip-search-and-optimization-system/internal/domain"
)

// ActivityProviderName identifies the google_local engine adapter.
const ActivityProviderName = "serpapi_activities"

// DefaultActivityKind is the search category used when a query does not
// specify one.
const DefaultActivityKind = "things to do"

// ActivityAdapter implements domain.ActivityProvider on top of the
// google_local engine.
type ActivityAdapter struct {
	client *Client
}

// NewActivityAdapter creates an activity adapter using the shared client.
func NewActivityAdapter(client *Client) *ActivityAdapter {
	return &ActivityAdapter{client: client}
}

// Name returns the provider identifier.
func (a *ActivityAdapter) Name() string {
	return ActivityProviderName
}

// SearchActivities queries google_local for places matching the activity
// kind at the destination.
func (a *ActivityAdapter) SearchActivities(ctx context.Context, query domain.ActivityQuery) ([]domain.ActivityOffer, error) {
	kind := query.Kind
	if kind == "" {
		kind = DefaultActivityKind
	}

	params := url.Values{}
	params.Set("engine", "google_local")
	params.Set("q", kind+" in "+query.Location)

	var resp localResponse
	if err := a.client.search(ctx, params, &resp); err != nil {
		return nil, err
	}

	offers := make([]domain.ActivityOffer, 0, len(resp.LocalResults))
	for _, place := range resp.LocalResults {
		offers = append(offers, normalizePlace(place))
	}
	return offers, nil
}

// normalizePlace converts a raw local result into a domain offer.
func normalizePlace(place localPlace) domain.ActivityOffer {
	name := place.Title
	if name == "" {
		name = "Unknown Place"
	}

	description := place.Description
	if description == "" {
		description = place.Snippet
	}

	return domain.ActivityOffer{
		ID:          uuid.NewString(),
		Name:        name,
		Address:     place.Address,
		Rating:      place.Rating,
		Reviews:     place.Reviews,
		Type:        place.Type,
		Description: description,
		PriceLevel:  place.Price,
	}
}
