package domain

// ActivityOffer represents an activity or attraction at the destination.
// Activities are display-only: they never participate in plan optimization
// and their retrieval is best-effort.
type ActivityOffer struct {
	// ID is a unique identifier for this offer (generated internally)
	ID string `json:"id"`

	// Name is the activity or place name
	Name string `json:"name"`

	// Address is the location address
	Address string `json:"address,omitempty"`

	// Rating is the user rating on a 0-5 scale, nil if unknown
	Rating *float64 `json:"rating,omitempty"`

	// Reviews is the number of user reviews
	Reviews int `json:"reviews,omitempty"`

	// Type is the place category (e.g. "Museum", "Park")
	Type string `json:"type,omitempty"`

	// Description is a short description or snippet
	Description string `json:"description,omitempty"`

	// PriceLevel is the provider's price indicator (e.g. "$", "$$")
	PriceLevel string `json:"priceLevel,omitempty"`
}
