package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ListingID uniquely identifies a listing.
type ListingID uuid.UUID

func (id ListingID) String() string { return uuid.UUID(id).String() }

// ListingStatus represents the lifecycle state of a listing.
//
// New and edited listings start in ListingStatusModeration. The moderation
// pipeline moves them to ListingStatusActive or ListingStatusDiscarded, and the
// relevance worker moves stale active listings to ListingStatusArchived.
type ListingStatus string

const (
	ListingStatusActive     ListingStatus = "ACTIVE"
	ListingStatusArchived   ListingStatus = "ARCHIVED"
	ListingStatusModeration ListingStatus = "MODERATION"
	ListingStatusDiscarded  ListingStatus = "DISCARDED"
)

// ListingStatuses lists every status in display order.
var ListingStatuses = []ListingStatus{ //nolint: gochecknoglobals
	ListingStatusActive,
	ListingStatusArchived,
	ListingStatusModeration,
	ListingStatusDiscarded,
}

// Valid reports whether s is a known status.
func (s ListingStatus) Valid() bool {
	for _, status := range ListingStatuses {
		if s == status {
			return true
		}
	}

	return false
}

// MinListingImages is the number of images a listing needs to be submitted.
const MinListingImages = 4

// Listing is a rental property ad.
type Listing struct {
	ID      ListingID `json:"id"`
	OwnerID UserID    `json:"ownerId"`

	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`

	CityID     int64  `json:"cityId"`
	CityName   string `json:"cityName"`
	StreetID   int64  `json:"streetId"`
	StreetName string `json:"streetName"`
	Building   string `json:"building"`
	Flat       string `json:"flat,omitempty"`

	Floor     int     `json:"floor"`
	AllFloors int     `json:"allFloors"`
	Rooms     int     `json:"rooms"`
	Bathrooms int     `json:"bathrooms"`
	Square    float64 `json:"square"`
	Communal  int64   `json:"communal"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	HeatingTypeID int64 `json:"heatingTypeId"`
	ListingTypeID int64 `json:"listingTypeId"`

	Status        ListingStatus `json:"status"`
	DiscardReason string        `json:"discardReason,omitempty"`

	OwnershipDocumentID FileID   `json:"-"`
	Images              []FileID `json:"images"`
	TagIDs              []int64  `json:"tagIds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ModerationText is the text submitted to the assistant content check.
func (l Listing) ModerationText() string {
	return "Real estate listing:\n" + l.Name + "\n" + l.Description
}

// ReadyForModeration reports whether the listing carries everything the
// moderation pipeline needs. Incomplete listings wait in moderation.
func (l Listing) ReadyForModeration() bool {
	return strings.TrimSpace(l.Name) != "" &&
		strings.TrimSpace(l.Description) != "" &&
		l.OwnershipDocumentID != ""
}

// LastActivity is the moment the listing was last created, edited or reactivated.
func (l Listing) LastActivity() time.Time {
	if l.UpdatedAt.After(l.CreatedAt) {
		return l.UpdatedAt
	}

	return l.CreatedAt
}

// ListingCriteria is the set of structured filters shared by listing search
// and saved-search subscriptions. Nil fields do not constrain.
type ListingCriteria struct {
	CityID        *int64   `json:"cityId,omitempty"`
	ListingTypeID *int64   `json:"listingTypeId,omitempty"`
	HeatingTypeID *int64   `json:"heatingTypeId,omitempty"`
	PriceMin      *int64   `json:"priceMin,omitempty"`
	PriceMax      *int64   `json:"priceMax,omitempty"`
	Rooms         *int     `json:"rooms,omitempty"`
	Bathrooms     *int     `json:"bathrooms,omitempty"`
	FloorMin      *int     `json:"floorMin,omitempty"`
	FloorMax      *int     `json:"floorMax,omitempty"`
	AllFloorsMin  *int     `json:"allFloorsMin,omitempty"`
	AllFloorsMax  *int     `json:"allFloorsMax,omitempty"`
	SquareMin     *float64 `json:"squareMin,omitempty"`
	SquareMax     *float64 `json:"squareMax,omitempty"`
	TagIDs        []int64  `json:"tagIds,omitempty"`
}

// Matches reports whether l satisfies every set criterion. All of TagIDs must
// be present on the listing.
func (c ListingCriteria) Matches(l Listing) bool {
	eq := func(want *int64, got int64) bool { return want == nil || *want == got }
	eqInt := func(want *int, got int) bool { return want == nil || *want == got }
	inRange := func(lo, hi *int, v int) bool {
		return (lo == nil || v >= *lo) && (hi == nil || v <= *hi)
	}

	switch {
	case !eq(c.CityID, l.CityID),
		!eq(c.ListingTypeID, l.ListingTypeID),
		!eq(c.HeatingTypeID, l.HeatingTypeID),
		c.PriceMin != nil && l.Price < *c.PriceMin,
		c.PriceMax != nil && l.Price > *c.PriceMax,
		!eqInt(c.Rooms, l.Rooms),
		!eqInt(c.Bathrooms, l.Bathrooms),
		!inRange(c.FloorMin, c.FloorMax, l.Floor),
		!inRange(c.AllFloorsMin, c.AllFloorsMax, l.AllFloors),
		c.SquareMin != nil && l.Square < *c.SquareMin,
		c.SquareMax != nil && l.Square > *c.SquareMax:
		return false
	}

	have := make(map[int64]struct{}, len(l.TagIDs))
	for _, id := range l.TagIDs {
		have[id] = struct{}{}
	}
	for _, id := range c.TagIDs {
		if _, ok := have[id]; !ok {
			return false
		}
	}

	return true
}
