package listing

import (
	"context"

	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/storage"
)

// Input holds the owner editable fields of a listing.
type Input struct {
	Name          string
	Description   string
	Price         int64
	CityID        int64
	StreetID      int64
	Building      string
	Flat          string
	Floor         int
	AllFloors     int
	Rooms         int
	Bathrooms     int
	Square        float64
	Communal      int64
	Latitude      *float64
	Longitude     *float64
	HeatingTypeID int64
	ListingTypeID int64
	TagIDs        []int64
}

// Owner is the short public profile of a listing owner.
type Owner struct {
	ID        domain.UserID `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	PhotoID   domain.FileID `json:"photoId,omitempty"`
	Verified  bool          `json:"verified"`
	Rating    domain.Rating `json:"rating"`
}

// Detail is a listing with the data needed to render its page.
type Detail struct {
	domain.Listing

	Owner           Owner               `json:"owner"`
	ListingTypeName string              `json:"listingTypeName"`
	HeatingTypeName string              `json:"heatingTypeName"`
	Tags            []domain.ListingTag `json:"tags"`
}

// Service manages listings and favorites.
//
//go:generate mockgen -package mocklisting -source=interface.go -destination=mock/mocklisting.go
type Service interface {
	// Create stores a listing in moderation together with its files and
	// enqueues its moderation.
	Create(ctx context.Context,
		owner domain.UserID,
		input Input,
		images []filestore.Upload,
		document filestore.Upload) (*domain.Listing, error)
	// Search lists listings newest first. caller may be nil.
	Search(ctx context.Context,
		caller *domain.Caller,
		filter storage.ListingFilter,
		cursor storage.ListingCursor,
		limit uint) (storage.ListingPage, error)
	// Get returns the listing page. Listings that are not active are only
	// visible to their owner and admins. caller may be nil.
	Get(ctx context.Context, caller *domain.Caller, id domain.ListingID) (*Detail, error)
	// Update replaces the listing fields and sends it back to moderation.
	Update(ctx context.Context, caller domain.Caller, id domain.ListingID, input Input) (*domain.Listing, error)
	ReplaceOwnershipDocument(ctx context.Context,
		caller domain.Caller,
		id domain.ListingID,
		document filestore.Upload) (*domain.Listing, error)
	Archive(ctx context.Context, caller domain.Caller, id domain.ListingID) (*domain.Listing, error)
	Reactivate(ctx context.Context, caller domain.Caller, id domain.ListingID) (*domain.Listing, error)
	Delete(ctx context.Context, caller domain.Caller, id domain.ListingID) error

	Favorites(ctx context.Context, userID domain.UserID) ([]domain.Favorite, error)
	AddFavorite(ctx context.Context, userID domain.UserID, listingID domain.ListingID) (*domain.Favorite, error)
	RemoveFavorite(ctx context.Context, userID domain.UserID, id domain.FavoriteID) error
	RemoveFavoriteByListing(ctx context.Context, userID domain.UserID, listingID domain.ListingID) error
}
