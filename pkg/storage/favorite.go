package storage

import (
	"context"
	"easyrent/pkg/domain"
)

type FavoriteStorage interface {
	// StoreFavorite returns ErrDuplicate when the listing is already a favorite
	// and ErrInvalidReference when the listing does not exist.
	StoreFavorite(ctx context.Context, favorite domain.Favorite) (*domain.Favorite, error)
	Favorites(ctx context.Context, userID domain.UserID) ([]domain.Favorite, error)
	DeleteFavorite(ctx context.Context, userID domain.UserID, id domain.FavoriteID) (bool, error)
	DeleteFavoriteByListing(ctx context.Context, userID domain.UserID, listingID domain.ListingID) (bool, error)
}
