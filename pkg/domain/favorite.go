package domain

import (
	"time"

	"github.com/google/uuid"
)

type FavoriteID uuid.UUID

// Favorite is a listing bookmarked by a user.
type Favorite struct {
	ID        FavoriteID `json:"id"`
	UserID    UserID     `json:"userId"`
	ListingID ListingID  `json:"listingId"`
	CreatedAt time.Time  `json:"createdAt"`
}
