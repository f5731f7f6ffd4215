package domain

import (
	"time"

	"github.com/google/uuid"
)

type SubscriptionID uuid.UUID

// Subscription is a saved search. Its owner is e-mailed when a listing
// matching Criteria becomes active.
type Subscription struct {
	ID        SubscriptionID  `json:"id"`
	UserID    UserID          `json:"userId"`
	Criteria  ListingCriteria `json:"criteria"`
	CreatedAt time.Time       `json:"createdAt"`
}
