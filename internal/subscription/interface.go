package subscription

import (
	"context"
	"easyrent/pkg/domain"
)

// Service manages saved searches and notifies their owners about new
// matching listings.
//
//go:generate mockgen -package mocksubscription -source=interface.go -destination=mock/mocksubscription.go
type Service interface {
	Create(ctx context.Context, userID domain.UserID, criteria domain.ListingCriteria) (*domain.Subscription, error)
	List(ctx context.Context, userID domain.UserID) ([]domain.Subscription, error)
	Get(ctx context.Context, userID domain.UserID, id domain.SubscriptionID) (*domain.Subscription, error)
	Update(ctx context.Context,
		userID domain.UserID,
		id domain.SubscriptionID,
		criteria domain.ListingCriteria) (*domain.Subscription, error)
	Delete(ctx context.Context, userID domain.UserID, id domain.SubscriptionID) error
	// Notify e-mails every subscriber whose criteria match the listing. It
	// does nothing unless the listing is active and returns how many users
	// were notified.
	Notify(ctx context.Context, listingID domain.ListingID) (int, error)
}
