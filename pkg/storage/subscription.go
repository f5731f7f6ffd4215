package storage

import (
	"context"
	"easyrent/pkg/domain"
)

type SubscriptionStorage interface {
	StoreSubscription(ctx context.Context, subscription domain.Subscription) (*domain.Subscription, error)
	Subscriptions(ctx context.Context, userID domain.UserID) ([]domain.Subscription, error)
	// SubscriptionByID returns nil when the subscription does not exist or
	// belongs to someone else.
	SubscriptionByID(ctx context.Context, userID domain.UserID, id domain.SubscriptionID) (*domain.Subscription, error)
	// UpdateSubscription replaces the criteria. Returns nil when not found.
	UpdateSubscription(ctx context.Context, subscription domain.Subscription) (*domain.Subscription, error)
	DeleteSubscription(ctx context.Context, userID domain.UserID, id domain.SubscriptionID) (bool, error)
	// SubscriptionCandidates returns subscriptions whose city and listing type
	// criteria do not exclude the listing. Remaining criteria are checked by
	// the caller.
	SubscriptionCandidates(ctx context.Context, listing domain.Listing) ([]domain.Subscription, error)
}
