// Package subscription implements saved listing searches.
package subscription

import (
	"context"
	"fmt"
	"strings"

	"easyrent/pkg/domain"
	"easyrent/pkg/logger"
	"easyrent/pkg/mailer"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"

	"go.uber.org/zap"
)

type service struct {
	storage storage.Storage
	mailer  mailer.Mailer
}

// New creates a subscription Service.
func New(storage storage.Storage, mailer mailer.Mailer) Service {
	return &service{storage: storage, mailer: mailer}
}

// ValidateCriteria rejects negative values and inverted ranges.
func ValidateCriteria(c domain.ListingCriteria) error {
	negative := func(name string, v *int64) error {
		if v != nil && *v < 0 {
			return serrors.With(serrors.ErrBadRequest, "%s must not be negative", name)
		}

		return nil
	}
	for name, v := range map[string]*int64{"priceMin": c.PriceMin, "priceMax": c.PriceMax} {
		if err := negative(name, v); err != nil {
			return err
		}
	}
	if c.PriceMin != nil && c.PriceMax != nil && *c.PriceMin > *c.PriceMax {
		return serrors.With(serrors.ErrBadRequest, "priceMin is greater than priceMax")
	}
	if c.FloorMin != nil && c.FloorMax != nil && *c.FloorMin > *c.FloorMax {
		return serrors.With(serrors.ErrBadRequest, "floorMin is greater than floorMax")
	}
	if c.AllFloorsMin != nil && c.AllFloorsMax != nil && *c.AllFloorsMin > *c.AllFloorsMax {
		return serrors.With(serrors.ErrBadRequest, "allFloorsMin is greater than allFloorsMax")
	}
	if c.SquareMin != nil && c.SquareMax != nil && *c.SquareMin > *c.SquareMax {
		return serrors.With(serrors.ErrBadRequest, "squareMin is greater than squareMax")
	}

	return nil
}

func (s *service) Create(ctx context.Context,
	userID domain.UserID,
	criteria domain.ListingCriteria) (*domain.Subscription, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	sub, err := s.storage.StoreSubscription(ctx, domain.Subscription{UserID: userID, Criteria: criteria})
	if err != nil {
		return nil, fmt.Errorf("could not store subscription: %w", err)
	}

	return sub, nil
}

func (s *service) List(ctx context.Context, userID domain.UserID) ([]domain.Subscription, error) {
	subs, err := s.storage.Subscriptions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list subscriptions: %w", err)
	}

	return subs, nil
}

func (s *service) Get(ctx context.Context, userID domain.UserID, id domain.SubscriptionID) (*domain.Subscription, error) {
	sub, err := s.storage.SubscriptionByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get subscription: %w", err)
	}
	if sub == nil {
		return nil, serrors.With(serrors.ErrNotFound, "subscription not found")
	}

	return sub, nil
}

func (s *service) Update(ctx context.Context,
	userID domain.UserID,
	id domain.SubscriptionID,
	criteria domain.ListingCriteria) (*domain.Subscription, error) {
	if err := ValidateCriteria(criteria); err != nil {
		return nil, err
	}

	sub, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	sub.Criteria = criteria

	updated, err := s.storage.UpdateSubscription(ctx, *sub)
	if err != nil {
		return nil, fmt.Errorf("could not update subscription: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "subscription not found")
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, userID domain.UserID, id domain.SubscriptionID) error {
	deleted, err := s.storage.DeleteSubscription(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete subscription: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "subscription not found")
	}

	return nil
}

func (s *service) Notify(ctx context.Context, listingID domain.ListingID) (int, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("listingID", listingID))

	listing, err := s.storage.ListingByID(ctx, listingID)
	if err != nil {
		return 0, fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil {
		return 0, serrors.With(serrors.ErrNotFound, "listing not found")
	}
	if listing.Status != domain.ListingStatusActive {
		logger.Debug(ctx, "listing is not active, nothing to notify", zap.String("status", string(listing.Status)))

		return 0, nil
	}

	candidates, err := s.storage.SubscriptionCandidates(ctx, *listing)
	if err != nil {
		return 0, fmt.Errorf("could not get subscription candidates: %w", err)
	}

	notified := make(map[domain.UserID]struct{})
	for _, sub := range candidates {
		if sub.UserID == listing.OwnerID || !sub.Criteria.Matches(*listing) {
			continue
		}
		if _, ok := notified[sub.UserID]; ok {
			continue
		}

		// a retry would mail everyone notified so far again, so failures only skip the subscriber
		user, err := s.storage.UserByID(ctx, sub.UserID)
		if err != nil {
			logger.Warn(ctx, "could not get subscriber", zap.Stringer("userID", sub.UserID), zap.Error(err))

			continue
		}
		if user == nil || !user.Active {
			continue
		}

		if err := s.mailer.Send(ctx, user.Email, "EasyRent - new listing matches your search", matchMail(*listing)); err != nil {
			logger.Warn(ctx, "could not notify subscriber", zap.Stringer("userID", user.ID), zap.Error(err))

			continue
		}
		notified[sub.UserID] = struct{}{}
	}

	logger.Info(ctx, "subscribers notified", zap.Int("count", len(notified)))

	return len(notified), nil
}

func matchMail(l domain.Listing) string {
	var b strings.Builder
	b.WriteString("Hello,\n\nA new listing matches one of your saved searches:\n\n")
	fmt.Fprintf(&b, "%s\n%s, %s %s\nPrice: %d UAH, rooms: %d, %.1f m²\n",
		l.Name, l.CityName, l.StreetName, l.Building, l.Price, l.Rooms, l.Square)
	b.WriteString("\nBest regards,\nEasyRent team\n")

	return b.String()
}
