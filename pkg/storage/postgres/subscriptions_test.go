package postgres_test

import (
	"context"
	"easyrent/pkg/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Subscriptions(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := seedUser(t, pgSQL)
	subscriber := seedUser(t, pgSQL)
	cityID, streetID := seedAddress(t, pgSQL, "Одеса")
	otherCity := cityID + 1000

	listingType := int64(1)
	inCity, err := pgSQL.StoreSubscription(ctx, domain.Subscription{
		UserID:   subscriber.ID,
		Criteria: domain.ListingCriteria{CityID: &cityID, ListingTypeID: &listingType},
	})
	require.NoError(t, err)
	_, err = pgSQL.StoreSubscription(ctx, domain.Subscription{
		UserID:   subscriber.ID,
		Criteria: domain.ListingCriteria{CityID: &otherCity},
	})
	require.NoError(t, err)
	anything, err := pgSQL.StoreSubscription(ctx, domain.Subscription{UserID: subscriber.ID})
	require.NoError(t, err)
	// owners are never notified about their own listings
	_, err = pgSQL.StoreSubscription(ctx, domain.Subscription{UserID: owner.ID})
	require.NoError(t, err)

	listing := newListing(owner.ID, cityID, streetID)
	candidates, err := pgSQL.SubscriptionCandidates(ctx, listing)
	require.NoError(t, err)
	ids := make([]domain.SubscriptionID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	require.ElementsMatch(t, []domain.SubscriptionID{inCity.ID, anything.ID}, ids)

	t.Run("owner scoped access", func(t *testing.T) {
		got, err := pgSQL.SubscriptionByID(ctx, owner.ID, inCity.ID)
		require.NoError(t, err)
		require.Nil(t, got)

		got, err = pgSQL.SubscriptionByID(ctx, subscriber.ID, inCity.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, cityID, *got.Criteria.CityID)
	})

	t.Run("update criteria", func(t *testing.T) {
		rooms := 3
		edit := *inCity
		edit.Criteria.Rooms = &rooms
		updated, err := pgSQL.UpdateSubscription(ctx, edit)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, 3, *updated.Criteria.Rooms)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := pgSQL.DeleteSubscription(ctx, owner.ID, anything.ID)
		require.NoError(t, err)
		require.False(t, deleted)

		deleted, err = pgSQL.DeleteSubscription(ctx, subscriber.ID, anything.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		subs, err := pgSQL.Subscriptions(ctx, subscriber.ID)
		require.NoError(t, err)
		require.Len(t, subs, 2)
	})
}
