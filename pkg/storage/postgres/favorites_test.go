package postgres_test

import (
	"context"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Favorites(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := seedUser(t, pgSQL)
	user := seedUser(t, pgSQL)
	cityID, streetID := seedAddress(t, pgSQL, "Львів")
	listing, err := pgSQL.StoreListing(ctx, newListing(owner.ID, cityID, streetID))
	require.NoError(t, err)

	fav, err := pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: user.ID, ListingID: listing.ID})
	require.NoError(t, err)
	require.NotNil(t, fav)

	_, err = pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: user.ID, ListingID: listing.ID})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	_, err = pgSQL.StoreFavorite(ctx, domain.Favorite{UserID: user.ID, ListingID: domain.ListingID(uuid.New())})
	require.ErrorIs(t, err, storage.ErrInvalidReference)

	favs, err := pgSQL.Favorites(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 1)

	// someone else cannot remove it
	deleted, err := pgSQL.DeleteFavorite(ctx, owner.ID, fav.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = pgSQL.DeleteFavoriteByListing(ctx, user.ID, listing.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	favs, err = pgSQL.Favorites(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, favs)
}
