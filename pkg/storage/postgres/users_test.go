package postgres_test

import (
	"context"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := seedUser(t, pgSQL)

	t.Run("lookup by email is case insensitive", func(t *testing.T) {
		got, err := pgSQL.UserByEmail(ctx, "  "+strings.ToUpper(user.Email)+" ")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("lookup by phone", func(t *testing.T) {
		got, err := pgSQL.UserByPhone(ctx, user.Phone)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("unknown user is nil", func(t *testing.T) {
		got, err := pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := user
		dup.Phone = "+380000000000"
		_, err := pgSQL.StoreUser(ctx, dup)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("update sets only provided fields", func(t *testing.T) {
		patronymic := "Hryhorovych"
		birth := time.Date(1990, 3, 9, 0, 0, 0, 0, time.UTC)
		verified := true
		got, err := pgSQL.UpdateUser(ctx, user.ID, storage.UserUpdates{
			Patronymic: &patronymic,
			BirthDate:  &birth,
			Verified:   &verified,
		})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, patronymic, got.Patronymic)
		require.Equal(t, birth.Format(time.DateOnly), got.BirthDate.Format(time.DateOnly))
		require.True(t, got.Verified)
		require.Equal(t, user.FirstName, got.FirstName)
		require.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("update unknown user", func(t *testing.T) {
		got, err := pgSQL.UpdateUser(ctx, domain.UserID(uuid.New()), storage.UserUpdates{})
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_UserStatsAndRating(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := seedUser(t, pgSQL)
	author1 := seedUser(t, pgSQL)
	author2 := seedUser(t, pgSQL)
	cityID, streetID := seedAddress(t, pgSQL, "Київ")

	_, err := pgSQL.StoreListing(ctx, newListing(owner.ID, cityID, streetID))
	require.NoError(t, err)
	for i, author := range []domain.User{author1, author2} {
		_, err := pgSQL.StoreReview(ctx, domain.Review{
			AuthorID:    author.ID,
			TargetID:    owner.ID,
			Rating:      float64(3 + i),
			Description: "ok",
			Status:      domain.ReviewStatusPublished,
		})
		require.NoError(t, err)
	}

	rating, err := pgSQL.UserRating(ctx, owner.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, rating.Count)
	require.InDelta(t, 3.5, rating.Average, 0.001)

	empty, err := pgSQL.UserRating(ctx, author1.ID)
	require.NoError(t, err)
	require.Zero(t, empty.Count)
	require.Zero(t, empty.Average)

	stats, err := pgSQL.UserStats(ctx, storage.UserFilter{ID: &owner.ID})
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.EqualValues(t, 1, stats[0].ListingCount)
	require.EqualValues(t, 2, stats[0].Rating.Count)

	all, err := pgSQL.UserStats(ctx, storage.UserFilter{LastName: "shevch", Limit: 2})
	require.NoError(t, err)
	require.Len(t, all, 2)

	deleted, err := pgSQL.DeleteUser(ctx, owner.ID)
	require.NoError(t, err)
	require.True(t, deleted)
	deleted, err = pgSQL.DeleteUser(ctx, owner.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
