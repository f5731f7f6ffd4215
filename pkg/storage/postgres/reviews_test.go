package postgres_test

import (
	"context"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_Reviews(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	author := seedUser(t, pgSQL)
	target := seedUser(t, pgSQL)

	stored, err := pgSQL.StoreReview(ctx, domain.Review{
		AuthorID:    author.ID,
		TargetID:    target.ID,
		Rating:      4.5,
		Description: "Polite landlord",
		Status:      domain.ReviewStatusPublished,
		TagIDs:      []int64{1, 2},
	})
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, []int64{1, 2}, stored.TagIDs)

	t.Run("second review for the same target", func(t *testing.T) {
		_, err := pgSQL.StoreReview(ctx, domain.Review{
			AuthorID: author.ID,
			TargetID: target.ID,
			Rating:   1,
			Status:   domain.ReviewStatusPublished,
		})
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})

	t.Run("filter by target", func(t *testing.T) {
		reviews, err := pgSQL.Reviews(ctx, storage.ReviewFilter{TargetID: &target.ID})
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		require.Equal(t, stored.ID, reviews[0].ID)

		reviews, err = pgSQL.Reviews(ctx, storage.ReviewFilter{TargetID: &author.ID})
		require.NoError(t, err)
		require.Empty(t, reviews)
	})

	t.Run("tag count", func(t *testing.T) {
		count, err := pgSQL.TargetTagCount(ctx, target.ID)
		require.NoError(t, err)
		require.EqualValues(t, 2, count)
	})

	t.Run("update replaces tags", func(t *testing.T) {
		edit := *stored
		edit.Rating = 3
		edit.TagIDs = []int64{5}
		updated, err := pgSQL.UpdateReview(ctx, edit)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.InDelta(t, 3.0, updated.Rating, 0.001)
		require.Equal(t, []int64{5}, updated.TagIDs)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := pgSQL.DeleteReview(ctx, stored.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		got, err := pgSQL.ReviewByID(ctx, stored.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
