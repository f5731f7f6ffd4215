package postgres_test

import (
	"context"
	"errors"
	"testing"

	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
	"easyrent/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func draftUser() domain.User {
	suffix := uuid.NewString()[:8]

	return domain.User{
		Email:        "tx-" + suffix + "@example.com",
		Phone:        "+381" + suffix,
		PasswordHash: "hash",
		FirstName:    "Lesya",
		LastName:     "Ukrainka",
		Role:         domain.UserRoleUser,
		Active:       true,
	}
}

func TestPgSQL_Transactions(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("commit and rollback outside tx", func(t *testing.T) {
		require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
	})

	t.Run("nested begin", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		defer func() { require.NoError(t, tx.Rollback()) }()

		inner, ok := tx.(*postgres.PgSQL)
		require.True(t, ok)
		require.Nil(t, inner.Pool)
		_, err = inner.Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})

	t.Run("commit", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		user, err := tx.StoreUser(ctx, draftUser())
		require.NoError(t, err)

		// not visible before commit
		outside, err := pg.UserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Nil(t, outside)

		require.NoError(t, tx.Commit())
		outside, err = pg.UserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, outside)
	})

	t.Run("rollback", func(t *testing.T) {
		tx, err := pg.Begin(ctx)
		require.NoError(t, err)
		user, err := tx.StoreUser(ctx, draftUser())
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		stored, err := pg.UserByID(ctx, user.ID)
		require.NoError(t, err)
		require.Nil(t, stored)
	})

	t.Run("WithTx commits", func(t *testing.T) {
		var id domain.UserID
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			user, err := s.StoreUser(ctx, draftUser())
			if err != nil {
				return err //nolint: wrapcheck
			}
			id = user.ID

			return nil
		})
		require.NoError(t, err)

		stored, err := pg.UserByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("WithTx rolls back on error", func(t *testing.T) {
		boom := errors.New("mail relay down")
		var id domain.UserID
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			user, err := s.StoreUser(ctx, draftUser())
			require.NoError(t, err)
			id = user.ID

			return boom
		})
		require.ErrorIs(t, err, boom)

		stored, err := pg.UserByID(ctx, id)
		require.NoError(t, err)
		require.Nil(t, stored)
	})

	t.Run("WithTx rolls back on panic", func(t *testing.T) {
		var id domain.UserID
		require.Panics(t, func() {
			_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
				user, err := s.StoreUser(ctx, draftUser())
				require.NoError(t, err)
				id = user.ID

				panic("unexpected")
			})
		})

		stored, err := pg.UserByID(ctx, id)
		require.NoError(t, err)
		require.Nil(t, stored)
	})
}
