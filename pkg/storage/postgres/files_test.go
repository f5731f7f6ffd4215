package postgres_test

import (
	"context"
	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_FileUsages(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	owner := seedUser(t, pgSQL)
	cityID, streetID := seedAddress(t, pgSQL, "Одеса")

	photo, passport := domain.FileID("photo-1"), domain.FileID("passport-1")
	_, err := pgSQL.UpdateUser(ctx, owner.ID, storage.UserUpdates{PhotoID: &photo, PassportID: &passport})
	require.NoError(t, err)

	l := newListing(owner.ID, cityID, streetID)
	l.Status = domain.ListingStatusActive
	l.OwnershipDocumentID = "deed-1"
	l.Images = []domain.FileID{"image-1"}
	_, err = pgSQL.StoreListing(ctx, l)
	require.NoError(t, err)

	tests := []struct {
		id     domain.FileID
		want   domain.FileUsage
		public bool
	}{
		{"image-1", domain.FileUsage{Kind: domain.FileKindListingImage, OwnerID: owner.ID, ListingStatus: domain.ListingStatusActive}, true},
		{"deed-1", domain.FileUsage{Kind: domain.FileKindOwnershipDocument, OwnerID: owner.ID, ListingStatus: domain.ListingStatusActive}, false},
		{"photo-1", domain.FileUsage{Kind: domain.FileKindUserPhoto, OwnerID: owner.ID}, true},
		{"passport-1", domain.FileUsage{Kind: domain.FileKindPassport, OwnerID: owner.ID}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			usages, err := pgSQL.FileUsages(ctx, tt.id)
			require.NoError(t, err)
			require.Equal(t, []domain.FileUsage{tt.want}, usages)
			require.Equal(t, tt.public, usages[0].Public())
		})
	}

	t.Run("unreferenced", func(t *testing.T) {
		usages, err := pgSQL.FileUsages(ctx, "orphan")
		require.NoError(t, err)
		require.Empty(t, usages)
	})
}
