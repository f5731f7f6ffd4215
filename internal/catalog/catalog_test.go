package catalog_test

import (
	"context"
	"testing"

	"easyrent/internal/catalog"
	"easyrent/pkg/domain"
	"easyrent/pkg/serrors"
	mockstorage "easyrent/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Items(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := catalog.New(st)

	st.EXPECT().CatalogItems(gomock.Any(), domain.CatalogReviewTags).
		Return([]domain.CatalogItem{{ID: 1, Name: "Rude"}}, nil)

	items, err := s.Items(context.Background(), domain.CatalogReviewTags)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = s.Items(context.Background(), "users")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_ListingStatuses(t *testing.T) {
	s := catalog.New(nil)
	require.Equal(t, []domain.ListingStatus{
		domain.ListingStatusActive,
		domain.ListingStatusArchived,
		domain.ListingStatusModeration,
		domain.ListingStatusDiscarded,
	}, s.ListingStatuses())
}
