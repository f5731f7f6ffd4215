package listing_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"easyrent/internal/listing"
	"easyrent/internal/moderation"
	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	mockfilestore "easyrent/pkg/filestore/mock"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"
	mockstorage "easyrent/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type testDeps struct {
	ctrl    *gomock.Controller
	storage *mockstorage.MockStorage
	files   *mockfilestore.MockStore
}

func newTestService(t *testing.T) (testDeps, listing.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := testDeps{ctrl: ctrl, storage: mockstorage.NewMockStorage(ctrl), files: mockfilestore.NewMockStore(ctrl)}

	return d, listing.New(d.storage, d.files, listing.Options{MaxAttempts: 5})
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func validInput() listing.Input {
	return listing.Input{
		Name:          "Sunny flat",
		Description:   "Two rooms near the park",
		Price:         15000,
		CityID:        1,
		StreetID:      10,
		Building:      "5A",
		Floor:         3,
		AllFloors:     9,
		Rooms:         2,
		Bathrooms:     1,
		Square:        54.5,
		HeatingTypeID: 1,
		ListingTypeID: 1,
		TagIDs:        []int64{3, 1, 3},
	}
}

func images(n int) []filestore.Upload {
	out := make([]filestore.Upload, n)
	for i := range out {
		out[i] = filestore.Upload{
			Name:        fmt.Sprintf("img%d.jpg", i),
			ContentType: "image/jpeg",
			Content:     bytes.NewBufferString("jpg"),
		}
	}

	return out
}

func document() filestore.Upload {
	return filestore.Upload{Name: "deed.pdf", ContentType: "application/pdf", Content: bytes.NewBufferString("pdf")}
}

func expectAddress(st *mockstorage.MockStorage) {
	st.EXPECT().CityByID(gomock.Any(), int64(1)).Return(&domain.City{ID: 1, Name: "Київ"}, nil)
	st.EXPECT().StreetByID(gomock.Any(), int64(10)).Return(&domain.Street{ID: 10, CityID: 1}, nil)
}

func TestService_Create(t *testing.T) {
	d, s := newTestService(t)
	owner := domain.UserID(uuid.New())
	id := domain.ListingID(uuid.New())

	expectAddress(d.storage)
	n := 0
	d.files.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, string, io.Reader) (domain.FileID, error) {
			n++

			return domain.FileID(fmt.Sprintf("f%d", n)), nil
		}).Times(5)
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreListing(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, l domain.Listing) (*domain.Listing, error) {
				require.Equal(t, owner, l.OwnerID)
				require.Equal(t, domain.ListingStatusModeration, l.Status)
				require.Equal(t, []domain.FileID{"f1", "f2", "f3", "f4"}, l.Images)
				require.Equal(t, domain.FileID("f5"), l.OwnershipDocumentID)
				require.Equal(t, []int64{1, 3}, l.TagIDs)
				l.ID = id

				return &l, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), moderation.ModerateListingJob{ListingID: id, MaxAttempts: 5}, nil).Return(true, nil)
	})

	created, err := s.Create(context.Background(), owner, validInput(), images(4), document())
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
}

func TestService_CreateValidation(t *testing.T) {
	_, s := newTestService(t)
	owner := domain.UserID(uuid.New())

	_, err := s.Create(context.Background(), owner, validInput(), images(3), document())
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	in := validInput()
	in.Floor = 10
	_, err = s.Create(context.Background(), owner, in, images(4), document())
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = s.Create(context.Background(), owner, validInput(), images(4), filestore.Upload{})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	notImage := images(4)
	notImage[2].ContentType = "text/plain"
	_, err = s.Create(context.Background(), owner, validInput(), notImage, document())
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_CreateStreetOfOtherCity(t *testing.T) {
	d, s := newTestService(t)

	d.storage.EXPECT().CityByID(gomock.Any(), int64(1)).Return(&domain.City{ID: 1}, nil)
	d.storage.EXPECT().StreetByID(gomock.Any(), int64(10)).Return(&domain.Street{ID: 10, CityID: 2}, nil)

	_, err := s.Create(context.Background(), domain.UserID(uuid.New()), validInput(), images(4), document())
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_CreateRemovesFilesOnFailure(t *testing.T) {
	d, s := newTestService(t)

	expectAddress(d.storage)
	d.files.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.FileID("f"), nil).Times(5)
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreListing(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("x: %w", storage.ErrInvalidReference))
	})
	d.files.EXPECT().Delete(gomock.Any(), domain.FileID("f")).Return(nil).Times(5)

	_, err := s.Create(context.Background(), domain.UserID(uuid.New()), validInput(), images(4), document())
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Search(t *testing.T) {
	owner := domain.UserID(uuid.New())

	t.Run("defaults to active", func(t *testing.T) {
		d, s := newTestService(t)
		d.storage.EXPECT().SearchListings(gomock.Any(), storage.ListingFilter{
			Statuses: []domain.ListingStatus{domain.ListingStatusActive},
		}, storage.ListingCursor{}, uint(listing.DefaultLimit)).Return(storage.ListingPage{}, nil)

		_, err := s.Search(context.Background(), nil, storage.ListingFilter{}, storage.ListingCursor{}, 0)
		require.NoError(t, err)
	})

	t.Run("owner sees own moderation", func(t *testing.T) {
		d, s := newTestService(t)
		d.storage.EXPECT().SearchListings(gomock.Any(), gomock.Any(), gomock.Any(), uint(listing.MaxLimit)).
			Return(storage.ListingPage{}, nil)

		_, err := s.Search(context.Background(), &domain.Caller{ID: owner}, storage.ListingFilter{
			OwnerID:  &owner,
			Statuses: []domain.ListingStatus{domain.ListingStatusModeration},
		}, storage.ListingCursor{}, 1000)
		require.NoError(t, err)
	})

	t.Run("others may not", func(t *testing.T) {
		_, s := newTestService(t)

		_, err := s.Search(context.Background(), &domain.Caller{ID: domain.UserID(uuid.New())}, storage.ListingFilter{
			OwnerID:  &owner,
			Statuses: []domain.ListingStatus{domain.ListingStatusDiscarded},
		}, storage.ListingCursor{}, 10)
		require.ErrorIs(t, err, serrors.ErrForbidden)

		_, err = s.Search(context.Background(), nil, storage.ListingFilter{
			Statuses: []domain.ListingStatus{"BOGUS"},
		}, storage.ListingCursor{}, 10)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestService_Get(t *testing.T) {
	d, s := newTestService(t)
	owner := domain.User{ID: domain.UserID(uuid.New()), FirstName: "Ivan", Verified: true}
	l := &domain.Listing{
		ID:            domain.ListingID(uuid.New()),
		OwnerID:       owner.ID,
		Status:        domain.ListingStatusActive,
		ListingTypeID: 2,
		HeatingTypeID: 1,
		TagIDs:        []int64{7},
	}

	d.storage.EXPECT().ListingByID(gomock.Any(), l.ID).Return(l, nil)
	d.storage.EXPECT().UserByID(gomock.Any(), owner.ID).Return(&owner, nil)
	d.storage.EXPECT().UserRating(gomock.Any(), owner.ID).Return(domain.Rating{Average: 4, Count: 1}, nil)
	d.storage.EXPECT().CatalogItems(gomock.Any(), domain.CatalogListingTypes).
		Return([]domain.CatalogItem{{ID: 1, Name: "Flat"}, {ID: 2, Name: "House"}}, nil)
	d.storage.EXPECT().CatalogItems(gomock.Any(), domain.CatalogHeatingTypes).
		Return([]domain.CatalogItem{{ID: 1, Name: "Central"}}, nil)
	d.storage.EXPECT().ListingTags(gomock.Any()).
		Return([]domain.ListingTag{{ID: 1, Name: "Balcony"}, {ID: 7, Name: "Pets allowed"}}, nil)

	detail, err := s.Get(context.Background(), nil, l.ID)
	require.NoError(t, err)
	require.Equal(t, "House", detail.ListingTypeName)
	require.Equal(t, "Central", detail.HeatingTypeName)
	require.Equal(t, []domain.ListingTag{{ID: 7, Name: "Pets allowed"}}, detail.Tags)
	require.Equal(t, "Ivan", detail.Owner.FirstName)
	require.True(t, detail.Owner.Verified)
}

func TestService_GetHidden(t *testing.T) {
	d, s := newTestService(t)
	l := &domain.Listing{ID: domain.ListingID(uuid.New()), OwnerID: domain.UserID(uuid.New()), Status: domain.ListingStatusDiscarded}

	d.storage.EXPECT().ListingByID(gomock.Any(), l.ID).Return(l, nil).Times(2)

	_, err := s.Get(context.Background(), nil, l.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
	_, err = s.Get(context.Background(), &domain.Caller{ID: domain.UserID(uuid.New())}, l.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Update(t *testing.T) {
	d, s := newTestService(t)
	owner := domain.Caller{ID: domain.UserID(uuid.New())}
	l := &domain.Listing{
		ID:                  domain.ListingID(uuid.New()),
		OwnerID:             owner.ID,
		Status:              domain.ListingStatusDiscarded,
		DiscardReason:       "bad",
		OwnershipDocumentID: "doc",
	}

	d.storage.EXPECT().ListingByID(gomock.Any(), l.ID).Return(l, nil)
	expectAddress(d.storage)
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateListing(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.Listing) (*domain.Listing, error) {
				require.Equal(t, domain.ListingStatusModeration, u.Status)
				require.Empty(t, u.DiscardReason)
				require.Equal(t, domain.FileID("doc"), u.OwnershipDocumentID)
				require.Equal(t, "Sunny flat", u.Name)

				return &u, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), moderation.ModerateListingJob{ListingID: l.ID, MaxAttempts: 5}, nil).Return(true, nil)
	})

	updated, err := s.Update(context.Background(), owner, l.ID, validInput())
	require.NoError(t, err)
	require.Equal(t, domain.ListingStatusModeration, updated.Status)
}

func TestService_UpdateForbidden(t *testing.T) {
	d, s := newTestService(t)
	l := &domain.Listing{ID: domain.ListingID(uuid.New()), OwnerID: domain.UserID(uuid.New())}

	d.storage.EXPECT().ListingByID(gomock.Any(), l.ID).Return(l, nil)

	_, err := s.Update(context.Background(), domain.Caller{ID: domain.UserID(uuid.New()), Role: domain.UserRoleAdmin},
		l.ID, validInput())
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestService_ReplaceOwnershipDocument(t *testing.T) {
	d, s := newTestService(t)
	owner := domain.Caller{ID: domain.UserID(uuid.New())}
	l := &domain.Listing{ID: domain.ListingID(uuid.New()), OwnerID: owner.ID, OwnershipDocumentID: "old",
		Status: domain.ListingStatusDiscarded}

	d.storage.EXPECT().ListingByID(gomock.Any(), l.ID).Return(l, nil)
	d.files.EXPECT().Put(gomock.Any(), "deed.pdf", "application/pdf", gomock.Any()).Return(domain.FileID("new"), nil)
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateListing(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.Listing) (*domain.Listing, error) {
				require.Equal(t, domain.FileID("new"), u.OwnershipDocumentID)
				require.Equal(t, domain.ListingStatusModeration, u.Status)

				return &u, nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), nil).Return(true, nil)
	})
	d.files.EXPECT().Delete(gomock.Any(), domain.FileID("old")).Return(errors.New("mongo down"))

	_, err := s.ReplaceOwnershipDocument(context.Background(), owner, l.ID, document())
	require.NoError(t, err)
}

func TestService_ArchiveReactivate(t *testing.T) {
	d, s := newTestService(t)
	owner := domain.Caller{ID: domain.UserID(uuid.New())}
	l := &domain.Listing{ID: domain.ListingID(uuid.New()), OwnerID: owner.ID}

	d.storage.EXPECT().ListingByID(gomock.Any(), l.ID).Return(l, nil).Times(2)
	d.storage.EXPECT().TransitionListing(gomock.Any(), l.ID,
		[]domain.ListingStatus{domain.ListingStatusActive}, domain.ListingStatusArchived, "").Return(l, nil)
	d.storage.EXPECT().TransitionListing(gomock.Any(), l.ID,
		[]domain.ListingStatus{domain.ListingStatusArchived}, domain.ListingStatusActive, "").Return(nil, nil)

	_, err := s.Archive(context.Background(), owner, l.ID)
	require.NoError(t, err)
	_, err = s.Reactivate(context.Background(), owner, l.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_DeleteByAdmin(t *testing.T) {
	d, s := newTestService(t)
	admin := domain.Caller{ID: domain.UserID(uuid.New()), Role: domain.UserRoleAdmin}
	l := &domain.Listing{
		ID:                  domain.ListingID(uuid.New()),
		OwnerID:             domain.UserID(uuid.New()),
		Images:              []domain.FileID{"a", "b"},
		OwnershipDocumentID: "doc",
	}

	d.storage.EXPECT().ListingByID(gomock.Any(), l.ID).Return(l, nil)
	d.storage.EXPECT().DeleteListing(gomock.Any(), l.ID).Return(l, nil)
	for _, id := range []domain.FileID{"a", "b", "doc"} {
		d.files.EXPECT().Delete(gomock.Any(), id).Return(nil)
	}

	require.NoError(t, s.Delete(context.Background(), admin, l.ID))
}

func TestService_Favorites(t *testing.T) {
	d, s := newTestService(t)
	user := domain.UserID(uuid.New())
	listingID := domain.ListingID(uuid.New())

	d.storage.EXPECT().StoreFavorite(gomock.Any(), domain.Favorite{UserID: user, ListingID: listingID}).
		Return(nil, fmt.Errorf("x: %w", storage.ErrDuplicate))
	_, err := s.AddFavorite(context.Background(), user, listingID)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	d.storage.EXPECT().StoreFavorite(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("x: %w", storage.ErrInvalidReference))
	_, err = s.AddFavorite(context.Background(), user, listingID)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	d.storage.EXPECT().DeleteFavoriteByListing(gomock.Any(), user, listingID).Return(false, nil)
	require.ErrorIs(t, s.RemoveFavoriteByListing(context.Background(), user, listingID), serrors.ErrNotFound)

	d.storage.EXPECT().DeleteFavorite(gomock.Any(), user, gomock.Any()).Return(true, nil)
	require.NoError(t, s.RemoveFavorite(context.Background(), user, domain.FavoriteID(uuid.New())))
}
