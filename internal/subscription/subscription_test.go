package subscription_test

import (
	"context"
	"errors"
	"testing"

	"easyrent/internal/subscription"
	"easyrent/pkg/domain"
	"easyrent/pkg/logger"
	mockmailer "easyrent/pkg/mailer/mock"
	"easyrent/pkg/serrors"
	mockstorage "easyrent/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func ptr[T any](v T) *T { return &v }

func newTestService(t *testing.T) (*mockstorage.MockStorage, *mockmailer.MockMailer, subscription.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	m := mockmailer.NewMockMailer(ctrl)

	return st, m, subscription.New(st, m)
}

func TestValidateCriteria(t *testing.T) {
	t.Parallel()

	require.NoError(t, subscription.ValidateCriteria(domain.ListingCriteria{}))
	require.NoError(t, subscription.ValidateCriteria(domain.ListingCriteria{PriceMin: ptr[int64](1), PriceMax: ptr[int64](1)}))
	require.ErrorIs(t, subscription.ValidateCriteria(domain.ListingCriteria{PriceMin: ptr[int64](-1)}), serrors.ErrBadRequest)
	require.ErrorIs(t, subscription.ValidateCriteria(domain.ListingCriteria{
		SquareMin: ptr(50.0), SquareMax: ptr(20.0),
	}), serrors.ErrBadRequest)
}

func TestService_GetNotFound(t *testing.T) {
	st, _, s := newTestService(t)

	st.EXPECT().SubscriptionByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err := s.Get(context.Background(), domain.UserID(uuid.New()), domain.SubscriptionID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	st, _, s := newTestService(t)

	st.EXPECT().DeleteSubscription(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	err := s.Delete(context.Background(), domain.UserID(uuid.New()), domain.SubscriptionID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_Notify(t *testing.T) {
	st, m, s := newTestService(t)
	ctx := context.Background()

	owner := domain.UserID(uuid.New())
	alice := domain.User{ID: domain.UserID(uuid.New()), Email: "alice@example.com", Active: true}
	bob := domain.User{ID: domain.UserID(uuid.New()), Email: "bob@example.com", Active: false}
	carol := domain.User{ID: domain.UserID(uuid.New()), Email: "carol@example.com", Active: true}

	listing := &domain.Listing{
		ID:      domain.ListingID(uuid.New()),
		OwnerID: owner,
		Name:    "Flat",
		Price:   15000,
		Rooms:   2,
		Status:  domain.ListingStatusActive,
	}

	st.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)
	st.EXPECT().SubscriptionCandidates(gomock.Any(), *listing).Return([]domain.Subscription{
		{UserID: alice.ID, Criteria: domain.ListingCriteria{Rooms: ptr(2)}},
		{UserID: alice.ID}, // second matching search of the same user
		{UserID: bob.ID},
		{UserID: carol.ID, Criteria: domain.ListingCriteria{PriceMax: ptr[int64](10000)}},
		{UserID: owner},
	}, nil)
	st.EXPECT().UserByID(gomock.Any(), alice.ID).Return(&alice, nil)
	st.EXPECT().UserByID(gomock.Any(), bob.ID).Return(&bob, nil)
	m.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(nil)

	n, err := s.Notify(ctx, listing.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestService_Notify_MailFailureIsNotFatal(t *testing.T) {
	st, m, s := newTestService(t)

	alice := domain.User{ID: domain.UserID(uuid.New()), Email: "alice@example.com", Active: true}
	listing := &domain.Listing{ID: domain.ListingID(uuid.New()), OwnerID: domain.UserID(uuid.New()), Status: domain.ListingStatusActive}

	st.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)
	st.EXPECT().SubscriptionCandidates(gomock.Any(), gomock.Any()).Return([]domain.Subscription{{UserID: alice.ID}}, nil)
	st.EXPECT().UserByID(gomock.Any(), alice.ID).Return(&alice, nil)
	m.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	n, err := s.Notify(context.Background(), listing.ID)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestService_Notify_SubscriberLookupFailureIsNotFatal(t *testing.T) {
	st, m, s := newTestService(t)

	alice := domain.User{ID: domain.UserID(uuid.New()), Email: "alice@example.com", Active: true}
	bob := domain.User{ID: domain.UserID(uuid.New()), Email: "bob@example.com", Active: true}
	listing := &domain.Listing{ID: domain.ListingID(uuid.New()), OwnerID: domain.UserID(uuid.New()), Status: domain.ListingStatusActive}

	st.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)
	st.EXPECT().SubscriptionCandidates(gomock.Any(), gomock.Any()).
		Return([]domain.Subscription{{UserID: alice.ID}, {UserID: bob.ID}}, nil)
	gomock.InOrder(
		st.EXPECT().UserByID(gomock.Any(), alice.ID).Return(&alice, nil),
		m.EXPECT().Send(gomock.Any(), "alice@example.com", gomock.Any(), gomock.Any()).Return(nil),
		st.EXPECT().UserByID(gomock.Any(), bob.ID).Return(nil, errors.New("connection reset")),
	)

	n, err := s.Notify(context.Background(), listing.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestService_Notify_InactiveListing(t *testing.T) {
	st, _, s := newTestService(t)

	listing := &domain.Listing{ID: domain.ListingID(uuid.New()), Status: domain.ListingStatusArchived}
	st.EXPECT().ListingByID(gomock.Any(), listing.ID).Return(listing, nil)

	n, err := s.Notify(context.Background(), listing.ID)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestService_Notify_MissingListing(t *testing.T) {
	st, _, s := newTestService(t)

	st.EXPECT().ListingByID(gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err := s.Notify(context.Background(), domain.ListingID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
