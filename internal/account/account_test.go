package account_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"easyrent/internal/account"
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
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type testDeps struct {
	ctrl     *gomock.Controller
	storage  *mockstorage.MockStorage
	files    *mockfilestore.MockStore
	verifier *account.Verifier
}

func newTestService(t *testing.T) (testDeps, account.Service) {
	t.Helper()

	_, privPEM, pubPEM := genRSAKeys(t)
	issuer, err := account.NewIssuer(privPEM, time.Hour)
	require.NoError(t, err)
	verifier, err := account.NewVerifier(pubPEM)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	d := testDeps{
		ctrl:     ctrl,
		storage:  mockstorage.NewMockStorage(ctrl),
		files:    mockfilestore.NewMockStore(ctrl),
		verifier: verifier,
	}

	return d, account.New(d.storage, d.files, issuer, account.Options{MaxAttempts: 4, BcryptCost: bcrypt.MinCost})
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

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestService_Signup(t *testing.T) {
	d, s := newTestService(t)
	ctx := context.Background()

	d.storage.EXPECT().UserByEmail(gomock.Any(), "ivan@example.com").Return(nil, nil)
	d.storage.EXPECT().UserByPhone(gomock.Any(), "+380501112233").Return(nil, nil)
	d.storage.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.Equal(t, domain.UserRoleUser, u.Role)
			require.True(t, u.Active)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pass")))
			u.ID = domain.UserID(uuid.New())

			return &u, nil
		})

	session, err := s.Signup(ctx, account.SignupRequest{
		Email:     " Ivan@Example.com ",
		Phone:     "+380 (50) 111-22-33",
		Password:  "secret-pass",
		FirstName: "Ivan",
		LastName:  "Petrenko",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)

	id, role, err := d.verifier.Verify(session.Token)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, id)
	require.Equal(t, domain.UserRoleUser, role)
}

func TestService_SignupValidation(t *testing.T) {
	_, s := newTestService(t)
	valid := account.SignupRequest{
		Email: "a@example.com", Phone: "+380501112233", Password: "longenough", FirstName: "A", LastName: "B",
	}

	for name, mutate := range map[string]func(r *account.SignupRequest){
		"email":    func(r *account.SignupRequest) { r.Email = "nope" },
		"phone":    func(r *account.SignupRequest) { r.Phone = "12" },
		"name":     func(r *account.SignupRequest) { r.LastName = " " },
		"password": func(r *account.SignupRequest) { r.Password = "short" },
		"birth":    func(r *account.SignupRequest) { r.BirthDate = time.Now().Add(24 * time.Hour) },
	} {
		t.Run(name, func(t *testing.T) {
			req := valid
			mutate(&req)
			_, err := s.Signup(context.Background(), req)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		})
	}
}

func TestService_SignupDuplicateEmail(t *testing.T) {
	d, s := newTestService(t)

	d.storage.EXPECT().UserByEmail(gomock.Any(), "a@example.com").Return(&domain.User{ID: domain.UserID(uuid.New())}, nil)

	_, err := s.Signup(context.Background(), account.SignupRequest{
		Email: "a@example.com", Phone: "+380501112233", Password: "longenough", FirstName: "A", LastName: "B",
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorContains(t, err, "email is already registered")
}

func TestService_Login(t *testing.T) {
	user := &domain.User{
		ID:           domain.UserID(uuid.New()),
		PasswordHash: hashed(t, "secret-pass"),
		Role:         domain.UserRoleAdmin,
		Active:       true,
	}

	t.Run("by email", func(t *testing.T) {
		d, s := newTestService(t)
		d.storage.EXPECT().UserByEmail(gomock.Any(), "a@example.com").Return(user, nil)

		session, err := s.Login(context.Background(), "a@example.com", "secret-pass")
		require.NoError(t, err)
		_, role, err := d.verifier.Verify(session.Token)
		require.NoError(t, err)
		require.Equal(t, domain.UserRoleAdmin, role)
	})

	t.Run("by phone", func(t *testing.T) {
		d, s := newTestService(t)
		d.storage.EXPECT().UserByPhone(gomock.Any(), "+380501112233").Return(user, nil)

		_, err := s.Login(context.Background(), "+380 50 111 22 33", "secret-pass")
		require.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		d, s := newTestService(t)
		d.storage.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

		_, err := s.Login(context.Background(), "a@example.com", "wrong-pass")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("unknown", func(t *testing.T) {
		d, s := newTestService(t)
		d.storage.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := s.Login(context.Background(), "a@example.com", "secret-pass")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("blocked", func(t *testing.T) {
		d, s := newTestService(t)
		blocked := *user
		blocked.Active = false
		d.storage.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(&blocked, nil)

		_, err := s.Login(context.Background(), "a@example.com", "secret-pass")
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})
}

func TestService_Authorize(t *testing.T) {
	d, s := newTestService(t)
	id := domain.UserID(uuid.New())

	d.storage.EXPECT().UserByID(gomock.Any(), id).Return(nil, nil)
	_, err := s.Authorize(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	d.storage.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id, Active: false}, nil)
	_, err = s.Authorize(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestService_Profile(t *testing.T) {
	d, s := newTestService(t)
	id := domain.UserID(uuid.New())

	d.storage.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id, FirstName: "Ivan"}, nil)
	d.storage.EXPECT().UserRating(gomock.Any(), id).Return(domain.Rating{Average: 4.5, Count: 2}, nil)

	p, err := s.Profile(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "Ivan", p.FirstName)
	require.InDelta(t, 4.5, p.Rating.Average, 1e-9)
}

func TestService_Update(t *testing.T) {
	d, s := newTestService(t)
	id := domain.UserID(uuid.New())
	email := "New@Example.com"
	password := "another-pass"

	d.storage.EXPECT().UserByEmail(gomock.Any(), "new@example.com").Return(&domain.User{ID: id}, nil)
	d.storage.EXPECT().UpdateUser(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.UserID, u storage.UserUpdates) (*domain.User, error) {
			require.Equal(t, "new@example.com", *u.Email)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)))
			require.Nil(t, u.Phone)

			return &domain.User{ID: id, Email: *u.Email}, nil
		})

	user, err := s.Update(context.Background(), id, account.UpdateRequest{Email: &email, Password: &password})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", user.Email)
}

func TestService_Delete(t *testing.T) {
	d, s := newTestService(t)
	id := domain.UserID(uuid.New())

	d.storage.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id, PhotoID: "photo"}, nil)
	d.storage.EXPECT().DeleteUser(gomock.Any(), id).Return(true, nil)
	d.files.EXPECT().Delete(gomock.Any(), domain.FileID("photo")).Return(serrors.With(serrors.ErrNotFound, "gone"))

	require.NoError(t, s.Delete(context.Background(), id))
}

func TestService_UploadPhoto(t *testing.T) {
	d, s := newTestService(t)
	id := domain.UserID(uuid.New())

	_, err := s.UploadPhoto(context.Background(), id, filestore.Upload{Name: "a.txt", ContentType: "text/plain"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	d.storage.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id, PhotoID: "old"}, nil)
	d.files.EXPECT().Put(gomock.Any(), "me.png", "image/png", gomock.Any()).Return(domain.FileID("new"), nil)
	d.storage.EXPECT().UpdateUser(gomock.Any(), id, storage.UserUpdates{PhotoID: ptr(domain.FileID("new"))}).
		Return(&domain.User{ID: id, PhotoID: "new"}, nil)
	d.files.EXPECT().Delete(gomock.Any(), domain.FileID("old")).Return(nil)

	user, err := s.UploadPhoto(context.Background(), id, filestore.Upload{
		Name: "me.png", ContentType: "image/png", Content: bytes.NewBufferString("png"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.FileID("new"), user.PhotoID)
}

func ptr[T any](v T) *T { return &v }

func TestService_UploadPassport(t *testing.T) {
	d, s := newTestService(t)
	id := domain.UserID(uuid.New())

	_, err := s.UploadPassport(context.Background(), id, filestore.Upload{Name: "passport.gif"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	d.storage.EXPECT().UserByID(gomock.Any(), id).Return(&domain.User{ID: id}, nil)
	d.files.EXPECT().Put(gomock.Any(), "Passport.JPG", "image/jpeg", gomock.Any()).Return(domain.FileID("passport"), nil)
	expectWithTx(t, d.ctrl, d.storage, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateUser(gomock.Any(), id, storage.UserUpdates{
			PassportID: ptr(domain.FileID("passport")),
			Verified:   ptr(false),
		}).Return(&domain.User{ID: id, PassportID: "passport"}, nil)
		tx.EXPECT().AddJob(gomock.Any(), moderation.VerifyIdentityJob{UserID: id, MaxAttempts: 4}, nil).Return(true, nil)
	})

	user, err := s.UploadPassport(context.Background(), id, filestore.Upload{
		Name: "Passport.JPG", Content: bytes.NewBufferString("jpg"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.FileID("passport"), user.PassportID)
}

func TestService_BlockUnblock(t *testing.T) {
	d, s := newTestService(t)
	id := domain.UserID(uuid.New())

	d.storage.EXPECT().UpdateUser(gomock.Any(), id, storage.UserUpdates{Active: ptr(false)}).
		Return(&domain.User{ID: id}, nil)
	_, err := s.Block(context.Background(), id)
	require.NoError(t, err)

	d.storage.EXPECT().UpdateUser(gomock.Any(), id, storage.UserUpdates{Active: ptr(true)}).Return(nil, nil)
	_, err = s.Unblock(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestService_AdminUsers(t *testing.T) {
	d, s := newTestService(t)

	d.storage.EXPECT().UserStats(gomock.Any(), storage.UserFilter{LastName: "pet", Limit: 100}).
		Return([]domain.UserStats{{ListingCount: 2}}, nil)

	users, err := s.AdminUsers(context.Background(), storage.UserFilter{LastName: "pet"})
	require.NoError(t, err)
	require.Len(t, users, 1)
}
