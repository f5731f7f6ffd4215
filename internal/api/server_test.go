package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"easyrent/internal/account"
	mockaccount "easyrent/internal/account/mock"
	"easyrent/internal/api"
	"easyrent/internal/api/handler/v1handler"
	mockcatalog "easyrent/internal/catalog/mock"
	"easyrent/internal/review"
	"easyrent/pkg/assistant"
	mockassistant "easyrent/pkg/assistant/mock"
	"easyrent/pkg/domain"
	"easyrent/pkg/logger"
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

// rsaKeys returns PEM encoded private and public keys.
func rsaKeys(t *testing.T) (string, string) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	return string(privPEM), string(pubPEM)
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()
	_, pub := rsaKeys(t)

	return pub
}

func TestNewServer_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mockcatalog.NewMockService(ctrl)
	catalog.EXPECT().ListingStatuses().Return(domain.ListingStatuses)

	srv, err := api.NewServer(context.Background(), api.Deps{
		Deps: v1handler.Deps{Catalog: catalog},
	}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    10 * time.Second,
		MetricsPath:       "/metrics",
		Environment:       logger.DevelopmentEnvironment,
	})
	require.NoError(t, err)

	cases := []struct {
		path   string
		status int
	}{
		{path: "/specs/v1.yaml", status: http.StatusOK},
		{path: "/metrics", status: http.StatusOK},
		{path: "/v1/catalog/listing_statuses", status: http.StatusOK},
		{path: "/v1/users/me", status: http.StatusUnauthorized},
		{path: "/debug/pprof/cmdline", status: http.StatusOK},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, tc.status, rec.Code, tc.path)
	}
}

func TestNewServer_InvalidKey(t *testing.T) {
	_, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "nope"},
	})
	require.ErrorContains(t, err, "could not create sec handler")
}

func TestNewServer_WithoutMetrics(t *testing.T) {
	srv, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    10 * time.Second,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServer_WriteTimeoutTooShort(t *testing.T) {
	_, err := api.NewServer(context.Background(), api.Deps{}, api.Options{
		SecHandlerOptions:       &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:          10 * time.Second,
		AssistantRequestTimeout: 2 * time.Minute,
		WriteTimeout:            time.Minute,
	})
	require.ErrorContains(t, err, "write timeout")
}

func TestNewServer_AssistantRouteTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	verifier := mockassistant.NewMockVerifier(ctrl)
	accounts := mockaccount.NewMockService(ctrl)

	privPEM, pubPEM := rsaKeys(t)
	issuer, err := account.NewIssuer(privPEM, time.Hour)
	require.NoError(t, err)

	author := domain.UserID(uuid.New())
	target := domain.UserID(uuid.New())
	token, err := issuer.Issue(author, domain.UserRoleUser)
	require.NoError(t, err)

	const slow = 300 * time.Millisecond

	srv, err := api.NewServer(context.Background(), api.Deps{
		Deps: v1handler.Deps{Accounts: accounts, Reviews: review.New(st, verifier)},
	}, api.Options{
		SecHandlerOptions:       &v1handler.SecHandlerOptions{PublicKey: pubPEM},
		RequestTimeout:          100 * time.Millisecond,
		AssistantRequestTimeout: 5 * time.Second,
		Environment:             logger.DevelopmentEnvironment,
	})
	require.NoError(t, err)

	t.Run("review waits for the assistant", func(t *testing.T) {
		accounts.EXPECT().Authorize(gomock.Any(), author).
			Return(&domain.User{ID: author, Role: domain.UserRoleUser, Active: true}, nil)
		st.EXPECT().UserByID(gomock.Any(), target).Return(&domain.User{ID: target}, nil)
		st.EXPECT().Reviews(gomock.Any(), gomock.Any()).Return(nil, nil)
		verifier.EXPECT().VerifyText(gomock.Any(), gomock.Any(), nil).DoAndReturn(
			func(ctx context.Context, _ string, _ []assistant.Attachment) (assistant.TextVerdict, error) {
				select {
				case <-time.After(slow):
					return assistant.TextVerdict{OK: true}, nil
				case <-ctx.Done():
					return assistant.TextVerdict{}, ctx.Err()
				}
			})
		st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cb func(storage.AllStorage) error) error {
				tx := mockstorage.NewMockAllStorage(ctrl)
				tx.EXPECT().StoreReview(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r domain.Review) (*domain.Review, error) {
						r.ID = domain.ReviewID(uuid.New())

						return &r, nil
					})
				tx.EXPECT().TargetTagCount(gomock.Any(), target).Return(int64(0), nil)

				return cb(tx)
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/users/"+target.String()+"/reviews",
			strings.NewReader(`{"rating":4,"description":"Polite landlord"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	})

	t.Run("other routes keep the request timeout", func(t *testing.T) {
		id := domain.ReviewID(uuid.New())
		done := make(chan struct{})
		st.EXPECT().ReviewByID(gomock.Any(), id).DoAndReturn(
			func(context.Context, domain.ReviewID) (*domain.Review, error) {
				defer close(done)
				time.Sleep(slow)

				return &domain.Review{ID: id}, nil
			})

		rec := httptest.NewRecorder()
		srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reviews/"+uuid.UUID(id).String(), nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.JSONEq(t, `{"code":"TIMEOUT","message":"request timed out"}`, rec.Body.String())
		<-done
	})
}
