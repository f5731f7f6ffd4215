package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"easyrent/internal/account"
	mockaccount "easyrent/internal/account/mock"
	"easyrent/internal/api/handler/v1handler"
	"easyrent/pkg/domain"
	"easyrent/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// genRSAKeys returns the private key with PEM encoded private and public keys.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})
	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})

	return priv, string(privPEM), string(pubPEM)
}

func newSecHandlerForTest(t *testing.T, pubPEM string, accounts account.Service) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM}, accounts)
	require.NoError(t, err, "NewSecHandler failed")

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := account.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(exp),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
		Role: domain.UserRoleUser,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mockaccount.NewMockService(ctrl)
	priv, _, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, accounts)

	uid := domain.UserID(uuid.New())
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))
	// the stored role is used, not the one in the token
	accounts.EXPECT().Authorize(gomock.Any(), uid).Return(&domain.User{ID: uid, Role: domain.UserRoleAdmin}, nil)

	ctx, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.NoError(t, err)

	caller := v1handler.GetCallerFromContext(ctx)
	require.NotNil(t, caller, "expected caller in context")
	require.Equal(t, uid, caller.ID)
	require.True(t, caller.IsAdmin())
}

func TestHandleBearerAuth_BlockedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mockaccount.NewMockService(ctrl)
	priv, _, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, accounts)

	uid := domain.UserID(uuid.New())
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))
	accounts.EXPECT().Authorize(gomock.Any(), uid).Return(nil, serrors.With(serrors.ErrForbidden, "account is blocked"))

	_, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.ErrorIs(t, err, serrors.ErrForbidden)
}

func TestHandleBearerAuth_InvalidSignature(t *testing.T) {
	_, _, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, nil)

	privOther, _, _ := genRSAKeys(t)
	now := time.Now()
	tkn := signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_ExpiredToken(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, nil)

	now := time.Now()
	tkn := signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-1*time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_InvalidSubject(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, nil)

	now := time.Now()
	tkn := signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour))

	_, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestHandleBearerAuth_WrongAlgorithm(t *testing.T) {
	_, _, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM, nil)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	_, err = sh.HandleBearerAuth(context.Background(), signed)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a key"}, nil)
	require.Error(t, err)
}
