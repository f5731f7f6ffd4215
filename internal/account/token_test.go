package account_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"easyrent/internal/account"
	"easyrent/pkg/domain"
	"easyrent/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// genRSAKeys returns PEM encoded private and public keys.
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

func TestIssuer_RoundTrip(t *testing.T) {
	_, privPEM, pubPEM := genRSAKeys(t)
	issuer, err := account.NewIssuer(privPEM, time.Hour)
	require.NoError(t, err)
	verifier, err := account.NewVerifier(pubPEM)
	require.NoError(t, err)

	uid := domain.UserID(uuid.New())
	token, err := issuer.Issue(uid, domain.UserRoleAdmin)
	require.NoError(t, err)

	gotID, gotRole, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uid, gotID)
	require.Equal(t, domain.UserRoleAdmin, gotRole)
}

func TestVerifier_InvalidSignature(t *testing.T) {
	_, _, pubPEM := genRSAKeys(t)
	_, otherPriv, _ := genRSAKeys(t)
	issuer, err := account.NewIssuer(otherPriv, time.Hour)
	require.NoError(t, err)
	verifier, err := account.NewVerifier(pubPEM)
	require.NoError(t, err)

	token, err := issuer.Issue(domain.UserID(uuid.New()), domain.UserRoleUser)
	require.NoError(t, err)
	_, _, err = verifier.Verify(token)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestVerifier_Rejects(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	verifier, err := account.NewVerifier(pubPEM)
	require.NoError(t, err)

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}
	now := time.Now()

	tests := map[string]string{
		"expired": sign(jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		}, jwt.SigningMethodRS256, priv),
		"no expiry": sign(jwt.RegisteredClaims{Subject: uuid.NewString()}, jwt.SigningMethodRS256, priv),
		"bad subject": sign(jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}, jwt.SigningMethodRS256, priv),
		"hmac": sign(jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}, jwt.SigningMethodHS256, []byte("secret")),
		"garbage": "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := verifier.Verify(token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestVerifier_DefaultsRole(t *testing.T) {
	priv, _, pubPEM := genRSAKeys(t)
	verifier, err := account.NewVerifier(pubPEM)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(priv)
	require.NoError(t, err)

	_, role, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, domain.UserRoleUser, role)
}

func TestNewIssuer_BadKey(t *testing.T) {
	_, err := account.NewIssuer("nope", time.Hour)
	require.Error(t, err)
	_, err = account.NewVerifier("nope")
	require.Error(t, err)
}
