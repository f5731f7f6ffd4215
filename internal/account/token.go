package account

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"easyrent/pkg/domain"
	"easyrent/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the JWT claims of an access token. The subject is the user id.
type Claims struct {
	jwt.RegisteredClaims

	Role domain.UserRole `json:"role"`
}

// Issuer signs RS256 access tokens.
type Issuer struct {
	key *rsa.PrivateKey
	ttl time.Duration
	now func() time.Time
}

// NewIssuer parses a PEM encoded RSA private key.
func NewIssuer(privateKeyPEM string, ttl time.Duration) (*Issuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	return &Issuer{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token for the user.
func (i *Issuer) Issue(userID domain.UserID, role domain.UserRole) (string, error) {
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}

// Verifier validates RS256 access tokens.
type Verifier struct {
	key *rsa.PublicKey
}

// NewVerifier parses a PEM encoded RSA public key.
func NewVerifier(publicKeyPEM string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &Verifier{key: key}, nil
}

// Verify checks the signature and lifetime of the token and returns its
// subject and role. Every failure is reported as serrors.ErrUnauthorized.
func (v *Verifier) Verify(token string) (domain.UserID, domain.UserRole, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return v.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return domain.UserID{}, "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.UserID{}, "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	role := claims.Role
	if role == "" {
		role = domain.UserRoleUser
	}

	return domain.UserID(id), role, nil
}
