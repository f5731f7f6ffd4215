package v1handler

import (
	"context"
	"fmt"
	"strings"

	"easyrent/internal/account"
	"easyrent/internal/config"
	"easyrent/pkg/domain"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

const (
	// CallerKey is the context key under which the authenticated caller is stored.
	CallerKey CtxKey = "Caller"
)

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates bearer tokens and loads the caller.
type SecHandler struct {
	verifier *account.Verifier
	accounts account.Service
}

func NewSecHandler(opts *SecHandlerOptions, accounts account.Service) (*SecHandler, error) {
	verifier, err := account.NewVerifier(opts.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not create token verifier: %w", err)
	}

	return &SecHandler{verifier: verifier, accounts: accounts}, nil
}

// HandleBearerAuth verifies the token and returns a context carrying the
// caller. Blocked or deleted accounts are rejected even with a valid token.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	userID, _, err := s.verifier.Verify(token)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	user, err := s.accounts.Authorize(ctx, userID)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	// the stored role wins over the one in the token
	ctx = context.WithValue(ctx, CallerKey, domain.Caller{ID: user.ID, Role: user.Role})
	ctx = logger.WithFields(ctx, zap.Stringer("userID", user.ID))

	return ctx, nil
}

// GetCallerFromContext returns nil for anonymous requests.
func GetCallerFromContext(ctx context.Context) *domain.Caller {
	caller, ok := ctx.Value(CallerKey).(domain.Caller)
	if !ok {
		return nil
	}

	return &caller
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

func (s SecHandler) authenticate(c *gin.Context, required bool) {
	token, ok := bearerToken(c)
	if !ok {
		if required {
			Handler{}.fail(c, serrors.With(serrors.ErrUnauthorized, "bearer token is required"))

			return
		}
		c.Next()

		return
	}

	ctx, err := s.HandleBearerAuth(c.Request.Context(), token)
	if err != nil {
		Handler{}.fail(c, err)

		return
	}

	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// RequireAuth rejects requests without a valid bearer token.
func (s SecHandler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) { s.authenticate(c, true) }
}

// OptionalAuth loads the caller when a token is present. An invalid token
// is still rejected.
func (s SecHandler) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) { s.authenticate(c, false) }
}

// RequireAdmin must run after RequireAuth.
func (s SecHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := GetCallerFromContext(c.Request.Context())
		if caller == nil || !caller.IsAdmin() {
			Handler{}.fail(c, serrors.With(serrors.ErrForbidden, "admin role is required"))

			return
		}
		c.Next()
	}
}
