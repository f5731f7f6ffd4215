package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"easyrent/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type ownershipError struct{ listing string }

func (e ownershipError) Error() string { return "document rejected for " + e.listing }

type quotaError struct{}

func (quotaError) Error() string        { return "quota exhausted" }
func (quotaError) Is(target error) bool { return target == serrors.ErrRateLimited }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		require.False(t, seen[k.Error()], "duplicate kind %s", k)
		seen[k.Error()] = true
	}
}

func TestError_Message(t *testing.T) {
	cause := errors.New("connection reset")

	cases := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{name: "message", err: serrors.With(serrors.ErrNotFound, "listing %s not found", "a1"), want: "listing a1 not found"},
		{name: "message and cause", err: serrors.Wrap(serrors.ErrUnavailable, cause, "assistant call failed"), want: "assistant call failed: connection reset"},
		{name: "cause only", err: serrors.Wrap(serrors.ErrInternal, cause, ""), want: "connection reset"},
		{name: "kind only", err: serrors.KindOnly(serrors.ErrForbidden), want: "FORBIDDEN"},
		{name: "nil", err: nil, want: "<nil>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestError_IsAs(t *testing.T) {
	cause := &ownershipError{listing: "a1"}
	err := fmt.Errorf("moderating: %w", serrors.Wrap(serrors.ErrConflict, cause, "listing changed"))

	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrNotFound)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrConflict, k)

	var oe *ownershipError
	require.ErrorAs(t, err, &oe)
	require.Equal(t, "a1", oe.listing)
}

func TestError_Accessors(t *testing.T) {
	cause := errors.New("bad signature")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "invalid token")

	require.Equal(t, serrors.ErrUnauthorized, err.Kind())
	require.Equal(t, "invalid token", err.Message())
	require.Equal(t, cause, err.Cause())
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(serrors.With(serrors.ErrBadRequest, "price must be positive")))
	require.Equal(t, serrors.ErrRateLimited, serrors.KindOf(fmt.Errorf("verify: %w", serrors.ErrRateLimited)))
	require.Equal(t, serrors.ErrNotFound,
		serrors.KindOf(fmt.Errorf("outer: %w", serrors.Wrap(serrors.ErrNotFound, serrors.ErrConflict, "gone"))))
	require.Equal(t, serrors.ErrRateLimited, serrors.KindOf(fmt.Errorf("review: %w", quotaError{})))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "email already taken",
		serrors.MessageOf(fmt.Errorf("signup: %w", serrors.With(serrors.ErrBadRequest, "email already taken"))))
	require.Empty(t, serrors.MessageOf(serrors.ErrNotFound))
	require.Empty(t, serrors.MessageOf(errors.New("plain")))
}
