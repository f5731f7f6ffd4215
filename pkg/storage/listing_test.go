package storage_test

import (
	"encoding/json"
	"testing"
	"time"

	"easyrent/pkg/domain"
	"easyrent/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestListingCursor(t *testing.T) {
	cursor := storage.ListingCursor{
		CreatedAt: time.Date(2025, 3, 4, 5, 6, 7, 123456000, time.FixedZone("EET", 2*60*60)),
		ID:        domain.ListingID(uuid.MustParse("6f1c0a4e-2d1b-4c8e-9a57-3b0d2e7f9c10")),
	}

	t.Run("round trip", func(t *testing.T) {
		require.Equal(t, "2025-03-04T03:06:07.123456Z_6f1c0a4e-2d1b-4c8e-9a57-3b0d2e7f9c10", cursor.String())

		parsed, err := storage.ParseListingCursor(cursor.String())
		require.NoError(t, err)
		require.Equal(t, cursor.ID, parsed.ID)
		require.True(t, cursor.CreatedAt.Equal(parsed.CreatedAt))
	})

	t.Run("json", func(t *testing.T) {
		b, err := json.Marshal(struct {
			Next *storage.ListingCursor `json:"next"`
		}{&cursor})
		require.NoError(t, err)
		require.JSONEq(t, `{"next":"2025-03-04T03:06:07.123456Z_6f1c0a4e-2d1b-4c8e-9a57-3b0d2e7f9c10"}`, string(b))
	})

	t.Run("empty is zero", func(t *testing.T) {
		parsed, err := storage.ParseListingCursor("")
		require.NoError(t, err)
		require.True(t, parsed.IsZero())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, raw := range []string{
			"2025-03-04T03:06:07Z",
			"yesterday_6f1c0a4e-2d1b-4c8e-9a57-3b0d2e7f9c10",
			"2025-03-04T03:06:07Z_nope",
		} {
			_, err := storage.ParseListingCursor(raw)
			require.Error(t, err, raw)
		}
	})
}
