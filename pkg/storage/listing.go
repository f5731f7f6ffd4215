package storage

import (
	"context"
	"easyrent/pkg/domain"
	"fmt"
	"strings"
	"time"
)

// ListingFilter narrows a listing search. City, Street and Building are
// case-insensitive substrings of the address parts.
type ListingFilter struct {
	domain.ListingCriteria

	City     string
	Street   string
	Building string

	CommunalMin *int64
	CommunalMax *int64

	OwnerID  *domain.UserID
	Statuses []domain.ListingStatus
}

// ListingCursor points at the last listing of a page. Listings sharing a
// creation time are told apart by id.
type ListingCursor struct {
	CreatedAt time.Time
	ID        domain.ListingID
}

const cursorSeparator = "_"

func (c ListingCursor) IsZero() bool {
	return c.CreatedAt.IsZero()
}

func (c ListingCursor) String() string {
	return c.CreatedAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + c.ID.String()
}

func (c ListingCursor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ListingCursor) UnmarshalText(text []byte) error {
	parsed, err := ParseListingCursor(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}

// ParseListingCursor reads a cursor produced by ListingCursor.String. An
// empty string is the zero cursor.
func ParseListingCursor(s string) (ListingCursor, error) {
	if s == "" {
		return ListingCursor{}, nil
	}

	rawTime, rawID, ok := strings.Cut(s, cursorSeparator)
	if !ok {
		return ListingCursor{}, fmt.Errorf("malformed cursor %q", s)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rawTime)
	if err != nil {
		return ListingCursor{}, fmt.Errorf("malformed cursor time: %w", err)
	}
	var id domain.ListingID
	if err := id.UnmarshalText([]byte(rawID)); err != nil {
		return ListingCursor{}, fmt.Errorf("malformed cursor id: %w", err)
	}

	return ListingCursor{CreatedAt: createdAt, ID: id}, nil
}

// ListingPage is a page of listings with the cursor of the next page, which
// is nil on the last page.
type ListingPage struct {
	Listings   []domain.Listing
	NextCursor *ListingCursor
}

type ListingStorage interface {
	// StoreListing inserts a listing together with its images and tags and
	// returns it as stored. ErrInvalidReference is returned for unknown
	// cities, streets, tags or catalog entries.
	StoreListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
	// ListingByID returns nil when the listing does not exist.
	ListingByID(ctx context.Context, id domain.ListingID) (*domain.Listing, error)
	// SearchListings returns listings ordered after cursor (when non-zero),
	// newest first.
	SearchListings(ctx context.Context, filter ListingFilter, cursor ListingCursor, limit uint) (ListingPage, error)
	// UpdateListing replaces the editable fields, status, discard reason,
	// ownership document and tags of a listing. Images are left untouched.
	// Returns nil when the listing does not exist.
	UpdateListing(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
	// TransitionListing moves the listing to status `to` only when its current
	// status is one of `from`. An empty reason clears the discard reason.
	// Returns nil when the listing is missing or not in an expected status.
	TransitionListing(ctx context.Context,
		id domain.ListingID,
		from []domain.ListingStatus,
		to domain.ListingStatus,
		reason string) (*domain.Listing, error)
	// ListingIDsByStatus returns up to limit listing ids in the given status,
	// oldest first.
	ListingIDsByStatus(ctx context.Context, status domain.ListingStatus, limit uint) ([]domain.ListingID, error)
	// StaleListings returns up to limit active listings whose last activity
	// happened before the given time, oldest activity first.
	StaleListings(ctx context.Context, before time.Time, limit uint) ([]domain.Listing, error)
	// DeleteListing removes the listing and returns it, or nil when not found.
	DeleteListing(ctx context.Context, id domain.ListingID) (*domain.Listing, error)
}
