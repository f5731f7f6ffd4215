package storage

import (
	"context"
	"easyrent/pkg/domain"
	"time"
)

// UserUpdates describes the optional fields applied by UpdateUser. Only
// non-nil fields are changed.
type UserUpdates struct {
	Email        *string
	Phone        *string
	PasswordHash *string
	FirstName    *string
	LastName     *string
	Patronymic   *string
	BirthDate    *time.Time
	PhotoID      *domain.FileID
	PassportID   *domain.FileID
	Active       *bool
	Verified     *bool
}

// UserFilter narrows the admin user listing. Name filters are
// case-insensitive substrings.
type UserFilter struct {
	ID        *domain.UserID
	FirstName string
	LastName  string
	Limit     uint
	Offset    uint
}

type UserStorage interface {
	// StoreUser inserts a user. ErrDuplicate is returned when the e-mail or
	// phone is taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail matches case-insensitively. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByPhone returns nil when not found.
	UserByPhone(ctx context.Context, phone string) (*domain.User, error)
	// UpdateUser applies updates and returns the updated row, or nil when the
	// user does not exist.
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// DeleteUser removes the user with everything they own.
	DeleteUser(ctx context.Context, id domain.UserID) (bool, error)
	// UserRating aggregates the reviews targeting the user.
	UserRating(ctx context.Context, id domain.UserID) (domain.Rating, error)
	// UserStats lists users with listing and review counters for administration.
	UserStats(ctx context.Context, filter UserFilter) ([]domain.UserStats, error)
}
