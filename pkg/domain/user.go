package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

func (id UserID) String() string { return uuid.UUID(id).String() }

// UserRole controls which operations a user may perform.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// User is a registered account. Identity fields (patronymic, birth date) are
// required by the ownership check of the moderation pipeline and are filled
// either by the user or from a verified passport.
type User struct {
	ID UserID `json:"id"`

	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`

	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Patronymic string    `json:"patronymic,omitempty"`
	BirthDate  time.Time `json:"birthDate,omitzero"`

	PhotoID    FileID `json:"photoId,omitempty"`
	PassportID FileID `json:"-"`

	Role     UserRole `json:"role"`
	Active   bool     `json:"active"`
	Verified bool     `json:"verified"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == UserRoleAdmin }

// Rating aggregates the reviews left about a user.
type Rating struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// UserStats is the admin view of a user with activity counters.
type UserStats struct {
	User
	ListingCount int64  `json:"listingCount"`
	Rating       Rating `json:"rating"`
}

// Caller is the authenticated user on whose behalf an operation runs.
type Caller struct {
	ID   UserID
	Role UserRole
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool { return c.Role == UserRoleAdmin }

// Owns reports whether the caller is the given user.
func (c Caller) Owns(id UserID) bool { return c.ID == id }
