package account

import (
	"context"
	"time"

	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/storage"
)

// SignupRequest carries the data of a new account.
type SignupRequest struct {
	Email      string
	Phone      string
	Password   string
	FirstName  string
	LastName   string
	Patronymic string
	BirthDate  time.Time
}

// UpdateRequest is a partial profile update. Nil fields are left unchanged.
type UpdateRequest struct {
	Email      *string
	Phone      *string
	Password   *string
	FirstName  *string
	LastName   *string
	Patronymic *string
	BirthDate  *time.Time
}

// Session is returned after signup and login.
type Session struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Profile is a user with the aggregated rating of the reviews about them.
type Profile struct {
	domain.User

	Rating domain.Rating `json:"rating"`
}

// Service manages user accounts and authentication.
//
//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*Session, error)
	// Login accepts an e-mail (anything containing @) or a phone number.
	Login(ctx context.Context, login, password string) (*Session, error)
	// Authorize loads the caller and rejects blocked accounts.
	Authorize(ctx context.Context, id domain.UserID) (*domain.User, error)
	Profile(ctx context.Context, id domain.UserID) (*Profile, error)
	Update(ctx context.Context, id domain.UserID, req UpdateRequest) (*domain.User, error)
	Delete(ctx context.Context, id domain.UserID) error
	UploadPhoto(ctx context.Context, id domain.UserID, upload filestore.Upload) (*domain.User, error)
	// UploadPassport stores the passport and enqueues its verification.
	UploadPassport(ctx context.Context, id domain.UserID, upload filestore.Upload) (*domain.User, error)

	Block(ctx context.Context, id domain.UserID) (*domain.User, error)
	Unblock(ctx context.Context, id domain.UserID) (*domain.User, error)
	AdminUsers(ctx context.Context, filter storage.UserFilter) ([]domain.UserStats, error)
}
