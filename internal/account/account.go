// Package account implements signup, login, profiles and user administration.
package account

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"path"
	"regexp"
	"strings"
	"time"

	"easyrent/internal/config"
	"easyrent/internal/moderation"
	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var phoneRe = regexp.MustCompile(`^\+?[0-9]{10,15}$`) //nolint: gochecknoglobals

// passportTypes maps accepted passport file extensions to content types.
var passportTypes = map[string]string{ //nolint: gochecknoglobals
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type Options struct {
	// MaxAttempts bounds retries of identity verification jobs.
	MaxAttempts int
	BcryptCost  int
}

func NewOptions(cfg *config.Config) Options {
	return Options{MaxAttempts: cfg.Worker.MaxAttempts, BcryptCost: bcrypt.DefaultCost}
}

type service struct {
	options Options
	storage storage.Storage
	files   filestore.Store
	issuer  *Issuer
}

func New(storage storage.Storage, files filestore.Store, issuer *Issuer, options Options) Service {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}

	return &service{options: options, storage: storage, files: files, issuer: issuer}
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)

	return err == nil && addr.Address == email
}

func normalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
}

func (s *service) hash(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", serrors.With(serrors.ErrBadRequest, "password must be at least %d characters long", minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.options.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

func (s *service) session(user *domain.User) (*Session, error) {
	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: user}, nil
}

func (s *service) checkUnique(ctx context.Context, email, phone string, self *domain.UserID) error {
	taken := func(u *domain.User) bool { return u != nil && (self == nil || u.ID != *self) }

	if email != "" {
		u, err := s.storage.UserByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("could not look up user by email: %w", err)
		}
		if taken(u) {
			return serrors.With(serrors.ErrBadRequest, "email is already registered")
		}
	}
	if phone != "" {
		u, err := s.storage.UserByPhone(ctx, phone)
		if err != nil {
			return fmt.Errorf("could not look up user by phone: %w", err)
		}
		if taken(u) {
			return serrors.With(serrors.ErrBadRequest, "phone is already registered")
		}
	}

	return nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = normalizePhone(req.Phone)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)

	switch {
	case !validEmail(req.Email):
		return nil, serrors.With(serrors.ErrBadRequest, "invalid email")
	case !phoneRe.MatchString(req.Phone):
		return nil, serrors.With(serrors.ErrBadRequest, "invalid phone")
	case req.FirstName == "" || req.LastName == "":
		return nil, serrors.With(serrors.ErrBadRequest, "first and last name are required")
	case !req.BirthDate.IsZero() && req.BirthDate.After(time.Now()):
		return nil, serrors.With(serrors.ErrBadRequest, "birth date is in the future")
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, req.Email, req.Phone, nil); err != nil {
		return nil, err
	}

	user, err := s.storage.StoreUser(ctx, domain.User{
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Patronymic:   strings.TrimSpace(req.Patronymic),
		BirthDate:    req.BirthDate,
		Role:         domain.UserRoleUser,
		Active:       true,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrBadRequest, "email or phone is already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	logger.Info(ctx, "user signed up", zap.Stringer("userID", user.ID))

	return s.session(user)
}

func (s *service) Login(ctx context.Context, login, password string) (*Session, error) {
	login = strings.TrimSpace(login)

	var (
		user *domain.User
		err  error
	)
	if strings.Contains(login, "@") {
		user, err = s.storage.UserByEmail(ctx, login)
	} else {
		user, err = s.storage.UserByPhone(ctx, normalizePhone(login))
	}
	if err != nil {
		return nil, fmt.Errorf("could not look up user: %w", err)
	}

	badCredentials := serrors.With(serrors.ErrBadRequest, "invalid login or password")
	if user == nil {
		return nil, badCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, badCredentials
	}
	if !user.Active {
		return nil, serrors.With(serrors.ErrForbidden, "account is blocked")
	}

	return s.session(user)
}

func (s *service) get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (s *service) Authorize(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "user does not exist")
	}
	if !user.Active {
		return nil, serrors.With(serrors.ErrForbidden, "account is blocked")
	}

	return user, nil
}

func (s *service) Profile(ctx context.Context, id domain.UserID) (*Profile, error) {
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	rating, err := s.storage.UserRating(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user rating: %w", err)
	}

	return &Profile{User: *user, Rating: rating}, nil
}

func (s *service) Update(ctx context.Context, id domain.UserID, req UpdateRequest) (*domain.User, error) {
	var updates storage.UserUpdates

	trimmed := func(v *string) *string {
		if v == nil {
			return nil
		}
		t := strings.TrimSpace(*v)

		return &t
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if !validEmail(email) {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid email")
		}
		updates.Email = &email
	}
	if req.Phone != nil {
		phone := normalizePhone(*req.Phone)
		if !phoneRe.MatchString(phone) {
			return nil, serrors.With(serrors.ErrBadRequest, "invalid phone")
		}
		updates.Phone = &phone
	}
	if req.Password != nil {
		hash, err := s.hash(*req.Password)
		if err != nil {
			return nil, err
		}
		updates.PasswordHash = &hash
	}
	updates.FirstName = trimmed(req.FirstName)
	updates.LastName = trimmed(req.LastName)
	if (updates.FirstName != nil && *updates.FirstName == "") || (updates.LastName != nil && *updates.LastName == "") {
		return nil, serrors.With(serrors.ErrBadRequest, "first and last name must not be empty")
	}
	updates.Patronymic = trimmed(req.Patronymic)
	if req.BirthDate != nil {
		if req.BirthDate.After(time.Now()) {
			return nil, serrors.With(serrors.ErrBadRequest, "birth date is in the future")
		}
		updates.BirthDate = req.BirthDate
	}

	var email, phone string
	if updates.Email != nil {
		email = *updates.Email
	}
	if updates.Phone != nil {
		phone = *updates.Phone
	}
	if err := s.checkUnique(ctx, email, phone, &id); err != nil {
		return nil, err
	}

	user, err := s.storage.UpdateUser(ctx, id, updates)
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.With(serrors.ErrBadRequest, "email or phone is already registered")
	}
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// removeFile deletes a file that is no longer referenced. Failures only leak
// storage and are logged.
func (s *service) removeFile(ctx context.Context, id domain.FileID) {
	if id == "" {
		return
	}
	if err := s.files.Delete(ctx, id); err != nil && !errors.Is(err, serrors.ErrNotFound) {
		logger.Warn(ctx, "could not delete file", zap.String("fileID", string(id)), zap.Error(err))
	}
}

func (s *service) Delete(ctx context.Context, id domain.UserID) error {
	user, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := s.storage.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	s.removeFile(ctx, user.PhotoID)
	s.removeFile(ctx, user.PassportID)
	logger.Info(ctx, "user deleted", zap.Stringer("userID", id))

	return nil
}

func (s *service) UploadPhoto(ctx context.Context, id domain.UserID, upload filestore.Upload) (*domain.User, error) {
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, serrors.With(serrors.ErrBadRequest, "photo must be an image")
	}
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	fileID, err := s.files.Put(ctx, upload.Name, upload.ContentType, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("could not store photo: %w", err)
	}
	updated, err := s.storage.UpdateUser(ctx, id, storage.UserUpdates{PhotoID: &fileID})
	if err != nil {
		s.removeFile(ctx, fileID)

		return nil, fmt.Errorf("could not update user photo: %w", err)
	}
	if updated == nil {
		s.removeFile(ctx, fileID)

		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	s.removeFile(ctx, user.PhotoID)

	return updated, nil
}

func (s *service) UploadPassport(ctx context.Context, id domain.UserID, upload filestore.Upload) (*domain.User, error) {
	ext := strings.ToLower(path.Ext(upload.Name))
	contentType, ok := passportTypes[ext]
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "passport must be a pdf, jpg, jpeg or png file")
	}
	user, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	fileID, err := s.files.Put(ctx, upload.Name, contentType, upload.Content)
	if err != nil {
		return nil, fmt.Errorf("could not store passport: %w", err)
	}

	var updated *domain.User
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		verified := false
		updated, err = tx.UpdateUser(ctx, id, storage.UserUpdates{PassportID: &fileID, Verified: &verified})
		if err != nil {
			return fmt.Errorf("could not update user passport: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "user not found")
		}

		if _, err := tx.AddJob(ctx, moderation.VerifyIdentityJob{UserID: id, MaxAttempts: s.options.MaxAttempts}, nil); err != nil {
			return fmt.Errorf("could not add identity verification job: %w", err)
		}

		return nil
	})
	if err != nil {
		s.removeFile(ctx, fileID)

		return nil, err //nolint: wrapcheck
	}

	s.removeFile(ctx, user.PassportID)
	logger.Info(ctx, "passport uploaded", zap.Stringer("userID", id))

	return updated, nil
}

func (s *service) setActive(ctx context.Context, id domain.UserID, active bool) (*domain.User, error) {
	user, err := s.storage.UpdateUser(ctx, id, storage.UserUpdates{Active: &active})
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}
	logger.Info(ctx, "user activity changed", zap.Stringer("userID", id), zap.Bool("active", active))

	return user, nil
}

func (s *service) Block(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return s.setActive(ctx, id, false)
}

func (s *service) Unblock(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return s.setActive(ctx, id, true)
}

func (s *service) AdminUsers(ctx context.Context, filter storage.UserFilter) ([]domain.UserStats, error) {
	if filter.Limit == 0 || filter.Limit > 100 {
		filter.Limit = 100
	}
	users, err := s.storage.UserStats(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}
