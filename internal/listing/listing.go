// Package listing implements rental listings and favorites.
package listing

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"easyrent/internal/config"
	"easyrent/internal/moderation"
	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"

	"go.uber.org/zap"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Options struct {
	// MaxAttempts bounds retries of moderation jobs.
	MaxAttempts int
}

func NewOptions(cfg *config.Config) Options {
	return Options{MaxAttempts: cfg.Worker.MaxAttempts}
}

type service struct {
	options Options
	storage storage.Storage
	files   filestore.Store
}

func New(storage storage.Storage, files filestore.Store, options Options) Service {
	return &service{options: options, storage: storage, files: files}
}

func validate(in Input) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return serrors.With(serrors.ErrBadRequest, "name is required")
	case strings.TrimSpace(in.Description) == "":
		return serrors.With(serrors.ErrBadRequest, "description is required")
	case strings.TrimSpace(in.Building) == "":
		return serrors.With(serrors.ErrBadRequest, "building is required")
	case in.Price <= 0:
		return serrors.With(serrors.ErrBadRequest, "price must be positive")
	case in.Communal < 0:
		return serrors.With(serrors.ErrBadRequest, "communal must not be negative")
	case in.Rooms < 1:
		return serrors.With(serrors.ErrBadRequest, "rooms must be at least 1")
	case in.Bathrooms < 0:
		return serrors.With(serrors.ErrBadRequest, "bathrooms must not be negative")
	case in.Square <= 0:
		return serrors.With(serrors.ErrBadRequest, "square must be positive")
	case in.AllFloors < 1 || in.Floor > in.AllFloors:
		return serrors.With(serrors.ErrBadRequest, "floor must not exceed the number of floors")
	case (in.Latitude == nil) != (in.Longitude == nil):
		return serrors.With(serrors.ErrBadRequest, "latitude and longitude go together")
	case in.Latitude != nil && (*in.Latitude < -90 || *in.Latitude > 90 || *in.Longitude < -180 || *in.Longitude > 180):
		return serrors.With(serrors.ErrBadRequest, "coordinates are out of range")
	}

	return nil
}

// checkAddress makes sure the street belongs to the city.
func (s *service) checkAddress(ctx context.Context, in Input) error {
	city, err := s.storage.CityByID(ctx, in.CityID)
	if err != nil {
		return fmt.Errorf("could not get city: %w", err)
	}
	if city == nil {
		return serrors.With(serrors.ErrBadRequest, "city does not exist")
	}
	street, err := s.storage.StreetByID(ctx, in.StreetID)
	if err != nil {
		return fmt.Errorf("could not get street: %w", err)
	}
	if street == nil || street.CityID != city.ID {
		return serrors.With(serrors.ErrBadRequest, "street does not exist in the city")
	}

	return nil
}

func apply(l domain.Listing, in Input) domain.Listing {
	l.Name = strings.TrimSpace(in.Name)
	l.Description = strings.TrimSpace(in.Description)
	l.Price = in.Price
	l.CityID = in.CityID
	l.StreetID = in.StreetID
	l.Building = strings.TrimSpace(in.Building)
	l.Flat = strings.TrimSpace(in.Flat)
	l.Floor = in.Floor
	l.AllFloors = in.AllFloors
	l.Rooms = in.Rooms
	l.Bathrooms = in.Bathrooms
	l.Square = in.Square
	l.Communal = in.Communal
	l.Latitude = in.Latitude
	l.Longitude = in.Longitude
	l.HeatingTypeID = in.HeatingTypeID
	l.ListingTypeID = in.ListingTypeID
	l.TagIDs = slices.Compact(slices.Sorted(slices.Values(in.TagIDs)))
	l.Status = domain.ListingStatusModeration
	l.DiscardReason = ""

	return l
}

func invalidReference(err error) error {
	if errors.Is(err, storage.ErrInvalidReference) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "unknown listing type, heating type or tag")
	}

	return err
}

func (s *service) removeFiles(ctx context.Context, ids ...domain.FileID) {
	for _, id := range ids {
		if id == "" {
			continue
		}
		if err := s.files.Delete(ctx, id); err != nil && !errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "could not delete file", zap.String("fileID", string(id)), zap.Error(err))
		}
	}
}

func (s *service) enqueue(ctx context.Context, tx storage.AllStorage, id domain.ListingID) error {
	if _, err := tx.AddJob(ctx, moderation.ModerateListingJob{ListingID: id, MaxAttempts: s.options.MaxAttempts}, nil); err != nil {
		return fmt.Errorf("could not add moderation job: %w", err)
	}

	return nil
}

func (s *service) Create(ctx context.Context,
	owner domain.UserID,
	input Input,
	images []filestore.Upload,
	document filestore.Upload) (*domain.Listing, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	if len(images) < domain.MinListingImages {
		return nil, serrors.With(serrors.ErrBadRequest, "at least %d images are required", domain.MinListingImages)
	}
	for _, img := range images {
		if !strings.HasPrefix(img.ContentType, "image/") {
			return nil, serrors.With(serrors.ErrBadRequest, "%s is not an image", img.Name)
		}
	}
	if document.Content == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "ownership document is required")
	}
	if err := s.checkAddress(ctx, input); err != nil {
		return nil, err
	}

	var stored []domain.FileID
	put := func(u filestore.Upload) (domain.FileID, error) {
		id, err := s.files.Put(ctx, u.Name, u.ContentType, u.Content)
		if err != nil {
			return "", fmt.Errorf("could not store file %s: %w", u.Name, err)
		}
		stored = append(stored, id)

		return id, nil
	}

	l := apply(domain.Listing{OwnerID: owner}, input)
	for _, img := range images {
		id, err := put(img)
		if err != nil {
			s.removeFiles(ctx, stored...)

			return nil, err
		}
		l.Images = append(l.Images, id)
	}
	docID, err := put(document)
	if err != nil {
		s.removeFiles(ctx, stored...)

		return nil, err
	}
	l.OwnershipDocumentID = docID

	var created *domain.Listing
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		created, err = tx.StoreListing(ctx, l)
		if err != nil {
			return fmt.Errorf("could not store listing: %w", invalidReference(err))
		}

		return s.enqueue(ctx, tx, created.ID)
	})
	if err != nil {
		s.removeFiles(ctx, stored...)

		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "listing created", zap.Stringer("listingID", created.ID), zap.Stringer("ownerID", owner))

	return created, nil
}

func (s *service) Search(ctx context.Context,
	caller *domain.Caller,
	filter storage.ListingFilter,
	cursor storage.ListingCursor,
	limit uint) (storage.ListingPage, error) {
	if len(filter.Statuses) == 0 {
		filter.Statuses = []domain.ListingStatus{domain.ListingStatusActive}
	}
	for _, status := range filter.Statuses {
		if !status.Valid() {
			return storage.ListingPage{}, serrors.With(serrors.ErrBadRequest, "unknown status %q", status)
		}
		if status == domain.ListingStatusActive {
			continue
		}
		allowed := caller != nil && filter.OwnerID != nil && (caller.IsAdmin() || caller.Owns(*filter.OwnerID))
		if !allowed {
			return storage.ListingPage{}, serrors.With(serrors.ErrForbidden,
				"only owners and admins can search listings in status %s", status)
		}
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	page, err := s.storage.SearchListings(ctx, filter, cursor, limit)
	if err != nil {
		return storage.ListingPage{}, fmt.Errorf("could not search listings: %w", err)
	}

	return page, nil
}

// owned loads a listing and checks the caller may change it.
func (s *service) owned(ctx context.Context, caller domain.Caller, id domain.ListingID, adminAllowed bool) (*domain.Listing, error) {
	l, err := s.storage.ListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	if l == nil {
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	}
	if !caller.Owns(l.OwnerID) && !(adminAllowed && caller.IsAdmin()) {
		return nil, serrors.With(serrors.ErrForbidden, "listing belongs to another user")
	}

	return l, nil
}

func catalogName(items []domain.CatalogItem, id int64) string {
	for _, item := range items {
		if item.ID == id {
			return item.Name
		}
	}

	return ""
}

func (s *service) Get(ctx context.Context, caller *domain.Caller, id domain.ListingID) (*Detail, error) {
	l, err := s.storage.ListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get listing: %w", err)
	}
	visible := l != nil && (l.Status == domain.ListingStatusActive ||
		(caller != nil && (caller.IsAdmin() || caller.Owns(l.OwnerID))))
	if !visible {
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	}

	detail := &Detail{Listing: *l, Tags: []domain.ListingTag{}}

	owner, err := s.storage.UserByID(ctx, l.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("could not get listing owner: %w", err)
	}
	if owner != nil {
		rating, err := s.storage.UserRating(ctx, owner.ID)
		if err != nil {
			return nil, fmt.Errorf("could not get owner rating: %w", err)
		}
		detail.Owner = Owner{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			PhotoID:   owner.PhotoID,
			Verified:  owner.Verified,
			Rating:    rating,
		}
	}

	listingTypes, err := s.storage.CatalogItems(ctx, domain.CatalogListingTypes)
	if err != nil {
		return nil, fmt.Errorf("could not get listing types: %w", err)
	}
	heatingTypes, err := s.storage.CatalogItems(ctx, domain.CatalogHeatingTypes)
	if err != nil {
		return nil, fmt.Errorf("could not get heating types: %w", err)
	}
	detail.ListingTypeName = catalogName(listingTypes, l.ListingTypeID)
	detail.HeatingTypeName = catalogName(heatingTypes, l.HeatingTypeID)

	if len(l.TagIDs) > 0 {
		tags, err := s.storage.ListingTags(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not get listing tags: %w", err)
		}
		for _, tag := range tags {
			if slices.Contains(l.TagIDs, tag.ID) {
				detail.Tags = append(detail.Tags, tag)
			}
		}
	}

	return detail, nil
}

func (s *service) resubmit(ctx context.Context, l domain.Listing) (*domain.Listing, error) {
	var updated *domain.Listing
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		updated, err = tx.UpdateListing(ctx, l)
		if err != nil {
			return fmt.Errorf("could not update listing: %w", invalidReference(err))
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "listing not found")
		}

		return s.enqueue(ctx, tx, l.ID)
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return updated, nil
}

func (s *service) Update(ctx context.Context, caller domain.Caller, id domain.ListingID, input Input) (*domain.Listing, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	l, err := s.owned(ctx, caller, id, false)
	if err != nil {
		return nil, err
	}
	if err := s.checkAddress(ctx, input); err != nil {
		return nil, err
	}

	updated, err := s.resubmit(ctx, apply(*l, input))
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "listing updated, back to moderation", zap.Stringer("listingID", id))

	return updated, nil
}

func (s *service) ReplaceOwnershipDocument(ctx context.Context,
	caller domain.Caller,
	id domain.ListingID,
	document filestore.Upload) (*domain.Listing, error) {
	if document.Content == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "ownership document is required")
	}
	l, err := s.owned(ctx, caller, id, false)
	if err != nil {
		return nil, err
	}

	docID, err := s.files.Put(ctx, document.Name, document.ContentType, document.Content)
	if err != nil {
		return nil, fmt.Errorf("could not store ownership document: %w", err)
	}

	previous := l.OwnershipDocumentID
	next := *l
	next.OwnershipDocumentID = docID
	next.Status = domain.ListingStatusModeration
	next.DiscardReason = ""

	updated, err := s.resubmit(ctx, next)
	if err != nil {
		s.removeFiles(ctx, docID)

		return nil, err
	}
	s.removeFiles(ctx, previous)

	return updated, nil
}

func (s *service) transition(ctx context.Context,
	caller domain.Caller,
	id domain.ListingID,
	from, to domain.ListingStatus) (*domain.Listing, error) {
	if _, err := s.owned(ctx, caller, id, false); err != nil {
		return nil, err
	}

	l, err := s.storage.TransitionListing(ctx, id, []domain.ListingStatus{from}, to, "")
	if err != nil {
		return nil, fmt.Errorf("could not change listing status: %w", err)
	}
	if l == nil {
		return nil, serrors.With(serrors.ErrConflict, "listing is not in status %s", from)
	}

	return l, nil
}

func (s *service) Archive(ctx context.Context, caller domain.Caller, id domain.ListingID) (*domain.Listing, error) {
	return s.transition(ctx, caller, id, domain.ListingStatusActive, domain.ListingStatusArchived)
}

// Reactivate puts an archived listing back. The transition refreshes its
// last activity so the relevance worker does not archive it again at once.
func (s *service) Reactivate(ctx context.Context, caller domain.Caller, id domain.ListingID) (*domain.Listing, error) {
	return s.transition(ctx, caller, id, domain.ListingStatusArchived, domain.ListingStatusActive)
}

func (s *service) Delete(ctx context.Context, caller domain.Caller, id domain.ListingID) error {
	if _, err := s.owned(ctx, caller, id, true); err != nil {
		return err
	}

	deleted, err := s.storage.DeleteListing(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete listing: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "listing not found")
	}

	s.removeFiles(ctx, append(slices.Clone(deleted.Images), deleted.OwnershipDocumentID)...)
	logger.Info(ctx, "listing deleted", zap.Stringer("listingID", id))

	return nil
}

func (s *service) Favorites(ctx context.Context, userID domain.UserID) ([]domain.Favorite, error) {
	favorites, err := s.storage.Favorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not list favorites: %w", err)
	}

	return favorites, nil
}

func (s *service) AddFavorite(ctx context.Context, userID domain.UserID, listingID domain.ListingID) (*domain.Favorite, error) {
	f, err := s.storage.StoreFavorite(ctx, domain.Favorite{UserID: userID, ListingID: listingID})
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return nil, serrors.With(serrors.ErrBadRequest, "listing is already a favorite")
	case errors.Is(err, storage.ErrInvalidReference):
		return nil, serrors.With(serrors.ErrNotFound, "listing not found")
	case err != nil:
		return nil, fmt.Errorf("could not store favorite: %w", err)
	}

	return f, nil
}

func (s *service) RemoveFavorite(ctx context.Context, userID domain.UserID, id domain.FavoriteID) error {
	deleted, err := s.storage.DeleteFavorite(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("could not delete favorite: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "favorite not found")
	}

	return nil
}

func (s *service) RemoveFavoriteByListing(ctx context.Context, userID domain.UserID, listingID domain.ListingID) error {
	deleted, err := s.storage.DeleteFavoriteByListing(ctx, userID, listingID)
	if err != nil {
		return fmt.Errorf("could not delete favorite: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "favorite not found")
	}

	return nil
}
