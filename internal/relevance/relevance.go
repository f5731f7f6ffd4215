// Package relevance archives listings nobody touched for too long.
package relevance

import (
	"context"
	"fmt"
	"time"

	"easyrent/internal/config"
	"easyrent/pkg/domain"
	"easyrent/pkg/logger"
	"easyrent/pkg/mailer"
	"easyrent/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Archiver moves stale active listings to ARCHIVED.
//
//go:generate mockgen -package mockrelevance -source=relevance.go -destination=mock/mockrelevance.go
type Archiver interface {
	// Run archives every active listing whose last activity is older than
	// the configured age at now and returns how many were archived.
	Run(ctx context.Context, now time.Time) (int, error)
}

// Job archives stale listings. It is scheduled periodically.
type Job struct{}

func (Job) Kind() string { return "ArchiveStaleListingsJob" }

func (Job) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 3}
}

type Options struct {
	MaxAge    time.Duration
	BatchSize uint
}

func NewOptions(cfg *config.Config) Options {
	return Options{MaxAge: cfg.Relevance.MaxAge, BatchSize: cfg.Relevance.BatchSize}
}

type archiver struct {
	options Options
	storage storage.Storage
	mailer  mailer.Mailer
}

func New(storage storage.Storage, mailer mailer.Mailer, options Options) Archiver {
	if options.MaxAge <= 0 {
		options.MaxAge = 15 * 24 * time.Hour
	}
	if options.BatchSize == 0 {
		options.BatchSize = 100
	}

	return &archiver{options: options, storage: storage, mailer: mailer}
}

func (a *archiver) Run(ctx context.Context, now time.Time) (int, error) {
	before := now.Add(-a.options.MaxAge)
	archived := 0

	// every processed listing leaves ACTIVE or is skipped, so skipped ones
	// are tracked to stop once a batch brings nothing new.
	skipped := make(map[domain.ListingID]struct{})
	for {
		listings, err := a.storage.StaleListings(ctx, before, a.options.BatchSize+uint(len(skipped)))
		if err != nil {
			return archived, fmt.Errorf("could not get stale listings: %w", err)
		}

		progressed := false
		for _, listing := range listings {
			if _, ok := skipped[listing.ID]; ok {
				continue
			}
			progressed = true

			ok, err := a.archive(ctx, listing)
			if err != nil {
				return archived, err
			}
			if ok {
				archived++
			} else {
				skipped[listing.ID] = struct{}{}
			}
		}

		if !progressed || uint(len(listings)) < a.options.BatchSize+uint(len(skipped)) {
			break
		}
	}

	logger.Info(ctx, "stale listings archived", zap.Int("count", archived), zap.Time("inactiveSince", before))

	return archived, nil
}

func (a *archiver) archive(ctx context.Context, listing domain.Listing) (bool, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("listingID", listing.ID))

	owner, err := a.storage.UserByID(ctx, listing.OwnerID)
	if err != nil {
		return false, fmt.Errorf("could not get listing owner: %w", err)
	}
	if owner == nil {
		logger.Warn(ctx, "listing owner not found, not archiving")

		return false, nil
	}

	updated, err := a.storage.TransitionListing(ctx, listing.ID,
		[]domain.ListingStatus{domain.ListingStatusActive}, domain.ListingStatusArchived, "")
	if err != nil {
		return false, fmt.Errorf("could not archive listing: %w", err)
	}
	if updated == nil {
		return false, nil
	}

	body := fmt.Sprintf("Dear %s,\n\nYour listing \"%s\" had no activity since %s and was moved to the archive.\n\n"+
		"You can reactivate it from your account at any time.\n\nBest regards,\nEasyRent team\n",
		owner.FirstName, listing.Name, listing.LastActivity().Format(time.DateOnly))
	if err := a.mailer.Send(ctx, owner.Email, "EasyRent - listing archived", body); err != nil {
		logger.Warn(ctx, "could not notify owner about archived listing", zap.Error(err))
	}

	return true, nil
}
