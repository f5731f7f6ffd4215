// Package moderation implements the listing moderation pipeline. A listing
// waiting in MODERATION goes through a content check of its text and images
// and an ownership check of its document; it becomes ACTIVE when both pass
// and DISCARDED with a reason otherwise.
package moderation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"easyrent/internal/config"
	"easyrent/internal/subscription"
	"easyrent/pkg/assistant"
	"easyrent/pkg/domain"
	"easyrent/pkg/filestore"
	"easyrent/pkg/logger"
	"easyrent/pkg/mailer"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const instrumentationName = "easyrent/internal/moderation"

// Options configure the pipeline.
type Options struct {
	// MaxImages limits how many listing images go to the content check.
	MaxImages int
	// BatchSize limits how many listings a sweep enqueues.
	BatchSize uint
	// MaxAttempts is passed to the jobs enqueued by the sweep.
	MaxAttempts int
}

// NewOptions constructs Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxImages:   cfg.Moderation.MaxImages,
		BatchSize:   cfg.Moderation.BatchSize,
		MaxAttempts: cfg.Worker.MaxAttempts,
	}
}

type moderator struct {
	options  Options
	storage  storage.Storage
	files    filestore.Store
	verifier assistant.Verifier
	mailer   mailer.Mailer

	tracer   trace.Tracer
	outcomes metric.Int64Counter
}

// New creates a Moderator.
func New(storage storage.Storage,
	files filestore.Store,
	verifier assistant.Verifier,
	mailer mailer.Mailer,
	options Options) Moderator {
	if options.BatchSize == 0 {
		options.BatchSize = 500
	}
	outcomes, err := otel.Meter(instrumentationName).Int64Counter("moderation.outcomes",
		metric.WithDescription("Moderated listings by outcome"))
	if err != nil {
		otel.Handle(err)
	}

	return &moderator{
		options:  options,
		storage:  storage,
		files:    files,
		verifier: verifier,
		mailer:   mailer,
		tracer:   otel.Tracer(instrumentationName),
		outcomes: outcomes,
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}

// ContentRejectedReason is the discard reason of a listing that failed the
// content check.
func ContentRejectedReason(reason string) string {
	return "Your listing did not pass moderation. Reason: " + orDash(reason)
}

// OwnershipRejectedReason is the discard reason of a listing whose ownership
// document failed the check.
func OwnershipRejectedReason(details string) string {
	return "Your ownership document did not pass moderation. Reason: " + orDash(details)
}

func (m *moderator) Moderate(ctx context.Context, listingID domain.ListingID) (Outcome, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("listingID", listingID))
	ctx, span := m.tracer.Start(ctx, "moderation.moderate",
		trace.WithAttributes(attribute.String("listing.id", listingID.String())))
	defer span.End()

	outcome, err := m.moderate(ctx, listingID)
	if err != nil {
		span.RecordError(err)

		return outcome, err
	}

	span.SetAttributes(attribute.String("moderation.outcome", string(outcome)))
	if m.outcomes != nil {
		m.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(outcome))))
	}
	logger.Info(ctx, "listing moderated", zap.String("outcome", string(outcome)))

	return outcome, nil
}

func (m *moderator) moderate(ctx context.Context, listingID domain.ListingID) (Outcome, error) {
	listing, err := m.storage.ListingByID(ctx, listingID)
	if err != nil {
		return "", fmt.Errorf("could not get listing: %w", err)
	}
	if listing == nil {
		return "", serrors.With(serrors.ErrNotFound, "listing not found")
	}
	if listing.Status != domain.ListingStatusModeration {
		return OutcomeSkipped, nil
	}
	if !listing.ReadyForModeration() {
		logger.Debug(ctx, "listing is incomplete, leaving it in moderation")

		return OutcomeSkipped, nil
	}

	owner, err := m.storage.UserByID(ctx, listing.OwnerID)
	if err != nil {
		return "", fmt.Errorf("could not get listing owner: %w", err)
	}
	if owner == nil {
		logger.Warn(ctx, "listing owner not found")

		return OutcomeSkipped, nil
	}

	images, err := m.images(ctx, *listing)
	if err != nil {
		return "", err
	}
	textVerdict, err := m.verifier.VerifyText(ctx, listing.ModerationText(), images)
	if err != nil {
		return "", fmt.Errorf("could not verify listing content: %w", err)
	}
	if !textVerdict.OK {
		return m.discard(ctx, *listing, *owner, ContentRejectedReason(textVerdict.Reason))
	}

	document, err := m.attachment(ctx, listing.OwnershipDocumentID)
	if errors.Is(err, serrors.ErrNotFound) {
		return m.discard(ctx, *listing, *owner, OwnershipRejectedReason("document file is missing"))
	}
	if err != nil {
		return "", err
	}
	ownershipVerdict, err := m.verifier.VerifyOwnership(ctx, assistant.OwnershipRequest{
		FirstName:  owner.FirstName,
		LastName:   owner.LastName,
		Patronymic: owner.Patronymic,
		BirthDate:  owner.BirthDate,
		City:       listing.CityName,
		Street:     listing.StreetName,
		Document:   document,
	})
	if err != nil {
		return "", fmt.Errorf("could not verify ownership document: %w", err)
	}
	if !ownershipVerdict.Passed() {
		return m.discard(ctx, *listing, *owner, OwnershipRejectedReason(ownershipVerdict.ErrorDetails))
	}

	return m.approve(ctx, *listing)
}

func (m *moderator) attachment(ctx context.Context, id domain.FileID) (assistant.Attachment, error) {
	data, f, err := filestore.ReadAll(ctx, m.files, id)
	if err != nil {
		return assistant.Attachment{}, fmt.Errorf("could not read file %s: %w", id, err)
	}

	return assistant.Attachment{Name: f.Name, ContentType: f.ContentType, Data: data}, nil
}

// images loads up to MaxImages listing images. Missing files are skipped.
func (m *moderator) images(ctx context.Context, listing domain.Listing) ([]assistant.Attachment, error) {
	ids := listing.Images
	if m.options.MaxImages >= 0 && len(ids) > m.options.MaxImages {
		ids = ids[:m.options.MaxImages]
	}

	images := make([]assistant.Attachment, 0, len(ids))
	for _, id := range ids {
		a, err := m.attachment(ctx, id)
		if errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "listing image not found", zap.String("fileID", string(id)))

			continue
		}
		if err != nil {
			return nil, err
		}
		images = append(images, a)
	}

	return images, nil
}

type transitionResult int

const (
	transitionMoved transitionResult = iota
	// the listing was deleted or left moderation meanwhile
	transitionStale
	// the listing is still in moderation but has newer content
	transitionEdited
)

// transition moves the listing out of moderation unless it was edited while
// being checked. then runs inside the same transaction.
func (m *moderator) transition(ctx context.Context,
	listing domain.Listing,
	to domain.ListingStatus,
	reason string,
	then func(tx storage.AllStorage) error) (transitionResult, error) {
	result := transitionStale
	err := m.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		current, err := tx.ListingByID(ctx, listing.ID)
		if err != nil {
			return fmt.Errorf("could not get listing: %w", err)
		}
		if current == nil {
			return nil
		}
		if !current.UpdatedAt.Equal(listing.UpdatedAt) {
			if current.Status == domain.ListingStatusModeration {
				result = transitionEdited
			}

			return nil
		}

		updated, err := tx.TransitionListing(ctx, listing.ID,
			[]domain.ListingStatus{domain.ListingStatusModeration}, to, reason)
		if err != nil {
			return fmt.Errorf("could not transition listing: %w", err)
		}
		if updated == nil {
			return nil
		}
		result = transitionMoved

		if then != nil {
			return then(tx)
		}

		return nil
	})
	if err != nil {
		return transitionStale, err //nolint: wrapcheck
	}

	return result, nil
}

func notMovedOutcome(result transitionResult) Outcome {
	if result == transitionEdited {
		return OutcomeChanged
	}

	return OutcomeSkipped
}

func (m *moderator) approve(ctx context.Context, listing domain.Listing) (Outcome, error) {
	result, err := m.transition(ctx, listing, domain.ListingStatusActive, "", func(tx storage.AllStorage) error {
		if _, err := tx.AddJob(ctx, subscription.NotifyJob{ListingID: listing.ID}, nil); err != nil {
			return fmt.Errorf("could not add notify job: %w", err)
		}

		return nil
	})
	if err != nil {
		return "", err
	}
	if result != transitionMoved {
		return notMovedOutcome(result), nil
	}

	return OutcomeApproved, nil
}

func (m *moderator) discard(ctx context.Context, listing domain.Listing, owner domain.User, reason string) (Outcome, error) {
	result, err := m.transition(ctx, listing, domain.ListingStatusDiscarded, reason, nil)
	if err != nil {
		return "", err
	}
	if result != transitionMoved {
		return notMovedOutcome(result), nil
	}

	body := fmt.Sprintf("Dear %s,\n\nYour listing \"%s\" was rejected by moderation.\n\n%s\n\n"+
		"You can edit the listing and submit it again from your account.\n\nBest regards,\nEasyRent team\n",
		owner.FirstName, listing.Name, reason)
	if err := m.mailer.Send(ctx, owner.Email, "EasyRent - listing rejected", body); err != nil {
		logger.Warn(ctx, "could not notify owner about discarded listing", zap.Error(err))
	}

	return OutcomeDiscarded, nil
}

func (m *moderator) EnqueuePending(ctx context.Context) (int, error) {
	ids, err := m.storage.ListingIDsByStatus(ctx, domain.ListingStatusModeration, m.options.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("could not list listings in moderation: %w", err)
	}

	added := 0
	for _, id := range ids {
		inserted, err := m.storage.AddJob(ctx, ModerateListingJob{ListingID: id, MaxAttempts: m.options.MaxAttempts}, nil)
		if err != nil {
			return added, fmt.Errorf("could not add moderation job: %w", err)
		}
		if inserted {
			added++
		}
	}

	if added > 0 {
		logger.Info(ctx, "moderation jobs enqueued", zap.Int("count", added), zap.Int("pending", len(ids)))
	}

	return added, nil
}

// birthDateLayouts are the formats the identity check reports dates in.
var birthDateLayouts = []string{time.DateOnly, "02.01.2006", "02/01/2006"} //nolint: gochecknoglobals

func parseBirthDate(s string) (time.Time, bool) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func (m *moderator) VerifyIdentity(ctx context.Context, userID domain.UserID) (bool, error) {
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))
	ctx, span := m.tracer.Start(ctx, "moderation.verify_identity")
	defer span.End()

	user, err := m.storage.UserByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return false, serrors.With(serrors.ErrNotFound, "user not found")
	}
	if user.Verified {
		return true, nil
	}
	if user.PassportID == "" {
		return false, serrors.With(serrors.ErrNotFound, "passport not uploaded")
	}

	passport, err := m.attachment(ctx, user.PassportID)
	if err != nil {
		return false, err
	}
	verdict, err := m.verifier.VerifyIdentity(ctx, []assistant.Attachment{passport})
	if err != nil {
		return false, fmt.Errorf("could not verify passport: %w", err)
	}

	if !verdict.Passed() {
		logger.Info(ctx, "passport rejected", zap.String("details", verdict.ErrorDetails))
		body := fmt.Sprintf("Dear %s,\n\nWe could not verify your passport.\n\nReason: %s\n\n"+
			"Please upload a clear photo of the front side of your passport.\n\nBest regards,\nEasyRent team\n",
			user.FirstName, orDash(verdict.ErrorDetails))
		if err := m.mailer.Send(ctx, user.Email, "EasyRent - passport verification failed", body); err != nil {
			logger.Warn(ctx, "could not notify user about rejected passport", zap.Error(err))
		}

		return false, nil
	}

	verified := true
	updates := storage.UserUpdates{Verified: &verified}
	if user.Patronymic == "" && verdict.Patronymic != "" {
		updates.Patronymic = &verdict.Patronymic
	}
	if user.BirthDate.IsZero() {
		if birth, ok := parseBirthDate(verdict.BirthDate); ok {
			updates.BirthDate = &birth
		}
	}
	if _, err := m.storage.UpdateUser(ctx, userID, updates); err != nil {
		return false, fmt.Errorf("could not mark user verified: %w", err)
	}

	logger.Info(ctx, "passport verified")

	return true, nil
}
