// Package review implements user reviews.
package review

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"easyrent/pkg/assistant"
	"easyrent/pkg/domain"
	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"
	"easyrent/pkg/storage"

	"go.uber.org/zap"
)

// BlockTagThreshold is the number of review tags about a user above which
// the user is blocked.
const BlockTagThreshold = 5

const maxLimit = 100

type service struct {
	storage  storage.Storage
	verifier assistant.Verifier
}

func New(storage storage.Storage, verifier assistant.Verifier) Service {
	return &service{storage: storage, verifier: verifier}
}

// RejectedReason is returned when the assistant rejects the review text.
func RejectedReason(reason string) string {
	if strings.TrimSpace(reason) == "" {
		reason = "-"
	}

	return "Your review did not pass moderation. Reason: " + reason
}

func normalize(in Input) (Input, error) {
	in.Description = strings.TrimSpace(in.Description)
	in.TagIDs = slices.Compact(slices.Sorted(slices.Values(in.TagIDs)))

	if !domain.ValidRating(in.Rating) {
		return in, serrors.With(serrors.ErrBadRequest, "rating must be between %.1f and %.1f with one decimal",
			domain.MinRating, domain.MaxRating)
	}
	if in.Description == "" {
		return in, serrors.With(serrors.ErrBadRequest, "description is required")
	}

	return in, nil
}

func (s *service) check(ctx context.Context, r domain.Review) error {
	verdict, err := s.verifier.VerifyText(ctx, r.ModerationText(), nil)
	if err != nil {
		return fmt.Errorf("could not verify review: %w", err)
	}
	if !verdict.OK {
		return serrors.With(serrors.ErrBadRequest, "%s", RejectedReason(verdict.Reason))
	}

	return nil
}

func storeError(err error) error {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return serrors.With(serrors.ErrBadRequest, "you have already reviewed this user")
	case errors.Is(err, storage.ErrInvalidReference):
		return serrors.Wrap(serrors.ErrBadRequest, err, "unknown review tag")
	}

	return fmt.Errorf("could not store review: %w", err)
}

// blockIfFlagged blocks the target once reviews about them carry too many tags.
func blockIfFlagged(ctx context.Context, tx storage.AllStorage, target domain.UserID) error {
	count, err := tx.TargetTagCount(ctx, target)
	if err != nil {
		return fmt.Errorf("could not count review tags: %w", err)
	}
	if count <= BlockTagThreshold {
		return nil
	}

	active := false
	if _, err := tx.UpdateUser(ctx, target, storage.UserUpdates{Active: &active}); err != nil {
		return fmt.Errorf("could not block user: %w", err)
	}
	logger.Info(ctx, "user blocked after reviews", zap.Stringer("userID", target), zap.Int64("tags", count))

	return nil
}

func (s *service) Create(ctx context.Context, author, target domain.UserID, input Input) (*domain.Review, error) {
	if author == target {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot review yourself")
	}
	input, err := normalize(input)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.UserByID(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("could not get reviewed user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}
	existing, err := s.storage.Reviews(ctx, storage.ReviewFilter{AuthorID: &author, TargetID: &target, Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("could not list reviews: %w", err)
	}
	if len(existing) > 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "you have already reviewed this user")
	}

	r := domain.Review{
		AuthorID:    author,
		TargetID:    target,
		Rating:      input.Rating,
		Description: input.Description,
		Status:      domain.ReviewStatusPublished,
		TagIDs:      input.TagIDs,
	}
	if err := s.check(ctx, r); err != nil {
		return nil, err
	}

	var stored *domain.Review
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if stored, err = tx.StoreReview(ctx, r); err != nil {
			return storeError(err)
		}

		return blockIfFlagged(ctx, tx, target)
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return stored, nil
}

func (s *service) List(ctx context.Context, filter storage.ReviewFilter) ([]domain.Review, error) {
	if filter.Limit == 0 || filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	reviews, err := s.storage.Reviews(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list reviews: %w", err)
	}

	return reviews, nil
}

func (s *service) Get(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	r, err := s.storage.ReviewByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get review: %w", err)
	}
	if r == nil {
		return nil, serrors.With(serrors.ErrNotFound, "review not found")
	}

	return r, nil
}

func (s *service) Update(ctx context.Context, caller domain.Caller, id domain.ReviewID, input Input) (*domain.Review, error) {
	input, err := normalize(input)
	if err != nil {
		return nil, err
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(r.AuthorID) {
		return nil, serrors.With(serrors.ErrForbidden, "review belongs to another user")
	}

	r.Rating = input.Rating
	r.Description = input.Description
	r.TagIDs = input.TagIDs
	if err := s.check(ctx, *r); err != nil {
		return nil, err
	}

	var updated *domain.Review
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if updated, err = tx.UpdateReview(ctx, *r); err != nil {
			return storeError(err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "review not found")
		}

		return blockIfFlagged(ctx, tx, r.TargetID)
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return updated, nil
}

func (s *service) Delete(ctx context.Context, caller domain.Caller, id domain.ReviewID) error {
	r, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !caller.Owns(r.AuthorID) && !caller.IsAdmin() {
		return serrors.With(serrors.ErrForbidden, "review belongs to another user")
	}

	deleted, err := s.storage.DeleteReview(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete review: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "review not found")
	}

	return nil
}
