package storage

import (
	"context"
	"easyrent/pkg/domain"
)

type ReviewFilter struct {
	AuthorID *domain.UserID
	TargetID *domain.UserID
	Limit    uint
	Offset   uint
}

type ReviewStorage interface {
	// StoreReview inserts a review with its tags. ErrDuplicate is returned when
	// the author already reviewed the target.
	StoreReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	// ReviewByID returns nil when not found.
	ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error)
	// Reviews lists reviews newest first.
	Reviews(ctx context.Context, filter ReviewFilter) ([]domain.Review, error)
	// UpdateReview replaces rating, description and tags. Returns nil when not found.
	UpdateReview(ctx context.Context, review domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, id domain.ReviewID) (bool, error)
	// TargetTagCount counts tags across all reviews about the user.
	TargetTagCount(ctx context.Context, targetID domain.UserID) (int64, error)
}
