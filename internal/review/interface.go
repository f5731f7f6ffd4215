package review

import (
	"context"

	"easyrent/pkg/domain"
	"easyrent/pkg/storage"
)

// Input is the author editable part of a review.
type Input struct {
	Rating      float64
	Description string
	TagIDs      []int64
}

// Service manages reviews users leave about each other.
//
//go:generate mockgen -package mockreview -source=interface.go -destination=mock/mockreview.go
type Service interface {
	// Create publishes a review after its text passes the assistant check.
	Create(ctx context.Context, author, target domain.UserID, input Input) (*domain.Review, error)
	List(ctx context.Context, filter storage.ReviewFilter) ([]domain.Review, error)
	Get(ctx context.Context, id domain.ReviewID) (*domain.Review, error)
	Update(ctx context.Context, caller domain.Caller, id domain.ReviewID, input Input) (*domain.Review, error)
	Delete(ctx context.Context, caller domain.Caller, id domain.ReviewID) error
}
