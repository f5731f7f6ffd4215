package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ReviewID uniquely identifies a review.
type ReviewID uuid.UUID

func (id ReviewID) String() string { return uuid.UUID(id).String() }

type ReviewStatus string

const (
	ReviewStatusPublished ReviewStatus = "PUBLISHED"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Review is feedback one user leaves about another (usually a landlord).
type Review struct {
	ID       ReviewID `json:"id"`
	AuthorID UserID   `json:"authorId"`
	TargetID UserID   `json:"targetId"`

	Rating      float64      `json:"rating"`
	Description string       `json:"description"`
	Status      ReviewStatus `json:"status"`
	TagIDs      []int64      `json:"tagIds"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// ModerationText is the text submitted to the assistant content check.
func (r Review) ModerationText() string {
	return "Review about a person:\n" + r.Description
}

// ValidRating reports whether r lies in [MinRating, MaxRating] with at most
// one decimal digit.
func ValidRating(r float64) bool {
	if r < MinRating || r > MaxRating || math.IsNaN(r) {
		return false
	}
	tenths := r * 10

	return math.Abs(tenths-math.Round(tenths)) < 1e-9
}
