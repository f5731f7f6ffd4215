package moderation

import (
	"context"
	"easyrent/pkg/domain"
)

// Outcome is the result of moderating one listing.
type Outcome string

const (
	// OutcomeApproved means the listing passed both checks and is now active.
	OutcomeApproved Outcome = "APPROVED"
	// OutcomeDiscarded means a check failed and the listing was discarded.
	OutcomeDiscarded Outcome = "DISCARDED"
	// OutcomeSkipped means nothing changed: the listing is not in moderation,
	// is incomplete, has no owner or left moderation while it was being
	// checked.
	OutcomeSkipped Outcome = "SKIPPED"
	// OutcomeChanged means the listing was edited while it was being checked
	// and is still waiting in moderation. The check has to run again.
	OutcomeChanged Outcome = "CHANGED"
)

// Moderator runs the listing moderation pipeline and identity checks.
//
//go:generate mockgen -package mockmoderation -source=interface.go -destination=mock/mockmoderation.go
type Moderator interface {
	// Moderate checks a listing waiting in moderation and approves or
	// discards it.
	Moderate(ctx context.Context, listingID domain.ListingID) (Outcome, error)
	// EnqueuePending enqueues a moderation job for every listing waiting in
	// moderation and returns how many jobs were added.
	EnqueuePending(ctx context.Context) (int, error)
	// VerifyIdentity checks the user's passport and marks the user verified
	// when it passes.
	VerifyIdentity(ctx context.Context, userID domain.UserID) (bool, error)
}
