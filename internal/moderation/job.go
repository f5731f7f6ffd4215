package moderation

import (
	"easyrent/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

func uniqueWhileQueued() river.UniqueOpts {
	return river.UniqueOpts{
		ByArgs: true,
		ByState: []rivertype.JobState{
			rivertype.JobStateAvailable,
			rivertype.JobStatePending,
			rivertype.JobStateRunning,
			rivertype.JobStateRetryable,
			rivertype.JobStateScheduled,
		},
	}
}

// ModerateListingJob moderates a single listing. Only one job per listing
// may be queued or running at a time.
type ModerateListingJob struct {
	ListingID domain.ListingID `json:"listingId" river:"unique"`

	// MaxAttempts bounds retries, River's default is used when zero.
	MaxAttempts int `json:"-"`
}

func (ModerateListingJob) Kind() string { return "ModerateListingJob" }

func (args ModerateListingJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.MaxAttempts,
		UniqueOpts:  uniqueWhileQueued(),
	}
}

// SweepModerationJob enqueues a ModerateListingJob for every listing waiting
// in moderation.
type SweepModerationJob struct{}

func (SweepModerationJob) Kind() string { return "SweepModerationJob" }

func (SweepModerationJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts:  uniqueWhileQueued(),
	}
}

// VerifyIdentityJob checks the passport a user uploaded.
type VerifyIdentityJob struct {
	UserID domain.UserID `json:"userId" river:"unique"`

	MaxAttempts int `json:"-"`
}

func (VerifyIdentityJob) Kind() string { return "VerifyIdentityJob" }

func (args VerifyIdentityJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.MaxAttempts,
		UniqueOpts:  uniqueWhileQueued(),
	}
}
