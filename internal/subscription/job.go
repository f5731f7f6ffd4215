package subscription

import (
	"easyrent/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// NotifyJob asks the worker to notify subscribers about a listing that has
// just become active.
type NotifyJob struct {
	ListingID domain.ListingID `json:"listingId" river:"unique"`
}

func (NotifyJob) Kind() string { return "NotifySubscribersJob" }

// InsertOpts keeps a single pending notification per listing.
func (NotifyJob) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 5,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
