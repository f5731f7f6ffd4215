package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Inside a transaction the job becomes
// visible to workers only once the transaction commits.
type JobStorage interface {
	// AddJob enqueues a new job and reports whether it was inserted. It returns
	// false when a unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
