package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"easyrent/internal/moderation"
	"easyrent/internal/relevance"
	"easyrent/internal/subscription"
	"easyrent/pkg/assistant"
	"easyrent/pkg/logger"
	"easyrent/pkg/metrics"
	"easyrent/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const (
	// rateLimitBackoff is used when the provider did not say when to come back.
	rateLimitBackoff = time.Minute
	// RecheckDelay is how long a listing edited during its check waits
	// before the same job checks it again.
	RecheckDelay = 5 * time.Second
)

var jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
	Name:    "easyrent_job_duration_seconds",
	Help:    "Duration of background jobs by kind and result.",
	Buckets: metrics.JobBuckets,
}, []string{"kind", "result"})

func observe(kind string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	jobDuration.WithLabelValues(kind, result).Observe(time.Since(start).Seconds())
}

// jobError maps service errors to River actions. A missing or conflicting
// entity will not fix itself, so the job is canceled. A rate limited call is
// snoozed until the provider's window resets. Anything else is retried.
func jobError(ctx context.Context, err error, action string) error {
	switch {
	case errors.Is(err, serrors.ErrNotFound), errors.Is(err, serrors.ErrConflict):
		logger.Warn(ctx, "canceling job", zap.String("action", action), zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrRateLimited):
		dur := rateLimitBackoff
		var rlErr *assistant.RateLimitedError
		if errors.As(err, &rlErr) {
			dur = rlErr.RetryAfter()
		}
		logger.Warn(ctx, "assistant rate limited, snoozing job", zap.Duration("snooze", dur))

		return river.JobSnooze(dur) //nolint: wrapcheck
	}

	logger.Error(ctx, "job failed", zap.String("action", action), zap.Error(err))

	return fmt.Errorf("could not %s: %w", action, err)
}

// ModerateListingWorker runs the moderation pipeline for one listing.
type ModerateListingWorker struct {
	river.WorkerDefaults[moderation.ModerateListingJob]

	moderator moderation.Moderator
	timeout   time.Duration
}

func NewModerateListingWorker(moderator moderation.Moderator, timeout time.Duration) *ModerateListingWorker {
	return &ModerateListingWorker{moderator: moderator, timeout: timeout}
}

func (w *ModerateListingWorker) Timeout(*river.Job[moderation.ModerateListingJob]) time.Duration {
	return w.timeout
}

func (w *ModerateListingWorker) Work(ctx context.Context, job *river.Job[moderation.ModerateListingJob]) (err error) {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("listingID", job.Args.ListingID))
	start := time.Now()
	defer func() { observe(job.Args.Kind(), start, err) }()

	outcome, err := w.moderator.Moderate(ctx, job.Args.ListingID)
	if err != nil {
		return jobError(ctx, err, "moderate listing")
	}
	if outcome == moderation.OutcomeChanged {
		// an edit made now cannot enqueue its own job, this one is still running
		logger.Info(ctx, "listing edited during moderation, checking again", zap.Duration("snooze", RecheckDelay))

		return river.JobSnooze(RecheckDelay) //nolint: wrapcheck
	}

	logger.Info(ctx, "listing moderated", zap.String("outcome", string(outcome)))

	return nil
}

// SweepModerationWorker enqueues every listing left in moderation, for
// example after a restart or a canceled job.
type SweepModerationWorker struct {
	river.WorkerDefaults[moderation.SweepModerationJob]

	moderator moderation.Moderator
}

func NewSweepModerationWorker(moderator moderation.Moderator) *SweepModerationWorker {
	return &SweepModerationWorker{moderator: moderator}
}

func (w *SweepModerationWorker) Work(ctx context.Context, job *river.Job[moderation.SweepModerationJob]) (err error) {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	start := time.Now()
	defer func() { observe(job.Args.Kind(), start, err) }()

	count, err := w.moderator.EnqueuePending(ctx)
	if err != nil {
		return jobError(ctx, err, "enqueue pending listings")
	}
	if count > 0 {
		logger.Info(ctx, "pending listings enqueued", zap.Int("count", count))
	}

	return nil
}

type VerifyIdentityWorker struct {
	river.WorkerDefaults[moderation.VerifyIdentityJob]

	moderator moderation.Moderator
	timeout   time.Duration
}

func NewVerifyIdentityWorker(moderator moderation.Moderator, timeout time.Duration) *VerifyIdentityWorker {
	return &VerifyIdentityWorker{moderator: moderator, timeout: timeout}
}

func (w *VerifyIdentityWorker) Timeout(*river.Job[moderation.VerifyIdentityJob]) time.Duration {
	return w.timeout
}

func (w *VerifyIdentityWorker) Work(ctx context.Context, job *river.Job[moderation.VerifyIdentityJob]) (err error) {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("userID", job.Args.UserID))
	start := time.Now()
	defer func() { observe(job.Args.Kind(), start, err) }()

	verified, err := w.moderator.VerifyIdentity(ctx, job.Args.UserID)
	if err != nil {
		return jobError(ctx, err, "verify identity")
	}

	logger.Info(ctx, "identity checked", zap.Bool("verified", verified))

	return nil
}

// ArchiveStaleWorker archives listings nobody touched for too long.
type ArchiveStaleWorker struct {
	river.WorkerDefaults[relevance.Job]

	archiver relevance.Archiver
	now      func() time.Time
}

func NewArchiveStaleWorker(archiver relevance.Archiver, now func() time.Time) *ArchiveStaleWorker {
	if now == nil {
		now = time.Now
	}

	return &ArchiveStaleWorker{archiver: archiver, now: now}
}

func (w *ArchiveStaleWorker) Work(ctx context.Context, job *river.Job[relevance.Job]) (err error) {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))
	start := time.Now()
	defer func() { observe(job.Args.Kind(), start, err) }()

	archived, err := w.archiver.Run(ctx, w.now())
	if err != nil {
		return jobError(ctx, err, "archive stale listings")
	}

	logger.Info(ctx, "relevance check finished", zap.Int("archived", archived))

	return nil
}

type NotifySubscribersWorker struct {
	river.WorkerDefaults[subscription.NotifyJob]

	subscriptions subscription.Service
}

func NewNotifySubscribersWorker(subscriptions subscription.Service) *NotifySubscribersWorker {
	return &NotifySubscribersWorker{subscriptions: subscriptions}
}

func (w *NotifySubscribersWorker) Work(ctx context.Context, job *river.Job[subscription.NotifyJob]) (err error) {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Stringer("listingID", job.Args.ListingID))
	start := time.Now()
	defer func() { observe(job.Args.Kind(), start, err) }()

	notified, err := w.subscriptions.Notify(ctx, job.Args.ListingID)
	if err != nil {
		return jobError(ctx, err, "notify subscribers")
	}

	logger.Debug(ctx, "subscribers notified", zap.Int("count", notified))

	return nil
}
