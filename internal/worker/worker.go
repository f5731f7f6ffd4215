// Package worker runs the background jobs of the marketplace on River.
package worker

import (
	"context"
	"fmt"
	"time"

	"easyrent/internal/config"
	"easyrent/internal/moderation"
	"easyrent/internal/relevance"
	"easyrent/internal/subscription"
	"easyrent/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/robfig/cron/v3"
)

// Options configures the job runner.
type Options struct {
	MaxWorkers int
	// SweepInterval is how often listings waiting in moderation are enqueued.
	SweepInterval time.Duration
	// RelevanceSchedule is a standard five field cron expression.
	RelevanceSchedule string
	// CheckTimeout bounds a single moderation or identity job.
	CheckTimeout time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:        cfg.Worker.MaxWorkers,
		SweepInterval:     cfg.Moderation.SweepInterval,
		RelevanceSchedule: cfg.Relevance.Schedule,
		// a listing goes through up to two assistant checks
		CheckTimeout: 2*cfg.Assistant.Timeout + time.Minute,
	}
}

// Deps are the services the jobs delegate to.
type Deps struct {
	Moderator     moderation.Moderator
	Archiver      relevance.Archiver
	Subscriptions subscription.Service
}

// NewWorkers registers a worker for every job kind.
func NewWorkers(deps Deps, opts Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewModerateListingWorker(deps.Moderator, opts.CheckTimeout))
	river.AddWorker(workers, NewSweepModerationWorker(deps.Moderator))
	river.AddWorker(workers, NewVerifyIdentityWorker(deps.Moderator, opts.CheckTimeout))
	river.AddWorker(workers, NewArchiveStaleWorker(deps.Archiver, time.Now))
	river.AddWorker(workers, NewNotifySubscribersWorker(deps.Subscriptions))

	return workers
}

// PeriodicJobs schedules the moderation sweep and the relevance check.
func PeriodicJobs(opts Options) ([]*river.PeriodicJob, error) {
	schedule, err := cron.ParseStandard(opts.RelevanceSchedule)
	if err != nil {
		return nil, fmt.Errorf("invalid relevance schedule %q: %w", opts.RelevanceSchedule, err)
	}
	if opts.SweepInterval <= 0 {
		return nil, fmt.Errorf("invalid sweep interval %s", opts.SweepInterval)
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(opts.SweepInterval),
			func() (river.JobArgs, *river.InsertOpts) { return moderation.SweepModerationJob{}, nil },
			&river.PeriodicJobOpts{RunOnStart: true},
		),
		river.NewPeriodicJob(
			schedule,
			func() (river.JobArgs, *river.InsertOpts) { return relevance.Job{}, nil },
			nil,
		),
	}, nil
}

// Start creates the River client and starts processing jobs. The client is
// returned so it can be stopped and handed to the dashboard.
func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	periodicJobs, err := PeriodicJobs(opts)
	if err != nil {
		return nil, err
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(opts.MaxWorkers, 1)},
		},
		Workers:      NewWorkers(deps, opts),
		PeriodicJobs: periodicJobs,
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
