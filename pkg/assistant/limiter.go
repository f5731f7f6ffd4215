package assistant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"easyrent/pkg/logger"
	"easyrent/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const instrumentationName = "easyrent/pkg/assistant"

// RateLimitedError is returned when the provider rejected a call because the
// rate limit was exhausted. It matches serrors.ErrRateLimited.
type RateLimitedError struct {
	ResetAt time.Time
	Err     error
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("assistant rate limited until %s: %v", e.ResetAt.Format(time.RFC3339), e.Err)
}

func (e *RateLimitedError) Unwrap() error { return e.Err }

func (e *RateLimitedError) Is(target error) bool { return target == serrors.ErrRateLimited }

// RetryAfter returns how long to wait before the next attempt, never negative.
func (e *RateLimitedError) RetryAfter() time.Duration {
	return max(time.Until(e.ResetAt), 0)
}

// Limited wraps a Client with cooperative rate limiting shared across all
// concurrent callers and across all three checks, since they draw from the
// same provider budget.
//
// # Rate limiting overview
//
// Limited tracks the last known upstream status (lastRLStatus) and the number
// of calls in flight. Before a call, reserve takes a slot from the budget:
//
//	remaining := lastRLStatus.Remaining
//	if now > lastRLStatus.ResetAt { remaining = lastRLStatus.Limit }
//
// A call may start if remaining - inFlight > 0. Otherwise it waits until the
// window resets or another call finishes and signals callFinished.
//
// After a call, finished merges the status the provider returned: a new
// ResetAt is always adopted, within the same window only a lower Remaining is.
//
// Before any status is known the limiter assumes Limit=1, Remaining=1 with a
// far-future reset, so exactly one probe call goes through.
type Limited struct {
	client Client

	// mu protects inFlight and lastRLStatus.
	mu           sync.Mutex
	inFlight     int
	lastRLStatus *RateLimitStatus
	// callFinished wakes up one waiter in reserve. Sends never block.
	callFinished chan struct{}

	duration metric.Float64Histogram
}

var _ Verifier = (*Limited)(nil)

// NewLimited wraps client. The returned Verifier is safe for concurrent use.
func NewLimited(client Client) *Limited {
	duration, err := otel.Meter(instrumentationName).Float64Histogram("assistant.call.duration",
		metric.WithDescription("Duration of assistant checks"),
		metric.WithUnit("s"))
	if err != nil {
		otel.Handle(err)
	}

	return &Limited{
		client:       client,
		callFinished: make(chan struct{}),
		duration:     duration,
	}
}

func (l *Limited) VerifyText(ctx context.Context, text string, images []Attachment) (TextVerdict, error) {
	return call(ctx, l, "text", func(ctx context.Context) (TextVerdict, RateLimitStatus, error) {
		return l.client.VerifyText(ctx, text, images)
	})
}

func (l *Limited) VerifyOwnership(ctx context.Context, req OwnershipRequest) (OwnershipVerdict, error) {
	return call(ctx, l, "ownership", func(ctx context.Context) (OwnershipVerdict, RateLimitStatus, error) {
		return l.client.VerifyOwnership(ctx, req)
	})
}

func (l *Limited) VerifyIdentity(ctx context.Context, documents []Attachment) (IdentityVerdict, error) {
	return call(ctx, l, "identity", func(ctx context.Context) (IdentityVerdict, RateLimitStatus, error) {
		return l.client.VerifyIdentity(ctx, documents)
	})
}

func call[T any](ctx context.Context,
	l *Limited,
	check string,
	fn func(ctx context.Context) (T, RateLimitStatus, error)) (T, error) {
	var zero T
	ctx = logger.WithFields(ctx, zap.String("check", check))

	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "assistant.verify_"+check)
	defer span.End()

	if err := l.reserve(ctx); err != nil {
		span.SetStatus(codes.Error, err.Error())

		return zero, fmt.Errorf("could not reserve assistant rate limit: %w", err)
	}

	start := time.Now()
	verdict, rl, err := fn(ctx)
	l.finished(ctx, rl)

	outcome := "ok"
	defer func() {
		if l.duration != nil {
			l.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("check", check),
				attribute.String("outcome", outcome)))
		}
	}()

	if err != nil {
		outcome = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, serrors.ErrRateLimited) {
			outcome = "rate_limited"
			resetAt := rl.ResetAt
			if resetAt.IsZero() {
				resetAt = time.Now().Add(time.Minute)
			}

			return zero, &RateLimitedError{ResetAt: resetAt, Err: err}
		}

		return zero, fmt.Errorf("assistant %s check failed: %w", check, err)
	}

	return verdict, nil
}

// finished releases the slot taken by reserve, wakes up one waiter and merges
// the status reported by the provider.
func (l *Limited) finished(ctx context.Context, newRLStatus RateLimitStatus) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inFlight > 0 {
		l.inFlight--
	}

	select {
	case l.callFinished <- struct{}{}:
	default:
	}

	// no rate limit info in this response
	if newRLStatus.ResetAt.IsZero() {
		return
	}

	adopt := func() {
		l.lastRLStatus = &newRLStatus
		logger.Debug(ctx, "received assistant rate limit status",
			zap.Int("limit", newRLStatus.Limit),
			zap.Int("remaining", newRLStatus.Remaining),
			zap.Time("resetAt", newRLStatus.ResetAt),
			zap.Int("inFlight", l.inFlight))
	}

	switch {
	case l.lastRLStatus == nil:
		adopt()
	case !l.lastRLStatus.ResetAt.Equal(newRLStatus.ResetAt):
		adopt()
	case newRLStatus.Remaining < l.lastRLStatus.Remaining:
		adopt()
	}
}

// reserve takes one unit from the budget or blocks until one becomes
// available or ctx is done.
func (l *Limited) reserve(ctx context.Context) error {
	for {
		l.mu.Lock()

		if l.lastRLStatus == nil {
			l.lastRLStatus = &RateLimitStatus{
				Limit:     1,
				Remaining: 1,
				ResetAt:   time.Now().Add(365 * 24 * time.Hour),
			}
		}

		remaining := l.lastRLStatus.Remaining
		if time.Now().After(l.lastRLStatus.ResetAt) {
			remaining = l.lastRLStatus.Limit
		}

		if remaining-l.inFlight > 0 {
			l.inFlight++
			l.mu.Unlock()

			return nil
		}

		resetAt := l.lastRLStatus.ResetAt
		inFlight := l.inFlight
		l.mu.Unlock()

		logger.Debug(ctx, "waiting for assistant rate limit slot",
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		timer := time.NewTimer(time.Until(resetAt))
		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
		case <-l.callFinished:
			timer.Stop()
		case <-timer.C:
		}
	}
}
