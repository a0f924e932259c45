// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package backoff implements the retry policy used by the remote persistence
// path: it classifies failures into fatal and retryable ones and drives the
// exponential backoff schedule (base delay doubling per attempt) on top of
// github.com/sethvargo/go-retry.
package backoff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-pattern-keeper/internal/app"
	"github.com/MKhiriev/go-pattern-keeper/models"
)

// DefaultBaseDelay is the delay before the first retry.
const DefaultBaseDelay = time.Second

// ErrRetriesExhausted wraps the last error of a request that kept failing
// with a retryable classification.
var ErrRetriesExhausted = errors.New("retries exhausted")

// Classification tells the caller what to do with a failed attempt.
type Classification int

const (
	// Retryable failures are retried with backoff.
	Retryable Classification = iota
	// Fatal failures are surfaced immediately.
	Fatal
)

func (c Classification) String() string {
	if c == Fatal {
		return "fatal"
	}
	return "retryable"
}

// Classify maps err onto the retry taxonomy. Errors [app.IsFatal] accepts are
// fatal, so is cancellation; 5xx, 429, transport failures and anything
// unrecognised are retryable.
func Classify(err error) Classification {
	if app.IsFatal(err) || errors.Is(err, context.Canceled) {
		return Fatal
	}
	return Retryable
}

// Policy holds the backoff parameters. The zero value is not usable; build it
// with [NewPolicy].
type Policy struct {
	baseDelay     time.Duration
	maxAttempts   int
	jitterPercent uint64
	now           func() time.Time
}

// Option customises a [Policy].
type Option func(*Policy)

// WithJitterPercent spreads every delay by up to ±percent.
func WithJitterPercent(percent uint64) Option {
	return func(p *Policy) { p.jitterPercent = percent }
}

// WithClock replaces time.Now, used to stamp RetryState.NextRetryAt.
func WithClock(now func() time.Time) Option {
	return func(p *Policy) { p.now = now }
}

// NewPolicy builds a policy retrying up to maxAttempts times, waiting
// baseDelay, 2*baseDelay, 4*baseDelay... between attempts. Non-positive
// arguments fall back to [DefaultBaseDelay] and [models.MaxRetryAttempts].
func NewPolicy(baseDelay time.Duration, maxAttempts int, opts ...Option) *Policy {
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	if maxAttempts <= 0 {
		maxAttempts = models.MaxRetryAttempts
	}

	p := &Policy{baseDelay: baseDelay, maxAttempts: maxAttempts, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MaxAttempts returns the retry bound.
func (p *Policy) MaxAttempts() int {
	return p.maxAttempts
}

// Backoff returns a fresh schedule. go-retry backoffs are stateful, so every
// request needs its own.
func (p *Policy) Backoff() retry.Backoff {
	b := retry.NewExponential(p.baseDelay)
	if p.jitterPercent > 0 {
		b = retry.WithJitterPercent(p.jitterPercent, b)
	}
	return retry.WithMaxRetries(uint64(p.maxAttempts), b)
}

// Delays lists the full schedule without waiting.
func (p *Policy) Delays() []time.Duration {
	b := p.Backoff()
	delays := make([]time.Duration, 0, p.maxAttempts)
	for {
		d, stop := b.Next()
		if stop {
			return delays
		}
		delays = append(delays, d)
	}
}

// Do runs fn until it succeeds, fails fatally, or the retry bound is passed.
// observe, when not nil, receives the retry state after every failed
// attempt. The returned state is reset on success.
func (p *Policy) Do(ctx context.Context, fn func(ctx context.Context) error, observe func(models.RetryState)) (models.RetryState, error) {
	var state models.RetryState

	base := p.Backoff()
	schedule := retry.BackoffFunc(func() (time.Duration, bool) {
		d, stop := base.Next()
		if !stop {
			state.NextRetryAt = p.now().Add(d)
		}
		if observe != nil {
			observe(state)
		}
		return d, stop
	})

	err := retry.Do(ctx, schedule, func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		state.Attempt++
		state.LastError = err
		if Classify(err) == Fatal {
			return err
		}
		return retry.RetryableError(err)
	})
	if err == nil {
		state.Reset()
		return state, nil
	}

	if state.Exhausted(p.maxAttempts) && Classify(err) == Retryable {
		return state, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, state.Attempt, err)
	}
	return state, err
}
