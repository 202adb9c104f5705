// Package ratelimit throttles outbound requests to the learning platform.
// Its purpose is to stay under the server's request ceiling and avoid
// 429 (Too Many Requests) rejections; there are no retries anywhere, so
// the limiter is the only defense.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

const (
	DefaultCallsLimit = 5
	DefaultPeriod     = time.Second
)

// Limiter bounds wrapped units of work two ways: at most callsLimit run
// concurrently, and at most callsLimit completions land inside any rolling
// period window. One instance is shared by every caller that touches the
// network; it must never be re-created per call site.
//
// Admission (the semaphore) and the completion-timestamp queue are
// deliberately decoupled, so the rolling-window bound is approximate when
// callers are cancelled between admission and completion. The concurrency
// bound is exact.
type Limiter struct {
	callsLimit int
	period     time.Duration

	sem chan struct{}

	mu       sync.Mutex
	finishAt []time.Time // FIFO of earliest-next-completion timestamps
}

// New returns a limiter admitting callsLimit concurrent units with at most
// callsLimit completions per period. Non-positive arguments fall back to
// the defaults.
func New(callsLimit int, period time.Duration) *Limiter {
	if callsLimit <= 0 {
		callsLimit = DefaultCallsLimit
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Limiter{
		callsLimit: callsLimit,
		period:     period,
		sem:        make(chan struct{}, callsLimit),
	}
}

// Do runs fn under the limiter. It blocks until a concurrency slot is free
// and the completion window allows another call, then invokes fn. A
// completion timestamp is recorded whether fn succeeds or fails: a failed
// request still counted against the server's ceiling.
func (l *Limiter) Do(ctx context.Context, fn func() error) error {
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-l.sem }()

	if err := l.waitForWindow(ctx); err != nil {
		return err
	}

	defer l.recordCompletion()
	return fn()
}

// waitForWindow pops the oldest recorded completion once the queue is full
// and sleeps until that timestamp elapses.
func (l *Limiter) waitForWindow(ctx context.Context) error {
	l.mu.Lock()
	var until time.Time
	if len(l.finishAt) >= l.callsLimit {
		until = l.finishAt[0]
		l.finishAt = l.finishAt[1:]
	}
	l.mu.Unlock()

	if until.IsZero() {
		return nil
	}
	d := time.Until(until)
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Limiter) recordCompletion() {
	l.mu.Lock()
	l.finishAt = append(l.finishAt, time.Now().Add(l.period))
	l.mu.Unlock()
}
