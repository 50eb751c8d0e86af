package util

import (
	"context"
	"time"

	"github.com/cenkalti/backoff"
)

// Retrier retries an operation on an exponential backoff schedule.
// It wraps "github.com/cenkalti/backoff".ExponentialBackOff.
type Retrier struct {
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	Multiplier          float64
	RandomizationFactor float64
	MaxElapsedTime      time.Duration
	MaxTries            int
	ShouldRetry         func(err error) bool
}

// NewRetrier creates a new Retrier instance using default values.
func NewRetrier() *Retrier {
	return &Retrier{
		InitialInterval:     time.Millisecond * 500,
		MaxInterval:         time.Second * 60,
		Multiplier:          1.5,
		RandomizationFactor: 0.5,
		MaxElapsedTime:      time.Minute * 15,
		MaxTries:            10,
	}
}

// Retry the function f until it does not return error or the backoff stops.
func (r *Retrier) Retry(ctx context.Context, f func() error) error {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     r.InitialInterval,
		MaxInterval:         r.MaxInterval,
		Multiplier:          r.Multiplier,
		RandomizationFactor: r.RandomizationFactor,
		MaxElapsedTime:      r.MaxElapsedTime,
		Clock:               backoff.SystemClock,
	}

	// Cap the number of retry attempts.
	tries := r.MaxTries - 1
	if tries < 0 {
		tries = 0
	}

	wrapped := backoff.WithContext(backoff.WithMaxRetries(b, uint64(tries)), ctx)
	return backoff.Retry(func() error { return r.checkErr(f()) }, wrapped)
}

func (r *Retrier) checkErr(err error) error {
	if err != nil && r.ShouldRetry != nil && !r.ShouldRetry(err) {
		return &backoff.PermanentError{Err: err}
	}
	return err
}
