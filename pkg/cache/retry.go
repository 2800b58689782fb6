package cache

import (
	"context"
	"errors"
	"io"
	"net"
	"time"
)

// transientError marks a backend failure that may succeed when repeated,
// such as a dropped connection.
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// IsTransient reports whether err, or an error it wraps, was classified as
// a connection-level failure by a cache backend.
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

// transient classifies err: network errors and unexpected EOFs are wrapped
// as transient, everything else is returned unchanged.
func transient(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &transientError{err: err}
	}
	return err
}

// backoff repeats an operation while it fails transiently, doubling the
// pause after each attempt.
type backoff struct {
	attempts int
	delay    time.Duration
}

func (b backoff) do(ctx context.Context, op func() error) error {
	delay := b.delay
	var err error
	for attempt := 1; ; attempt++ {
		if err = op(); err == nil || !IsTransient(err) || attempt >= b.attempts {
			return err
		}
		t := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
		delay *= 2
	}
}
