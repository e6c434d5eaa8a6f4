package cli

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// runWithTimeout runs fn to completion, or returns a timeout error once
// timeout elapses first. fn keeps running in its goroutine after a
// timeout fires (encode/decode are pure CPU-bound work with no cancellation
// point of their own), but the command itself returns promptly either way.
// A non-positive timeout disables the deadline entirely.
func runWithTimeout(timeout time.Duration, fn func() error) error {
	if timeout <= 0 {
		return fn()
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errors.Errorf("command timed out after %s", timeout)
	}
}
