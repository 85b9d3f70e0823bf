// Package chflow holds small context-aware channel helpers shared by the
// polling loop and the shutdown paths.
package chflow

import "context"

// Receive blocks until a value arrives on ch or ctx is done. The boolean is
// false when ctx ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Wait blocks until done is closed or ctx ends, returning ctx.Err() in the
// latter case.
//
//	if err := chflow.Wait(shutdownCtx, monitor.Done()); err != nil {
//		// gave up waiting for in-flight cycles
//	}
func Wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
