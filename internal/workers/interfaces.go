// Package workers runs the client's background loops (connectivity probe and
// outbox drain) side by side for the lifetime of a context.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is done or the worker
// fails; a nil error means it stopped because ctx ended.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
