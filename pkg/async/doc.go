// Package async provides small generic helpers for running computations
// concurrently and joining their results.
//
// Async starts a function in its own goroutine and returns a *Future. The
// caller waits with Await or polls with IsComplete. A panic inside the
// function does not crash the process: the future completes with an error
// wrapping ErrPanic.
//
// WaitAll collects the results of several futures in order. FanOut is the
// fail-fast form used for request-scoped work: it runs one task per
// parameter, stores each result in the slot matching its parameter index and
// returns on the first error, canceling the context the other tasks share.
//
//	results, err := async.FanOut(ctx, names, func(ctx context.Context, name string) (int, error) {
//		return lookup(ctx, name)
//	})
//	if err != nil {
//		return err
//	}
//
// All helpers are context-aware: a task whose context is already canceled
// completes immediately with the context error.
package async
