package async

import (
	"context"
	"fmt"
	"sync"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async executes a function asynchronously and returns a Future.
// A panic inside fn completes the future with an error wrapping ErrPanic.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.once.Do(func() {
					f.err = fmt.Errorf("%w: %v", ErrPanic, r)
				})
			}
		}()

		// Early exit prevents goroutine leak when context is pre-canceled
		if err := ctx.Err(); err != nil {
			f.once.Do(func() { f.err = err })
			return
		}

		res, err := fn(ctx, param)
		f.once.Do(func() {
			f.result = res
			f.err = err
		})
	}()

	return f
}

// WaitAll waits for all futures to complete and returns a slice of their results and an error
// if any of the futures returned an error.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil {
			return results, err
		}
	}

	return results, nil
}

// FanOut runs fn once per parameter concurrently and returns the results in
// parameter order. The first error cancels the context shared by the
// remaining tasks and is returned at once; tasks still running are left to
// finish on their own and their outcomes are discarded.
func FanOut[T any, U any](ctx context.Context, params []T, fn func(context.Context, T) (U, error)) ([]U, error) {
	if len(params) == 0 {
		return []U{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		index int
		err   error
	}

	futures := make([]*Future[U], len(params))
	// Buffered so late finishers never block after an early return.
	outcomes := make(chan outcome, len(params))
	for i, param := range params {
		futures[i] = Async(ctx, param, fn)
		go func(i int, f *Future[U]) {
			_, err := f.Await()
			outcomes <- outcome{index: i, err: err}
		}(i, futures[i])
	}

	results := make([]U, len(params))
	for range params {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case o := <-outcomes:
			if o.err != nil {
				return nil, o.err
			}
			results[o.index], _ = futures[o.index].Await()
		}
	}
	return results, nil
}
