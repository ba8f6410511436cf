// Package callback adapts error-first callback APIs (typical of foreign
// store SDKs) into ordinary blocking calls. An operation that needs extra
// positional arguments ahead of its handler captures them in the closure
// passed to Await.
package callback

import (
	"context"
	"sync"
)

// Op is an asynchronous operation that eventually invokes done exactly
// once with an error-first outcome.
type Op[T any] func(done func(err error, value T))

// Promise is the pending outcome of an Op. Wait may be called any number
// of times; only the first invocation of the handler is recorded.
type Promise[T any] struct {
	ch   chan outcome[T]
	once sync.Once
}

type outcome[T any] struct {
	value T
	err   error
}

// Go starts op in its own goroutine and returns the pending outcome.
func Go[T any](op Op[T]) *Promise[T] {
	p := &Promise[T]{ch: make(chan outcome[T], 1)}
	go op(func(err error, value T) {
		p.once.Do(func() { p.ch <- outcome[T]{value: value, err: err} })
	})
	return p
}

// Wait blocks until the operation settles or ctx is done. A nil error
// from the handler resolves with the value; a non-nil error rejects.
func (p *Promise[T]) Wait(ctx context.Context) (T, error) {
	select {
	case out := <-p.ch:
		// allow repeated Wait calls to observe the same outcome
		p.ch <- out
		if out.err != nil {
			var zero T
			return zero, out.err
		}
		return out.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Await is the common one-shot form: start op and wait for its outcome.
func Await[T any](ctx context.Context, op Op[T]) (T, error) {
	return Go(op).Wait(ctx)
}
