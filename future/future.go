package future

import "sync"

// Future is a single-assignment asynchronous result cell. It starts
// unresolved; the first Resolve or Reject fixes the outcome permanently and
// wakes every waiter. Any later Resolve or Reject is a no-op and never
// changes the fixed outcome.
type Future[T any] struct {
	once  sync.Once
	ready chan struct{}
	val   T
	err   error
}

// New returns an unresolved future.
func New[T any]() *Future[T] {
	return &Future[T]{ready: make(chan struct{})}
}

// Resolve fixes the outcome to v.
func (f *Future[T]) Resolve(v T) {
	f.once.Do(func() {
		f.val = v
		close(f.ready)
	})
}

// Reject fixes the outcome to err.
func (f *Future[T]) Reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.ready)
	})
}

// Await blocks the calling goroutine until the future settles, then returns
// the fixed outcome. Await may be called from any number of goroutines; all
// of them observe the same result.
func (f *Future[T]) Await() (T, error) {
	<-f.ready
	return f.val, f.err
}

// Done returns a channel that is closed once the future settles, for
// select-based waits.
func (f *Future[T]) Done() <-chan struct{} {
	return f.ready
}
