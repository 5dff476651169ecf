package bytesource

// Source is a push-style byte source: data arrives in irregular chunks at
// the producer's pace, and the consumer pulls whatever is already buffered
// without blocking. A Source terminates exactly once, through one of three
// signals: a normal end, an error, or an abrupt close.
type Source interface {
	// TryRead returns up to n already-buffered bytes, or nil if the request
	// cannot be satisfied right now. Before the producer signals end, a
	// request is satisfied only when at least n bytes are buffered; after
	// the end signal, whatever remains is returned even if shorter.
	TryRead(n int) []byte

	// Readable returns a fresh one-shot channel that is closed the next
	// time the source may have data again. Subscribe before polling and
	// re-subscribe on every retry; a channel obtained after termination is
	// closed immediately.
	Readable() <-chan struct{}

	// Ended is closed when the source ended normally and every buffered
	// byte has been consumed.
	Ended() <-chan struct{}

	// Errored delivers the producer's error, at most once.
	Errored() <-chan error

	// Closed is closed when the source was torn down without an end or
	// error signal.
	Closed() <-chan struct{}
}
