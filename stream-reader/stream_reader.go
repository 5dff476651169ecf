package streamreader

import (
	"errors"
	"fmt"
	"sync"

	"github.com/petermattis/goid"
	"github.com/rs/zerolog/log"

	bytesource "github.com/santiago-m/peek-readable-cjs/byte-source"
	"github.com/santiago-m/peek-readable-cjs/future"
	peekbuffer "github.com/santiago-m/peek-readable-cjs/peek-buffer"
)

// StreamReader turns a push-style byte source into pull-based Read and Peek
// calls. Reads are satisfied from the peek buffer first, then by at most
// one outstanding low-level read against the source. A single termination
// watcher funnels the source's end, error, and close signals into one
// terminal state that rejects any in-flight read and fails all later ones.
type StreamReader struct {
	src bytesource.Source

	// mu guards peeked, pending, ended, and termErr together.
	mu      sync.Mutex
	peeked  peekbuffer.Buffer
	pending *pendingRequest
	ended   bool
	termErr error

	// done is closed when the terminal state is entered.
	done chan struct{}
}

// pendingRequest is the single in-flight low-level read. At most one exists
// per StreamReader; creating a second while one is alive is a usage bug.
type pendingRequest struct {
	dst []byte
	fut *future.Future[int]
	gid int64
}

// New wraps src and starts watching its termination signals. The reader
// does not own src and never closes it.
func New(src bytesource.Source) *StreamReader {
	sr := &StreamReader{
		src:  src,
		done: make(chan struct{}),
	}
	go sr.watch()
	return sr
}

// Read fills p with the next bytes of the stream, peeked bytes first, and
// returns how many were delivered. A zero-length p returns immediately.
// Read blocks until at least one byte arrives or the source terminates.
//
// A short read with a nil error means the source ended mid-read; only a
// zero-byte outcome reports ErrEndOfStream. A source error or abrupt close
// is returned even alongside bytes drained from the peek buffer.
func (sr *StreamReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	sr.mu.Lock()
	if sr.peeked.Empty() && sr.ended {
		err := sr.termErr
		sr.mu.Unlock()
		return 0, err
	}
	n := sr.peeked.Take(p)
	ended := sr.ended
	sr.mu.Unlock()

	if n == len(p) || ended {
		// Either satisfied in full, or the stream is already over and the
		// peek buffer gave what it had. Bytes delivered are never erased
		// by end of stream.
		return n, nil
	}

	m, err := sr.readFromSource(p[n:]).Await()
	if err != nil {
		if errors.Is(err, ErrEndOfStream) && n > 0 {
			return n, nil
		}
		return n, err
	}
	return n + m, nil
}

// Peek is Read without consuming: the bytes delivered into p are also
// returned by the next Read or Peek. Repeated peeks with non-decreasing
// lengths are cumulative and idempotent on the source.
func (sr *StreamReader) Peek(p []byte) (int, error) {
	n, err := sr.Read(p)
	if n > 0 {
		keep := make([]byte, n)
		copy(keep, p[:n])
		sr.mu.Lock()
		sr.peeked.Unread(keep)
		sr.mu.Unlock()
	}
	return n, err
}

// readFromSource issues the single low-level read for dst. If the source
// has data buffered the future resolves synchronously; otherwise a pending
// request is registered and a retry loop waits on the readiness signal.
func (sr *StreamReader) readFromSource(dst []byte) *future.Future[int] {
	fut := future.New[int]()

	sr.mu.Lock()
	if sr.pending != nil {
		owner := sr.pending.gid
		sr.mu.Unlock()
		// one logical reader per StreamReader
		panic(fmt.Sprintf("goroutine (%d) issued a read while goroutine (%d) has one pending", goid.Get(), owner))
	}
	if chunk := sr.src.TryRead(len(dst)); chunk != nil {
		n := copy(dst, chunk)
		sr.mu.Unlock()
		fut.Resolve(n)
		return fut
	}
	if sr.ended {
		err := sr.termErr
		sr.mu.Unlock()
		fut.Reject(err)
		return fut
	}
	sr.pending = &pendingRequest{dst: dst, fut: fut, gid: goid.Get()}
	sr.mu.Unlock()

	go sr.retryPending()
	return fut
}

// retryPending re-attempts the pending low-level read each time the source
// signals readiness, re-subscribing after every miss, until the request is
// delivered or the stream terminates. Subscribe before polling so a push
// between the two is never missed.
func (sr *StreamReader) retryPending() {
	for {
		readable := sr.src.Readable()
		if sr.deliverPending() {
			return
		}
		select {
		case <-readable:
		case <-sr.done:
			return
		}
	}
}

// deliverPending tries to satisfy the pending request right now. It reports
// true when no pending request remains, either because it was just resolved
// or because termination already rejected it.
func (sr *StreamReader) deliverPending() bool {
	sr.mu.Lock()
	req := sr.pending
	if req == nil {
		sr.mu.Unlock()
		return true
	}
	chunk := sr.src.TryRead(len(req.dst))
	if chunk == nil {
		sr.mu.Unlock()
		return false
	}
	n := copy(req.dst, chunk)
	sr.pending = nil
	sr.mu.Unlock()

	req.fut.Resolve(n)
	return true
}

// watch funnels the source's three termination signals, each observed at
// most once, into the single terminate path.
func (sr *StreamReader) watch() {
	select {
	case <-sr.src.Ended():
		sr.terminate(ErrEndOfStream)
	case err := <-sr.src.Errored():
		if err == nil {
			err = ErrClosedSource
		}
		sr.terminate(err)
	case <-sr.src.Closed():
		sr.terminate(ErrClosedSource)
	}
}

// terminate enters the absorbing terminal state: no further low-level reads
// are attempted, a pending request is rejected, and later reads fail with
// err once the peek buffer is drained.
func (sr *StreamReader) terminate(err error) {
	sr.mu.Lock()
	if sr.ended {
		sr.mu.Unlock()
		return
	}
	sr.ended = true
	sr.termErr = err
	req := sr.pending
	sr.pending = nil
	close(sr.done)
	sr.mu.Unlock()

	if req != nil {
		req.fut.Reject(err)
	}
	log.Debug().Err(err).Msg("stream terminated")
}
