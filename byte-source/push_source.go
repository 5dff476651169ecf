package bytesource

import (
	"errors"
	"sync"

	peekbuffer "github.com/santiago-m/peek-readable-cjs/peek-buffer"
)

// ErrTerminated is returned by Push once the source has ended, failed, or
// been closed.
var ErrTerminated = errors.New("byte source already terminated")

// PushSource is the in-memory Source implementation. Producers feed it with
// Push and finish it with exactly one of End, Fail, or Close; consumers
// drain it through the Source interface.
//
// End is deliberately lazy: bytes pushed before End stay readable, and the
// Ended signal fires only once the buffer is fully drained. Fail and Close
// signal immediately and discard nothing, but a consumer that honors them
// will stop reading.
type PushSource struct {
	mu         sync.Mutex
	buf        peekbuffer.Buffer
	waiters    []chan struct{}
	terminal   bool
	ended      bool
	endedFired bool

	endedCh   chan struct{}
	erroredCh chan error
	closedCh  chan struct{}
}

// NewPushSource returns an empty, open source.
func NewPushSource() *PushSource {
	return &PushSource{
		endedCh:   make(chan struct{}),
		erroredCh: make(chan error, 1),
		closedCh:  make(chan struct{}),
	}
}

// Push appends a chunk of bytes and wakes any readiness subscribers. The
// source takes ownership of chunk. Push fails with ErrTerminated after End,
// Fail, or Close.
func (s *PushSource) Push(chunk []byte) error {
	s.mu.Lock()
	if s.terminal {
		s.mu.Unlock()
		return ErrTerminated
	}
	s.buf.Push(chunk)
	waiters := s.takeWaitersLocked()
	s.mu.Unlock()

	wake(waiters)
	return nil
}

// End signals that no more data will ever be pushed. Buffered bytes remain
// readable; the Ended signal fires once they are gone.
func (s *PushSource) End() {
	s.mu.Lock()
	if s.terminal {
		s.mu.Unlock()
		return
	}
	s.terminal = true
	s.ended = true
	fire := s.buf.Empty() && !s.endedFired
	if fire {
		s.endedFired = true
	}
	waiters := s.takeWaitersLocked()
	s.mu.Unlock()

	wake(waiters)
	if fire {
		close(s.endedCh)
	}
}

// Fail terminates the source with err, delivered through Errored.
func (s *PushSource) Fail(err error) {
	if err == nil {
		err = errors.New("byte source failed")
	}
	s.mu.Lock()
	if s.terminal {
		s.mu.Unlock()
		return
	}
	s.terminal = true
	waiters := s.takeWaitersLocked()
	s.mu.Unlock()

	wake(waiters)
	s.erroredCh <- err
}

// Close tears the source down without an end or error signal.
func (s *PushSource) Close() {
	s.mu.Lock()
	if s.terminal {
		s.mu.Unlock()
		return
	}
	s.terminal = true
	waiters := s.takeWaitersLocked()
	s.mu.Unlock()

	wake(waiters)
	close(s.closedCh)
}

// TryRead implements Source.
func (s *PushSource) TryRead(n int) []byte {
	if n <= 0 {
		return nil
	}
	s.mu.Lock()
	if s.buf.Empty() || (!s.ended && s.buf.Len() < n) {
		s.mu.Unlock()
		return nil
	}
	p := make([]byte, min(n, s.buf.Len()))
	got := s.buf.Take(p)
	p = p[:got]
	fire := s.ended && s.buf.Empty() && !s.endedFired
	if fire {
		s.endedFired = true
	}
	s.mu.Unlock()

	if fire {
		close(s.endedCh)
	}
	return p
}

// Readable implements Source.
func (s *PushSource) Readable() <-chan struct{} {
	ch := make(chan struct{})
	s.mu.Lock()
	if s.terminal {
		s.mu.Unlock()
		close(ch)
		return ch
	}
	s.waiters = append(s.waiters, ch)
	s.mu.Unlock()
	return ch
}

// Ended implements Source.
func (s *PushSource) Ended() <-chan struct{} {
	return s.endedCh
}

// Errored implements Source.
func (s *PushSource) Errored() <-chan error {
	return s.erroredCh
}

// Closed implements Source.
func (s *PushSource) Closed() <-chan struct{} {
	return s.closedCh
}

func (s *PushSource) takeWaitersLocked() []chan struct{} {
	waiters := s.waiters
	s.waiters = nil
	return waiters
}

func wake(waiters []chan struct{}) {
	for _, w := range waiters {
		close(w)
	}
}
