package peekbuffer

import "github.com/gammazero/deque"

// Buffer is a non-thread-safe FIFO of byte chunks holding data that was
// already pulled from a source but not yet delivered to the consumer.
// Concatenating the chunks front to back always reproduces the exact next
// bytes owed, in order; Take never reorders, duplicates, or drops bytes.
// The zero value is an empty buffer ready to use.
type Buffer struct {
	chunks deque.Deque[[]byte]
	size   int
}

// Push appends a chunk at the back of the buffer. The buffer takes
// ownership of chunk; the caller must not reuse it. Empty chunks are
// dropped.
func (b *Buffer) Push(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	b.chunks.PushBack(chunk)
	b.size += len(chunk)
}

// Unread puts a chunk back at the front of the buffer, ahead of everything
// already buffered. Peeked bytes must come back through Unread, not Push:
// appending them behind an unconsumed remainder would break delivery order.
func (b *Buffer) Unread(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	b.chunks.PushFront(chunk)
	b.size += len(chunk)
}

// Take removes up to len(p) buffered bytes into p, oldest first, crossing
// chunk boundaries as needed. A partially consumed chunk keeps its
// remainder at the front for the next Take. Returns the number of bytes
// copied.
func (b *Buffer) Take(p []byte) int {
	total := 0
	for total < len(p) && b.chunks.Len() > 0 {
		chunk := b.chunks.PopFront()
		n := copy(p[total:], chunk)
		total += n
		if n < len(chunk) {
			b.chunks.PushFront(chunk[n:])
		}
	}
	b.size -= total
	return total
}

// Len returns the total number of buffered bytes.
func (b *Buffer) Len() int {
	return b.size
}

// Empty reports whether no bytes are buffered.
func (b *Buffer) Empty() bool {
	return b.size == 0
}
