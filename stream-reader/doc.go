// Package streamreader adapts a push-style byte source into pull-based Read
// and Peek calls with look-ahead buffering.
package streamreader

/* Reading Rules

1. A Read() call fills up to len(p) bytes into p, when possible.
2. Read() blocks until at least one byte is available or the source
   terminates; there is no timeout or cancellation. Callers needing either
   must terminate the source (Fail/Close) or wrap the call externally.
3. A short read (n < len(p), err == nil) means the source ended mid-read.
   It is a signal, not an error: the next Read() returns ErrEndOfStream
   once nothing buffered remains.
4. Upon a source error, a Read() call may still return n > 0 bytes drained
   from the peek buffer alongside the error. Depending on your own use, you
   may keep the bytes in p or discard them.
5. Peek() is Read() without consuming: the same bytes come back on the next
   Read() or Peek(), in the same order.
6. One logical reader per StreamReader. Overlapping Read()/Peek() calls
   from multiple goroutines are a usage bug and panic.
*/
