package streamreader

import "errors"

var (
	// ErrEndOfStream reports that the source ended normally and no
	// buffered bytes remain. Compare with errors.Is.
	ErrEndOfStream = errors.New("end of stream")

	// ErrClosedSource reports that the source was torn down without an end
	// or error signal.
	ErrClosedSource = errors.New("stream closed before end of stream")
)
