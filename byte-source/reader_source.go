package bytesource

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
)

// DefaultChunkSize is the pump's read size when FromReader is given a
// non-positive one.
const DefaultChunkSize = 4096

// FromReader adapts a pull-style io.Reader into a push-style Source. A pump
// goroutine reads chunks of up to chunkSize bytes and pushes them until the
// reader reports io.EOF (mapped to End) or any other error (mapped to
// Fail). The pump stops on its own if the consumer terminates the source
// first.
func FromReader(r io.Reader, chunkSize int) *PushSource {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	s := NewPushSource()
	go pump(r, s, chunkSize)
	return s
}

func pump(r io.Reader, s *PushSource, chunkSize int) {
	for {
		chunk := make([]byte, chunkSize)
		n, err := r.Read(chunk)
		if n > 0 {
			if s.Push(chunk[:n]) != nil {
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.End()
			} else {
				log.Debug().Err(err).Msg("reader source failed")
				s.Fail(err)
			}
			return
		}
	}
}
