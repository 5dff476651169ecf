package main

import (
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	bytesource "github.com/santiago-m/peek-readable-cjs/byte-source"
	streamreader "github.com/santiago-m/peek-readable-cjs/stream-reader"
)

// peekdemo reads stdin through the stream reader: it peeks at the first
// bytes without consuming them, then reads everything and shows that the
// peeked bytes come back first.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	src := bytesource.FromReader(os.Stdin, 0)
	r := streamreader.New(src)

	head := make([]byte, 8)
	n, err := r.Peek(head)
	if err != nil {
		log.Fatal().Err(err).Msg("peek failed")
	}
	log.Info().Msgf("peeked %d bytes without consuming: %q", n, head[:n])

	buf := make([]byte, 4096)
	total := 0
	for {
		n, err := r.Read(buf)
		total += n
		if err != nil {
			if errors.Is(err, streamreader.ErrEndOfStream) {
				break
			}
			log.Fatal().Err(err).Msg("read failed")
		}
		if n > 0 {
			log.Info().Msgf("read %d bytes, first of them: %q", n, buf[0])
		}
	}

	log.Info().Msgf("stream ended after %d bytes", total)
}
