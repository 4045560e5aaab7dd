package eventjson

import (
	"io"
	"iter"

	"github.com/dkowalski/eventjson/internal/cursor"
)

// Decoder is the streaming/buffered entry point: it parses from an
// io.Reader over a sliding text window rather than loading the whole
// source into memory first. The zero value is not usable; construct
// with NewDecoder.
type Decoder struct {
	stream *Stream
}

// NewDecoder wraps r for streaming parsing. If r also implements
// io.Closer, the underlying stream closes it once exhausted or once
// the consumer stops ranging over it early — mirroring the scoped-
// acquisition-with-guaranteed-release contract of the source's buffer
// adapter.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	cfg := newConfig(opts)
	buf := cursor.NewBuffered(r, cfg.chunkSize, cfg.logger)

	eng := newEngine(buf)
	if c, ok := r.(io.Closer); ok {
		return &Decoder{stream: newClosingStream(eng, c)}
	}
	return &Decoder{stream: newStream(eng)}
}

// Events returns the event stream. Ranging over it to completion (or
// breaking out early) triggers the Decoder's close-on-exit behavior.
func (d *Decoder) Events() iter.Seq[Event] { return d.stream.Events() }

// Err returns the error that stopped the parse, if any, meaningful
// only after Events has been fully ranged over.
func (d *Decoder) Err() error { return d.stream.Err() }
