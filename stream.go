package eventjson

import "iter"

// Stream is a lazy, finite, non-restartable sequence of parse events.
// Range over it with a regular for-range loop; once the range exits
// (normally or via an early break), call Err to check whether the
// parse stopped because of a structural or I/O error rather than
// having reached the end of the input.
type Stream struct {
	eng    *engine
	seq    iter.Seq[Event]
	closer closer
}

// closer matches io.Closer without importing io here; satisfied by
// cursor.Buffered's underlying reader when streaming from one.
type closer interface {
	Close() error
}

func newStream(eng *engine) *Stream {
	return &Stream{eng: eng, seq: eng.events()}
}

// newClosingStream is newStream plus a resource that must be closed
// once the stream is exhausted or abandoned mid-range.
func newClosingStream(eng *engine, c closer) *Stream {
	return &Stream{eng: eng, seq: eng.events(), closer: c}
}

// Events returns the underlying iterator, for callers composing it
// with other iter.Seq-based helpers (e.g. Collect, Annotate). If the
// stream owns a closeable resource (a Decoder's reader, say), ranging
// over it to completion or breaking out early closes that resource.
func (s *Stream) Events() iter.Seq[Event] {
	if s.closer == nil {
		return s.seq
	}
	underlying := s.seq
	return func(yield func(Event) bool) {
		defer s.closer.Close()
		underlying(yield)
	}
}

// Err returns the error that stopped the parse, if any. It is only
// meaningful after the stream has been fully ranged over (or broken
// out of after the error event would have been produced) — the error
// is a side effect of consuming the sequence, not available up front.
func (s *Stream) Err() error { return s.eng.err }
