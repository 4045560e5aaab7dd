// Package cursor implements the "current character window" abstraction
// the event engine parses against. Two implementations exist: Memory,
// a trivial wrapper around an already-loaded string, and Buffered, a
// sliding window over a chunked io.Reader. Both satisfy Cursor so the
// engine's state machine and the lexical primitives in internal/lex are
// written once and shared by both engine variants.
package cursor

// Cursor is the engine's view of "current position in the input". Next
// advances one byte and returns the new current byte, transparently
// pulling in more input if the resident window was exhausted; it
// returns 0 only once the source is genuinely exhausted. Cur re-reads
// the current byte without moving. Back undoes the most recent Next
// call; only one level of lookback is guaranteed.
type Cursor interface {
	Cur() byte
	Next() byte
	Back()

	// AtLeast reports whether at least n bytes are available starting
	// at the current position, pulling in more input as needed. It is
	// used to pre-check fixed-width tokens (the "true"/"false"/"null"
	// keywords) before comparing them byte-by-byte.
	AtLeast(n int) bool

	// Pos is the logical offset since the start of input, used only
	// for error reporting.
	Pos() int64

	// Window returns the resident text around the current position,
	// for inclusion in error messages.
	Window() []byte
}
