package scratch

import "unicode/utf8"

// Scratch is a reusable, grow-on-demand byte accumulator for decoded
// string content, so that decoding a run of strings doesn't allocate a
// fresh buffer per call.
type Scratch struct {
	Data []byte
	fill int
}

// New returns a Scratch with an initial backing array of at least
// initial bytes. initial <= 0 falls back to a 64-byte default.
func New(initial int) *Scratch {
	if initial <= 0 {
		initial = 64
	}
	return &Scratch{Data: make([]byte, initial)}
}

// Reset discards any accumulated content without releasing the
// backing array.
func (s *Scratch) Reset() { s.fill = 0 }

// Bytes returns the accumulated content.
func (s *Scratch) Bytes() []byte { return s.Data[:s.fill] }

// String returns the accumulated content as a string.
func (s *Scratch) String() string { return string(s.Data[:s.fill]) }

// Add appends a single byte, growing the backing array first if it's full.
func (s *Scratch) Add(c byte) {
	s.ensure(1)
	s.Data[s.fill] = c
	s.fill++
}

// AddRune appends r's UTF-8 encoding, growing the backing array first
// if needed, and returns the number of bytes written.
func (s *Scratch) AddRune(r rune) int {
	s.ensure(utf8.UTFMax)
	n := utf8.EncodeRune(s.Data[s.fill:], r)
	s.fill += n
	return n
}

// ensure grows the backing array so at least n more bytes fit past
// fill, doubling until the request is satisfied rather than assuming
// one doubling is always enough.
func (s *Scratch) ensure(n int) {
	if s.fill+n <= len(s.Data) {
		return
	}
	newCap := len(s.Data)
	if newCap == 0 {
		newCap = 64
	}
	for s.fill+n > newCap {
		newCap *= 2
	}
	grown := make([]byte, newCap)
	copy(grown, s.Data[:s.fill])
	s.Data = grown
}
