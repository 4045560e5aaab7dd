package cursor

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// DefaultChunkSize is the default read size for Buffered.
const DefaultChunkSize = 64 * 1024

// Buffered is a sliding text window over a chunked io.Reader. It
// presents the same random-access-within-the-resident-window contract
// as Memory, but never holds more of the source than a couple of
// chunks at a time. Refills are synchronous blocking reads performed
// directly inside Next/AtLeast (Cur only reads the resident window) —
// there is no background goroutine,
// per the engine's single-threaded, pull-driven concurrency model.
type Buffered struct {
	r         io.Reader
	chunkSize int
	logger    hclog.Logger

	window  []byte
	pos     int
	eof     bool  // the underlying reader is known exhausted
	total   int64 // logical offset of window[0] since the start of input
	readErr error // set if the underlying reader failed with a non-EOF error
}

// NewBuffered wraps r for streaming parsing. chunkSize <= 0 is replaced
// with DefaultChunkSize. A nil logger is replaced with a no-op logger.
// The first chunk is read eagerly so Cur() is valid immediately.
func NewBuffered(r io.Reader, chunkSize int, logger hclog.Logger) *Buffered {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	b := &Buffered{r: r, chunkSize: chunkSize, logger: logger}
	b.refill()
	return b
}

// ReadErr returns the underlying reader's most recent non-EOF error, if
// any. The engine surfaces this instead of a generic "unexpected end of
// input" message when a refill failed for a reason other than EOF.
func (b *Buffered) ReadErr() error { return b.readErr }

func (b *Buffered) Cur() byte {
	if b.pos >= len(b.window) {
		return 0
	}
	return b.window[b.pos]
}

func (b *Buffered) Next() byte {
	if b.pos+1 >= len(b.window) && !b.eof {
		b.refill()
	}
	if b.pos < len(b.window) {
		b.pos++
	}
	return b.Cur()
}

func (b *Buffered) Back() {
	if b.pos <= 0 {
		panic("cursor: back buffer exhausted")
	}
	b.pos--
}

func (b *Buffered) AtLeast(n int) bool {
	for len(b.window)-b.pos < n && !b.eof {
		b.refill()
	}
	return len(b.window)-b.pos >= n
}

func (b *Buffered) Pos() int64 { return b.total + int64(b.pos) }

func (b *Buffered) Window() []byte { return b.window }

// refill reads one more chunk, preserving the unconsumed tail and
// rebasing pos to 0 over the concatenation of tail and fresh bytes.
//
// Note on "eager leading-whitespace skip on refill": that behavior is
// intentionally not implemented here. Stripping leading whitespace
// from the fresh window unconditionally on every refill, including one
// triggered mid-string-scan, would silently delete a literal space
// character that happens to fall exactly on a chunk boundary inside a
// string's content. Instead, lex.SkipSpace itself re-checks Cur() in a
// loop after every AtLeast call, so a refill that happens while
// genuinely skipping inter-token whitespace continues to skip
// correctly with no special case here, and a refill that happens
// mid-token never touches whitespace it shouldn't.
func (b *Buffered) refill() {
	if b.eof {
		return
	}
	tail := b.window[b.pos:]
	b.total += int64(b.pos)

	buf := make([]byte, len(tail)+b.chunkSize)
	copy(buf, tail)

	n, err := b.readFull(buf[len(tail):])
	b.window = buf[:len(tail)+n]
	b.pos = 0

	if n == 0 {
		b.eof = true
		if err != nil && err != io.EOF {
			b.readErr = err
		}
		b.logger.Trace("buffer exhausted", "resident", len(b.window))
		return
	}

	b.logger.Trace("buffer refilled", "read", n, "resident", len(b.window))
}

// readFull retries a Read that returns (0, nil) without error, which a
// conforming io.Reader may legitimately do, and treats io.EOF as "no
// more data" rather than an error to surface.
func (b *Buffered) readFull(buf []byte) (int, error) {
	for {
		n, err := b.r.Read(buf)
		if n > 0 {
			return n, nil
		}
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil {
			return 0, err
		}
		// n == 0, err == nil: retry.
	}
}
