package eventjson

import (
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/dkowalski/eventjson/internal/cursor"
)

// Parse parses an already-decoded string in memory. A leading U+FEFF
// is rejected rather than silently skipped: a decoded string carrying
// a byte-order mark usually means the caller decoded raw bytes as
// UTF-8 without stripping the mark that ParseBytes would have handled
// for them.
func Parse(s string) *Stream {
	if strings.HasPrefix(s, "\ufeff") {
		return failedStream(newParseError(msgUnexpectedBOM, []byte(s), 0, s[0]))
	}
	return newStream(newEngine(cursor.NewMemory(s)))
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf32BEBOM = []byte{0x00, 0x00, 0xFE, 0xFF}
	utf32LEBOM = []byte{0xFF, 0xFE, 0x00, 0x00}
	utf16BEBOM = []byte{0xFE, 0xFF}
	utf16LEBOM = []byte{0xFF, 0xFE}
)

// ParseBytes parses a raw byte buffer, in memory. Encoding is
// auto-detected from a leading byte-order mark (UTF-8, UTF-16 LE/BE,
// UTF-32 LE/BE), defaulting to plain UTF-8 when none is present.
// WithEncoding overrides detection entirely.
func ParseBytes(b []byte, opts ...Option) *Stream {
	cfg := newConfig(opts)

	if cfg.encoding != nil {
		decoded, err := cfg.encoding.NewDecoder().Bytes(b)
		if err != nil {
			return failedStream(newParseError(msgUnsupportedInput, b, 0, 0))
		}
		return Parse(string(decoded))
	}

	switch {
	case bytes.HasPrefix(b, utf32BEBOM):
		return decodeBytes(b, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM))
	case bytes.HasPrefix(b, utf32LEBOM):
		return decodeBytes(b, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM))
	case bytes.HasPrefix(b, utf16BEBOM):
		return decodeBytes(b, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM))
	case bytes.HasPrefix(b, utf16LEBOM):
		return decodeBytes(b, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM))
	case bytes.HasPrefix(b, utf8BOM):
		return Parse(string(b[len(utf8BOM):]))
	default:
		return Parse(string(b))
	}
}

func decodeBytes(b []byte, enc encoding.Encoding) *Stream {
	decoded, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return failedStream(newParseError(msgUnsupportedInput, b, 0, 0))
	}
	return Parse(string(decoded))
}

func failedStream(err error) *Stream {
	eng := &engine{err: err}
	return newStream(eng)
}
