package eventjson

import (
	"errors"
	"fmt"
	"strconv"

	goerrors "github.com/go-errors/errors"
)

// ParseError is the single error kind this module ever returns for
// malformed input. It carries the offending position and a window of
// the surrounding text so callers (and log lines) can point at the
// exact failure.
type ParseError struct {
	Msg       string // human-readable description, from the catalogue below
	Window    []byte // the resident buffer (buffered variant) or full input
	Pos       int64  // byte offset of the failure within the logical input
	Offending byte   // the character at Pos, 0 if input was exhausted or no single character is at fault
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at byte %d (found %s)", e.Msg, e.Pos, quoteChar(e.Offending))
}

// quoteChar formats c as a quoted character literal for error messages,
// with the same special-casing of quote characters a Go %q would need.
func quoteChar(c byte) string {
	if c == 0 {
		return "end of input"
	}
	s := strconv.QuoteRune(rune(c))
	return s
}

// newParseError builds a ParseError and attaches a stack trace via
// go-errors/errors so that Decoder.Err() / Stream.Err() surface
// diagnosable errors without changing Error()'s user-facing text.
func newParseError(msg string, window []byte, pos int64, offending byte) error {
	pe := &ParseError{Msg: msg, Window: window, Pos: pos, Offending: offending}
	return goerrors.New(pe)
}

// AsParseError unwraps err (which may be wrapped by go-errors/errors for
// its stack trace) into a *ParseError, if that's what it is.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Error message catalogue. Kept as constants so call sites read as
// intent rather than repeated string literals.
const (
	msgUnexpectedBOM    = "unexpected UTF-8 BOM; decode using utf-8-sig"
	msgMustStartWith    = "JSON must start with `{` or `[`"
	msgUnexpectedEOF    = "unexpected end of input"
	msgExpectingComma   = "expecting comma"
	msgExpectingKey     = "expecting property name enclosed in double quotes"
	msgExpectingColon   = "expecting `:`"
	msgUnexpectedChar   = "unexpected character"
	msgExpectingCloseOb = "expecting `}`"
	msgExpectingCloseAr = "expecting `]`"
	msgInvalidString    = "invalid string literal"
	msgInvalidNumber    = "invalid numeric literal"
	msgUnsupportedInput = "unsupported input type"
)
