package eventjson

import (
	"iter"
	"strconv"

	goerrors "github.com/go-errors/errors"

	"github.com/dkowalski/eventjson/internal/cursor"
	"github.com/dkowalski/eventjson/internal/lex"
	"github.com/dkowalski/eventjson/internal/scratch"
)

type frameKind int

const (
	frameObject frameKind = iota
	frameArray
)

// frame is one entry on the engine's explicit container stack. first
// tracks whether the frame is still expecting its opening element,
// governing whether a comma is required before the next one.
type frame struct {
	kind  frameKind
	first bool
}

func closeDelim(k frameKind) byte {
	if k == frameArray {
		return ']'
	}
	return '}'
}

// engine runs the stack-based state machine against a cursor.Cursor,
// never recursing into Go's call stack — nesting depth is bounded only
// by how large the stack slice is allowed to grow.
type engine struct {
	c       cursor.Cursor
	stack   []frame
	scratch *scratch.Scratch
	err     error
}

func newEngine(c cursor.Cursor) *engine {
	return &engine{c: c, scratch: scratch.New(64)}
}

// readErrer is implemented by cursor.Buffered; the engine uses it to
// surface the underlying I/O failure instead of a generic
// "unexpected end of input" when a refill failed for a real reason.
type readErrer interface {
	ReadErr() error
}

func (e *engine) fail(msg string, offending byte) {
	if msg == msgUnexpectedEOF && e.checkReadErr() {
		return
	}
	e.err = newParseError(msg, e.c.Window(), e.c.Pos(), offending)
}

// checkReadErr consults the cursor's readErrer interface and, if the
// underlying reader failed for a reason other than EOF, sets e.err to
// the wrapped cause and reports true. It is a no-op (reporting false)
// for the in-memory cursor and for a buffered cursor that simply ran
// out of input cleanly.
func (e *engine) checkReadErr() bool {
	re, ok := e.c.(readErrer)
	if !ok {
		return false
	}
	ioErr := re.ReadErr()
	if ioErr == nil {
		return false
	}
	e.err = goerrors.WrapPrefix(ioErr, "eventjson: reading input", 0)
	return true
}

// events returns the lazy event sequence. The closure is the only place
// the engine's internal loop runs; nothing is computed eagerly.
func (e *engine) events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		e.run(yield)
	}
}

func (e *engine) run(yield func(Event) bool) {
	if e.err != nil {
		return
	}
	ch := lex.SkipSpace(e.c)
	if ch == 0 {
		// Either the source is genuinely empty (checkReadErr is a
		// no-op and e.err stays nil) or the first refill failed for a
		// real reason, which checkReadErr surfaces as e.err.
		e.checkReadErr()
		return
	}

	switch ch {
	case '{':
		e.c.Next()
		if !yield(Event{Kind: StartMap}) {
			return
		}
		e.stack = append(e.stack, frame{kind: frameObject, first: true})
	case '[':
		e.c.Next()
		if !yield(Event{Kind: StartArray}) {
			return
		}
		e.stack = append(e.stack, frame{kind: frameArray, first: true})
	default:
		e.fail(msgMustStartWith, ch)
		return
	}

	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]

		ch := lex.SkipSpace(e.c)
		if ch == 0 {
			e.fail(msgUnexpectedEOF, 0)
			return
		}

		closer := closeDelim(top.kind)
		if ch == closer {
			e.c.Next()
			kind := EndMap
			if top.kind == frameArray {
				kind = EndArray
			}
			e.stack = e.stack[:len(e.stack)-1]
			if !yield(Event{Kind: kind}) {
				return
			}
			continue
		}
		if ch == '}' || ch == ']' {
			msg := msgExpectingCloseAr
			if top.kind == frameObject {
				msg = msgExpectingCloseOb
			}
			e.fail(msg, ch)
			return
		}

		if !top.first {
			if ch != ',' {
				e.fail(msgExpectingComma, ch)
				return
			}
			e.c.Next()
			ch = lex.SkipSpace(e.c)
			if ch == 0 {
				e.fail(msgUnexpectedEOF, 0)
				return
			}
			if ch == closer {
				// trailing comma: let the next iteration's
				// closing-delimiter check handle it.
				continue
			}
		} else {
			top.first = false
		}

		if top.kind == frameObject {
			if ch != '"' {
				e.fail(msgExpectingKey, ch)
				return
			}
			e.c.Next()
			key, ok := lex.ScanString(e.c, e.scratch)
			if !ok {
				e.fail(msgInvalidString, e.c.Cur())
				return
			}
			if !yield(Event{Kind: MapKey, Key: key}) {
				return
			}
			ch = lex.SkipSpace(e.c)
			if ch != ':' {
				e.fail(msgExpectingColon, ch)
				return
			}
			e.c.Next()
			ch = lex.SkipSpace(e.c)
			if ch == 0 {
				e.fail(msgUnexpectedEOF, 0)
				return
			}
		}

		if !e.value(yield, ch) {
			return
		}
	}
}

func (e *engine) value(yield func(Event) bool, ch byte) bool {
	switch {
	case ch == '"':
		e.c.Next()
		s, ok := lex.ScanString(e.c, e.scratch)
		if !ok {
			e.fail(msgInvalidString, e.c.Cur())
			return false
		}
		return yield(Event{Kind: Value, Val: s})
	case ch == '{':
		e.c.Next()
		if !yield(Event{Kind: StartMap}) {
			return false
		}
		e.stack = append(e.stack, frame{kind: frameObject, first: true})
		return true
	case ch == '[':
		e.c.Next()
		if !yield(Event{Kind: StartArray}) {
			return false
		}
		e.stack = append(e.stack, frame{kind: frameArray, first: true})
		return true
	case ch == 't':
		if !e.matchKeyword("true") {
			return false
		}
		return yield(Event{Kind: Value, Val: true})
	case ch == 'f':
		if !e.matchKeyword("false") {
			return false
		}
		return yield(Event{Kind: Value, Val: false})
	case ch == 'n':
		if !e.matchKeyword("null") {
			return false
		}
		return yield(Event{Kind: Value, Val: nil})
	case ch == '-' || isDigitByte(ch):
		text, isFloat, ok := lex.MatchNumber(e.c)
		if !ok {
			e.fail(msgInvalidNumber, e.c.Cur())
			return false
		}
		v, ok := convertNumber(text, isFloat)
		if !ok {
			e.fail(msgInvalidNumber, e.c.Cur())
			return false
		}
		return yield(Event{Kind: Value, Val: v})
	default:
		e.fail(msgUnexpectedChar, ch)
		return false
	}
}

func (e *engine) matchKeyword(word string) bool {
	if !e.c.AtLeast(len(word)) {
		e.fail(msgUnexpectedChar, e.c.Cur())
		return false
	}
	for i := 0; i < len(word); i++ {
		if e.c.Cur() != word[i] {
			e.fail(msgUnexpectedChar, e.c.Cur())
			return false
		}
		e.c.Next()
	}
	return true
}

func isDigitByte(ch byte) bool { return ch >= '0' && ch <= '9' }

// convertNumber prefers int64, falling back to float64 when the
// matched text overflows it rather than promoting to an arbitrary-
// precision type.
func convertNumber(text string, isFloat bool) (any, bool) {
	if !isFloat {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return n, true
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	return f, true
}
