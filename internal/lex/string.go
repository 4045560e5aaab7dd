package lex

import (
	"unicode/utf16"

	"github.com/dkowalski/eventjson/internal/cursor"
	"github.com/dkowalski/eventjson/internal/scratch"
)

// ScanString decodes a JSON string, called with c positioned
// immediately after the opening quote. It returns the decoded string
// and leaves c positioned immediately after the closing quote.
// scr is reused across calls to avoid an allocation per string.
//
// ok is false when the string is syntactically malformed (an
// unescaped control character, a bad escape, or the source ends before
// a closing quote is found); the caller turns that into a ParseError.
func ScanString(c cursor.Cursor, scr *scratch.Scratch) (string, bool) {
	scr.Reset()

	if !c.AtLeast(1) {
		return "", false
	}
	ch := c.Cur()

scan:
	for {
		switch {
		case ch == '"':
			c.Next()
			return scr.String(), true
		case ch == '\\':
			if !c.AtLeast(2) {
				return "", false
			}
			ch = c.Next()
			goto scanEsc
		case ch < 0x20:
			return "", false
		default:
			scr.Add(ch)
			c.Next()
			if !c.AtLeast(1) {
				return "", false
			}
			ch = c.Cur()
		}
	}

scanEsc:
	switch ch {
	case '"', '\\', '/':
		scr.Add(ch)
	case 'b':
		scr.Add('\b')
	case 'f':
		scr.Add('\f')
	case 'n':
		scr.Add('\n')
	case 'r':
		scr.Add('\r')
	case 't':
		scr.Add('\t')
	case 'u':
		r, ok := scanU4(c)
		if !ok {
			return "", false
		}
		c.Next() // advance past the 4th hex digit
		if !utf16.IsSurrogate(r) {
			scr.AddRune(r)
			if !c.AtLeast(1) {
				return "", false
			}
			ch = c.Cur()
			goto scan
		}
		// possible surrogate pair: look for a following \u escape.
		if !c.AtLeast(1) {
			return "", false
		}
		if c.Cur() != '\\' {
			scr.AddRune(r)
			ch = c.Cur()
			goto scan
		}
		c.Next()
		if !c.AtLeast(1) || c.Cur() != 'u' {
			scr.AddRune(r)
			if !c.AtLeast(1) {
				return "", false
			}
			ch = c.Cur()
			goto scanEsc
		}
		r2, ok := scanU4(c)
		if !ok {
			return "", false
		}
		c.Next() // advance past the 4th hex digit of the low surrogate
		dec := utf16.DecodeRune(r, r2)
		scr.AddRune(dec)
		if !c.AtLeast(1) {
			return "", false
		}
		ch = c.Cur()
		goto scan
	default:
		return "", false
	}
	c.Next()
	if !c.AtLeast(1) {
		return "", false
	}
	ch = c.Cur()
	goto scan
}

// scanU4 reads the four hex digits of a \uXXXX escape, with c
// positioned ON the 'u' escape-selector byte itself. It leaves c
// positioned on the last hex digit, not past it; the caller advances
// with its own Next.
func scanU4(c cursor.Cursor) (rune, bool) {
	if !c.AtLeast(5) {
		return 0, false
	}
	var v int
	for i := 0; i < 4; i++ {
		ch := c.Next()
		var d int
		switch {
		case ch >= '0' && ch <= '9':
			d = int(ch - '0')
		case ch >= 'A' && ch <= 'F':
			d = int(ch-'A') + 10
		case ch >= 'a' && ch <= 'f':
			d = int(ch-'a') + 10
		default:
			return 0, false
		}
		v = v<<4 | d
	}
	return rune(v), true
}
