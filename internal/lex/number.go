package lex

import "github.com/dkowalski/eventjson/internal/cursor"

// MatchNumber scans a JSON number starting at c's current byte (which
// must be '-' or a digit; the caller has already checked that). It
// returns the matched text, whether the number's grammar requires
// float representation (a '.', 'e', or 'E' was present), and false if
// the bytes at c do not form a syntactically valid JSON number.
//
// c is left positioned on the first byte past the number on success,
// and in an unspecified position on failure (the caller treats failure
// as terminal and reports a ParseError without resuming the scan).
func MatchNumber(c cursor.Cursor) (text string, isFloat bool, ok bool) {
	var buf []byte

	if !c.AtLeast(1) {
		return "", false, false
	}
	ch := c.Cur()

	if ch == '-' {
		buf = append(buf, ch)
		c.Next()
		if !c.AtLeast(1) {
			return "", false, false
		}
		ch = c.Cur()
	}

	if ch == '0' {
		buf = append(buf, ch)
		c.Next()
	} else if isDigit(ch) {
		for isDigit(ch) {
			buf = append(buf, ch)
			c.Next()
			if !c.AtLeast(1) {
				ch = 0
				break
			}
			ch = c.Cur()
		}
	} else {
		return "", false, false
	}

	if c.AtLeast(1) && c.Cur() == '.' {
		isFloat = true
		buf = append(buf, '.')
		c.Next()
		if !c.AtLeast(1) || !isDigit(c.Cur()) {
			return "", false, false
		}
		for c.AtLeast(1) && isDigit(c.Cur()) {
			buf = append(buf, c.Cur())
			c.Next()
		}
	}

	if c.AtLeast(1) && (c.Cur() == 'e' || c.Cur() == 'E') {
		isFloat = true
		buf = append(buf, c.Cur())
		c.Next()
		if c.AtLeast(1) && (c.Cur() == '+' || c.Cur() == '-') {
			buf = append(buf, c.Cur())
			c.Next()
		}
		if !c.AtLeast(1) || !isDigit(c.Cur()) {
			return "", false, false
		}
		for c.AtLeast(1) && isDigit(c.Cur()) {
			buf = append(buf, c.Cur())
			c.Next()
		}
	}

	return string(buf), isFloat, true
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
