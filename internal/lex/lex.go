// Package lex implements the pure lexical primitives of the event
// engine: whitespace skipping, quoted-string scanning, and number
// matching. Every function operates against the cursor.Cursor
// interface so the same code serves both the in-memory and buffered
// engine variants.
package lex

import "github.com/dkowalski/eventjson/internal/cursor"

// SkipSpace advances c past any run of space, tab, newline, or carriage
// return and returns the first non-whitespace byte found, or 0 if the
// source is exhausted. It never fails.
func SkipSpace(c cursor.Cursor) byte {
	if !c.AtLeast(1) {
		return 0
	}
	for {
		switch c.Cur() {
		case ' ', '\t', '\n', '\r':
			c.Next()
			if !c.AtLeast(1) {
				return 0
			}
		default:
			return c.Cur()
		}
	}
}
