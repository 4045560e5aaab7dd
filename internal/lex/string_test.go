package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkowalski/eventjson/internal/cursor"
	"github.com/dkowalski/eventjson/internal/scratch"
)

// scan is a test helper: c must already be positioned just after the
// opening quote, matching ScanString's documented calling convention.
func scan(t *testing.T, afterOpenQuote string) (string, bool, byte) {
	t.Helper()
	c := cursor.NewMemory(afterOpenQuote)
	scr := scratch.New(16)
	s, ok := ScanString(c, scr)
	return s, ok, c.Cur()
}

func TestScanStringPlain(t *testing.T) {
	s, ok, next := scan(t, `hello"rest`)
	require.True(t, ok)
	assert.Equal(t, "hello", s)
	assert.Equal(t, byte('r'), next)
}

func TestScanStringEscapes(t *testing.T) {
	s, ok, _ := scan(t, `a\"b\\c\nd"`)
	require.True(t, ok)
	assert.Equal(t, "a\"b\\c\nd", s)
}

func TestScanStringUnicodeEscape(t *testing.T) {
	// the ASCII escape text for "Aé" (backslash-u 0041, backslash-u
	// 00e9), as ScanString would see it straight off the wire.
	s, ok, _ := scan(t, "\\u0041\\u00e9\"")
	require.True(t, ok)
	assert.Equal(t, "Aé", s)
}

func TestScanStringNonASCIIPassthrough(t *testing.T) {
	s, ok, _ := scan(t, "café\"")
	require.True(t, ok)
	assert.Equal(t, "café", s)
}

func TestScanStringSurrogatePair(t *testing.T) {
	// 𝒲 is the UTF-16 surrogate pair for U+1D4B2
	// MATHEMATICAL SCRIPT CAPITAL W.
	s, ok, _ := scan(t, "\\ud835\\udcb2\"")
	require.True(t, ok)
	assert.Equal(t, string(rune(0x1D4B2)), s)
}

func TestScanStringRejectsUnescapedControlChar(t *testing.T) {
	_, ok, _ := scan(t, "a\nb\"")
	assert.False(t, ok)
}

func TestScanStringRejectsUnterminated(t *testing.T) {
	_, ok, _ := scan(t, `abc`)
	assert.False(t, ok)
}

func TestScanStringRejectsBadEscape(t *testing.T) {
	_, ok, _ := scan(t, `a\qb"`)
	assert.False(t, ok)
}
