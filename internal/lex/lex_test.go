package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkowalski/eventjson/internal/cursor"
)

func TestSkipSpaceAdvancesPastWhitespace(t *testing.T) {
	c := cursor.NewMemory("   \t\n\r{}")
	ch := SkipSpace(c)
	assert.Equal(t, byte('{'), ch)
	assert.Equal(t, byte('{'), c.Cur())
}

func TestSkipSpaceOnNoWhitespace(t *testing.T) {
	c := cursor.NewMemory("{}")
	ch := SkipSpace(c)
	assert.Equal(t, byte('{'), ch)
}

func TestSkipSpaceOnExhaustedInput(t *testing.T) {
	c := cursor.NewMemory("   ")
	ch := SkipSpace(c)
	assert.Equal(t, byte(0), ch)
}

func TestSkipSpaceOnEmptyInput(t *testing.T) {
	c := cursor.NewMemory("")
	ch := SkipSpace(c)
	assert.Equal(t, byte(0), ch)
}
