package eventjson

import (
	"fmt"
	"io"
)

// ParseAny is the literal analog of a single dynamically-typed entry
// point, for callers that receive input as an any (e.g. across a
// plugin boundary where the concrete type isn't known until runtime).
// src must be a string, a []byte, or an io.Reader; anything else
// fails with a type-mismatch ParseError.
func ParseAny(src any, opts ...Option) (*Stream, error) {
	switch v := src.(type) {
	case string:
		return Parse(v), nil
	case []byte:
		return ParseBytes(v, opts...), nil
	case io.Reader:
		return NewDecoder(v, opts...).stream, nil
	default:
		return nil, newParseError(fmt.Sprintf("%s: %T", msgUnsupportedInput, src), nil, 0, 0)
	}
}

// ParseValue parses s and materializes it into a Go value in one call,
// equivalent to Collect(Parse(s).Events()) but without requiring the
// caller to wire the iterator themselves.
func ParseValue(s string) (any, error) {
	stream := Parse(s)
	v, err := Collect(stream.Events())
	if err != nil {
		return nil, err
	}
	if err := stream.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeValue streams from r and materializes the result in one call,
// equivalent to Collect(NewDecoder(r, opts...).Events()).
func DecodeValue(r io.Reader, opts ...Option) (any, error) {
	dec := NewDecoder(r, opts...)
	v, err := Collect(dec.Events())
	if err != nil {
		return nil, err
	}
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return v, nil
}
