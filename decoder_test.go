package eventjson

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader returns each of chunks on successive Read calls, then
// fails every call after with err.
type scriptedReader struct {
	chunks []string
	err    error
	next   int
}

func (r *scriptedReader) Read(p []byte) (int, error) {
	if r.next < len(r.chunks) {
		n := copy(p, r.chunks[r.next])
		r.next++
		return n, nil
	}
	return 0, r.err
}

func TestDecoderSurfacesReadErrorOnFirstRefill(t *testing.T) {
	wantErr := errors.New("boom")
	dec := NewDecoder(&scriptedReader{err: wantErr})
	var got []Event
	for ev := range dec.Events() {
		got = append(got, ev)
	}
	assert.Empty(t, got)
	require.Error(t, dec.Err())
	assert.ErrorIs(t, dec.Err(), wantErr)
}

func TestDecoderSurfacesReadErrorAfterLeadingWhitespace(t *testing.T) {
	wantErr := errors.New("boom")
	r := &scriptedReader{chunks: []string{" "}, err: wantErr}
	dec := NewDecoder(r, WithChunkSize(1))
	var got []Event
	for ev := range dec.Events() {
		got = append(got, ev)
	}
	assert.Empty(t, got)
	require.Error(t, dec.Err())
	assert.ErrorIs(t, dec.Err(), wantErr)
}

func TestStringStraddlingChunkBoundary(t *testing.T) {
	r := strings.NewReader(`["hello world, this is long enough to straddle"]`)
	dec := NewDecoder(r, WithChunkSize(5))
	var got []Event
	for ev := range dec.Events() {
		got = append(got, ev)
	}
	require.NoError(t, dec.Err())
	assert.Equal(t, []Event{
		{Kind: StartArray},
		{Kind: Value, Val: "hello world, this is long enough to straddle"},
		{Kind: EndArray},
	}, got)
}

func TestDecoderEscapeStraddlingChunkBoundary(t *testing.T) {
	r := strings.NewReader(`{"k":"aéb\nc"}`)
	dec := NewDecoder(r, WithChunkSize(1))
	v, err := Collect(dec.Events())
	require.NoError(t, err)
	require.NoError(t, dec.Err())
	assert.Equal(t, map[string]any{"k": "aéb\nc"}, v)
}

type closeTrackingReader struct {
	*strings.Reader
	closed bool
}

func (c *closeTrackingReader) Close() error {
	c.closed = true
	return nil
}

func TestDecoderClosesReaderOnceExhausted(t *testing.T) {
	cr := &closeTrackingReader{Reader: strings.NewReader(`{"a":1}`)}
	dec := NewDecoder(cr)
	for range dec.Events() {
	}
	require.NoError(t, dec.Err())
	assert.True(t, cr.closed)
}

func TestDecoderClosesReaderOnEarlyBreak(t *testing.T) {
	cr := &closeTrackingReader{Reader: strings.NewReader(`[1,2,3]`)}
	dec := NewDecoder(cr)
	for range dec.Events() {
		break
	}
	assert.True(t, cr.closed)
}

func TestDecoderLeavesNonCloserReaderUntouched(t *testing.T) {
	r := strings.NewReader(`{"a":1}`)
	dec := NewDecoder(r)
	v, err := Collect(dec.Events())
	require.NoError(t, err)
	require.NoError(t, dec.Err())
	assert.Equal(t, map[string]any{"a": int64(1)}, v)
}
