package eventjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnyDispatchesOnConcreteType(t *testing.T) {
	s, err := ParseAny(`{"a":1}`)
	require.NoError(t, err)
	v, err := Collect(s.Events())
	require.NoError(t, err)
	require.NoError(t, s.Err())
	assert.Equal(t, map[string]any{"a": int64(1)}, v)

	s, err = ParseAny([]byte(`[1,2]`))
	require.NoError(t, err)
	v, err = Collect(s.Events())
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), int64(2)}, v)

	s, err = ParseAny(strings.NewReader(`["from a reader"]`))
	require.NoError(t, err)
	v, err = Collect(s.Events())
	require.NoError(t, err)
	require.NoError(t, s.Err())
	assert.Equal(t, []any{"from a reader"}, v)
}

func TestParseAnyRejectsUnsupportedType(t *testing.T) {
	_, err := ParseAny(42)
	require.Error(t, err)
}

func TestParseAnyClosesReaderThroughTheDecoderPath(t *testing.T) {
	cr := &closeTrackingReader{Reader: strings.NewReader(`{"a":1}`)}
	s, err := ParseAny(cr)
	require.NoError(t, err)
	for range s.Events() {
	}
	require.NoError(t, s.Err())
	assert.True(t, cr.closed)
}

func TestDecodeValueMaterializesDirectly(t *testing.T) {
	v, err := DecodeValue(strings.NewReader(`{"x":[1,2,3]}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": []any{int64(1), int64(2), int64(3)}}, v)
}
