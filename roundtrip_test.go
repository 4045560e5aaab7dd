package eventjson

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Collect's output, re-marshaled through an independent JSON codec, must
// round-trip to a value that codec itself agrees is equal to what it would
// have decoded the original document into directly. This pins the event
// engine's value types (int64/float64 split, null, bool, string) against an
// external implementation rather than against this module's own expectations.
func TestCollectRoundTripsThroughJSONIterator(t *testing.T) {
	docs := []string{
		`{"a":1,"b":[true,false,null],"c":"hi"}`,
		`[1,2.5,-3,1e2,"x",null,true,false]`,
		`{"nested":{"deep":{"list":[1,2,3]}}}`,
		`[]`,
		`{}`,
	}

	for _, doc := range docs {
		v, err := ParseValue(doc)
		require.NoError(t, err, doc)

		var want any
		require.NoError(t, jsoniter.UnmarshalFromString(doc, &want), doc)

		remarshaled, err := jsoniter.MarshalToString(v)
		require.NoError(t, err, doc)

		var got any
		require.NoError(t, jsoniter.UnmarshalFromString(remarshaled, &got), doc)

		assert.Equal(t, want, got, doc)
	}
}
