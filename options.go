package eventjson

import (
	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/encoding"
)

// config gathers everything an Option can adjust. Not every field
// applies to every entry point — WithEncoding is ignored by Parse and
// NewDecoder's default-UTF-8 path, WithChunkSize is ignored by the
// in-memory constructors — an Option simply has no effect where it
// doesn't apply, rather than erroring.
type config struct {
	chunkSize int
	encoding  encoding.Encoding
	logger    hclog.Logger
}

// Option configures a parse entry point. See WithChunkSize,
// WithEncoding, and WithLogger.
type Option func(*config)

// WithChunkSize overrides the buffered variant's default 64 KiB read
// size. Values <= 0 are ignored.
func WithChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.chunkSize = n
		}
	}
}

// WithEncoding overrides BOM-based autodetection for raw byte input,
// forcing decoding through enc instead.
func WithEncoding(enc encoding.Encoding) Option {
	return func(c *config) { c.encoding = enc }
}

// WithLogger attaches a structured logger to the buffered variant; by
// default refills and retries are not logged.
func WithLogger(l hclog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
