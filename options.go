package wirecodec

import (
	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/internal/options"
)

// WithStreamOrder pre-seeds the Codec's negotiated stream order instead of
// defaulting to big-endian. A later ENDIAN marker consumed by ReadRecord
// still overrides it on the Codec, for every later read and write.
func WithStreamOrder(order endian.StreamOrder) Option {
	return options.NoError(func(c *Codec) {
		c.streamOrder = order
		c.engine = endian.NegotiatedEngine(order)
	})
}

// WithHostStreamOrder pre-seeds the Codec's negotiated stream order to match
// this process's native byte order, so a writer and reader running on the
// same architecture never pay the cost of swapping multi-byte fields.
func WithHostStreamOrder() Option {
	return options.NoError(func(c *Codec) {
		order := endian.HostStreamOrder()
		c.streamOrder = order
		c.engine = endian.NegotiatedEngine(order)
	})
}

// WithAlwaysEmitEndianMarker controls whether WriteRecord prepends the
// ENDIAN marker. By default (false) it never does, matching an encoder that
// is not invoked automatically on every record write. Passing true makes
// every WriteRecord call prepend the marker.
func WithAlwaysEmitEndianMarker(always bool) Option {
	return options.NoError(func(c *Codec) {
		c.emitMarker = always
	})
}

// WithErrorHandler is the construction-time equivalent of SetErrorHandler.
func WithErrorHandler(fn ErrorHandler) Option {
	return options.NoError(func(c *Codec) {
		c.errorHandler = fn
	})
}

// WithProgressHandler is the construction-time equivalent of SetProgressHandler.
func WithProgressHandler(fn ProgressHandler) Option {
	return options.NoError(func(c *Codec) {
		c.progressHandler = fn
	})
}
