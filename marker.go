package wirecodec

import (
	"fmt"

	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/transport"
	"github.com/cagrbit/wirecodec/wiretag"
)

// writeEndianMarker emits the two-octet ENDIAN wire value: the ENDIAN tag
// followed by order's one-octet wire code (0x01 big, 0x02 little).
func writeEndianMarker(sink transport.Sink, order endian.StreamOrder) error {
	if err := sink.Write([]byte{byte(wiretag.Endian)}); err != nil {
		return fmt.Errorf("wirecodec: write endian marker tag: %w", errs.ErrStreamError)
	}
	if err := sink.Write([]byte{byte(order)}); err != nil {
		return fmt.Errorf("wirecodec: write endian marker order: %w", errs.ErrStreamError)
	}
	return nil
}

// consumeEndianMarkerIfPresent peeks the next tag on src; if it is ENDIAN, it
// consumes the marker and renegotiates c's stream order from the wire code.
// Otherwise it leaves src untouched — the marker is an optional prologue,
// not a required one, and is off by default (see WithAlwaysEmitEndianMarker).
func consumeEndianMarkerIfPresent(src transport.Source, c *Codec) error {
	tag, ok := src.PeekTag()
	if !ok || tag != wiretag.Endian {
		return nil
	}
	if _, err := src.ReadByte(); err != nil {
		return fmt.Errorf("wirecodec: consume endian marker tag: %w", errs.ErrEndOfStream)
	}
	raw, err := src.ReadByte()
	if err != nil {
		return fmt.Errorf("wirecodec: read endian marker order: %w", errs.ErrEndOfStream)
	}
	order := endian.StreamOrder(raw)
	if !order.Valid() {
		return fmt.Errorf("wirecodec: endian marker carries unrecognised order %d: %w", raw, errs.ErrInvalid)
	}
	c.streamOrder = order
	c.engine = endian.NegotiatedEngine(order)
	return nil
}
