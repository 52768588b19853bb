package endian

// StreamOrder is the one-octet byte-order code carried by the wire's
// optional ENDIAN marker.
type StreamOrder uint8

const (
	// OrderBig is the wire code for big-endian (network) byte order, and the
	// default a reader assumes when no ENDIAN marker is present.
	OrderBig StreamOrder = 0x01
	// OrderLittle is the wire code for little-endian byte order.
	OrderLittle StreamOrder = 0x02
)

func (o StreamOrder) String() string {
	switch o {
	case OrderBig:
		return "big"
	case OrderLittle:
		return "little"
	default:
		return "unknown"
	}
}

// Valid reports whether o is one of the two wire-defined byte-order codes.
func (o StreamOrder) Valid() bool {
	return o == OrderBig || o == OrderLittle
}

// NegotiatedEngine returns the EndianEngine corresponding to a stream's
// negotiated byte order. Unrecognised codes fall back to big-endian, mirroring
// the reader's default when no ENDIAN marker was seen.
func NegotiatedEngine(order StreamOrder) EndianEngine {
	if order == OrderLittle {
		return GetLittleEndianEngine()
	}

	return GetBigEndianEngine()
}

// HostStreamOrder reports the StreamOrder code matching this process's
// native byte order, for callers that want a stream order matching host
// order (see WithHostStreamOrder). It cross-checks both native-order
// probes rather than just negating one, falling back to big-endian in the
// (impossible on any real architecture) case where neither holds.
func HostStreamOrder() StreamOrder {
	switch {
	case IsNativeLittleEndian():
		return OrderLittle
	case IsNativeBigEndian():
		return OrderBig
	default:
		return OrderBig
	}
}
