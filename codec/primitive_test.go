package codec

import (
	"testing"

	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTripSink(t *testing.T, write func(transport.Sink) error) []byte {
	t.Helper()
	sink := transport.NewByteSink()
	defer sink.Release()
	require.NoError(t, write(sink))
	out := make([]byte, len(sink.Bytes()))
	copy(out, sink.Bytes())
	return out
}

func TestUint8RoundTrip(t *testing.T) {
	data := roundTripSink(t, func(s transport.Sink) error { return WriteUint8(s, 0xAB) })
	assert.Equal(t, []byte{1, 0xAB}, data) // tag=LITERAL(1), then the byte

	v, err := ReadUint8(transport.NewByteSource(data))
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), v)
}

func TestInt8RoundTrip(t *testing.T) {
	data := roundTripSink(t, func(s transport.Sink) error { return WriteInt8(s, -5) })
	v, err := ReadInt8(transport.NewByteSource(data))
	require.NoError(t, err)
	assert.Equal(t, int8(-5), v)
}

func TestUint32RoundTrip_BothOrders(t *testing.T) {
	for _, order := range []endian.StreamOrder{endian.OrderBig, endian.OrderLittle} {
		engine := endian.NegotiatedEngine(order)
		data := roundTripSink(t, func(s transport.Sink) error { return WriteUint32(s, engine, 0x11223344) })
		v, err := ReadUint32(transport.NewByteSource(data), engine)
		require.NoError(t, err)
		assert.Equal(t, uint32(0x11223344), v, order.String())
	}
}

func TestCrossEndianRoundTrip(t *testing.T) {
	// Encode as big-endian, decode by swapping with a little-endian engine.
	big := endian.NegotiatedEngine(endian.OrderBig)
	little := endian.NegotiatedEngine(endian.OrderLittle)

	data := roundTripSink(t, func(s transport.Sink) error { return WriteUint32(s, big, 0x01020304) })

	// Decoding with the wrong engine must NOT silently succeed with the same value.
	wrongEngineValue, err := ReadUint32(transport.NewByteSource(data), little)
	require.NoError(t, err)
	assert.NotEqual(t, uint32(0x01020304), wrongEngineValue)

	// Decoding with the matching engine recovers the original value.
	rightEngineValue, err := ReadUint32(transport.NewByteSource(data), big)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x01020304), rightEngineValue)
}

func TestInt64RoundTrip(t *testing.T) {
	engine := endian.NegotiatedEngine(endian.OrderBig)
	data := roundTripSink(t, func(s transport.Sink) error { return WriteInt64(s, engine, -123456789012345) })
	v, err := ReadInt64(transport.NewByteSource(data), engine)
	require.NoError(t, err)
	assert.Equal(t, int64(-123456789012345), v)
}

func TestFloat32RoundTrip(t *testing.T) {
	engine := endian.NegotiatedEngine(endian.OrderBig)
	data := roundTripSink(t, func(s transport.Sink) error { return WriteFloat32(s, engine, 3.14159) })
	v, err := ReadFloat32(transport.NewByteSource(data), engine)
	require.NoError(t, err)
	assert.InDelta(t, 3.14159, v, 1e-5)
}

func TestFloat64RoundTrip(t *testing.T) {
	engine := endian.NegotiatedEngine(endian.OrderBig)
	data := roundTripSink(t, func(s transport.Sink) error { return WriteFloat64(s, engine, 2.718281828459045) })
	v, err := ReadFloat64(transport.NewByteSource(data), engine)
	require.NoError(t, err)
	assert.Equal(t, 2.718281828459045, v)
}

func TestReadUint8_TypeMismatch(t *testing.T) {
	src := transport.NewByteSource([]byte{9, 0xFF}) // WSTRING tag, not LITERAL
	_, err := ReadUint8(src)
	require.Error(t, err)
}

func TestReadUint32_EndOfStream(t *testing.T) {
	src := transport.NewByteSource([]byte{1, 0x01, 0x02}) // LITERAL tag but only 2 body bytes
	engine := endian.NegotiatedEngine(endian.OrderBig)
	_, err := ReadUint32(src, engine)
	require.Error(t, err)
}
