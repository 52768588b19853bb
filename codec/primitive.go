// Package codec implements the primitive and container encode/decode
// routines: one routine pair per wire shape, operating directly against a
// transport.Sink/Source and an endian.EndianEngine.
package codec

import (
	"fmt"
	"math"

	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/transport"
	"github.com/cagrbit/wirecodec/wiretag"
)

// writeLiteral emits the LITERAL tag followed by data verbatim.
func writeLiteral(sink transport.Sink, data []byte) error {
	if err := sink.Write([]byte{byte(wiretag.Literal)}); err != nil {
		return fmt.Errorf("codec: write literal tag: %w", errs.ErrStreamError)
	}
	if err := sink.Write(data); err != nil {
		return fmt.Errorf("codec: write literal body: %w", errs.ErrStreamError)
	}
	return nil
}

// readLiteral expects the LITERAL tag and returns exactly width octets.
func readLiteral(src transport.Source, width int) ([]byte, error) {
	raw, err := src.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("codec: read literal tag: %w", errs.ErrEndOfStream)
	}
	if wiretag.Tag(raw) != wiretag.Literal {
		return nil, fmt.Errorf("codec: read literal: got %s: %w", wiretag.Tag(raw), errs.ErrTypeMismatch)
	}

	buf := make([]byte, width)
	if err := src.ReadFull(buf); err != nil {
		return nil, fmt.Errorf("codec: read literal body: %w", errs.ErrEndOfStream)
	}
	return buf, nil
}

// WriteUint8 encodes an 8-bit unsigned integer.
func WriteUint8(sink transport.Sink, v uint8) error {
	return writeLiteral(sink, []byte{v})
}

// ReadUint8 decodes an 8-bit unsigned integer.
func ReadUint8(src transport.Source) (uint8, error) {
	b, err := readLiteral(src, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteInt8 encodes an 8-bit signed integer.
func WriteInt8(sink transport.Sink, v int8) error {
	return WriteUint8(sink, uint8(v))
}

// ReadInt8 decodes an 8-bit signed integer.
func ReadInt8(src transport.Source) (int8, error) {
	v, err := ReadUint8(src)
	return int8(v), err
}

// WriteUint16 encodes a 16-bit unsigned integer in the given stream order.
func WriteUint16(sink transport.Sink, engine endian.EndianEngine, v uint16) error {
	buf := make([]byte, 2)
	engine.PutUint16(buf, v)
	return writeLiteral(sink, buf)
}

// ReadUint16 decodes a 16-bit unsigned integer in the given stream order.
func ReadUint16(src transport.Source, engine endian.EndianEngine) (uint16, error) {
	b, err := readLiteral(src, 2)
	if err != nil {
		return 0, err
	}
	return engine.Uint16(b), nil
}

// WriteInt16 encodes a 16-bit signed integer.
func WriteInt16(sink transport.Sink, engine endian.EndianEngine, v int16) error {
	return WriteUint16(sink, engine, uint16(v))
}

// ReadInt16 decodes a 16-bit signed integer.
func ReadInt16(src transport.Source, engine endian.EndianEngine) (int16, error) {
	v, err := ReadUint16(src, engine)
	return int16(v), err
}

// WriteUint32 encodes a 32-bit unsigned integer in the given stream order.
func WriteUint32(sink transport.Sink, engine endian.EndianEngine, v uint32) error {
	buf := make([]byte, 4)
	engine.PutUint32(buf, v)
	return writeLiteral(sink, buf)
}

// ReadUint32 decodes a 32-bit unsigned integer in the given stream order.
func ReadUint32(src transport.Source, engine endian.EndianEngine) (uint32, error) {
	b, err := readLiteral(src, 4)
	if err != nil {
		return 0, err
	}
	return engine.Uint32(b), nil
}

// WriteInt32 encodes a 32-bit signed integer.
func WriteInt32(sink transport.Sink, engine endian.EndianEngine, v int32) error {
	return WriteUint32(sink, engine, uint32(v))
}

// ReadInt32 decodes a 32-bit signed integer.
func ReadInt32(src transport.Source, engine endian.EndianEngine) (int32, error) {
	v, err := ReadUint32(src, engine)
	return int32(v), err
}

// WriteUint64 encodes a 64-bit unsigned integer in the given stream order.
func WriteUint64(sink transport.Sink, engine endian.EndianEngine, v uint64) error {
	buf := make([]byte, 8)
	engine.PutUint64(buf, v)
	return writeLiteral(sink, buf)
}

// ReadUint64 decodes a 64-bit unsigned integer in the given stream order.
func ReadUint64(src transport.Source, engine endian.EndianEngine) (uint64, error) {
	b, err := readLiteral(src, 8)
	if err != nil {
		return 0, err
	}
	return engine.Uint64(b), nil
}

// WriteInt64 encodes a 64-bit signed integer.
func WriteInt64(sink transport.Sink, engine endian.EndianEngine, v int64) error {
	return WriteUint64(sink, engine, uint64(v))
}

// ReadInt64 decodes a 64-bit signed integer.
func ReadInt64(src transport.Source, engine endian.EndianEngine) (int64, error) {
	v, err := ReadUint64(src, engine)
	return int64(v), err
}

// WriteFloat32 encodes an IEEE-754 32-bit float, swapped as its raw bit
// pattern rather than reinterpreted and revalidated as IEEE-754.
func WriteFloat32(sink transport.Sink, engine endian.EndianEngine, v float32) error {
	return WriteUint32(sink, engine, math.Float32bits(v))
}

// ReadFloat32 decodes an IEEE-754 32-bit float.
func ReadFloat32(src transport.Source, engine endian.EndianEngine) (float32, error) {
	bits, err := ReadUint32(src, engine)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(bits), nil
}

// WriteFloat64 encodes an IEEE-754 64-bit float.
func WriteFloat64(sink transport.Sink, engine endian.EndianEngine, v float64) error {
	return WriteUint64(sink, engine, math.Float64bits(v))
}

// ReadFloat64 decodes an IEEE-754 64-bit float.
func ReadFloat64(src transport.Source, engine endian.EndianEngine) (float64, error) {
	bits, err := ReadUint64(src, engine)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}
