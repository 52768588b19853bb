package codec

import (
	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/transport"
)

// Ready-made ElemCodec values for the primitive wire shapes, so a record
// author composing a container field doesn't have to hand-write the
// Write/Read closures for common element types.
var (
	Uint8Elem  = ElemCodec[uint8]{Write: func(s transport.Sink, _ endian.EndianEngine, v uint8) error { return WriteUint8(s, v) }, Read: func(s transport.Source, _ endian.EndianEngine) (uint8, error) { return ReadUint8(s) }}
	Int8Elem   = ElemCodec[int8]{Write: func(s transport.Sink, _ endian.EndianEngine, v int8) error { return WriteInt8(s, v) }, Read: func(s transport.Source, _ endian.EndianEngine) (int8, error) { return ReadInt8(s) }}
	Uint16Elem = ElemCodec[uint16]{Write: WriteUint16, Read: ReadUint16}
	Int16Elem  = ElemCodec[int16]{Write: WriteInt16, Read: ReadInt16}
	Uint32Elem = ElemCodec[uint32]{Write: WriteUint32, Read: ReadUint32}
	Int32Elem  = ElemCodec[int32]{Write: WriteInt32, Read: ReadInt32}
	Uint64Elem = ElemCodec[uint64]{Write: WriteUint64, Read: ReadUint64}
	Int64Elem  = ElemCodec[int64]{Write: WriteInt64, Read: ReadInt64}
	Float32Elem = ElemCodec[float32]{Write: WriteFloat32, Read: ReadFloat32}
	Float64Elem = ElemCodec[float64]{Write: WriteFloat64, Read: ReadFloat64}
	StringElem  = ElemCodec[string]{Write: WriteString, Read: ReadString}
)
