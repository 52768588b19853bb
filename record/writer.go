package record

import (
	"cmp"
	"container/list"

	"github.com/cagrbit/wirecodec/codec"
	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/transport"
)

// Writer is the per-record field cursor handed to Record.EncodeSelf. A
// record author writes its fields, in their fixed declared order, through
// one typed WriteXxx call per field rather than a single generic Put(any).
type Writer struct {
	sink   transport.Sink
	engine endian.EndianEngine
}

func newWriter(sink transport.Sink, engine endian.EndianEngine) *Writer {
	return &Writer{sink: sink, engine: engine}
}

func (w *Writer) WriteUint8(v uint8) error   { return codec.WriteUint8(w.sink, v) }
func (w *Writer) WriteInt8(v int8) error     { return codec.WriteInt8(w.sink, v) }
func (w *Writer) WriteUint16(v uint16) error { return codec.WriteUint16(w.sink, w.engine, v) }
func (w *Writer) WriteInt16(v int16) error   { return codec.WriteInt16(w.sink, w.engine, v) }
func (w *Writer) WriteUint32(v uint32) error { return codec.WriteUint32(w.sink, w.engine, v) }
func (w *Writer) WriteInt32(v int32) error   { return codec.WriteInt32(w.sink, w.engine, v) }
func (w *Writer) WriteUint64(v uint64) error { return codec.WriteUint64(w.sink, w.engine, v) }
func (w *Writer) WriteInt64(v int64) error   { return codec.WriteInt64(w.sink, w.engine, v) }
func (w *Writer) WriteFloat32(v float32) error { return codec.WriteFloat32(w.sink, w.engine, v) }
func (w *Writer) WriteFloat64(v float64) error { return codec.WriteFloat64(w.sink, w.engine, v) }

func (w *Writer) WriteString(s string) error { return codec.WriteString(w.sink, w.engine, s) }
func (w *Writer) WriteWString(units []uint16) error {
	return codec.WriteWString(w.sink, w.engine, units)
}
func (w *Writer) WriteWStringFromRunes(s string) error {
	return codec.WriteWStringFromRunes(w.sink, w.engine, s)
}
func (w *Writer) WriteCharArray(s string) error { return codec.WriteCharArray(w.sink, w.engine, s) }

func (w *Writer) WriteVectorBool(values []bool) error {
	return codec.WriteVectorBool(w.sink, w.engine, values)
}

// WriteRecord encodes rec as a nested USER_DEFINED field, fully contained
// within the enclosing record's declared length.
func (w *Writer) WriteRecord(rec Record) error {
	_, err := Encode(w.sink, w.engine, rec)
	return err
}

// WriteVector encodes a field holding an ordered, contiguous sequence. A
// package-level function, not a method: Go methods cannot carry their own
// type parameters.
func WriteVector[T any](w *Writer, elem codec.ElemCodec[T], values []T) error {
	return codec.WriteVector(w.sink, w.engine, elem, values)
}

// WriteList encodes a field holding a linked sequence.
func WriteList[T any](w *Writer, elem codec.ElemCodec[T], values *list.List) error {
	return codec.WriteList(w.sink, w.engine, elem, values)
}

// WriteMap encodes a field holding a keyed mapping.
func WriteMap[K cmp.Ordered, V any](w *Writer, keyCodec codec.ElemCodec[K], valCodec codec.ElemCodec[V], m map[K]V) error {
	return codec.WriteMap(w.sink, w.engine, keyCodec, valCodec, m)
}

// WriteSet encodes a field holding a unique set.
func WriteSet[T cmp.Ordered](w *Writer, elem codec.ElemCodec[T], set map[T]struct{}) error {
	return codec.WriteSet(w.sink, w.engine, elem, set)
}
