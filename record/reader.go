package record

import (
	"cmp"
	"container/list"

	"github.com/cagrbit/wirecodec/codec"
	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/transport"
)

// Reader is the per-record field cursor handed to Record.DecodeSelf.
//
// limit is the source position at which the enclosing record's declared
// payload ends. Every ReadXxx call checks the cursor against it first: once
// the source has reached limit, a field read is a no-op that returns the
// type's zero value and a nil error, rather than an end-of-stream error.
// This is what lets an old writer's record, shorter than a newer reader
// expects, leave the reader's extra trailing fields at their defaults
// instead of failing.
type Reader struct {
	src    transport.Source
	engine endian.EndianEngine
	limit  int
}

func newReader(src transport.Source, engine endian.EndianEngine, limit int) *Reader {
	return &Reader{src: src, engine: engine, limit: limit}
}

func (r *Reader) atBoundary() bool {
	return r.src.Pos() >= r.limit
}

func (r *Reader) ReadUint8() (uint8, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadUint8(r.src)
}

func (r *Reader) ReadInt8() (int8, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadInt8(r.src)
}

func (r *Reader) ReadUint16() (uint16, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadUint16(r.src, r.engine)
}

func (r *Reader) ReadInt16() (int16, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadInt16(r.src, r.engine)
}

func (r *Reader) ReadUint32() (uint32, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadUint32(r.src, r.engine)
}

func (r *Reader) ReadInt32() (int32, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadInt32(r.src, r.engine)
}

func (r *Reader) ReadUint64() (uint64, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadUint64(r.src, r.engine)
}

func (r *Reader) ReadInt64() (int64, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadInt64(r.src, r.engine)
}

func (r *Reader) ReadFloat32() (float32, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadFloat32(r.src, r.engine)
}

func (r *Reader) ReadFloat64() (float64, error) {
	if r.atBoundary() {
		return 0, nil
	}
	return codec.ReadFloat64(r.src, r.engine)
}

func (r *Reader) ReadString() (string, error) {
	if r.atBoundary() {
		return "", nil
	}
	return codec.ReadString(r.src, r.engine)
}

func (r *Reader) ReadWString() ([]uint16, error) {
	if r.atBoundary() {
		return nil, nil
	}
	return codec.ReadWString(r.src, r.engine)
}

func (r *Reader) ReadWStringToString() (string, error) {
	if r.atBoundary() {
		return "", nil
	}
	return codec.ReadWStringToString(r.src, r.engine)
}

func (r *Reader) ReadCharArray(capacity int) (string, error) {
	if r.atBoundary() {
		return "", nil
	}
	return codec.ReadCharArray(r.src, r.engine, capacity)
}

func (r *Reader) ReadVectorBool() ([]bool, error) {
	if r.atBoundary() {
		return nil, nil
	}
	return codec.ReadVectorBool(r.src, r.engine)
}

// ReadRecord decodes rec as a nested USER_DEFINED field. If the enclosing
// record's declared payload has already been fully consumed, rec is left
// untouched (its zero value stands), matching the backward-compat rule
// applied to every other field type.
func (r *Reader) ReadRecord(rec Record) error {
	if r.atBoundary() {
		return nil
	}
	_, err := Decode(r.src, r.engine, rec)
	return err
}

// ReadVector decodes a field holding an ordered, contiguous sequence.
func ReadVector[T any](r *Reader, elem codec.ElemCodec[T]) ([]T, error) {
	if r.atBoundary() {
		return nil, nil
	}
	return codec.ReadVector(r.src, r.engine, elem)
}

// ReadList decodes a field holding a linked sequence.
func ReadList[T any](r *Reader, elem codec.ElemCodec[T]) (*list.List, error) {
	if r.atBoundary() {
		return nil, nil
	}
	return codec.ReadList(r.src, r.engine, elem)
}

// ReadMap decodes a field holding a keyed mapping.
func ReadMap[K cmp.Ordered, V any](r *Reader, keyCodec codec.ElemCodec[K], valCodec codec.ElemCodec[V]) (map[K]V, error) {
	if r.atBoundary() {
		return nil, nil
	}
	return codec.ReadMap(r.src, r.engine, keyCodec, valCodec)
}

// ReadSet decodes a field holding a unique set.
func ReadSet[T cmp.Ordered](r *Reader, elem codec.ElemCodec[T]) (map[T]struct{}, error) {
	if r.atBoundary() {
		return nil, nil
	}
	return codec.ReadSet(r.src, r.engine, elem)
}
