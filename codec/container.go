package codec

import (
	"cmp"
	"container/list"
	"fmt"
	"slices"

	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/transport"
	"github.com/cagrbit/wirecodec/wiretag"
)

// ElemCodec pairs the encode/decode routines for one element type, so the
// four container shapes below can be generic over "whatever the caller's
// record field holds" rather than needing one hand-written container per
// primitive width.
type ElemCodec[T any] struct {
	Write func(sink transport.Sink, engine endian.EndianEngine, v T) error
	Read  func(src transport.Source, engine endian.EndianEngine) (T, error)
}

// PtrCodec adapts an element codec for T into one for *T: encoding writes
// the pointee (containers of owned pointers encode pointees, not addresses),
// and decoding allocates a fresh T and returns its address, transferring
// ownership to the container. Callers wanting a reference-element shape
// instead — no fresh allocation, filling an already-live pointer — supply
// their own ElemCodec[*T] whose Read returns an existing pointer; the
// container routines below are agnostic to which shape they were handed.
func PtrCodec[T any](base ElemCodec[T]) ElemCodec[*T] {
	return ElemCodec[*T]{
		Write: func(sink transport.Sink, engine endian.EndianEngine, v *T) error {
			return base.Write(sink, engine, *v)
		},
		Read: func(src transport.Source, engine endian.EndianEngine) (*T, error) {
			val, err := base.Read(src, engine)
			if err != nil {
				return nil, err
			}
			return &val, nil
		},
	}
}

// WriteVector encodes values as an ordered, contiguous sequence: VECTOR tag,
// 16-bit count, elements in insertion order.
func WriteVector[T any](sink transport.Sink, engine endian.EndianEngine, elem ElemCodec[T], values []T) error {
	if err := sink.Write([]byte{byte(wiretag.Vector)}); err != nil {
		return fmt.Errorf("codec: write vector tag: %w", errs.ErrStreamError)
	}
	if err := writeSize(sink, engine, len(values)); err != nil {
		return err
	}
	for _, v := range values {
		if err := elem.Write(sink, engine, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadVector decodes a VECTOR into a freshly allocated slice.
func ReadVector[T any](src transport.Source, engine endian.EndianEngine, elem ElemCodec[T]) ([]T, error) {
	if err := expectTag(src, wiretag.Vector); err != nil {
		return nil, err
	}
	n, err := readSize(src, engine)
	if err != nil {
		return nil, err
	}
	values := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := elem.Read(src, engine)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// WriteVectorBool encodes a sequence of booleans using a dedicated bitset
// encoding: VECTOR tag, 16-bit count, then one raw octet (0x00/0x01) per
// element — the only shape where an element is not framed as if it were
// encoded standalone (no per-element LITERAL tag).
func WriteVectorBool(sink transport.Sink, engine endian.EndianEngine, values []bool) error {
	if err := sink.Write([]byte{byte(wiretag.Vector)}); err != nil {
		return fmt.Errorf("codec: write bool vector tag: %w", errs.ErrStreamError)
	}
	if err := writeSize(sink, engine, len(values)); err != nil {
		return err
	}
	for _, v := range values {
		b := byte(0x00)
		if v {
			b = 0x01
		}
		if err := sink.Write([]byte{b}); err != nil {
			return fmt.Errorf("codec: write bool element: %w", errs.ErrStreamError)
		}
	}
	return nil
}

// ReadVectorBool decodes a bitset-encoded VECTOR<bool>.
func ReadVectorBool(src transport.Source, engine endian.EndianEngine) ([]bool, error) {
	if err := expectTag(src, wiretag.Vector); err != nil {
		return nil, err
	}
	n, err := readSize(src, engine)
	if err != nil {
		return nil, err
	}
	values := make([]bool, n)
	for i := 0; i < n; i++ {
		b, err := src.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("codec: read bool element: %w", errs.ErrEndOfStream)
		}
		values[i] = b != 0
	}
	return values, nil
}

// WriteList encodes values as a linked sequence: LIST tag, 16-bit count,
// elements in insertion order. Built on container/list.List to give the
// LIST shape a materially different Go representation from VECTOR's
// contiguous slice, matching its own distinct wire tag.
func WriteList[T any](sink transport.Sink, engine endian.EndianEngine, elem ElemCodec[T], values *list.List) error {
	if err := sink.Write([]byte{byte(wiretag.List)}); err != nil {
		return fmt.Errorf("codec: write list tag: %w", errs.ErrStreamError)
	}
	if err := writeSize(sink, engine, values.Len()); err != nil {
		return err
	}
	for e := values.Front(); e != nil; e = e.Next() {
		v, ok := e.Value.(T)
		if !ok {
			return fmt.Errorf("codec: list element type mismatch: %w", errs.ErrInvalid)
		}
		if err := elem.Write(sink, engine, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadList decodes a LIST into a freshly allocated container/list.List.
func ReadList[T any](src transport.Source, engine endian.EndianEngine, elem ElemCodec[T]) (*list.List, error) {
	if err := expectTag(src, wiretag.List); err != nil {
		return nil, err
	}
	n, err := readSize(src, engine)
	if err != nil {
		return nil, err
	}
	values := list.New()
	for i := 0; i < n; i++ {
		v, err := elem.Read(src, engine)
		if err != nil {
			return nil, err
		}
		values.PushBack(v)
	}
	return values, nil
}

// WriteMap encodes a keyed mapping: MAP tag, 16-bit entry count, then each
// entry as key followed by value, keys emitted in ascending natural order.
func WriteMap[K cmp.Ordered, V any](sink transport.Sink, engine endian.EndianEngine, keyCodec ElemCodec[K], valCodec ElemCodec[V], m map[K]V) error {
	if err := sink.Write([]byte{byte(wiretag.Map)}); err != nil {
		return fmt.Errorf("codec: write map tag: %w", errs.ErrStreamError)
	}
	if err := writeSize(sink, engine, len(m)); err != nil {
		return err
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if err := keyCodec.Write(sink, engine, k); err != nil {
			return err
		}
		if err := valCodec.Write(sink, engine, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap decodes a MAP into a freshly allocated map. Decode accepts
// arbitrary key order on the wire.
func ReadMap[K cmp.Ordered, V any](src transport.Source, engine endian.EndianEngine, keyCodec ElemCodec[K], valCodec ElemCodec[V]) (map[K]V, error) {
	if err := expectTag(src, wiretag.Map); err != nil {
		return nil, err
	}
	n, err := readSize(src, engine)
	if err != nil {
		return nil, err
	}
	m := make(map[K]V, n)
	for i := 0; i < n; i++ {
		k, err := keyCodec.Read(src, engine)
		if err != nil {
			return nil, err
		}
		v, err := valCodec.Read(src, engine)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// WriteSet encodes a unique set: SET tag, 16-bit count, elements in
// ascending natural order.
func WriteSet[T cmp.Ordered](sink transport.Sink, engine endian.EndianEngine, elem ElemCodec[T], set map[T]struct{}) error {
	if err := sink.Write([]byte{byte(wiretag.Set)}); err != nil {
		return fmt.Errorf("codec: write set tag: %w", errs.ErrStreamError)
	}
	if err := writeSize(sink, engine, len(set)); err != nil {
		return err
	}

	values := make([]T, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	slices.Sort(values)

	for _, v := range values {
		if err := elem.Write(sink, engine, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadSet decodes a SET into a freshly allocated set.
func ReadSet[T cmp.Ordered](src transport.Source, engine endian.EndianEngine, elem ElemCodec[T]) (map[T]struct{}, error) {
	if err := expectTag(src, wiretag.Set); err != nil {
		return nil, err
	}
	n, err := readSize(src, engine)
	if err != nil {
		return nil, err
	}
	set := make(map[T]struct{}, n)
	for i := 0; i < n; i++ {
		v, err := elem.Read(src, engine)
		if err != nil {
			return nil, err
		}
		set[v] = struct{}{}
	}
	return set, nil
}
