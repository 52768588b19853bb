package wiretag

import (
	"fmt"

	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/errs"
)

// Source is the minimal read surface the skip algorithm needs. transport.Source
// satisfies it structurally; wiretag does not import transport to avoid a
// dependency cycle (transport needs wiretag.Tag for PeekTag).
type Source interface {
	// ReadByte consumes and returns exactly one octet.
	ReadByte() (byte, error)
	// ReadFull consumes exactly len(p) octets into p.
	ReadFull(p []byte) error
	// Skip advances the read cursor by n octets without copying them out.
	Skip(n int) error
}

// Skip reads one value's wire tag and advances src past that value's entire
// on-wire span, without interpreting the value itself.
//
// literalWidth is the byte width to assume for a bare LITERAL tag, since the
// tag alone does not carry a primitive's width — callers must supply it.
// Pass 0 if no LITERAL value is expected at this
// position; encountering one then reports errs.ErrInvalid rather than
// guessing a width. Container elements reuse the same literalWidth for every
// element, so heterogeneous-width LITERAL containers cannot be skipped
// generically — see DESIGN.md.
func Skip(src Source, engine endian.EndianEngine, literalWidth int) error {
	raw, err := src.ReadByte()
	if err != nil {
		return fmt.Errorf("wiretag: skip: read tag: %w", errs.ErrEndOfStream)
	}
	tag := Tag(raw)

	switch tag {
	case Literal:
		if literalWidth <= 0 {
			return fmt.Errorf("wiretag: skip: literal with unknown width: %w", errs.ErrInvalid)
		}
		return src.Skip(literalWidth)

	case String:
		size, err := readSize(src, engine)
		if err != nil {
			return err
		}
		return src.Skip(int(size))

	case WString:
		size, err := readSize(src, engine)
		if err != nil {
			return err
		}
		return src.Skip(int(size) * 2)

	case Endian:
		return src.Skip(1)

	case UserDefined:
		size, err := readSize(src, engine)
		if err != nil {
			return err
		}
		return src.Skip(int(size))

	case Vector, List, Set, Map:
		size, err := readSize(src, engine)
		if err != nil {
			return err
		}
		n := int(size)
		if tag == Map {
			n *= 2 // key, then value, per element
		}
		for i := 0; i < n; i++ {
			if err := Skip(src, engine, literalWidth); err != nil {
				return err
			}
		}
		return nil

	default:
		return fmt.Errorf("wiretag: skip: unexpected tag %s: %w", tag, errs.ErrTypeMismatch)
	}
}

func readSize(src Source, engine endian.EndianEngine) (uint16, error) {
	var buf [2]byte
	if err := src.ReadFull(buf[:]); err != nil {
		return 0, fmt.Errorf("wiretag: skip: read size: %w", errs.ErrEndOfStream)
	}

	return engine.Uint16(buf[:]), nil
}
