package codec

import (
	"fmt"
	"unicode/utf16"

	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/transport"
	"github.com/cagrbit/wirecodec/wiretag"
)

// MaxWireSize is the largest element/octet count a 16-bit size prefix can
// carry.
const MaxWireSize = 0xFFFF

func writeSize(sink transport.Sink, engine endian.EndianEngine, n int) error {
	if n > MaxWireSize {
		return fmt.Errorf("codec: size %d exceeds wire limit: %w", n, errs.ErrSizeOverflow)
	}
	buf := make([]byte, 2)
	engine.PutUint16(buf, uint16(n))
	return sink.Write(buf)
}

func readSize(src transport.Source, engine endian.EndianEngine) (int, error) {
	buf := make([]byte, 2)
	if err := src.ReadFull(buf); err != nil {
		return 0, fmt.Errorf("codec: read size prefix: %w", errs.ErrEndOfStream)
	}
	return int(engine.Uint16(buf)), nil
}

func expectTag(src transport.Source, want wiretag.Tag) error {
	raw, err := src.ReadByte()
	if err != nil {
		return fmt.Errorf("codec: read tag: %w", errs.ErrEndOfStream)
	}
	if wiretag.Tag(raw) != want {
		return fmt.Errorf("codec: expected %s, got %s: %w", want, wiretag.Tag(raw), errs.ErrTypeMismatch)
	}
	return nil
}

// WriteString encodes a narrow (single-byte code unit) string: STRING tag,
// 16-bit code-unit count, then the raw bytes.
func WriteString(sink transport.Sink, engine endian.EndianEngine, s string) error {
	if err := sink.Write([]byte{byte(wiretag.String)}); err != nil {
		return fmt.Errorf("codec: write string tag: %w", errs.ErrStreamError)
	}
	if err := writeSize(sink, engine, len(s)); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	if err := sink.Write([]byte(s)); err != nil {
		return fmt.Errorf("codec: write string body: %w", errs.ErrStreamError)
	}
	return nil
}

// ReadString decodes a narrow string.
func ReadString(src transport.Source, engine endian.EndianEngine) (string, error) {
	if err := expectTag(src, wiretag.String); err != nil {
		return "", err
	}
	n, err := readSize(src, engine)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := src.ReadFull(buf); err != nil {
		return "", fmt.Errorf("codec: read string body: %w", errs.ErrEndOfStream)
	}
	return string(buf), nil
}

// WriteWString encodes a wide string: WSTRING tag, 16-bit code-unit count,
// then each UTF-16 code unit as exactly two octets in stream order. Code
// units are fixed at 16 bits on the wire regardless of the host's native
// wide-character width; a code unit above 0xFFFF cannot occur in a
// []uint16, so this constraint is structural, not checked here —
// see WriteWStringFromRunes for the entry point from a Go string.
func WriteWString(sink transport.Sink, engine endian.EndianEngine, units []uint16) error {
	if err := sink.Write([]byte{byte(wiretag.WString)}); err != nil {
		return fmt.Errorf("codec: write wstring tag: %w", errs.ErrStreamError)
	}
	if err := writeSize(sink, engine, len(units)); err != nil {
		return err
	}
	for _, u := range units {
		buf := make([]byte, 2)
		engine.PutUint16(buf, u)
		if err := sink.Write(buf); err != nil {
			return fmt.Errorf("codec: write wstring unit: %w", errs.ErrStreamError)
		}
	}
	return nil
}

// ReadWString decodes a wide string into its raw UTF-16 code units.
func ReadWString(src transport.Source, engine endian.EndianEngine) ([]uint16, error) {
	if err := expectTag(src, wiretag.WString); err != nil {
		return nil, err
	}
	n, err := readSize(src, engine)
	if err != nil {
		return nil, err
	}
	units := make([]uint16, n)
	buf := make([]byte, 2)
	for i := 0; i < n; i++ {
		if err := src.ReadFull(buf); err != nil {
			return nil, fmt.Errorf("codec: read wstring unit: %w", errs.ErrEndOfStream)
		}
		units[i] = engine.Uint16(buf)
	}
	return units, nil
}

// WriteWStringFromRunes encodes s as a wide string: a rune whose UTF-16
// encoding needs a surrogate pair is fine (two code units, each <= 0xFFFF
// by construction), and unicode/utf16 never produces a code unit above
// 0xFFFF in the first place, so this function cannot itself observe a
// "code unit > 0xFFFF" case and performs no check of its own; it never
// returns errs.ErrInvalid. Callers assembling []uint16 by hand use
// WriteWString directly.
func WriteWStringFromRunes(sink transport.Sink, engine endian.EndianEngine, s string) error {
	return WriteWString(sink, engine, utf16.Encode([]rune(s)))
}

// ReadWStringToString decodes a wide string and re-assembles it as a Go
// string via UTF-16 decoding.
func ReadWStringToString(src transport.Source, engine endian.EndianEngine) (string, error) {
	units, err := ReadWString(src, engine)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(units)), nil
}

// WriteCharArray encodes a fixed-capacity, NUL-terminated character buffer:
// STRING tag, size = strlen(s)+1, then that many octets including the
// terminator. capacity is the destination buffer's size on the decode
// side, not checked here.
func WriteCharArray(sink transport.Sink, engine endian.EndianEngine, s string) error {
	if err := sink.Write([]byte{byte(wiretag.String)}); err != nil {
		return fmt.Errorf("codec: write char array tag: %w", errs.ErrStreamError)
	}
	n := len(s) + 1
	if err := writeSize(sink, engine, n); err != nil {
		return err
	}
	if err := sink.Write([]byte(s)); err != nil {
		return fmt.Errorf("codec: write char array body: %w", errs.ErrStreamError)
	}
	if err := sink.Write([]byte{0}); err != nil {
		return fmt.Errorf("codec: write char array terminator: %w", errs.ErrStreamError)
	}
	return nil
}

// ReadCharArray decodes a fixed-capacity character buffer. It fails with
// errs.ErrStringTooLong if the encoded size (including terminator) exceeds
// capacity.
func ReadCharArray(src transport.Source, engine endian.EndianEngine, capacity int) (string, error) {
	if err := expectTag(src, wiretag.String); err != nil {
		return "", err
	}
	n, err := readSize(src, engine)
	if err != nil {
		return "", err
	}
	if n > capacity {
		return "", fmt.Errorf("codec: char array size %d exceeds capacity %d: %w", n, capacity, errs.ErrStringTooLong)
	}
	buf := make([]byte, n)
	if err := src.ReadFull(buf); err != nil {
		return "", fmt.Errorf("codec: read char array body: %w", errs.ErrEndOfStream)
	}
	if n == 0 {
		return "", nil
	}
	// buf[n-1] is the NUL terminator; the string is everything before it.
	return string(buf[:n-1]), nil
}
