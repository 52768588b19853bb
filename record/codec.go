package record

import (
	"fmt"

	"github.com/cagrbit/wirecodec/codec"
	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/transport"
	"github.com/cagrbit/wirecodec/wiretag"
)

// Encode frames rec as a USER_DEFINED value — tag, 16-bit payload length,
// then the fields rec.EncodeSelf writes — and appends that frame to sink.
//
// The payload length must be known before it is written, but sink may be a
// genuine one-way stream (a socket, a file) with no way to go back and patch
// a placeholder once later bytes have already been flushed. So rather than
// writing a placeholder length and seeking back to patch it once the real
// length is known, EncodeSelf's output is first collected into a scratch
// buffer whose length is known by construction; the frame is then written to
// sink in one pass. This produces the same wire bytes a seek-back approach
// would, without requiring sink to support one.
// It returns the payload length written, so a caller driving a progress
// handler doesn't need to re-derive it.
func Encode(sink transport.Sink, engine endian.EndianEngine, rec Record) (int, error) {
	body := transport.NewByteSink()
	defer body.Release()

	w := newWriter(body, engine)
	if err := rec.EncodeSelf(w); err != nil {
		return 0, fmt.Errorf("record %q: encode fields: %w", rec.Name(), err)
	}

	payload := body.Bytes()
	if len(payload) > codec.MaxWireSize {
		return 0, fmt.Errorf("record %q: payload of %d octets exceeds wire limit: %w", rec.Name(), len(payload), errs.ErrSizeOverflow)
	}

	if err := sink.Write([]byte{byte(wiretag.UserDefined)}); err != nil {
		return 0, fmt.Errorf("record %q: write tag: %w", rec.Name(), errs.ErrStreamError)
	}
	sizeBuf := make([]byte, 2)
	engine.PutUint16(sizeBuf, uint16(len(payload)))
	if err := sink.Write(sizeBuf); err != nil {
		return 0, fmt.Errorf("record %q: write length: %w", rec.Name(), errs.ErrStreamError)
	}
	if err := sink.Write(payload); err != nil {
		return 0, fmt.Errorf("record %q: write body: %w", rec.Name(), errs.ErrStreamError)
	}
	return len(payload), nil
}

// Decode reads a USER_DEFINED frame, bounds rec.DecodeSelf to the frame's
// declared payload length, and then reconciles the length actually consumed
// against the length declared:
//
//   - actual == declared: the common case, schemas agree.
//   - actual < declared (forward-compat): the writer used a newer schema
//     with trailing fields this rec doesn't know about. skipTrailing walks
//     those fields one value at a time via wiretag.Skip where it can, and
//     skips the rest of the frame as one raw span where it cannot (see
//     skipTrailing).
//   - actual > declared: the record over-read its own frame, which can only
//     mean the stream is corrupt or the two schemas disagree in an
//     unrecoverable way; reported as errs.ErrInvalid.
// It returns the declared payload length, mirroring Encode.
func Decode(src transport.Source, engine endian.EndianEngine, rec Record) (int, error) {
	raw, err := src.ReadByte()
	if err != nil {
		return 0, fmt.Errorf("record %q: read tag: %w", rec.Name(), errs.ErrEndOfStream)
	}
	if wiretag.Tag(raw) != wiretag.UserDefined {
		return 0, fmt.Errorf("record %q: expected UserDefined, got %s: %w", rec.Name(), wiretag.Tag(raw), errs.ErrTypeMismatch)
	}

	sizeBuf := make([]byte, 2)
	if err := src.ReadFull(sizeBuf); err != nil {
		return 0, fmt.Errorf("record %q: read length: %w", rec.Name(), errs.ErrEndOfStream)
	}
	declared := int(engine.Uint16(sizeBuf))
	start := src.Pos()

	r := newReader(src, engine, start+declared)
	if err := rec.DecodeSelf(r); err != nil {
		return 0, fmt.Errorf("record %q: decode fields: %w", rec.Name(), err)
	}

	actual := src.Pos() - start
	switch {
	case actual == declared:
		return declared, nil
	case actual < declared:
		if err := skipTrailing(src, engine, start+declared); err != nil {
			return 0, fmt.Errorf("record %q: skip trailing unknown fields: %w", rec.Name(), err)
		}
		return declared, nil
	default:
		return 0, fmt.Errorf("record %q: decoded %d octets, declared length was %d: %w", rec.Name(), actual, declared, errs.ErrInvalid)
	}
}

// skipTrailing consumes the unknown fields a newer writer left between
// src's current position and boundary, one value at a time via wiretag.Skip
// where that is unambiguous: STRING, WSTRING and nested USER_DEFINED records
// are self-framed by a size prefix that exactly matches their on-wire span,
// and ENDIAN always carries exactly one octet after its tag, so wiretag.Skip
// resolves them directly.
//
// Two shapes are not safe to decompose that way and fall back to closing out
// the rest of the frame as a single raw byte range instead — whose length is
// known exactly from the frame's declared length regardless of what's inside
// it. A bare LITERAL's tag doesn't carry its width. And a container's element
// framing can hide a shape wiretag.Skip can't see through generically — a
// VECTOR<bool>, for instance, packs raw octets with no per-element tag at
// all — so walking its declared element count as if each were independently
// tagged would misread the field that follows it.
func skipTrailing(src transport.Source, engine endian.EndianEngine, boundary int) error {
	for src.Pos() < boundary {
		tag, ok := src.PeekTag()
		if !ok {
			return fmt.Errorf("peek trailing field: %w", errs.ErrEndOfStream)
		}
		if tag == wiretag.Literal || tag.IsContainer() {
			return src.Skip(boundary - src.Pos())
		}
		if err := wiretag.Skip(src, engine, 0); err != nil {
			return src.Skip(boundary - src.Pos())
		}
	}
	if src.Pos() > boundary {
		return fmt.Errorf("skip overran declared boundary: %w", errs.ErrInvalid)
	}
	return nil
}
