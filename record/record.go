// Package record frames a user record as a tagged, length-prefixed
// USER_DEFINED blob and uses that length to tolerate schema drift between
// writer and reader (forward-compat: skip unknown trailing fields;
// backward-compat: missing trailing fields keep their default).
package record

import "github.com/cagrbit/wirecodec/internal/hash"

// Record is the capability a user type must supply to be transferred by
// this codec: an ordered field sequence it writes to / reads from a Writer
// / Reader, and a stable name used to derive its RecordID.
//
// Composition is by explicit delegation, not implicit virtual chaining: a
// derived record's EncodeSelf/DecodeSelf call the base record's
// EncodeSelf/DecodeSelf first, explicitly, before handling its own
// additional fields.
type Record interface {
	// Name returns the record's declared name. It must be stable across
	// builds and schema revisions — it is hashed into the RecordID handed
	// to the progress handler, and changing it changes that ID.
	Name() string
	// EncodeSelf writes the record's fields, in the author's fixed
	// declared order, through w.
	EncodeSelf(w *Writer) error
	// DecodeSelf reads the record's fields, in the same fixed order, from r.
	DecodeSelf(r *Reader) error
}

// RecordID is an opaque, stable identity token for a record type, handed to
// the progress handler in place of a language-specific runtime type
// descriptor.
type RecordID uint64

// IDOf computes the RecordID for rec from its declared Name(), via
// internal/hash.ID (xxHash64), turning a stable name into a comparable
// lookup key.
func IDOf(rec Record) RecordID {
	return RecordID(hash.ID(rec.Name()))
}
