// Package wirecodec is a convenient top-level wrapper around the record,
// codec, and transport packages, bundling stream-order negotiation, error
// classification, and progress reporting behind a single Codec value. For
// advanced usage and fine-grained control over framing, use the lower-level
// packages directly.
package wirecodec

import (
	"runtime"

	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/internal/options"
	"github.com/cagrbit/wirecodec/record"
	"github.com/cagrbit/wirecodec/transport"
)

// RecordID re-exports record.RecordID so callers configuring a Codec don't
// need a second import for the progress handler's first argument.
type RecordID = record.RecordID

// ErrorHandler is invoked, if set, whenever a Write/Read call on the Codec
// fails. line and file identify the call site inside this module that
// produced the error (via runtime.Caller), for diagnostic logging.
type ErrorHandler func(kind errs.ErrorKind, line int, file string)

// ProgressHandler is invoked, if set, after each successful WriteRecord or
// ReadRecord, reporting which record type moved and how many payload octets
// it occupied on the wire.
type ProgressHandler func(id RecordID, payloadLen int)

// Codec bundles the stream-order negotiation and optional diagnostic
// callbacks used by the top-level WriteRecord/ReadRecord wrappers.
type Codec struct {
	streamOrder    endian.StreamOrder
	engine         endian.EndianEngine
	emitMarker     bool
	errorHandler   ErrorHandler
	progressHandler ProgressHandler
	lastErr        error
}

// Option configures a Codec at construction time.
type Option = options.Option[*Codec]

// New constructs a Codec. With no options, it negotiates big-endian stream
// order and never emits the ENDIAN marker.
func New(opts ...Option) *Codec {
	c := &Codec{streamOrder: endian.OrderBig}
	c.engine = endian.NegotiatedEngine(c.streamOrder)
	// With* options below are built via options.NoError and never fail;
	// the error return exists only to satisfy the generic Option contract.
	_ = options.Apply(c, opts...)
	return c
}

// SetErrorHandler installs fn as the Codec's error handler, replacing any
// handler set via WithErrorHandler.
func (c *Codec) SetErrorHandler(fn ErrorHandler) { c.errorHandler = fn }

// SetProgressHandler installs fn as the Codec's progress handler, replacing
// any handler set via WithProgressHandler.
func (c *Codec) SetProgressHandler(fn ProgressHandler) { c.progressHandler = fn }

// LastError classifies the most recent error this Codec observed, or
// errs.None if it has not yet failed.
func (c *Codec) LastError() errs.ErrorKind { return errs.ClassifyError(c.lastErr) }

func (c *Codec) fail(err error) error {
	if err == nil {
		return nil
	}
	c.lastErr = err
	if c.errorHandler != nil {
		_, file, line, _ := runtime.Caller(1)
		c.errorHandler(errs.ClassifyError(err), line, file)
	}
	return err
}

// WriteRecord frames rec through c's negotiated stream order and writes it
// to sink, emitting the ENDIAN marker prologue first if c was constructed
// with WithAlwaysEmitEndianMarker(true).
func WriteRecord(c *Codec, sink transport.Sink, rec record.Record) error {
	if c.emitMarker {
		if err := writeEndianMarker(sink, c.streamOrder); err != nil {
			return c.fail(err)
		}
	}
	n, err := record.Encode(sink, c.engine, rec)
	if err != nil {
		return c.fail(err)
	}
	if c.progressHandler != nil {
		c.progressHandler(record.IDOf(rec), n)
	}
	return nil
}

// ReadRecord decodes one record from src using c's negotiated stream order,
// first consuming an ENDIAN marker if one is present. The marker, when
// present, immediately precedes the record's USER_DEFINED tag and is
// optional — ReadRecord peeks for it rather than requiring it.
func ReadRecord(c *Codec, src transport.Source, rec record.Record) error {
	if err := consumeEndianMarkerIfPresent(src, c); err != nil {
		return c.fail(err)
	}
	n, err := record.Decode(src, c.engine, rec)
	if err != nil {
		return c.fail(err)
	}
	if c.progressHandler != nil {
		c.progressHandler(record.IDOf(rec), n)
	}
	return nil
}
