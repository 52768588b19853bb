// Package errs defines the codec's error taxonomy as sentinel errors plus an
// ErrorKind enum for the façade's error handler and LastError accessor.
package errs

import "errors"

// ErrorKind classifies why a codec operation failed.
type ErrorKind uint8

const (
	// None indicates no error occurred.
	None ErrorKind = iota
	// TypeMismatch indicates the observed wire tag differs from the one expected.
	TypeMismatch
	// StreamError indicates the underlying transport reported a short or failed I/O.
	StreamError
	// StringTooLong indicates a decoded size prefix exceeds the receiving buffer's capacity.
	StringTooLong
	// SizeOverflow indicates an encoded collection or record exceeds the 16-bit size limit.
	SizeOverflow
	// Invalid indicates malformed framing, including an oversized USER_DEFINED payload.
	Invalid
	// EndOfStream indicates the source was exhausted while more input was expected.
	EndOfStream
)

func (k ErrorKind) String() string {
	switch k {
	case None:
		return "None"
	case TypeMismatch:
		return "TypeMismatch"
	case StreamError:
		return "StreamError"
	case StringTooLong:
		return "StringTooLong"
	case SizeOverflow:
		return "SizeOverflow"
	case Invalid:
		return "Invalid"
	case EndOfStream:
		return "EndOfStream"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per ErrorKind. Call sites wrap these with
// fmt.Errorf("...: %w", errs.ErrX, ...) to attach context; callers recover
// the ErrorKind with ClassifyError.
var (
	ErrTypeMismatch  = errors.New("wire tag does not match expected shape")
	ErrStreamError   = errors.New("transport reported short or failed I/O")
	ErrStringTooLong = errors.New("decoded size exceeds destination buffer capacity")
	ErrSizeOverflow  = errors.New("encoded size exceeds the 16-bit wire limit")
	ErrInvalid       = errors.New("malformed framing")
	ErrEndOfStream   = errors.New("source exhausted while more input was expected")
)

// ClassifyError maps a (possibly wrapped) error to its ErrorKind. It returns
// None if err is nil, and Invalid if err is non-nil but does not wrap one of
// the recognised sentinels.
func ClassifyError(err error) ErrorKind {
	switch {
	case err == nil:
		return None
	case errors.Is(err, ErrTypeMismatch):
		return TypeMismatch
	case errors.Is(err, ErrStreamError):
		return StreamError
	case errors.Is(err, ErrStringTooLong):
		return StringTooLong
	case errors.Is(err, ErrSizeOverflow):
		return SizeOverflow
	case errors.Is(err, ErrEndOfStream):
		return EndOfStream
	case errors.Is(err, ErrInvalid):
		return Invalid
	default:
		return Invalid
	}
}
