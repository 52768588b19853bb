package transport

import (
	"fmt"
	"io"

	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/internal/pool"
	"github.com/cagrbit/wirecodec/wiretag"
)

// ByteSink is an in-memory Sink backed by a pooled, growable byte buffer.
type ByteSink struct {
	buf     *pool.ByteBuffer
	healthy bool
}

// NewByteSink returns a ByteSink with a freshly pooled backing buffer.
func NewByteSink() *ByteSink {
	return &ByteSink{
		buf:     pool.GetBuffer(),
		healthy: true,
	}
}

func (s *ByteSink) Write(p []byte) error {
	if !s.healthy {
		return fmt.Errorf("byte sink: %w", errs.ErrStreamError)
	}

	n, err := s.buf.Write(p)
	if err != nil || n != len(p) {
		s.healthy = false
		return fmt.Errorf("byte sink: short write: %w", errs.ErrStreamError)
	}

	return nil
}

func (s *ByteSink) Pos() int       { return s.buf.Len() }
func (s *ByteSink) Healthy() bool  { return s.healthy }
func (s *ByteSink) Bytes() []byte  { return s.buf.Bytes() }

// WriteTo writes the sink's accumulated bytes to w in one call, e.g. to
// flush a buffered record straight to a file or network connection without
// an intermediate copy through Bytes().
func (s *ByteSink) WriteTo(w io.Writer) (int64, error) {
	return s.buf.WriteTo(w)
}

// Release returns the backing buffer to the pool. Call once the sink's bytes
// have been consumed (e.g. copied out via Bytes()) and the sink is discarded.
func (s *ByteSink) Release() {
	pool.PutBuffer(s.buf)
	s.buf = nil
}

// ByteSource is an in-memory Source reading from a fixed byte slice.
type ByteSource struct {
	data    []byte
	pos     int
	healthy bool
}

// NewByteSource returns a ByteSource reading from data. data is not copied;
// the caller must not mutate it while the source is in use.
func NewByteSource(data []byte) *ByteSource {
	return &ByteSource{data: data, healthy: true}
}

func (s *ByteSource) ReadByte() (byte, error) {
	if !s.healthy {
		return 0, fmt.Errorf("byte source: %w", errs.ErrStreamError)
	}
	if s.pos >= len(s.data) {
		s.healthy = false
		return 0, fmt.Errorf("byte source: %w", errs.ErrEndOfStream)
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

func (s *ByteSource) ReadFull(p []byte) error {
	if !s.healthy {
		return fmt.Errorf("byte source: %w", errs.ErrStreamError)
	}
	if s.pos+len(p) > len(s.data) {
		s.healthy = false
		return fmt.Errorf("byte source: short read: %w", errs.ErrEndOfStream)
	}
	copy(p, s.data[s.pos:s.pos+len(p)])
	s.pos += len(p)
	return nil
}

func (s *ByteSource) PeekTag() (wiretag.Tag, bool) {
	if !s.healthy || s.pos >= len(s.data) {
		return wiretag.Unknown, false
	}
	return wiretag.Tag(s.data[s.pos]), true
}

func (s *ByteSource) Skip(n int) error {
	if !s.healthy {
		return fmt.Errorf("byte source: %w", errs.ErrStreamError)
	}
	if n < 0 || s.pos+n > len(s.data) {
		s.healthy = false
		return fmt.Errorf("byte source: skip past end: %w", errs.ErrEndOfStream)
	}
	s.pos += n
	return nil
}

func (s *ByteSource) Pos() int      { return s.pos }
func (s *ByteSource) Healthy() bool { return s.healthy }

// Remaining reports how many unconsumed octets are left in the source.
func (s *ByteSource) Remaining() int { return len(s.data) - s.pos }

var (
	_ Sink   = (*ByteSink)(nil)
	_ Source = (*ByteSource)(nil)
)
