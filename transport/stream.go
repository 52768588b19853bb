package transport

import (
	"fmt"
	"io"

	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/wiretag"
)

// StreamSink adapts an io.Writer (a socket, a file, a pipe) into a Sink.
// Grounded on the "read/write exactly N bytes or fail" discipline used by
// the mini-RPC frame protocol reference file.
type StreamSink struct {
	w       io.Writer
	pos     int
	healthy bool
}

// NewStreamSink wraps w as a Sink.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w, healthy: true}
}

func (s *StreamSink) Write(p []byte) error {
	if !s.healthy {
		return fmt.Errorf("stream sink: %w", errs.ErrStreamError)
	}

	n, err := s.w.Write(p)
	s.pos += n
	if err != nil || n != len(p) {
		s.healthy = false
		return fmt.Errorf("stream sink: short write: %w", errs.ErrStreamError)
	}

	return nil
}

func (s *StreamSink) Pos() int      { return s.pos }
func (s *StreamSink) Healthy() bool { return s.healthy }

// StreamSource adapts an io.Reader into a Source. Unlike ByteSource it
// cannot truly peek without consuming, so it maintains a one-byte lookahead
// buffer to implement PeekTag.
type StreamSource struct {
	r        io.Reader
	pos      int
	healthy  bool
	hasPeek  bool
	peekByte byte
}

// NewStreamSource wraps r as a Source.
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{r: r, healthy: true}
}

func (s *StreamSource) fill() error {
	if s.hasPeek {
		return nil
	}
	var b [1]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		s.healthy = false
		return fmt.Errorf("stream source: %w", errs.ErrEndOfStream)
	}
	s.peekByte = b[0]
	s.hasPeek = true
	return nil
}

func (s *StreamSource) ReadByte() (byte, error) {
	if !s.healthy {
		return 0, fmt.Errorf("stream source: %w", errs.ErrStreamError)
	}
	if err := s.fill(); err != nil {
		return 0, err
	}
	s.hasPeek = false
	s.pos++
	return s.peekByte, nil
}

func (s *StreamSource) ReadFull(p []byte) error {
	if !s.healthy {
		return fmt.Errorf("stream source: %w", errs.ErrStreamError)
	}
	if len(p) == 0 {
		return nil
	}

	off := 0
	if s.hasPeek {
		p[0] = s.peekByte
		s.hasPeek = false
		off = 1
	}

	if off < len(p) {
		if _, err := io.ReadFull(s.r, p[off:]); err != nil {
			s.healthy = false
			return fmt.Errorf("stream source: short read: %w", errs.ErrEndOfStream)
		}
	}

	s.pos += len(p)
	return nil
}

func (s *StreamSource) PeekTag() (wiretag.Tag, bool) {
	if !s.healthy {
		return wiretag.Unknown, false
	}
	if err := s.fill(); err != nil {
		return wiretag.Unknown, false
	}
	return wiretag.Tag(s.peekByte), true
}

func (s *StreamSource) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("stream source: negative skip: %w", errs.ErrInvalid)
	}
	buf := make([]byte, n)
	return s.ReadFull(buf)
}

func (s *StreamSource) Pos() int      { return s.pos }
func (s *StreamSource) Healthy() bool { return s.healthy }

var (
	_ Sink   = (*StreamSink)(nil)
	_ Source = (*StreamSource)(nil)
)
