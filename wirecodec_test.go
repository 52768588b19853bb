package wirecodec

import (
	"testing"

	"github.com/cagrbit/wirecodec/endian"
	"github.com/cagrbit/wirecodec/errs"
	"github.com/cagrbit/wirecodec/record"
	"github.com/cagrbit/wirecodec/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct {
	Seq int32
}

func (p *ping) Name() string { return "Ping" }
func (p *ping) EncodeSelf(w *record.Writer) error {
	return w.WriteInt32(p.Seq)
}
func (p *ping) DecodeSelf(r *record.Reader) error {
	var err error
	p.Seq, err = r.ReadInt32()
	return err
}

func TestWriteReadRecordRoundTrip(t *testing.T) {
	c := New()
	sink := transport.NewByteSink()
	defer sink.Release()

	require.NoError(t, WriteRecord(c, sink, &ping{Seq: 7}))

	got := &ping{}
	require.NoError(t, ReadRecord(c, transport.NewByteSource(sink.Bytes()), got))
	assert.Equal(t, int32(7), got.Seq)
}

func TestWithStreamOrder_LittleEndian(t *testing.T) {
	c := New(WithStreamOrder(endian.OrderLittle))
	sink := transport.NewByteSink()
	defer sink.Release()

	require.NoError(t, WriteRecord(c, sink, &ping{Seq: 300}))

	reader := New(WithStreamOrder(endian.OrderLittle))
	got := &ping{}
	require.NoError(t, ReadRecord(reader, transport.NewByteSource(sink.Bytes()), got))
	assert.Equal(t, int32(300), got.Seq)
}

func TestWithHostStreamOrder_MatchesProcessNativeOrder(t *testing.T) {
	c := New(WithHostStreamOrder())
	sink := transport.NewByteSink()
	defer sink.Release()

	require.NoError(t, WriteRecord(c, sink, &ping{Seq: 42}))

	reader := New(WithHostStreamOrder())
	got := &ping{}
	require.NoError(t, ReadRecord(reader, transport.NewByteSource(sink.Bytes()), got))
	assert.Equal(t, int32(42), got.Seq)
}

func TestAlwaysEmitEndianMarker_SelfDescribingStream(t *testing.T) {
	writer := New(WithStreamOrder(endian.OrderLittle), WithAlwaysEmitEndianMarker(true))
	sink := transport.NewByteSink()
	defer sink.Release()
	require.NoError(t, WriteRecord(writer, sink, &ping{Seq: 9}))

	// A reader negotiated to the opposite default order still recovers the
	// correct value, because the marker in the stream overrides it.
	reader := New(WithStreamOrder(endian.OrderBig))
	got := &ping{}
	require.NoError(t, ReadRecord(reader, transport.NewByteSource(sink.Bytes()), got))
	assert.Equal(t, int32(9), got.Seq)
}

func TestProgressHandler_ReceivesRecordIDAndLength(t *testing.T) {
	var gotID RecordID
	var gotLen int
	c := New(WithProgressHandler(func(id RecordID, n int) {
		gotID = id
		gotLen = n
	}))
	sink := transport.NewByteSink()
	defer sink.Release()
	require.NoError(t, WriteRecord(c, sink, &ping{Seq: 1}))

	assert.Equal(t, record.IDOf(&ping{}), gotID)
	assert.Equal(t, 5, gotLen) // LITERAL tag + 4-byte int32
}

func TestErrorHandler_ReceivesClassifiedKind(t *testing.T) {
	var gotKind errs.ErrorKind
	c := New(WithErrorHandler(func(kind errs.ErrorKind, line int, file string) {
		gotKind = kind
	}))

	src := transport.NewByteSource([]byte{1, 0x00, 0x00}) // LITERAL, not UserDefined
	err := ReadRecord(c, src, &ping{})
	require.Error(t, err)
	assert.Equal(t, errs.TypeMismatch, gotKind)
	assert.Equal(t, errs.TypeMismatch, c.LastError())
}
