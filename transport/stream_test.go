package transport

import (
	"bytes"
	"testing"

	"github.com/cagrbit/wirecodec/wiretag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamSink_Write(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStreamSink(&buf)

	require.NoError(t, sink.Write([]byte{1, 2, 3}))
	assert.Equal(t, 3, sink.Pos())
	assert.Equal(t, []byte{1, 2, 3}, buf.Bytes())
}

func TestStreamSource_PeekThenReadConsumesOnce(t *testing.T) {
	src := NewStreamSource(bytes.NewReader([]byte{byte(wiretag.String), 0x00, 0x01, 'z'}))

	tag, ok := src.PeekTag()
	require.True(t, ok)
	assert.Equal(t, wiretag.String, tag)

	b, err := src.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(wiretag.String), b)

	rest := make([]byte, 3)
	require.NoError(t, src.ReadFull(rest))
	assert.Equal(t, []byte{0x00, 0x01, 'z'}, rest)
	assert.Equal(t, 4, src.Pos())
}

func TestStreamSource_SkipConsumesPeeked(t *testing.T) {
	src := NewStreamSource(bytes.NewReader([]byte{1, 2, 3, 4, 5}))

	_, ok := src.PeekTag()
	require.True(t, ok)

	require.NoError(t, src.Skip(5))
	assert.Equal(t, 5, src.Pos())
}

func TestStreamSource_ShortReadClearsHealthy(t *testing.T) {
	src := NewStreamSource(bytes.NewReader([]byte{1, 2}))

	buf := make([]byte, 5)
	err := src.ReadFull(buf)
	require.Error(t, err)
	assert.False(t, src.Healthy())
}
