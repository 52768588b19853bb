package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(BufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	got := bb.Bytes()

	assert.Equal(t, []byte("hello"), got)
	assert.True(t, &bb.B[0] == &got[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(BufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Len(t *testing.T) {
	bb := NewByteBuffer(BufferDefaultSize)

	assert.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, []byte("test")...)
	assert.Equal(t, 4, bb.Len())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, "hello world", string(bb.Bytes()))
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(BufferDefaultSize)
	bb.B = append(bb.B, []byte("payload")...)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", out.String())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.Grow(100)
	assert.GreaterOrEqual(t, cap(bb.B), 100)
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.B = append(bb.B, []byte("reuse me")...)

	p.Put(bb)

	bb2 := p.Get()
	assert.Equal(t, 0, bb2.Len(), "pooled buffer should come back reset")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := p.Get()
	bb.Grow(100)
	require.Greater(t, cap(bb.B), 8)

	p.Put(bb) // should be discarded rather than pooled

	bb2 := p.Get()
	assert.LessOrEqual(t, cap(bb2.B), 100, "fresh buffer should not retain the discarded oversized one")
}

func TestDefaultPool(t *testing.T) {
	bb := GetBuffer()
	require.NotNil(t, bb)
	PutBuffer(bb)
}
