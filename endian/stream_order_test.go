package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiatedEngine(t *testing.T) {
	assert.Equal(t, binary.LittleEndian, NegotiatedEngine(OrderLittle))
	assert.Equal(t, binary.BigEndian, NegotiatedEngine(OrderBig))
	// Unrecognised codes default to network order.
	assert.Equal(t, binary.BigEndian, NegotiatedEngine(StreamOrder(0xFF)))
}

func TestStreamOrderValid(t *testing.T) {
	assert.True(t, OrderBig.Valid())
	assert.True(t, OrderLittle.Valid())
	assert.False(t, StreamOrder(0x03).Valid())
}

func TestStreamOrderString(t *testing.T) {
	assert.Equal(t, "big", OrderBig.String())
	assert.Equal(t, "little", OrderLittle.String())
	assert.Equal(t, "unknown", StreamOrder(9).String())
}

func TestHostStreamOrder(t *testing.T) {
	order := HostStreamOrder()
	assert.True(t, order.Valid())
	if IsNativeLittleEndian() {
		assert.Equal(t, OrderLittle, order)
	} else {
		assert.Equal(t, OrderBig, order)
	}
}
