package arrayutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixcap/internal/arrayutil"
)

func TestSize(t *testing.T) {
	assert.Equal(t, 1, arrayutil.Size[uint8]())
	assert.Equal(t, 2, arrayutil.Size[uint16]())
	assert.Equal(t, 4, arrayutil.Size[int32]())
	assert.Equal(t, 8, arrayutil.Size[uint64]())
}

func TestBytesLittleEndian(t *testing.T) {
	assert.Equal(t, []byte{0x34, 0x12}, arrayutil.Bytes(uint16(0x1234)))
	assert.Equal(t, []byte{0x01, 0x00}, arrayutil.Bytes(uint16(0x0001)))
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, arrayutil.Bytes(uint32(0x12345678)))
	assert.Equal(t, []byte{0xAB}, arrayutil.Bytes(uint8(0xAB)))
}

func TestBytesSignedTwosComplement(t *testing.T) {
	assert.Equal(t, []byte{0xFF, 0xFF}, arrayutil.Bytes(int16(-1)))
	assert.Equal(t, []byte{0xFE, 0xFF, 0xFF, 0xFF}, arrayutil.Bytes(int32(-2)))
}

func TestFromLE(t *testing.T) {
	assert.Equal(t, uint16(0x1234), arrayutil.FromLE[uint16]([]byte{0x34, 0x12}))
	assert.Equal(t, int16(-1), arrayutil.FromLE[int16]([]byte{0xFF, 0xFF}))
	// Short input leaves high bytes zero.
	assert.Equal(t, uint32(0x34), arrayutil.FromLE[uint32]([]byte{0x34}))
	// Extra bytes beyond the element width are ignored.
	assert.Equal(t, uint8(0x34), arrayutil.FromLE[uint8]([]byte{0x34, 0x12}))
}

func TestBytesRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 0x7FFFFFFF, -0x80000000, 0x12345678} {
		assert.Equal(t, v, arrayutil.FromLE[int32](arrayutil.Bytes(v)))
	}
}

func TestToBytes(t *testing.T) {
	got := arrayutil.ToBytes([]uint16{0x1234, 0x0001})
	assert.Equal(t, []byte{0x34, 0x12, 0x01, 0x00}, got)

	assert.Empty(t, arrayutil.ToBytes([]uint16(nil)))
}

func TestRange(t *testing.T) {
	assert.Equal(t, []uint8{0, 1, 2, 3}, arrayutil.Range[uint8](4))
	assert.Empty(t, arrayutil.Range[uint16](0))
}

func TestRandomDeterministic(t *testing.T) {
	a := arrayutil.Random[uint32](16, 7)
	b := arrayutil.Random[uint32](16, 7)
	require.Equal(t, a, b)

	c := arrayutil.Random[uint32](16, 8)
	assert.NotEqual(t, a, c)
}
