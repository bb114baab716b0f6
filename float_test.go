package smartbuffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32RoundTrip(t *testing.T) {
	b := New(0)
	assert.Nil(t, b.WriteFloat32LE(3.1415927))
	assert.Nil(t, b.WriteFloat32BE(-0.5))

	v, err := b.ReadFloat32LE()
	assert.Nil(t, err)
	assert.Equal(t, float32(3.1415927), v)
	v, err = b.ReadFloat32BE()
	assert.Nil(t, err)
	assert.Equal(t, float32(-0.5), v)
}

func TestFloat64RoundTrip(t *testing.T) {
	b := New(0)
	assert.Nil(t, b.WriteFloat64BE(2.718281828459045))
	assert.Equal(t, "4005bf0a8b145769", b.ToHex())

	v, err := b.ReadFloat64BE()
	assert.Nil(t, err)
	assert.Equal(t, 2.718281828459045, v)

	b.Reset()
	assert.Nil(t, b.WriteFloat64LE(1.5))
	v, err = b.ReadFloat64LE()
	assert.Nil(t, err)
	assert.Equal(t, 1.5, v)
}

// NaN and the infinities keep their exact bit patterns.
func TestFloatSpecials(t *testing.T) {
	b := New(0)
	nan := math.Float64frombits(0x7FF8000000000001)
	assert.Nil(t, b.WriteFloat64BE(nan))

	v, err := b.ReadFloat64BEAt(0)
	assert.Nil(t, err)
	assert.True(t, math.IsNaN(v))
	bits, err := b.ReadUint64BE()
	assert.Nil(t, err)
	assert.Equal(t, uint64(0x7FF8000000000001), bits)

	b.Reset()
	assert.Nil(t, b.WriteFloat32LE(float32(math.Inf(-1))))
	f, err := b.ReadFloat32LE()
	assert.Nil(t, err)
	assert.True(t, math.IsInf(float64(f), -1))

	b.Reset()
	negZero := math.Copysign(0, -1)
	assert.Nil(t, b.WriteFloat64LE(negZero))
	zbits, err := b.ReadUint64LE()
	assert.Nil(t, err)
	assert.Equal(t, uint64(1)<<63, zbits)
}

func TestFloatRangeErrors(t *testing.T) {
	b := New(2)
	_, err := b.ReadFloat32LE()
	assert.True(t, IsRange(err))
	_, err = b.ReadFloat64BEAt(0)
	assert.True(t, IsRange(err))
}
