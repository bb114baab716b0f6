package smartbuffer

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateVarint32(t *testing.T) {
	cases := map[int32]int{
		0:          1,
		127:        1,
		128:        2,
		16383:      2,
		16384:      3,
		2097151:    3,
		2097152:    4,
		268435455:  4,
		268435456:  5,
		2147483647: 5,
		-1:         5,
	}
	for v, size := range cases {
		assert.Equal(t, size, CalculateVarint32(v), "value %d", v)
	}
}

func TestCalculateVarint64(t *testing.T) {
	cases := map[int64]int{
		0:                    1,
		127:                  1,
		128:                  2,
		1<<28 - 1:            4,
		1 << 28:              5,
		1 << 35:              6,
		1<<56 - 1:            8,
		1 << 56:              9,
		1<<63 - 1:            9,
		-1:                   10,
		-9223372036854775808: 10,
	}
	for v, size := range cases {
		assert.Equal(t, size, CalculateVarint64(v), "value %d", v)
	}
}

// Scenario: 300 encodes to AC 02.
func TestVarint32Encoding(t *testing.T) {
	b := New(0)
	n, err := b.WriteVarint32(300)
	require.Nil(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ac02", b.ToHex())

	v, err := b.ReadVarint32()
	assert.Nil(t, err)
	assert.Equal(t, int32(300), v)
	assert.Equal(t, 2, b.ROffset())
}

func TestVarint32RoundTrip(t *testing.T) {
	values := []int32{0, 1, 127, 128, 300, 16383, 16384, 2097151, 2097152,
		268435455, 268435456, 2147483647, -1, -300, -2147483648}
	for _, v := range values {
		b := New(8)
		n, err := b.WriteVarint32(v)
		require.Nil(t, err, "value %d", v)
		assert.Equal(t, CalculateVarint32(v), n)

		r, err := b.ReadVarint32()
		assert.Nil(t, err)
		assert.Equal(t, v, r, "value %d", v)
		assert.Equal(t, n, b.ROffset())
	}
}

func TestVarint32ZigZag(t *testing.T) {
	assert.Equal(t, uint32(0), ZigZagEncode32(0))
	assert.Equal(t, uint32(1), ZigZagEncode32(-1))
	assert.Equal(t, uint32(2), ZigZagEncode32(1))
	assert.Equal(t, uint32(4294967295), ZigZagEncode32(-2147483648))

	for _, v := range []int32{0, -1, 1, 63, -64, 300, -300, 2147483647, -2147483648} {
		b := New(8)
		n, err := b.WriteVarint32ZigZag(v)
		require.Nil(t, err)
		assert.Equal(t, CalculateVarint32(int32(ZigZagEncode32(v))), n)

		r, err := b.ReadVarint32ZigZag()
		assert.Nil(t, err)
		assert.Equal(t, v, r)
	}

	// small magnitudes stay one byte
	b := New(8)
	n, _ := b.WriteVarint32ZigZag(-1)
	assert.Equal(t, 1, n)
}

func TestVarint64RoundTrip(t *testing.T) {
	values := []int64{0, 1, 127, 128, 300, 1<<28 - 1, 1 << 28, 1 << 35,
		1<<56 - 1, 1 << 56, 1<<63 - 1, -1, -300, -9223372036854775808}
	for _, v := range values {
		b := New(16)
		n, err := b.WriteVarint64(v)
		require.Nil(t, err, "value %d", v)
		assert.Equal(t, CalculateVarint64(v), n)

		r, err := b.ReadVarint64()
		assert.Nil(t, err)
		assert.Equal(t, v, r, "value %d", v)
		assert.Equal(t, n, b.ROffset())
	}
}

func TestVarint64Encoding(t *testing.T) {
	b := New(16)
	_, err := b.WriteVarint64(-1)
	require.Nil(t, err)
	assert.Equal(t, "ffffffffffffffffff01", b.ToHex())
}

func TestVarint64ZigZag(t *testing.T) {
	for _, v := range []int64{0, -1, 1, 300, -300, 1 << 40, -(1 << 40),
		1<<63 - 1, -9223372036854775808} {
		b := New(16)
		_, err := b.WriteVarint64ZigZag(v)
		require.Nil(t, err)

		r, err := b.ReadVarint64ZigZag()
		assert.Nil(t, err)
		assert.Equal(t, v, r, "value %d", v)
	}

	b := New(16)
	n, _ := b.WriteVarint64ZigZag(-1)
	assert.Equal(t, 1, n)
}

// A continuation bit running off the store is a truncation, the cursor stays
// where the failing read stopped.
func TestVarint32Truncated(t *testing.T) {
	b, err := FromHex("ff")
	require.Nil(t, err)

	_, err = b.ReadVarint32()
	assert.True(t, IsRange(err))
	assert.Equal(t, ErrTruncated, errors.Cause(err))
	assert.Equal(t, 1, b.ROffset())
}

// Continuation bytes past the fifth group are consumed but not folded into
// the value, matching 32 bit wraparound.
func TestVarint32Wraparound(t *testing.T) {
	b, err := FromHex("ffffffffff7f")
	require.Nil(t, err)

	v, n, err := b.ReadVarint32At(0)
	assert.Nil(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, int32(-1), v)
}

func TestVarint32NoAssertOverrun(t *testing.T) {
	b := WrapView([]byte{0xFF}).SetNoAssert(true)
	v, err := b.ReadVarint32()
	assert.Nil(t, err)
	assert.Equal(t, int32(0x7F), v)
	assert.Equal(t, 1, b.ROffset())
}

// A tenth byte still flagging continuation is a buffer overrun.
func TestVarint64Overrun(t *testing.T) {
	b, err := FromHex("ffffffffffffffffffff")
	require.Nil(t, err)

	_, err = b.ReadVarint64()
	assert.True(t, IsRange(err))
	assert.Equal(t, ErrOverrun, errors.Cause(err))
	assert.Equal(t, 10, b.ROffset())
}

func TestVarint64Truncated(t *testing.T) {
	b, err := FromHex("ffff")
	require.Nil(t, err)

	_, err = b.ReadVarint64()
	assert.Equal(t, ErrTruncated, errors.Cause(err))
	assert.Equal(t, 2, b.ROffset())
}

func BenchmarkWriteVarint32(b *testing.B) {
	buf := New(16)
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if _, err := buf.WriteVarint32(299792458); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReadVarint64(b *testing.B) {
	buf := New(16)
	if _, err := buf.WriteVarint64(1<<56 + 12345); err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		buf.Reset()
		if err := buf.SetWOffset(10); err != nil {
			b.Fatal(err)
		}
		if _, err := buf.ReadVarint64(); err != nil {
			b.Fatal(err)
		}
	}
}
