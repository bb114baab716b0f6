package smartbuffer

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapCopies(t *testing.T) {
	p := []byte{1, 2}
	b := Wrap(p)
	p[0] = 9
	assert.Equal(t, []byte{1, 2}, b.Bytes())
	assert.Equal(t, 2, b.WOffset())
	assert.Equal(t, 0, b.ROffset())

	v := WrapView(p)
	p[1] = 8
	assert.Equal(t, []byte{9, 8}, v.Bytes())
}

func TestIO(t *testing.T) {
	b := New(2)
	n, err := b.Write([]byte{1, 2, 3})
	require.Nil(t, err)
	assert.Equal(t, 3, n)
	require.Nil(t, b.WriteByte(4))
	nn, err := b.WriteString("ab")
	require.Nil(t, err)
	assert.Equal(t, 2, nn)
	assert.Equal(t, "010203046162", b.ToHex())

	p := make([]byte, 4)
	n, err = b.Read(p)
	require.Nil(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, p)

	c, err := b.ReadByte()
	assert.Nil(t, err)
	assert.Equal(t, byte('a'), c)

	n, err = b.Read(p)
	assert.Nil(t, err)
	assert.Equal(t, 1, n)

	// drained
	_, err = b.Read(p)
	assert.Equal(t, io.EOF, err)
	_, err = b.ReadByte()
	assert.Equal(t, io.EOF, err)
}

func TestAppend(t *testing.T) {
	b := New(0)
	require.Nil(t, b.AppendBytes([]byte{1, 2}))
	require.Nil(t, b.AppendString("0304", EncodingHex))
	assert.Equal(t, "01020304", b.ToHex())

	src := Wrap([]byte{5, 6})
	require.Nil(t, b.AppendBuffer(src))
	assert.Equal(t, "010203040506", b.ToHex())
	// source cursors stay put
	assert.Equal(t, 0, src.ROffset())
	assert.Equal(t, 2, src.WOffset())

	require.Nil(t, src.AppendTo(b))
	assert.Equal(t, "0102030405060506", b.ToHex())
}

// Absolute appends overwrite in place, growing past the end but leaving the
// cursors alone.
func TestAppendAt(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4})
	require.Nil(t, b.AppendBytesAt([]byte{9, 9}, 1))
	assert.Equal(t, "01090904", b.ToHex())

	// growth doubles before falling back to the exact requirement
	require.Nil(t, b.AppendBytesAt([]byte{7}, 5))
	assert.Equal(t, 8, b.Cap())
	assert.Equal(t, 4, b.WOffset())
	v, err := b.ReadUint8At(5)
	require.Nil(t, err)
	assert.Equal(t, uint8(7), v)

	assert.True(t, IsRange(b.AppendBytesAt([]byte{1}, -1)))
}

// Scenario: prepending two bytes onto a store with no front space shifts the
// store right, the prepended bytes become readable.
func TestPrependShift(t *testing.T) {
	b := Wrap([]byte{3, 4})
	require.Nil(t, b.PrependBytes([]byte{1, 2}))
	assert.Equal(t, []byte{1, 2, 3, 4}, b.Bytes())
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, 0, b.ROffset())
	assert.Equal(t, 4, b.WOffset())
}

func TestPrependInPlace(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4})
	require.Nil(t, b.SetROffset(2))
	require.Nil(t, b.PrependBytes([]byte{9}))
	assert.Equal(t, 4, b.Cap())
	assert.Equal(t, 1, b.ROffset())
	assert.Equal(t, []byte{9, 3, 4}, b.Bytes())

	require.Nil(t, b.PrependString("08", EncodingHex))
	assert.Equal(t, []byte{8, 9, 3, 4}, b.Bytes())

	src := Wrap([]byte{7})
	require.Nil(t, src.PrependTo(b))
	assert.Equal(t, 5, b.Cap())
	assert.Equal(t, []byte{7, 8, 9, 3, 4}, b.Bytes())
}

func TestPrependAt(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4})
	require.Nil(t, b.PrependBytesAt([]byte{9}, 2))
	assert.Equal(t, "01090304", b.ToHex())
	assert.Equal(t, 0, b.ROffset())

	assert.True(t, IsRange(b.PrependBytesAt([]byte{1}, 5)))
}

func TestSliceAliases(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4})
	s, err := b.Slice(1, 3)
	require.Nil(t, err)
	assert.Equal(t, 2, s.Cap())
	assert.Equal(t, []byte{2, 3}, s.Bytes())

	// a write through the view is visible in the parent
	require.Nil(t, s.WriteUint8At(9, 0))
	assert.Equal(t, "01090304", b.ToHex())

	_, err = b.Slice(3, 1)
	assert.True(t, IsRange(err))
	_, err = b.Slice(0, 5)
	assert.True(t, IsRange(err))
}

func TestCopy(t *testing.T) {
	b := Wrap([]byte{1, 2, 3})
	c, err := b.Copy()
	require.Nil(t, err)
	assert.Equal(t, "010203", c.ToHex())
	// copy consumes
	assert.Equal(t, 3, b.ROffset())
	assert.Equal(t, 0, b.Len())

	// physical copy, not a view
	require.Nil(t, c.WriteUint8At(9, 0))
	assert.Equal(t, byte(1), b.buf[0])

	r, err := b.CopyRange(1, 3)
	require.Nil(t, err)
	assert.Equal(t, "0203", r.ToHex())
	assert.Equal(t, 3, b.ROffset())
}

func TestCopyTo(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4})
	target := New(4)
	n, err := b.CopyTo(target, 1, 0, 3)
	require.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte{0, 1, 2, 3}, target.buf)
	assert.Equal(t, 0, target.WOffset())

	// the target is never grown
	small := New(2)
	_, err = b.CopyTo(small, 0, 0, 4)
	assert.True(t, IsRange(err))
}

func TestCopyToNext(t *testing.T) {
	b := Wrap([]byte{1, 2, 3})
	target := New(8)
	require.Nil(t, target.WriteUint8(0xAA))

	n, err := b.CopyToNext(target)
	require.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, b.ROffset())
	assert.Equal(t, 4, target.WOffset())
	assert.Equal(t, "aa010203", target.ToHex())
}

func TestCompact(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4})
	require.Nil(t, b.SetROffset(1))
	require.Nil(t, b.SetWOffset(3))
	require.Nil(t, b.Compact())
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, 0, b.ROffset())
	assert.Equal(t, 2, b.WOffset())
	assert.Equal(t, "0203", b.ToHex())
}

func TestFill(t *testing.T) {
	b := New(4)
	require.Nil(t, b.WriteUint8(0xAA))
	require.Nil(t, b.Fill(0xFF))
	assert.Equal(t, "<AA FF FF FF]", b.ToDebug())

	require.Nil(t, b.FillRange(0x00, 1, 3))
	assert.Equal(t, "aa0000ff", b.ToHex())
	assert.True(t, IsRange(b.FillRange(0, 0, 5)))
}

func TestReverse(t *testing.T) {
	b := Wrap([]byte{1, 2, 3, 4})
	require.Nil(t, b.Reverse())
	assert.Equal(t, "04030201", b.ToHex())

	require.Nil(t, b.ReverseRange(0, 2))
	assert.Equal(t, "03040201", b.ToHex())
}

// Scenario: concatenation normalizes every source into one fresh store.
func TestConcat(t *testing.T) {
	one := Wrap([]byte{1, 2})
	three, err := FromHex("03")
	require.Nil(t, err)

	out := Concat([]*Buffer{one, three})
	assert.Equal(t, "010203", out.ToHex())
	assert.Equal(t, 0, out.ROffset())
	assert.Equal(t, 3, out.WOffset())

	// drained and nil sources are skipped
	drained := Wrap([]byte{9})
	require.Nil(t, drained.SetROffset(1))
	out = Concat([]*Buffer{drained, nil, one})
	assert.Equal(t, "0102", out.ToHex())

	empty := Concat(nil)
	assert.Equal(t, 0, empty.Cap())
}

func TestToBytes(t *testing.T) {
	b := Wrap([]byte{1, 2})
	view := b.ToBytes(false)
	view[0] = 9
	assert.Equal(t, byte(9), b.buf[0])

	cp := b.ToBytes(true)
	cp[0] = 1
	assert.Equal(t, byte(9), b.buf[0])

	b.Reset()
	assert.Nil(t, b.Bytes())
}
