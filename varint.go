package smartbuffer

import (
	"github.com/pkg/errors"

	"github.com/overphoenix/smartbuffer/long"
)

// Base-128 varints, 7 data bits per byte, MSB flags continuation. 32 bit
// values take 1-5 bytes, 64 bit values 1-10. The zig-zag forms are thin
// wrappers mapping signed values to the unsigned encoding so small magnitudes
// stay short.

// CalculateVarint32 returns the encoded size of v in bytes, 1-5.
func CalculateVarint32(v int32) int {
	u := uint32(v)
	switch {
	case u < 1<<7:
		return 1
	case u < 1<<14:
		return 2
	case u < 1<<21:
		return 3
	case u < 1<<28:
		return 4
	default:
		return 5
	}
}

// CalculateVarint64 returns the encoded size of v in bytes, 1-10. The value
// is split into two 28 bit parts and one 8 bit part from its low and high
// words.
func CalculateVarint64(v int64) int {
	l := long.FromInt64(v)
	lo, hi := l.Lo(), l.Hi()
	part0 := lo & 0xFFFFFFF
	part1 := (lo>>28 | hi<<4) & 0xFFFFFFF
	part2 := hi >> 24 & 0xFF
	if part2 == 0 {
		if part1 == 0 {
			switch {
			case part0 < 1<<7:
				return 1
			case part0 < 1<<14:
				return 2
			case part0 < 1<<21:
				return 3
			default:
				return 4
			}
		}
		switch {
		case part1 < 1<<7:
			return 5
		case part1 < 1<<14:
			return 6
		case part1 < 1<<21:
			return 7
		default:
			return 8
		}
	}
	if part2 < 1<<7 {
		return 9
	}
	return 10
}

// ZigZagEncode32 maps a signed value to its unsigned zig-zag form,
// (n<<1) xor (n>>31).
func ZigZagEncode32(n int32) uint32 {
	return uint32(n<<1 ^ n>>31)
}

// ZigZagDecode32 maps the unsigned zig-zag form back, (n>>>1) xor -(n&1).
func ZigZagDecode32(n uint32) int32 {
	return int32(n>>1) ^ -int32(n&1)
}

func (b *Buffer) WriteVarint32(v int32) (int, error) {
	n, err := b.WriteVarint32At(v, b.woffset)
	if err != nil {
		return 0, err
	}
	b.woffset += n
	return n, nil
}

func (b *Buffer) WriteVarint32At(v int32, offset int) (int, error) {
	size := CalculateVarint32(v)
	if err := b.checkWrite(offset, size); err != nil {
		return 0, err
	}
	u := uint32(v)
	n := 0
	for u >= 0x80 {
		b.buf[offset+n] = byte(u) | 0x80
		u >>= 7
		n++
	}
	b.buf[offset+n] = byte(u)
	return n + 1, nil
}

func (b *Buffer) WriteVarint32ZigZag(v int32) (int, error) {
	return b.WriteVarint32(int32(ZigZagEncode32(v)))
}

func (b *Buffer) WriteVarint32ZigZagAt(v int32, offset int) (int, error) {
	return b.WriteVarint32At(int32(ZigZagEncode32(v)), offset)
}

// ReadVarint32 decodes a varint at the read cursor and advances it by the
// bytes consumed. On a truncated scan the cursor is left where the failing
// read stopped.
func (b *Buffer) ReadVarint32() (int32, error) {
	v, n, err := b.readVarint32(b.roffset)
	b.roffset += n
	return v, err
}

func (b *Buffer) ReadVarint32At(offset int) (int32, int, error) {
	return b.readVarint32(offset)
}

func (b *Buffer) ReadVarint32ZigZag() (int32, error) {
	v, err := b.ReadVarint32()
	return ZigZagDecode32(uint32(v)), err
}

func (b *Buffer) ReadVarint32ZigZagAt(offset int) (int32, int, error) {
	v, n, err := b.readVarint32(offset)
	return ZigZagDecode32(uint32(v)), n, err
}

// readVarint32 keeps consuming continuation bytes but folds only the first
// five groups into the value, matching 32 bit wraparound. In unchecked mode a
// scan hitting the store end stops there instead of failing.
func (b *Buffer) readVarint32(offset int) (int32, int, error) {
	var value uint32
	c := 0
	for {
		if offset+c >= len(b.buf) || offset < 0 {
			if b.noAssert {
				return int32(value), c, nil
			}
			return int32(value), c, errors.Wrapf(ErrTruncated, "varint32 at %d", offset)
		}
		by := b.buf[offset+c]
		if c < 5 {
			value |= uint32(by&0x7F) << uint(7*c)
		}
		c++
		if by&0x80 == 0 {
			return int32(value), c, nil
		}
	}
}

func (b *Buffer) WriteVarint64(v int64) (int, error) {
	n, err := b.WriteVarint64At(v, b.woffset)
	if err != nil {
		return 0, err
	}
	b.woffset += n
	return n, nil
}

func (b *Buffer) WriteVarint64At(v int64, offset int) (int, error) {
	size := CalculateVarint64(v)
	if err := b.checkWrite(offset, size); err != nil {
		return 0, err
	}
	l := long.FromInt64(v)
	lo, hi := l.Lo(), l.Hi()
	part0 := lo & 0xFFFFFFF
	part1 := (lo>>28 | hi<<4) & 0xFFFFFFF
	part2 := hi >> 24 & 0xFF
	switch size {
	case 10:
		b.buf[offset+9] = byte(part2>>7) & 0x01
		fallthrough
	case 9:
		b.buf[offset+8] = varintByte(part2, size != 9)
		fallthrough
	case 8:
		b.buf[offset+7] = varintByte(part1>>21, size != 8)
		fallthrough
	case 7:
		b.buf[offset+6] = varintByte(part1>>14, size != 7)
		fallthrough
	case 6:
		b.buf[offset+5] = varintByte(part1>>7, size != 6)
		fallthrough
	case 5:
		b.buf[offset+4] = varintByte(part1, size != 5)
		fallthrough
	case 4:
		b.buf[offset+3] = varintByte(part0>>21, size != 4)
		fallthrough
	case 3:
		b.buf[offset+2] = varintByte(part0>>14, size != 3)
		fallthrough
	case 2:
		b.buf[offset+1] = varintByte(part0>>7, size != 2)
		fallthrough
	case 1:
		b.buf[offset] = varintByte(part0, size != 1)
	}
	return size, nil
}

func varintByte(group uint32, more bool) byte {
	if more {
		return byte(group) | 0x80
	}
	return byte(group) & 0x7F
}

func (b *Buffer) WriteVarint64ZigZag(v int64) (int, error) {
	return b.WriteVarint64(long.FromInt64(v).ZigZagEncode().Int64())
}

func (b *Buffer) WriteVarint64ZigZagAt(v int64, offset int) (int, error) {
	return b.WriteVarint64At(long.FromInt64(v).ZigZagEncode().Int64(), offset)
}

// ReadVarint64 decodes a varint of up to ten bytes at the read cursor. A
// continuation bit still set on the tenth byte is a buffer overrun.
func (b *Buffer) ReadVarint64() (int64, error) {
	v, n, err := b.readVarint64(b.roffset)
	b.roffset += n
	return v, err
}

func (b *Buffer) ReadVarint64At(offset int) (int64, int, error) {
	return b.readVarint64(offset)
}

func (b *Buffer) ReadVarint64ZigZag() (int64, error) {
	v, err := b.ReadVarint64()
	return long.FromBits(uint64(v), false).ZigZagDecode().Int64(), err
}

func (b *Buffer) ReadVarint64ZigZagAt(offset int) (int64, int, error) {
	v, n, err := b.readVarint64(offset)
	return long.FromBits(uint64(v), false).ZigZagDecode().Int64(), n, err
}

func (b *Buffer) readVarint64(offset int) (int64, int, error) {
	var part0, part1, part2 uint32
	c := 0
	for {
		if offset+c >= len(b.buf) || offset < 0 {
			if b.noAssert {
				break
			}
			return 0, c, errors.Wrapf(ErrTruncated, "varint64 at %d", offset)
		}
		by := b.buf[offset+c]
		group := uint32(by & 0x7F)
		switch {
		case c < 4:
			part0 |= group << uint(7*c)
		case c < 8:
			part1 |= group << uint(7*(c-4))
		default:
			part2 |= group << uint(7*(c-8))
		}
		c++
		if by&0x80 == 0 {
			break
		}
		if c == 10 {
			if b.noAssert {
				break
			}
			return 0, c, errors.Wrap(ErrOverrun, "varint64")
		}
	}
	lo := part0 | part1<<28
	hi := part1>>4 | part2<<24
	return long.FromWords(lo, hi, true).Int64(), c, nil
}
