package smartbuffer

import (
	"github.com/pkg/errors"
)

// Bit sets travel as a varint32 bit count followed by the packed bits,
// LSB first: bit 0 of a byte is 0x01, bit 7 is 0x80.

func (b *Buffer) WriteBitSet(values []bool) (int, error) {
	n, err := b.WriteBitSetAt(values, b.woffset)
	if err != nil {
		return 0, err
	}
	b.woffset += n
	return n, nil
}

func (b *Buffer) WriteBitSetAt(values []bool, offset int) (int, error) {
	prefix := CalculateVarint32(int32(len(values)))
	if err := b.checkWrite(offset, prefix+(len(values)+7)/8); err != nil {
		return 0, err
	}
	n, err := b.WriteVarint32At(int32(len(values)), offset)
	if err != nil {
		return 0, err
	}
	off := offset + n
	var cur byte
	var bit uint
	for _, v := range values {
		if v {
			cur |= 1 << bit
		}
		bit++
		if bit == 8 {
			b.buf[off] = cur
			off++
			cur, bit = 0, 0
		}
	}
	if bit > 0 {
		b.buf[off] = cur
		off++
	}
	return off - offset, nil
}

func (b *Buffer) ReadBitSet() ([]bool, error) {
	values, n, err := b.ReadBitSetAt(b.roffset)
	if err != nil {
		return nil, err
	}
	b.roffset += n
	return values, nil
}

func (b *Buffer) ReadBitSetAt(offset int) ([]bool, int, error) {
	count, n, err := b.ReadVarint32At(offset)
	if err != nil {
		return nil, 0, err
	}
	if count < 0 {
		return nil, 0, errors.Wrapf(ErrType, "illegal bit count: %d", count)
	}
	nbytes := (int(count) + 7) / 8
	if err := b.checkRead(offset+n, nbytes); err != nil {
		return nil, 0, err
	}
	values := make([]bool, count)
	for i := range values {
		values[i] = b.buf[offset+n+i/8]&(1<<uint(i%8)) != 0
	}
	return values, n + nbytes, nil
}
