package smartbuffer

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/overphoenix/smartbuffer/long"
)

// Fixed width integer codec. Every width comes in a relative form advancing
// the owning cursor and an absolute ...At form leaving both cursors alone.
// Signed values use two's complement, 64 bit values are the two 32 bit halves
// placed according to the byte order.

func (b *Buffer) WriteUint8(v uint8) error {
	if err := b.WriteUint8At(v, b.woffset); err != nil {
		return err
	}
	b.woffset++
	return nil
}

func (b *Buffer) WriteUint8At(v uint8, offset int) error {
	if err := b.checkWrite(offset, 1); err != nil {
		return err
	}
	b.buf[offset] = v
	return nil
}

func (b *Buffer) WriteInt8(v int8) error {
	return b.WriteUint8(uint8(v))
}

func (b *Buffer) WriteInt8At(v int8, offset int) error {
	return b.WriteUint8At(uint8(v), offset)
}

func (b *Buffer) ReadUint8() (uint8, error) {
	v, err := b.ReadUint8At(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset++
	return v, nil
}

func (b *Buffer) ReadUint8At(offset int) (uint8, error) {
	if err := b.checkRead(offset, 1); err != nil {
		return 0, err
	}
	return b.buf[offset], nil
}

func (b *Buffer) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

func (b *Buffer) ReadInt8At(offset int) (int8, error) {
	v, err := b.ReadUint8At(offset)
	return int8(v), err
}

func (b *Buffer) WriteUint16LE(v uint16) error {
	if err := b.WriteUint16LEAt(v, b.woffset); err != nil {
		return err
	}
	b.woffset += 2
	return nil
}

func (b *Buffer) WriteUint16LEAt(v uint16, offset int) error {
	if err := b.checkWrite(offset, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b.buf[offset:], v)
	return nil
}

func (b *Buffer) WriteUint16BE(v uint16) error {
	if err := b.WriteUint16BEAt(v, b.woffset); err != nil {
		return err
	}
	b.woffset += 2
	return nil
}

func (b *Buffer) WriteUint16BEAt(v uint16, offset int) error {
	if err := b.checkWrite(offset, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b.buf[offset:], v)
	return nil
}

func (b *Buffer) WriteInt16LE(v int16) error { return b.WriteUint16LE(uint16(v)) }

func (b *Buffer) WriteInt16LEAt(v int16, offset int) error {
	return b.WriteUint16LEAt(uint16(v), offset)
}

func (b *Buffer) WriteInt16BE(v int16) error { return b.WriteUint16BE(uint16(v)) }

func (b *Buffer) WriteInt16BEAt(v int16, offset int) error {
	return b.WriteUint16BEAt(uint16(v), offset)
}

func (b *Buffer) ReadUint16LE() (uint16, error) {
	v, err := b.ReadUint16LEAt(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset += 2
	return v, nil
}

func (b *Buffer) ReadUint16LEAt(offset int) (uint16, error) {
	if err := b.checkRead(offset, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b.buf[offset:]), nil
}

func (b *Buffer) ReadUint16BE() (uint16, error) {
	v, err := b.ReadUint16BEAt(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset += 2
	return v, nil
}

func (b *Buffer) ReadUint16BEAt(offset int) (uint16, error) {
	if err := b.checkRead(offset, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.buf[offset:]), nil
}

func (b *Buffer) ReadInt16LE() (int16, error) {
	v, err := b.ReadUint16LE()
	return int16(v), err
}

func (b *Buffer) ReadInt16LEAt(offset int) (int16, error) {
	v, err := b.ReadUint16LEAt(offset)
	return int16(v), err
}

func (b *Buffer) ReadInt16BE() (int16, error) {
	v, err := b.ReadUint16BE()
	return int16(v), err
}

func (b *Buffer) ReadInt16BEAt(offset int) (int16, error) {
	v, err := b.ReadUint16BEAt(offset)
	return int16(v), err
}

// 24 bit values travel in the low three bytes of a uint32/int32. Writes
// validate the value fits when asserting.

func (b *Buffer) WriteUint24LE(v uint32) error {
	if err := b.WriteUint24LEAt(v, b.woffset); err != nil {
		return err
	}
	b.woffset += 3
	return nil
}

func (b *Buffer) WriteUint24LEAt(v uint32, offset int) error {
	if err := b.checkUint24(v); err != nil {
		return err
	}
	if err := b.checkWrite(offset, 3); err != nil {
		return err
	}
	b.buf[offset] = byte(v)
	b.buf[offset+1] = byte(v >> 8)
	b.buf[offset+2] = byte(v >> 16)
	return nil
}

func (b *Buffer) WriteUint24BE(v uint32) error {
	if err := b.WriteUint24BEAt(v, b.woffset); err != nil {
		return err
	}
	b.woffset += 3
	return nil
}

func (b *Buffer) WriteUint24BEAt(v uint32, offset int) error {
	if err := b.checkUint24(v); err != nil {
		return err
	}
	if err := b.checkWrite(offset, 3); err != nil {
		return err
	}
	b.buf[offset] = byte(v >> 16)
	b.buf[offset+1] = byte(v >> 8)
	b.buf[offset+2] = byte(v)
	return nil
}

func (b *Buffer) WriteInt24LE(v int32) error {
	if err := b.checkInt24(v); err != nil {
		return err
	}
	return b.WriteUint24LE(uint32(v) & 0xFFFFFF)
}

func (b *Buffer) WriteInt24LEAt(v int32, offset int) error {
	if err := b.checkInt24(v); err != nil {
		return err
	}
	return b.WriteUint24LEAt(uint32(v)&0xFFFFFF, offset)
}

func (b *Buffer) WriteInt24BE(v int32) error {
	if err := b.checkInt24(v); err != nil {
		return err
	}
	return b.WriteUint24BE(uint32(v) & 0xFFFFFF)
}

func (b *Buffer) WriteInt24BEAt(v int32, offset int) error {
	if err := b.checkInt24(v); err != nil {
		return err
	}
	return b.WriteUint24BEAt(uint32(v)&0xFFFFFF, offset)
}

func (b *Buffer) ReadUint24LE() (uint32, error) {
	v, err := b.ReadUint24LEAt(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset += 3
	return v, nil
}

func (b *Buffer) ReadUint24LEAt(offset int) (uint32, error) {
	if err := b.checkRead(offset, 3); err != nil {
		return 0, err
	}
	return uint32(b.buf[offset]) | uint32(b.buf[offset+1])<<8 | uint32(b.buf[offset+2])<<16, nil
}

func (b *Buffer) ReadUint24BE() (uint32, error) {
	v, err := b.ReadUint24BEAt(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset += 3
	return v, nil
}

func (b *Buffer) ReadUint24BEAt(offset int) (uint32, error) {
	if err := b.checkRead(offset, 3); err != nil {
		return 0, err
	}
	return uint32(b.buf[offset])<<16 | uint32(b.buf[offset+1])<<8 | uint32(b.buf[offset+2]), nil
}

func (b *Buffer) ReadInt24LE() (int32, error) {
	v, err := b.ReadUint24LE()
	return signExtend24(v), err
}

func (b *Buffer) ReadInt24LEAt(offset int) (int32, error) {
	v, err := b.ReadUint24LEAt(offset)
	return signExtend24(v), err
}

func (b *Buffer) ReadInt24BE() (int32, error) {
	v, err := b.ReadUint24BE()
	return signExtend24(v), err
}

func (b *Buffer) ReadInt24BEAt(offset int) (int32, error) {
	v, err := b.ReadUint24BEAt(offset)
	return signExtend24(v), err
}

func signExtend24(v uint32) int32 {
	return int32(v<<8) >> 8
}

func (b *Buffer) checkUint24(v uint32) error {
	if !b.noAssert && v > 0xFFFFFF {
		return errors.Wrapf(ErrType, "illegal uint24 value: %d", v)
	}
	return nil
}

func (b *Buffer) checkInt24(v int32) error {
	if !b.noAssert && (v < -0x800000 || v > 0x7FFFFF) {
		return errors.Wrapf(ErrType, "illegal int24 value: %d", v)
	}
	return nil
}

func (b *Buffer) WriteUint32LE(v uint32) error {
	if err := b.WriteUint32LEAt(v, b.woffset); err != nil {
		return err
	}
	b.woffset += 4
	return nil
}

func (b *Buffer) WriteUint32LEAt(v uint32, offset int) error {
	if err := b.checkWrite(offset, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b.buf[offset:], v)
	return nil
}

func (b *Buffer) WriteUint32BE(v uint32) error {
	if err := b.WriteUint32BEAt(v, b.woffset); err != nil {
		return err
	}
	b.woffset += 4
	return nil
}

func (b *Buffer) WriteUint32BEAt(v uint32, offset int) error {
	if err := b.checkWrite(offset, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b.buf[offset:], v)
	return nil
}

func (b *Buffer) WriteInt32LE(v int32) error { return b.WriteUint32LE(uint32(v)) }

func (b *Buffer) WriteInt32LEAt(v int32, offset int) error {
	return b.WriteUint32LEAt(uint32(v), offset)
}

func (b *Buffer) WriteInt32BE(v int32) error { return b.WriteUint32BE(uint32(v)) }

func (b *Buffer) WriteInt32BEAt(v int32, offset int) error {
	return b.WriteUint32BEAt(uint32(v), offset)
}

func (b *Buffer) ReadUint32LE() (uint32, error) {
	v, err := b.ReadUint32LEAt(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset += 4
	return v, nil
}

func (b *Buffer) ReadUint32LEAt(offset int) (uint32, error) {
	if err := b.checkRead(offset, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b.buf[offset:]), nil
}

func (b *Buffer) ReadUint32BE() (uint32, error) {
	v, err := b.ReadUint32BEAt(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset += 4
	return v, nil
}

func (b *Buffer) ReadUint32BEAt(offset int) (uint32, error) {
	if err := b.checkRead(offset, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b.buf[offset:]), nil
}

func (b *Buffer) ReadInt32LE() (int32, error) {
	v, err := b.ReadUint32LE()
	return int32(v), err
}

func (b *Buffer) ReadInt32LEAt(offset int) (int32, error) {
	v, err := b.ReadUint32LEAt(offset)
	return int32(v), err
}

func (b *Buffer) ReadInt32BE() (int32, error) {
	v, err := b.ReadUint32BE()
	return int32(v), err
}

func (b *Buffer) ReadInt32BEAt(offset int) (int32, error) {
	v, err := b.ReadUint32BEAt(offset)
	return int32(v), err
}

func (b *Buffer) WriteUint64LE(v uint64) error {
	if err := b.WriteUint64LEAt(v, b.woffset); err != nil {
		return err
	}
	b.woffset += 8
	return nil
}

func (b *Buffer) WriteUint64LEAt(v uint64, offset int) error {
	if err := b.checkWrite(offset, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b.buf[offset:], v)
	return nil
}

func (b *Buffer) WriteUint64BE(v uint64) error {
	if err := b.WriteUint64BEAt(v, b.woffset); err != nil {
		return err
	}
	b.woffset += 8
	return nil
}

func (b *Buffer) WriteUint64BEAt(v uint64, offset int) error {
	if err := b.checkWrite(offset, 8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b.buf[offset:], v)
	return nil
}

func (b *Buffer) WriteInt64LE(v int64) error { return b.WriteUint64LE(uint64(v)) }

func (b *Buffer) WriteInt64LEAt(v int64, offset int) error {
	return b.WriteUint64LEAt(uint64(v), offset)
}

func (b *Buffer) WriteInt64BE(v int64) error { return b.WriteUint64BE(uint64(v)) }

func (b *Buffer) WriteInt64BEAt(v int64, offset int) error {
	return b.WriteUint64BEAt(uint64(v), offset)
}

func (b *Buffer) ReadUint64LE() (uint64, error) {
	v, err := b.ReadUint64LEAt(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset += 8
	return v, nil
}

func (b *Buffer) ReadUint64LEAt(offset int) (uint64, error) {
	if err := b.checkRead(offset, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b.buf[offset:]), nil
}

func (b *Buffer) ReadUint64BE() (uint64, error) {
	v, err := b.ReadUint64BEAt(b.roffset)
	if err != nil {
		return 0, err
	}
	b.roffset += 8
	return v, nil
}

func (b *Buffer) ReadUint64BEAt(offset int) (uint64, error) {
	if err := b.checkRead(offset, 8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b.buf[offset:]), nil
}

func (b *Buffer) ReadInt64LE() (int64, error) {
	v, err := b.ReadUint64LE()
	return int64(v), err
}

func (b *Buffer) ReadInt64LEAt(offset int) (int64, error) {
	v, err := b.ReadUint64LEAt(offset)
	return int64(v), err
}

func (b *Buffer) ReadInt64BE() (int64, error) {
	v, err := b.ReadUint64BE()
	return int64(v), err
}

func (b *Buffer) ReadInt64BEAt(offset int) (int64, error) {
	v, err := b.ReadUint64BEAt(offset)
	return int64(v), err
}

// Long variants exchange 64 bit values as two 32 bit words with a signedness
// tag instead of a native integer.

func (b *Buffer) WriteLongLE(l long.Long) error {
	return b.WriteUint64LE(l.Bits())
}

func (b *Buffer) WriteLongLEAt(l long.Long, offset int) error {
	return b.WriteUint64LEAt(l.Bits(), offset)
}

func (b *Buffer) WriteLongBE(l long.Long) error {
	return b.WriteUint64BE(l.Bits())
}

func (b *Buffer) WriteLongBEAt(l long.Long, offset int) error {
	return b.WriteUint64BEAt(l.Bits(), offset)
}

func (b *Buffer) ReadLongLE(signed bool) (long.Long, error) {
	l, err := b.ReadLongLEAt(signed, b.roffset)
	if err != nil {
		return l, err
	}
	b.roffset += 8
	return l, nil
}

func (b *Buffer) ReadLongLEAt(signed bool, offset int) (long.Long, error) {
	if err := b.checkRead(offset, 8); err != nil {
		return long.FromBits(0, signed), err
	}
	lo := binary.LittleEndian.Uint32(b.buf[offset:])
	hi := binary.LittleEndian.Uint32(b.buf[offset+4:])
	return long.FromWords(lo, hi, signed), nil
}

func (b *Buffer) ReadLongBE(signed bool) (long.Long, error) {
	l, err := b.ReadLongBEAt(signed, b.roffset)
	if err != nil {
		return l, err
	}
	b.roffset += 8
	return l, nil
}

func (b *Buffer) ReadLongBEAt(signed bool, offset int) (long.Long, error) {
	if err := b.checkRead(offset, 8); err != nil {
		return long.FromBits(0, signed), err
	}
	hi := binary.BigEndian.Uint32(b.buf[offset:])
	lo := binary.BigEndian.Uint32(b.buf[offset+4:])
	return long.FromWords(lo, hi, signed), nil
}
