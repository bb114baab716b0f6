package smartbuffer

import (
	"math"
)

// Floats delegate to the IEEE-754 bit casts of the math package, so NaN and
// the infinities round-trip bit exact.

func (b *Buffer) WriteFloat32LE(v float32) error {
	return b.WriteUint32LE(math.Float32bits(v))
}

func (b *Buffer) WriteFloat32LEAt(v float32, offset int) error {
	return b.WriteUint32LEAt(math.Float32bits(v), offset)
}

func (b *Buffer) WriteFloat32BE(v float32) error {
	return b.WriteUint32BE(math.Float32bits(v))
}

func (b *Buffer) WriteFloat32BEAt(v float32, offset int) error {
	return b.WriteUint32BEAt(math.Float32bits(v), offset)
}

func (b *Buffer) ReadFloat32LE() (float32, error) {
	v, err := b.ReadUint32LE()
	return math.Float32frombits(v), err
}

func (b *Buffer) ReadFloat32LEAt(offset int) (float32, error) {
	v, err := b.ReadUint32LEAt(offset)
	return math.Float32frombits(v), err
}

func (b *Buffer) ReadFloat32BE() (float32, error) {
	v, err := b.ReadUint32BE()
	return math.Float32frombits(v), err
}

func (b *Buffer) ReadFloat32BEAt(offset int) (float32, error) {
	v, err := b.ReadUint32BEAt(offset)
	return math.Float32frombits(v), err
}

func (b *Buffer) WriteFloat64LE(v float64) error {
	return b.WriteUint64LE(math.Float64bits(v))
}

func (b *Buffer) WriteFloat64LEAt(v float64, offset int) error {
	return b.WriteUint64LEAt(math.Float64bits(v), offset)
}

func (b *Buffer) WriteFloat64BE(v float64) error {
	return b.WriteUint64BE(math.Float64bits(v))
}

func (b *Buffer) WriteFloat64BEAt(v float64, offset int) error {
	return b.WriteUint64BEAt(math.Float64bits(v), offset)
}

func (b *Buffer) ReadFloat64LE() (float64, error) {
	v, err := b.ReadUint64LE()
	return math.Float64frombits(v), err
}

func (b *Buffer) ReadFloat64LEAt(offset int) (float64, error) {
	v, err := b.ReadUint64LEAt(offset)
	return math.Float64frombits(v), err
}

func (b *Buffer) ReadFloat64BE() (float64, error) {
	v, err := b.ReadUint64BE()
	return math.Float64frombits(v), err
}

func (b *Buffer) ReadFloat64BEAt(offset int) (float64, error) {
	v, err := b.ReadUint64BEAt(offset)
	return math.Float64frombits(v), err
}
