// Package long provides a 64 bit integer value with runtime chosen signedness,
// exchanged with the buffer codecs as two 32 bit words.
package long

import (
	"strconv"

	"github.com/pkg/errors"
)

// Long is a 64 bit integer tagged with its signedness. The zero value is
// unsigned zero. Values are immutable, every operation returns a new Long.
type Long struct {
	bits   uint64
	signed bool
}

var (
	// Zero is the signed zero value.
	Zero = Long{0, true}
	// UZero is the unsigned zero value.
	UZero = Long{0, false}
)

func FromBits(bits uint64, signed bool) Long {
	return Long{bits: bits, signed: signed}
}

// FromWords composes a Long from its low and high 32 bit words.
func FromWords(lo, hi uint32, signed bool) Long {
	return Long{bits: uint64(hi)<<32 | uint64(lo), signed: signed}
}

func FromInt64(v int64) Long {
	return Long{bits: uint64(v), signed: true}
}

func FromUint64(v uint64) Long {
	return Long{bits: v, signed: false}
}

// FromFloat64 truncates f toward zero. NaN maps to zero, values beyond the
// 64 bit range saturate.
func FromFloat64(f float64, signed bool) Long {
	if f != f { // NaN
		return Long{0, signed}
	}
	if signed {
		switch {
		case f <= -9223372036854775808:
			return Long{1 << 63, true}
		case f >= 9223372036854775807:
			return Long{1<<63 - 1, true}
		}
		return Long{uint64(int64(f)), true}
	}
	switch {
	case f <= 0:
		return Long{0, false}
	case f >= 18446744073709551615:
		return Long{1<<64 - 1, false}
	}
	return Long{uint64(f), false}
}

// FromString parses a base 10 value.
func FromString(s string, signed bool) (Long, error) {
	if signed {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Zero, errors.Wrapf(err, "illegal long string %q", s)
		}
		return FromInt64(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return UZero, errors.Wrapf(err, "illegal long string %q", s)
	}
	return FromUint64(v), nil
}

// Lo returns the low 32 bit word.
func (l Long) Lo() uint32 { return uint32(l.bits) }

// Hi returns the high 32 bit word.
func (l Long) Hi() uint32 { return uint32(l.bits >> 32) }

func (l Long) Bits() uint64 { return l.bits }

func (l Long) Signed() bool { return l.signed }

func (l Long) Int64() int64 { return int64(l.bits) }

func (l Long) Uint64() uint64 { return l.bits }

func (l Long) Float64() float64 {
	if l.signed {
		return float64(int64(l.bits))
	}
	return float64(l.bits)
}

// ToSigned reinterprets the same bits as a signed value.
func (l Long) ToSigned() Long { return Long{l.bits, true} }

// ToUnsigned reinterprets the same bits as an unsigned value.
func (l Long) ToUnsigned() Long { return Long{l.bits, false} }

func (l Long) ShiftLeft(n uint) Long {
	return Long{l.bits << (n & 63), l.signed}
}

// ShiftRight is an arithmetic shift when the value is signed, logical
// otherwise.
func (l Long) ShiftRight(n uint) Long {
	if l.signed {
		return Long{uint64(int64(l.bits) >> (n & 63)), true}
	}
	return Long{l.bits >> (n & 63), false}
}

// ShiftRightUnsigned always shifts in zero bits, signedness is kept.
func (l Long) ShiftRightUnsigned(n uint) Long {
	return Long{l.bits >> (n & 63), l.signed}
}

func (l Long) Xor(o Long) Long {
	return Long{l.bits ^ o.bits, l.signed}
}

func (l Long) And(o Long) Long {
	return Long{l.bits & o.bits, l.signed}
}

// Neg returns the two's complement negation.
func (l Long) Neg() Long {
	return Long{-l.bits, l.signed}
}

func (l Long) IsZero() bool { return l.bits == 0 }

// ZigZagEncode maps a signed value to the unsigned zig-zag form,
// (v<<1) xor (v>>63) with an arithmetic right shift.
func (l Long) ZigZagEncode() Long {
	return l.ToSigned().ShiftLeft(1).Xor(l.ToSigned().ShiftRight(63)).ToUnsigned()
}

// ZigZagDecode maps the unsigned zig-zag form back to the signed value,
// (v>>>1) xor -(v&1).
func (l Long) ZigZagDecode() Long {
	return l.ShiftRightUnsigned(1).Xor(l.And(FromBits(1, l.signed)).Neg()).ToSigned()
}

// String renders the value in base 10 honoring signedness.
func (l Long) String() string {
	if l.signed {
		return strconv.FormatInt(int64(l.bits), 10)
	}
	return strconv.FormatUint(l.bits, 10)
}
