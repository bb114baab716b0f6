package smartbuffer

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Metric selects the unit bounding a UTF-8 string read.
type Metric int

const (
	// MetricChars bounds the read by decoded code points.
	MetricChars Metric = iota
	// MetricBytes bounds the read by raw bytes, independent of code point
	// boundaries.
	MetricBytes
)

// Encoding names a bytes/string conversion.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingHex
	EncodingBase64
	// EncodingBinary maps one byte to one code point 0-255.
	EncodingBinary
	// EncodingDebug is the annotated hex format of ToDebug/FromDebug.
	EncodingDebug
)

// WriteUTF8String appends s as UTF-8 bytes at the write cursor and returns
// the byte count. Invalid UTF-8 input fails when asserting.
func (b *Buffer) WriteUTF8String(s string) (int, error) {
	n, err := b.WriteUTF8StringAt(s, b.woffset)
	if err != nil {
		return 0, err
	}
	b.woffset += n
	return n, nil
}

func (b *Buffer) WriteUTF8StringAt(s string, offset int) (int, error) {
	if !b.noAssert && !utf8.ValidString(s) {
		return 0, errors.Wrap(ErrType, "illegal str: not valid UTF-8")
	}
	if err := b.checkWrite(offset, len(s)); err != nil {
		return 0, err
	}
	return copy(b.buf[offset:], s), nil
}

// WriteString makes Buffer an io.StringWriter, it is WriteUTF8String.
func (b *Buffer) WriteString(s string) (int, error) {
	return b.WriteUTF8String(s)
}

// ReadUTF8String consumes a string bounded by n units of the given metric at
// the read cursor.
func (b *Buffer) ReadUTF8String(n int, metric Metric) (string, error) {
	s, c, err := b.ReadUTF8StringAt(n, metric, b.roffset)
	if err != nil {
		return "", err
	}
	b.roffset += c
	return s, nil
}

// ReadUTF8StringAt reads like ReadUTF8String at an explicit offset and also
// returns the byte count consumed.
func (b *Buffer) ReadUTF8StringAt(n int, metric Metric, offset int) (string, int, error) {
	if !b.noAssert && n < 0 {
		return "", 0, errors.Wrapf(ErrType, "illegal length: %d", n)
	}
	switch metric {
	case MetricBytes:
		if err := b.checkRead(offset, n); err != nil {
			return "", 0, err
		}
		return string(b.buf[offset : offset+n]), n, nil

	case MetricChars:
		off := offset
		for i := 0; i < n; i++ {
			if off < 0 || off >= len(b.buf) {
				if b.noAssert {
					break
				}
				return "", 0, errors.Wrapf(ErrTruncated, "utf8 string: %d of %d chars", i, n)
			}
			r, size := utf8.DecodeRune(b.buf[off:])
			if r == utf8.RuneError && size == 1 && !b.noAssert {
				if !utf8.FullRune(b.buf[off:]) {
					return "", 0, errors.Wrapf(ErrTruncated, "utf8 string: incomplete char at %d", off)
				}
				return "", 0, errors.Wrapf(ErrType, "illegal byte 0x%02X at %d", b.buf[off], off)
			}
			off += size
		}
		return string(b.buf[offset:off]), off - offset, nil

	default:
		return "", 0, errors.Wrapf(ErrType, "illegal metric: %d", metric)
	}
}

// WriteCString appends s as NUL terminated UTF-8. s must not contain NUL
// itself. The returned count includes the terminator.
func (b *Buffer) WriteCString(s string) (int, error) {
	n, err := b.WriteCStringAt(s, b.woffset)
	if err != nil {
		return 0, err
	}
	b.woffset += n
	return n, nil
}

func (b *Buffer) WriteCStringAt(s string, offset int) (int, error) {
	if !b.noAssert {
		if strings.IndexByte(s, 0) >= 0 {
			return 0, errors.Wrap(ErrType, "illegal str: contains NUL characters")
		}
		if !utf8.ValidString(s) {
			return 0, errors.Wrap(ErrType, "illegal str: not valid UTF-8")
		}
	}
	if err := b.checkWrite(offset, len(s)+1); err != nil {
		return 0, err
	}
	n := copy(b.buf[offset:], s)
	b.buf[offset+n] = 0
	return n + 1, nil
}

// ReadCString consumes bytes up to and including the next NUL at the read
// cursor. A store ending before the terminator is a range error.
func (b *Buffer) ReadCString() (string, error) {
	s, c, err := b.ReadCStringAt(b.roffset)
	if err != nil {
		return "", err
	}
	b.roffset += c
	return s, nil
}

func (b *Buffer) ReadCStringAt(offset int) (string, int, error) {
	if err := b.checkRead(offset, 0); err != nil {
		return "", 0, err
	}
	for i := offset; i < len(b.buf); i++ {
		if b.buf[i] == 0 {
			return string(b.buf[offset:i]), i - offset + 1, nil
		}
	}
	if b.noAssert {
		return string(b.buf[offset:]), len(b.buf) - offset, nil
	}
	return "", 0, errors.Wrapf(ErrTruncated, "cstring at %d: no NUL terminator", offset)
}

// WriteVString appends a varint32 byte length prefix followed by the UTF-8
// bytes of s.
func (b *Buffer) WriteVString(s string) (int, error) {
	n, err := b.WriteVStringAt(s, b.woffset)
	if err != nil {
		return 0, err
	}
	b.woffset += n
	return n, nil
}

func (b *Buffer) WriteVStringAt(s string, offset int) (int, error) {
	if !b.noAssert && !utf8.ValidString(s) {
		return 0, errors.Wrap(ErrType, "illegal str: not valid UTF-8")
	}
	prefix := CalculateVarint32(int32(len(s)))
	if err := b.checkWrite(offset, prefix+len(s)); err != nil {
		return 0, err
	}
	n, err := b.WriteVarint32At(int32(len(s)), offset)
	if err != nil {
		return 0, err
	}
	return n + copy(b.buf[offset+n:], s), nil
}

// ReadVString consumes a varint32 length prefixed string at the read cursor.
func (b *Buffer) ReadVString() (string, error) {
	s, c, err := b.ReadVStringAt(b.roffset)
	if err != nil {
		return "", err
	}
	b.roffset += c
	return s, nil
}

func (b *Buffer) ReadVStringAt(offset int) (string, int, error) {
	length, n, err := b.ReadVarint32At(offset)
	if err != nil {
		return "", 0, err
	}
	s, c, err := b.ReadUTF8StringAt(int(length), MetricBytes, offset+n)
	if err != nil {
		return "", 0, err
	}
	return s, n + c, nil
}

// WriteIString appends a fixed uint32 big-endian byte length prefix followed
// by the UTF-8 bytes of s.
func (b *Buffer) WriteIString(s string) (int, error) {
	n, err := b.WriteIStringAt(s, b.woffset)
	if err != nil {
		return 0, err
	}
	b.woffset += n
	return n, nil
}

func (b *Buffer) WriteIStringAt(s string, offset int) (int, error) {
	if !b.noAssert && !utf8.ValidString(s) {
		return 0, errors.Wrap(ErrType, "illegal str: not valid UTF-8")
	}
	if err := b.checkWrite(offset, 4+len(s)); err != nil {
		return 0, err
	}
	if err := b.WriteUint32BEAt(uint32(len(s)), offset); err != nil {
		return 0, err
	}
	return 4 + copy(b.buf[offset+4:], s), nil
}

// ReadIString consumes a uint32 big-endian length prefixed string at the read
// cursor.
func (b *Buffer) ReadIString() (string, error) {
	s, c, err := b.ReadIStringAt(b.roffset)
	if err != nil {
		return "", err
	}
	b.roffset += c
	return s, nil
}

func (b *Buffer) ReadIStringAt(offset int) (string, int, error) {
	length, err := b.ReadUint32BEAt(offset)
	if err != nil {
		return "", 0, err
	}
	s, c, err := b.ReadUTF8StringAt(int(length), MetricBytes, offset+4)
	if err != nil {
		return "", 0, err
	}
	return s, 4 + c, nil
}

// ToString renders the readable region in the named encoding. EncodingDebug
// renders the whole store with cursor markers instead.
func (b *Buffer) ToString(enc Encoding) (string, error) {
	switch enc {
	case EncodingUTF8:
		return b.ToUTF8(), nil
	case EncodingHex:
		return b.ToHex(), nil
	case EncodingBase64:
		return b.ToBase64(), nil
	case EncodingBinary:
		return b.ToBinary(), nil
	case EncodingDebug:
		return b.ToDebug(), nil
	default:
		return "", errors.Wrapf(ErrType, "illegal encoding: %d", enc)
	}
}

func (b *Buffer) readable() []byte {
	if b.woffset <= b.roffset {
		return nil
	}
	return b.buf[b.roffset:b.woffset]
}

func (b *Buffer) ToUTF8() string {
	return string(b.readable())
}

func (b *Buffer) ToHex() string {
	return hex.EncodeToString(b.readable())
}

func (b *Buffer) ToBase64() string {
	return base64.StdEncoding.EncodeToString(b.readable())
}

func (b *Buffer) ToBinary() string {
	var sb strings.Builder
	for _, by := range b.readable() {
		sb.WriteRune(rune(by))
	}
	return sb.String()
}

// FromString decodes s in the named encoding into a fresh buffer with
// roffset 0 and woffset at the decoded length.
func FromString(s string, enc Encoding) (*Buffer, error) {
	switch enc {
	case EncodingUTF8:
		return FromUTF8(s)
	case EncodingHex:
		return FromHex(s)
	case EncodingBase64:
		return FromBase64(s)
	case EncodingBinary:
		return FromBinary(s)
	case EncodingDebug:
		return FromDebug(s, false)
	default:
		return nil, errors.Wrapf(ErrType, "illegal encoding: %d", enc)
	}
}

func FromUTF8(s string) (*Buffer, error) {
	if !utf8.ValidString(s) {
		return nil, errors.Wrap(ErrType, "illegal str: not valid UTF-8")
	}
	return &Buffer{buf: []byte(s), woffset: len(s)}, nil
}

func FromHex(s string) (*Buffer, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrType, "illegal hex str %q", s)
	}
	return &Buffer{buf: buf, woffset: len(buf)}, nil
}

func FromBase64(s string) (*Buffer, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrType, "illegal base64 str %q", s)
	}
	return &Buffer{buf: buf, woffset: len(buf)}, nil
}

func FromBinary(s string) (*Buffer, error) {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, errors.Wrapf(ErrType, "illegal binary char %q", r)
		}
		buf = append(buf, byte(r))
	}
	return &Buffer{buf: buf, woffset: len(buf)}, nil
}
