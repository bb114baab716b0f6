package smartbuffer

import (
	"io"

	"github.com/pkg/errors"
)

// Structural operations over the backing store. Byte slices handed out by
// Bytes, Slice and WrapView alias the store until a growth reallocates it.

// Wrap copies p into a fresh buffer with roffset 0 and woffset at len(p).
func Wrap(p []byte) *Buffer {
	buf := make([]byte, len(p))
	copy(buf, p)
	return &Buffer{buf: buf, woffset: len(p)}
}

// WrapView makes a buffer over p without copying. The buffer and the caller
// alias the same bytes.
func WrapView(p []byte) *Buffer {
	return &Buffer{buf: p, woffset: len(p)}
}

// Concat normalizes the readable region of every source into one freshly
// allocated buffer, in order. Sources without readable bytes are skipped, an
// empty input yields a zero capacity buffer.
func Concat(bufs []*Buffer) *Buffer {
	total := 0
	for _, s := range bufs {
		if s != nil && s.Len() > 0 {
			total += s.Len()
		}
	}
	out := &Buffer{buf: make([]byte, total)}
	for _, s := range bufs {
		if s != nil && s.Len() > 0 {
			out.woffset += copy(out.buf[out.woffset:], s.readable())
		}
	}
	return out
}

// Bytes returns the readable region as a view sharing the store. It is nil
// when nothing is readable.
func (b *Buffer) Bytes() []byte {
	return b.readable()
}

// ToBytes returns the readable region, as a physical copy when forceCopy is
// true and as a view otherwise.
func (b *Buffer) ToBytes(forceCopy bool) []byte {
	r := b.readable()
	if !forceCopy {
		return r
	}
	out := make([]byte, len(r))
	copy(out, r)
	return out
}

// Write appends p at the write cursor, growing the store as needed. It
// implements io.Writer and never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b.ensure(b.woffset + len(p))
	n := copy(b.buf[b.woffset:], p)
	b.woffset += n
	return n, nil
}

// Read consumes readable bytes into p, implementing io.Reader. It reports
// io.EOF once nothing is readable.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.Len() <= 0 {
		return 0, io.EOF
	}
	n := copy(p, b.readable())
	b.roffset += n
	return n, nil
}

// WriteByte appends a single byte at the write cursor.
func (b *Buffer) WriteByte(c byte) error {
	return b.WriteUint8(c)
}

// ReadByte consumes one readable byte, io.EOF once nothing is readable.
func (b *Buffer) ReadByte() (byte, error) {
	if b.Len() <= 0 {
		return 0, io.EOF
	}
	c := b.buf[b.roffset]
	b.roffset++
	return c, nil
}

// AppendBytes appends p at the write cursor.
func (b *Buffer) AppendBytes(p []byte) error {
	_, err := b.Write(p)
	return err
}

// AppendBytesAt overwrites the store with p at an explicit offset, growing it
// when needed. Cursors stay put.
func (b *Buffer) AppendBytesAt(p []byte, offset int) error {
	if len(p) == 0 {
		return nil
	}
	if err := b.checkWrite(offset, len(p)); err != nil {
		return err
	}
	copy(b.buf[offset:], p)
	return nil
}

// AppendString decodes s in the named encoding and appends the result.
func (b *Buffer) AppendString(s string, enc Encoding) error {
	src, err := FromString(s, enc)
	if err != nil {
		return err
	}
	return b.AppendBytes(src.readable())
}

func (b *Buffer) AppendStringAt(s string, enc Encoding, offset int) error {
	src, err := FromString(s, enc)
	if err != nil {
		return err
	}
	return b.AppendBytesAt(src.readable(), offset)
}

// AppendBuffer appends the readable region of src. The source cursors are
// not touched.
func (b *Buffer) AppendBuffer(src *Buffer) error {
	return b.AppendBytes(src.readable())
}

func (b *Buffer) AppendBufferAt(src *Buffer, offset int) error {
	return b.AppendBytesAt(src.readable(), offset)
}

// WriteBuffer is AppendBuffer under the write naming.
func (b *Buffer) WriteBuffer(src *Buffer) error {
	return b.AppendBuffer(src)
}

// AppendTo appends this buffer's readable region to target.
func (b *Buffer) AppendTo(target *Buffer) error {
	return target.AppendBuffer(b)
}

// PrependTo prepends this buffer's readable region to target.
func (b *Buffer) PrependTo(target *Buffer) error {
	return target.PrependBuffer(b)
}

// PrependBytes writes p immediately before the read cursor, shifting the
// whole store right when the space in front is short, and moves the read
// cursor to the start of the prepended bytes.
func (b *Buffer) PrependBytes(p []byte) error {
	offset, err := b.prepend(p, b.roffset)
	if err != nil {
		return err
	}
	b.roffset = offset
	return nil
}

// PrependBytesAt writes p immediately before an explicit offset. Cursors
// move only by the shift amount when the store had to be reallocated.
func (b *Buffer) PrependBytesAt(p []byte, offset int) error {
	_, err := b.prepend(p, offset)
	return err
}

func (b *Buffer) PrependString(s string, enc Encoding) error {
	src, err := FromString(s, enc)
	if err != nil {
		return err
	}
	return b.PrependBytes(src.readable())
}

func (b *Buffer) PrependStringAt(s string, enc Encoding, offset int) error {
	src, err := FromString(s, enc)
	if err != nil {
		return err
	}
	return b.PrependBytesAt(src.readable(), offset)
}

func (b *Buffer) PrependBuffer(src *Buffer) error {
	return b.PrependBytes(src.readable())
}

func (b *Buffer) PrependBufferAt(src *Buffer, offset int) error {
	return b.PrependBytesAt(src.readable(), offset)
}

// prepend places p in [offset-len(p), offset), reallocating and shifting the
// store contents right when the front space is insufficient. Both cursors are
// adjusted by the shift. Returns the offset where p begins.
func (b *Buffer) prepend(p []byte, offset int) (int, error) {
	if !b.noAssert {
		if offset < 0 || offset > len(b.buf) {
			return 0, errors.Wrapf(ErrRange, "illegal offset: 0 <= %d <= %d failed", offset, len(b.buf))
		}
	}
	diff := len(p) - offset
	if diff > 0 {
		logger.Tracef("prepend shift %d, store %d -> %d", diff, len(b.buf), len(b.buf)+diff)
		buf := make([]byte, len(b.buf)+diff)
		copy(buf[diff:], b.buf)
		b.buf = buf
		b.roffset += diff
		b.woffset += diff
		offset += diff
	}
	copy(b.buf[offset-len(p):offset], p)
	return offset - len(p), nil
}

// Slice returns a view over [begin, end) sharing the store, with roffset 0
// and woffset at the view capacity.
func (b *Buffer) Slice(begin, end int) (*Buffer, error) {
	if err := b.checkRange(begin, end); err != nil {
		return nil, err
	}
	return &Buffer{buf: b.buf[begin:end:end], woffset: end - begin, noAssert: b.noAssert}, nil
}

// Copy physically copies the readable region into a new buffer and consumes
// it, advancing the read cursor to the write cursor.
func (b *Buffer) Copy() (*Buffer, error) {
	c, err := b.CopyRange(b.roffset, b.woffset)
	if err != nil {
		return nil, err
	}
	b.roffset = b.woffset
	return c, nil
}

// CopyRange physically copies [begin, end) into a new buffer. Cursors stay
// put.
func (b *Buffer) CopyRange(begin, end int) (*Buffer, error) {
	if err := b.checkRange(begin, end); err != nil {
		return nil, err
	}
	buf := make([]byte, end-begin)
	copy(buf, b.buf[begin:end])
	return &Buffer{buf: buf, woffset: end - begin, noAssert: b.noAssert}, nil
}

// CopyTo copies [begin, end) into target at targetOffset. The target is not
// grown and no cursor moves.
func (b *Buffer) CopyTo(target *Buffer, targetOffset, begin, end int) (int, error) {
	if err := b.checkRange(begin, end); err != nil {
		return 0, err
	}
	n := end - begin
	if !target.noAssert {
		if targetOffset < 0 || targetOffset+n > len(target.buf) {
			return 0, errors.Wrapf(ErrRange, "illegal target range: 0 <= %d (+%d) <= %d failed",
				targetOffset, n, len(target.buf))
		}
	}
	copy(target.buf[targetOffset:], b.buf[begin:end])
	return n, nil
}

// CopyToNext copies the readable region into target at its write cursor,
// consuming from this buffer and advancing the target's write cursor.
func (b *Buffer) CopyToNext(target *Buffer) (int, error) {
	n, err := b.CopyTo(target, target.woffset, b.roffset, b.woffset)
	if err != nil {
		return 0, err
	}
	b.roffset += n
	target.woffset += n
	return n, nil
}

// Compact shrinks the store to the readable region, discarding everything
// outside it and resetting the read cursor to zero.
func (b *Buffer) Compact() error {
	return b.CompactRange(b.roffset, b.woffset)
}

// CompactRange shrinks the store to a physical copy of [begin, end).
func (b *Buffer) CompactRange(begin, end int) error {
	if err := b.checkRange(begin, end); err != nil {
		return err
	}
	logger.Tracef("compact [%d, %d) of %d", begin, end, len(b.buf))
	buf := make([]byte, end-begin)
	copy(buf, b.buf[begin:end])
	b.buf = buf
	b.roffset = 0
	b.woffset = end - begin
	return nil
}

// Fill writes value into [woffset, capacity) and advances the write cursor to
// the capacity.
func (b *Buffer) Fill(value byte) error {
	if err := b.FillRange(value, b.woffset, len(b.buf)); err != nil {
		return err
	}
	b.woffset = len(b.buf)
	return nil
}

// FillRange writes value into [begin, end). Cursors stay put.
func (b *Buffer) FillRange(value byte, begin, end int) error {
	if err := b.checkRange(begin, end); err != nil {
		return err
	}
	for i := begin; i < end; i++ {
		b.buf[i] = value
	}
	return nil
}

// Reverse reverses the readable region in place.
func (b *Buffer) Reverse() error {
	return b.ReverseRange(b.roffset, b.woffset)
}

// ReverseRange reverses [begin, end) in place.
func (b *Buffer) ReverseRange(begin, end int) error {
	if err := b.checkRange(begin, end); err != nil {
		return err
	}
	for i, j := begin, end-1; i < j; i, j = i+1, j-1 {
		b.buf[i], b.buf[j] = b.buf[j], b.buf[i]
	}
	return nil
}

func (b *Buffer) checkRange(begin, end int) error {
	if b.noAssert {
		return nil
	}
	if begin < 0 || begin > end || end > len(b.buf) {
		return errors.Wrapf(ErrRange, "illegal range: 0 <= %d <= %d <= %d failed", begin, end, len(b.buf))
	}
	return nil
}
