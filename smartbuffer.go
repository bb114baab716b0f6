package smartbuffer

import (
	"github.com/pkg/errors"
)

// DefaultCapacity is the store size used when no capacity is given.
const DefaultCapacity = 64

// Buffer is a contiguous byte store with a read cursor and a write cursor.
// Relative operations consume at roffset or produce at woffset and advance
// that cursor, absolute (...At) operations touch neither cursor.
//
// Cursors are not clamped against each other. Forcing roffset past woffset is
// permitted and makes Len negative.
type Buffer struct {
	buf      []byte
	roffset  int
	woffset  int
	noAssert bool
}

// New creates a buffer with the given initial capacity and zero cursors.
// A capacity below zero falls back to DefaultCapacity.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{buf: make([]byte, capacity)}
}

// NewOptions creates a buffer with argument and range checking disabled when
// noAssert is true. With checks disabled the behavior on invalid input is
// undefined.
func NewOptions(capacity int, noAssert bool) *Buffer {
	b := New(capacity)
	b.noAssert = noAssert
	return b
}

// SetNoAssert toggles argument and range checking and returns the buffer.
func (b *Buffer) SetNoAssert(noAssert bool) *Buffer {
	b.noAssert = noAssert
	return b
}

func (b *Buffer) NoAssert() bool { return b.noAssert }

// ROffset returns the read cursor.
func (b *Buffer) ROffset() int { return b.roffset }

// SetROffset moves the read cursor. The value is checked against the store
// bounds only, not against the write cursor.
func (b *Buffer) SetROffset(offset int) error {
	if !b.noAssert {
		if offset < 0 || offset > len(b.buf) {
			return errors.Wrapf(ErrRange, "illegal roffset: 0 <= %d <= %d failed", offset, len(b.buf))
		}
	}
	b.roffset = offset
	return nil
}

// WOffset returns the write cursor.
func (b *Buffer) WOffset() int { return b.woffset }

// SetWOffset moves the write cursor. The value is checked against the store
// bounds only, not against the read cursor.
func (b *Buffer) SetWOffset(offset int) error {
	if !b.noAssert {
		if offset < 0 || offset > len(b.buf) {
			return errors.Wrapf(ErrRange, "illegal woffset: 0 <= %d <= %d failed", offset, len(b.buf))
		}
	}
	b.woffset = offset
	return nil
}

// Len returns the readable byte count, woffset-roffset. It is negative when
// the read cursor was forced past the write cursor.
func (b *Buffer) Len() int { return b.woffset - b.roffset }

// Cap returns the store capacity.
func (b *Buffer) Cap() int { return len(b.buf) }

// Reset moves both cursors back to zero. The store is kept.
func (b *Buffer) Reset() *Buffer {
	b.roffset = 0
	b.woffset = 0
	return b
}

// Skip advances the read cursor by n without reading. n may be negative.
func (b *Buffer) Skip(n int) error {
	offset := b.roffset + n
	if !b.noAssert {
		if offset < 0 || offset > len(b.buf) {
			return errors.Wrapf(ErrRange, "illegal skip: 0 <= %d <= %d failed", offset, len(b.buf))
		}
	}
	b.roffset = offset
	return nil
}

// Resize grows the store to at least capacity, keeping existing bytes at
// their offsets. It never shrinks.
func (b *Buffer) Resize(capacity int) error {
	if !b.noAssert {
		if capacity < 0 {
			return errors.Wrapf(ErrType, "illegal capacity: %d", capacity)
		}
	}
	if capacity > len(b.buf) {
		logger.Tracef("resize store %d -> %d", len(b.buf), capacity)
		buf := make([]byte, capacity)
		copy(buf, b.buf)
		b.buf = buf
	}
	return nil
}

// EnsureCapacity makes the store at least capacity bytes large, doubling the
// current capacity first and falling back to the exact requirement when
// doubling is not enough.
func (b *Buffer) EnsureCapacity(capacity int) error {
	current := len(b.buf)
	if current < capacity {
		if current*2 > capacity {
			capacity = current * 2
		}
		return b.Resize(capacity)
	}
	return nil
}

// ensure is the unchecked grow used on every write path.
func (b *Buffer) ensure(capacity int) {
	current := len(b.buf)
	if current < capacity {
		grown := current * 2
		if grown < capacity {
			grown = capacity
		}
		logger.Tracef("grow store %d -> %d", current, grown)
		buf := make([]byte, grown)
		copy(buf, b.buf)
		b.buf = buf
	}
}

// Clone returns a second buffer with the same cursor values. With deep true
// the clone owns a physical copy of the store, otherwise both buffers alias
// one store.
func (b *Buffer) Clone(deep bool) *Buffer {
	c := &Buffer{roffset: b.roffset, woffset: b.woffset, noAssert: b.noAssert}
	if deep {
		c.buf = make([]byte, len(b.buf))
		copy(c.buf, b.buf)
	} else {
		c.buf = b.buf
	}
	return c
}

// checkRead validates an n byte access at offset against the store bounds.
func (b *Buffer) checkRead(offset, n int) error {
	if b.noAssert {
		return nil
	}
	if offset < 0 || offset+n > len(b.buf) {
		return errors.Wrapf(ErrRange, "illegal offset: 0 <= %d (+%d) <= %d failed", offset, n, len(b.buf))
	}
	return nil
}

// checkWrite validates offset and grows the store to hold n bytes at it.
func (b *Buffer) checkWrite(offset, n int) error {
	if !b.noAssert {
		if offset < 0 {
			return errors.Wrapf(ErrRange, "illegal offset: %d < 0", offset)
		}
	}
	b.ensure(offset + n)
	return nil
}
