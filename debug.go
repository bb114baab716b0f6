package smartbuffer

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// The debug format renders every store byte as two uppercase hex digits with
// cursor markers woven between them: '<' for roffset, '>' for woffset, '*'
// for the end of the store. Coinciding positions collapse: roffset=woffset is
// '^', roffset at the end is '[', woffset at the end is ']', all three is
// '|'. Plain bytes are separated by single spaces, markers replace the
// separator. The mapping is bijective for well formed input, which is what
// makes it usable for exact state assertions.

const hexDigits = "0123456789ABCDEF"

// markerAt returns the marker for store position i, or a space when the
// position carries no cursor.
func (b *Buffer) markerAt(i int) byte {
	k := len(b.buf)
	switch {
	case i == b.roffset && i == b.woffset && i == k:
		return '|'
	case i == b.roffset && i == b.woffset:
		return '^'
	case i == b.roffset && i == k:
		return '['
	case i == b.woffset && i == k:
		return ']'
	case i == b.roffset:
		return '<'
	case i == b.woffset:
		return '>'
	case i == k:
		return '*'
	}
	return ' '
}

// ToDebug renders the whole store and both cursors on a single line.
func (b *Buffer) ToDebug() string {
	var sb strings.Builder
	k := len(b.buf)
	for i := 0; i <= k; i++ {
		if m := b.markerAt(i); m != ' ' {
			sb.WriteByte(m)
		} else if i > 0 {
			sb.WriteByte(' ')
		}
		if i < k {
			sb.WriteByte(hexDigits[b.buf[i]>>4])
			sb.WriteByte(hexDigits[b.buf[i]&0x0F])
		}
	}
	return sb.String()
}

// DumpDebug writes the columns form, 16 bytes per line as hex with markers
// next to an ASCII column.
func (b *Buffer) DumpDebug(w io.Writer) error {
	k := len(b.buf)
	for i := 0; ; i += 16 {
		end := i + 16
		if end > k {
			end = k
		}
		var hexCol, ascCol strings.Builder
		for j := i; j < end; j++ {
			hexCol.WriteByte(b.markerAt(j))
			hexCol.WriteByte(hexDigits[b.buf[j]>>4])
			hexCol.WriteByte(hexDigits[b.buf[j]&0x0F])
			if b.buf[j] >= 0x20 && b.buf[j] < 0x7F {
				ascCol.WriteByte(b.buf[j])
			} else {
				ascCol.WriteByte('.')
			}
		}
		if end == k {
			hexCol.WriteByte(b.markerAt(k))
		}
		for hexCol.Len() < 16*3+1 {
			hexCol.WriteByte(' ')
		}
		if _, err := io.WriteString(w, hexCol.String()+" "+ascCol.String()+"\n"); err != nil {
			return errors.WithStack(err)
		}
		if end == k {
			return nil
		}
	}
}

// FromDebug parses the exact inverse of ToDebug into a fresh buffer. When no
// end-of-store marker is present the capacity is estimated from the input
// length. Duplicate or conflicting markers, malformed hex pairs, content
// after the end marker and byte counts exceeding the estimated store all
// raise range errors unless noAssert is set.
func FromDebug(s string, noAssert bool) (*Buffer, error) {
	k := len(s)
	b := &Buffer{buf: make([]byte, (k+2)/3), noAssert: noAssert}
	var rs, ws, es bool
	j := 0
	i := 0
scan:
	for i < k {
		ch := s[i]
		i++
		if es {
			if noAssert {
				break
			}
			return nil, errors.Wrapf(ErrRange, "illegal debug str: content after end marker at %d", i-1)
		}
		switch ch {
		case ' ':

		case '<', '>', '^', '[', ']', '|', '*':
			r := ch == '<' || ch == '^' || ch == '[' || ch == '|'
			w := ch == '>' || ch == '^' || ch == ']' || ch == '|'
			e := ch == '*' || ch == '[' || ch == ']' || ch == '|'
			if !noAssert && (r && rs || w && ws) {
				return nil, errors.Wrapf(ErrRange, "illegal debug str: duplicate cursor marker %q at %d", ch, i-1)
			}
			if r {
				b.roffset = j
				rs = true
			}
			if w {
				b.woffset = j
				ws = true
			}
			if e {
				es = true
			}

		default:
			if i >= k {
				if noAssert {
					break scan
				}
				return nil, errors.Wrapf(ErrRange, "illegal debug str: lone character %q at %d", ch, i-1)
			}
			hi := strings.IndexByte(hexDigits, upperHex(ch))
			lo := strings.IndexByte(hexDigits, upperHex(s[i]))
			i++
			if hi < 0 || lo < 0 {
				if noAssert {
					break scan
				}
				return nil, errors.Wrapf(ErrRange, "illegal debug str: not a hex pair at %d", i-2)
			}
			if j >= len(b.buf) {
				return nil, errors.Wrap(ErrRange, "illegal debug str: wrong total length")
			}
			b.buf[j] = byte(hi)<<4 | byte(lo)
			j++
		}
	}
	if !noAssert && (!rs || !ws) {
		return nil, errors.Wrap(ErrRange, "illegal debug str: missing roffset or woffset marker")
	}
	if es {
		b.buf = b.buf[0:j:j]
	}
	return b, nil
}

func upperHex(c byte) byte {
	if c >= 'a' && c <= 'f' {
		return c - 'a' + 'A'
	}
	return c
}
