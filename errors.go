package smartbuffer

import (
	"github.com/pkg/errors"
)

// The buffer reports two kinds of failures: argument validation failures and
// range failures. Scan terminations keep their own sentinels so callers can
// tell a truncated varint from a plain out of bounds access. All checks are
// skipped when the buffer was built with noAssert.
var (
	// ErrType reports an argument whose value is outside its domain.
	ErrType = errors.New("illegal argument")

	// ErrRange reports a byte range falling outside the current store.
	ErrRange = errors.New("index out of range")

	// ErrTruncated reports a varint or terminator scan running off the end
	// of the store.
	ErrTruncated = errors.New("truncated")

	// ErrOverrun reports a varint64 whose tenth byte still has the
	// continuation bit set.
	ErrOverrun = errors.New("buffer overrun")
)

// IsType reports whether err is a validation failure.
func IsType(err error) bool {
	return errors.Cause(err) == ErrType
}

// IsRange reports whether err is any of the range failure kinds.
func IsRange(err error) bool {
	switch errors.Cause(err) {
	case ErrRange, ErrTruncated, ErrOverrun:
		return true
	}
	return false
}
