// Package smartbuffer implements a growable binary buffer with separate read
// and write cursors. It covers fixed width integers and floats in both byte
// orders, base-128 varints with zig-zag signed mapping, length prefixed and
// NUL terminated UTF-8 strings, packed bool bit sets, structural operations
// over the backing store and a textual debug encoding of the whole buffer
// state.
//
// A Buffer is not safe for concurrent use. Buffers created by Slice, WrapView
// or Clone(false) alias the same backing store, writes through one are visible
// through the other until a reallocation separates them.
package smartbuffer

import (
	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}
