// Package load implements the pull side of the value-tree codec
// (spec.md §4.3, §4.4): a byte-cursor Reader, and a builder/loader
// visitor protocol a host data type instantiates to receive decoded
// values without the load package needing to know the host's type.
//
// This is a specialized imitation of the original implementation's
// load module, itself modeled on serde::ser: the host supplies a
// Builder that is handed primitive values and, for tables, a
// TableReader to pull entries from; it returns whatever host value it
// wants to represent that data as.
package load

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/tifv/exchange-desynced/errs"
	"github.com/tifv/exchange-desynced/format"
	"github.com/tifv/exchange-desynced/internal/varint"
)

// Reader is a forward-only cursor over a decoded exchange body.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for reading from the start.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

func (r *Reader) rest() []byte {
	return r.data[r.pos:]
}

func (r *Reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errs.ErrBitStreamUnderflow
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) readBytes(n int) ([]byte, error) {
	if r.pos+n > len(r.data) {
		return nil, errs.ErrBitStreamUnderflow
	}
	out := r.data[r.pos : r.pos+n]
	r.pos += n
	return out, nil
}

// PeekTag reads the next tag byte without consuming it.
func (r *Reader) PeekTag() (format.Tag, error) {
	if r.pos >= len(r.data) {
		return 0, errs.ErrBitStreamUnderflow
	}
	return format.Tag(r.data[r.pos]), nil
}

func (r *Reader) readTag() (format.Tag, error) {
	b, err := r.readByte()
	return format.Tag(b), err
}

// ReadUint32 reads an unsigned LEB128 varint field (array lengths,
// the assoc last_free cursor).
func (r *Reader) ReadUint32() (uint32, error) {
	v, n, err := varint.ReadUint(r.rest())
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint32 {
		return 0, errs.ErrVarintTooLarge
	}
	r.pos += n
	return uint32(v), nil
}

func (r *Reader) readInt32() (int32, error) {
	v, n, err := varint.ReadInt(r.rest())
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

func (r *Reader) readFloat64() (float64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

func (r *Reader) readString(tag format.Tag) (string, error) {
	var n int
	switch tag {
	case format.TagShortString:
		b, err := r.readByte()
		if err != nil {
			return "", err
		}
		n = int(b)
	case format.TagLongString:
		length, err := r.ReadUint32()
		if err != nil {
			return "", err
		}
		n = int(length)
	default:
		return "", errs.ErrTagValueMismatch
	}
	if n > len(r.rest()) {
		return "", errs.ErrLengthOutOfRange
	}
	raw, err := r.readBytes(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", errs.ErrInvalidUTF8
	}
	return string(raw), nil
}
