// Package dump implements the push side of the value-tree codec
// (spec.md §4.3, §4.4): a byte-buffer Writer, and a dumper visitor
// protocol a host data type instantiates to report its own content
// without the dump package needing to know the host's type. It is the
// mirror image of the load package.
package dump

import (
	"encoding/binary"
	"math"

	"github.com/tifv/exchange-desynced/format"
	"github.com/tifv/exchange-desynced/internal/varint"
)

// Writer accumulates an encoded exchange body.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the bytes written so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) writeTag(t format.Tag) {
	w.buf = append(w.buf, byte(t))
}

func (w *Writer) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *Writer) writeInt32(v int32) {
	w.buf = varint.AppendInt(w.buf, v)
}

// WriteUint32 appends v as an unsigned LEB128 varint (array lengths,
// the assoc last_free cursor).
func (w *Writer) WriteUint32(v uint32) {
	w.buf = varint.AppendUint(w.buf, uint64(v))
}

func (w *Writer) writeFloat64(v float64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	w.buf = append(w.buf, tmp[:]...)
}

func (w *Writer) writeString(s string) {
	if len(s) < format.ShortStringLimit {
		w.writeTag(format.TagShortString)
		w.writeByte(byte(len(s)))
	} else {
		w.writeTag(format.TagLongString)
		w.WriteUint32(uint32(len(s)))
	}
	w.buf = append(w.buf, s...)
}

func (w *Writer) writeKey(k KeyDumper) {
	if k.IsName() {
		name, _ := k.Name()
		w.writeString(name)
		return
	}
	index, _ := k.Index()
	w.writeTag(format.TagInteger)
	w.writeInt32(index)
}
