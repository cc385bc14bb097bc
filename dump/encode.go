package dump

import (
	"github.com/tifv/exchange-desynced/errs"
	"github.com/tifv/exchange-desynced/format"
)

// Encode writes one full value to w, querying v's accessors in turn
// (spec.md §4.3, §4.4). V is required to implement Dumper[K, V]
// itself, so array entries and cell values -- themselves plain V's --
// can recurse without a separate wrapper value.
func Encode[K KeyDumper, V Dumper[K, V]](w *Writer, v V) error {
	if v.IsNil() {
		w.writeTag(format.TagNil)
		return nil
	}
	if b, ok := v.Bool(); ok {
		if b {
			w.writeTag(format.TagTrue)
		} else {
			w.writeTag(format.TagFalse)
		}
		return nil
	}
	if i, ok := v.Int(); ok {
		w.writeTag(format.TagInteger)
		w.writeInt32(i)
		return nil
	}
	if f, ok := v.Float(); ok {
		w.writeTag(format.TagFloat)
		w.writeFloat64(f)
		return nil
	}
	if s, ok := v.Str(); ok {
		w.writeString(s)
		return nil
	}
	if t, ok := v.DumpTable(); ok {
		return encodeTable[K, V](w, t)
	}
	return errs.ErrUnknownTag
}

func encodeTable[K KeyDumper, V Dumper[K, V]](w *Writer, t TableDumper[K, V]) error {
	w.writeTag(format.TagTableBegin)

	array := t.Array()
	w.WriteUint32(uint32(len(array)))
	for i := range array {
		if err := Encode[K, V](w, array[i]); err != nil {
			return err
		}
	}

	cells, loglen, hasAssoc, lastFree := t.AssocCells()
	if hasAssoc {
		w.writeByte(1)
		w.writeByte(loglen)
		w.WriteUint32(lastFree)
	} else {
		w.writeByte(0)
	}

	for _, cell := range cells {
		switch cell.Kind {
		case CellEmpty:
			w.writeTag(format.TagAssocEmpty)
		case CellDead:
			w.writeTag(format.TagAssocDead)
			w.writeInt32(cell.Link)
		case CellLive:
			w.writeTag(format.TagAssocLive)
			w.writeKey(cell.Key)
			if cell.HasValue {
				w.writeByte(1)
				if err := Encode[K, V](w, cell.Value); err != nil {
					return err
				}
			} else {
				w.writeByte(0)
			}
			w.writeInt32(cell.Link)
		}
	}

	w.writeTag(format.TagTableEnd)
	return nil
}
