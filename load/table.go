package load

import (
	"github.com/tifv/exchange-desynced/errs"
	"github.com/tifv/exchange-desynced/format"
)

// TableReader pulls table entries one at a time: the array part in
// 1-based index order, then every associative-part cell in wire
// position order, Empty and Dead included. A Builder.BuildTable
// implementation must drain it fully via Next, or the Reader's cursor
// will not land past the table's closing tag.
type TableReader[K any, V any] struct {
	r    *Reader
	b    Builder[K, V]
	size TableSize

	arrayNext uint32
	cellIndex uint32
	cellsLeft uint32
	finished  bool
}

func newTableReader[K any, V any](r *Reader, b Builder[K, V]) (*TableReader[K, V], error) {
	arrayLen, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	hasAssocByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	hasAssoc := hasAssocByte != 0

	var loglen uint8
	var lastFree uint32
	if hasAssoc {
		lb, err := r.readByte()
		if err != nil {
			return nil, err
		}
		if lb > maxLogLen {
			return nil, errs.ErrUnsupportedLogLen
		}
		loglen = lb
		lastFree, err = r.ReadUint32()
		if err != nil {
			return nil, err
		}
	}

	var cells uint32
	if hasAssoc {
		cells = uint32(1) << loglen
	}

	return &TableReader[K, V]{
		r: r,
		b: b,
		size: TableSize{
			ArrayLen: arrayLen,
			LogLen:   loglen,
			HasAssoc: hasAssoc,
			LastFree: lastFree,
		},
		arrayNext: 1,
		cellsLeft: cells,
	}, nil
}

// Size reports the table's array length and associative-part header
// fields, for a Builder that wants to preallocate.
func (t *TableReader[K, V]) Size() TableSize {
	return t.size
}

// Next returns the next array or associative-table entry, or ok=false
// once every entry has been pulled and the closing tag consumed.
func (t *TableReader[K, V]) Next() (TableItem[K, V], bool, error) {
	var zero TableItem[K, V]
	if t.finished {
		return zero, false, nil
	}

	if t.arrayNext <= t.size.ArrayLen {
		idx := t.arrayNext
		t.arrayNext++
		value, err := Decode[K, V](t.r, t.b)
		if err != nil {
			return zero, false, err
		}
		return TableItem[K, V]{IsArray: true, Index: idx, Value: value}, true, nil
	}

	if t.cellsLeft == 0 {
		endTag, err := t.r.readTag()
		if err != nil {
			return zero, false, err
		}
		if endTag != format.TagTableEnd {
			return zero, false, errs.ErrTagValueMismatch
		}
		t.finished = true
		return zero, false, nil
	}

	cellIndex := t.cellIndex
	t.cellIndex++
	t.cellsLeft--

	tag, err := t.r.readTag()
	if err != nil {
		return zero, false, err
	}
	switch tag {
	case format.TagAssocEmpty:
		return TableItem[K, V]{CellIndex: cellIndex, Kind: ItemEmpty}, true, nil
	case format.TagAssocDead:
		link, err := t.r.readInt32()
		if err != nil {
			return zero, false, err
		}
		return TableItem[K, V]{CellIndex: cellIndex, Kind: ItemDead, Link: link}, true, nil
	case format.TagAssocLive:
		key, err := DecodeKey[K](t.r, t.b.KeyBuilder())
		if err != nil {
			return zero, false, err
		}
		hasValueByte, err := t.r.readByte()
		if err != nil {
			return zero, false, err
		}
		hasValue := hasValueByte != 0
		var value V
		if hasValue {
			value, err = Decode[K, V](t.r, t.b)
			if err != nil {
				return zero, false, err
			}
		}
		link, err := t.r.readInt32()
		if err != nil {
			return zero, false, err
		}
		return TableItem[K, V]{
			CellIndex: cellIndex,
			Kind:      ItemLive,
			Key:       key,
			HasValue:  hasValue,
			Value:     value,
			Link:      link,
		}, true, nil
	default:
		return zero, false, errs.ErrUnknownTag
	}
}
