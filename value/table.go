package value

import "github.com/tifv/exchange-desynced/dump"

// Table is spec.md §3's Table: a dense array part holding positions
// 1..len(Array) (with explicit nils for holes), plus an associative
// part for every other key.
type Table struct {
	ArrayPart []Value
	Assoc     *AssocTable
}

// NewTable builds a table from an already-constructed array part and
// associative part. A nil Assoc is treated as an empty one.
func NewTable(array []Value, assoc *AssocTable) *Table {
	if assoc == nil {
		assoc = NewAssocTable(0, false)
	}
	return &Table{ArrayPart: array, Assoc: assoc}
}

// Array returns the array part, positions 1..len(Array) (spec.md
// §4.6), satisfying dump.TableDumper.
func (t *Table) Array() []Value {
	return t.ArrayPart
}

// AssocCells reports every associative-part cell, plus the
// loglen/last_free header fields, satisfying dump.TableDumper. A table
// loaded off the wire (TableLoadBuilder) is reported in wire order
// unchanged, to reproduce its original bytes exactly. A table built
// programmatically (TableBuilder) has no wire positions to preserve,
// so it is canonicalized first: re-inserted in sorted-key order so
// that two logically-identical tables with different insertion
// history dump to identical bytes (spec.md §4.5).
func (t *Table) AssocCells() ([]dump.Cell[Key, Value], uint8, bool, uint32) {
	assoc := t.Assoc
	if !assoc.WireExact() {
		assoc = assoc.Canonicalize()
	}
	items, loglen, hasAssoc, lastFree := assoc.DumpIter()
	cells := make([]dump.Cell[Key, Value], len(items))
	for i, item := range items {
		var kind dump.CellKind
		switch item.Kind {
		case ItemDead:
			kind = dump.CellDead
		case ItemLive:
			kind = dump.CellLive
		default:
			kind = dump.CellEmpty
		}
		cells[i] = dump.Cell[Key, Value]{
			Kind:     kind,
			Key:      item.Key,
			HasValue: item.HasValue,
			Value:    item.Value,
			Link:     item.Link,
		}
	}
	return cells, loglen, hasAssoc, lastFree
}

// Equal reports whether two tables hold the same array entries and
// the same live key/value entries, ignoring on-disk cell positions,
// dead tombstones, and loglen: two tables built through different
// insertion histories compare equal as long as they denote the same
// data (spec.md §8 scenario 6's round-trip comparison).
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.ArrayPart) != len(other.ArrayPart) {
		return false
	}
	for i := range t.ArrayPart {
		if !t.ArrayPart[i].Equal(other.ArrayPart[i]) {
			return false
		}
	}
	a := liveEntries(t.Assoc)
	b := liveEntries(other.Assoc)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Key.Equal(b[i].Key) {
			return false
		}
		if a[i].HasValue != b[i].HasValue {
			return false
		}
		if a[i].HasValue && !a[i].Value.Equal(b[i].Value) {
			return false
		}
	}
	return true
}

// liveEntries returns a's live cells in sorted-by-key order, the
// canonical order two differently-built tables can be compared in.
func liveEntries(a *AssocTable) []AssocItem {
	if a == nil {
		return nil
	}
	sorted := a.SortedIter()
	live := make([]AssocItem, 0, len(sorted))
	for _, item := range sorted {
		if item.Kind == ItemLive {
			live = append(live, item)
		}
	}
	return live
}
