package value

import "github.com/tifv/exchange-desynced/dump"

// DumpTable satisfies dump.Dumper, handing out v's Table (which
// itself satisfies dump.TableDumper via its Array/AssocCells
// methods) under the name dump.Dumper requires, distinct from
// Value's own public Table accessor.
func (v Value) DumpTable() (dump.TableDumper[Key, Value], bool) {
	t, ok := v.Table()
	if !ok {
		return nil, false
	}
	return t, true
}

// Dump encodes v to w using Value's own dump.Dumper implementation
// (the concrete instantiation spec.md §1 calls out as this module's
// default consumer-side data model).
func Dump(w *dump.Writer, v Value) error {
	return dump.Encode[Key, Value](w, v)
}
