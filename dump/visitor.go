package dump

// KeyDumper is the capability a host key type must have to be
// written: it mirrors value.Key's own accessor methods, so value.Key
// satisfies it directly with no adapter.
type KeyDumper interface {
	IsName() bool
	Index() (int32, bool)
	Name() (string, bool)
}

// CellKind identifies what an associative-table cell holds, mirroring
// value.ItemKind.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellDead
	CellLive
)

// Cell is one associative-table cell a TableDumper reports, in wire
// cell-index order, including Empty and Dead cells: dumping every
// cell exactly as the host table holds it is what lets an
// unmodified load-then-dump round trip reproduce the original bytes
// (spec.md §9).
type Cell[K KeyDumper, V any] struct {
	Kind     CellKind
	Key      K
	HasValue bool
	Value    V
	Link     int32
}

// TableDumper is implemented by a host table type to report its
// contents for encoding (mirrors load.TableReader's role in reverse).
type TableDumper[K KeyDumper, V any] interface {
	// Array returns the array part in 1-based position order.
	Array() []V
	// AssocCells returns every associative-part cell in wire order,
	// together with the loglen/last_free header fields.
	AssocCells() (cells []Cell[K, V], loglen uint8, hasAssoc bool, lastFree uint32)
}

// Dumper is implemented by a host value type to report its content
// for encoding (spec.md §4.4's mirror of load.Builder). Exactly one
// of IsNil, Bool, Int, Float, Str or DumpTable must report a match.
type Dumper[K KeyDumper, V any] interface {
	IsNil() bool
	Bool() (bool, bool)
	Int() (int32, bool)
	Float() (float64, bool)
	Str() (string, bool)
	DumpTable() (TableDumper[K, V], bool)
}
