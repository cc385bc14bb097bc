package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tifv/exchange-desynced/dump"
	"github.com/tifv/exchange-desynced/load"
)

func TestTable_AssocCells_PreservesWireOrder(t *testing.T) {
	lb := NewTableLoadBuilder(2, true)
	require.NoError(t, lb.Insert(0, AssocItem{Kind: ItemDead}))
	require.NoError(t, lb.Insert(1, AssocItem{Kind: ItemLive, Key: IndexKey(1), Value: Int(1), HasValue: true}))
	lb.SetLastFree(0)
	assoc, err := lb.Build()
	require.NoError(t, err)
	tab := NewTable(nil, assoc)

	cells, loglen, hasAssoc, lastFree := tab.AssocCells()
	require.True(t, hasAssoc)
	require.Equal(t, uint8(2), loglen)
	require.Equal(t, tab.Assoc.LastFree(), lastFree)
	require.Len(t, cells, 4)

	// Wire-exact: cells come back in the exact positions they were
	// loaded at, tombstones included.
	require.Equal(t, dump.CellDead, cells[0].Kind)
	require.Equal(t, dump.CellLive, cells[1].Kind)
	idx, isIndex := cells[1].Key.Index()
	require.True(t, isIndex)
	require.Equal(t, int32(1), idx)
	require.Equal(t, dump.CellEmpty, cells[2].Kind)
	require.Equal(t, dump.CellEmpty, cells[3].Kind)
}

// TestTable_AssocCells_CanonicalizesBuiltTables checks the property
// spec.md §4.5's sorted_iter exists to guarantee: two tables built
// programmatically (TableBuilder) from the same logical entries but in
// different insertion order dump to identical cells, because neither
// has wire positions of its own to preserve.
func TestTable_AssocCells_CanonicalizesBuiltTables(t *testing.T) {
	b1 := NewTableBuilder(2, true)
	b1.Insert(NameKey("a"), Int(1), true)
	b1.Insert(NameKey("b"), Int(2), true)
	b1.Insert(NameKey("c"), Int(3), true)
	tab1 := NewTable(nil, b1.Build())

	b2 := NewTableBuilder(2, true)
	b2.Insert(NameKey("c"), Int(3), true)
	b2.Insert(NameKey("a"), Int(1), true)
	b2.Insert(NameKey("b"), Int(2), true)
	tab2 := NewTable(nil, b2.Build())

	cells1, loglen1, hasAssoc1, lastFree1 := tab1.AssocCells()
	cells2, loglen2, hasAssoc2, lastFree2 := tab2.AssocCells()
	require.Equal(t, loglen1, loglen2)
	require.Equal(t, hasAssoc1, hasAssoc2)
	require.Equal(t, lastFree1, lastFree2)
	require.Equal(t, cells1, cells2)

	var sawDead bool
	for _, c := range cells1 {
		if c.Kind == dump.CellDead {
			sawDead = true
		}
	}
	require.False(t, sawDead, "canonicalized output drops tombstones from a never-loaded table")
}

// TestValue_LoadDump_RoundTrip exercises the value package's own
// load.Builder/dump.Dumper adapters directly, beneath the envelope
// layer exchange_test.go covers.
func TestValue_LoadDump_RoundTrip(t *testing.T) {
	b := NewTableBuilder(1, true)
	b.Insert(NameKey("a"), Str("x"), true)
	b.InsertDead(IndexKey(5))
	table := NewTable([]Value{Int(7), Nil}, b.Build())
	v := Tab(table)

	w := dump.NewWriter()
	require.NoError(t, Dump(w, v))

	got, err := Load(load.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.True(t, v.Equal(got))

	// Re-dumping the loaded value reproduces the identical bytes,
	// since loading preserves wire-exact cell positions.
	w2 := dump.NewWriter()
	require.NoError(t, Dump(w2, got))
	require.Equal(t, w.Bytes(), w2.Bytes())
}

func TestValue_LoadDump_RoundTrip_NoAssocPart(t *testing.T) {
	b := NewTableBuilder(0, false)
	table := NewTable(nil, b.Build())
	v := Tab(table)

	w := dump.NewWriter()
	require.NoError(t, Dump(w, v))
	got, err := Load(load.NewReader(w.Bytes()))
	require.NoError(t, err)
	require.True(t, v.Equal(got))
}
