package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_Accessors(t *testing.T) {
	require.True(t, Nil.IsNil())

	b, ok := Bool(true).Bool()
	require.True(t, ok)
	require.True(t, b)

	i, ok := Int(-7).Int()
	require.True(t, ok)
	require.Equal(t, int32(-7), i)

	f, ok := Float(3.14).Float()
	require.True(t, ok)
	require.Equal(t, 3.14, f)

	s, ok := Str("hi").Str()
	require.True(t, ok)
	require.Equal(t, "hi", s)

	tab := NewTable(nil, nil)
	v := Tab(tab)
	got, ok := v.Table()
	require.True(t, ok)
	require.Same(t, tab, got)
}

func TestValue_Equal(t *testing.T) {
	require.True(t, Nil.Equal(Nil))
	require.True(t, Int(1).Equal(Int(1)))
	require.False(t, Int(1).Equal(Int(2)))
	require.False(t, Int(1).Equal(Nil))
	require.True(t, Str("x").Equal(Str("x")))
	require.False(t, Bool(true).Equal(Bool(false)))
}

func TestValue_Equal_NaN(t *testing.T) {
	// spec.md §7: NaN round-trips without guaranteed bit pattern, but
	// compares equal to itself in these tests.
	nan := Float(math.NaN())
	require.True(t, nan.Equal(nan))
}

// TestTable_Equal_IgnoresInsertionHistory exercises spec.md §8 scenario
// 6's round-trip comparison: two tables holding the same data but
// built through different insertion orders and loglens must compare
// equal, even though their on-disk cell layouts differ.
func TestTable_Equal_IgnoresInsertionHistory(t *testing.T) {
	entries := map[string]Value{
		"k1": Int(1),
		"k2": Str("two"),
		"k3": Bool(true),
	}

	b1 := NewTableBuilder(ceilLog2(len(entries)), true)
	for k, v := range entries {
		b1.Insert(NameKey(k), v, true)
	}
	t1 := NewTable([]Value{Int(10)}, b1.Build())

	b2 := NewTableBuilder(ceilLog2(2*len(entries)), true)
	// insert in reverse key order, a different history than b1's map
	// iteration order
	for _, k := range []string{"k3", "k2", "k1"} {
		b2.Insert(NameKey(k), entries[k], true)
	}
	t2 := NewTable([]Value{Int(10)}, b2.Build())

	require.True(t, t1.Equal(t2))
}

func TestTable_Equal_DetectsDifference(t *testing.T) {
	t1 := NewTable([]Value{Int(1)}, nil)
	t2 := NewTable([]Value{Int(2)}, nil)
	require.False(t, t1.Equal(t2))
}
