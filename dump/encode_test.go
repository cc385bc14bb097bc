package dump

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tifv/exchange-desynced/errs"
	"github.com/tifv/exchange-desynced/format"
)

// testKey/testNode mirror the minimal host model used in
// load/decode_test.go, local to this file to avoid importing value
// (which itself imports dump).
type testKey struct {
	isName bool
	index  int32
	name   string
}

func (k testKey) IsName() bool { return k.isName }
func (k testKey) Index() (int32, bool) {
	if k.isName {
		return 0, false
	}
	return k.index, true
}
func (k testKey) Name() (string, bool) {
	if !k.isName {
		return "", false
	}
	return k.name, true
}

type testNode struct {
	kind  string
	b     bool
	i     int32
	f     float64
	s     string
	array []testNode
	cells []Cell[testKey, testNode]
}

func (n testNode) IsNil() bool         { return n.kind == "nil" }
func (n testNode) Bool() (bool, bool)  { return n.b, n.kind == "bool" }
func (n testNode) Int() (int32, bool)  { return n.i, n.kind == "int" }
func (n testNode) Float() (float64, bool) { return n.f, n.kind == "float" }
func (n testNode) Str() (string, bool) { return n.s, n.kind == "string" }
func (n testNode) DumpTable() (TableDumper[testKey, testNode], bool) {
	if n.kind != "table" {
		return nil, false
	}
	return testTable{array: n.array, cells: n.cells}, true
}

type testTable struct {
	array []testNode
	cells []Cell[testKey, testNode]
}

func (t testTable) Array() []testNode { return t.array }
func (t testTable) AssocCells() ([]Cell[testKey, testNode], uint8, bool, uint32) {
	return t.cells, 1, true, 0
}

func TestEncode_Scalars(t *testing.T) {
	w := NewWriter()
	require.NoError(t, Encode[testKey, testNode](w, testNode{kind: "nil"}))
	require.Equal(t, []byte{byte(format.TagNil)}, w.Bytes())

	w = NewWriter()
	require.NoError(t, Encode[testKey, testNode](w, testNode{kind: "bool", b: true}))
	require.Equal(t, []byte{byte(format.TagTrue)}, w.Bytes())

	w = NewWriter()
	require.NoError(t, Encode[testKey, testNode](w, testNode{kind: "bool", b: false}))
	require.Equal(t, []byte{byte(format.TagFalse)}, w.Bytes())
}

func TestEncode_TableWithEmptyAndDeadCells(t *testing.T) {
	node := testNode{
		kind: "table",
		cells: []Cell[testKey, testNode]{
			{Kind: CellEmpty},
			{Kind: CellDead, Link: 0},
		},
	}
	w := NewWriter()
	require.NoError(t, Encode[testKey, testNode](w, node))

	buf := w.Bytes()
	require.Equal(t, byte(format.TagTableBegin), buf[0])
	require.Contains(t, string(buf), string([]byte{byte(format.TagAssocEmpty)}))
	require.Equal(t, byte(format.TagTableEnd), buf[len(buf)-1])
}

func TestEncode_UnknownNode(t *testing.T) {
	w := NewWriter()
	err := Encode[testKey, testNode](w, testNode{kind: "???"})
	require.ErrorIs(t, err, errs.ErrUnknownTag)
}
