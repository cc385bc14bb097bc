// Package value implements the dynamically typed value tree of
// spec.md §3: Value (nil, boolean, integer, float, string, table),
// Key, and Table (array part + associative part). It is the concrete,
// host-facing data type the load and dump packages' generic visitor
// protocol is instantiated with for tests, per spec.md §1's "any
// consumer-side data model beyond the Value sum type used in tests"
// being out of this module's scope.
package value

import "math"

// Type identifies which variant a Value holds.
type Type int

const (
	NilType Type = iota
	BooleanType
	IntegerType
	FloatType
	StringType
	TableType
)

func (t Type) String() string {
	switch t {
	case NilType:
		return "nil"
	case BooleanType:
		return "boolean"
	case IntegerType:
		return "integer"
	case FloatType:
		return "float"
	case StringType:
		return "string"
	case TableType:
		return "table"
	default:
		return "invalid"
	}
}

// Value is the tagged union of spec.md §3. The zero Value is Nil.
type Value struct {
	typ   Type
	b     bool
	i     int32
	f     float64
	s     string
	table *Table
}

// Nil is the Nil value.
var Nil = Value{}

// Bool builds a Boolean value.
func Bool(b bool) Value { return Value{typ: BooleanType, b: b} }

// Int builds an Integer value.
func Int(i int32) Value { return Value{typ: IntegerType, i: i} }

// Float builds a Float value.
func Float(f float64) Value { return Value{typ: FloatType, f: f} }

// Str builds a String value.
func Str(s string) Value { return Value{typ: StringType, s: s} }

// Tab builds a Table value.
func Tab(t *Table) Value { return Value{typ: TableType, table: t} }

// Type reports v's variant.
func (v Value) Type() Type { return v.typ }

// IsNil is the capability spec.md §3 calls out as "queried by
// encoders".
func (v Value) IsNil() bool { return v.typ == NilType }

// Bool returns v's boolean value, if v is Boolean.
func (v Value) Bool() (bool, bool) {
	if v.typ != BooleanType {
		return false, false
	}
	return v.b, true
}

// Int returns v's integer value, if v is Integer.
func (v Value) Int() (int32, bool) {
	if v.typ != IntegerType {
		return 0, false
	}
	return v.i, true
}

// Float returns v's float value, if v is Float.
func (v Value) Float() (float64, bool) {
	if v.typ != FloatType {
		return 0, false
	}
	return v.f, true
}

// Str returns v's string value, if v is String.
func (v Value) Str() (string, bool) {
	if v.typ != StringType {
		return "", false
	}
	return v.s, true
}

// Table returns v's table, if v is Table.
func (v Value) Table() (*Table, bool) {
	if v.typ != TableType {
		return nil, false
	}
	return v.table, true
}

// Equal reports whether v and other are structurally equivalent,
// recursing into tables. Float equality treats NaN as equal to NaN so
// that a round-tripped NaN payload (spec.md §7's NaN policy) compares
// equal to itself in tests.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case NilType:
		return true
	case BooleanType:
		return v.b == other.b
	case IntegerType:
		return v.i == other.i
	case FloatType:
		if math.IsNaN(v.f) && math.IsNaN(other.f) {
			return true
		}
		return v.f == other.f
	case StringType:
		return v.s == other.s
	case TableType:
		return v.table.Equal(other.table)
	default:
		return false
	}
}
