package value

import "strconv"

// Key is the associative-table key type (spec.md §3): either a
// (possibly negative) 32-bit index or a string name. The integer-
// indexed array part of a Table uses plain 1-based positions instead
// of Key and is never expressed through it.
type Key struct {
	name    string
	index   int32
	isName  bool
}

// IndexKey builds an Index-variant key.
func IndexKey(index int32) Key {
	return Key{index: index}
}

// NameKey builds a Name-variant key.
func NameKey(name string) Key {
	return Key{name: name, isName: true}
}

// IsName reports whether k is a Name-variant key.
func (k Key) IsName() bool {
	return k.isName
}

// Index returns the index value and true if k is an Index-variant key.
func (k Key) Index() (int32, bool) {
	if k.isName {
		return 0, false
	}
	return k.index, true
}

// Name returns the name value and true if k is a Name-variant key.
func (k Key) Name() (string, bool) {
	if !k.isName {
		return "", false
	}
	return k.name, true
}

// Equal reports whether two keys have the same variant and value.
func (k Key) Equal(other Key) bool {
	if k.isName != other.isName {
		return false
	}
	if k.isName {
		return k.name == other.name
	}
	return k.index == other.index
}

// Less defines the total order sorted_iter uses (spec.md §4.5):
// Index keys sort before Name keys (matching the declaration order of
// the Key variants in the original), and within a variant by value.
func (k Key) Less(other Key) bool {
	if k.isName != other.isName {
		return !k.isName
	}
	if k.isName {
		return k.name < other.name
	}
	return k.index < other.index
}

func (k Key) String() string {
	if k.isName {
		return k.name
	}
	return strconv.FormatInt(int64(k.index), 10)
}
