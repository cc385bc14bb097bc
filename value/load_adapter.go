package value

import (
	"github.com/tifv/exchange-desynced/load"
)

// keyBuilder implements load.KeyBuilder[Key].
type keyBuilder struct{}

func (keyBuilder) BuildInteger(v int32) (Key, error) { return IndexKey(v), nil }
func (keyBuilder) BuildString(v string) (Key, error) { return NameKey(v), nil }

// builder implements load.Builder[Key, Value], letting Value be
// loaded through the load package's visitor protocol (spec.md §4.4).
// Unlike the original's Value::load associated function, Go cannot
// give Value itself a generic static method, so this stateless helper
// type plays that role instead.
type builder struct{}

func (builder) KeyBuilder() load.KeyBuilder[Key] { return keyBuilder{} }
func (builder) BuildNil() (Value, error)         { return Nil, nil }
func (builder) BuildBoolean(v bool) (Value, error) {
	return Bool(v), nil
}
func (builder) BuildInteger(v int32) (Value, error) { return Int(v), nil }
func (builder) BuildFloat(v float64) (Value, error) { return Float(v), nil }
func (builder) BuildString(v string) (Value, error) { return Str(v), nil }

// BuildTable reconstructs a Table from the table reader, preserving
// the wire's exact associative-part cell layout (Empty/Dead cells
// included, at their original indices, with their original link
// offsets) so that loading and then dumping the same table without
// modification reproduces the identical bytes (spec.md §9).
func (b builder) BuildTable(items *load.TableReader[Key, Value]) (Value, error) {
	size := items.Size()
	array := make([]Value, size.ArrayLen)
	lb := NewTableLoadBuilder(size.LogLen, size.HasAssoc)

	for {
		item, ok, err := items.Next()
		if err != nil {
			return Nil, err
		}
		if !ok {
			break
		}
		if item.IsArray {
			array[int(item.Index)-1] = item.Value
			continue
		}
		switch item.Kind {
		case load.ItemEmpty:
			continue
		case load.ItemDead:
			if err := lb.Insert(item.CellIndex, AssocItem{Kind: ItemDead, Link: item.Link}); err != nil {
				return Nil, err
			}
		case load.ItemLive:
			cell := AssocItem{
				Kind:     ItemLive,
				Key:      item.Key,
				HasValue: item.HasValue,
				Value:    item.Value,
				Link:     item.Link,
			}
			if err := lb.Insert(item.CellIndex, cell); err != nil {
				return Nil, err
			}
		}
	}
	lb.SetLastFree(size.LastFree)

	assoc, err := lb.Build()
	if err != nil {
		return Nil, err
	}
	return Tab(NewTable(array, assoc)), nil
}

// Load decodes one value from r using Value's own load.Builder
// adapter (the concrete instantiation spec.md §1 calls out as this
// module's "default consumer-side data model").
func Load(r *load.Reader) (Value, error) {
	return load.Decode[Key, Value](r, builder{})
}
