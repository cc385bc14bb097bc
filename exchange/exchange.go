// Package exchange is the module's façade: it wires the envelope's
// ASCII framing to the load/dump value-tree codec, the way the
// original's load_blueprint/dump_blueprint did, generalized from
// "blueprint vs. behavior" to spec.md §4.1's general Kind.
package exchange

import (
	"github.com/tifv/exchange-desynced/dump"
	"github.com/tifv/exchange-desynced/envelope"
	"github.com/tifv/exchange-desynced/format"
	"github.com/tifv/exchange-desynced/load"
	"github.com/tifv/exchange-desynced/value"
)

// Kind re-exports format.Kind, the envelope's outer discriminant.
type Kind = format.Kind

const (
	KindBlueprint = format.KindBlueprint
	KindBehavior  = format.KindBehavior
)

// Exchange is a decoded exchange string: its kind and its value tree
// (spec.md §1's top-level Exchange). Blueprint and Behavior payloads
// share the same value-tree shape in this module, unlike the
// original's Exchange<P, B> where each kind could carry a distinct
// host type; a caller that needs that still can, via LoadAs/DumpAs
// below.
type Exchange struct {
	Kind  Kind
	Value value.Value
}

// Load decodes an exchange string into its kind and value tree
// (spec.md §4.1-§4.4), using value.Value as the host data model.
func Load(data string) (Exchange, error) {
	kind, body, err := envelope.Split(data)
	if err != nil {
		return Exchange{}, err
	}
	v, err := value.Load(load.NewReader(body))
	if err != nil {
		return Exchange{}, err
	}
	return Exchange{Kind: kind, Value: v}, nil
}

// Dump encodes an Exchange back into an exchange string.
func Dump(e Exchange) (string, error) {
	w := dump.NewWriter()
	if err := value.Dump(w, e.Value); err != nil {
		return "", err
	}
	return envelope.Join(e.Kind, w.Bytes())
}

// LoadAs decodes an exchange string's body through a caller-supplied
// Builder, for host types other than value.Value.
func LoadAs[K any, V any](data string, b load.Builder[K, V]) (Kind, V, error) {
	var zero V
	kind, body, err := envelope.Split(data)
	if err != nil {
		return 0, zero, err
	}
	v, err := load.Decode[K, V](load.NewReader(body), b)
	if err != nil {
		return 0, zero, err
	}
	return kind, v, nil
}

// DumpAs encodes a caller-supplied host value implementing
// dump.Dumper back into an exchange string.
func DumpAs[K dump.KeyDumper, V dump.Dumper[K, V]](kind Kind, v V) (string, error) {
	w := dump.NewWriter()
	if err := dump.Encode[K, V](w, v); err != nil {
		return "", err
	}
	return envelope.Join(kind, w.Bytes())
}
