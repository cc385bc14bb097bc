package load

import (
	"github.com/tifv/exchange-desynced/errs"
	"github.com/tifv/exchange-desynced/format"
)

// Decode reads one full value from r, dispatching to b's Build*
// methods (spec.md §4.3, §4.4).
func Decode[K any, V any](r *Reader, b Builder[K, V]) (V, error) {
	var zero V
	tag, err := r.readTag()
	if err != nil {
		return zero, err
	}
	switch tag {
	case format.TagNil:
		return b.BuildNil()
	case format.TagFalse:
		return b.BuildBoolean(false)
	case format.TagTrue:
		return b.BuildBoolean(true)
	case format.TagInteger:
		v, err := r.readInt32()
		if err != nil {
			return zero, err
		}
		return b.BuildInteger(v)
	case format.TagFloat:
		v, err := r.readFloat64()
		if err != nil {
			return zero, err
		}
		return b.BuildFloat(v)
	case format.TagShortString, format.TagLongString:
		s, err := r.readString(tag)
		if err != nil {
			return zero, err
		}
		return b.BuildString(s)
	case format.TagTableBegin:
		items, err := newTableReader(r, b)
		if err != nil {
			return zero, err
		}
		return b.BuildTable(items)
	default:
		return zero, errs.ErrUnknownTag
	}
}

// DecodeKey reads one associative-table key, given that the next tag
// is already known to be a key tag (Integer or one of the string
// tags).
func DecodeKey[K any](r *Reader, kb KeyBuilder[K]) (K, error) {
	var zero K
	tag, err := r.readTag()
	if err != nil {
		return zero, err
	}
	switch tag {
	case format.TagInteger:
		v, err := r.readInt32()
		if err != nil {
			return zero, err
		}
		return kb.BuildInteger(v)
	case format.TagShortString, format.TagLongString:
		s, err := r.readString(tag)
		if err != nil {
			return zero, err
		}
		return kb.BuildString(s)
	default:
		return zero, errs.ErrUnknownTag
	}
}
