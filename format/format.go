// Package format holds the wire-level constants shared by the
// envelope, value, load and dump packages: the exchange magic and
// kind codes, the base-62 alphabet, and the value-tree tag bytes.
//
// Nothing in this package does any work; it is the single place the
// rest of the module agrees on what a byte means, mirroring the role
// the teacher's format package plays for its own wire constants.
package format

// Magic is the literal prefix every exchange string starts with
// (spec.md §4.1).
const Magic = "DSC"

// ChecksumDigits is the fixed number of base-62 digits making up the
// checksum tail (spec.md §4.1, "a fixed small number of base-62
// digits").
const ChecksumDigits = 4

// Kind identifies which payload an exchange string carries.
type Kind int

const (
	// KindBlueprint is the "22" exchange kind code.
	KindBlueprint Kind = iota
	// KindBehavior is the "2A" exchange kind code.
	KindBehavior
)

// kindCodes is the bijective mapping between Kind and its 2-character
// wire code (spec.md §4.1: "22" -> Blueprint, "2A" -> Behavior).
var kindCodes = [...]string{
	KindBlueprint: "22",
	KindBehavior:  "2A",
}

// Code returns the 2-character wire code for k.
func (k Kind) Code() (string, bool) {
	if k < 0 || int(k) >= len(kindCodes) {
		return "", false
	}
	return kindCodes[k], true
}

// KindFromCode maps a 2-character wire code back to a Kind. Any code
// other than the two observed in spec.md §4.1 is undefined behavior
// per spec.md §9 and is rejected.
func KindFromCode(code string) (Kind, bool) {
	for k, c := range kindCodes {
		if c == code {
			return Kind(k), true
		}
	}
	return 0, false
}

func (k Kind) String() string {
	switch k {
	case KindBlueprint:
		return "Blueprint"
	case KindBehavior:
		return "Behavior"
	default:
		return "Unknown"
	}
}

// Alphabet is the 62-symbol digit alphabet used by the envelope body
// and checksum (spec.md §4.1: "[0-9A-Za-z] with value = position").
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Base is the numeral base of Alphabet.
const Base = len(Alphabet)

// Tag identifies the variant of the next value in the binary stream
// (spec.md §4.3). Values are fixed, one byte each; this is the
// implementer's resolution of the Open Question in spec.md §9 since
// the original tag-byte assignments were not present in the retrieved
// source (see DESIGN.md).
type Tag byte

const (
	TagNil Tag = iota
	TagFalse
	TagTrue
	TagInteger
	TagFloat
	TagShortString
	TagLongString
	TagTableBegin
	TagTableEnd
	TagAssocEmpty
	TagAssocDead
	TagAssocLive
)

func (t Tag) String() string {
	switch t {
	case TagNil:
		return "Nil"
	case TagFalse:
		return "False"
	case TagTrue:
		return "True"
	case TagInteger:
		return "Integer"
	case TagFloat:
		return "Float"
	case TagShortString:
		return "ShortString"
	case TagLongString:
		return "LongString"
	case TagTableBegin:
		return "TableBegin"
	case TagTableEnd:
		return "TableEnd"
	case TagAssocEmpty:
		return "AssocEmpty"
	case TagAssocDead:
		return "AssocDead"
	case TagAssocLive:
		return "AssocLive"
	default:
		return "Reserved"
	}
}

// ShortStringLimit is the length boundary between TagShortString
// (single length byte) and TagLongString (varint length).
const ShortStringLimit = 0x100
