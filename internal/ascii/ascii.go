// Package ascii converts single characters to and from their value in
// the base-62 alphabet used by the exchange envelope (spec.md §4.1,
// §4.2). It is a small, leaf-level helper package, in the same spirit
// as the teacher's internal/hash package: one narrow job, no
// dependencies on the rest of the module.
package ascii

import "github.com/tifv/exchange-desynced/format"

// decodeTable maps an ASCII byte to its digit value, or 0xFF if the
// byte is not part of format.Alphabet.
var decodeTable = func() (table [256]byte) {
	for i := range table {
		table[i] = 0xFF
	}
	for value, char := range []byte(format.Alphabet) {
		table[char] = byte(value)
	}
	return table
}()

// EncodeDigit returns the alphabet character for a digit value in
// [0, format.Base). ok is false if value is out of range.
func EncodeDigit(value byte) (char byte, ok bool) {
	if int(value) >= format.Base {
		return 0, false
	}
	return format.Alphabet[value], true
}

// DecodeDigit returns the digit value of an alphabet character. ok is
// false if char is not in format.Alphabet.
func DecodeDigit(char byte) (value byte, ok bool) {
	v := decodeTable[char]
	if v == 0xFF {
		return 0, false
	}
	return v, true
}

// EncodeDigits renders a slice of digit values (each < format.Base) as
// an ASCII string.
func EncodeDigits(values []byte) (string, error) {
	out := make([]byte, len(values))
	for i, value := range values {
		char, ok := EncodeDigit(value)
		if !ok {
			return "", errInvalidDigitValue(value)
		}
		out[i] = char
	}
	return string(out), nil
}

// DecodeDigits parses an ASCII string into its digit values. It
// returns an error identifying the first byte outside the alphabet,
// if any.
func DecodeDigits(s string) ([]byte, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		value, ok := DecodeDigit(s[i])
		if !ok {
			return nil, errInvalidChar(s[i])
		}
		out[i] = value
	}
	return out, nil
}
