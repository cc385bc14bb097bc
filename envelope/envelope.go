// Package envelope implements the outer ASCII framing of an exchange
// string (spec.md §4.1): the `DSC` magic, the 2-character kind code,
// the base-62 body, and the trailing checksum digits.
package envelope

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/tifv/exchange-desynced/errs"
	"github.com/tifv/exchange-desynced/format"
	"github.com/tifv/exchange-desynced/internal/ascii"
	"github.com/tifv/exchange-desynced/internal/bitio"
)

const kindCodeLen = 2

// checksumModulus is the number of distinct values a
// format.ChecksumDigits-wide base-62 number can hold.
var checksumModulus = func() uint64 {
	m := uint64(1)
	for i := 0; i < format.ChecksumDigits; i++ {
		m *= uint64(format.Base)
	}
	return m
}()

// Split parses an ASCII exchange string into its kind and the
// decompressed binary body (spec.md §4.1, §4.2). It rejects a missing
// magic, an unrecognized kind code, non-alphabet bytes, an empty
// body, or a checksum mismatch (spec.md §7, InvalidEnvelope).
func Split(data string) (format.Kind, []byte, error) {
	rest := data
	if len(rest) < len(format.Magic) || rest[:len(format.Magic)] != format.Magic {
		return 0, nil, errs.ErrMissingMagic
	}
	rest = rest[len(format.Magic):]

	if len(rest) < kindCodeLen {
		return 0, nil, errs.ErrTruncatedBody
	}
	kind, ok := format.KindFromCode(rest[:kindCodeLen])
	if !ok {
		return 0, nil, fmt.Errorf("%w: %q", errs.ErrUnknownKind, rest[:kindCodeLen])
	}
	rest = rest[kindCodeLen:]

	if len(rest) <= format.ChecksumDigits {
		return 0, nil, errs.ErrEmptyBody
	}
	bodyStr := rest[:len(rest)-format.ChecksumDigits]
	checksumStr := rest[len(rest)-format.ChecksumDigits:]

	checksumDigits, err := ascii.DecodeDigits(checksumStr)
	if err != nil {
		return 0, nil, err
	}
	wantChecksum := decodeFixedWidth(checksumDigits)

	bodyDigits, err := ascii.DecodeDigits(bodyStr)
	if err != nil {
		return 0, nil, err
	}
	byteLen, ok := bitio.ByteCount(len(bodyDigits))
	if !ok {
		return 0, nil, errs.ErrTruncatedBody
	}
	body, err := bitio.Decode(bodyDigits, byteLen)
	if err != nil {
		return 0, nil, err
	}

	if haveChecksum := checksum(body); haveChecksum != wantChecksum {
		return 0, nil, fmt.Errorf("%w: got %d, want %d", errs.ErrChecksumMismatch, wantChecksum, haveChecksum)
	}
	return kind, body, nil
}

// Join renders a decompressed byte body and its exchange kind back
// into an ASCII exchange string, reproducing the alphabet and
// checksum so that Split(Join(kind, body)) recovers body exactly, and
// Join(Split(s)) == s for any s previously produced by Join
// (spec.md §4.1).
func Join(kind format.Kind, body []byte) (string, error) {
	code, ok := kind.Code()
	if !ok {
		return "", fmt.Errorf("%w: %v", errs.ErrUnknownKind, kind)
	}
	if len(body) == 0 {
		return "", errs.ErrEmptyBody
	}
	bodyStr, err := ascii.EncodeDigits(bitio.Encode(body))
	if err != nil {
		return "", err
	}
	checksumStr, err := ascii.EncodeDigits(encodeFixedWidth(checksum(body)))
	if err != nil {
		return "", err
	}
	return format.Magic + code + bodyStr + checksumStr, nil
}

// checksum computes the rolling-hash checksum of the decompressed
// body (spec.md §4.1's "checksum suffix ... a rolling hash over the
// body"): flipping a bit of body changes xxhash's output, and so the
// checksum unless the two hashes happen to agree modulo
// checksumModulus (62^4), which is what spec.md §8 scenario 5 relies on.
func checksum(body []byte) uint64 {
	return xxhash.Sum64(body) % checksumModulus
}

// encodeFixedWidth renders value as exactly format.ChecksumDigits
// base-62 digit values, least-significant digit first, matching the
// ordering convention used throughout the bitio package.
func encodeFixedWidth(value uint64) []byte {
	out := make([]byte, format.ChecksumDigits)
	for i := range out {
		out[i] = byte(value % uint64(format.Base))
		value /= uint64(format.Base)
	}
	return out
}

// decodeFixedWidth inverts encodeFixedWidth.
func decodeFixedWidth(digits []byte) uint64 {
	var value uint64
	for i := len(digits) - 1; i >= 0; i-- {
		value = value*uint64(format.Base) + uint64(digits[i])
	}
	return value
}
