// Package bitio implements the bit-compression stage of spec.md §4.2:
// packing a byte stream into base-62 digit values and back.
//
// The byte stream is processed in fixed 4-byte chunks, each chunk
// re-based from little-endian base-256 into 6 base-62 digits,
// least-significant digit first (spec.md §4.2's "least-significant-
// bits-first within the accumulator" ordering) and zero-padded on the
// most-significant side so that every chunk always produces exactly 6
// digits regardless of its value. A final partial chunk of 1-3 bytes
// is re-based the same way into a fixed, shorter digit count. Because
// every chunk's digit count depends only on its byte count (never on
// its value), the total digit count is a deterministic function of
// the total byte count, exactly as spec.md requires, and decoding is
// the exact inverse with no ambiguity.
package bitio

import "github.com/tifv/exchange-desynced/errs"

const (
	chunkBytes  = 4
	chunkDigits = 6
	base        = 62
)

// tailDigits[r] is the number of base-62 digits needed to represent
// any r-byte (r < chunkBytes) unsigned integer: the smallest d with
// base^d >= 256^r.
var tailDigits = [chunkBytes]int{0, 2, 3, 5}

// tailRemByMod6 inverts tailDigits: given (digit count mod 6), which
// tail remainder byte count produced it. Entries -1 mean "no byte
// count maps to this residue".
var tailRemByMod6 = [chunkDigits]int{0: 0, 2: 1, 3: 2, 5: 3, 1: -1, 4: -1}

// DigitCount returns the number of base-62 digits that Encode
// produces for a byteLen-byte input.
func DigitCount(byteLen int) int {
	full := byteLen / chunkBytes
	rem := byteLen % chunkBytes
	return full*chunkDigits + tailDigits[rem]
}

// ByteCount inverts DigitCount, returning the byte length that
// produces exactly digitLen digits, or false if digitLen cannot arise
// from any byte length.
func ByteCount(digitLen int) (int, bool) {
	rem := tailRemByMod6[digitLen%chunkDigits]
	if rem < 0 {
		return 0, false
	}
	full := (digitLen - tailDigits[rem]) / chunkDigits
	if full < 0 {
		return 0, false
	}
	return full*chunkBytes + rem, true
}

// Encode packs data into a sequence of base-62 digit values (each in
// [0, 62)), of length DigitCount(len(data)).
func Encode(data []byte) []byte {
	out := make([]byte, 0, DigitCount(len(data)))
	for len(data) >= chunkBytes {
		out = appendChunk(out, data[:chunkBytes], chunkDigits)
		data = data[chunkBytes:]
	}
	if len(data) > 0 {
		out = appendChunk(out, data, tailDigits[len(data)])
	}
	return out
}

// appendChunk re-bases the little-endian unsigned integer held in
// chunk into digitCount base-62 digits, least-significant first, and
// appends them to out.
func appendChunk(out []byte, chunk []byte, digitCount int) []byte {
	var value uint64
	for i := len(chunk) - 1; i >= 0; i-- {
		value = value<<8 | uint64(chunk[i])
	}
	for i := 0; i < digitCount; i++ {
		out = append(out, byte(value%base))
		value /= base
	}
	return out
}

// Decode unpacks a sequence of base-62 digit values produced by
// Encode back into the original byte stream. byteLen must be the
// exact expected length (from ByteCount(len(digits))); digits whose
// length does not correspond to any byte length should be rejected by
// the caller via ByteCount before calling Decode.
func Decode(digits []byte, byteLen int) ([]byte, error) {
	out := make([]byte, 0, byteLen)
	pos := 0
	for byteLen-len(out) >= chunkBytes {
		chunk, err := decodeChunk(digits[pos:pos+chunkDigits], chunkBytes)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
		pos += chunkDigits
	}
	if tail := byteLen - len(out); tail > 0 {
		chunk, err := decodeChunk(digits[pos:pos+tailDigits[tail]], tail)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
		pos += tailDigits[tail]
	}
	if pos != len(digits) {
		return nil, errs.ErrTrailingGarbage
	}
	return out, nil
}

// decodeChunk reconstructs byteCount little-endian bytes from digits,
// verifying the accumulated value fits within byteCount bytes (a
// value that overflows indicates a corrupted or malformed digit
// sequence, since Encode never produces one).
func decodeChunk(digits []byte, byteCount int) ([]byte, error) {
	var value uint64
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] >= base {
			return nil, errs.ErrNonAlphabetByte
		}
		value = value*base + uint64(digits[i])
	}
	limit := uint64(1) << (8 * byteCount)
	if byteCount == 8 { // unreachable at chunkBytes<=4, kept for clarity/safety
		limit = 0
	}
	if limit != 0 && value >= limit {
		return nil, errs.ErrDigitMagnitudeTooBig
	}
	out := make([]byte, byteCount)
	for i := 0; i < byteCount; i++ {
		out[i] = byte(value)
		value >>= 8
	}
	return out, nil
}
