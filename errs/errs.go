// Package errs defines the sentinel errors returned across the
// exchange-desynced module. Callers should match against these with
// errors.Is rather than parsing message text, though the wrapped
// message text also carries the human-readable reason required by
// spec.md's error taxonomy.
package errs

import "errors"

// Envelope errors (spec.md §7, InvalidEnvelope).
var (
	ErrMissingMagic     = errors.New("exchange string should start with the DSC magic")
	ErrUnknownKind      = errors.New("exchange kind code is not recognized")
	ErrEmptyBody        = errors.New("exchange body should not be empty")
	ErrNonAlphabetByte  = errors.New("exchange body contains a byte outside the base-62 alphabet")
	ErrTruncatedBody    = errors.New("exchange string is truncated before the checksum")
	ErrChecksumMismatch = errors.New("exchange checksum does not match the body")
)

// Bit-stream errors (spec.md §7, InvalidBitStream).
var (
	ErrBitStreamUnderflow   = errors.New("bit stream ended before the requested bits were read")
	ErrTrailingGarbage      = errors.New("bit stream has trailing bits beyond the defined padding")
	ErrDigitMagnitudeTooBig = errors.New("digit chunk decodes to a value larger than its byte width allows")
)

// Tag / value errors (spec.md §7, InvalidTag).
var (
	ErrUnknownTag       = errors.New("unknown value tag byte")
	ErrTagValueMismatch = errors.New("tag byte is inconsistent with the payload that follows it")
)

// String errors (spec.md §7, InvalidUtf8 / InvalidInteger).
var (
	ErrInvalidUTF8      = errors.New("string bytes are not valid UTF-8")
	ErrVarintTooLarge   = errors.New("varint exceeds the supported integer width")
	ErrLengthOutOfRange = errors.New("length prefix exceeds the remaining buffer")
)

// Table errors (spec.md §7, InvalidTable); these reason strings are
// stable and are asserted on directly by table/assoc tests, per
// spec.md §4.5.
var (
	ErrTableTooLarge         = errors.New("the table should not be that large")
	ErrLastFreeOutOfRange    = errors.New("last free index should not exceed table size")
	ErrLinkOutOfBounds       = errors.New("assoc node link should lead within bounds")
	ErrChainLoop             = errors.New("assoc node chain should not form a loop")
	ErrKeyNotAtValidPosition = errors.New("table key should be in a valid position")
	ErrDuplicateCellIndex    = errors.New("two items were loaded into the same table cell")
)

// Table header errors, returned by the load package's table reader.
var (
	ErrUnsupportedLogLen = errors.New("loglen is out of the supported range")
)
