// Package varint implements the LEB128 varints of the value-tree wire
// format (spec.md §4.3): zigzag + LEB128 for signed fields (integers,
// assoc links) and plain LEB128 for unsigned ones (array lengths, long
// string lengths, last_free). Grounded on the teacher's
// encoding.VarStringEncoder.WriteVarint.
package varint

import "github.com/tifv/exchange-desynced/errs"

// AppendInt zigzag-encodes v and appends it to buf as a LEB128 varint.
func AppendInt(buf []byte, v int32) []byte {
	uval := uint32(v)<<1 ^ uint32(v>>31)
	return AppendUint(buf, uint64(uval))
}

// AppendUint appends v to buf as an unsigned LEB128 varint.
func AppendUint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// ReadUint reads an unsigned LEB128 varint from the front of data,
// returning the value and the number of bytes consumed.
func ReadUint(data []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i, b := range data {
		if shift >= 64 {
			return 0, 0, errs.ErrVarintTooLarge
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, errs.ErrBitStreamUnderflow
}

// ReadInt reads a zigzag-encoded LEB128 varint, returning the decoded
// signed value and the number of bytes consumed.
func ReadInt(data []byte) (int32, int, error) {
	uval, n, err := ReadUint(data)
	if err != nil {
		return 0, 0, err
	}
	v := int32(uval>>1) ^ -int32(uval&1)
	return v, n, nil
}
