package varint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tifv/exchange-desynced/errs"
)

func TestAppendReadUint_RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 63, 64, 127, 128, 16384, 1 << 32, 1<<64 - 1}
	for _, v := range values {
		buf := AppendUint(nil, v)
		got, n, err := ReadUint(buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(buf), n)
	}
}

func TestAppendReadInt_RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 63, -63, 1 << 30, -(1 << 30), 1<<31 - 1, -(1 << 31)}
	for _, v := range values {
		buf := AppendInt(nil, v)
		got, n, err := ReadInt(buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, len(buf), n)
	}
}

func TestReadUint_Underflow(t *testing.T) {
	// A continuation byte with nothing following is truncated.
	_, _, err := ReadUint([]byte{0x80})
	require.ErrorIs(t, err, errs.ErrBitStreamUnderflow)
}

func TestReadUint_TooLarge(t *testing.T) {
	buf := make([]byte, 11)
	for i := range buf {
		buf[i] = 0x80
	}
	buf = append(buf, 0x01)
	_, _, err := ReadUint(buf)
	require.ErrorIs(t, err, errs.ErrVarintTooLarge)
}

func TestReadUint_LeavesRemainder(t *testing.T) {
	buf := AppendUint(nil, 300)
	tail := append(buf, 0xAA)
	got, n, err := ReadUint(tail)
	require.NoError(t, err)
	require.Equal(t, uint64(300), got)
	require.Equal(t, len(buf), n)
}
