package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringTableHash_EmptyWellDefined(t *testing.T) {
	// spec.md §8: hash_str(seed=0x645DBFCD, "") is well-defined.
	require.Equal(t, stringHashSeed, stringTableHash(""))
}

func TestIntTableHash_ZeroLogLen(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 1 << 30, -(1 << 30)} {
		require.Equal(t, uint32(0), intTableHash(v, 0))
	}
}

func TestIntTableHash_WithinMask(t *testing.T) {
	for loglen := uint8(1); loglen < 8; loglen++ {
		m := mask(loglen)
		for _, v := range []int32{0, 1, -1, 100, -100, 1 << 20, -(1 << 20)} {
			got := intTableHash(v, loglen)
			require.LessOrEqual(t, got, m)
		}
	}
}

func TestKeyPosition_WithinMask(t *testing.T) {
	keys := []Key{
		IndexKey(0), IndexKey(-1), IndexKey(12345),
		NameKey(""), NameKey("a"), NameKey("aaaaaaaaaaaaaaaa"),
	}
	for loglen := uint8(1); loglen < 8; loglen++ {
		m := mask(loglen)
		for _, k := range keys {
			require.LessOrEqual(t, k.position(loglen), m)
		}
	}
}

func TestMask(t *testing.T) {
	require.Equal(t, uint32(0), mask(0))
	require.Equal(t, uint32(1), mask(1))
	require.Equal(t, uint32(7), mask(3))
}
