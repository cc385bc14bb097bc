package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKey_IndexVariant(t *testing.T) {
	k := IndexKey(42)
	require.False(t, k.IsName())
	index, ok := k.Index()
	require.True(t, ok)
	require.Equal(t, int32(42), index)
	_, ok = k.Name()
	require.False(t, ok)
}

func TestKey_NameVariant(t *testing.T) {
	k := NameKey("hello")
	require.True(t, k.IsName())
	name, ok := k.Name()
	require.True(t, ok)
	require.Equal(t, "hello", name)
	_, ok = k.Index()
	require.False(t, ok)
}

func TestKey_Equal(t *testing.T) {
	require.True(t, IndexKey(1).Equal(IndexKey(1)))
	require.False(t, IndexKey(1).Equal(IndexKey(2)))
	require.True(t, NameKey("a").Equal(NameKey("a")))
	require.False(t, NameKey("a").Equal(NameKey("b")))
	require.False(t, IndexKey(1).Equal(NameKey("1")))
}

func TestKey_Less(t *testing.T) {
	require.True(t, IndexKey(1).Less(NameKey("a")))
	require.False(t, NameKey("a").Less(IndexKey(1)))
	require.True(t, IndexKey(1).Less(IndexKey(2)))
	require.True(t, NameKey("a").Less(NameKey("b")))
}
