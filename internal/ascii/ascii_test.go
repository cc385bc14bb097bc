package ascii

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tifv/exchange-desynced/errs"
	"github.com/tifv/exchange-desynced/format"
)

func TestEncodeDecodeDigit(t *testing.T) {
	for value := 0; value < format.Base; value++ {
		char, ok := EncodeDigit(byte(value))
		require.True(t, ok)

		got, ok := DecodeDigit(char)
		require.True(t, ok)
		require.Equal(t, byte(value), got)
	}
}

func TestEncodeDigit_OutOfRange(t *testing.T) {
	_, ok := EncodeDigit(byte(format.Base))
	require.False(t, ok)
}

func TestDecodeDigit_NotInAlphabet(t *testing.T) {
	_, ok := DecodeDigit('!')
	require.False(t, ok)
}

func TestEncodeDigits_RoundTrip(t *testing.T) {
	values := []byte{0, 1, 10, 35, 61}
	s, err := EncodeDigits(values)
	require.NoError(t, err)
	require.Equal(t, "01AZz", s)

	got, err := DecodeDigits(s)
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestEncodeDigits_InvalidValue(t *testing.T) {
	_, err := EncodeDigits([]byte{0, format.Base})
	require.ErrorIs(t, err, errs.ErrNonAlphabetByte)
}

func TestDecodeDigits_InvalidChar(t *testing.T) {
	_, err := DecodeDigits("0A!")
	require.ErrorIs(t, err, errs.ErrNonAlphabetByte)
}

func TestDecodeDigits_Empty(t *testing.T) {
	got, err := DecodeDigits("")
	require.NoError(t, err)
	require.Empty(t, got)
}
