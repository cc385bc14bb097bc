package ascii

import (
	"fmt"

	"github.com/tifv/exchange-desynced/errs"
)

func errInvalidChar(char byte) error {
	return fmt.Errorf("%w: %q", errs.ErrNonAlphabetByte, char)
}

func errInvalidDigitValue(value byte) error {
	return fmt.Errorf("%w: digit value %d out of range", errs.ErrNonAlphabetByte, value)
}
