package statement

import "errors"

var (
	// ErrMissingCarrierColumn rejects a whole upload whose header has no "carrier" column.
	ErrMissingCarrierColumn = errors.New("statement has no carrier column")
	ErrUnsupportedFormat    = errors.New("unsupported statement format")
)
