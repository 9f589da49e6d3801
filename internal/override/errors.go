package override

import "errors"

var (
	ErrInvalidMode    = errors.New("override mode must be flat, percent or split")
	ErrInvalidValue   = errors.New("override value is not a valid decimal")
	ErrNoTransactions = errors.New("no transactions selected")
)
