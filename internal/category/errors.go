package category

import "errors"

var (
	ErrNotFound    = errors.New("category not found")
	ErrDuplicate   = errors.New("category already exists")
	ErrInvalidName = errors.New("category name is required")
	ErrInvalidKind = errors.New("category kind must be line or status")
)
