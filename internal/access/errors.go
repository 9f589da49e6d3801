package access

import "errors"

// ErrForbidden is returned when a record exists but lies outside the actor's scope.
var ErrForbidden = errors.New("access denied")
