package core

import "errors"

// ErrInvalidParameter is returned when render dimensions, sample counts or
// scene data are rejected before any work begins.
var ErrInvalidParameter = errors.New("invalid parameter")
