package xorshift

import "errors"

// ErrInvalidSize is returned when a negative number of elements is requested.
var ErrInvalidSize = errors.New("invalid size")

// ErrInvalidParameter is returned when distribution parameters are out of range,
// e.g. p outside [0,1], a negative number of trials, or non-finite bounds.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrDegenerateState signals an all-zero generator state. Seeding makes it unreachable,
// so it is only ever used as a panic value.
var ErrDegenerateState = errors.New("degenerate generator state")
