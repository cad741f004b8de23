package types

import "errors"

// ErrValueOutOfRange is returned when a wire value does not fit the domain
// of the type it is decoded into.
var ErrValueOutOfRange = errors.New("types: value out of range")
