package turtle

import "errors"

// ErrInvalidArgument is returned when a geometry routine receives a value
// outside its domain. The turtle is left untouched when it is returned.
var ErrInvalidArgument = errors.New("turtle: invalid argument")
