package system

import "errors"

// ErrInvalidConfiguration is reported once at setup; the owning behaviour
// becomes inert instead of failing the simulation.
var ErrInvalidConfiguration = errors.New("invalid configuration")
