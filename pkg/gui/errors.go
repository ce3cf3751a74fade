package gui

import "errors"

// ErrUnavailable is returned when the desktop frontend is requested from a
// build without it
var ErrUnavailable = errors.New("desktop frontend not available in this build, rebuild with -tags gui")
