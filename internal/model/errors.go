package model

import "errors"

// Structural errors, returned by the mutating operations of Topology and
// HotkeyTable (and, for ErrMultipleServers, by loaders building a Topology).
// A mutation that returns one of these (possibly wrapped, test with
// errors.Is) has not changed anything.
var (
	ErrOutOfBounds       = errors.New("position out of grid bounds")
	ErrCellOccupied      = errors.New("cell already occupied")
	ErrDuplicateName     = errors.New("duplicate screen name")
	ErrNotFound          = errors.New("screen not found")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrWouldDropScreens  = errors.New("resize would drop screens")
	ErrInvalidName       = errors.New("invalid screen name")
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrMultipleServers   = errors.New("more than one server screen")
)
