package model

import (
	"fmt"

	"github.com/google/uuid"
)

// ScreenID identifies a screen for as long as it is placed in a topology.
// Unlike the name (which can be changed) and the position (which can be
// moved), it never changes.
type ScreenID = uuid.UUID

// Position is a cell in the screen grid.
// Columns grow to the right, rows grow downward, both start at 0.
type Position struct {
	Column int
	Row    int
}

// String returns the position as "(column,row)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// Step returns the neighboring position in the given direction.
func (p Position) Step(d Direction) Position {
	dc, dr := d.offset()
	return Position{Column: p.Column + dc, Row: p.Row + dr}
}

// Screen is a named participant in the shared input setup.
//
// Screens handed out by a Topology are copies; changing them has no effect on
// the topology.
type Screen struct {
	ID       ScreenID
	Name     string
	Position Position
	IsServer bool
}

// NewScreen returns an unplaced screen with the given name.
func NewScreen(name string) Screen {
	return Screen{Name: name}
}
