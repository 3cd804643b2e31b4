package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Topology is a bounded grid of uniquely named screens.
//
// Screens are stored by ID; the cell and name lookups are kept in sync with
// that store by every mutating method, and each of those either applies
// completely or returns an error without having changed anything.
// Invariants:
//   - no two screens share a cell
//   - no two screens share a name (case-sensitive)
//   - names are non-empty, unpadded, and contain neither ',' nor ':'
//   - at most one screen is the server
type Topology struct {
	columns int
	rows    int

	screens map[ScreenID]*Screen
	cells   map[Position]ScreenID
	names   map[string]ScreenID
}

// NewTopology returns an empty topology with the given grid size.
func NewTopology(columns, rows int) (*Topology, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("grid of %dx%d (%w)", columns, rows, ErrInvalidDimensions)
	}
	return &Topology{
		columns: columns,
		rows:    rows,
		screens: make(map[ScreenID]*Screen),
		cells:   make(map[Position]ScreenID),
		names:   make(map[string]ScreenID),
	}, nil
}

// Columns returns the number of grid columns.
func (t *Topology) Columns() int { return t.columns }

// Rows returns the number of grid rows.
func (t *Topology) Rows() int { return t.rows }

// Capacity returns the number of cells in the grid.
func (t *Topology) Capacity() int { return t.columns * t.rows }

// Len returns the number of placed screens.
func (t *Topology) Len() int { return len(t.screens) }

// IsFull returns whether every cell is occupied.
func (t *Topology) IsFull() bool { return t.Len() == t.Capacity() }

// Contains returns whether the position lies within the grid.
func (t *Topology) Contains(p Position) bool {
	return p.Column >= 0 && p.Column < t.columns && p.Row >= 0 && p.Row < t.rows
}

// PlaceScreen stores the given screen at the given cell, assigning it a new
// ID.
// If the screen is flagged as server, the flag is cleared on all others.
func (t *Topology) PlaceScreen(screen Screen, column, row int) error {
	pos := Position{Column: column, Row: row}
	if !t.Contains(pos) {
		return fmt.Errorf("cannot place '%s' at %s in %dx%d grid (%w)", screen.Name, pos, t.columns, t.rows, ErrOutOfBounds)
	}
	if occupant, ok := t.cells[pos]; ok {
		return fmt.Errorf("cannot place '%s' at %s, taken by '%s' (%w)", screen.Name, pos, t.screens[occupant].Name, ErrCellOccupied)
	}
	if err := checkName(screen.Name); err != nil {
		return fmt.Errorf("cannot place screen (%w)", err)
	}
	if _, ok := t.names[screen.Name]; ok {
		return fmt.Errorf("cannot place '%s' (%w)", screen.Name, ErrDuplicateName)
	}

	placed := &Screen{
		ID:       uuid.New(),
		Name:     screen.Name,
		Position: pos,
		IsServer: screen.IsServer,
	}
	if placed.IsServer {
		t.clearServer()
	}
	t.screens[placed.ID] = placed
	t.cells[pos] = placed.ID
	t.names[placed.Name] = placed.ID
	return nil
}

// RemoveScreen removes the named screen, freeing its cell.
func (t *Topology) RemoveScreen(name string) error {
	s, err := t.lookup(name)
	if err != nil {
		return err
	}
	delete(t.cells, s.Position)
	delete(t.names, s.Name)
	delete(t.screens, s.ID)
	return nil
}

// MoveScreen moves the named screen to another cell.
// Moving a screen onto its own cell does nothing.
func (t *Topology) MoveScreen(name string, column, row int) error {
	s, err := t.lookup(name)
	if err != nil {
		return err
	}
	pos := Position{Column: column, Row: row}
	if !t.Contains(pos) {
		return fmt.Errorf("cannot move '%s' to %s (%w)", name, pos, ErrOutOfBounds)
	}
	if occupant, ok := t.cells[pos]; ok {
		if occupant == s.ID {
			return nil
		}
		return fmt.Errorf("cannot move '%s' to %s, taken by '%s' (%w)", name, pos, t.screens[occupant].Name, ErrCellOccupied)
	}
	delete(t.cells, s.Position)
	s.Position = pos
	t.cells[pos] = s.ID
	return nil
}

// RenameScreen renames the named screen.
// References to the old name elsewhere (e.g. hotkey actions) are not touched.
func (t *Topology) RenameScreen(oldName, newName string) error {
	s, err := t.lookup(oldName)
	if err != nil {
		return err
	}
	if newName == oldName {
		return nil
	}
	if err := checkName(newName); err != nil {
		return fmt.Errorf("cannot rename '%s' (%w)", oldName, err)
	}
	if _, ok := t.names[newName]; ok {
		return fmt.Errorf("cannot rename '%s' to '%s' (%w)", oldName, newName, ErrDuplicateName)
	}
	delete(t.names, oldName)
	s.Name = newName
	t.names[newName] = s.ID
	return nil
}

// MarkAsServer makes the named screen the (only) server screen.
func (t *Topology) MarkAsServer(name string) error {
	s, err := t.lookup(name)
	if err != nil {
		return err
	}
	t.clearServer()
	s.IsServer = true
	return nil
}

// nameSeparators separate the arguments of an action in its text form.
const nameSeparators = ",:"

// checkName returns ErrInvalidName for names that are empty, have
// surrounding whitespace, or contain a separator of the action text form.
func checkName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty name (%w)", ErrInvalidName)
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("name '%s' has surrounding whitespace (%w)", name, ErrInvalidName)
	case strings.ContainsAny(name, nameSeparators):
		return fmt.Errorf("name '%s' contains one of '%s' (%w)", name, nameSeparators, ErrInvalidName)
	}
	return nil
}

func (t *Topology) clearServer() {
	for _, s := range t.screens {
		s.IsServer = false
	}
}

// ServerScreen returns the server screen, if one is designated.
func (t *Topology) ServerScreen() (Screen, bool) {
	for _, s := range t.screens {
		if s.IsServer {
			return *s, true
		}
	}
	return Screen{}, false
}

// Screen returns the named screen.
func (t *Topology) Screen(name string) (Screen, bool) {
	id, ok := t.names[name]
	if !ok {
		return Screen{}, false
	}
	return *t.screens[id], true
}

// ScreenAt returns the screen occupying the given cell.
func (t *Topology) ScreenAt(column, row int) (Screen, bool) {
	id, ok := t.cells[Position{Column: column, Row: row}]
	if !ok {
		return Screen{}, false
	}
	return *t.screens[id], true
}

// Screens returns all placed screens in row-major order.
func (t *Topology) Screens() []Screen {
	result := make([]Screen, 0, len(t.screens))
	for _, s := range t.screens {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Position, result[j].Position
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Column < b.Column
	})
	return result
}

// Resize changes the grid size.
// It fails if any placed screen would lie outside the new bounds.
func (t *Topology) Resize(columns, rows int) error {
	if columns <= 0 || rows <= 0 {
		return fmt.Errorf("grid of %dx%d (%w)", columns, rows, ErrInvalidDimensions)
	}
	for _, s := range t.screens {
		if s.Position.Column >= columns || s.Position.Row >= rows {
			return fmt.Errorf("'%s' at %s outside %dx%d grid (%w)", s.Name, s.Position, columns, rows, ErrWouldDropScreens)
		}
	}
	t.columns, t.rows = columns, rows
	return nil
}

// AdjacentScreen returns the screen next to the named one in the given
// direction.
// There is none if the named screen does not exist, the neighboring cell is
// outside the grid, or it is empty.
func (t *Topology) AdjacentScreen(name string, d Direction) (Screen, bool) {
	id, ok := t.names[name]
	if !ok {
		return Screen{}, false
	}
	next := t.screens[id].Position.Step(d)
	if !t.Contains(next) {
		return Screen{}, false
	}
	return t.ScreenAt(next.Column, next.Row)
}

// Link is an edge between two neighboring screens.
type Link struct {
	From      string
	Direction Direction
	To        string
}

// Links lists every link between neighboring screens, ordered by the
// originating screen (row-major) and then by direction (see Directions).
func (t *Topology) Links() []Link {
	var result []Link
	for _, s := range t.Screens() {
		for _, d := range Directions {
			if n, ok := t.AdjacentScreen(s.Name, d); ok {
				result = append(result, Link{From: s.Name, Direction: d, To: n.Name})
			}
		}
	}
	return result
}

func (t *Topology) lookup(name string) (*Screen, error) {
	id, ok := t.names[name]
	if !ok {
		return nil, fmt.Errorf("no screen named '%s' (%w)", name, ErrNotFound)
	}
	return t.screens[id], nil
}

func (t *Topology) clone() *Topology {
	c := &Topology{
		columns: t.columns,
		rows:    t.rows,
		screens: make(map[ScreenID]*Screen, len(t.screens)),
		cells:   make(map[Position]ScreenID, len(t.cells)),
		names:   make(map[string]ScreenID, len(t.names)),
	}
	for id, s := range t.screens {
		copied := *s
		c.screens[id] = &copied
	}
	for pos, id := range t.cells {
		c.cells[pos] = id
	}
	for name, id := range t.names {
		c.names[name] = id
	}
	return c
}
