package model

import (
	"fmt"
	"strings"
)

// Direction is a compass direction across a screen edge.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists all directions, in the order in which links are reported.
var Directions = []Direction{Left, Right, Up, Down}

func (d Direction) offset() (column, row int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses a direction name as returned by Direction.String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown direction '%s'", s)
}
