package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/leereilly/tty-snake/internal/board"
)

// Direction is a heading, encoded 0-3 clockwise from east.
type Direction uint8

const (
	East Direction = iota
	South
	West
	North
)

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	}
	return "invalid"
}

// DirectionOf maps a cursor key to a heading.
func DirectionOf(k tcell.Key) (Direction, bool) {
	switch k {
	case tcell.KeyRight:
		return East, true
	case tcell.KeyDown:
		return South, true
	case tcell.KeyLeft:
		return West, true
	case tcell.KeyUp:
		return North, true
	}
	return 0, false
}

// move returns the cell next to p in direction d, or false if that would
// leave the board.
func move(p board.Pos, d Direction) (board.Pos, bool) {
	x, y := p.X(), p.Y()
	switch d {
	case East:
		if x == board.W-1 {
			return p, false
		}
		return p + 1, true
	case South:
		if y == board.H-1 {
			return p, false
		}
		return p + board.W, true
	case West:
		if x == 0 {
			return p, false
		}
		return p - 1, true
	case North:
		if y == 0 {
			return p, false
		}
		return p - board.W, true
	}
	return p, false
}
