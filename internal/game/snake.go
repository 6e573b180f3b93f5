package game

import (
	"github.com/leereilly/tty-snake/internal/board"
)

// MaxLen is the longest the snake gets before a win. Eating an apple at this
// length fills the last free cell.
const MaxLen = board.Cells - 1

// Snake is the body, heading and current apple. Body holds Len live
// segments, head first; the array never grows.
type Snake struct {
	body  [board.Cells]board.Pos
	len   int
	dir   Direction
	apple board.Pos
}

// Head returns the first segment.
func (s *Snake) Head() board.Pos { return s.body[0] }

// Len returns the number of live segments.
func (s *Snake) Len() int { return s.len }

// Body returns the live segments, head first. The slice aliases s.
func (s *Snake) Body() []board.Pos { return s.body[:s.len] }

// Heading returns the direction of travel.
func (s *Snake) Heading() Direction { return s.dir }

// Apple returns the apple position.
func (s *Snake) Apple() board.Pos { return s.apple }

// Occupies reports whether a live segment covers p.
func (s *Snake) Occupies(p board.Pos) bool {
	for _, q := range s.body[:s.len] {
		if q == p {
			return true
		}
	}
	return false
}
