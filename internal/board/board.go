// Package board holds the fixed play field geometry.
package board

// ---- Dimensions

const (
	// W is the number of columns.
	W = 16

	// H is the number of rows.
	H = 16

	// Cells is the total number of cells on the board.
	Cells = W * H
)

// Every cell index must fit a Pos.
const _ = Pos(Cells - 1)

// Pos is a cell index in [0, Cells), row-major.
type Pos uint8

// At returns the position of column x, row y.
func At(x, y int) Pos {
	return Pos(y*W + x)
}

// X returns the column of p.
func (p Pos) X() int { return int(p) % W }

// Y returns the row of p.
func (p Pos) Y() int { return int(p) / W }

// Center is the cell the snake starts on.
const Center = Pos(W*(H/2) + W/2)
