// Package render turns board positions and palette colours into ANSI escape
// sequences.
//
// Every game cell is two terminal columns wide so that cells look roughly
// square. The play field starts at row 2, column 3 (1-based), leaving room for
// a one-cell border.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/leereilly/tty-snake/internal/board"
)

// Writer takes complete byte runs. It does not report errors; a failed write
// ends the process.
type Writer interface {
	Write(p []byte)
}

// ---- Layout

const (
	// RowOffset is the terminal row of board row 0.
	RowOffset = 2

	// ColOffset is the terminal column of board column 0.
	ColOffset = 3

	// CellWidth is the number of terminal columns per cell.
	CellWidth = 2
)

var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")
	blank    = []byte("  ")
)

// Renderer writes tiles through w. It reuses one scratch buffer, so a
// Renderer must not be shared between goroutines.
type Renderer struct {
	w   Writer
	buf [64]byte
}

// New returns a renderer writing to w.
func New(w Writer) *Renderer {
	return &Renderer{w: w}
}

// Row returns the terminal row of p.
func Row(p board.Pos) int { return p.Y() + RowOffset }

// Col returns the terminal column of p.
func Col(p board.Pos) int { return p.X()*CellWidth + ColOffset }

// BackgroundCode returns the SGR background code (40-47) of a palette colour.
// Bright palette entries fold onto their normal counterparts; anything else,
// including RGB colours, is drawn black.
func BackgroundCode(c tcell.Color) uint32 {
	if !c.Valid() || c.IsRGB() || c < tcell.ColorBlack || c > tcell.ColorWhite {
		return 40
	}
	return 40 + uint32(c-tcell.ColorBlack)%8
}

// MoveCursor positions the cursor at a 1-based row and column.
func (r *Renderer) MoveCursor(row, col int) {
	r.w.Write(appendCursor(r.buf[:0], row, col))
}

// SetBackground selects c as the background colour.
func (r *Renderer) SetBackground(c tcell.Color) {
	r.w.Write(appendBackground(r.buf[:0], c))
}

// ResetStyle clears all colours and attributes.
func (r *Renderer) ResetStyle() {
	r.w.Write(csiReset)
}

// ClearTile blanks the cell at p.
func (r *Renderer) ClearTile(p board.Pos) {
	b := appendCursor(r.buf[:0], Row(p), Col(p))
	b = append(b, csiReset...)
	b = append(b, blank...)
	r.w.Write(b)
}

// DrawTile paints the cell at p with background colour c.
func (r *Renderer) DrawTile(c tcell.Color, p board.Pos) {
	r.w.Write(appendTile(r.buf[:0], c, Row(p), Col(p)))
}

// DrawBorder paints the ring of cells surrounding the board.
func (r *Renderer) DrawBorder(c tcell.Color) {
	const (
		top    = RowOffset - 1
		bottom = RowOffset + board.H
		left   = ColOffset - CellWidth
		right  = ColOffset + board.W*CellWidth
	)
	for col := left; col <= right; col += CellWidth {
		r.w.Write(appendTile(r.buf[:0], c, top, col))
	}
	for row := top + 1; row < bottom; row++ {
		r.w.Write(appendTile(r.buf[:0], c, row, left))
		r.w.Write(appendTile(r.buf[:0], c, row, right))
	}
	for col := left; col <= right; col += CellWidth {
		r.w.Write(appendTile(r.buf[:0], c, bottom, col))
	}
}

func appendCursor(b []byte, row, col int) []byte {
	b = append(b, csi...)
	b = appendUint(b, uint32(row))
	b = append(b, ';')
	b = appendUint(b, uint32(col))
	return append(b, 'H')
}

func appendBackground(b []byte, c tcell.Color) []byte {
	b = append(b, csi...)
	b = appendUint(b, BackgroundCode(c))
	return append(b, 'm')
}

func appendTile(b []byte, c tcell.Color, row, col int) []byte {
	b = appendCursor(b, row, col)
	b = appendBackground(b, c)
	b = append(b, blank...)
	return append(b, csiReset...)
}
