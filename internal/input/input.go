// Package input decodes raw terminal bytes into keys.
//
// Only the cursor keys are recognised as such: ESC '[' followed by 'A', 'B',
// 'C' or 'D'. The two bytes after an ESC are always consumed. Every other byte
// is reported as a rune.
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Source supplies raw input bytes.
type Source interface {
	// PollPendingInput reports whether Getch would return without blocking.
	PollPendingInput() bool

	// Getch blocks until a byte is available.
	Getch() byte
}

const (
	esc = 0x1b
	csi = '['
)

// Next reads one key from src, blocking as needed.
func Next(src Source) (tcell.Key, rune) {
	c := src.Getch()
	if c != esc {
		return tcell.KeyRune, rune(c)
	}

	intro := src.Getch()
	final := src.Getch()
	if intro != csi {
		return tcell.KeyEscape, 0
	}
	switch final {
	case 'A':
		return tcell.KeyUp, 0
	case 'B':
		return tcell.KeyDown, 0
	case 'C':
		return tcell.KeyRight, 0
	case 'D':
		return tcell.KeyLeft, 0
	}
	return tcell.KeyEscape, 0
}

// IsArrow reports whether k is a cursor key.
func IsArrow(k tcell.Key) bool {
	switch k {
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		return true
	}
	return false
}

// Drain consumes all input that is already queued and returns the last
// cursor key among it. Earlier cursor keys in the same batch are dropped.
func Drain(src Source) (key tcell.Key, ok bool) {
	for src.PollPendingInput() {
		k, _ := Next(src)
		if IsArrow(k) {
			key, ok = k, true
		}
	}
	return key, ok
}
