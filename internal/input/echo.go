package input

import (
	"github.com/gdamore/tcell/v2"
)

// Writer takes complete byte runs.
type Writer interface {
	Write(p []byte)
}

// QuitRune ends Echo.
const QuitRune = 'q'

// Name returns a printable name for a decoded key.
func Name(k tcell.Key, r rune) string {
	if k == tcell.KeyRune {
		if r < 0x20 || r == 0x7f {
			return "Ctrl[" + string(r^0x40) + "]"
		}
		return "Rune[" + string(r) + "]"
	}
	if name, ok := tcell.KeyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Echo writes the name of each key read from src on its own line until q is
// pressed or, when limit > 0, limit keys have been read. It returns the number
// of keys echoed.
func Echo(src Source, w Writer, limit int) int {
	n := 0
	for limit <= 0 || n < limit {
		k, r := Next(src)
		if k == tcell.KeyRune && r == QuitRune {
			break
		}
		w.Write([]byte(Name(k, r) + "\n"))
		n++
	}
	return n
}
