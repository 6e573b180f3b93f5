package terminal

var (
	csiCursorHide     = []byte("\x1b[?25l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiClear          = []byte("\x1b[2J\x1b[H")
)
