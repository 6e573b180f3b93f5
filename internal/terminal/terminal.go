package terminal

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/unix"

	"github.com/leereilly/tty-snake/internal/sys"
)

// Proc is the part of the shim the controller drives.
type Proc interface {
	Write(p []byte)
	Getch() byte
	Pending() bool
	GetTermios() (*unix.Termios, error)
	SetTermios(t *unix.Termios) error
	Exit(status int)
}

// Mode is the line discipline state.
type Mode uint8

const (
	Cooked Mode = iota
	Raw
)

func (m Mode) String() string {
	if m == Raw {
		return "raw"
	}
	return "cooked"
}

// Controller owns the saved line discipline for the lifetime of the process.
type Controller struct {
	proc Proc

	mu    sync.Mutex
	mode  Mode
	saved *unix.Termios

	// quitting is set once Quit starts; Write drops everything after it.
	quitting atomic.Bool
}

// New returns a controller in the cooked state.
func New(proc Proc) *Controller {
	return &Controller{proc: proc}
}

// Mode returns the current state.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// EnableRawMode saves the line discipline and turns off canonical input and
// echo. Calling it while already raw is a no-op, so the first snapshot is the
// one restored.
func (c *Controller) EnableRawMode() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == Raw {
		return nil
	}

	t, err := c.proc.GetTermios()
	if err != nil {
		return fmt.Errorf("tcgets: %w", err)
	}
	saved := *t

	t.Lflag &^= unix.ICANON | unix.ECHO
	if err := c.proc.SetTermios(t); err != nil {
		return fmt.Errorf("tcsets: %w", err)
	}

	c.saved = &saved
	c.mode = Raw
	return nil
}

// DisableRawMode writes back the saved line discipline. Without a snapshot it
// does nothing; with one it may be called any number of times.
func (c *Controller) DisableRawMode() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restore()
}

func (c *Controller) restore() error {
	if c.saved == nil {
		return nil
	}
	t := *c.saved
	if err := c.proc.SetTermios(&t); err != nil {
		return fmt.Errorf("tcsets: %w", err)
	}
	c.mode = Cooked
	return nil
}

func (c *Controller) EnterAlternateScreen() { c.proc.Write(csiAltScreenEnter) }
func (c *Controller) LeaveAlternateScreen() { c.proc.Write(csiAltScreenExit) }
func (c *Controller) HideCursor()           { c.proc.Write(csiCursorHide) }
func (c *Controller) ShowCursor()           { c.proc.Write(csiCursorShow) }

// Clear blanks the screen and homes the cursor.
func (c *Controller) Clear() { c.proc.Write(csiClear) }

// Write sends screen output unless shutdown has begun. A write already in
// flight when Quit is called finishes before Quit restores the screen.
func (c *Controller) Write(p []byte) {
	if c.quitting.Load() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.quitting.Load() {
		return
	}
	c.proc.Write(p)
}

// PollPendingInput reports whether a byte can be read without blocking.
func (c *Controller) PollPendingInput() bool {
	return c.proc.Pending()
}

// Getch reads one input byte, blocking until it arrives.
func (c *Controller) Getch() byte {
	return c.proc.Getch()
}

// Quit shows the cursor, leaves the alternate screen, restores the saved line
// discipline, prints msg and exits with status 0. Quit does not return. A
// caller racing with another Quit blocks until the process is gone, and
// output sent through Write afterwards is dropped.
func (c *Controller) Quit(msg string) {
	c.quitting.Store(true)
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ShowCursor()
	c.LeaveAlternateScreen()
	c.Clear()
	_ = c.restore()

	if msg != "" {
		c.proc.Write([]byte(msg))
	}
	c.proc.Exit(sys.ExitOK)
}
