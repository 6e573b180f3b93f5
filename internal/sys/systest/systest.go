// Package systest provides a scripted call table for tests.
package systest

import (
	"bytes"
	"os"
	"runtime"
	"time"

	"golang.org/x/sys/unix"

	"github.com/leereilly/tty-snake/internal/sys"
)

// Calls is an in-memory call table. Stdout and stderr are captured, stdin is
// served from In, randomness comes from a seeded keystream.
type Calls struct {
	Out bytes.Buffer
	Err bytes.Buffer
	In  []byte

	// Termios is the current line discipline of stdin.
	Termios     unix.Termios
	TermiosSets int

	// Random backs Getrandom.
	Random *Keystream

	// MaxWrite and MaxRandom cap the bytes moved per call (0 = no cap).
	MaxWrite  int
	MaxRandom int

	// Transient counts how many EINTR results each call returns before it
	// starts succeeding.
	WriteEINTR  int
	ReadEINTR   int
	SleepEINTR  int
	RandomEINTR int

	// Failures injected as the result of every call.
	WriteErr   error
	ReadErr    error
	SleepErr   error
	RandomErr  error
	TermiosErr error

	Slept    []time.Duration
	handlers map[os.Signal]func()

	exited   bool
	exitCode int
}

// New returns a table whose terminal is in cooked mode with echo on.
func New() *Calls {
	return &Calls{
		Termios: unix.Termios{
			Iflag: unix.ICRNL,
			Oflag: unix.OPOST,
			Lflag: unix.ICANON | unix.ECHO | unix.ISIG,
		},
		Random:   NewKeystream(1),
		handlers: make(map[os.Signal]func()),
	}
}

// Run calls fn on its own goroutine and reports the status passed to Exit,
// if fn exited. Exit unwinds fn with runtime.Goexit, so deferred calls run
// but recover sees nothing.
func (c *Calls) Run(fn func()) (code int, exited bool) {
	c.exited, c.exitCode = false, 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	<-done
	return c.exitCode, c.exited
}

// Raise delivers sig to its installed handler.
func (c *Calls) Raise(sig os.Signal) {
	if h, ok := c.handlers[sig]; ok {
		h()
	}
}

// Handles reports whether a handler is installed for sig.
func (c *Calls) Handles(sig os.Signal) bool {
	_, ok := c.handlers[sig]
	return ok
}

// Exit must only be reached from inside Run.
func (c *Calls) Exit(status int) {
	c.exited, c.exitCode = true, status
	runtime.Goexit()
}

func (c *Calls) Write(fd int, p []byte) (int, error) {
	if c.WriteEINTR > 0 {
		c.WriteEINTR--
		return 0, unix.EINTR
	}
	if c.WriteErr != nil && fd == sys.Stdout {
		return 0, c.WriteErr
	}
	if c.MaxWrite > 0 && len(p) > c.MaxWrite {
		p = p[:c.MaxWrite]
	}
	switch fd {
	case sys.Stdout:
		c.Out.Write(p)
	case sys.Stderr:
		c.Err.Write(p)
	default:
		return 0, unix.EBADF
	}
	return len(p), nil
}

func (c *Calls) Read(fd int, p []byte) (int, error) {
	if c.ReadEINTR > 0 {
		c.ReadEINTR--
		return 0, unix.EINTR
	}
	if c.ReadErr != nil {
		return 0, c.ReadErr
	}
	if fd != sys.Stdin {
		return 0, unix.EBADF
	}
	n := copy(p, c.In)
	c.In = c.In[n:]
	return n, nil
}

func (c *Calls) Nanosleep(req, rem *unix.Timespec) error {
	if c.SleepErr != nil {
		return c.SleepErr
	}
	d := time.Duration(req.Nano())
	if c.SleepEINTR > 0 {
		c.SleepEINTR--
		half := d / 2
		c.Slept = append(c.Slept, half)
		*rem = unix.NsecToTimespec(int64(d - half))
		return unix.EINTR
	}
	c.Slept = append(c.Slept, d)
	return nil
}

func (c *Calls) Getrandom(p []byte) (int, error) {
	if c.RandomEINTR > 0 {
		c.RandomEINTR--
		return 0, unix.EINTR
	}
	if c.RandomErr != nil {
		return 0, c.RandomErr
	}
	if c.MaxRandom > 0 && len(p) > c.MaxRandom {
		p = p[:c.MaxRandom]
	}
	return c.Random.Getrandom(p)
}

func (c *Calls) GetTermios(fd int) (*unix.Termios, error) {
	if c.TermiosErr != nil {
		return nil, c.TermiosErr
	}
	t := c.Termios
	return &t, nil
}

func (c *Calls) SetTermios(fd int, t *unix.Termios) error {
	if c.TermiosErr != nil {
		return c.TermiosErr
	}
	c.Termios = *t
	c.TermiosSets++
	return nil
}

func (c *Calls) Pending(fd int) (int, error) {
	return len(c.In), nil
}

func (c *Calls) Signal(sig os.Signal, handler func()) {
	c.handlers[sig] = handler
}
