package sys

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// Proc applies the process-wide retry and failure policy to a call table.
type Proc struct {
	calls Calls
}

// New wraps calls.
func New(calls Calls) *Proc {
	return &Proc{calls: calls}
}

// Exit terminates the process with status.
func (p *Proc) Exit(status int) {
	p.calls.Exit(status)
}

// Fatal writes msg to stderr and terminates with status. Errors while writing
// the diagnostic are ignored; there is nowhere left to report them.
func (p *Proc) Fatal(msg string, status int) {
	p.calls.Write(Stderr, append([]byte(msg), '\n'))
	p.calls.Exit(status)
}

// Write writes all of b to stdout.
func (p *Proc) Write(b []byte) {
	for len(b) > 0 {
		n, err := p.calls.Write(Stdout, b)
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil || n < 0 || n > len(b) {
			p.Fatal("write failed", ExitWrite)
			return
		}
		b = b[n:]
	}
}

// Print writes s to stdout.
func (p *Proc) Print(s string) {
	p.Write([]byte(s))
}

// Getch blocks until one byte has been read from stdin. End of input is
// treated as a read failure: nothing can arrive after it.
func (p *Proc) Getch() byte {
	var c [1]byte
	for {
		n, err := p.calls.Read(Stdin, c[:])
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil || n == 0 {
			p.Fatal("read failed", ExitRead)
			return 0
		}
		if n == 1 {
			return c[0]
		}
	}
}

// Pending reports whether at least one byte can be read from stdin without
// blocking.
func (p *Proc) Pending() bool {
	n, err := p.calls.Pending(Stdin)
	return err == nil && n > 0
}

// RandomBytes fills b completely with kernel randomness.
func (p *Proc) RandomBytes(b []byte) {
	for len(b) > 0 {
		n, err := p.calls.Getrandom(b)
		if err == unix.EINTR || err == unix.EAGAIN {
			continue
		}
		if err != nil || n < 0 || n > len(b) {
			p.Fatal("getrandom failed", ExitRandom)
			return
		}
		b = b[n:]
	}
}

// Random returns one random byte.
func (p *Proc) Random() byte {
	var b [1]byte
	p.RandomBytes(b[:])
	return b[0]
}

// Sleep suspends the caller for d, resuming after interruptions until the
// whole duration has elapsed.
func (p *Proc) Sleep(d time.Duration) {
	req := unix.NsecToTimespec(d.Nanoseconds())
	var rem unix.Timespec
	for {
		err := p.calls.Nanosleep(&req, &rem)
		if err == nil {
			return
		}
		if err != unix.EINTR {
			p.Fatal("nanosleep failed", ExitSleep)
			return
		}
		req = rem
	}
}

// GetTermios reads the line discipline of stdin.
func (p *Proc) GetTermios() (*unix.Termios, error) {
	return p.calls.GetTermios(Stdin)
}

// SetTermios replaces the line discipline of stdin.
func (p *Proc) SetTermios(t *unix.Termios) error {
	return p.calls.SetTermios(Stdin, t)
}

// Signal installs handler for sig.
func (p *Proc) Signal(sig os.Signal, handler func()) {
	p.calls.Signal(sig, handler)
}

// OnInterrupt installs handler for SIGINT.
func (p *Proc) OnInterrupt(handler func()) {
	p.Signal(unix.SIGINT, handler)
}
