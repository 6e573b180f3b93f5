// Package sys is the program's only path to the operating system.
//
// Calls is the raw call table: each method maps onto one system call and
// reports failure as a unix.Errno without retrying. Proc layers the process
// policy on top of it: transient conditions (EINTR, EAGAIN, partial writes,
// partial random fills, interrupted sleeps) are retried in place, anything
// else prints a one-line diagnostic on stderr and terminates the process with
// an operation-specific status.
package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

// Standard descriptors.
const (
	Stdin  = 0
	Stdout = 1
	Stderr = 2
)

// Process exit statuses.
const (
	ExitOK     = 0
	ExitWrite  = 10
	ExitRead   = 11
	ExitRandom = 12
	ExitSleep  = 13
)

// Calls is the raw call table.
type Calls interface {
	// Exit ends the process. It does not return.
	Exit(status int)

	Write(fd int, p []byte) (int, error)
	Read(fd int, p []byte) (int, error)

	// Nanosleep sleeps for req. When interrupted it fails with EINTR and
	// stores the unslept time in rem.
	Nanosleep(req, rem *unix.Timespec) error

	// Getrandom fills up to len(p) bytes from the kernel entropy pool.
	Getrandom(p []byte) (int, error)

	// Device control on a terminal descriptor.
	GetTermios(fd int) (*unix.Termios, error)
	SetTermios(fd int, t *unix.Termios) error
	Pending(fd int) (int, error)

	// Signal installs handler for sig. The handler runs outside the
	// interrupted code path and is expected to end the process.
	Signal(sig os.Signal, handler func())
}
