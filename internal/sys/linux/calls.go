//go:build linux

// Package linux is the raw call table for Linux.
package linux

import (
	"os"

	"github.com/awnumar/memguard"
	"golang.org/x/sys/unix"
)

// Calls issues the real system calls.
type Calls struct{}

func (Calls) Exit(status int) {
	unix.Exit(status)
}

func (Calls) Write(fd int, p []byte) (int, error) {
	return unix.Write(fd, p)
}

func (Calls) Read(fd int, p []byte) (int, error) {
	return unix.Read(fd, p)
}

func (Calls) Nanosleep(req, rem *unix.Timespec) error {
	return unix.Nanosleep(req, rem)
}

func (Calls) Getrandom(p []byte) (int, error) {
	return unix.Getrandom(p, 0)
}

func (Calls) GetTermios(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, unix.TCGETS)
}

func (Calls) SetTermios(fd int, t *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TCSETS, t)
}

// Pending returns the number of bytes queued for reading (FIONREAD).
func (Calls) Pending(fd int) (int, error) {
	return unix.IoctlGetInt(fd, unix.TIOCINQ)
}

// Signal hands sig to the runtime and runs handler on memguard's signal
// goroutine. The handler is expected to exit; if it returns, memguard exits
// the process after purging its own state.
func (Calls) Signal(sig os.Signal, handler func()) {
	memguard.CatchSignal(func(os.Signal) {
		handler()
	}, sig)
}
