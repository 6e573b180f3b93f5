// Package terminal controls the line discipline and screen modes of the
// controlling terminal.
//
// The controller has two states. Cooked is the state the program starts in;
// EnableRawMode saves the current line discipline and switches input to
// byte-at-a-time delivery without echo (Raw). DisableRawMode writes the saved
// settings back. Screen and cursor toggles are plain escape sequences and are
// not tracked.
//
// Quit is the single shutdown path shared by normal termination, a win, the
// interrupt handler and panic recovery.
package terminal
