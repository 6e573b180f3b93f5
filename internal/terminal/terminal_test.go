package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/leereilly/tty-snake/internal/sys"
	"github.com/leereilly/tty-snake/internal/sys/systest"
)

func newController() (*Controller, *systest.Calls) {
	calls := systest.New()
	return New(sys.New(calls)), calls
}

func TestController_EnableRawMode(t *testing.T) {
	c, calls := newController()
	original := calls.Termios
	require.Equal(t, Cooked, c.Mode())

	require.NoError(t, c.EnableRawMode())
	assert.Equal(t, Raw, c.Mode())
	assert.Zero(t, calls.Termios.Lflag&unix.ICANON, "canonical input cleared")
	assert.Zero(t, calls.Termios.Lflag&unix.ECHO, "echo cleared")
	assert.NotZero(t, calls.Termios.Lflag&unix.ISIG, "signals still generated")
	assert.Equal(t, original.Iflag, calls.Termios.Iflag)
	assert.Equal(t, original.Oflag, calls.Termios.Oflag)

	t.Run("second enable keeps the first snapshot", func(t *testing.T) {
		require.NoError(t, c.EnableRawMode())
		require.NoError(t, c.DisableRawMode())
		assert.Equal(t, original, calls.Termios)
		assert.Equal(t, Cooked, c.Mode())
	})
}

func TestController_EnableRawModeError(t *testing.T) {
	c, calls := newController()
	calls.TermiosErr = unix.ENOTTY

	err := c.EnableRawMode()
	require.Error(t, err)
	assert.ErrorIs(t, err, unix.ENOTTY)
	assert.Equal(t, Cooked, c.Mode())
}

func TestController_DisableRawMode(t *testing.T) {
	t.Run("without a snapshot", func(t *testing.T) {
		c, calls := newController()
		require.NoError(t, c.DisableRawMode())
		assert.Zero(t, calls.TermiosSets)
	})

	t.Run("repeated restores are identical", func(t *testing.T) {
		c, calls := newController()
		original := calls.Termios
		require.NoError(t, c.EnableRawMode())

		require.NoError(t, c.DisableRawMode())
		require.NoError(t, c.DisableRawMode())
		assert.Equal(t, original, calls.Termios)
		assert.Equal(t, 3, calls.TermiosSets)
	})
}

func TestController_ScreenToggles(t *testing.T) {
	c, calls := newController()
	c.HideCursor()
	c.EnterAlternateScreen()
	c.Clear()
	assert.Equal(t, "\x1b[?25l\x1b[?1049h\x1b[2J\x1b[H", calls.Out.String())

	calls.Out.Reset()
	c.ShowCursor()
	c.LeaveAlternateScreen()
	assert.Equal(t, "\x1b[?25h\x1b[?1049l", calls.Out.String())
}

func TestController_PollPendingInput(t *testing.T) {
	c, calls := newController()
	assert.False(t, c.PollPendingInput())

	calls.In = []byte("x")
	require.True(t, c.PollPendingInput())
	assert.Equal(t, byte('x'), c.Getch())
	assert.False(t, c.PollPendingInput())
}

func TestController_Quit(t *testing.T) {
	c, calls := newController()
	original := calls.Termios
	require.NoError(t, c.EnableRawMode())

	code, exited := calls.Run(func() { c.Quit("you won!\n") })
	require.True(t, exited)
	assert.Equal(t, sys.ExitOK, code)
	assert.Equal(t, original, calls.Termios)
	assert.Equal(t, Cooked, c.Mode())
	assert.Equal(t, "\x1b[?25h\x1b[?1049l\x1b[2J\x1b[Hyou won!\n", calls.Out.String())

	t.Run("second quit restores the same settings", func(t *testing.T) {
		calls.Out.Reset()
		code, exited := calls.Run(func() { c.Quit("") })
		require.True(t, exited)
		assert.Equal(t, sys.ExitOK, code)
		assert.Equal(t, original, calls.Termios)
		assert.Equal(t, "\x1b[?25h\x1b[?1049l\x1b[2J\x1b[H", calls.Out.String())
	})
}

func TestController_QuitFromInterrupt(t *testing.T) {
	calls := systest.New()
	proc := sys.New(calls)
	c := New(proc)
	original := calls.Termios
	require.NoError(t, c.EnableRawMode())
	proc.OnInterrupt(func() { c.Quit("") })

	code, exited := calls.Run(func() { calls.Raise(unix.SIGINT) })
	require.True(t, exited)
	assert.Equal(t, sys.ExitOK, code)
	assert.Equal(t, original, calls.Termios)
}

func TestController_Write(t *testing.T) {
	c, calls := newController()
	require.NoError(t, c.EnableRawMode())

	c.Write([]byte("tile"))
	assert.Equal(t, "tile", calls.Out.String())

	calls.Run(func() { c.Quit("") })
	calls.Out.Reset()
	c.Write([]byte("late"))
	assert.Empty(t, calls.Out.String(), "output after quit is dropped")
}

// gatedProc holds a write of "tile" until release is closed.
type gatedProc struct {
	*sys.Proc
	started chan struct{}
	release chan struct{}
}

func (p *gatedProc) Write(b []byte) {
	if string(b) == "tile" {
		close(p.started)
		<-p.release
	}
	p.Proc.Write(b)
}

func TestController_QuitWaitsForWrite(t *testing.T) {
	calls := systest.New()
	p := &gatedProc{
		Proc:    sys.New(calls),
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	c := New(p)
	require.NoError(t, c.EnableRawMode())

	wrote := make(chan struct{})
	go func() {
		c.Write([]byte("tile"))
		close(wrote)
	}()
	<-p.started

	quit := make(chan int)
	go func() {
		code, _ := calls.Run(func() { c.Quit("") })
		quit <- code
	}()
	close(p.release)
	<-wrote
	assert.Equal(t, sys.ExitOK, <-quit)

	assert.Equal(t, "tile\x1b[?25h\x1b[?1049l\x1b[2J\x1b[H", calls.Out.String(),
		"the tile lands before the screen is restored")

	c.Write([]byte("tile"))
	assert.Equal(t, "tile\x1b[?25h\x1b[?1049l\x1b[2J\x1b[H", calls.Out.String())
}
