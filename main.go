package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/peterbourgon/ff/v3/ffcli"
	"golang.org/x/term"

	"github.com/leereilly/tty-snake/internal/game"
	"github.com/leereilly/tty-snake/internal/input"
	"github.com/leereilly/tty-snake/internal/render"
	"github.com/leereilly/tty-snake/internal/sys"
	"github.com/leereilly/tty-snake/internal/sys/linux"
	"github.com/leereilly/tty-snake/internal/terminal"
)

func main() {
	rootFlagSet := flag.NewFlagSet("snake", flag.ExitOnError)

	keysFlagSet := flag.NewFlagSet("snake keys", flag.ExitOnError)
	keysLimit := keysFlagSet.Int("n", 0, "Stop after n keys (0 = until q)")

	keysCmd := &ffcli.Command{
		Name:       "keys",
		ShortUsage: "snake keys [flags]",
		ShortHelp:  "Print the name of each key pressed",
		FlagSet:    keysFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			if err := requireTerminal(); err != nil {
				return err
			}
			return execKeys(sys.New(linux.Calls{}), *keysLimit)
		},
	}

	rootCmd := &ffcli.Command{
		ShortUsage:  "snake [subcommand]",
		ShortHelp:   "Snake on a 16x16 board, drawn with ANSI escapes",
		LongHelp:    "Controls:\n  Arrow keys  Steer\n  Ctrl+C      Quit",
		FlagSet:     rootFlagSet,
		Subcommands: []*ffcli.Command{keysCmd},
		Exec: func(ctx context.Context, args []string) error {
			if err := requireTerminal(); err != nil {
				return err
			}
			return execGame(sys.New(linux.Calls{}), game.DefaultConfig())
		},
	}

	if err := rootCmd.ParseAndRun(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func requireTerminal() error {
	if !term.IsTerminal(sys.Stdin) {
		return errors.New("stdin is not a terminal")
	}
	return nil
}

// ============================================================================
// Game
// ============================================================================

// execGame takes over the terminal and plays until the game ends. It only
// returns on setup errors; every other path leaves through Controller.Quit.
func execGame(proc *sys.Proc, cfg game.Config) error {
	ctrl := terminal.New(proc)
	if err := ctrl.EnableRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	proc.OnInterrupt(func() { ctrl.Quit("") })

	guard(ctrl, func() { play(proc, ctrl, cfg) })
	return nil
}

// guard runs fn and turns a panic into an orderly quit.
func guard(ctrl *terminal.Controller, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			ctrl.Quit("panic!\n")
		}
	}()
	fn()
}

// round is one game from first apple to end state.
type round interface {
	Start()
	Run() game.State
}

// newRound builds the game play drives. Tile output goes through the
// controller so nothing reaches the screen once Quit has begun.
var newRound = func(cfg game.Config, proc *sys.Proc, ctrl *terminal.Controller) round {
	r := render.New(ctrl)
	r.DrawBorder(cfg.BorderColor)
	return game.New(cfg, r, proc, proc, ctrl)
}

func play(proc *sys.Proc, ctrl *terminal.Controller, cfg game.Config) {
	ctrl.HideCursor()
	ctrl.EnterAlternateScreen()
	ctrl.Clear()

	g := newRound(cfg, proc, ctrl)
	g.Start()

	msg := ""
	if g.Run() == game.Won {
		msg = "you won!\n"
	}
	ctrl.Quit(msg)
}

// ============================================================================
// Key echo
// ============================================================================

func execKeys(proc *sys.Proc, limit int) error {
	ctrl := terminal.New(proc)
	if err := ctrl.EnableRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	proc.OnInterrupt(func() {
		ctrl.DisableRawMode()
		proc.Exit(sys.ExitOK)
	})
	defer ctrl.DisableRawMode()

	proc.Print("press keys, q to quit\n")
	input.Echo(ctrl, proc, limit)
	return nil
}
