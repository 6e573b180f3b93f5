package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/leereilly/tty-snake/internal/input"
	"github.com/leereilly/tty-snake/internal/sys"
	"github.com/leereilly/tty-snake/internal/sys/linux"
	"github.com/leereilly/tty-snake/internal/terminal"
)

func main() {
	limit := flag.Int("n", 0, "Stop after n keys (0 = until q)")
	flag.Parse()

	if !term.IsTerminal(sys.Stdin) {
		fmt.Fprintf(os.Stderr, "stdin is not a terminal\n")
		os.Exit(1)
	}

	proc := sys.New(linux.Calls{})
	ctrl := terminal.New(proc)
	if err := ctrl.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "entering raw mode: %v\n", err)
		os.Exit(1)
	}
	proc.OnInterrupt(func() {
		ctrl.DisableRawMode()
		proc.Exit(sys.ExitOK)
	})

	// Same decoder the game uses, so what is printed here is what the game sees.
	proc.Print("press keys, q to quit\n")
	n := input.Echo(ctrl, proc, *limit)
	ctrl.DisableRawMode()

	fmt.Printf("%d keys\n", n)
}
