// Package game implements the snake rules and the tick loop.
package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/leereilly/tty-snake/internal/board"
	"github.com/leereilly/tty-snake/internal/input"
)

// State is the outcome of a step.
type State uint8

const (
	Running State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "invalid"
}

// Display draws and erases cells.
type Display interface {
	ClearTile(p board.Pos)
	DrawTile(c tcell.Color, p board.Pos)
}

// Random yields uniformly random bytes.
type Random interface {
	Random() byte
}

// Clock suspends the loop between ticks.
type Clock interface {
	Sleep(d time.Duration)
}

// Game owns the snake and apple. It is driven from a single goroutine.
type Game struct {
	cfg     Config
	snake   Snake
	state   State
	display Display
	rand    Random
	clock   Clock
	keys    input.Source
}

// New returns a game with a one-segment snake in the centre of the board,
// heading east. No apple is placed until Start.
func New(cfg Config, display Display, rnd Random, clock Clock, keys input.Source) *Game {
	g := &Game{
		cfg:     cfg,
		display: display,
		rand:    rnd,
		clock:   clock,
		keys:    keys,
	}
	g.snake.body[0] = board.Center
	g.snake.len = 1
	g.snake.dir = East
	return g
}

// Snake returns the current snake.
func (g *Game) Snake() *Snake { return &g.snake }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Start places and draws the first apple.
func (g *Game) Start() {
	g.placeApple()
	g.display.DrawTile(g.cfg.AppleColor, g.snake.apple)
}

// Run steps the game once per tick, reading input between steps, until the
// snake dies or fills the board.
func (g *Game) Run() State {
	for {
		if st := g.Step(); st != Running {
			return st
		}
		g.clock.Sleep(g.cfg.Tick)
		g.readInput()
	}
}

// Step advances the snake by one cell.
func (g *Game) Step() State {
	if g.state != Running {
		return g.state
	}
	s := &g.snake

	head, ok := move(s.body[0], s.dir)
	if !ok {
		g.state = Lost
		return g.state
	}
	// Every pre-move segment counts, including the tail about to move away.
	if s.Occupies(head) {
		g.state = Lost
		return g.state
	}

	// Shift from the tail so nothing is overwritten before it is copied.
	// body[len] ends up holding the old tail.
	for i := s.len - 1; i >= 0; i-- {
		s.body[i+1] = s.body[i]
	}
	s.body[0] = head

	if head == s.apple {
		if s.len == MaxLen {
			g.state = Won
			return g.state
		}
		s.len++
		g.display.ClearTile(s.apple)
		g.placeApple()
		g.display.DrawTile(g.cfg.AppleColor, s.apple)
	} else {
		g.display.ClearTile(s.body[s.len])
	}

	g.display.DrawTile(g.cfg.SnakeColor, head)
	return Running
}

// Steer changes the heading to d unless d points straight back.
func (g *Game) Steer(d Direction) {
	if d != g.snake.dir.Reverse() {
		g.snake.dir = d
	}
}

func (g *Game) readInput() {
	k, ok := input.Drain(g.keys)
	if !ok {
		return
	}
	if d, ok := DirectionOf(k); ok {
		g.Steer(d)
	}
}

// placeApple moves the apple to a random free cell.
func (g *Game) placeApple() {
	for {
		p := g.sample()
		if !g.snake.Occupies(p) {
			g.snake.apple = p
			return
		}
	}
}

// sample draws a random cell. One random byte covers the whole board; bytes
// past the last cell are drawn again.
func (g *Game) sample() board.Pos {
	for {
		b := int(g.rand.Random())
		if b < board.Cells {
			return board.Pos(b)
		}
	}
}
