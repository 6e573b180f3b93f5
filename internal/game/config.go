package game

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// ---- Timing and Palette

const (
	// DefaultTick is the delay between two steps.
	DefaultTick = 300 * time.Millisecond

	// DefaultSnakeColor paints the snake.
	DefaultSnakeColor = tcell.ColorGreen

	// DefaultAppleColor paints the apple.
	DefaultAppleColor = tcell.ColorOlive

	// DefaultBorderColor paints the ring around the board.
	DefaultBorderColor = tcell.ColorGreen
)

// Config holds the fixed game parameters.
type Config struct {
	Tick        time.Duration
	SnakeColor  tcell.Color
	AppleColor  tcell.Color
	BorderColor tcell.Color
}

// DefaultConfig returns the parameters the game ships with.
func DefaultConfig() Config {
	return Config{
		Tick:        DefaultTick,
		SnakeColor:  DefaultSnakeColor,
		AppleColor:  DefaultAppleColor,
		BorderColor: DefaultBorderColor,
	}
}
