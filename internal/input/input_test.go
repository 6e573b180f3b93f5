package input

import (
	"bytes"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

type byteSource struct {
	in    []byte
	reads int
}

func (s *byteSource) PollPendingInput() bool { return len(s.in) > 0 }

func (s *byteSource) Getch() byte {
	c := s.in[0]
	s.in = s.in[1:]
	s.reads++
	return c
}

type lineWriter struct{ bytes.Buffer }

func (w *lineWriter) Write(p []byte) { w.Buffer.Write(p) }

func TestNext(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		wantKey   tcell.Key
		wantRune  rune
		wantReads int
	}{
		{"up", []byte("\x1b[A"), tcell.KeyUp, 0, 3},
		{"down", []byte("\x1b[B"), tcell.KeyDown, 0, 3},
		{"right", []byte("\x1b[C"), tcell.KeyRight, 0, 3},
		{"left", []byte("\x1b[D"), tcell.KeyLeft, 0, 3},
		{"plain rune", []byte("w"), tcell.KeyRune, 'w', 1},
		{"unknown final byte", []byte("\x1b[Z"), tcell.KeyEscape, 0, 3},
		{"escape without bracket", []byte("\x1bOA"), tcell.KeyEscape, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &byteSource{in: tt.data}
			k, r := Next(src)
			assert.Equal(t, tt.wantKey, k)
			assert.Equal(t, tt.wantRune, r)
			assert.Equal(t, tt.wantReads, src.reads)
		})
	}
}

func TestDrain(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantKey tcell.Key
		wantOK  bool
	}{
		{"nothing queued", nil, 0, false},
		{"single arrow", []byte("\x1b[A"), tcell.KeyUp, true},
		{"last arrow wins", []byte("\x1b[A\x1b[D\x1b[B"), tcell.KeyDown, true},
		{"runes ignored", []byte("xy\x1b[Cz"), tcell.KeyRight, true},
		{"only runes", []byte("hello"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &byteSource{in: tt.data}
			k, ok := Drain(src)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, k)
			}
			assert.Empty(t, src.in, "queue fully drained")
		})
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "Up", Name(tcell.KeyUp, 0))
	assert.Equal(t, "Left", Name(tcell.KeyLeft, 0))
	assert.Equal(t, "Esc", Name(tcell.KeyEscape, 0))
	assert.Equal(t, "Rune[a]", Name(tcell.KeyRune, 'a'))
	assert.Equal(t, "Ctrl[C]", Name(tcell.KeyRune, 0x03))
}

func TestEcho(t *testing.T) {
	t.Run("stops at q", func(t *testing.T) {
		src := &byteSource{in: []byte("\x1b[Aa\x1b[Dqzz")}
		w := &lineWriter{}
		n := Echo(src, w, 0)
		assert.Equal(t, 3, n)
		assert.Equal(t, "Up\nRune[a]\nLeft\n", w.String())
		assert.Equal(t, []byte("zz"), src.in)
	})

	t.Run("stops at limit", func(t *testing.T) {
		src := &byteSource{in: []byte("abc")}
		w := &lineWriter{}
		n := Echo(src, w, 2)
		assert.Equal(t, 2, n)
		assert.Equal(t, "Rune[a]\nRune[b]\n", w.String())
	})
}
