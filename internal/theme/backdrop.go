package theme

import (
	"errors"
	"io"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ErrNotTerminal is returned when the backdrop writer is not a terminal.
var ErrNotTerminal = errors.New("backdrop: output is not a terminal")

// Backdrop paints the surface behind the view: the document background for a
// page, the terminal background here.
type Backdrop interface {
	Apply(p Palette) error
}

// BackdropFunc adapts a function to Backdrop.
type BackdropFunc func(p Palette) error

// Apply calls f(p).
func (f BackdropFunc) Apply(p Palette) error {
	return f(p)
}

// NopBackdrop ignores every palette.
var NopBackdrop = BackdropFunc(func(Palette) error { return nil })

// TerminalBackdrop sets the terminal's default background colour with OSC 11.
type TerminalBackdrop struct {
	mu       sync.Mutex
	out      *termenv.Output
	tty      bool
	original termenv.Color
	applied  bool
	closed   bool
}

// NewTerminalBackdrop wraps w, normally os.Stdout.
func NewTerminalBackdrop(w io.Writer) *TerminalBackdrop {
	return newTerminalBackdrop(w, isTerminal(w))
}

func newTerminalBackdrop(w io.Writer, tty bool) *TerminalBackdrop {
	return &TerminalBackdrop{out: termenv.NewOutput(w), tty: tty}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Capture records the current terminal background so Restore can put it
// back. It queries the terminal, so call it before the UI starts reading input.
func (b *TerminalBackdrop) Capture() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.tty {
		return
	}
	b.original = b.out.BackgroundColor()
}

// Apply sets the terminal background to the palette's container colour.
// After Restore it does nothing.
func (b *TerminalBackdrop) Apply(p Palette) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	if !b.tty {
		return ErrNotTerminal
	}
	b.out.SetBackgroundColor(termenv.RGBColor(p.Container))
	b.applied = true
	return nil
}

// Restore puts back the background recorded by Capture and closes the
// backdrop.
func (b *TerminalBackdrop) Restore() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if !b.applied || b.original == nil {
		return
	}
	b.out.SetBackgroundColor(b.original)
	b.applied = false
}
