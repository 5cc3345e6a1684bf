package terminal

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Terminal drives a real terminal: raw input, size queries and frame output
// It satisfies the output and input contracts the tui renderer consumes
type Terminal struct {
	backend Backend
	enc     *Encoder
	logger  *log.Logger

	mu         sync.Mutex
	configured bool
	onDrop     func(*DecodeError)
	onExit     func()
	stopExit   func()
}

// New creates a Terminal for the process' stdin/stdout
// A nil logger discards diagnostics
func New(logger *log.Logger) *Terminal {
	return newWithBackend(newBackend(), logger)
}

func newWithBackend(b Backend, logger *log.Logger) *Terminal {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Terminal{
		backend: b,
		enc:     NewEncoder(),
		logger:  logger,
	}
}

// Configure enters raw input mode and the alternate screen, sets the window
// title and hides the cursor. Exit signals restore the terminal and run the
// OnExit hook. Calling it twice is a no-op
func (t *Terminal) Configure(title string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.configured {
		return nil
	}
	if err := t.backend.Configure(); err != nil {
		return fmt.Errorf("configure terminal: %w", err)
	}

	var b []byte
	b = append(b, csiAltScreenEnter...)
	b = append(b, csiAutoWrapOff...)
	if title != "" {
		b = appendTitle(b, title)
	}
	b = append(b, csiCursorHide...)
	b = append(b, csiClear...)
	if err := t.backend.Write(b); err != nil {
		t.backend.Restore()
		return fmt.Errorf("configure terminal: %w", err)
	}

	t.configured = true
	t.watchExit()
	t.logger.Printf("terminal configured, size %v", t.Size())
	return nil
}

// Restore undoes Configure. Safe to call multiple times
func (t *Terminal) Restore() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.configured {
		return
	}

	var b []byte
	b = append(b, csiSGR0...)
	b = append(b, csiClear...)
	b = append(b, csiHome...)
	b = append(b, csiCursorShow...)
	b = append(b, csiAutoWrapOn...)
	b = append(b, csiAltScreenExit...)
	if err := t.backend.Write(b); err != nil {
		t.logger.Printf("restore terminal: %v", err)
	}

	t.backend.Restore()
	t.configured = false
	if t.stopExit != nil {
		t.stopExit()
		t.stopExit = nil
	}
}

// Size returns the current terminal dimensions in cells
func (t *Terminal) Size() Coord {
	w, h := t.backend.Size()
	return Coord{X: w, Y: h}
}

// Resized reports whether the window changed size since the last call
func (t *Terminal) Resized() bool {
	return t.backend.Resized()
}

// Present draws c at the screen origin as a single write: scrollback clear,
// default colors, cursor home and hide, then the encoded cells
func (t *Terminal) Present(c *Canvas) error {
	t.enc.Reset()
	t.enc.WriteRaw(csiClearScroll)
	t.enc.SetColor(DefaultColor)
	t.enc.MoveCursor(0, 0)
	t.enc.WriteRaw(csiCursorHide)
	t.enc.Encode(c)

	if err := t.backend.Write(t.enc.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// OnDrop registers fn to run whenever a poll drops undecodable input
func (t *Terminal) OnDrop(fn func(*DecodeError)) {
	t.onDrop = fn
}

// Poll returns queued key events without blocking
// Dropped input is logged; only a failed read is returned as an error
func (t *Terminal) Poll() ([]KeyEvent, error) {
	events, err := t.backend.Poll()
	if err == nil {
		return events, nil
	}

	var de *DecodeError
	if errors.As(err, &de) {
		t.logger.Printf("%v", de)
		if t.onDrop != nil {
			t.onDrop(de)
		}
		return events, nil
	}
	return nil, fmt.Errorf("poll input: %w", err)
}

// EmergencyReset restores a usable terminal after a crash
// Writes directly to w, bypassing any Terminal state
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
