//go:build windows

package terminal

import (
	"fmt"
	"os"

	"github.com/erikgeiser/coninput"
	"golang.org/x/sys/windows"
)

type windowsBackend struct {
	in      windows.Handle
	out     windows.Handle
	inMode  uint32
	outMode uint32
	saved   bool

	lastW, lastH int
	resized      bool
}

func newBackend() Backend {
	return &windowsBackend{
		in:  windows.Handle(os.Stdin.Fd()),
		out: windows.Handle(os.Stdout.Fd()),
	}
}

// Configure disables line input and echo and enables ANSI output processing
func (b *windowsBackend) Configure() error {
	if err := windows.GetConsoleMode(b.in, &b.inMode); err != nil {
		return fmt.Errorf("stdin is not a console: %w", err)
	}
	if err := windows.GetConsoleMode(b.out, &b.outMode); err != nil {
		return fmt.Errorf("stdout is not a console: %w", err)
	}

	inMode := b.inMode&^(windows.ENABLE_ECHO_INPUT|windows.ENABLE_LINE_INPUT) | windows.ENABLE_WINDOW_INPUT
	if err := windows.SetConsoleMode(b.in, inMode); err != nil {
		return fmt.Errorf("set input mode: %w", err)
	}
	outMode := b.outMode | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING | windows.ENABLE_PROCESSED_OUTPUT
	if err := windows.SetConsoleMode(b.out, outMode); err != nil {
		windows.SetConsoleMode(b.in, b.inMode)
		return fmt.Errorf("set output mode: %w", err)
	}

	b.saved = true
	b.lastW, b.lastH = b.Size()
	return nil
}

func (b *windowsBackend) Restore() {
	if !b.saved {
		return
	}
	windows.SetConsoleMode(b.in, b.inMode)
	windows.SetConsoleMode(b.out, b.outMode)
	b.saved = false
}

func (b *windowsBackend) Size() (int, int) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(b.out, &info); err != nil {
		return 80, 24 // Fallback
	}
	return int(info.Window.Right-info.Window.Left) + 1, int(info.Window.Bottom-info.Window.Top) + 1
}

func (b *windowsBackend) Write(p []byte) error {
	_, err := os.Stdout.Write(p)
	return err
}

// Poll reads up to one batch of console records if the input handle is signaled
func (b *windowsBackend) Poll() ([]KeyEvent, error) {
	ev, err := windows.WaitForSingleObject(b.in, 0)
	if err != nil {
		return nil, fmt.Errorf("wait console input: %w", err)
	}
	if ev != windows.WAIT_OBJECT_0 {
		return nil, nil
	}

	records, err := coninput.ReadNConsoleInputs(b.in, maxPollRecords)
	if err != nil {
		return nil, fmt.Errorf("read console input: %w", err)
	}

	keys := make([]KeyRecord, 0, len(records))
	for _, rec := range records {
		switch e := rec.Unwrap().(type) {
		case coninput.KeyEventRecord:
			keys = append(keys, KeyRecord{
				KeyDown:      e.KeyDown,
				VirtualKey:   uint16(e.VirtualKeyCode),
				Char:         e.Char,
				ControlState: uint32(e.ControlKeyState),
			})
		case coninput.WindowBufferSizeEventRecord:
			b.resized = true
		}
	}

	return DecodeRecords(keys), nil
}

func (b *windowsBackend) Resized() bool {
	w, h := b.Size()
	if w != b.lastW || h != b.lastH {
		b.lastW, b.lastH = w, h
		b.resized = true
	}
	r := b.resized
	b.resized = false
	return r
}

// resetTerminalMode has nothing to restore without the saved console modes
func resetTerminalMode() {}
