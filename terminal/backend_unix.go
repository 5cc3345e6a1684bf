//go:build linux || darwin || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	saved *unix.Termios

	resize *resizeHandler
	buf    [maxPollBytes]byte
}

func newBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

// Configure switches stdin to non-canonical, no-echo input
// Signals stay enabled so ctrl+c still interrupts, but suspend is disabled
func (b *unixBackend) Configure() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	termios, err := unix.IoctlGetTermios(b.inFd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("read termios: %w", err)
	}
	saved := *termios
	b.saved = &saved

	termios.Lflag &^= unix.ICANON | unix.ECHO
	termios.Iflag &^= unix.IXON
	termios.Cc[unix.VSUSP] = vdisable
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(b.inFd, ioctlSetTermios, termios); err != nil {
		b.saved = nil
		return fmt.Errorf("set termios: %w", err)
	}

	b.resize = newResizeHandler()
	b.resize.start()
	return nil
}

func (b *unixBackend) Restore() {
	if b.resize != nil {
		b.resize.stop()
		b.resize = nil
	}
	if b.saved != nil {
		unix.IoctlSetTermios(b.inFd, ioctlSetTermios, b.saved)
		b.saved = nil
	}
}

func (b *unixBackend) Size() (int, int) {
	return getTerminalSize(b.outFd, b.inFd)
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

// Poll checks stdin with a zero timeout and reads at most one batch
func (b *unixBackend) Poll() ([]KeyEvent, error) {
	fds := []unix.PollFd{
		{Fd: int32(b.inFd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, 0)
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return nil, nil
		}
		return nil, fmt.Errorf("poll stdin: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	rn, err := unix.Read(b.inFd, b.buf[:])
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return nil, nil
		}
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if rn <= 0 {
		// EOF
		return nil, nil
	}

	return DecodeBytes(b.buf[:rn])
}

func (b *unixBackend) Resized() bool {
	return b.resize != nil && b.resize.pending()
}

// getTerminalSize returns the window size of outFd, falling back to inFd and then 80x24
func getTerminalSize(outFd, inFd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(outFd, unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 && ws.Row > 0 {
		return int(ws.Col), int(ws.Row)
	}
	if w, h, err := term.GetSize(inFd); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return 80, 24 // Fallback
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL | unix.IXON
			unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
		}
	}
}
