package terminal

import (
	"testing"
)

// stubExit records exit codes instead of ending the test binary
func stubExit(t *testing.T) chan int {
	t.Helper()
	codes := make(chan int, 1)
	orig := exit
	exit = func(code int) { codes <- code }
	t.Cleanup(func() { exit = orig })
	return codes
}

func TestTerminalHandleExit(t *testing.T) {
	codes := stubExit(t)
	fb := &fakeBackend{w: 80, h: 24}
	term := newWithBackend(fb, nil)

	if err := term.Configure(""); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	called := false
	term.OnExit(func() {
		if fb.restored != 1 {
			t.Error("Expected terminal restored before the exit hook")
		}
		called = true
	})

	term.handleExit()

	if !called {
		t.Error("Expected exit hook to run")
	}
	if code := <-codes; code != 0 {
		t.Errorf("Expected exit status 0, got %d", code)
	}
	if term.stopExit != nil {
		t.Error("Expected signal watcher stopped by Restore")
	}
}

func TestTerminalHandleExitWithoutHook(t *testing.T) {
	codes := stubExit(t)
	term := newWithBackend(&fakeBackend{}, nil)

	term.handleExit()
	if code := <-codes; code != 0 {
		t.Errorf("Expected exit status 0, got %d", code)
	}
}
