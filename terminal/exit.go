package terminal

import (
	"os"
	"os/signal"
)

// exit is swapped in tests
var exit = os.Exit

// OnExit registers fn to run when an exit signal arrives while the terminal is configured
// The terminal is restored first, then fn runs, then the process exits with status 0
func (t *Terminal) OnExit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onExit = fn
}

// watchExit starts the signal watcher, called with t.mu held
func (t *Terminal) watchExit() {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, exitSignals...)

	t.stopExit = func() {
		signal.Stop(sigs)
		close(done)
	}

	go func() {
		select {
		case sig := <-sigs:
			t.logger.Printf("exit on signal %v", sig)
			t.handleExit()
		case <-done:
		}
	}()
}

func (t *Terminal) handleExit() {
	t.Restore()

	t.mu.Lock()
	fn := t.onExit
	t.mu.Unlock()

	if fn != nil {
		fn()
	}
	exit(0)
}
