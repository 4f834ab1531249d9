package runner

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"
)

// relay is the shared cell between the signal path and the worker that
// spawns the child. A signal may arrive before the child exists; the relay
// queues it and the worker flushes it in the same critical section that
// publishes the pid, so no signal is ever lost in the hand-off window.
type relay struct {
	mu      sync.Mutex
	pid     int
	pending os.Signal

	// kill primitive, replaced in tests
	kill func(pid int, sig syscall.Signal) error
}

func newRelay() *relay {
	return &relay{kill: unix.Kill}
}

// deliver forwards sig to the child if the pid is known, otherwise records
// it to be flushed by publish. Errors from the kill primitive are ignored:
// the child may already have exited and its status is reported separately.
func (l *relay) deliver(sig os.Signal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pid == 0 {
		l.pending = sig
		return
	}
	l.send(l.pid, sig)
}

// publish records the child pid and, in the same critical section, flushes
// any signal queued before the child existed.
func (l *relay) publish(pid int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pid = pid
	if l.pending != nil {
		l.send(pid, l.pending)
		l.pending = nil
	}
}

func (l *relay) send(pid int, sig os.Signal) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return
	}
	_ = l.kill(pid, s)
}

// forward services the notification channel until it is drained.
func (l *relay) forward(ch <-chan os.Signal) {
	for sig := range ch {
		l.deliver(sig)
	}
}

// notifyRelayed installs ch as the destination for every relayed signal
// whose disposition is not already "ignore". A signal the environment
// deliberately silenced for the process tree stays silenced.
func notifyRelayed(ch chan<- os.Signal) {
	for _, sig := range relayedSignals {
		if signal.Ignored(sig) {
			continue
		}
		signal.Notify(ch, sig)
	}
}
