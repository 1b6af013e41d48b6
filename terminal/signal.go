//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// SignalSlot records the most recent delivered signal until the main loop takes it.
// Signals arriving before the previous one is taken overwrite it.
type SignalSlot struct {
	last   atomic.Pointer[os.Signal]
	wakeCh chan struct{}

	mu      sync.Mutex
	sigCh   chan os.Signal
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// NewSignalSlot creates an empty slot
func NewSignalSlot() *SignalSlot {
	return &SignalSlot{
		wakeCh: make(chan struct{}, 1),
	}
}

// Install starts forwarding sigs into the slot. Calling it again adds signals.
func (s *SignalSlot) Install(sigs ...os.Signal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		s.sigCh = make(chan os.Signal, 1)
		s.stopCh = make(chan struct{})
		s.doneCh = make(chan struct{})
		s.running = true
		go s.watchLoop()
	}
	signal.Notify(s.sigCh, sigs...)
}

// Stop stops forwarding and waits for the watcher to exit
func (s *SignalSlot) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	signal.Stop(s.sigCh)
	close(s.stopCh)
	<-s.doneCh
}

// Post stores sig as if it had been delivered
func (s *SignalSlot) Post(sig os.Signal) {
	s.last.Store(&sig)
	// Non-blocking, one pending wakeup is enough
	select {
	case s.wakeCh <- struct{}{}:
	default:
	}
}

// Take returns and clears the recorded signal
func (s *SignalSlot) Take() (os.Signal, bool) {
	p := s.last.Swap(nil)
	if p == nil {
		return nil, false
	}
	return *p, true
}

// Wake is signalled after every Post; the slot itself holds the value
func (s *SignalSlot) Wake() <-chan struct{} {
	return s.wakeCh
}

// watchLoop moves delivered signals into the slot
func (s *SignalSlot) watchLoop() {
	defer close(s.doneCh)

	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSIGNAL HANDLER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-s.stopCh:
			return
		case sig := <-s.sigCh:
			s.Post(sig)
		}
	}
}
