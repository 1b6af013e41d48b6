//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"
)

// InputQueueSize bounds the decoded key channel
const InputQueueSize = 256

// InputReader decodes keys from a source on its own goroutine.
// It is the only user of its KeyBuffer.
type InputReader struct {
	src     ByteSource
	buf     KeyBuffer
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewInputReader creates a reader over src
func NewInputReader(src ByteSource) *InputReader {
	return &InputReader{
		src:     src,
		eventCh: make(chan Event, InputQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins reading input in a goroutine
func (r *InputReader) Start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// Stop signals the reader to stop
func (r *InputReader) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Don't block forever if the reader sits in a blocking read
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
	}
}

// Events returns decoded keys. KeyNone and KeyInterrupt are never delivered;
// KeyEOF is delivered once, after which the channel sees no more sends.
func (r *InputReader) Events() <-chan Event {
	return r.eventCh
}

// readLoop is the main input decoding goroutine
func (r *InputReader) readLoop() {
	defer close(r.doneCh)

	// Panic recovery for raw input reader
	defer func() {
		if r := recover(); r != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		select {
		case <-r.stopCh:
			return
		default:
		}

		ev := DecodeKey(r.src, &r.buf)
		switch ev.Key {
		case KeyNone, KeyInterrupt:
			continue
		}

		if !r.send(ev) || ev.Key == KeyEOF {
			return
		}
	}
}

// send delivers ev unless the reader is stopped first
func (r *InputReader) send(ev Event) bool {
	select {
	case r.eventCh <- ev:
		return true
	case <-r.stopCh:
		return false
	}
}
