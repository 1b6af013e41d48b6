//go:build unix

package terminal

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// FileSource reads raw bytes from a file descriptor, normally the tty
type FileSource struct {
	fd int
	// Grace is how long Ready waits for bytes of a sequence still in flight.
	// Zero makes Ready a pure non-blocking poll.
	Grace time.Duration
}

// NewFileSource wraps an open descriptor
func NewFileSource(fd int) *FileSource {
	return &FileSource{fd: fd}
}

// StdinSource returns a source reading standard input
func StdinSource() *FileSource {
	return NewFileSource(int(os.Stdin.Fd()))
}

// Fd returns the wrapped descriptor
func (s *FileSource) Fd() int {
	return s.fd
}

// Ready polls the descriptor; poll errors are reported as not ready
func (s *FileSource) Ready() bool {
	fds := []unix.PollFd{
		{Fd: int32(s.fd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, int(s.Grace/time.Millisecond))
	if err != nil || n == 0 {
		return false
	}
	return fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0
}

// Read performs one blocking read. EINTR is returned as is.
func (s *FileSource) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := unix.Read(s.fd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

// drain discards whatever input is already queued on the descriptor
func (s *FileSource) drain() {
	var scratch [256]byte
	for {
		fds := []unix.PollFd{
			{Fd: int32(s.fd), Events: unix.POLLIN},
		}
		n, err := unix.Poll(fds, 0)
		if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			return
		}
		if rn, err := unix.Read(s.fd, scratch[:]); err != nil || rn <= 0 {
			return
		}
	}
}
