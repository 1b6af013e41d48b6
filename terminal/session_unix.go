//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the terminal mode for the lifetime of an interactive program.
// Only canonical line editing and echo are switched off: output processing
// and signal generation stay as the user configured them.
type Session struct {
	in    *FileSource
	out   io.Writer
	outFd int

	mu     sync.Mutex
	saved  *term.State
	active bool
}

// NewSession prepares a session reading from in and drawing to out
func NewSession(in *FileSource, out *os.File) *Session {
	return &Session{
		in:    in,
		out:   out,
		outFd: int(out.Fd()),
	}
}

// Source returns the input the session was created with
func (s *Session) Source() *FileSource {
	return s.in
}

// Enter switches the input tty to non-canonical, non-echo mode, hides the
// cursor and discards keystrokes typed before the program was ready
func (s *Session) Enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return nil
	}

	fd := s.in.Fd()
	if !term.IsTerminal(fd) {
		return fmt.Errorf("input is not a terminal")
	}

	saved, err := term.GetState(fd)
	if err != nil {
		return fmt.Errorf("failed to save terminal state: %w", err)
	}

	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("failed to get termios: %w", err)
	}
	raw := *termios
	raw.Lflag &^= unix.ICANON | unix.ECHO
	// Control chars: min bytes = 1, timeout = 0
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("failed to set terminal mode: %w", err)
	}

	s.saved = saved
	s.active = true

	s.in.drain()

	var buf []byte
	buf = append(buf, csiCursorHide...)
	buf = AppendClear(buf)
	s.out.Write(buf)
	return nil
}

// Exit restores the saved terminal state and shows the cursor again
func (s *Session) Exit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return nil
	}
	s.active = false

	s.in.drain()

	var buf []byte
	buf = AppendReset(buf)
	buf = AppendClear(buf)
	buf = append(buf, csiCursorShow...)
	s.out.Write(buf)

	if err := term.Restore(s.in.Fd(), s.saved); err != nil {
		return fmt.Errorf("failed to restore terminal state: %w", err)
	}
	return nil
}

// Size returns the output window size, DefaultWidth x DefaultHeight when unknown
func (s *Session) Size() (int, int) {
	return WindowSize(s.outFd)
}

// WindowSize queries the window size of fd
func WindowSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return DefaultWidth, DefaultHeight
	}
	return int(ws.Col), int(ws.Row)
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Session.Exit cannot be called normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}

// resetTerminalMode re-enables cooked mode on the controlling tty.
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// /dev/tty works even if stdin is redirected
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
		termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
		termios.Iflag |= unix.ICRNL
		unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
	}
}
