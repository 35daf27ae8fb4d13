// Package term implements the Unix terminal surface the editor draws
// on: raw-mode key input with echo suppressed, a tracked cursor column
// for the live line, and full-width line erase.
package term

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"golang.org/x/sys/unix"

	"keyline/key"
)

const defaultWidth = 80

// Terminal handles raw mode, key reads and live-line writes. The write
// path is serialized with a mutex so the erase sequence stays atomic
// when several goroutines share one terminal.
type Terminal struct {
	in       *os.File
	out      *os.File
	fd       int
	original unix.Termios

	mu      sync.Mutex
	col     int    // display column of the cursor on the live line
	pending []byte // bytes read but not yet decoded into events
}

// New creates a terminal surface reading keys from in and drawing on
// out. It fails if in is not an interactive terminal.
func New(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("querying terminal attributes: %w", err)
	}
	return &Terminal{in: in, out: out, fd: fd, original: *termios}, nil
}

// EnterRawMode puts the terminal into raw mode: no echo, no line
// buffering, reads return whatever bytes are available.
func (t *Terminal) EnterRawMode() error {
	raw := t.original
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	return nil
}

// RestoreMode restores the terminal mode captured at construction.
func (t *Terminal) RestoreMode() error {
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermios, &t.original); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	return nil
}

// KeyAvailable reports whether ReadKey would yield an event without
// waiting on the user.
func (t *Terminal) KeyAvailable() bool {
	if len(t.pending) > 0 {
		return true
	}
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	return err == nil && n > 0 && fds[0].Revents&unix.POLLIN != 0
}

// ReadKey reads and decodes the next key event. Raw mode keeps the
// terminal from echoing it. A read that yields no bytes (the VTIME
// window expired) returns an Unknown event.
func (t *Terminal) ReadKey() (key.Event, error) {
	if len(t.pending) == 0 {
		buf := make([]byte, 64)
		n, err := t.in.Read(buf)
		if err != nil {
			return key.Event{}, fmt.Errorf("reading key: %w", err)
		}
		t.pending = buf[:n]
	}
	ev, n := key.Decode(t.pending)
	t.pending = t.pending[n:]
	return ev, nil
}

// CursorColumn returns the display column of the cursor on the live
// line, as tracked from writes through this surface.
func (t *Terminal) CursorColumn() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.col
}

// EraseLastLine blanks the live line by overwriting the full terminal
// width with spaces, then repositions the cursor at the line start. It
// is safe to call before anything has been written.
func (t *Terminal) EraseLastLine() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.out.WriteString(eraseSequence(t.Width())); err != nil {
		return fmt.Errorf("erasing line: %w", err)
	}
	t.col = 0
	return nil
}

// Write draws text at the cursor and advances the tracked column by its
// display width.
func (t *Terminal) Write(text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := t.out.WriteString(text); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	t.col += runewidth.StringWidth(text)
	return nil
}

// Width returns the terminal width in columns, falling back to 80 when
// the size query fails.
func (t *Terminal) Width() int {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return defaultWidth
	}
	return int(ws.Col)
}

// Close restores the original terminal mode.
func (t *Terminal) Close() error {
	return t.RestoreMode()
}

// eraseSequence overwrites a full line of the given width with spaces
// and leaves the cursor at column zero.
func eraseSequence(width int) string {
	return "\r" + strings.Repeat(" ", width) + "\r"
}
