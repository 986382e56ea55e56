package terminal

import (
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// active is set while a session owns the terminal; curses-family libraries
// permit a single live screen per process
var active atomic.Bool

// Terminal owns one initialized screen session.
//
// A Terminal is not safe for concurrent use. The cursor is tracked by the
// Terminal itself and written to the screen on every refresh.
type Terminal struct {
	screen tcell.Screen
	cfg    *Config
	bell   Bell
	logger *log.Logger
	style  tcell.Style
	id     string

	// Cursor position, 0-indexed
	x, y int

	layers []*Layer2D

	closeOnce sync.Once
	closed    bool
}

// New acquires the terminal session and enters the library's screen mode.
// The caller must Close the returned Terminal on every exit path.
func New(opts ...Option) (*Terminal, error) {
	t := &Terminal{
		cfg:    DefaultConfig(),
		logger: log.New(io.Discard, "", 0),
		style:  tcell.StyleDefault,
	}
	for _, opt := range opts {
		opt(t)
	}

	if !active.CompareAndSwap(false, true) {
		return nil, &InitError{Err: ErrSessionActive}
	}

	if t.screen == nil {
		s, err := openScreen(t.cfg.TTY)
		if err != nil {
			active.Store(false)
			return nil, &InitError{Err: err}
		}
		t.screen = s
	}

	if err := t.screen.Init(); err != nil {
		active.Store(false)
		return nil, &InitError{Err: err}
	}

	t.id = uuid.NewString()
	w, h := t.screen.Size()
	t.logger.Printf("terminal: session %s initialized (%dx%d)", t.id, w, h)
	return t, nil
}

// Close releases the session and restores the terminal mode.
// Only the first call has effect; later calls return nil.
func (t *Terminal) Close() (err error) {
	t.closeOnce.Do(func() {
		t.closed = true
		defer active.Store(false)
		defer func() {
			if r := recover(); r != nil {
				resetTerminalMode()
				err = &TeardownError{Err: fmt.Errorf("fini: %v", r)}
				t.logger.Printf("terminal: session %s teardown failed: %v", t.id, r)
			}
		}()

		t.screen.Fini()
		t.logger.Printf("terminal: session %s closed", t.id)
	})
	return err
}

// ID returns the session identifier used in log output
func (t *Terminal) ID() string {
	return t.id
}

// Size returns the screen dimensions in cells
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Beep rings the configured Bell, or the terminal bell when none is set
func (t *Terminal) Beep() error {
	if t.closed {
		return &OutputError{Op: "beep", Err: ErrClosed}
	}
	if t.bell != nil {
		return t.bell.Ring()
	}
	return t.screen.Beep()
}

// Refresh redraws every stacked layer and pushes pending changes to the screen.
// The cursor position is preserved.
func (t *Terminal) Refresh() error {
	if t.closed {
		return &OutputError{Op: "refresh", Err: ErrClosed}
	}
	x, y := t.x, t.y
	for _, g := range t.layers {
		t.DrawLayer2D(g)
	}
	t.Move(x, y)
	t.show()
	return nil
}

// show places the visible cursor and flushes the screen
func (t *Terminal) show() {
	if t.closed {
		return
	}
	t.screen.ShowCursor(t.x, t.y)
	t.screen.Show()
}
