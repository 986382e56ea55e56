package terminal

import "github.com/gdamore/tcell/v2"

// GetChar refreshes, then blocks until the next key press.
// With echo enabled a printable rune is written at the cursor.
func (t *Terminal) GetChar() (KeyEvent, error) {
	ev, err := t.readKey()
	if err != nil {
		return ev, err
	}
	if t.cfg.Echo && ev.Key == KeyRune {
		t.write(string(ev.Rune))
		t.show()
	}
	return ev, nil
}

// GetCharHidden reads a key press without echo; the cursor is unchanged
func (t *Terminal) GetCharHidden() (KeyEvent, error) {
	x, y := t.x, t.y
	ev, err := t.readKey()
	t.Move(x, y)
	return ev, err
}

// readKey flushes pending output and waits for a key event.
// Resize events repaint the screen and are otherwise absorbed.
func (t *Terminal) readKey() (KeyEvent, error) {
	if t.closed {
		return KeyEvent{}, ErrClosed
	}
	t.show()

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			// Screen finalized while waiting
			return KeyEvent{}, ErrClosed
		case *tcell.EventKey:
			return keyFromEvent(ev), nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}
