package terminal

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// Out writes s at the cursor and refreshes
func (t *Terminal) Out(s string) error {
	if t.closed {
		return &OutputError{Op: "out", Err: ErrClosed}
	}
	t.write(s)
	return t.Refresh()
}

// OutStatic writes s and refreshes without moving the cursor
func (t *Terminal) OutStatic(s string) error {
	x, y := t.x, t.y
	err := t.Out(s)
	t.Move(x, y)
	return err
}

// OutLn writes s followed by a line break and refreshes
func (t *Terminal) OutLn(s string) error {
	if t.closed {
		return &OutputError{Op: "outln", Err: ErrClosed}
	}
	t.write(s)
	return t.OutBr()
}

// OutBr writes a line break and refreshes
func (t *Terminal) OutBr() error {
	if t.closed {
		return &OutputError{Op: "outbr", Err: ErrClosed}
	}
	t.write("\n")
	return t.Refresh()
}

// RawOut writes s without refreshing
func (t *Terminal) RawOut(s string) error {
	if t.closed {
		return &OutputError{Op: "raw out", Err: ErrClosed}
	}
	t.write(s)
	return nil
}

// RawOutStatic writes s without refreshing or moving the cursor
func (t *Terminal) RawOutStatic(s string) error {
	x, y := t.x, t.y
	err := t.RawOut(s)
	t.Move(x, y)
	return err
}

// RawOutLn writes s and a line break without refreshing
func (t *Terminal) RawOutLn(s string) error {
	if t.closed {
		return &OutputError{Op: "raw outln", Err: ErrClosed}
	}
	t.write(s)
	t.write("\n")
	return nil
}

// RawBr writes a line break without refreshing
func (t *Terminal) RawBr() error {
	return t.RawOut("\n")
}

// write puts s into the screen buffer at the cursor, advancing it the way
// curses addstr does
func (t *Terminal) write(s string) {
	w, h := t.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	for _, r := range norm.NFC.String(s) {
		switch {
		case r == '\n':
			t.clearToEOL(w)
			t.x = 0
			t.lineFeed(h)
		case r == '\r':
			t.x = 0
		case r == '\t':
			tab := t.cfg.TabWidth
			if tab <= 0 {
				tab = 8
			}
			next := (t.x/tab + 1) * tab
			for t.x < next && t.x < w {
				t.screen.SetContent(t.x, t.y, ' ', nil, t.style)
				t.x++
			}
			if t.x >= w {
				t.x = 0
				t.lineFeed(h)
			}
		case r == '\b':
			if t.x > 0 {
				t.x--
			}
		case r < 0x20 || r == 0x7f:
			// Other control characters have no cell representation
		default:
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				t.combine(r)
				continue
			}
			if t.x+rw > w {
				t.x = 0
				t.lineFeed(h)
			}
			t.screen.SetContent(t.x, t.y, r, nil, t.style)
			t.x += rw
			if t.x >= w {
				t.x = 0
				t.lineFeed(h)
			}
		}
	}
}

// combine attaches a zero-width rune to the cell left of the cursor
func (t *Terminal) combine(r rune) {
	if t.x == 0 {
		return
	}
	mainc, combc, style, _ := t.screen.GetContent(t.x-1, t.y)
	t.screen.SetContent(t.x-1, t.y, mainc, append(combc, r), style)
}

// put writes s on row y from column x without wrapping or scrolling.
// Cells past the right edge are dropped; returns the column after the
// last written cell.
func (t *Terminal) put(x, y int, s string) int {
	w, h := t.screen.Size()
	if y < 0 || y >= h {
		return x
	}
	start := x
	for _, r := range norm.NFC.String(s) {
		if r < 0x20 || r == 0x7f {
			continue
		}
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			if x > start {
				mainc, combc, style, _ := t.screen.GetContent(x-1, y)
				t.screen.SetContent(x-1, y, mainc, append(combc, r), style)
			}
			continue
		}
		if x+rw > w {
			break
		}
		t.screen.SetContent(x, y, r, nil, t.style)
		x += rw
	}
	return x
}

// blank clears n cells of row y from column x, clipped at the right edge
func (t *Terminal) blank(x, y, n int) {
	w, _ := t.screen.Size()
	for end := x + n; x < end && x < w; x++ {
		t.screen.SetContent(x, y, ' ', nil, t.style)
	}
}

// clearToEOL blanks the current row from the cursor to the right edge
func (t *Terminal) clearToEOL(w int) {
	for x := t.x; x < w; x++ {
		t.screen.SetContent(x, t.y, ' ', nil, t.style)
	}
}

// lineFeed moves the cursor down one row, scrolling at the bottom
func (t *Terminal) lineFeed(h int) {
	t.y++
	if t.y < h {
		return
	}
	t.y = h - 1
	if t.cfg.Scroll {
		t.scroll()
	}
}

// scroll shifts every row up by one and blanks the last row
func (t *Terminal) scroll() {
	w, h := t.screen.Size()
	for y := 1; y < h; y++ {
		for x := 0; x < w; x++ {
			mainc, combc, style, _ := t.screen.GetContent(x, y)
			t.screen.SetContent(x, y-1, mainc, combc, style)
		}
	}
	for x := 0; x < w; x++ {
		t.screen.SetContent(x, h-1, ' ', nil, t.style)
	}
}

// reserve scrolls until n rows starting at the cursor row fit on screen
func (t *Terminal) reserve(n int) {
	_, h := t.screen.Size()
	for t.y+n > h && t.y > 0 {
		t.scroll()
		t.y--
	}
}
