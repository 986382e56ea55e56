package terminal

// Pos returns the cursor position as (x, y)
func (t *Terminal) Pos() (x, y int) {
	return t.x, t.y
}

// PosX returns the cursor column
func (t *Terminal) PosX() int {
	return t.x
}

// PosY returns the cursor row
func (t *Terminal) PosY() int {
	return t.y
}

// Move positions the cursor (0-indexed), clamped to the screen
func (t *Terminal) Move(x, y int) {
	w, h := t.screen.Size()
	if x >= w {
		x = w - 1
	}
	if y >= h {
		y = h - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	t.x, t.y = x, y
}

// MoveOffset moves the cursor by dx columns and dy rows
func (t *Terminal) MoveOffset(dx, dy int) {
	t.Move(t.x+dx, t.y+dy)
}

// MoveFirst moves the cursor to the start of the line
func (t *Terminal) MoveFirst() {
	t.Move(0, t.y)
}

// MovePrev moves the cursor one column left
func (t *Terminal) MovePrev() {
	t.MoveOffset(-1, 0)
}

// MoveNext moves the cursor one column right
func (t *Terminal) MoveNext() {
	t.MoveOffset(1, 0)
}

// Delete removes the character under the cursor, shifting the rest of the
// line left
func (t *Terminal) Delete() {
	if t.closed {
		return
	}
	w, _ := t.screen.Size()
	for x := t.x; x < w-1; x++ {
		mainc, combc, style, _ := t.screen.GetContent(x+1, t.y)
		t.screen.SetContent(x, t.y, mainc, combc, style)
	}
	t.screen.SetContent(w-1, t.y, ' ', nil, t.style)
}

// DeletePrev removes the character left of the cursor
func (t *Terminal) DeletePrev() {
	t.MovePrev()
	t.Delete()
}

// DeleteOffset deletes characters while stepping the cursor dx columns.
// Writing "Hello world!" then DeleteOffset(-6) leaves "Hello ".
func (t *Terminal) DeleteOffset(dx int) {
	if dx == 0 {
		return
	}
	step := 1
	if dx < 0 {
		step = -1
	}
	t.deleteUntil(t.x+dx, step)
}

// DeleteFrom deletes the first n characters of the line.
// Writing "Hello world!" then DeleteFrom(5) leaves " world!".
func (t *Terminal) DeleteFrom(n int) {
	t.MoveFirst()
	t.MoveOffset(n, 0)
	t.DeleteTo(0)
}

// DeleteTo deletes characters between the cursor and column x.
// Writing "Hello world!" then DeleteTo(5) leaves "Hello".
func (t *Terminal) DeleteTo(x int) {
	step := -1
	if x > t.x {
		step = 1
	}
	t.deleteUntil(x, step)
}

// deleteUntil steps toward column target, deleting after each step.
// Stops early when the cursor is pinned at a screen edge.
func (t *Terminal) deleteUntil(target, step int) {
	for t.x != target {
		prev := t.x
		t.MoveOffset(step, 0)
		if t.x == prev {
			return
		}
		t.Delete()
	}
}
