package terminal

import "github.com/rivo/uniseg"

// Layer is a single-line piece of text pinned to a screen position.
//
// A layer reserves the width of the widest content it has held, so setting
// "Hello" then "Bye" draws "Bye  ". Shrink releases the reserved width.
// Inner is never drawn; it carries data such as the undecorated text of a
// menu entry and can be made visible with InnerToOuter.
type Layer struct {
	X, Y  int
	Inner string

	content string
	length  int
}

// NewLayer returns an empty layer at x, y
func NewLayer(x, y int) Layer {
	return Layer{X: x, Y: y}
}

// Content returns the displayed text
func (l *Layer) Content() string {
	return l.content
}

// SetContent replaces the displayed text, growing the reserved width if needed
func (l *Layer) SetContent(s string) *Layer {
	l.content = s
	if w := uniseg.StringWidth(s); w > l.length {
		l.length = w
	}
	return l
}

// InnerToOuter displays the inner content
func (l *Layer) InnerToOuter() {
	l.SetContent(l.Inner)
}

// Shrink drops reserved width beyond the current content
func (l *Layer) Shrink() {
	l.length = uniseg.StringWidth(l.content)
}

// Width returns the reserved width in cells
func (l *Layer) Width() int {
	return l.length
}

// Layer2D is a grid of layers sharing one origin. Child positions are
// relative to the grid origin.
type Layer2D struct {
	X, Y       int
	Cols, Rows int
	Layers     []Layer
}

// NewLayer2D returns a cols x rows grid at x, y filled with copies of populator
func NewLayer2D(x, y, cols, rows int, populator Layer) *Layer2D {
	g := &Layer2D{X: x, Y: y, Cols: cols, Rows: rows}
	g.Populate(populator)
	return g
}

// Populate refills the grid with copies of populator. Columns are spaced by
// the populator's content width, minimum one cell.
func (g *Layer2D) Populate(populator Layer) {
	if g.Cols <= 0 || g.Rows <= 0 {
		g.Layers = nil
		return
	}

	pitch := uniseg.StringWidth(populator.content)
	if pitch < 1 {
		pitch = 1
	}

	g.Layers = make([]Layer, g.Cols*g.Rows)
	for i := range g.Layers {
		l := populator
		l.X = (i % g.Cols) * pitch
		l.Y = i / g.Cols
		g.Layers[i] = l
	}
}

// At returns the layer at column x, row y for modification, nil if out of range
func (g *Layer2D) At(x, y int) *Layer {
	if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
		return nil
	}
	return &g.Layers[x+y*g.Cols]
}

// Get returns a copy of the layer at column x, row y
func (g *Layer2D) Get(x, y int) (Layer, bool) {
	l := g.At(x, y)
	if l == nil {
		return Layer{}, false
	}
	return *l, true
}

// AddLayer stacks l on top as a 1x1 grid and returns the stored layer
func (t *Terminal) AddLayer(l Layer) *Layer {
	g := NewLayer2D(l.X, l.Y, 1, 1, l)
	t.layers = append(t.layers, g)
	return &g.Layers[0]
}

// AddLayer2D stacks g on top and returns it
func (t *Terminal) AddLayer2D(g *Layer2D) *Layer2D {
	t.layers = append(t.layers, g)
	return g
}

// PopLayer removes and returns the top layer grid, nil when empty
func (t *Terminal) PopLayer() *Layer2D {
	if len(t.layers) == 0 {
		return nil
	}
	g := t.layers[len(t.layers)-1]
	t.layers[len(t.layers)-1] = nil
	t.layers = t.layers[:len(t.layers)-1]
	return g
}

// LayerCount returns the number of stacked grids
func (t *Terminal) LayerCount() int {
	return len(t.layers)
}

// LayerFront returns the top (last drawn) grid, nil when empty
func (t *Terminal) LayerFront() *Layer2D {
	if len(t.layers) == 0 {
		return nil
	}
	return t.layers[len(t.layers)-1]
}

// LayerBack returns the bottom (first drawn) grid, nil when empty
func (t *Terminal) LayerBack() *Layer2D {
	if len(t.layers) == 0 {
		return nil
	}
	return t.layers[0]
}

// LayerLocate resolves a stack position. Zero is the top, negative values
// count down from the top, positive values count up from the bottom.
//
//	[ L4 ] <- LayerLocate(0), LayerFront()
//	[ L3 ] <- LayerLocate(-1)
//	[ L2 ] <- LayerLocate(1), LayerLocate(-2)
//	[ L1 ] <- LayerLocate(-3), LayerBack()
func (t *Terminal) LayerLocate(i int) (*Layer2D, bool) {
	idx, ok := locateIndex(len(t.layers), i)
	if !ok {
		return nil, false
	}
	return t.layers[idx], true
}

// LayerSwap exchanges two stack positions resolved as in LayerLocate
func (t *Terminal) LayerSwap(a, b int) bool {
	ia, okA := locateIndex(len(t.layers), a)
	ib, okB := locateIndex(len(t.layers), b)
	if !okA || !okB {
		return false
	}
	t.layers[ia], t.layers[ib] = t.layers[ib], t.layers[ia]
	return true
}

// locateIndex maps a stack position to a slice index
func locateIndex(n, i int) (int, bool) {
	idx := i
	if i <= 0 {
		idx = n - 1 + i
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, true
}

// DrawLayer blanks the layer's reserved width and writes its content,
// clipped at the right edge. The cursor ends after the content.
func (t *Terminal) DrawLayer(l *Layer) {
	t.drawLayerAt(l, 0, 0)
}

// DrawLayerStatic draws l without moving the cursor
func (t *Terminal) DrawLayerStatic(l *Layer) {
	x, y := t.x, t.y
	t.drawLayerAt(l, 0, 0)
	t.Move(x, y)
}

// DrawLayer2D draws every child of g; the cursor ends at the grid origin
func (t *Terminal) DrawLayer2D(g *Layer2D) {
	if t.closed {
		return
	}
	for i := range g.Layers {
		t.drawLayerAt(&g.Layers[i], g.X, g.Y)
	}
	t.Move(g.X, g.Y)
}

// DrawLayer2DStatic draws g without moving the cursor
func (t *Terminal) DrawLayer2DStatic(g *Layer2D) {
	x, y := t.x, t.y
	t.DrawLayer2D(g)
	t.Move(x, y)
}

func (t *Terminal) drawLayerAt(l *Layer, ox, oy int) {
	if t.closed {
		return
	}
	t.Move(ox+l.X, oy+l.Y)
	x, y := t.x, t.y
	t.blank(x, y, l.length)
	t.Move(t.put(x, y, l.content), y)
}
