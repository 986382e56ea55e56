package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

// newSimTerminal opens a session on an 80x25 simulation screen
func newSimTerminal(t *testing.T, opts ...Option) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := New(append([]Option{WithScreen(sim)}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { term.Close() })
	return term, sim
}

// row returns the shown text of screen row y with trailing blanks removed
func row(sim tcell.SimulationScreen, y int) string {
	cells, w, h := sim.GetContents()
	if y >= h {
		return ""
	}
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

// press queues key presses on the simulation screen
func press(sim tcell.SimulationScreen, keys ...tcell.Key) {
	for _, k := range keys {
		sim.InjectKey(k, 0, tcell.ModNone)
	}
}

// typeText queues one rune key press per rune of s
func typeText(sim tcell.SimulationScreen, s string) {
	for _, r := range s {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
}
