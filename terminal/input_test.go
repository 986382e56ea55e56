package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want KeyEvent
	}{
		{"rune", tcell.KeyRune, 'a', KeyEvent{Key: KeyRune, Rune: 'a'}},
		{"space", tcell.KeyRune, ' ', KeyEvent{Key: KeyRune, Rune: ' '}},
		{"enter", tcell.KeyEnter, 0, KeyEvent{Key: KeyEnter}},
		{"backspace", tcell.KeyBackspace, 0, KeyEvent{Key: KeyBackspace}},
		{"delete char", tcell.KeyBackspace2, 0, KeyEvent{Key: KeyBackspace}},
		{"ctrl c", tcell.KeyCtrlC, 0, KeyEvent{Key: KeyInterrupt}},
		{"escape", tcell.KeyEscape, 0, KeyEvent{Key: KeyEscape}},
		{"arrow up", tcell.KeyUp, 0, KeyEvent{Key: KeyUp}},
		{"arrow right", tcell.KeyRight, 0, KeyEvent{Key: KeyRight}},
		{"f3", tcell.KeyF3, 0, KeyEvent{Key: KeyF3}},
		{"f12", tcell.KeyF12, 0, KeyEvent{Key: KeyF12}},
		{"unmapped", tcell.KeyPgUp, 0, KeyEvent{Key: KeyNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			assert.Equal(t, tt.want, keyFromEvent(ev))
		})
	}
}

func TestGetCharEchoes(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "a")
	press(sim, tcell.KeyF3)

	ev, err := term.GetChar()
	require.NoError(t, err)
	assert.Equal(t, KeyEvent{Key: KeyRune, Rune: 'a'}, ev)
	assert.Equal(t, "a", row(sim, 0))
	assert.Equal(t, 1, term.PosX())

	ev, err = term.GetChar()
	require.NoError(t, err)
	assert.Equal(t, KeyF3, ev.Key)
	assert.Equal(t, 1, term.PosX())
}

func TestGetCharWithoutEcho(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Echo = false
	term, sim := newSimTerminal(t, WithConfig(cfg))

	typeText(sim, "a")
	ev, err := term.GetChar()
	require.NoError(t, err)
	assert.Equal(t, 'a', ev.Rune)
	assert.Equal(t, "", row(sim, 0))
}

func TestGetCharHiddenKeepsCursor(t *testing.T) {
	term, sim := newSimTerminal(t)
	require.NoError(t, term.Out("> "))

	typeText(sim, "z")
	ev, err := term.GetCharHidden()
	require.NoError(t, err)
	assert.Equal(t, 'z', ev.Rune)
	assert.Equal(t, ">", row(sim, 0))
	assert.Equal(t, 2, term.PosX())
}

func TestGetCharSkipsResize(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.SetSize(40, 10)
	press(sim, tcell.KeyEnter)

	ev, err := term.GetChar()
	require.NoError(t, err)
	assert.Equal(t, KeyEnter, ev.Key)

	w, h := term.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 10, h)
}

func TestKeyNames(t *testing.T) {
	assert.Equal(t, "f3", KeyName(KeyF3))
	assert.Equal(t, "", KeyName(KeyRune))
	assert.Equal(t, "interrupt", KeyInterrupt.String())
	assert.Equal(t, "rune", KeyRune.String())

	k, ok := KeyByName("ctrl_c")
	assert.True(t, ok)
	assert.Equal(t, KeyInterrupt, k)

	for key, name := range keyToName {
		got, ok := KeyByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, key, got, name)
	}

	_, ok = KeyByName("hyper")
	assert.False(t, ok)
}
