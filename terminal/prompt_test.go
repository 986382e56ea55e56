package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskEditsLine(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "hi")
	press(sim, tcell.KeyBackspace2)
	typeText(sim, "o")
	press(sim, tcell.KeyEnter)

	got, err := term.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "ho", got)
	assert.Equal(t, "> ho", row(sim, 0))
	assert.Equal(t, 4, term.PosX())
}

func TestAskIgnoresUnmappedAndEmptyBackspace(t *testing.T) {
	term, sim := newSimTerminal(t)

	press(sim, tcell.KeyBackspace, tcell.KeyF5, tcell.KeyPgDn)
	typeText(sim, "x")
	press(sim, tcell.KeyEnter)

	got, err := term.Ask("? ")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
}

func TestAskInterrupted(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "ab")
	press(sim, tcell.KeyCtrlC)

	_, err := term.Ask("> ")
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestMaskHidesInput(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "pw")
	press(sim, tcell.KeyEnter)

	got, err := term.Mask("pass: ", '#')
	require.NoError(t, err)
	assert.Equal(t, "pw", got)
	assert.Equal(t, "pass: ##", row(sim, 0))
}

func TestMaskDefaultsToConfiguredRune(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "abc")
	press(sim, tcell.KeyEnter)

	got, err := term.Mask("", 0)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, "***", row(sim, 0))
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		name    string
		def     bool
		keys    []tcell.Key
		want    bool
		wantRow string
	}{
		{"default yes", true, []tcell.Key{tcell.KeyEnter}, true, "(Y/n)"},
		{"default no", false, []tcell.Key{tcell.KeyEnter}, false, "(y/N)"},
		{"right selects no", true, []tcell.Key{tcell.KeyRight, tcell.KeyEnter}, false, "(y/N)"},
		{"left selects yes", false, []tcell.Key{tcell.KeyDown, tcell.KeyLeft, tcell.KeyEnter}, true, "(Y/n)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, sim := newSimTerminal(t)
			press(sim, tt.keys...)

			got, err := term.YesNo("y/n", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRow, row(sim, 0))
		})
	}
}

func TestYesNoKeepsCallerCasingUntilToggle(t *testing.T) {
	term, sim := newSimTerminal(t)
	press(sim, tcell.KeyUp, tcell.KeyEnter)

	got, err := term.YesNo("Yes/No", true)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Equal(t, "(YES/No)", row(sim, 0), "unmapped keys do not re-render")

	yesNoRow := func(keys ...tcell.Key) string {
		require.NoError(t, term.Out("\n"))
		press(sim, keys...)
		_, err := term.YesNo("Yes/No", true)
		require.NoError(t, err)
		return row(sim, term.PosY())
	}
	assert.Equal(t, "(yes/NO)", yesNoRow(tcell.KeyRight, tcell.KeyEnter))
	assert.Equal(t, "(YES/no)", yesNoRow(tcell.KeyRight, tcell.KeyLeft, tcell.KeyEnter))
}

func TestYesNoRequiresSeparator(t *testing.T) {
	term, _ := newSimTerminal(t)

	_, err := term.YesNo("yes", true)
	assert.ErrorIs(t, err, ErrYesNoSuffix)
}

func TestChoices(t *testing.T) {
	term, sim := newSimTerminal(t)
	require.NoError(t, term.Out("Choose..."))

	press(sim, tcell.KeyDown, tcell.KeyDown, tcell.KeyUp, tcell.KeyDown, tcell.KeyEnter)

	got, err := term.Choices("-> ", []string{"c1", "c22", "c333", "c4444"})
	require.NoError(t, err)
	assert.Equal(t, "c333", got)

	assert.Equal(t, "Choose...", row(sim, 0))
	assert.Equal(t, "c1", row(sim, 1))
	assert.Equal(t, "c22", row(sim, 2))
	assert.Equal(t, "-> c333", row(sim, 3))
	assert.Equal(t, "c4444", row(sim, 4))
	assert.Equal(t, 5, term.PosY())
}

func TestChoicesClampsSelection(t *testing.T) {
	term, sim := newSimTerminal(t)

	press(sim, tcell.KeyUp, tcell.KeyDown, tcell.KeyDown, tcell.KeyDown, tcell.KeyEnter)

	got, err := term.Choices("* ", []string{"one", "two"})
	require.NoError(t, err)
	assert.Equal(t, "two", got)
}

func TestChoicesEmpty(t *testing.T) {
	term, _ := newSimTerminal(t)

	_, err := term.Choices("-> ", nil)
	assert.ErrorIs(t, err, ErrNoChoices)
	_, err = term.Search("find: ", nil)
	assert.ErrorIs(t, err, ErrNoChoices)
}

var fruits = []string{"apple", "banana", "grape", "grapefruit"}

func TestSearchFiltersOptions(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "gf")
	press(sim, tcell.KeyEnter)

	got, err := term.Search("find: ", fruits)
	require.NoError(t, err)
	assert.Equal(t, "grapefruit", got)

	assert.Equal(t, "find: gf", row(sim, 0))
	for y := 1; y <= len(fruits); y++ {
		assert.Equal(t, "", row(sim, y), "list row %d not cleared", y)
	}
}

func TestSearchNavigatesUnfiltered(t *testing.T) {
	term, sim := newSimTerminal(t)

	press(sim, tcell.KeyDown, tcell.KeyDown, tcell.KeyUp, tcell.KeyEnter)

	got, err := term.Search("find: ", fruits)
	require.NoError(t, err)
	assert.Equal(t, "banana", got)
}

func TestSearchIgnoresEnterWithoutMatches(t *testing.T) {
	term, sim := newSimTerminal(t)

	typeText(sim, "xqz")
	press(sim, tcell.KeyEnter, tcell.KeyCtrlC)

	_, err := term.Search("find: ", fruits)
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestSearchMatches(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, searchMatches("", fruits))
	assert.Equal(t, []int{3}, searchMatches("gf", fruits))
	assert.Empty(t, searchMatches("xqz", fruits))
}
