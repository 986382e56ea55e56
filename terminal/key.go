package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota // Unmapped input
	KeyRune            // Printable character (check KeyEvent.Rune)

	// Control keys
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEscape
	KeyInterrupt // Ctrl+C

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// KeyEvent is one key press read from the session
type KeyEvent struct {
	Key  Key
	Rune rune // Set for KeyRune
}

// tcellKeys maps library key codes onto Key; KeyRune is handled separately
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyLF:         KeyEnter,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyTab:        KeyTab,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyCtrlC:      KeyInterrupt,

	tcell.KeyUp:    KeyUp,
	tcell.KeyDown:  KeyDown,
	tcell.KeyLeft:  KeyLeft,
	tcell.KeyRight: KeyRight,
	tcell.KeyHome:  KeyHome,
	tcell.KeyEnd:   KeyEnd,

	tcell.KeyF1:  KeyF1,
	tcell.KeyF2:  KeyF2,
	tcell.KeyF3:  KeyF3,
	tcell.KeyF4:  KeyF4,
	tcell.KeyF5:  KeyF5,
	tcell.KeyF6:  KeyF6,
	tcell.KeyF7:  KeyF7,
	tcell.KeyF8:  KeyF8,
	tcell.KeyF9:  KeyF9,
	tcell.KeyF10: KeyF10,
	tcell.KeyF11: KeyF11,
	tcell.KeyF12: KeyF12,
}

// keyFromEvent converts a library key event; unknown keys yield KeyNone
func keyFromEvent(ev *tcell.EventKey) KeyEvent {
	if ev.Key() == tcell.KeyRune {
		return KeyEvent{Key: KeyRune, Rune: ev.Rune()}
	}
	return KeyEvent{Key: tcellKeys[ev.Key()]}
}
