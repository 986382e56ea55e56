package terminal

// keyToName maps Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyEscape:    "escape",
	KeyInterrupt: "interrupt",

	KeyUp:    "up",
	KeyDown:  "down",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyHome:  "home",
	KeyEnd:   "end",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// nameToKey is the reverse lookup, built from keyToName
var nameToKey map[string]Key

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	// Aliases
	nameToKey["ctrl_c"] = KeyInterrupt
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyNone and KeyRune
func KeyName(k Key) string {
	return keyToName[k]
}

// KeyByName resolves a canonical name to a Key constant
// Returns KeyNone and false if name is unknown
func KeyByName(name string) (Key, bool) {
	k, ok := nameToKey[name]
	return k, ok
}

// String implements fmt.Stringer
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	}
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "unknown"
}
