package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call it from panic recovery when Close cannot run normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseMotionOff)
	w.Write(csiMouseDragOff)
	w.Write(csiMouseClickOff)
	w.Write(csiMouseSGROff)
	w.Write(csiPasteOff)

	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
