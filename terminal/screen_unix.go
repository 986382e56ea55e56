//go:build unix

package terminal

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// openScreen creates a screen on the controlling terminal, or on the
// device at path when given
func openScreen(path string) (tcell.Screen, error) {
	if path == "" {
		if err := checkStdio(os.Stdin, os.Stdout); err != nil {
			return nil, err
		}
		return tcell.NewScreen()
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	isTTY := term.IsTerminal(int(f.Fd()))
	f.Close()
	if !isTTY {
		return nil, fmt.Errorf("%s: %w", path, ErrNotTTY)
	}

	tty, err := tcell.NewDevTtyFromDev(path)
	if err != nil {
		return nil, err
	}
	return tcell.NewTerminfoScreenFromTty(tty)
}

// checkStdio rejects redirected or non-interactive standard streams.
// tcell opens /dev/tty directly and would otherwise succeed without them.
func checkStdio(files ...*os.File) error {
	for _, f := range files {
		if f == nil || !term.IsTerminal(int(f.Fd())) {
			name := "<nil>"
			if f != nil {
				name = f.Name()
			}
			return fmt.Errorf("%s: %w", name, ErrNotTTY)
		}
	}
	return nil
}
