//go:build !unix

package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

func openScreen(path string) (tcell.Screen, error) {
	if path != "" {
		return nil, fmt.Errorf("tty %s: %w", path, ErrUnsupported)
	}
	return tcell.NewScreen()
}
