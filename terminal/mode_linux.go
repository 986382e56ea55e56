//go:build linux

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// Cooked reports whether the terminal on fd has echo and canonical
// (line-buffered) input enabled
func Cooked(fd int) (bool, error) {
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return false, err
	}
	const want = unix.ECHO | unix.ICANON
	return termios.Lflag&want == want, nil
}

// resetTerminalMode forces cooked mode on the controlling terminal.
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// /dev/tty works even if stdin is redirected
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
