//go:build !linux

package terminal

// Cooked is only implemented on linux
func Cooked(fd int) (bool, error) {
	return false, ErrUnsupported
}

func resetTerminalMode() {}
