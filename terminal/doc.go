// Package terminal is a small convenience layer over tcell for basic
// text-mode programs.
//
// A Terminal owns the process's single screen session:
//
//	t, err := terminal.New()
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//
//	t.OutLn("Hello world!")
//
// Output follows curses conventions: text is written at a tracked cursor,
// '\n' clears to the end of the line, and the screen scrolls when output
// passes the last row. Out* methods refresh the screen, RawOut* methods only
// update the buffer until the next Refresh or key read.
//
// Layers pin short strings to screen positions and can be redrawn as a
// stack on every Refresh. Ask, Mask, YesNo, Choices and Search build simple
// prompts on top of key reads.
//
// Close restores the terminal mode on every path; EmergencyReset covers
// panics that bypass it.
package terminal
