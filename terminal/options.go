package terminal

import (
	"log"

	"github.com/gdamore/tcell/v2"
)

// Bell rings an audible signal; see package bell for an audio implementation
type Bell interface {
	Ring() error
}

// Option configures a Terminal before its session is acquired
type Option func(*Terminal)

// WithConfig replaces the default configuration
func WithConfig(cfg *Config) Option {
	return func(t *Terminal) {
		if cfg != nil {
			c := *cfg
			t.cfg = &c
		}
	}
}

// WithScreen uses an existing, uninitialized screen instead of opening one.
// Intended for tcell simulation screens and custom tty setups.
func WithScreen(s tcell.Screen) Option {
	return func(t *Terminal) {
		t.screen = s
	}
}

// WithTTY opens the session on the terminal device at path
func WithTTY(path string) Option {
	return func(t *Terminal) {
		t.cfg.TTY = path
	}
}

// WithBell routes Beep to b instead of the terminal bell
func WithBell(b Bell) Option {
	return func(t *Terminal) {
		t.bell = b
	}
}

// WithLogger sets the lifecycle logger; the default discards
func WithLogger(l *log.Logger) Option {
	return func(t *Terminal) {
		if l != nil {
			t.logger = l
		}
	}
}
