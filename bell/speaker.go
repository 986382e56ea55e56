// Package bell rings an audible bell through the system audio device.
package bell

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrDisabled is returned by New when the bell is turned off in config
var ErrDisabled = errors.New("bell disabled")

// Speaker plays the bell tone; it satisfies terminal.Bell
type Speaker struct {
	mu     sync.Mutex
	cfg    *Config
	closed bool
}

// New opens the audio device. The device stays open until Close.
func New(cfg *Config) (*Speaker, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if !cfg.Enabled {
		return nil, ErrDisabled
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Speaker{cfg: cfg}, nil
}

// Ring starts the tone and returns without waiting for it to finish
func (s *Speaker) Ring() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrDisabled
	}
	speaker.Play(tone(s.cfg))
	return nil
}

// Close stops playback and releases the audio device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}
